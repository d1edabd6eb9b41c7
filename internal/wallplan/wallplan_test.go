package wallplan

import (
	"testing"

	"github.com/wallrobotics/wallplan/internal/core"
)

func demoSurface() core.WorkSurface {
	return core.WorkSurface{
		WidthM:      1.0,
		HeightM:     1.0,
		ResolutionM: 0.1,
		Obstacles: []core.Obstacle{
			core.RectangleObstacle{CX: 0.5, CY: 0.5, W: 0.2, H: 0.2},
		},
	}
}

func TestPlan_Coverage(t *testing.T) {
	plan, err := Plan(demoSurface(), core.PlanRequest{Algorithm: core.Coverage})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Waypoints) == 0 {
		t.Fatal("expected non-empty coverage plan")
	}
	if plan.CoverageFraction < 1-1e-9 {
		t.Errorf("expected full coverage of free cells, got %v", plan.CoverageFraction)
	}
	if plan.Algorithm != core.Coverage {
		t.Errorf("got algorithm %v, want Coverage", plan.Algorithm)
	}
}

func TestPlan_AStar(t *testing.T) {
	request := core.PlanRequest{
		Algorithm: core.AStar,
		Parameters: core.PlanParameters{
			StartRow: 0, StartCol: 0, HasStart: true,
			GoalRow: 9, GoalCol: 9, HasGoal: true,
		},
	}
	plan, err := Plan(demoSurface(), request)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Waypoints) < 2 {
		t.Fatalf("expected a multi-waypoint path, got %+v", plan.Waypoints)
	}
	if plan.TotalDistanceM <= 0 {
		t.Errorf("expected positive distance, got %v", plan.TotalDistanceM)
	}
}

// TestPlan_AStar_DefaultsEndpoints checks the documented defaults: an
// unset start defaults to (0,0) and an unset goal to (rows-1,cols-1).
func TestPlan_AStar_DefaultsEndpoints(t *testing.T) {
	plan, err := Plan(demoSurface(), core.PlanRequest{Algorithm: core.AStar})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Waypoints) < 2 {
		t.Fatalf("expected a multi-waypoint default path, got %+v", plan.Waypoints)
	}
	first := plan.Waypoints[0]
	if first.X >= 0.1 || first.Y >= 0.1 {
		t.Errorf("expected default start near (0,0), got %+v", first)
	}
}

func TestPlan_AStar_NoPathFails(t *testing.T) {
	surface := core.WorkSurface{
		WidthM: 1.0, HeightM: 1.0, ResolutionM: 0.1,
		Obstacles: []core.Obstacle{
			core.RectangleObstacle{CX: 0.5, CY: 0.5, W: 1.0, H: 0.1},
		},
	}
	request := core.PlanRequest{
		Algorithm: core.AStar,
		Parameters: core.PlanParameters{
			StartRow: 0, StartCol: 0, HasStart: true,
			GoalRow: 0, GoalCol: 0, HasGoal: true,
		},
	}
	// Start cell itself is free (row 0 untouched by the obstacle at row 5);
	// force a genuinely unreachable goal instead by placing it inside the
	// occupied band.
	request.Parameters.GoalRow = 5
	request.Parameters.GoalCol = 5

	_, err := Plan(surface, request)
	if _, ok := err.(*core.PlanningFailedError); !ok {
		t.Errorf("got error %v (%T), want *core.PlanningFailedError", err, err)
	}
}

func TestPlan_Genetic(t *testing.T) {
	request := core.PlanRequest{
		Algorithm: core.Genetic,
		Parameters: core.PlanParameters{
			Seed: 5,
			InitialWaypoints: []core.Waypoint{
				{X: 0, Y: 0},
				{X: 1, Y: 1},
				{X: 0.1, Y: 0.9},
				{X: 2, Y: 0},
			},
		},
	}
	plan, err := Plan(demoSurface(), request)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Waypoints) != 4 {
		t.Fatalf("expected the same waypoint count back, got %+v", plan.Waypoints)
	}
	if plan.Waypoints[0] != (core.Waypoint{X: 0, Y: 0}) {
		t.Errorf("expected first waypoint unchanged, got %+v", plan.Waypoints[0])
	}
}

// TestPlan_Genetic_SelfSeedsFromCoverage checks that, with no
// InitialWaypoints given, Genetic mode seeds itself from a coverage sweep
// of the grid rather than erroring, just like Hybrid does.
func TestPlan_Genetic_SelfSeedsFromCoverage(t *testing.T) {
	plan, err := Plan(demoSurface(), core.PlanRequest{
		Algorithm:  core.Genetic,
		Parameters: core.PlanParameters{Seed: 9},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Waypoints) == 0 {
		t.Fatal("expected Genetic mode to self-seed a non-empty waypoint sequence")
	}
}

func TestPlan_Hybrid(t *testing.T) {
	plan, err := Plan(demoSurface(), core.PlanRequest{
		Algorithm:  core.Hybrid,
		Parameters: core.PlanParameters{Seed: 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Waypoints) == 0 {
		t.Fatal("expected a non-empty hybrid plan")
	}
}

func TestPlan_InvalidSurfaceRejected(t *testing.T) {
	surface := core.WorkSurface{WidthM: -1, HeightM: 1, ResolutionM: 0.1}
	_, err := Plan(surface, core.PlanRequest{Algorithm: core.Coverage})
	if err == nil {
		t.Fatal("expected an error for an invalid surface")
	}
}

func TestPlan_InvalidObstacleRejected(t *testing.T) {
	surface := core.WorkSurface{
		WidthM: 1, HeightM: 1, ResolutionM: 0.1,
		Obstacles: []core.Obstacle{core.CircleObstacle{CX: 0.5, CY: 0.5, R: -1}},
	}
	_, err := Plan(surface, core.PlanRequest{Algorithm: core.Coverage})
	if _, ok := err.(*core.InvalidObstacleError); !ok {
		t.Errorf("got error %v (%T), want *core.InvalidObstacleError", err, err)
	}
}

func TestDecodeParameters(t *testing.T) {
	raw := map[string]any{
		"start_row":       0,
		"start_col":       float64(2),
		"goal_row":        9,
		"goal_col":        9,
		"population_size": float64(40),
		"mutation_rate":   0.2,
		"seed":            float64(7),
		"unknown_key":     "ignored",
	}
	p := DecodeParameters(raw)

	if !p.HasStart || p.StartRow != 0 || p.StartCol != 2 {
		t.Errorf("start not decoded correctly: %+v", p)
	}
	if !p.HasGoal || p.GoalRow != 9 || p.GoalCol != 9 {
		t.Errorf("goal not decoded correctly: %+v", p)
	}
	if p.PopulationSize != 40 {
		t.Errorf("got PopulationSize %d, want 40", p.PopulationSize)
	}
	if p.MutationRate != 0.2 {
		t.Errorf("got MutationRate %v, want 0.2", p.MutationRate)
	}
	if p.Seed != 7 {
		t.Errorf("got Seed %d, want 7", p.Seed)
	}
}
