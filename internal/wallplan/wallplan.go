// Package wallplan is the single entry point tying the grid builder and the
// four planner packages together behind one Plan call, mirroring the role
// the reference service's PlanningService played over its algorithm modules.
package wallplan

import (
	"math/rand"
	"time"

	"github.com/wallrobotics/wallplan/internal/core"
	"github.com/wallrobotics/wallplan/internal/gridmap"
	"github.com/wallrobotics/wallplan/internal/planner/astarplan"
	"github.com/wallrobotics/wallplan/internal/planner/coverage"
	"github.com/wallrobotics/wallplan/internal/planner/genetic"
	"github.com/wallrobotics/wallplan/internal/planner/hybrid"
)

// Plan builds a grid from surface and runs the algorithm selected by
// request, returning the resulting plan with its distance/time/coverage
// metrics filled in. It returns *core.InvalidObstacleError or
// *core.InvalidRequestError for a malformed surface or request, and
// *core.PlanningFailedError if AStar mode finds no path. It makes no
// checks of the data model invariants, so it never returns core.ErrInternal.
func Plan(surface core.WorkSurface, request core.PlanRequest) (*core.Plan, error) {
	if err := surface.Validate(); err != nil {
		return nil, err
	}

	params := request.Parameters.WithDefaults()
	grid := gridmap.BuildGrid(surface, params.GridResolutionM)

	started := time.Now()

	var waypoints []core.Waypoint
	var err error

	switch request.Algorithm {
	case core.Coverage:
		waypoints = coverage.NewPlanner(grid).PlanWithObstacles()

	case core.AStar:
		waypoints, err = planAStar(grid, params)

	case core.Genetic:
		waypoints = planGenetic(grid, params)

	case core.Hybrid:
		waypoints = hybrid.NewPlanner(grid, params).Plan()

	default:
		return nil, &core.InvalidRequestError{Reason: "unrecognized algorithm kind"}
	}

	if err != nil {
		return nil, err
	}

	elapsed := time.Since(started).Seconds()

	visited := make(map[gridmap.Cell]struct{}, len(waypoints))
	for _, wp := range waypoints {
		r, c := grid.WorldToGrid(wp.X, wp.Y)
		visited[gridmap.Cell{Row: r, Col: c}] = struct{}{}
	}

	distance := core.PathLength(waypoints)
	speed := params.SpeedMPS
	if speed <= 0 {
		speed = core.DefaultSpeedMPS
	}

	plan := &core.Plan{
		Waypoints:        waypoints,
		TotalDistanceM:   distance,
		EstimatedTimeS:   distance / speed,
		CoverageFraction: grid.CoverageFraction(visited),
		PlanningTimeS:    elapsed,
		Algorithm:        request.Algorithm,
		Parameters:       params,
	}
	return plan, nil
}

// planAStar defaults an unset start to (0,0) and an unset goal to
// (rows-1,cols-1), per the external interface's documented defaults.
func planAStar(grid *gridmap.Grid, params core.PlanParameters) ([]core.Waypoint, error) {
	start := gridmap.Cell{Row: 0, Col: 0}
	if params.HasStart {
		start = gridmap.Cell{Row: params.StartRow, Col: params.StartCol}
	}

	goal := gridmap.Cell{Row: grid.Rows - 1, Col: grid.Cols - 1}
	if params.HasGoal {
		goal = gridmap.Cell{Row: params.GoalRow, Col: params.GoalCol}
	}
	if !grid.IsValid(start.Row, start.Col) || !grid.IsValid(goal.Row, goal.Col) {
		return nil, &core.InvalidRequestError{Reason: "A* start or goal is outside the grid"}
	}

	planner := astarplan.NewPlanner(grid)
	planner.ForbidCornerCutting = params.ForbidCornerCutting

	path := planner.Plan(start, goal)
	if path == nil {
		return nil, &core.PlanningFailedError{
			StartRow: start.Row, StartCol: start.Col,
			GoalRow: goal.Row, GoalCol: goal.Col,
		}
	}
	return path, nil
}

// planGenetic seeds the GA from params.InitialWaypoints when the caller
// supplies one, and otherwise (mirroring hybrid.Planner.Plan) self-seeds
// from a coverage sweep of grid before optimizing.
func planGenetic(grid *gridmap.Grid, params core.PlanParameters) []core.Waypoint {
	seed := params.InitialWaypoints
	if len(seed) == 0 {
		seed = coverage.NewPlanner(grid).PlanWithObstacles()
	}

	var src *rand.Rand
	if params.Seed == 0 {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	} else {
		src = rand.New(rand.NewSource(params.Seed))
	}

	optimizer := genetic.NewOptimizer(genetic.Params{
		PopulationSize: params.PopulationSize,
		Generations:    params.Generations,
		MutationRate:   params.MutationRate,
		CrossoverRate:  params.CrossoverRate,
		TournamentSize: params.TournamentSize,
		Rand:           src,
	})
	return optimizer.Optimize(seed)
}
