package core

import (
	"encoding/json"
	"testing"

	"github.com/wallrobotics/wallplan/internal/geom"
)

func TestWorkSurface_JSONRoundTrip(t *testing.T) {
	surface := WorkSurface{
		WidthM:      2.0,
		HeightM:     1.5,
		ResolutionM: 0.1,
		Obstacles: []Obstacle{
			RectangleObstacle{CX: 0.5, CY: 0.5, W: 0.2, H: 0.3},
			CircleObstacle{CX: 1.0, CY: 1.0, R: 0.25},
			PolygonObstacle{Vertices: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}},
		},
	}

	data, err := json.Marshal(surface)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got WorkSurface
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if got.WidthM != surface.WidthM || got.HeightM != surface.HeightM || got.ResolutionM != surface.ResolutionM {
		t.Errorf("surface fields changed: got %+v, want %+v", got, surface)
	}
	if len(got.Obstacles) != len(surface.Obstacles) {
		t.Fatalf("got %d obstacles, want %d", len(got.Obstacles), len(surface.Obstacles))
	}
	if got.Obstacles[0] != surface.Obstacles[0] {
		t.Errorf("rectangle obstacle changed: got %+v, want %+v", got.Obstacles[0], surface.Obstacles[0])
	}
	if got.Obstacles[1] != surface.Obstacles[1] {
		t.Errorf("circle obstacle changed: got %+v, want %+v", got.Obstacles[1], surface.Obstacles[1])
	}
	gotPoly, ok := got.Obstacles[2].(PolygonObstacle)
	if !ok {
		t.Fatalf("expected a PolygonObstacle back, got %T", got.Obstacles[2])
	}
	wantPoly := surface.Obstacles[2].(PolygonObstacle)
	if len(gotPoly.Vertices) != len(wantPoly.Vertices) {
		t.Errorf("polygon vertices changed: got %+v, want %+v", gotPoly.Vertices, wantPoly.Vertices)
	}
}

func TestAlgorithmKind_JSONRoundTrip(t *testing.T) {
	for _, k := range []AlgorithmKind{Coverage, AStar, Genetic, Hybrid} {
		data, err := json.Marshal(k)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", k, err)
		}
		var got AlgorithmKind
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s): %v", data, err)
		}
		if got != k {
			t.Errorf("got %v, want %v", got, k)
		}
	}
}

func TestAlgorithmKind_UnmarshalUnrecognized(t *testing.T) {
	var k AlgorithmKind
	if err := json.Unmarshal([]byte(`"not-a-real-algorithm"`), &k); err == nil {
		t.Error("expected an error for an unrecognized algorithm name")
	}
}

func TestPlan_JSONRoundTrip(t *testing.T) {
	plan := Plan{
		Waypoints:        []Waypoint{{X: 0, Y: 0}, {X: 1, Y: 1}},
		TotalDistanceM:   1.41,
		EstimatedTimeS:   2.82,
		CoverageFraction: 0.9,
		PlanningTimeS:    0.001,
		Algorithm:        Hybrid,
		Parameters:       PlanParameters{Seed: 7},
	}

	data, err := json.Marshal(plan)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got Plan
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Algorithm != plan.Algorithm || len(got.Waypoints) != len(plan.Waypoints) || got.Parameters.Seed != plan.Parameters.Seed {
		t.Errorf("plan changed across round-trip: got %+v, want %+v", got, plan)
	}
}
