package genetic

import (
	"math/rand"
	"testing"

	"github.com/wallrobotics/wallplan/internal/core"
)

func defaultParams(seed int64) Params {
	return Params{
		PopulationSize: 50,
		Generations:    30,
		MutationRate:   0.1,
		CrossoverRate:  0.8,
		TournamentSize: 3,
		Rand:           rand.New(rand.NewSource(seed)),
	}
}

// TestOptimize_S5 checks the spec's smoothness-bias scenario: given a
// zig-zag input ordering between two well-separated waypoints, the
// optimizer should find an ordering whose fitness is no worse than the
// identity ordering's, and in practice favors the monotonic (smooth) pass.
func TestOptimize_S5(t *testing.T) {
	input := []core.Waypoint{
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: 0.2, Y: 0.1},
		{X: 2, Y: 1},
		{X: 0.4, Y: 0.1},
		{X: 3, Y: 1},
		{X: 4, Y: 0},
	}

	o := NewOptimizer(defaultParams(42))
	got := o.Optimize(input)

	identityFitness := o.fitness(toIndexed(input[1:len(input)-1]), input[0], input[len(input)-1])
	gotFitness := o.fitness(toIndexed(got[1:len(got)-1]), got[0], got[len(got)-1])

	if gotFitness < identityFitness-1e-9 {
		t.Errorf("optimized fitness %v worse than identity fitness %v", gotFitness, identityFitness)
	}
}

func toIndexed(waypoints []core.Waypoint) []indexed {
	out := make([]indexed, len(waypoints))
	for i, wp := range waypoints {
		out[i] = indexed{pos: i, wp: wp}
	}
	return out
}

// TestOptimize_DedupIdempotent checks property 6: deduplication is
// idempotent — running Optimize again on its own output does not shrink or
// otherwise change the waypoint count.
func TestOptimize_DedupIdempotent(t *testing.T) {
	input := []core.Waypoint{
		{X: 0, Y: 0},
		{X: 0, Y: 0.00001},
		{X: 1, Y: 1},
		{X: 0.5, Y: 0.5},
		{X: 2, Y: 0},
	}

	o := NewOptimizer(defaultParams(7))
	once := o.Optimize(input)
	twice := o.Optimize(once)

	if len(once) != len(twice) {
		t.Fatalf("re-optimizing changed waypoint count: %d vs %d", len(once), len(twice))
	}
}

// TestOptimize_NonRegression checks property 7: the optimized path's
// fitness is never worse than the unshuffled input's fitness.
func TestOptimize_NonRegression(t *testing.T) {
	input := []core.Waypoint{
		{X: 0, Y: 0},
		{X: 3, Y: 0.1},
		{X: 0.1, Y: 1},
		{X: 2.9, Y: 1.1},
		{X: 0.2, Y: 2},
		{X: 3, Y: 2},
	}

	o := NewOptimizer(defaultParams(99))
	identityFitness := o.fitness(toIndexed(input[1:len(input)-1]), input[0], input[len(input)-1])

	got := o.Optimize(input)
	gotFitness := o.fitness(toIndexed(got[1:len(got)-1]), got[0], got[len(got)-1])

	if gotFitness < identityFitness-1e-9 {
		t.Errorf("GA regressed: got fitness %v, identity fitness %v", gotFitness, identityFitness)
	}
}

// TestOptimize_EndpointsStable checks property 8: the first and last
// waypoints never move.
func TestOptimize_EndpointsStable(t *testing.T) {
	input := []core.Waypoint{
		{X: 0, Y: 0},
		{X: 1, Y: 2},
		{X: 2, Y: 1},
		{X: 3, Y: 3},
		{X: 4, Y: 0},
	}

	o := NewOptimizer(defaultParams(123))
	got := o.Optimize(input)

	if got[0] != input[0] {
		t.Errorf("first waypoint moved: got %+v, want %+v", got[0], input[0])
	}
	if got[len(got)-1] != input[len(input)-1] {
		t.Errorf("last waypoint moved: got %+v, want %+v", got[len(got)-1], input[len(input)-1])
	}
}

func TestOptimize_ShortInputUnchanged(t *testing.T) {
	o := NewOptimizer(defaultParams(1))

	single := []core.Waypoint{{X: 0, Y: 0}}
	if got := o.Optimize(single); len(got) != 1 {
		t.Errorf("expected single-waypoint input unchanged, got %+v", got)
	}

	pair := []core.Waypoint{{X: 0, Y: 0}, {X: 1, Y: 1}}
	got := o.Optimize(pair)
	if len(got) != 2 || got[0] != pair[0] || got[1] != pair[1] {
		t.Errorf("expected 2-waypoint input unchanged, got %+v", got)
	}
}

func TestOptimize_ZeroGenerationsReturnsDedupedInput(t *testing.T) {
	params := defaultParams(1)
	params.Generations = 0
	o := NewOptimizer(params)

	input := []core.Waypoint{
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: 2, Y: 2},
		{X: 3, Y: 3},
	}
	got := o.Optimize(input)
	if len(got) != len(input) {
		t.Fatalf("expected deduped-only passthrough, got %+v", got)
	}
	for i, wp := range input {
		if got[i] != wp {
			t.Errorf("waypoint %d changed with zero generations: got %+v, want %+v", i, got[i], wp)
		}
	}
}
