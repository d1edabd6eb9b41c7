// Package hybrid composes the coverage sweep, A* gap-stitching, and the
// genetic reordering pass into the full pipeline described by the
// reference algorithms/hybrid_planner.py HybridPlanner.
package hybrid

import (
	"math/rand"
	"time"

	"github.com/wallrobotics/wallplan/internal/core"
	"github.com/wallrobotics/wallplan/internal/gridmap"
	"github.com/wallrobotics/wallplan/internal/planner/astarplan"
	"github.com/wallrobotics/wallplan/internal/planner/coverage"
	"github.com/wallrobotics/wallplan/internal/planner/genetic"
)

// geneticThreshold is the minimum stitched-path waypoint count above which
// the genetic reordering pass is worth its cost.
const geneticThreshold = 10

// gapFactor scales the grid resolution into the distance threshold beyond
// which two consecutive coverage waypoints are stitched with an A* detour
// instead of left as a direct jump.
const gapFactor = 3.0

// Planner runs coverage, then A* stitching, then (conditionally) genetic
// reordering, all over one fixed grid.
type Planner struct {
	grid   *gridmap.Grid
	cover  *coverage.Planner
	astar  *astarplan.Planner
	params core.PlanParameters
}

// NewPlanner creates a hybrid planner over grid using params for the
// genetic stage (population size, generations, mutation/crossover rates,
// tournament size, seed).
func NewPlanner(grid *gridmap.Grid, params core.PlanParameters) *Planner {
	return &Planner{
		grid:   grid,
		cover:  coverage.NewPlanner(grid),
		astar:  astarplan.NewPlanner(grid),
		params: params,
	}
}

// Plan runs the full pipeline: coverage sweep, gap stitching, and (if the
// stitched path has more than geneticThreshold waypoints) genetic
// reordering of the interior.
func (p *Planner) Plan() []core.Waypoint {
	stitched := p.PlanSimple()
	if len(stitched) <= geneticThreshold {
		return stitched
	}

	optimizer := genetic.NewOptimizer(genetic.Params{
		PopulationSize: p.params.PopulationSize,
		Generations:    p.params.Generations,
		MutationRate:   p.params.MutationRate,
		CrossoverRate:  p.params.CrossoverRate,
		TournamentSize: p.params.TournamentSize,
		Rand:           newRand(p.params.Seed),
	})
	return optimizer.Optimize(stitched)
}

// PlanSimple runs only the coverage sweep and A* gap-stitching stages,
// skipping genetic reordering regardless of path length.
func (p *Planner) PlanSimple() []core.Waypoint {
	swept := p.cover.PlanWithObstacles()
	return p.stitchGaps(swept)
}

// stitchGaps walks consecutive waypoint pairs and replaces any jump whose
// Euclidean distance exceeds gapFactor*resolution with the A* path between
// the two cells (dropping the detour's first cell, since it duplicates the
// waypoint already in the sequence). A jump is left as-is if A* fails to
// find a path.
func (p *Planner) stitchGaps(waypoints []core.Waypoint) []core.Waypoint {
	if len(waypoints) < 2 {
		return waypoints
	}

	threshold := gapFactor * p.grid.ResolutionM
	stitched := make([]core.Waypoint, 0, len(waypoints))
	stitched = append(stitched, waypoints[0])

	for i := 1; i < len(waypoints); i++ {
		prev := stitched[len(stitched)-1]
		next := waypoints[i]

		if core.Distance(prev, next) > threshold {
			startR, startC := p.grid.WorldToGrid(prev.X, prev.Y)
			goalR, goalC := p.grid.WorldToGrid(next.X, next.Y)
			detour := p.astar.Plan(gridmap.Cell{Row: startR, Col: startC}, gridmap.Cell{Row: goalR, Col: goalC})
			if len(detour) > 1 {
				stitched = append(stitched, detour[1:]...)
				continue
			}
		}

		stitched = append(stitched, next)
	}

	return stitched
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(seed))
}
