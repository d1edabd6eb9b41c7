// Package genetic implements a permutation genetic algorithm that reorders
// the interior of a waypoint sequence to trade path length against turning
// smoothness, following the structure of the reference algorithms/genetic.py
// GeneticOptimizer: tournament selection, ordered crossover (OX), swap
// mutation, and elitism across a fixed number of generations.
package genetic

import (
	"math"
	"math/rand"
	"time"

	"github.com/wallrobotics/wallplan/internal/core"
)

// Params mirrors core.PlanParameters' genetic-relevant fields so this
// package has no dependency on the request-decoding layer.
type Params struct {
	PopulationSize int
	Generations    int
	MutationRate   float64
	CrossoverRate  float64
	TournamentSize int
	Rand           *rand.Rand
}

// Optimizer evolves the order of a waypoint sequence's interior.
type Optimizer struct {
	params Params
}

// NewOptimizer creates an optimizer with the given parameters. If
// params.Rand is nil, a source seeded from time is used.
func NewOptimizer(params Params) *Optimizer {
	if params.Rand == nil {
		params.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Optimizer{params: params}
}

// indexed pairs an interior waypoint with its original input position, so
// ordered crossover and mutation can treat coordinate-equal waypoints as
// distinct individuals — the reference optimizes by object identity, and
// this is the value-typed equivalent the design notes call for.
type indexed struct {
	pos int
	wp  core.Waypoint
}

// Optimize reorders the interior of waypoints (keeping the first and last
// fixed) to improve the fitness defined in fitness.go. Inputs of length <= 2
// are returned unchanged. The input (and output) is deduplicated by
// rounded (x,y) at 1mm precision.
func (o *Optimizer) Optimize(waypoints []core.Waypoint) []core.Waypoint {
	if len(waypoints) <= 2 {
		return waypoints
	}

	deduped := core.DedupeWaypoints(waypoints)
	if len(deduped) <= 2 {
		return deduped
	}

	start := deduped[0]
	end := deduped[len(deduped)-1]
	interior := make([]indexed, len(deduped)-2)
	for i, wp := range deduped[1 : len(deduped)-1] {
		interior[i] = indexed{pos: i, wp: wp}
	}

	if len(interior) <= 1 {
		return deduped
	}

	if o.params.Generations <= 0 {
		return deduped
	}

	population := o.initialPopulation(interior)

	bestFitness := math.Inf(-1)
	var best []indexed

	for gen := 0; gen < o.params.Generations; gen++ {
		fitness := make([]float64, len(population))
		bestIdx := 0
		for i, ind := range population {
			fitness[i] = o.fitness(ind, start, end)
			if fitness[i] > fitness[bestIdx] {
				bestIdx = i
			}
		}
		if fitness[bestIdx] > bestFitness {
			bestFitness = fitness[bestIdx]
			best = cloneIndividual(population[bestIdx])
		}

		selected := o.tournamentSelect(population, fitness)

		next := make([][]indexed, 0, o.params.PopulationSize)
		next = append(next, cloneIndividual(best))

		for len(next) < o.params.PopulationSize {
			parent1 := selected[o.params.Rand.Intn(len(selected))]
			parent2 := selected[o.params.Rand.Intn(len(selected))]

			var child []indexed
			if o.params.Rand.Float64() < o.params.CrossoverRate {
				child = o.orderedCrossover(parent1, parent2)
			} else {
				child = cloneIndividual(parent1)
			}

			if o.params.Rand.Float64() < o.params.MutationRate {
				o.mutate(child)
			}

			next = append(next, child)
		}

		population = next
	}

	if best == nil {
		return deduped
	}

	full := make([]core.Waypoint, 0, len(best)+2)
	full = append(full, start)
	for _, ind := range best {
		full = append(full, ind.wp)
	}
	full = append(full, end)

	return core.DedupeWaypoints(full)
}

func (o *Optimizer) initialPopulation(interior []indexed) [][]indexed {
	population := make([][]indexed, o.params.PopulationSize)
	for i := range population {
		ind := cloneIndividual(interior)
		o.params.Rand.Shuffle(len(ind), func(a, b int) { ind[a], ind[b] = ind[b], ind[a] })
		population[i] = ind
	}
	return population
}

func cloneIndividual(ind []indexed) []indexed {
	out := make([]indexed, len(ind))
	copy(out, ind)
	return out
}

// tournamentSelect draws TournamentSize distinct indices uniformly at
// random and keeps the fittest, repeated population_size/2 times.
func (o *Optimizer) tournamentSelect(population [][]indexed, fitness []float64) [][]indexed {
	n := len(population) / 2
	selected := make([][]indexed, 0, n)
	tSize := o.params.TournamentSize
	if tSize > len(population) {
		tSize = len(population)
	}
	for i := 0; i < n; i++ {
		indices := o.params.Rand.Perm(len(population))[:tSize]
		bestIdx := indices[0]
		for _, idx := range indices[1:] {
			if fitness[idx] > fitness[bestIdx] {
				bestIdx = idx
			}
		}
		selected = append(selected, population[bestIdx])
	}
	return selected
}

// orderedCrossover implements OX: copy parent1[a:b] into the child at the
// same positions, then fill the rest starting at b%n by scanning parent2
// rotated to start at b, skipping elements already placed (by identity,
// i.e. by original input position, not by coordinate).
func (o *Optimizer) orderedCrossover(parent1, parent2 []indexed) []indexed {
	n := len(parent1)
	if n <= 2 {
		return cloneIndividual(parent1)
	}

	a := o.params.Rand.Intn(n - 1)
	b := a + 1 + o.params.Rand.Intn(n-a) // b in [a+1, n], inclusive of n

	child := make([]indexed, n)
	present := make(map[int]bool, n)
	for i := a; i < b; i++ {
		child[i] = parent1[i]
		present[parent1[i].pos] = true
	}

	childIdx := b % n
	for i := 0; i < n; i++ {
		item := parent2[(b+i)%n]
		if present[item.pos] {
			continue
		}
		child[childIdx] = item
		present[item.pos] = true
		childIdx = (childIdx + 1) % n
	}

	return child
}

// mutate swaps two distinct, uniformly chosen positions in place.
func (o *Optimizer) mutate(ind []indexed) {
	if len(ind) <= 1 {
		return
	}
	idx := o.params.Rand.Perm(len(ind))[:2]
	i, j := idx[0], idx[1]
	ind[i], ind[j] = ind[j], ind[i]
}
