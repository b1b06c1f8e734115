// Package ga — the evolution loop.
//
// Evolve orchestrates generation-by-generation reproduction over two
// alternating population buffers. Within one generation the current
// population is a read-only snapshot: selection copies winners, crossover
// allocates children, and the next generation is assembled into entirely
// separate storage, swapped in at the generation boundary. The two
// populations never alias the same route.
//
// Per-generation transition:
//  1. Evaluate every route once; locate the generation best by strict
//     minimum (first seen wins ties) and update the run-wide best record
//     on strict improvement.
//  2. With elitism, copy the generation best unchanged into the next
//     population.
//  3. Fill the remainder: two independent tournaments pick the parents
//     (the same route may win both); with probability CrossoverRate the
//     child is their order crossover, otherwise a copy of parent1; with
//     probability MutationRate the child is swap-mutated in place.
//  4. Swap buffers and append the run-wide best distance to History.
//
// Termination is purely generation-count-driven; callers wanting early
// stopping inspect History externally.
package ga

import (
	"math"

	"github.com/katalvlaran/evotsp/city"
)

// Evolve runs the genetic algorithm over the given cities and returns the
// best route found, its total distance, and the per-generation history.
//
// Contracts:
//   - len(cities) ≥ 2; Options within bounds (see validate.go). Violations
//     fail fast before the loop with a sentinel from types.go.
//   - Deterministic for a fixed city slice and Options.Seed; seed 0 maps
//     to the fixed default stream.
//
// Complexity: O(G·P·(t+n)) time, O(P·n + n²) space — G generations,
// population P, tournament size t, n cities.
func Evolve(cities []city.City, opts Options) (Result, error) {
	n, err := validateAll(cities, opts)
	if err != nil {
		return Result{}, err
	}

	// Pairwise distances are materialized once; every evaluation afterwards
	// is a pure O(n) matrix walk.
	dist, err := city.DistanceMatrix(cities)
	if err != nil {
		return Result{}, err
	}

	// One RNG per run: initialization, selection, crossover and mutation
	// all read this single stream.
	rng := rngFromSeed(opts.Seed)

	pop, err := InitPopulation(opts.PopSize, n, rng)
	if err != nil {
		return Result{}, err
	}

	var (
		next    = make([]Route, 0, opts.PopSize)
		scores  = make([]float64, opts.PopSize)
		history = make([]float64, 0, opts.Generations)

		bestRoute Route
		bestDist  = math.Inf(1)

		gen   int
		i     int
		bi    int // index of the generation best
		child Route
	)

	for gen = 0; gen < opts.Generations; gen++ {
		// Stage 1: evaluate the snapshot and track the run-wide best.
		for i = 0; i < opts.PopSize; i++ {
			scores[i] = routeCost(pop[i], dist)
		}
		bi = 0
		for i = 1; i < opts.PopSize; i++ {
			if scores[i] < scores[bi] {
				bi = i
			}
		}
		if scores[bi] < bestDist {
			bestDist = scores[bi]
			bestRoute = CopyRoute(pop[bi])
		}

		// Stage 2: elitism — the generation best survives unchanged.
		next = next[:0]
		if opts.Elitism {
			next = append(next, CopyRoute(pop[bi]))
		}

		// Stage 3: offspring until the next population is full.
		for len(next) < opts.PopSize {
			p1 := pop[tournamentPick(scores, opts.TournamentSize, rng)]
			p2 := pop[tournamentPick(scores, opts.TournamentSize, rng)]

			if rng.Float64() < opts.CrossoverRate {
				child, err = OrderCrossover(p1, p2, rng)
				if err != nil {
					return Result{}, err
				}
			} else {
				child = CopyRoute(p1)
			}

			if rng.Float64() < opts.MutationRate {
				SwapMutation(child, rng)
			}

			next = append(next, child)
		}

		// Stage 4: generation boundary — swap buffers, record history.
		pop, next = next, pop
		history = append(history, bestDist)
	}

	return Result{Route: bestRoute, Distance: bestDist, History: history}, nil
}
