// Package ga — tournament selection.
package ga

import "math/rand"

// Tournament draws k distinct individuals uniformly at random (without
// replacement) from the population, ranks them by total cyclic distance
// against dist, and returns an independent copy of the lowest-distance
// individual. Ties break toward the earlier sampled index (first seen
// wins, strict improvement only).
//
// Returning a copy is mandatory: the population snapshot stays read-only,
// so the winner can be drawn again by a later tournament within the same
// generation without aliasing an in-flight child.
//
// Contract:
//   - pop must be non-empty; otherwise ErrPopulationSize.
//   - 1 ≤ k ≤ len(pop); otherwise ErrTournamentSize.
//   - dist is the n×n matrix for the routes' city set (city.DistanceMatrix).
//   - rng may be nil (deterministic default stream).
//
// Complexity: O(P + k·n) time with population size P.
func Tournament(pop []Route, dist [][]float64, k int, rng *rand.Rand) (Route, error) {
	if len(pop) == 0 {
		return nil, ErrPopulationSize
	}
	if k < 1 || k > len(pop) {
		return nil, ErrTournamentSize
	}

	var (
		idxs = sampleIndices(len(pop), k, rng)
		best = idxs[0]
		bd   = routeCost(pop[best], dist)
		i    int
		d    float64
	)
	for _, i = range idxs[1:] {
		d = routeCost(pop[i], dist)
		if d < bd {
			best, bd = i, d
		}
	}

	return CopyRoute(pop[best]), nil
}

// tournamentPick is the hot-path variant used by the evolution loop: the
// per-generation costs are already materialized in scores, so the
// tournament only samples indices and compares. Same contract and
// tie-break as Tournament.
//
// Complexity: O(P + k) time.
func tournamentPick(scores []float64, k int, rng *rand.Rand) int {
	var (
		idxs = sampleIndices(len(scores), k, rng)
		best = idxs[0]
		i    int
	)
	for _, i = range idxs[1:] {
		if scores[i] < scores[best] {
			best = i
		}
	}

	return best
}
