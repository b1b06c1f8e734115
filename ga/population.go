// Package ga — population initialization.
package ga

import "math/rand"

// InitPopulation builds popSize independent random routes, each a uniform
// shuffle of the identity permutation 0..numCities-1. Individuals are not
// deduplicated; identical routes may coexist.
//
// Contract:
//   - popSize ≥ 1; otherwise ErrPopulationSize.
//   - numCities ≥ 1; otherwise ErrNoCities.
//   - rng may be nil (deterministic default stream).
//
// Complexity: O(popSize·numCities) time and space.
func InitPopulation(popSize, numCities int, rng *rand.Rand) ([]Route, error) {
	if popSize < 1 {
		return nil, ErrPopulationSize
	}
	if numCities < 1 {
		return nil, ErrNoCities
	}

	var (
		r    = rngOrDefault(rng)
		pop  = make([]Route, popSize)
		base = make(Route, numCities)
		i    int
		j    int
	)
	for j = 0; j < numCities; j++ {
		base[j] = j
	}

	for i = 0; i < popSize; i++ {
		pop[i] = CopyRoute(base)
		shuffleIntsInPlace(pop[i], r)
	}

	return pop, nil
}
