// Package city provides the geometric substrate for the evotsp solver:
// an immutable 2-D City coordinate, Euclidean distance, uniform random
// instance generation, and dense distance-matrix construction.
//
// The genetic algorithm in ga/ never inspects coordinates directly; it
// consumes the [][]float64 distance matrix built here. Any valid city
// slice is accepted regardless of how it was produced — Random is merely
// a convenience sampler for experiments and examples.
//
// Determinism:
//   - Random takes an explicit *rand.Rand; nil selects a fixed default
//     stream so repeated runs stay reproducible.
//
// Complexity:
//   - Dist: O(1). Random: O(n). DistanceMatrix: O(n²) time and space.
package city
