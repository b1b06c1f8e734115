// Package city — coordinate primitives and instance generation.
//
// This file holds the two collaborator-boundary operations of the solver:
// the Euclidean metric and the uniform random city sampler. Both are pure
// with respect to their inputs; the sampler's only state is the RNG it is
// handed.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - Explicit RNG plumbing; nil rng falls back to a fixed default stream.
package city

import (
	"math"
	"math/rand"
)

// coordMax bounds generated coordinates to the half-open square
// [0, coordMax) × [0, coordMax). The value matches the classic benchmark
// plane for small TSP instances.
const coordMax = 100.0

// defaultRNGSeed is the fixed "zero" seed used when callers pass a nil RNG.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// Dist returns the Euclidean distance between two cities.
// It is symmetric and non-negative for all inputs; coordinates on a
// bounded plane raise no overflow concerns.
//
// Complexity: O(1).
func Dist(a, b City) float64 {
	var (
		dx = a.X - b.X
		dy = a.Y - b.Y
	)

	return math.Sqrt(dx*dx + dy*dy)
}

// Random generates n cities with coordinates drawn uniformly at random
// from [0, coordMax) in each axis. If rng is nil, a deterministic default
// stream is used. n == 0 yields an empty, non-nil slice; n < 0 yields
// ErrNegativeCount.
//
// Complexity: O(n) time, O(n) space.
func Random(n int, rng *rand.Rand) ([]City, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}

	var r = rng
	if r == nil {
		r = rand.New(rand.NewSource(defaultRNGSeed))
	}

	out := make([]City, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = City{
			X: r.Float64() * coordMax,
			Y: r.Float64() * coordMax,
		}
	}

	return out, nil
}
