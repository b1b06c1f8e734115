// Package ga — cost and fitness evaluation.
//
// This file provides the tour evaluator: total cyclic distance of a route
// and its reciprocal fitness. Both are side-effect free.
//
// Design:
//   - Exported evaluators validate the route defensively and read city
//     coordinates; the unexported hot-path variant reads a prebuilt
//     distance matrix and skips validation (the loop validates upfront).
//   - Stable summation: distances are rounded to 1e-9 to avoid
//     cross-platform FP noise in comparisons and history.
//
// Ordering contract:
//   - Fitness is strictly monotonically decreasing in distance (except at
//     the zero-distance sentinel), so ranking by ascending distance and by
//     descending fitness never disagree.
package ga

import (
	"math"

	"github.com/katalvlaran/evotsp/city"
)

// roundScale controls cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting ranking.
const roundScale = 1e9

// TotalDistance computes the closed-cycle length of a route: the sum of
// city.Dist(cities[r[i]], cities[r[(i+1) mod n]]) for i in 0..n-1.
//
// Contract:
//   - r must be a permutation of {0..len(cities)-1}; otherwise ErrInvalidRoute.
//   - cities must be non-empty; otherwise ErrNoCities.
//   - n == 1 yields 0 (a single city has a degenerate zero-length cycle).
//
// Complexity: O(n).
func TotalDistance(r Route, cities []city.City) (float64, error) {
	var n = len(cities)
	if n == 0 {
		return 0, ErrNoCities
	}
	if err := ValidateRoute(r, n); err != nil {
		return 0, err
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n; i++ {
		sum += city.Dist(cities[r[i]], cities[r[(i+1)%n]])
	}

	return round1e9(sum), nil
}

// Fitness returns the reciprocal of the route's total distance; higher is
// better. A zero-distance tour (n == 1, or all cities coincident) yields
// math.Inf(1), which compares strictly greater than any finite fitness —
// degenerate tours are never disadvantaged by a division artifact.
//
// Fitness is informational; the solver's own selection and elitism rank by
// distance directly (lower is better).
//
// Complexity: O(n).
func Fitness(r Route, cities []city.City) (float64, error) {
	d, err := TotalDistance(r, cities)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return math.Inf(1), nil
	}

	return 1 / d, nil
}

// routeCost sums the cyclic length of r against a prebuilt distance
// matrix. Hot-path variant: no validation, no rounding drift (each entry
// was derived from the same metric); the final sum is stabilized.
//
// Contract (enforced by the loop's upfront validation):
//   - r is a valid permutation of {0..n-1}, dist is n×n.
//
// Complexity: O(n).
func routeCost(r Route, dist [][]float64) float64 {
	var (
		n   = len(r)
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += dist[r[i]][r[i+1]]
	}
	// Closing edge back to the start.
	sum += dist[r[n-1]][r[0]]

	return round1e9(sum)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// This keeps recorded distances stable across platforms without affecting
// algorithmic correctness.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
