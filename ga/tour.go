// Package ga — route utilities shared by all operators.
//
// This file contains compact, allocation-conscious helpers that operate
// purely on route structure (index sequences), without touching distances.
// Provided helpers:
//   - ValidateRoute: verify a permutation over {0..n-1}.
//   - CopyRoute: independent copy of a route slice.
//   - ClosedTour: explicit start-to-start closed form of a route.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - O(n) time for every helper; in-place callers avoid extra allocations.
package ga

// ValidateRoute checks that r is a permutation of {0..n-1} of length n.
// It allocates a single O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidateRoute(r Route, n int) error {
	if n <= 0 {
		return ErrInvalidRoute
	}
	if len(r) != n {
		return ErrInvalidRoute
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = r[i]
		// Out-of-range element violates the permutation contract.
		if v < 0 || v >= n {
			return ErrInvalidRoute
		}
		// Duplicate also violates the bijection contract.
		if seen[v] {
			return ErrInvalidRoute
		}
		seen[v] = true
	}

	return nil
}

// CopyRoute returns an independent copy of the input route slice.
// Operators that hand routes across ownership boundaries (selection,
// elitism) must copy — the population snapshot stays read-only while the
// next generation is built.
//
// Complexity: O(n) time, O(n) space.
func CopyRoute(r Route) Route {
	if r == nil {
		return nil
	}
	out := make(Route, len(r))
	copy(out, r)

	return out
}

// ClosedTour returns the explicit closed form of a route: a fresh slice of
// length n+1 with out[0] == out[n] == r[0]. Useful for reporting and for
// interop with closed-tour consumers; the solver itself keeps routes open
// and treats the wrap-around edge implicitly.
//
// Contract:
//   - r must be a valid permutation; otherwise ErrInvalidRoute.
//
// Complexity: O(n) time, O(n) space.
func ClosedTour(r Route) ([]int, error) {
	var n = len(r)
	if err := ValidateRoute(r, n); err != nil {
		return nil, err
	}

	out := make([]int, n+1)
	copy(out, r)
	out[n] = r[0]

	return out, nil
}
