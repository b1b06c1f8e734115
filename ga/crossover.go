// Package ga — Order Crossover (OX).
//
// OX is the permutation-preserving recombination operator: the child
// inherits a contiguous block from parent1 verbatim and the remaining
// positions are filled, walking circularly, with the unused cities in
// parent2's circular order. The relative order of parent2's contribution
// is preserved; the result is always a valid permutation.
package ga

import "math/rand"

// OrderCrossover produces one child from two parent routes using OX with
// cut points drawn uniformly at random. The two cut points are distinct by
// construction (see sampleCutPoints), so the inherited block is never
// empty and no start==end degeneracy exists.
//
// Contract:
//   - p1 and p2 must be permutations of the same {0..n-1}; otherwise
//     ErrInvalidRoute.
//   - n == 1 degenerates to a copy of p1 (no two distinct cut points exist).
//   - rng may be nil (deterministic default stream).
//
// Postcondition: the child is a valid permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func OrderCrossover(p1, p2 Route, rng *rand.Rand) (Route, error) {
	var n = len(p1)
	if n == 0 || len(p2) != n {
		return nil, ErrInvalidRoute
	}
	if n == 1 {
		if err := ValidateRoute(p1, 1); err != nil {
			return nil, err
		}

		return CopyRoute(p1), nil
	}

	start, end := sampleCutPoints(n, rngOrDefault(rng))

	return OrderCrossoverAt(p1, p2, start, end)
}

// OrderCrossoverAt is the deterministic OX core with explicit cut points,
// exported so the inheritance invariant can be exercised directly.
//
// Algorithm:
//  1. Copy p1[start..end] (inclusive) into the child at the same positions.
//  2. Walk child positions circularly from (end+1) mod n; fill each with
//     the next city of p2, read circularly from (end+1) mod n, skipping
//     cities already placed.
//
// Contract:
//   - p1 and p2 are permutations of the same {0..n-1}; 0 ≤ start < end < n.
//   - Violations yield ErrInvalidRoute.
//
// Complexity: O(n) time, O(n) space.
func OrderCrossoverAt(p1, p2 Route, start, end int) (Route, error) {
	var n = len(p1)
	if err := ValidateRoute(p1, n); err != nil {
		return nil, err
	}
	if err := ValidateRoute(p2, n); err != nil {
		return nil, err
	}
	if start < 0 || end >= n || start >= end {
		return nil, ErrInvalidRoute
	}

	var (
		child = make(Route, n)
		used  = make([]bool, n)
		i     int
		pos   int
		gene  int
	)

	// Stage 1: inherited block from p1.
	for i = start; i <= end; i++ {
		child[i] = p1[i]
		used[p1[i]] = true
	}

	// Stage 2: circular fill from p2. pos only visits positions outside
	// [start..end] — exactly n-(end-start+1) slots for as many unused genes.
	pos = (end + 1) % n
	for i = 0; i < n; i++ {
		gene = p2[(end+1+i)%n]
		if used[gene] {
			continue
		}
		child[pos] = gene
		used[gene] = true
		pos = (pos + 1) % n
	}

	return child, nil
}
