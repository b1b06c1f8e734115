// Package ga — swap mutation.
package ga

import "math/rand"

// SwapMutation exchanges the contents of two distinct positions of r,
// chosen uniformly at random, in place. A transposition of a permutation
// is a permutation, so the route invariant holds by construction.
//
// Routes shorter than two positions are left untouched.
//
// Complexity: O(1).
func SwapMutation(r Route, rng *rand.Rand) {
	if len(r) < 2 {
		return
	}

	i, j := sampleDistinctPair(len(r), rngOrDefault(rng))
	r[i], r[j] = r[j], r[i]
}
