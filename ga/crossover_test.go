// Package ga_test — Order Crossover: the worked reference case, the block
// inheritance invariant, and the permutation postcondition under random
// parents and cut points.
package ga_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/evotsp/ga"
	"github.com/stretchr/testify/require"
)

// TestOrderCrossoverAt_ReferenceCase pins the canonical worked example:
// p1=[0,1,2,3,4], p2=[4,3,2,1,0], cuts [1,3]. The child keeps p1's block
// at positions 1..3 and fills positions 4 then 0 from p2's circular order
// starting after the block (0, 4, 3, 2, 1 → unused: 0 then 4).
func TestOrderCrossoverAt_ReferenceCase(t *testing.T) {
	p1 := ga.Route{0, 1, 2, 3, 4}
	p2 := ga.Route{4, 3, 2, 1, 0}

	child, err := ga.OrderCrossoverAt(p1, p2, 1, 3)
	require.NoError(t, err)
	require.Equal(t, ga.Route{4, 1, 2, 3, 0}, child)
}

// TestOrderCrossoverAt_FullBlock: cuts spanning the whole route leave no
// positions to fill — the child equals parent1.
func TestOrderCrossoverAt_FullBlock(t *testing.T) {
	p1 := ga.Route{3, 0, 4, 1, 2}
	p2 := ga.Route{0, 1, 2, 3, 4}

	child, err := ga.OrderCrossoverAt(p1, p2, 0, 4)
	require.NoError(t, err)
	require.Equal(t, p1, child)
}

// TestOrderCrossoverAt_BlockInheritance: for random parents and all legal
// cut pairs, child[start..end] equals p1[start..end] exactly and the child
// is a valid permutation.
func TestOrderCrossoverAt_BlockInheritance(t *testing.T) {
	const n = 9
	rng := rand.New(rand.NewSource(17))

	var trial, start, end, i int
	for trial = 0; trial < 20; trial++ {
		p1, p2 := rng.Perm(n), rng.Perm(n)

		for start = 0; start < n-1; start++ {
			for end = start + 1; end < n; end++ {
				child, err := ga.OrderCrossoverAt(p1, p2, start, end)
				require.NoError(t, err)
				require.NoError(t, ga.ValidateRoute(child, n))

				for i = start; i <= end; i++ {
					require.Equal(t, p1[i], child[i], "inherited block mismatch at %d (cuts %d..%d)", i, start, end)
				}
			}
		}
	}
}

// TestOrderCrossover_RandomCuts: the sampling operator must always produce
// a valid permutation; parents stay untouched.
func TestOrderCrossover_RandomCuts(t *testing.T) {
	const n = 12
	rng := rand.New(rand.NewSource(19))

	p1, p2 := rng.Perm(n), rng.Perm(n)
	s1, s2 := ga.CopyRoute(p1), ga.CopyRoute(p2)

	var i int
	for i = 0; i < 300; i++ {
		child, err := ga.OrderCrossover(p1, p2, rng)
		require.NoError(t, err)
		require.NoError(t, ga.ValidateRoute(child, n))
	}

	require.Equal(t, s1, p1)
	require.Equal(t, s2, p2)
}

// TestOrderCrossover_TwoCities: the smallest non-degenerate size; the only
// cut pair is [0,1], so the child is always parent1.
func TestOrderCrossover_TwoCities(t *testing.T) {
	child, err := ga.OrderCrossover(ga.Route{1, 0}, ga.Route{0, 1}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, ga.Route{1, 0}, child)
}

// TestOrderCrossover_SingleCity degenerates to a copy of parent1.
func TestOrderCrossover_SingleCity(t *testing.T) {
	child, err := ga.OrderCrossover(ga.Route{0}, ga.Route{0}, nil)
	require.NoError(t, err)
	require.Equal(t, ga.Route{0}, child)
}

// TestOrderCrossover_BadInput covers the precondition sentinels.
func TestOrderCrossover_BadInput(t *testing.T) {
	_, err := ga.OrderCrossover(nil, nil, nil)
	require.ErrorIs(t, err, ga.ErrInvalidRoute)

	// Length mismatch.
	_, err = ga.OrderCrossover(ga.Route{0, 1}, ga.Route{0, 1, 2}, nil)
	require.ErrorIs(t, err, ga.ErrInvalidRoute)

	// Non-permutation parent.
	_, err = ga.OrderCrossoverAt(ga.Route{0, 0, 1}, ga.Route{0, 1, 2}, 0, 1)
	require.ErrorIs(t, err, ga.ErrInvalidRoute)

	// Cut points out of order or out of range.
	_, err = ga.OrderCrossoverAt(ga.Route{0, 1, 2}, ga.Route{2, 1, 0}, 2, 2)
	require.ErrorIs(t, err, ga.ErrInvalidRoute)
	_, err = ga.OrderCrossoverAt(ga.Route{0, 1, 2}, ga.Route{2, 1, 0}, -1, 1)
	require.ErrorIs(t, err, ga.ErrInvalidRoute)
	_, err = ga.OrderCrossoverAt(ga.Route{0, 1, 2}, ga.Route{2, 1, 0}, 1, 3)
	require.ErrorIs(t, err, ga.ErrInvalidRoute)
}
