// Package ga_test — tour evaluator: cyclic length, reverse invariance,
// fitness sentinel and fitness/distance ordering consistency.
package ga_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/evotsp/city"
	"github.com/katalvlaran/evotsp/ga"
	"github.com/stretchr/testify/require"
)

// unitSquare is the 4-city instance with a known optimal perimeter of 4.0.
var unitSquare = []city.City{
	{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0},
}

// TestTotalDistance_UnitSquare: walking the square boundary in index order
// closes a cycle of length exactly 4.
func TestTotalDistance_UnitSquare(t *testing.T) {
	d, err := ga.TotalDistance([]int{0, 1, 2, 3}, unitSquare)
	require.NoError(t, err)
	require.Equal(t, 4.0, d)

	// A crossing tour is strictly longer: two diagonals replace two sides.
	cross, err := ga.TotalDistance([]int{0, 2, 1, 3}, unitSquare)
	require.NoError(t, err)
	require.InDelta(t, 2+2*math.Sqrt2, cross, 1e-9)
}

// TestTotalDistance_ReverseInvariance: a route and its reverse describe
// the same cycle, so their lengths must agree exactly.
func TestTotalDistance_ReverseInvariance(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	cities, err := city.Random(9, rng)
	require.NoError(t, err)

	route := rng.Perm(9)
	rev := make([]int, 9)
	for i := 0; i < 9; i++ {
		rev[i] = route[8-i]
	}

	d1, err := ga.TotalDistance(route, cities)
	require.NoError(t, err)
	d2, err := ga.TotalDistance(rev, cities)
	require.NoError(t, err)
	require.Equal(t, d1, d2)
}

// TestTotalDistance_SingleCity: n == 1 yields a degenerate zero-length cycle.
func TestTotalDistance_SingleCity(t *testing.T) {
	d, err := ga.TotalDistance([]int{0}, []city.City{{X: 42, Y: 17}})
	require.NoError(t, err)
	require.Equal(t, 0.0, d)
}

// TestTotalDistance_TwoCities: the cycle walks there and back.
func TestTotalDistance_TwoCities(t *testing.T) {
	d, err := ga.TotalDistance([]int{0, 1}, []city.City{{X: 0, Y: 0}, {X: 3, Y: 4}})
	require.NoError(t, err)
	require.Equal(t, 10.0, d)
}

// TestTotalDistance_BadInput covers the precondition sentinels.
func TestTotalDistance_BadInput(t *testing.T) {
	_, err := ga.TotalDistance([]int{0}, nil)
	require.ErrorIs(t, err, ga.ErrNoCities)

	// Wrong length.
	_, err = ga.TotalDistance([]int{0, 1}, unitSquare)
	require.ErrorIs(t, err, ga.ErrInvalidRoute)

	// Duplicate index.
	_, err = ga.TotalDistance([]int{0, 1, 1, 3}, unitSquare)
	require.ErrorIs(t, err, ga.ErrInvalidRoute)

	// Out-of-range index.
	_, err = ga.TotalDistance([]int{0, 1, 2, 4}, unitSquare)
	require.ErrorIs(t, err, ga.ErrInvalidRoute)
}

// TestFitness_ReciprocalAndSentinel: fitness is 1/d for positive distance
// and the +Inf sentinel for a zero-distance tour.
func TestFitness_ReciprocalAndSentinel(t *testing.T) {
	f, err := ga.Fitness([]int{0, 1, 2, 3}, unitSquare)
	require.NoError(t, err)
	require.Equal(t, 0.25, f)

	// Single city: zero distance ⇒ +Inf, strictly above any finite fitness.
	f, err = ga.Fitness([]int{0}, []city.City{{X: 1, Y: 1}})
	require.NoError(t, err)
	require.True(t, math.IsInf(f, 1))
	require.Greater(t, f, math.MaxFloat64)

	// Coincident cities: also zero distance.
	f, err = ga.Fitness([]int{0, 1}, []city.City{{X: 2, Y: 2}, {X: 2, Y: 2}})
	require.NoError(t, err)
	require.True(t, math.IsInf(f, 1))
}

// TestFitness_OrderingConsistency: for any two routes over the same cities,
// distance(A) < distance(B) ⇔ fitness(A) > fitness(B) (finite case).
func TestFitness_OrderingConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	cities, err := city.Random(8, rng)
	require.NoError(t, err)

	var i int
	for i = 0; i < 50; i++ {
		a, b := rng.Perm(8), rng.Perm(8)

		da, err := ga.TotalDistance(a, cities)
		require.NoError(t, err)
		db, err := ga.TotalDistance(b, cities)
		require.NoError(t, err)
		fa, err := ga.Fitness(a, cities)
		require.NoError(t, err)
		fb, err := ga.Fitness(b, cities)
		require.NoError(t, err)

		require.Equal(t, da < db, fa > fb)
	}
}
