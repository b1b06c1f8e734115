// Package ga — configuration and input validation.
//
// This file contains the staged validation executed before the evolution
// loop starts. Precondition violations are caller mistakes and fail fast
// with a descriptive sentinel; the loop itself has no recoverable error
// states.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - O(1) checks; no hidden allocations.
package ga

import "github.com/katalvlaran/evotsp/city"

// validateAll verifies Options + city slice for one Evolve run.
// It returns n (the number of cities) on success.
//
// Contract:
//   - cities non-empty and n ≥ 2 (a tour over fewer cities is degenerate;
//     the pure evaluators still accept n == 1, see cost.go).
//   - Options bounds per validateOptions.
//
// Complexity: O(1).
func validateAll(cities []city.City, opts Options) (int, error) {
	var n = len(cities)

	// Stage 1: input shape.
	if n == 0 {
		return 0, ErrNoCities
	}
	if n < 2 {
		return 0, ErrTooFewCities
	}

	// Stage 2: Options-only sanity.
	if err := validateOptions(opts); err != nil {
		return 0, err
	}

	return n, nil
}

// validateOptions checks internal consistency of Options without
// referencing the city set.
//
// Bounds:
//   - PopSize ≥ 1 (a single-route population is legal: with elitism it
//     degenerates to carrying the elite forward each generation).
//   - Generations ≥ 1.
//   - 1 ≤ TournamentSize ≤ PopSize (sampling is without replacement).
//   - CrossoverRate, MutationRate ∈ [0,1].
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.PopSize < 1 {
		return ErrPopulationSize
	}
	if opts.Generations < 1 {
		return ErrGenerations
	}
	if opts.TournamentSize < 1 || opts.TournamentSize > opts.PopSize {
		return ErrTournamentSize
	}
	if opts.CrossoverRate < 0 || opts.CrossoverRate > 1 {
		return ErrRateOutOfRange
	}
	if opts.MutationRate < 0 || opts.MutationRate > 1 {
		return ErrRateOutOfRange
	}

	return nil
}
