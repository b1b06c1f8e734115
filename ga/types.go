// Package ga — core types and configuration options for the
// genetic-algorithm TSP solver.
//
// Options:
//
//	– PopSize:        number of routes per generation (must be ≥ 1).
//	– Generations:    number of generations to run (must be ≥ 1).
//	– TournamentSize: selection pressure; 1 ≤ t ≤ PopSize.
//	– CrossoverRate:  probability in [0,1] of recombining two parents.
//	– MutationRate:   probability in [0,1] of mutating a child.
//	– Elitism:        carry the generation best into the next population.
//	– Seed:           RNG seed; 0 selects a fixed default stream.
//
// Errors (sentinel):
//
//	– ErrNoCities       if the city slice is empty.
//	– ErrTooFewCities   if fewer than two cities were supplied to Evolve.
//	– ErrPopulationSize if PopSize < 1 or a population is empty.
//	– ErrGenerations    if Generations < 1.
//	– ErrTournamentSize if TournamentSize is outside [1, PopSize].
//	– ErrRateOutOfRange if CrossoverRate or MutationRate is outside [0,1].
//	– ErrInvalidRoute   if a route is not a permutation of 0..n-1.
package ga

import "errors"

// Sentinel errors returned by the ga package. Precondition violations are
// caller mistakes surfaced before the loop starts, never recovered inside it.
var (
	// ErrNoCities indicates an empty city slice.
	ErrNoCities = errors.New("ga: city set is empty")

	// ErrTooFewCities indicates fewer than two cities; a tour needs n ≥ 2.
	ErrTooFewCities = errors.New("ga: need at least two cities")

	// ErrPopulationSize indicates a non-positive population size.
	ErrPopulationSize = errors.New("ga: population size must be at least 1")

	// ErrGenerations indicates a non-positive generation budget.
	ErrGenerations = errors.New("ga: generations must be at least 1")

	// ErrTournamentSize indicates a tournament size outside [1, PopSize];
	// tournaments sample without replacement and cannot exceed the population.
	ErrTournamentSize = errors.New("ga: tournament size must be in [1, population size]")

	// ErrRateOutOfRange indicates a crossover or mutation probability
	// outside the closed interval [0,1].
	ErrRateOutOfRange = errors.New("ga: rate must be within [0,1]")

	// ErrInvalidRoute indicates that a route is not a valid permutation of
	// {0..n-1} — wrong length, out-of-range index, or duplicate city.
	ErrInvalidRoute = errors.New("ga: route is not a permutation of the city indices")
)

// Route is an ordered sequence of city indices of length n — a permutation
// of {0..n-1} — interpreted as a closed cycle (the last city connects back
// to the first).
type Route = []int

// Options configures one run of the evolution loop. A run never reads
// process-wide state; independent runs with independent Options never
// interfere.
type Options struct {
	PopSize        int     // routes per generation, ≥ 1
	Generations    int     // generation budget, ≥ 1
	TournamentSize int     // selection subset size, 1 ≤ t ≤ PopSize
	CrossoverRate  float64 // probability of order crossover, in [0,1]
	MutationRate   float64 // probability of swap mutation, in [0,1]
	Elitism        bool    // carry the generation best forward unchanged
	Seed           int64   // RNG seed; 0 ⇒ fixed default stream
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// WithPopSize sets the population size.
func WithPopSize(p int) Option {
	return func(o *Options) {
		o.PopSize = p
	}
}

// WithGenerations sets the generation budget.
func WithGenerations(g int) Option {
	return func(o *Options) {
		o.Generations = g
	}
}

// WithTournamentSize sets the selection subset size.
func WithTournamentSize(t int) Option {
	return func(o *Options) {
		o.TournamentSize = t
	}
}

// WithCrossoverRate sets the probability of recombination per child.
func WithCrossoverRate(r float64) Option {
	return func(o *Options) {
		o.CrossoverRate = r
	}
}

// WithMutationRate sets the probability of mutation per child.
func WithMutationRate(r float64) Option {
	return func(o *Options) {
		o.MutationRate = r
	}
}

// WithElitism enables or disables elitist carry-over.
func WithElitism(on bool) Option {
	return func(o *Options) {
		o.Elitism = on
	}
}

// WithSeed fixes the RNG seed for a reproducible run.
// Seed 0 keeps the deterministic default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// DefaultOptions returns an Options struct initialized with the classic
// small-instance defaults. Use it as a starting point for functional-option
// overrides:
//
//	opts := ga.DefaultOptions(ga.WithSeed(42), ga.WithPopSize(100))
//
// Defaults:
//   - PopSize:        50
//   - Generations:    500
//   - TournamentSize: 5
//   - CrossoverRate:  0.8
//   - MutationRate:   0.2
//   - Elitism:        true
//   - Seed:           0 (deterministic default stream)
func DefaultOptions(opts ...Option) Options {
	o := Options{
		PopSize:        50,
		Generations:    500,
		TournamentSize: 5,
		CrossoverRate:  0.8,
		MutationRate:   0.2,
		Elitism:        true,
		Seed:           0,
	}

	var apply Option
	for _, apply = range opts {
		apply(&o)
	}

	return o
}

// Result holds the outcome of one evolution run.
type Result struct {
	// Route is the best permutation of city indices found across all
	// generations. Interpreted as a closed cycle; see ClosedTour for the
	// explicit start-to-start form.
	Route Route

	// Distance is the total cyclic length of Route, stabilized to 1e-9.
	Distance float64

	// History is the append-only sequence of best-so-far distances, one
	// entry per generation: len(History) == Options.Generations.
	History []float64
}
