// Package evotsp is your in-memory playground for evolutionary route
// optimization — a genetic-algorithm heuristic solver for the Euclidean
// Travelling Salesman Problem.
//
// 🚀 What is evotsp?
//
//	A small, focused, pure-Go library that evolves short cyclic tours
//	over a fixed set of 2-D cities:
//		• Population-based stochastic search with tournament selection
//		• Order Crossover (OX) — permutation-preserving recombination
//		• Swap mutation and optional elitism
//		• Per-generation best-distance history for convergence analysis
//
// ✨ Why choose evotsp?
//
//   - Deterministic – every stochastic step reads one explicitly seeded RNG
//   - Rock-solid invariants – every produced route is a valid permutation
//   - Pure Go – no cgo, no hidden deps
//   - Batch-friendly – configuration is an explicit struct, never global state
//
// Everything is organized under two subpackages:
//
//	city/ — City coordinates, Euclidean distance, uniform random
//	        instance generation, dense distance-matrix construction
//	ga/   — the genetic algorithm: options, operators and the
//	        generation-by-generation evolution loop
//
// Quick example:
//
//	cities, _ := city.Random(10, nil)
//	res, err := ga.Evolve(cities, ga.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("best tour %v, length %.2f\n", res.Route, res.Distance)
//
// The solver is a heuristic: it converges toward a near-optimal tour within
// a fixed generation budget, with no optimality guarantee. For exact or
// approximation-bounded solvers see github.com/katalvlaran/lvlath/tsp.
package evotsp
