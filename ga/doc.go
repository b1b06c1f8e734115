// Package ga provides a genetic-algorithm heuristic for the Euclidean
// Travelling Salesman Problem.
//
// A Route is a permutation of city indices 0..n-1 interpreted as a closed
// cycle. Evolve repeatedly refines a fixed-size population of routes:
//
//   - Tournament — selection: best of a random subset, sampled without
//     replacement, returned as an independent copy.
//   - OrderCrossover — recombination (OX): a contiguous block inherited
//     from one parent, the remainder filled in the other parent's
//     circular order. Always yields a valid permutation.
//   - SwapMutation — perturbation: transposition of two distinct positions.
//   - Elitism — optional unconditional carry-over of the generation best.
//
// Complexity per generation: O(P·n + P·t·n) with population P, tournament
// size t and n cities; Evolve therefore runs in O(G·P·t·n) for G
// generations, with O(P·n + n²) space (two populations plus the distance
// matrix).
//
// Determinism: a single *rand.Rand seeded from Options.Seed drives
// initialization, selection, crossover and mutation; identical inputs and
// seed reproduce the run exactly. Execution is single-threaded; a run
// owns its populations and history exclusively.
//
// The solver terminates purely on the generation budget. Callers wanting
// early stopping inspect Result.History and wrap the run externally.
package ga
