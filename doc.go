// Package acotour plans short closed routes over a fixed set of locations
// with Ant Colony Optimization: a single depot, every stop visited once,
// back to the depot.
//
// 🚀 What is acotour?
//
//	A small, dependency-light toolkit built around one optimizer:
//		• aco/     : the colony engine: pheromone, move rule, elite deposit, evaporation
//		• matrix/  : dense float64 storage shared by every package
//		• distance/: great-circle distances, JSON/CSV matrix loading, sanitizing
//		• exact/   : Held–Karp optimum for small inputs (reference and tests)
//		• refine/  : optional 2-opt polishing of a finished tour
//		• report/  : convergence chart (gonum/plot) and text summary
//		• store/   : run history in memory or SQLite
//		• cmd/acotour: command line front end
//
// ✨ Guarantees
//
//   - Deterministic: a fixed seed gives the same tour for any worker count
//   - Safe: configuration errors are returned, never panicked
//   - Cancellable: runs stop at the next iteration boundary
//
// Quick example:
//
//	d, _ := matrix.NewDenseFromRows(rows)
//	res, err := aco.Solve(d, aco.Params{
//		Ants: 10, Elite: 3, Iterations: 100,
//		Decay: 0.1, Alpha: 1, Beta: 2,
//	}, aco.WithSeed(42))
//
//	go install github.com/katalvlaran/acotour/cmd/acotour@latest
package acotour
