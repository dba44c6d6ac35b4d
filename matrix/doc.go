// Package matrix provides the dense numeric storage shared by the optimizer,
// the distance providers and the exact reference solver.
//
// The package provides:
//
//   - Matrix: a minimal, bounds-checked interface over two-dimensional
//     float64 storage (Rows, Cols, At, Set, Clone).
//   - Dense: a row-major implementation backed by a single flat slice,
//     with in-place kernels (Fill, Scale, AddAt, ReplaceNonFinite) used on
//     hot paths where allocating a fresh matrix per call is not acceptable.
//
// Matrices are best for the dense, small-to-medium instances this module
// targets, where O(n²) memory is acceptable.
package matrix
