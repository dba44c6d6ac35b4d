// Package refine polishes a finished tour with deterministic 2-opt local
// search. It is an optional post-processing step: the colony search itself
// never calls it, so its results and guarantees are unaffected.
//
// The neighbourhood reverses a segment tour[i..k]. For asymmetric matrices
// the reversed segment is re-priced in its new direction, so the move is
// exact for any non-negative distance matrix, not only symmetric ones.
package refine
