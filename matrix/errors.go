// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions MUST return these sentinels (optionally wrapped with
// context via %w) and tests MUST check them via errors.Is. No function
// panics on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	// Public indexers (At/Set/AddAt/RowView) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrRaggedRows signals that row slices passed to NewDenseFromRows
	// do not all share the same length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required (e.g. a replacement value).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
