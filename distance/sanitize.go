package distance

import (
	"fmt"

	"github.com/katalvlaran/acotour/matrix"
)

// Sanitize rewrites d in place so it satisfies the optimizer's input
// contract for missing data:
//   - the diagonal becomes 0,
//   - NaN and ±Inf off-diagonal entries become Unreachable.
//
// Negative entries are left untouched; they are malformed input, not missing
// routes, and the optimizer rejects them (see CheckNonNegative).
//
// It returns the number of off-diagonal entries replaced by Unreachable.
//
// Complexity: O(n²).
func Sanitize(d *matrix.Dense) int {
	var i int
	for i = 0; i < d.Rows() && i < d.Cols(); i++ {
		_ = d.Set(i, i, 0)
	}

	replaced, _ := d.ReplaceNonFinite(Unreachable) // safe: Unreachable is finite

	return replaced
}

// CheckNonNegative returns ErrBadInput naming the first negative entry of d.
// Run it after Sanitize so -Inf is already reported as missing.
func CheckNonNegative(d *matrix.Dense) error {
	var (
		i, j int
		v    float64
	)
	for i = 0; i < d.Rows(); i++ {
		for j = 0; j < d.Cols(); j++ {
			if v, _ = d.At(i, j); v < 0 {
				return fmt.Errorf("%w: negative distance %v at (%d,%d)", ErrBadInput, v, i, j)
			}
		}
	}
	return nil
}
