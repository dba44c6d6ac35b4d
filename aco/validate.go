// Package aco - distance-matrix validation.
//
// Runs once in NewEngine, before any stochastic work. No logging, no
// panics on user input; only sentinels from errors.go wrapped in
// ErrConfiguration.
package aco

import (
	"math"

	"github.com/katalvlaran/acotour/matrix"
)

// validateDistances snapshots dist into a fresh *matrix.Dense and verifies:
//   - non-nil, n ≥ 1, square,
//   - every entry finite (no NaN, no ±Inf),
//   - every entry ≥ 0,
//   - Σ_i max_j d[i][j] is finite. Every tour leaves each vertex exactly
//     once, so this bounds every tour length and keeps Result.Distance finite.
//
// The diagonal is not required to be zero: it only matters for n == 1,
// where the single tour [0,0] costs dist[0][0].
//
// Complexity: O(n²) time and space.
func validateDistances(dist matrix.Matrix) (*matrix.Dense, error) {
	if dist == nil {
		return nil, configErr(ErrEmptyMatrix, "nil matrix")
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr <= 0 || nc <= 0 {
		return nil, configErr(ErrEmptyMatrix, "%dx%d", nr, nc)
	}
	if nr != nc {
		return nil, configErr(ErrNonSquare, "%dx%d", nr, nc)
	}

	d, err := matrix.DenseOf(dist)
	if err != nil {
		return nil, configErr(ErrNonSquare, "%v", err)
	}

	var (
		n    = nr
		i, j int
		v    float64
		row  []float64
		hi   float64
		sum  float64
	)
	for i = 0; i < n; i++ {
		row, _ = d.RowView(i) // safe: i < n
		hi = 0
		for j, v = range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, configErr(ErrNonFiniteDistance, "d[%d][%d]=%v", i, j, v)
			}
			if v < 0 {
				return nil, configErr(ErrNegativeDistance, "d[%d][%d]=%v", i, j, v)
			}
			hi = max(hi, v)
		}
		if sum += hi; math.IsInf(sum, 1) {
			return nil, configErr(ErrDistanceOverflow, "row maxima exceed float64 range at row %d", i)
		}
	}

	return d, nil
}
