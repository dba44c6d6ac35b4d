package aco_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/acotour/matrix"
)

const (
	// epsTiny is the tolerance for values that should match up to FP noise.
	epsTiny = 1e-12

	// seedDet is the fixed seed used by deterministic tests.
	seedDet = int64(42)
)

// dense builds a *matrix.Dense from literal rows or fails the test.
func dense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return d
}

// unitSquare returns the 4-corner square of side 1 (diagonals √2).
// The optimal tour is the perimeter, length 4.
func unitSquare(t testing.TB) *matrix.Dense {
	s := math.Sqrt2
	return dense(t, [][]float64{
		{0, 1, s, 1},
		{1, 0, 1, s},
		{s, 1, 0, 1},
		{1, s, 1, 0},
	})
}

// constant returns an n×n matrix with v off the diagonal and 0 on it.
func constant(t testing.TB, n int, v float64) *matrix.Dense {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = v
			}
		}
	}
	return dense(t, rows)
}

// randomEuclid returns a symmetric Euclidean matrix over n points in the
// unit square, generated from seed.
func randomEuclid(t testing.TB, n int, seed uint64) *matrix.Dense {
	r := rand.New(rand.NewPCG(seed, seed^0x5bd1e995))
	pts := make([][2]float64, n)
	for i := range pts {
		pts[i] = [2]float64{r.Float64(), r.Float64()}
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
		}
	}
	return dense(t, rows)
}

// requireNonIncreasing asserts h[i] <= h[i-1] for every i.
func requireNonIncreasing(t testing.TB, h []float64) {
	t.Helper()
	for i := 1; i < len(h); i++ {
		require.LessOrEqualf(t, h[i], h[i-1], "history increased at %d: %v -> %v", i, h[i-1], h[i])
	}
}
