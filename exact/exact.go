// Package exact computes optimal closed tours for small instances with the
// Held–Karp dynamic program. It serves as a reference optimum: the
// command-line tool reports the optimizer's gap against it and the aco
// tests use it as an oracle.
//
//   - Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
//   - Supports "missing" edges via math.Inf(1).
//   - Limited to n ≤ MaxHeldKarp to keep memory bounded.
package exact

import (
	"errors"
	"math"

	"github.com/katalvlaran/acotour/matrix"
)

// MaxHeldKarp is the largest instance HeldKarp accepts (2¹⁶·16 table cells).
const MaxHeldKarp = 16

var (
	// ErrTooLarge is returned when n > MaxHeldKarp.
	ErrTooLarge = errors.New("exact: instance too large for Held-Karp")

	// ErrNonSquare is returned for nil, empty or non-square matrices.
	ErrNonSquare = errors.New("exact: distance matrix is not square")

	// ErrIncompleteGraph is returned when no Hamiltonian cycle exists.
	ErrIncompleteGraph = errors.New("exact: incomplete distance matrix")
)

// Solution holds an optimal tour from vertex 0 and its cost.
type Solution struct {
	// Tour is the sequence of vertex indices, starting and ending at 0.
	// For n vertices, len(Tour) == n+1.
	Tour []int

	// Cost is the total distance of the cycle.
	Cost float64
}

// HeldKarp solves the instance exactly.
//
// dp[mask][j] = minimum cost to start at 0, visit exactly the vertices in
// mask (bit 0 always set), and end at j. After filling dp, the tour is
// closed by returning from the best j back to 0.
func HeldKarp(dist matrix.Matrix) (Solution, error) {
	if dist == nil || dist.Rows() == 0 || dist.Rows() != dist.Cols() {
		return Solution{}, ErrNonSquare
	}
	n := dist.Rows()
	if n > MaxHeldKarp {
		return Solution{}, ErrTooLarge
	}
	d, err := matrix.DenseOf(dist)
	if err != nil {
		return Solution{}, err
	}
	if n == 1 {
		c, _ := d.At(0, 0)
		return Solution{Tour: []int{0, 0}, Cost: c}, nil
	}

	var (
		full   = 1 << n
		all    = full - 1
		dp     = make([]float64, full*n)
		parent = make([]int, full*n)
		mask   int
		j, k   int
		c      float64
		cand   float64
	)
	for k = range dp {
		dp[k] = math.Inf(1)
		parent[k] = -1
	}
	dp[1*n+0] = 0 // mask {0}, standing on 0

	for mask = 1; mask <= all; mask += 2 { // odd masks contain vertex 0
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev := mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 || math.IsInf(dp[prev*n+k], 1) {
					continue
				}
				c, _ = d.At(k, j) // safe: k, j < n
				if math.IsInf(c, 1) {
					continue
				}
				cand = dp[prev*n+k] + c
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = k
				}
			}
		}
	}

	best := math.Inf(1)
	last := -1
	for j = 1; j < n; j++ {
		c, _ = d.At(j, 0)
		if math.IsInf(c, 1) {
			continue
		}
		if cand = dp[all*n+j] + c; cand < best {
			best = cand
			last = j
		}
	}
	if last < 0 {
		return Solution{}, ErrIncompleteGraph
	}

	tour := make([]int, n+1)
	mask = all
	j = last
	for i := n - 1; i >= 1; i-- {
		tour[i] = j
		p := parent[mask*n+j]
		mask ^= 1 << j
		j = p
	}

	return Solution{Tour: tour, Cost: best}, nil
}
