package refine

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/acotour/aco"
	"github.com/katalvlaran/acotour/matrix"
)

// ErrShortTour is returned for tours with fewer than 4 distinct vertices,
// where no 2-opt move exists.
var ErrShortTour = errors.New("refine: tour too short for 2-opt")

// Options tunes TwoOpt.
type Options struct {
	// Eps is the minimum gain for a move to be accepted (≥ 0).
	Eps float64
	// MaxMoves stops after this many accepted moves; 0 means run to a local optimum.
	MaxMoves int
}

// DefaultOptions accepts any gain above 1e-9 and runs to a local optimum.
func DefaultOptions() Options {
	return Options{Eps: 1e-9}
}

// Result is a polished tour.
type Result struct {
	Tour  []int
	Cost  float64
	Moves int
}

// TwoOpt runs first-improvement 2-opt on the closed tour and returns the
// improved copy; tour itself is not modified. Start and end stay at tour[0].
//
// ctx is checked once per accepted move; on cancellation the best tour so
// far is returned together with ctx.Err().
//
// Complexity: O(n²) candidate checks per pass, O(n) per accepted move.
func TwoOpt(ctx context.Context, dist matrix.Matrix, tour []int, opts Options) (Result, error) {
	if dist == nil {
		return Result{}, matrix.ErrNilMatrix
	}
	n := dist.Rows()
	if err := aco.ValidateTour(tour, n, tour0(tour)); err != nil {
		return Result{}, err
	}
	cost, err := aco.TourCost(dist, tour)
	if err != nil {
		return Result{}, err
	}
	if n < 4 {
		return Result{Tour: append([]int(nil), tour...), Cost: cost}, ErrShortTour
	}
	if opts.Eps < 0 || math.IsNaN(opts.Eps) {
		return Result{}, fmt.Errorf("refine: eps must be >= 0 (%v)", opts.Eps)
	}

	// Flat copy of dist for the hot loop.
	w := make([]float64, n*n)
	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if x, err = dist.At(i, j); err != nil {
				return Result{}, err
			}
			w[i*n+j] = x
		}
	}
	at := func(u, v int) float64 { return w[u*n+v] }

	cur := append([]int(nil), tour...)
	fwd := make([]float64, n+1) // fwd[p]: cost of cur[0..p] walked forward
	bwd := make([]float64, n+1) // bwd[p]: cost of cur[0..p] walked backward
	prefix := func() {
		for p := 1; p <= n; p++ {
			fwd[p] = fwd[p-1] + at(cur[p-1], cur[p])
			bwd[p] = bwd[p-1] + at(cur[p], cur[p-1])
		}
	}
	prefix()

	res := Result{}
	var (
		a, b, c, d int
		k          int
		delta      float64
		improved   bool
	)
	for {
		improved = false
		for i = 1; i <= n-2 && !improved; i++ {
			for k = i + 1; k <= n-1; k++ {
				a, b, c, d = cur[i-1], cur[i], cur[k], cur[k+1]
				// New arcs a→c and b→d, inner segment walked in reverse.
				delta = at(a, c) + at(b, d) + (bwd[k] - bwd[i]) -
					(at(a, b) + at(c, d) + (fwd[k] - fwd[i]))
				if delta >= -opts.Eps {
					continue
				}
				reverse(cur, i, k)
				prefix()
				res.Moves++
				improved = true
				break
			}
		}
		if !improved {
			break
		}
		if opts.MaxMoves > 0 && res.Moves >= opts.MaxMoves {
			break
		}
		if err = ctx.Err(); err != nil {
			break
		}
	}

	res.Tour = cur
	res.Cost = fwd[n]
	return res, err
}

func tour0(tour []int) int {
	if len(tour) == 0 {
		return aco.StartVertex
	}
	return tour[0]
}

func reverse(t []int, i, k int) {
	for i < k {
		t[i], t[k] = t[k], t[i]
		i++
		k--
	}
}
