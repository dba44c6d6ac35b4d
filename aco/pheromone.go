package aco

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/acotour/matrix"
)

// rankTours sorts scored ascending by cost. The sort is stable, so ties keep
// ant order and the iteration best is the lowest-numbered shortest ant.
func rankTours(scored []scoredTour) {
	slices.SortStableFunc(scored, func(a, b scoredTour) int {
		return cmp.Compare(a.cost, b.cost)
	})
}

// reinforce deposits 1/cost on every edge of the first elite tours of a
// ranked population. Only traversed edges are touched.
//
// A zero-length tour deposits 1/eps instead of +Inf, which keeps every cell
// finite while still giving it the largest possible reward.
//
// Complexity: O(elite · n).
func reinforce(tau *matrix.Dense, ranked []scoredTour, elite int, eps float64) {
	if elite > len(ranked) {
		elite = len(ranked)
	}
	var (
		k      int
		i      int
		amount float64
		path   []int
	)
	for k = 0; k < elite; k++ {
		path = ranked[k].path
		amount = 1.0 / eps
		if ranked[k].cost > 0 {
			amount = 1.0 / ranked[k].cost
		}
		for i = 0; i+1 < len(path); i++ {
			_ = tau.AddAt(path[i], path[i+1], amount) // safe: indices come from construction
		}
	}
}

// evaporate multiplies every cell by (1 − decay). With decay ∈ (0,1) and
// non-negative input the result stays non-negative.
//
// Complexity: O(n²).
func evaporate(tau *matrix.Dense, decay float64) {
	tau.Scale(1 - decay)
}
