package aco_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/acotour/aco"
	"github.com/katalvlaran/acotour/matrix"
)

func TestWeightedIndex(t *testing.T) {
	cdf := []float64{0.0, 0.25, 0.25, 1.0} // weights 0, .25, 0, .75
	cases := []struct {
		u    float64
		want int
	}{
		{0.0, 1},
		{0.2499, 1},
		{0.25, 3},
		{0.9999, 3},
		{1.0, 3}, // tail guard: never the trailing zero-weight index
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, aco.WeightedIndex(cdf, tc.u), "u=%v", tc.u)
	}

	// Rounding left the CDF short of 1 and the last weight is zero.
	assert.Equal(t, 1, aco.WeightedIndex([]float64{0.3, 0.9999999, 0.9999999}, 0.99999995))
}

func TestPickMove_NeverChoosesVisited(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	tau := []float64{5, 5, 5, 5}
	dist := []float64{0, 1, 1, 1}
	visited := []bool{true, false, true, false}

	// alpha = 0 makes 0^0 == 1; visited entries must still be excluded.
	for i := 0; i < 2000; i++ {
		next, deg, err := aco.PickMove(tau, dist, visited, 0, 1, aco.DefaultEpsilon, r)
		require.NoError(t, err)
		require.False(t, deg)
		require.Contains(t, []int{1, 3}, next)
	}
}

func TestPickMove_FollowsDesirability(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	// Weights ∝ tau with beta = 0: 1 : 3 over vertices 1 and 2.
	tau := []float64{1, 1, 3}
	dist := []float64{0, 1, 1}
	visited := []bool{true, false, false}

	const draws = 20000
	var hits [3]int
	for i := 0; i < draws; i++ {
		next, _, err := aco.PickMove(tau, dist, visited, 1, 0, aco.DefaultEpsilon, r)
		require.NoError(t, err)
		hits[next]++
	}
	require.Zero(t, hits[0])
	assert.InDelta(t, 0.25, float64(hits[1])/draws, 0.02)
	assert.InDelta(t, 0.75, float64(hits[2])/draws, 0.02)
}

func TestPickMove_ZeroPheromoneFallsBackUniformly(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	tau := []float64{0, 0, 0, 0}
	dist := []float64{0, 1, 2, 3}
	visited := []bool{true, false, false, false}

	const draws = 9000
	var hits [4]int
	for i := 0; i < draws; i++ {
		next, deg, err := aco.PickMove(tau, dist, visited, 1, 1, aco.DefaultEpsilon, r)
		require.NoError(t, err)
		require.True(t, deg)
		hits[next]++
	}
	require.Zero(t, hits[0])
	for j := 1; j < 4; j++ {
		assert.InDelta(t, 1.0/3, float64(hits[j])/draws, 0.03)
	}
}

func TestPickMove_OverflowFallsBack(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	tau := []float64{1, 1e300, 1e300}
	dist := []float64{0, 1, 1}
	visited := []bool{true, false, false}

	next, deg, err := aco.PickMove(tau, dist, visited, 2, 1, aco.DefaultEpsilon, r)
	require.NoError(t, err)
	require.True(t, deg)
	require.Contains(t, []int{1, 2}, next)
}

func TestPickMove_InfiniteWeightDominates(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))
	// Vertex 2 coincides with the current one: (1/ε)^90 overflows to +Inf,
	// while vertices 1 and 3 keep small finite weights.
	tau := []float64{1, 1, 1, 1}
	dist := []float64{0, 1, 0, 2}
	visited := []bool{true, false, false, false}

	for i := 0; i < 200; i++ {
		next, deg, err := aco.PickMove(tau, dist, visited, 1, 90, aco.DefaultEpsilon, r)
		require.NoError(t, err)
		require.True(t, deg)
		require.Equal(t, 2, next)
	}
}

func TestPickMove_SumOverflowKeepsProportions(t *testing.T) {
	r := rand.New(rand.NewPCG(13, 14))
	// Each weight is finite but their sum overflows; proportions 1 : 1.5.
	tau := []float64{1, 1e308, 1.5e308}
	dist := []float64{0, 1, 1}
	visited := []bool{true, false, false}

	const draws = 20000
	var hits [3]int
	for i := 0; i < draws; i++ {
		next, deg, err := aco.PickMove(tau, dist, visited, 1, 0, aco.DefaultEpsilon, r)
		require.NoError(t, err)
		require.False(t, deg)
		hits[next]++
	}
	require.Zero(t, hits[0])
	assert.InDelta(t, 0.4, float64(hits[1])/draws, 0.02)
	assert.InDelta(t, 0.6, float64(hits[2])/draws, 0.02)
}

func TestPickMove_NoCandidate(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 9))
	_, _, err := aco.PickMove([]float64{1, 1}, []float64{0, 1}, []bool{true, true}, 1, 1, aco.DefaultEpsilon, r)
	require.Error(t, err)
}

func TestDesirability_ZeroDistanceIsFinite(t *testing.T) {
	w := aco.Desirability(0.5, 0, 1, 2, aco.DefaultEpsilon)
	require.False(t, math.IsInf(w, 0))
	require.InEpsilon(t, 0.5*1e8, w, 1e-9)

	// ε must not bias meaningful distances.
	require.InEpsilon(t, 1.0/100.0, aco.Desirability(1, 10, 1, 2, aco.DefaultEpsilon), 1e-4)
}

func TestUniformUnvisited(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))
	visited := []bool{true, true, false, true, false}
	for i := 0; i < 100; i++ {
		require.Contains(t, []int{2, 4}, aco.UniformUnvisited(visited, 2, r))
	}
}

func TestDeriveSeed_DistinctStreams(t *testing.T) {
	seen := map[uint64]bool{}
	for s := uint64(0); s < 64; s++ {
		v := aco.DeriveSeed(12345, s)
		require.False(t, seen[v], "collision at stream %d", s)
		seen[v] = true
	}
}

func TestReinforceAndEvaporate(t *testing.T) {
	tau, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	tau.Fill(1)

	paths := [][]int{
		{0, 2, 1, 0}, // cost 8, not elite
		{0, 1, 2, 0}, // cost 4, elite
	}
	aco.Reinforce(tau, paths, []float64{8, 4}, 1, aco.DefaultEpsilon)

	want := [][]float64{
		{1, 1.25, 1},
		{1, 1, 1.25},
		{1.25, 1, 1},
	}
	require.Equal(t, want, tau.ToRows())

	aco.Evaporate(tau, 0.5)
	v, _ := tau.At(0, 1)
	require.Equal(t, 0.625, v)
	v, _ = tau.At(0, 2)
	require.Equal(t, 0.5, v)
}

func TestReinforce_ZeroCostStaysFinite(t *testing.T) {
	tau, _ := matrix.NewDense(1, 1)
	aco.Reinforce(tau, [][]int{{0, 0}}, []float64{0}, 1, aco.DefaultEpsilon)
	v, _ := tau.At(0, 0)
	require.InEpsilon(t, 1/aco.DefaultEpsilon, v, 1e-12)
}

func TestReinforce_EliteAboveLengthIsClamped(t *testing.T) {
	tau, _ := matrix.NewDense(2, 2)
	aco.Reinforce(tau, [][]int{{0, 1, 0}}, []float64{2}, 5, aco.DefaultEpsilon)
	require.Equal(t, [][]float64{{0, 0.5}, {0.5, 0}}, tau.ToRows())
}
