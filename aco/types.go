package aco

import (
	"fmt"
	"math"
)

// StartVertex is the fixed depot every ant leaves from and returns to.
const StartVertex = 0

// DefaultEpsilon is added to every distance in the move rule so that
// zero-length edges (self-loops, coincident locations) stay well defined.
const DefaultEpsilon = 1e-4

// Params is the immutable hyperparameter bundle of an Engine.
type Params struct {
	// Ants is the population size per iteration (≥ 1).
	Ants int

	// Elite is the number of shortest tours of an iteration whose edges are
	// reinforced (0 ≤ Elite ≤ Ants). Zero disables reinforcement.
	Elite int

	// Iterations is the iteration budget (≥ 1).
	Iterations int

	// Decay is the evaporation rate in (0,1): every cell is multiplied by
	// (1−Decay) once per iteration.
	Decay float64

	// Alpha weights the pheromone trail in the move rule (≥ 0).
	Alpha float64

	// Beta weights the inverse distance in the move rule (≥ 0).
	Beta float64
}

// Validate checks every range constraint on p. The returned error matches
// both ErrConfiguration and the concrete cause.
//
// Complexity: O(1).
func (p Params) Validate() error {
	switch {
	case p.Ants < 1:
		return configErr(ErrAntCount, "ants=%d", p.Ants)
	case p.Elite < 0 || p.Elite > p.Ants:
		return configErr(ErrEliteCount, "elite=%d ants=%d", p.Elite, p.Ants)
	case p.Iterations < 1:
		return configErr(ErrIterationCount, "iterations=%d", p.Iterations)
	case !(p.Decay > 0 && p.Decay < 1):
		return configErr(ErrDecayRange, "decay=%v", p.Decay)
	case !finiteNonNegative(p.Alpha):
		return configErr(ErrExponent, "alpha=%v", p.Alpha)
	case !finiteNonNegative(p.Beta):
		return configErr(ErrExponent, "beta=%v", p.Beta)
	}

	return nil
}

// Result is the outcome of one Run.
type Result struct {
	// Tour is the best closed tour found: len n+1, Tour[0]==Tour[n]==StartVertex.
	// Empty only when a run was aborted before its first iteration completed.
	Tour []int

	// Distance is the total length of Tour (+Inf when Tour is empty).
	Distance float64

	// History[i] is the best distance known after iteration i (non-increasing).
	History []float64

	// Iterations is the number of completed iterations (== len(History)).
	Iterations int

	// Degenerate counts move selections that fell back to a uniform draw
	// because every remaining desirability was zero or non-finite.
	Degenerate int64
}

// IterationStats is passed to the OnIteration hook after each completed iteration.
type IterationStats struct {
	Iteration     int     // zero-based iteration index
	IterationBest float64 // shortest tour of this iteration's population
	Best          float64 // best distance known after this iteration
	Improved      bool    // whether this iteration replaced the running best
	Degenerate    int64   // degenerate selections so far in this run
}

func configErr(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrConfiguration, cause, fmt.Sprintf(format, args...))
}

func finiteNonNegative(x float64) bool {
	return x >= 0 && !math.IsInf(x, 1)
}
