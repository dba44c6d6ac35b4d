package aco

import "github.com/katalvlaran/acotour/matrix"

// Test bridge for unexported kernels. Compiled only with the package tests.
var (
	WeightedIndex    = weightedIndex
	Desirability     = desirability
	UniformUnvisited = uniformUnvisited
	DeriveSeed       = deriveSeed
)

// PickMove forwards to pickMove.
func PickMove(tau, dist []float64, visited []bool, alpha, beta, eps float64, rng Rand) (int, bool, error) {
	return pickMove(tau, dist, visited, alpha, beta, eps, rng, make([]float64, len(tau)))
}

// Reinforce ranks the given tours and deposits on the elite ones.
func Reinforce(tau *matrix.Dense, paths [][]int, costs []float64, elite int, eps float64) {
	scored := make([]scoredTour, len(paths))
	for k := range paths {
		scored[k] = scoredTour{path: paths[k], cost: costs[k]}
	}
	rankTours(scored)
	reinforce(tau, scored, elite, eps)
}

// Evaporate forwards to evaporate.
func Evaporate(tau *matrix.Dense, decay float64) { evaporate(tau, decay) }

// ConstructOnce runs a single construction round against the current
// pheromone without updating it, returning copies of every ant's tour.
func (e *Engine) ConstructOnce() ([][]int, []float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for k := range e.ants {
		e.ants[k].stream.reseed(e.rng.Uint64(), e.ants[k].id)
	}
	c := colony{tau: e.tau, dist: e.dist, alpha: e.params.Alpha, beta: e.params.Beta, eps: e.opts.Epsilon}
	if err := constructAll(e.ants, c, e.opts.Workers, e.scored); err != nil {
		return nil, nil, err
	}
	paths := make([][]int, len(e.scored))
	costs := make([]float64, len(e.scored))
	for k, s := range e.scored {
		paths[k] = append([]int(nil), s.path...)
		costs[k] = s.cost
	}
	return paths, costs, nil
}

// SetPheromone overwrites every pheromone cell with v.
func (e *Engine) SetPheromone(v float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tau.Fill(v)
}
