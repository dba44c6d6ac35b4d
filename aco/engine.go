package aco

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/acotour/matrix"
)

// Engine owns the pheromone matrix and iteration state of one optimizer.
// Independent Engines share nothing and may run concurrently; calls to Run
// on the same Engine are serialized.
type Engine struct {
	mu sync.Mutex

	params Params
	opts   Options
	n      int

	dist *matrix.Dense // private snapshot of the caller's matrix
	tau  *matrix.Dense // pheromone, mutated only between iterations
	rng  Rand

	ants   []*ant
	scored []scoredTour
}

// NewEngine validates dist, p and opts and returns a ready Engine with
// uniform pheromone 1/n.
//
// Contracts:
//   - dist must be n×n (n ≥ 1) with finite, non-negative entries; it is
//     copied, so later changes by the caller have no effect.
//   - p must satisfy Params.Validate.
//
// Errors: every failure matches ErrConfiguration plus its concrete cause
// (see errors.go). Nothing random happens before validation succeeds.
//
// Complexity: O(n² + Ants·n) time and space.
func NewEngine(dist matrix.Matrix, p Params, opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, o.err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	d, err := validateDistances(dist)
	if err != nil {
		return nil, err
	}

	n := d.Rows()
	tau, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	tau.Fill(1.0 / float64(n))

	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}

	e := &Engine{
		params: p,
		opts:   o,
		n:      n,
		dist:   d,
		tau:    tau,
		rng:    rng,
		ants:   make([]*ant, p.Ants),
		scored: make([]scoredTour, p.Ants),
	}
	for k := range e.ants {
		e.ants[k] = newAnt(k, n)
	}

	return e, nil
}

// Params returns the hyperparameters the engine was built with.
func (e *Engine) Params() Params { return e.params }

// Size returns the number of locations n.
func (e *Engine) Size() int { return e.n }

// Pheromone returns a deep copy of the current pheromone matrix.
func (e *Engine) Pheromone() matrix.Matrix {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.tau.Clone()
}

// Run executes the full search with the context given by WithContext.
func (e *Engine) Run() (Result, error) {
	return e.RunContext(e.opts.Ctx)
}

// RunContext executes Iterations rounds of construct → score → reinforce →
// evaporate → track best, and returns the best tour, its length and the
// convergence history.
//
// Each call starts from uniform pheromone and an empty best, so repeated runs
// are independent searches; the random source continues where it stopped.
//
// ctx is checked once per iteration boundary. On cancellation or a hook error
// the returned Result holds the completed iterations and err wraps ErrAborted.
//
// Complexity: O(Iterations · (Ants·n² + Ants·log Ants + n²)).
func (e *Engine) RunContext(ctx context.Context) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	e.tau.Fill(1.0 / float64(e.n))

	var (
		res = Result{
			Distance: math.Inf(1),
			History:  make([]float64, 0, e.params.Iterations),
		}
		c = colony{
			tau:   e.tau,
			dist:  e.dist,
			alpha: e.params.Alpha,
			beta:  e.params.Beta,
			eps:   e.opts.Epsilon,
		}
		it       int
		k        int
		err      error
		best     scoredTour
		improved bool
	)

	for it = 0; it < e.params.Iterations; it++ {
		if err = ctx.Err(); err != nil {
			return res, fmt.Errorf("%w at iteration %d: %w", ErrAborted, it, err)
		}

		// Stage 1 - per-ant streams, drawn sequentially so the outcome does
		// not depend on worker scheduling.
		for k = range e.ants {
			e.ants[k].stream.reseed(e.rng.Uint64(), e.ants[k].id)
		}

		// Stage 2 - construct and score against this iteration's pheromone.
		if err = constructAll(e.ants, c, e.opts.Workers, e.scored); err != nil {
			return res, fmt.Errorf("%w at iteration %d: %w", ErrAborted, it, err)
		}
		for k = range e.ants {
			res.Degenerate += e.ants[k].degenerate
		}

		// Stage 3 - reinforce elite on the pre-evaporation matrix, then evaporate.
		rankTours(e.scored)
		reinforce(e.tau, e.scored, e.params.Elite, e.opts.Epsilon)
		evaporate(e.tau, e.params.Decay)

		// Stage 4 - track the global best and record history.
		best = e.scored[0]
		improved = best.cost < res.Distance
		if improved {
			res.Distance = best.cost
			res.Tour = append(res.Tour[:0], best.path...)
		}
		res.History = append(res.History, res.Distance)
		res.Iterations = len(res.History)

		if err = e.opts.OnIteration(IterationStats{
			Iteration:     it,
			IterationBest: best.cost,
			Best:          res.Distance,
			Improved:      improved,
			Degenerate:    res.Degenerate,
		}); err != nil {
			return res, fmt.Errorf("%w after iteration %d: %w", ErrAborted, it, err)
		}
	}

	return res, nil
}

// Solve is a one-shot convenience: build an Engine and run it.
func Solve(dist matrix.Matrix, p Params, opts ...Option) (Result, error) {
	e, err := NewEngine(dist, p, opts...)
	if err != nil {
		return Result{}, err
	}
	return e.Run()
}
