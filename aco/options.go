package aco

import (
	"context"
	"fmt"
	"math"
	"runtime"
)

// Option configures Engine behavior via functional arguments.
// If an Option is invalid (e.g. negative worker count), it is recorded
// internally and surfaced by NewEngine as ErrOptionViolation.
type Option func(*Options)

// Options holds the non-algorithmic knobs of an Engine.
type Options struct {
	// Ctx is the default context used by Run. RunContext overrides it.
	Ctx context.Context

	// Seed seeds the default random source. 0 selects a fixed default seed,
	// so runs are reproducible unless a seed is chosen explicitly.
	Seed int64

	// Rand, if non-nil, replaces the seeded default source.
	Rand Rand

	// Workers bounds the goroutines building tours within one iteration.
	Workers int

	// Epsilon is added to distances in the move rule and bounds the deposit
	// of zero-length tours to 1/Epsilon.
	Epsilon float64

	// OnIteration is called after every completed iteration. Returning an
	// error aborts the run; the result of completed iterations is kept.
	OnIteration func(IterationStats) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - seed 0 (fixed default stream)
//   - one worker
//   - Epsilon = DefaultEpsilon
//   - no-op OnIteration hook
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Workers:     1,
		Epsilon:     DefaultEpsilon,
		OnIteration: func(IterationStats) error { return nil },
	}
}

// WithContext sets the default context for cancellation between iterations.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeed seeds the default random source.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand injects the random source the engine draws from.
// The source is owned by the engine for its lifetime; do not share it.
func WithRand(r Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithWorkers sets how many goroutines build tours concurrently.
//
//	k > 0: use k workers
//	k == 0: use runtime.NumCPU()
//	k < 0: invalid option → ErrOptionViolation
func WithWorkers(k int) Option {
	return func(o *Options) {
		switch {
		case k < 0:
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, k)
		case k == 0:
			o.Workers = runtime.NumCPU()
		default:
			o.Workers = k
		}
	}
}

// WithEpsilon overrides DefaultEpsilon. eps must be finite and > 0.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0) || math.IsInf(eps, 1) {
			o.err = fmt.Errorf("%w: epsilon must be finite and > 0 (%v)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithOnIteration registers a progress hook; returning an error from it
// stops the run.
func WithOnIteration(fn func(IterationStats) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}
