// Package aco - RNG utilities for tour construction.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Worker independence: every ant gets its own stream, derived
//     sequentially from the engine source before construction starts,
//     so results do not depend on goroutine scheduling or worker count.
//   - No hidden time-based sources anywhere.
package aco

import "math/rand/v2"

// Rand is the random source an Engine draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
	Uint64() uint64
}

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic source.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewPCG(uint64(s), deriveSeed(uint64(s), 0)))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64 finalizer, so neighbouring streams are decorrelated.
//
// Complexity: O(1).
func deriveSeed(parent uint64, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// antStream is a reusable per-ant generator. Reseeding does not allocate.
type antStream struct {
	src *rand.PCG
	rng *rand.Rand
}

func newAntStream() antStream {
	src := rand.NewPCG(0, 0)
	return antStream{src: src, rng: rand.New(src)}
}

// reseed positions the stream for one construction of ant `stream`.
func (s antStream) reseed(parent uint64, stream int) {
	s.src.Seed(parent, deriveSeed(parent, uint64(stream)))
}
