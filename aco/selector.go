// Package aco - ACO decision rule.
//
// The move selector turns one pheromone row and one distance row into a
// categorical distribution over the next vertex and samples it with a
// single uniform draw against the cumulative distribution.
package aco

import (
	"math"
	"sort"
)

// desirability is the unnormalized weight τ^α · (1/(d+ε))^β of one edge.
func desirability(tau, d, alpha, beta, eps float64) float64 {
	return math.Pow(tau, alpha) * math.Pow(1.0/(d+eps), beta)
}

// pickMove chooses the next vertex for an ant standing on a row.
//
// Contract:
//   - len(tau) == len(dist) == len(visited) == len(cdf) == n.
//   - At least one vertex is unvisited; otherwise errNoCandidate.
//   - Visited vertices always get weight 0, regardless of alpha (0^0 == 1).
//   - cdf is scratch space, overwritten with the normalized cumulative weights.
//
// Overflow and underflow of float64 weights are resolved as follows:
//   - some weights are +Inf: uniform draw among exactly those vertices,
//   - all weights finite but their sum is +Inf: weights are rescaled by
//     the largest one, which keeps the exact proportions,
//   - every weight is zero: uniform draw among all unvisited vertices.
//
// The two uniform draws report degenerate == true.
//
// Complexity: O(n) time, O(1) extra space.
func pickMove(tau, dist []float64, visited []bool, alpha, beta, eps float64, rng Rand, cdf []float64) (next int, degenerate bool, err error) {
	var (
		j     int
		w     float64
		total float64
		hi    float64
		open  int
		inf   int
	)
	for j = range tau {
		w = 0
		if !visited[j] {
			open++
			w = desirability(tau[j], dist[j], alpha, beta, eps)
			switch {
			case math.IsNaN(w) || w < 0:
				w = 0
			case math.IsInf(w, 1):
				inf++
			}
			hi = max(hi, w)
		}
		total += w
		cdf[j] = total
	}
	switch {
	case open == 0:
		return -1, false, errNoCandidate
	case inf > 0:
		return nthInfinite(tau, dist, visited, alpha, beta, eps, rng.IntN(inf)), true, nil
	case !(total > 0):
		return uniformUnvisited(visited, open, rng), true, nil
	case math.IsInf(total, 1):
		// Every weight is finite, so w/hi ≤ 1 and the rescaled sum is ≤ n.
		total = 0
		for j = range tau {
			if !visited[j] {
				w = desirability(tau[j], dist[j], alpha, beta, eps)
				if !math.IsNaN(w) && w > 0 {
					total += w / hi
				}
			}
			cdf[j] = total
		}
	}

	// Normalize into a proper CDF in [0,1].
	for j = range cdf {
		cdf[j] /= total
	}

	return weightedIndex(cdf, rng.Float64()), false, nil
}

// nthInfinite returns the k-th unvisited vertex whose weight overflows to +Inf.
func nthInfinite(tau, dist []float64, visited []bool, alpha, beta, eps float64, k int) int {
	var j int
	for j = range tau {
		if visited[j] || !math.IsInf(desirability(tau[j], dist[j], alpha, beta, eps), 1) {
			continue
		}
		if k == 0 {
			return j
		}
		k--
	}
	return -1
}

// weightedIndex returns the first index whose cumulative probability
// exceeds u, i.e. the categorical draw for u ∈ [0,1).
//
// Because cdf is non-decreasing, the returned index always carries a
// strictly positive weight. If rounding left cdf[last] ≤ u, the last
// index with a positive weight is returned.
//
// Complexity: O(log n).
func weightedIndex(cdf []float64, u float64) int {
	n := len(cdf)
	idx := sort.Search(n, func(i int) bool { return cdf[i] > u })
	if idx < n {
		return idx
	}

	// Tail guard: walk back to the last step of the CDF.
	for idx = n - 1; idx > 0; idx-- {
		if cdf[idx] > cdf[idx-1] {
			return idx
		}
	}
	return 0
}

// uniformUnvisited returns the k-th unvisited vertex for k drawn uniformly
// from [0, open).
func uniformUnvisited(visited []bool, open int, rng Rand) int {
	k := rng.IntN(open)

	var j int
	for j = range visited {
		if visited[j] {
			continue
		}
		if k == 0 {
			return j
		}
		k--
	}
	return -1
}
