package aco

import "errors"

// ErrInvalidTour is returned by ValidateTour for any broken tour invariant.
var ErrInvalidTour = errors.New("aco: invalid tour")

// ValidateTour enforces the closed-tour invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==start,
//	each vertex v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrInvalidTour
	}
	if start < 0 || start >= n {
		return ErrInvalidTour
	}
	if tour[0] != start || tour[n] != start {
		return ErrInvalidTour
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}
	return nil
}
