package aco

import "github.com/katalvlaran/acotour/matrix"

// TourCost sums dist[path[i]][path[i+1]] over consecutive pairs of path.
// It is a pure function; any index outside the matrix is reported as an error.
//
// Complexity: O(len(path)).
func TourCost(dist matrix.Matrix, path []int) (float64, error) {
	if dist == nil {
		return 0, ErrEmptyMatrix
	}
	var (
		sum float64
		w   float64
		err error
		i   int
	)
	for i = 0; i+1 < len(path); i++ {
		if w, err = dist.At(path[i], path[i+1]); err != nil {
			return 0, err
		}
		sum += w
	}

	return sum, nil
}

// pathLength is the engine's unchecked TourCost over its own snapshot.
// Paths are produced by construction, so every index is in range.
func pathLength(dist *matrix.Dense, path []int) float64 {
	var (
		sum float64
		w   float64
		i   int
	)
	for i = 0; i+1 < len(path); i++ {
		w, _ = dist.At(path[i], path[i+1]) // safe: bounds ensured by construction
		sum += w
	}

	return sum
}
