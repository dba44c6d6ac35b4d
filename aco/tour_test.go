package aco_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/acotour/aco"
	"github.com/katalvlaran/acotour/matrix"
)

func TestValidateTour(t *testing.T) {
	cases := []struct {
		name string
		tour []int
		n    int
		ok   bool
	}{
		{"valid", []int{0, 2, 1, 3, 0}, 4, true},
		{"single", []int{0, 0}, 1, true},
		{"too short", []int{0, 1, 0}, 4, false},
		{"not closed", []int{0, 1, 2, 3, 1}, 4, false},
		{"wrong start", []int{1, 0, 2, 3, 1}, 4, false},
		{"repeat", []int{0, 1, 1, 3, 0}, 4, false},
		{"out of range", []int{0, 1, 7, 3, 0}, 4, false},
		{"empty", nil, 0, false},
	}
	for _, tc := range cases {
		err := aco.ValidateTour(tc.tour, tc.n, aco.StartVertex)
		if tc.ok {
			require.NoError(t, err, tc.name)
		} else {
			require.ErrorIs(t, err, aco.ErrInvalidTour, tc.name)
		}
	}
}

func TestTourCost(t *testing.T) {
	d := unitSquare(t)

	c, err := aco.TourCost(d, []int{0, 1, 2, 3, 0})
	require.NoError(t, err)
	require.Equal(t, 4.0, c)

	c, err = aco.TourCost(d, []int{0, 2, 1, 3, 0})
	require.NoError(t, err)
	require.InDelta(t, 2+2*1.4142135623730951, c, epsTiny)

	c, err = aco.TourCost(d, []int{0})
	require.NoError(t, err)
	require.Zero(t, c)

	_, err = aco.TourCost(d, []int{0, 9})
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	_, err = aco.TourCost(nil, []int{0, 1})
	require.ErrorIs(t, err, aco.ErrEmptyMatrix)
}
