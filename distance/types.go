package distance

import (
	"context"
	"errors"

	"github.com/katalvlaran/acotour/matrix"
)

// Unreachable is the distance assigned to pairs with no known route.
// It is large enough that the optimizer avoids such edges, yet finite so the
// move rule stays well defined.
const Unreachable = 9999.0

// Location is a named point in WGS84 degrees.
type Location struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Table is a loaded distance matrix together with its row labels.
type Table struct {
	Labels []string      // one per row, or nil when the input carried none
	Dist   *matrix.Dense // square, sanitized, non-negative
	// Unreachable counts off-diagonal cells that were missing (null, empty
	// or non-finite) and now hold the Unreachable sentinel.
	Unreachable int
}

// Provider produces a distance matrix for an ordered list of locations.
// Row/column i of the result corresponds to locations[i].
type Provider interface {
	Matrix(ctx context.Context, locations []Location) (*matrix.Dense, error)
}

var (
	// ErrNoLocations is returned when a provider receives an empty list.
	ErrNoLocations = errors.New("distance: no locations")

	// ErrBadCoordinate is returned for latitudes outside [-90,90],
	// longitudes outside [-180,180], or non-finite values.
	ErrBadCoordinate = errors.New("distance: invalid coordinate")

	// ErrBadInput is returned when a matrix file cannot be interpreted.
	ErrBadInput = errors.New("distance: malformed matrix input")
)
