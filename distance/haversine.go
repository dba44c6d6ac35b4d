package distance

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/acotour/matrix"
)

// EarthRadiusKm is the mean Earth radius used by HaversineProvider.
const EarthRadiusKm = 6371.0088

// HaversineProvider computes great-circle distances in kilometres.
// Detour optionally inflates every off-diagonal distance (e.g. 1.3 to
// approximate road distances); 0 means no inflation.
type HaversineProvider struct {
	Detour float64
}

var _ Provider = HaversineProvider{}

// Matrix implements Provider. The result is symmetric with a zero diagonal.
// ctx is honoured between rows.
//
// Complexity: O(n²).
func (h HaversineProvider) Matrix(ctx context.Context, locations []Location) (*matrix.Dense, error) {
	n := len(locations)
	if n == 0 {
		return nil, ErrNoLocations
	}
	for i, l := range locations {
		if err := checkCoordinate(l); err != nil {
			return nil, fmt.Errorf("location %d (%q): %w", i, l.Name, err)
		}
	}
	factor := h.Detour
	if factor <= 0 {
		factor = 1
	}

	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		km   float64
	)
	for i = 0; i < n; i++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		for j = i + 1; j < n; j++ {
			km = Haversine(locations[i], locations[j]) * factor
			_ = out.Set(i, j, km) // safe: i, j < n
			_ = out.Set(j, i, km)
		}
	}

	return out, nil
}

// Haversine returns the great-circle distance between a and b in kilometres.
func Haversine(a, b Location) float64 {
	const rad = math.Pi / 180
	var (
		lat1 = a.Lat * rad
		lat2 = b.Lat * rad
		dLat = (b.Lat - a.Lat) * rad
		dLng = (b.Lng - a.Lng) * rad
	)
	s := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(s)))
}

func checkCoordinate(l Location) error {
	switch {
	case math.IsNaN(l.Lat) || math.IsNaN(l.Lng):
		return ErrBadCoordinate
	case l.Lat < -90 || l.Lat > 90:
		return ErrBadCoordinate
	case l.Lng < -180 || l.Lng > 180:
		return ErrBadCoordinate
	}
	return nil
}
