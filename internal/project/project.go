package project

import "math"

// Projection maps a geographic (lon, lat) pair in degrees onto an unbounded
// plane. Implementations must be pure and invertible over their domain.
type Projection interface {
	Project(lon, lat float64) (x, y float64)
	Invert(x, y float64) (lon, lat float64)
}

// Mercator is the conformal cylindrical transform: x is longitude in
// radians, y is ln(tan(45° + lat/2)). Latitude must stay strictly inside
// (-90, 90); the poles have no finite image, and input data is expected to
// be sanitized before it gets here.
type Mercator struct{}

func (Mercator) Project(lon, lat float64) (float64, float64) {
	x := lon * math.Pi / 180
	y := math.Log(math.Tan(math.Pi/4 + lat*math.Pi/360))
	return x, y
}

func (Mercator) Invert(x, y float64) (float64, float64) {
	lon := x * 180 / math.Pi
	lat := (2*math.Atan(math.Exp(y)) - math.Pi/2) * 180 / math.Pi
	return lon, lat
}
