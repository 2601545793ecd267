package project

import (
	"math"
	"testing"
)

type ptSource [][2]float64

func (s ptSource) EachVertex(fn func(lon, lat float64)) {
	for _, p := range s {
		fn(p[0], p[1])
	}
}

// Quadrant-spanning set: squares either side of the equator and the prime
// meridian, so the flip-and-translate formula gets exercised everywhere.
var quadrants = ptSource{
	{-120, 40}, {-100, 40}, {-100, 60}, {-120, 60},
	{20, 35}, {40, 35}, {40, 55}, {20, 55},
	{-80, -50}, {-60, -50}, {-60, -30}, {-80, -30},
	{110, -45}, {130, -45}, {130, -25}, {110, -25},
}

func TestFitKeepsVerticesInside(t *testing.T) {
	const w, h, pad = 640, 360, 0.96
	f := Fit(Mercator{}, quadrants, w, h, pad)
	for _, p := range quadrants {
		x, y := f.Apply(p[0], p[1])
		if x < 0 || x > w || y < 0 || y > h {
			t.Errorf("vertex (%v, %v) projected outside canvas: (%v, %v)", p[0], p[1], x, y)
		}
	}
}

func TestFitNorthAtTop(t *testing.T) {
	f := Fit(Mercator{}, quadrants, 640, 360, 0.96)
	_, yn := f.Apply(-110, 60) // northernmost
	_, ys := f.Apply(-70, -50) // southernmost
	if yn >= ys {
		t.Fatalf("north must map above south: north y=%v south y=%v", yn, ys)
	}
}

func TestFitPaddingMargin(t *testing.T) {
	const w, h, pad = 640, 360, 0.96
	f := Fit(Mercator{}, quadrants, w, h, pad)
	// The tighter axis keeps at least (1-pad)/2 of its dimension free on
	// each side.
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range quadrants {
		x, y := f.Apply(p[0], p[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	marginX := math.Min(minX, float64(w)-maxX)
	marginY := math.Min(minY, float64(h)-maxY)
	want := (1 - pad) / 2 * math.Min(w, h)
	if math.Max(marginX, marginY) < 0 || math.Min(marginX, marginY) < -1e-9 {
		t.Fatalf("negative margin: x=%v y=%v", marginX, marginY)
	}
	if marginX < want-1e-6 && marginY < want-1e-6 {
		t.Errorf("expected at least %v margin on one axis, got x=%v y=%v", want, marginX, marginY)
	}
}

func TestFitDegenerateCollapsesToFinite(t *testing.T) {
	single := ptSource{{10, 10}, {10, 10}, {10, 10}}
	f := Fit(Mercator{}, single, 200, 100, 0.96)
	x, y := f.Apply(10, 10)
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		t.Fatalf("degenerate extent produced non-finite coordinates: (%v, %v)", x, y)
	}
	if x < 0 || x > 200 || y < 0 || y > 100 {
		t.Fatalf("degenerate point outside canvas: (%v, %v)", x, y)
	}
}

func TestFitEmptyCollection(t *testing.T) {
	f := Fit(Mercator{}, ptSource{}, 200, 100, 0.96)
	if math.IsNaN(f.Scale) || math.IsInf(f.Scale, 0) || f.Scale <= 0 {
		t.Fatalf("empty collection must still give a usable scale, got %v", f.Scale)
	}
}
