package project

import "math"

// VertexSource yields every geographic vertex of a boundary collection.
type VertexSource interface {
	EachVertex(fn func(lon, lat float64))
}

// Frame composes a projection with a single uniform scale and a translation
// that fit a whole collection into a W x H pixel canvas. It is derived per
// render pass and never persisted.
type Frame struct {
	P      Projection
	Scale  float64
	TX, TY float64
	W, H   int
}

// minSpan guards the division when a collection is empty or collapses to a
// point or an axis-aligned segment.
const minSpan = 1e-9

// Fit projects every vertex of src, tracks the planar bounding box and
// derives scale plus translation so that everything lands inside the canvas
// with symmetric padding. pad is the fill ratio (0.96 leaves a 2% margin on
// each side of the tight axis). Degenerate spans are widened to one
// projected unit instead of propagating non-finite coordinates.
func Fit(p Projection, src VertexSource, w, h int, pad float64) Frame {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	n := 0
	src.EachVertex(func(lon, lat float64) {
		x, y := p.Project(lon, lat)
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
		n++
	})
	if n == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}
	dx := maxX - minX
	dy := maxY - minY
	if dx < minSpan {
		minX -= 0.5
		dx = 1
	}
	if dy < minSpan {
		maxY += 0.5
		dy = 1
	}
	scale := pad * math.Min(float64(w)/dx, float64(h)/dy)
	// Center the projected width; pin the projected max-y (geographic north)
	// near the top. Apply negates y once, so the two flips cancel in every
	// quadrant.
	tx := (float64(w)-scale*dx)/2 - scale*minX
	ty := (float64(h)-scale*dy)/2 + scale*maxY
	return Frame{P: p, Scale: scale, TX: tx, TY: ty, W: w, H: h}
}

// Apply maps a geographic coordinate to canvas pixels. Projected y is
// negated before translation: screen y grows downward, geographic y grows
// northward.
func (f Frame) Apply(lon, lat float64) (float64, float64) {
	x, y := f.P.Project(lon, lat)
	return f.Scale*x + f.TX, -f.Scale*y + f.TY
}
