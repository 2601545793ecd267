// Package chart lays out the two fixed figure types of the deck: a grouped
// two-series bar chart with a data-derived axis, and a single-line chart
// with a caller-fixed axis. Both are stateless: every call clears the
// surface and redraws from its input series.
package chart

import (
	"math"
	"strconv"

	"regiondeck/internal/vec"
)

// GroupPoint is one period with the two grouped values.
type GroupPoint struct {
	Period string
	A, B   float64
}

// LinePoint is one period with a single value.
type LinePoint struct {
	Period string
	Value  float64
}

// Axis is a caller-supplied fixed vertical range for the line chart; the
// metric's expected range is narrow and known in advance, so it is not
// derived from the data.
type Axis struct {
	Min, Max, Step float64
}

// clamp pins a value inside the fixed range; NaN pins to the floor. The axis
// never rescales, so out-of-range points sit on the frame edge instead of
// escaping the plot.
func (a Axis) clamp(v float64) float64 {
	if math.IsNaN(v) || v < a.Min {
		return a.Min
	}
	if v > a.Max {
		return a.Max
	}
	return v
}

// BarColors carries the two series colors: A neutral, B brand.
type BarColors struct {
	A, B string
}

// DefaultBarColors matches the deck palette.
var DefaultBarColors = BarColors{A: "#768692", B: "#0F62FE"}

const (
	headroom     = 1.12
	groupFrac    = 0.62
	innerGapFrac = 0.10
)

var (
	gridStyle  = vec.Style{Stroke: "#C8CDD2", StrokeWidth: 0.5}
	axisStyle  = vec.Style{Stroke: "#333333", StrokeWidth: 1}
	labelStyle = vec.Style{Fill: "#333333"}
)

// niceStep picks the gridline step from the fixed candidate set by which
// threshold the observed max falls under.
func niceStep(max float64) float64 {
	switch {
	case max <= 0.2:
		return 0.05
	case max <= 0.5:
		return 0.1
	case max <= 1.0:
		return 0.2
	default:
		return 0.5
	}
}

// axisMax derives the axis top: 12% headroom over the observed max, rounded
// up to the next multiple of the chosen step.
func axisMax(max float64) (top, step float64) {
	step = niceStep(max)
	top = math.Ceil(max*headroom/step) * step
	if top <= 0 {
		top = step
	}
	return top, step
}

// plot is the shared inner frame: fractional margins keep the layout sane
// across surfaces of very different pixel density.
type plot struct {
	x0, y0, x1, y1 float64
}

func newPlot(w, h int) plot {
	fw, fh := float64(w), float64(h)
	return plot{x0: 0.10 * fw, y0: 0.06 * fh, x1: 0.97 * fw, y1: 0.86 * fh}
}

func (p plot) yFor(v, top float64) float64 {
	if top <= 0 {
		return p.y1
	}
	return p.y1 - v/top*(p.y1-p.y0)
}

// formatTick renders a tick value with just enough decimals for the step, so
// fractional steps never leak float noise into the labels.
func formatTick(v, step float64) string {
	prec := 0
	for p := step; p != math.Trunc(p) && prec < 6; p *= 10 {
		prec++
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// grid draws horizontal gridlines with tick labels from 0 to top.
func grid(s vec.Surface, p plot, top, step float64) {
	if step <= 0 {
		return
	}
	for i := 0; ; i++ {
		v := float64(i) * step
		if v > top+step/2 {
			break
		}
		y := p.yFor(v, top)
		s.Line(p.x0, y, p.x1, y, gridStyle)
		s.Text(p.x0-(p.x1-p.x0)*0.045, y, formatTick(v, step), labelStyle)
	}
	s.Line(p.x0, p.y1, p.x1, p.y1, axisStyle)
}

// GroupedBars fully redraws the grouped two-series bar chart. A period with
// zero or missing values draws a zero-height bar, not an omitted one; an
// empty series yields axes with no data.
func GroupedBars(s vec.Surface, pts []GroupPoint, colors BarColors) {
	w, h := s.Size()
	s.Clear()
	p := newPlot(w, h)

	maxv := 0.0
	for _, pt := range pts {
		maxv = math.Max(maxv, math.Max(clamp(pt.A), clamp(pt.B)))
	}
	top, step := axisMax(maxv)
	grid(s, p, top, step)
	if len(pts) == 0 {
		return
	}

	band := (p.x1 - p.x0) / float64(len(pts))
	group := band * groupFrac
	gap := group * innerGapFrac
	barw := (group - gap) / 2
	for i, pt := range pts {
		cx := p.x0 + band*(float64(i)+0.5)
		gx := cx - group/2
		ha := clamp(pt.A) / top * (p.y1 - p.y0)
		hb := clamp(pt.B) / top * (p.y1 - p.y0)
		s.Rect(gx, p.y1-ha, barw, ha, vec.Style{Fill: colors.A})
		s.Rect(gx+barw+gap, p.y1-hb, barw, hb, vec.Style{Fill: colors.B})
		s.Text(cx, p.y1+(p.y1-p.y0)*0.08, pt.Period, labelStyle)
	}
}

// Line fully redraws the fixed-scale line chart: gridlines, one connected
// polyline, a marker per point. Fewer than two points render a marker with
// no line.
func Line(s vec.Surface, pts []LinePoint, ax Axis, color string) {
	w, h := s.Size()
	s.Clear()
	p := newPlot(w, h)

	span := ax.Max - ax.Min
	if span <= 0 || ax.Step <= 0 {
		return
	}
	for i := 0; ; i++ {
		v := ax.Min + float64(i)*ax.Step
		if v > ax.Max+ax.Step/2 {
			break
		}
		y := p.y1 - (v-ax.Min)/span*(p.y1-p.y0)
		s.Line(p.x0, y, p.x1, y, gridStyle)
		s.Text(p.x0-(p.x1-p.x0)*0.045, y, formatTick(v, ax.Step), labelStyle)
	}
	s.Line(p.x0, p.y1, p.x1, p.y1, axisStyle)
	if len(pts) == 0 {
		return
	}

	band := (p.x1 - p.x0) / float64(len(pts))
	line := make([]vec.Point, 0, len(pts))
	st := vec.Style{Stroke: color, StrokeWidth: 1.5}
	mark := vec.Style{Fill: color}
	r := math.Max(1.5, float64(w)*0.006)
	for i, pt := range pts {
		x := p.x0 + band*(float64(i)+0.5)
		y := p.y1 - (ax.clamp(pt.Value)-ax.Min)/span*(p.y1-p.y0)
		line = append(line, vec.Point{X: x, Y: y})
		s.Circle(x, y, r, mark)
		s.Text(x, p.y1+(p.y1-p.y0)*0.08, pt.Period, labelStyle)
	}
	if len(line) >= 2 {
		s.Polyline(line, st)
	}
}

// clamp treats negative and missing (NaN) values as zero.
func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
