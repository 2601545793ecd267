package vec

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// SVG writes a figure as a standalone SVG document. Each surface is
// single-shot: render, then End.
type SVG struct {
	w, h int
	c    *svg.SVG
}

func NewSVG(out io.Writer, w, h int) *SVG {
	c := svg.New(out)
	c.Start(w, h)
	return &SVG{w: w, h: h, c: c}
}

func (s *SVG) Size() (int, int) { return s.w, s.h }

// Clear paints an opaque backing rect; prior content of a fresh document is
// just the blank page.
func (s *SVG) Clear() {
	s.c.Rect(0, 0, s.w, s.h, "fill:white")
}

// End closes the document. Nothing may be drawn afterwards.
func (s *SVG) End() {
	s.c.End()
}

func (s *SVG) FillPath(id, label string, p *Path, st Style) {
	if p.Empty() {
		return
	}
	if id != "" {
		s.c.Gid(id)
	}
	if label != "" {
		s.c.Title(label)
	}
	s.c.Path(p.Data(), attr(st, true))
	if id != "" {
		s.c.Gend()
	}
}

func (s *SVG) Line(x0, y0, x1, y1 float64, st Style) {
	s.c.Line(round(x0), round(y0), round(x1), round(y1), attr(st, false))
}

func (s *SVG) Polyline(pts []Point, st Style) {
	if len(pts) < 2 {
		return
	}
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i] = round(p.X)
		ys[i] = round(p.Y)
	}
	s.c.Polyline(xs, ys, attr(st, false))
}

func (s *SVG) Circle(x, y, r float64, st Style) {
	s.c.Circle(round(x), round(y), round(r), attr(st, false))
}

func (s *SVG) Rect(x, y, w, h float64, st Style) {
	if w <= 0 || h <= 0 {
		return
	}
	s.c.Rect(round(x), round(y), round(w), round(h), attr(st, false))
}

func (s *SVG) Text(x, y float64, txt string, st Style) {
	fill := st.Fill
	if fill == "" {
		fill = "#333333"
	}
	s.c.Text(round(x), round(y), txt, "font-family:sans-serif;font-size:12px;text-anchor:middle;fill:"+fill)
}

func round(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

// attr flattens a Style into an SVG style attribute. evenOdd is set for
// compiled region paths so interior rings are excluded from the fill.
func attr(st Style, evenOdd bool) string {
	parts := make([]string, 0, 5)
	if st.Fill != "" {
		parts = append(parts, "fill:"+st.Fill)
	} else {
		parts = append(parts, "fill:none")
	}
	if st.Stroke != "" {
		parts = append(parts, "stroke:"+st.Stroke)
		if st.StrokeWidth > 0 {
			parts = append(parts, fmt.Sprintf("stroke-width:%.1f", st.StrokeWidth))
		}
	}
	if st.Opacity > 0 && st.Opacity < 1 {
		parts = append(parts, fmt.Sprintf("opacity:%.2f", st.Opacity))
	}
	if evenOdd {
		parts = append(parts, "fill-rule:evenodd")
	}
	return strings.Join(parts, ";")
}
