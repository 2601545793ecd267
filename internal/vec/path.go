package vec

import (
	"fmt"
	"strings"
)

// Point is a canvas-space coordinate in pixels, origin top-left.
type Point struct {
	X, Y float64
}

// Path is a compiled vector outline: one subpath per ring, each closed
// implicitly. Interior rings rely on the even-odd fill rule, so holes are
// just additional subpaths.
type Path struct {
	subs [][]Point
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.subs = append(p.subs, []Point{{x, y}})
}

// LineTo extends the current subpath. Without a preceding MoveTo it starts
// one.
func (p *Path) LineTo(x, y float64) {
	if len(p.subs) == 0 {
		p.MoveTo(x, y)
		return
	}
	i := len(p.subs) - 1
	p.subs[i] = append(p.subs[i], Point{x, y})
}

func (p *Path) Empty() bool {
	for _, s := range p.subs {
		if len(s) > 0 {
			return false
		}
	}
	return true
}

// Rings exposes the subpath vertices for rasterizers that fill directly
// rather than consuming path data.
func (p *Path) Rings() [][]Point {
	return p.subs
}

// Data renders SVG path data. Two decimal places is enough to avoid visible
// seams at the target canvas resolution.
func (p *Path) Data() string {
	var b strings.Builder
	for _, s := range p.subs {
		if len(s) == 0 {
			continue
		}
		fmt.Fprintf(&b, "M%.2f %.2f", s[0].X, s[0].Y)
		for _, pt := range s[1:] {
			fmt.Fprintf(&b, "L%.2f %.2f", pt.X, pt.Y)
		}
		b.WriteString("Z")
	}
	return b.String()
}
