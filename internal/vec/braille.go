package vec

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille rasterizes onto a 2x4-dot-per-cell microgrid and renders through
// lipgloss with one foreground color per cell, so a selection highlight
// survives compositing. Surface pixels are microgrid dots: a figure built
// for cols x rows cells spans 2*cols x 4*rows pixels.
type Braille struct {
	cols, rows int // cells
	mask       []uint8
	color      []string
	faint      []bool
	glyph      []rune // text overlay, drawn above dots
	glyphCol   []string
}

func NewBraille(cols, rows int) *Braille {
	n := cols * rows
	return &Braille{
		cols:     cols,
		rows:     rows,
		mask:     make([]uint8, n),
		color:    make([]string, n),
		faint:    make([]bool, n),
		glyph:    make([]rune, n),
		glyphCol: make([]string, n),
	}
}

func (b *Braille) Size() (int, int) { return b.cols * 2, b.rows * 4 }

func (b *Braille) Clear() {
	for i := range b.mask {
		b.mask[i] = 0
		b.color[i] = ""
		b.faint[i] = false
		b.glyph[i] = 0
		b.glyphCol[i] = ""
	}
}

// dot bit layout of the Unicode braille block, per column.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func (b *Braille) set(mx, my int, color string, faint bool) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cx >= b.cols || cy >= b.rows {
		return
	}
	i := cy*b.cols + cx
	b.mask[i] |= dotBits[rx][ry]
	b.color[i] = color
	b.faint[i] = faint
}

func (b *Braille) FillPath(id, label string, p *Path, st Style) {
	_, _ = id, label // no interactivity on the cell grid; hit testing is the caller's
	faint := st.Opacity > 0 && st.Opacity < 1
	if st.Fill != "" {
		b.fillEvenOdd(p.Rings(), st.Fill, faint)
	}
	stroke := st.Stroke
	if stroke == "" {
		stroke = st.Fill
	}
	if stroke != "" {
		for _, ring := range p.Rings() {
			for i := 0; i < len(ring); i++ {
				a := ring[i]
				c := ring[(i+1)%len(ring)]
				b.line(a.X, a.Y, c.X, c.Y, stroke, faint)
			}
		}
	}
}

// fillEvenOdd runs a parity scanline over all rings together, so interior
// rings read as holes.
func (b *Braille) fillEvenOdd(rings [][]Point, color string, faint bool) {
	hPix := b.rows * 4
	for y := 0; y < hPix; y++ {
		yc := float64(y) + 0.5
		var xs []float64
		for _, ring := range rings {
			n := len(ring)
			if n < 3 {
				continue
			}
			for i := 0; i < n; i++ {
				a := ring[i]
				c := ring[(i+1)%n]
				if (a.Y > yc) != (c.Y > yc) {
					t := (yc - a.Y) / (c.Y - a.Y)
					xs = append(xs, a.X+t*(c.X-a.X))
				}
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(math.Round(xs[i]))
			x1 := int(math.Round(xs[i+1]))
			for x := max(0, x0); x <= x1; x++ {
				b.set(x, y, color, faint)
			}
		}
	}
}

// line is Bresenham on the microgrid.
func (b *Braille) line(fx0, fy0, fx1, fy1 float64, color string, faint bool) {
	x0, y0 := int(math.Round(fx0)), int(math.Round(fy0))
	x1, y1 := int(math.Round(fx1)), int(math.Round(fy1))
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.set(x0, y0, color, faint)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *Braille) Line(x0, y0, x1, y1 float64, st Style) {
	col := st.Stroke
	if col == "" {
		col = st.Fill
	}
	b.line(x0, y0, x1, y1, col, st.Opacity > 0 && st.Opacity < 1)
}

func (b *Braille) Polyline(pts []Point, st Style) {
	for i := 0; i+1 < len(pts); i++ {
		b.Line(pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y, st)
	}
}

func (b *Braille) Circle(x, y, r float64, st Style) {
	col := st.Stroke
	if col == "" {
		col = st.Fill
	}
	faint := st.Opacity > 0 && st.Opacity < 1
	if st.Fill != "" {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if dx*dx+dy*dy <= r*r {
					b.set(int(math.Round(x+dx)), int(math.Round(y+dy)), st.Fill, faint)
				}
			}
		}
		return
	}
	steps := int(math.Max(8, 2*math.Pi*r))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		b.set(int(math.Round(x+r*math.Cos(a))), int(math.Round(y+r*math.Sin(a))), col, faint)
	}
}

func (b *Braille) Rect(x, y, w, h float64, st Style) {
	if w <= 0 || h <= 0 {
		return
	}
	col := st.Fill
	if col == "" {
		col = st.Stroke
	}
	faint := st.Opacity > 0 && st.Opacity < 1
	x0, y0 := int(math.Round(x)), int(math.Round(y))
	x1, y1 := int(math.Round(x+w)), int(math.Round(y+h))
	for yy := y0; yy <= y1; yy++ {
		for xx := x0; xx <= x1; xx++ {
			if st.Fill != "" || yy == y0 || yy == y1 || xx == x0 || xx == x1 {
				b.set(xx, yy, col, faint)
			}
		}
	}
}

// Text places a run of characters on the cell grid; (x, y) is the anchor in
// microgrid pixels, centered horizontally like the SVG target.
func (b *Braille) Text(x, y float64, s string, st Style) {
	runes := []rune(s)
	cy := int(math.Round(y)) / 4
	cx := int(math.Round(x))/2 - len(runes)/2
	if cy < 0 || cy >= b.rows {
		return
	}
	for i, r := range runes {
		xx := cx + i
		if xx < 0 || xx >= b.cols {
			continue
		}
		j := cy*b.cols + xx
		b.glyph[j] = r
		b.glyphCol[j] = st.Fill
	}
}

// Render composites the grid into styled terminal lines, batching runs of
// equal style to keep the escape-sequence count down.
func (b *Braille) Render() string {
	var out strings.Builder
	for y := 0; y < b.rows; y++ {
		var run strings.Builder
		runColor := ""
		runFaint := false
		flush := func() {
			if run.Len() == 0 {
				return
			}
			st := lipgloss.NewStyle()
			if runColor != "" {
				st = st.Foreground(lipgloss.Color(runColor))
			}
			if runFaint {
				st = st.Faint(true)
			}
			out.WriteString(st.Render(run.String()))
			run.Reset()
		}
		for x := 0; x < b.cols; x++ {
			i := y*b.cols + x
			var r rune = ' '
			col, faint := "", false
			switch {
			case b.glyph[i] != 0:
				r = b.glyph[i]
				col = b.glyphCol[i]
			case b.mask[i] != 0:
				r = rune(0x2800 + int(b.mask[i]))
				col = b.color[i]
				faint = b.faint[i]
			}
			if col != runColor || faint != runFaint {
				flush()
				runColor, runFaint = col, faint
			}
			run.WriteRune(r)
		}
		flush()
		if y < b.rows-1 {
			out.WriteString("\n")
		}
	}
	return out.String()
}

// CellMask reports the dot mask at a cell; tests use it to probe the raster.
func (b *Braille) CellMask(cx, cy int) uint8 {
	if cx < 0 || cy < 0 || cx >= b.cols || cy >= b.rows {
		return 0
	}
	return b.mask[cy*b.cols+cx]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
