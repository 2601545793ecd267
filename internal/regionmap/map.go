// Package regionmap compiles a boundary collection into screen-space shapes
// once, then serves picking and selection highlighting as pure style-state
// updates over the compiled geometry.
package regionmap

import (
	"github.com/paulmach/orb"

	"regiondeck/internal/geom"
	"regiondeck/internal/project"
	"regiondeck/internal/vec"
)

// PickFunc receives the region code of an activated shape.
type PickFunc func(code string)

// Painting states for a shape.
var (
	defaultStyle  = vec.Style{Fill: "#D8DDE3", Stroke: "#5B6B7A", StrokeWidth: 1}
	dimmedStyle   = vec.Style{Fill: "#D8DDE3", Stroke: "#5B6B7A", StrokeWidth: 1, Opacity: 0.55}
	selectedStyle = vec.Style{Fill: "#0F62FE", Stroke: "#0B4BC4", StrokeWidth: 1.5}
)

type shape struct {
	code  string
	label string
	path  *vec.Path
	rings [][]vec.Point // projected vertices kept for hit testing
}

// Map holds one compiled shape per feature. Selection changes repaint; they
// never recompute geometry.
type Map struct {
	frame    project.Frame
	shapes   []shape
	index    map[string]int
	order    []string // pickable codes in feature order
	selected string
	pick     PickFunc
}

// Build compiles every feature of the collection through the frame. Features
// without an identity are still compiled (for visual completeness) but are
// not pickable. A duplicated identity keeps its first feature only, so a
// selection highlights exactly one shape. pick may be nil.
func Build(col *geom.Collection, frame project.Frame, pick PickFunc) *Map {
	m := &Map{frame: frame, index: make(map[string]int), pick: pick}
	for _, f := range col.Features {
		if f.Code != "" {
			if _, dup := m.index[f.Code]; dup {
				continue
			}
		}
		p, rings := compile(f.Geometry, frame)
		if p.Empty() {
			continue
		}
		label := f.Name
		if label == "" {
			label = f.Code
		}
		if f.Code != "" {
			m.index[f.Code] = len(m.shapes)
			m.order = append(m.order, f.Code)
		}
		m.shapes = append(m.shapes, shape{code: f.Code, label: label, path: p, rings: rings})
	}
	return m
}

// compile walks polygon rings through the frame: move-to the first projected
// point, line-to the rest. Multi-polygons concatenate their polygons' rings
// into the same path; the even-odd fill rule sorts out holes.
func compile(g orb.Geometry, fr project.Frame) (*vec.Path, [][]vec.Point) {
	var path vec.Path
	var rings [][]vec.Point
	for _, poly := range geom.Polygons(g) {
		for _, ring := range poly {
			if len(ring) == 0 {
				continue
			}
			rp := make([]vec.Point, 0, len(ring))
			for i, pt := range ring {
				x, y := fr.Apply(pt[0], pt[1])
				if i == 0 {
					path.MoveTo(x, y)
				} else {
					path.LineTo(x, y)
				}
				rp = append(rp, vec.Point{X: x, Y: y})
			}
			rings = append(rings, rp)
		}
	}
	return &path, rings
}

// SetSelected marks exactly the shape matching code; an unknown or empty
// code deselects all. Idempotent and O(1); the repaint happens on the next
// Render.
func (m *Map) SetSelected(code string) {
	if _, ok := m.index[code]; !ok {
		m.selected = ""
		return
	}
	m.selected = code
}

func (m *Map) Selected() string { return m.selected }

// Pickable lists region codes in feature order; the keyboard pick cycle
// walks this.
func (m *Map) Pickable() []string { return m.order }

// Label returns the human-readable name attached to a pickable shape.
func (m *Map) Label(code string) string {
	if i, ok := m.index[code]; ok {
		return m.shapes[i].label
	}
	return ""
}

// Activate invokes the pick callback for a pickable code. Pointer and
// keyboard activation both land here, so the two are equivalent.
func (m *Map) Activate(code string) {
	if _, ok := m.index[code]; !ok {
		return
	}
	if m.pick != nil {
		m.pick(code)
	}
}

// HitTest maps a canvas coordinate to the pickable shape under it, topmost
// first, using the same even-odd rule the fill uses.
func (m *Map) HitTest(x, y float64) (string, bool) {
	for i := len(m.shapes) - 1; i >= 0; i-- {
		sh := m.shapes[i]
		if sh.code == "" {
			continue
		}
		if containsEvenOdd(sh.rings, x, y) {
			return sh.code, true
		}
	}
	return "", false
}

func containsEvenOdd(rings [][]vec.Point, x, y float64) bool {
	in := false
	for _, r := range rings {
		n := len(r)
		for i := 0; i < n; i++ {
			a, b := r[i], r[(i+1)%n]
			if (a.Y > y) != (b.Y > y) {
				t := (y - a.Y) / (b.Y - a.Y)
				if x < a.X+t*(b.X-a.X) {
					in = !in
				}
			}
		}
	}
	return in
}

// Render repaints every shape. The selected shape gets the highlight at full
// opacity; with a selection active all others dim slightly.
func (m *Map) Render(s vec.Surface) {
	s.Clear()
	for _, sh := range m.shapes {
		st := defaultStyle
		if m.selected != "" {
			if sh.code == m.selected {
				st = selectedStyle
			} else {
				st = dimmedStyle
			}
		}
		s.FillPath(sh.code, sh.label, sh.path, st)
	}
}
