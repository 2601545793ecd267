package vec

// Recorder is a Surface that records every draw call. The renderer tests in
// this module assert against it instead of parsing rasterized output.
type Recorder struct {
	W, H   int
	Clears int

	Paths     []RecPath
	Lines     []RecLine
	Polylines []RecPolyline
	Circles   []RecCircle
	Rects     []RecRect
	Texts     []RecText
}

type RecPath struct {
	ID, Label string
	Path      *Path
	Style     Style
}

type RecLine struct {
	X0, Y0, X1, Y1 float64
	Style          Style
}

type RecPolyline struct {
	Pts   []Point
	Style Style
}

type RecCircle struct {
	X, Y, R float64
	Style   Style
}

type RecRect struct {
	X, Y, W, H float64
	Style      Style
}

type RecText struct {
	X, Y  float64
	S     string
	Style Style
}

func NewRecorder(w, h int) *Recorder { return &Recorder{W: w, H: h} }

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Clear() {
	r.Clears++
	r.Paths = nil
	r.Lines = nil
	r.Polylines = nil
	r.Circles = nil
	r.Rects = nil
	r.Texts = nil
}

func (r *Recorder) FillPath(id, label string, p *Path, st Style) {
	r.Paths = append(r.Paths, RecPath{ID: id, Label: label, Path: p, Style: st})
}

func (r *Recorder) Line(x0, y0, x1, y1 float64, st Style) {
	r.Lines = append(r.Lines, RecLine{x0, y0, x1, y1, st})
}

func (r *Recorder) Polyline(pts []Point, st Style) {
	r.Polylines = append(r.Polylines, RecPolyline{pts, st})
}

func (r *Recorder) Circle(x, y, rad float64, st Style) {
	r.Circles = append(r.Circles, RecCircle{x, y, rad, st})
}

func (r *Recorder) Rect(x, y, w, h float64, st Style) {
	r.Rects = append(r.Rects, RecRect{x, y, w, h, st})
}

func (r *Recorder) Text(x, y float64, s string, st Style) {
	r.Texts = append(r.Texts, RecText{x, y, s, st})
}
