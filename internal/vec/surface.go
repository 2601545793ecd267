package vec

// Style describes how a shape is painted. Zero values mean "unset": no fill,
// no stroke, full opacity.
type Style struct {
	Fill        string // hex color
	Stroke      string
	StrokeWidth float64
	Opacity     float64 // (0, 1]; 0 is treated as 1
}

// Surface is a drawing target for the map and chart renderers. Coordinates
// are canvas pixels with the origin at the top-left; concrete targets decide
// how a pixel maps onto their medium. FillPath must honor the even-odd fill
// rule so interior rings read as holes. id and label carry the pick identity
// and the human-readable name of a shape; targets without interactivity may
// ignore them.
type Surface interface {
	Size() (w, h int)
	Clear()
	FillPath(id, label string, p *Path, st Style)
	Line(x0, y0, x1, y1 float64, st Style)
	Polyline(pts []Point, st Style)
	Circle(x, y, r float64, st Style)
	Rect(x, y, w, h float64, st Style)
	Text(x, y float64, s string, st Style)
}
