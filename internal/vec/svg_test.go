package vec

import (
	"bytes"
	"strings"
	"testing"
)

func TestSVGRegionShape(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf, 200, 100)
	s.Clear()
	var p Path
	p.MoveTo(10, 10)
	p.LineTo(50, 10)
	p.LineTo(50, 50)
	s.FillPath("E4001", "North East", &p, Style{Fill: "#D7DCE1", Stroke: "#5B6B7A", StrokeWidth: 1})
	s.End()
	out := buf.String()
	for _, want := range []string{`id="E4001"`, "<title>North East</title>", "fill-rule:evenodd", "M10.00 10.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("svg output missing %q:\n%s", want, out)
		}
	}
}

func TestSVGDimmedOpacity(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf, 100, 100)
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	s.FillPath("", "", &p, Style{Fill: "#D7DCE1", Opacity: 0.55})
	s.End()
	if !strings.Contains(buf.String(), "opacity:0.55") {
		t.Fatalf("expected reduced opacity in output:\n%s", buf.String())
	}
}

func TestSVGSkipsEmptyPath(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf, 100, 100)
	s.FillPath("x", "y", &Path{}, Style{Fill: "#000000"})
	s.End()
	if strings.Contains(buf.String(), "<path") {
		t.Fatal("empty path must not emit a path element")
	}
}
