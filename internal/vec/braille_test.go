package vec

import (
	"strings"
	"testing"
)

func square(p *Path, x0, y0, size float64) {
	p.MoveTo(x0, y0)
	p.LineTo(x0+size, y0)
	p.LineTo(x0+size, y0+size)
	p.LineTo(x0, y0+size)
}

func TestBrailleFillCoversInterior(t *testing.T) {
	b := NewBraille(20, 10) // 40 x 40 pixels
	var p Path
	square(&p, 2, 2, 35)
	b.FillPath("", "", &p, Style{Fill: "#FF0000"})
	if b.CellMask(10, 5) == 0 {
		t.Fatal("interior cell not filled")
	}
}

func TestBrailleEvenOddHole(t *testing.T) {
	b := NewBraille(20, 10)
	var p Path
	square(&p, 1, 1, 37)  // outer
	square(&p, 14, 14, 12) // hole around the center
	b.FillPath("", "", &p, Style{Fill: "#FF0000"})
	if b.CellMask(10, 4) != 0 {
		t.Fatal("hole interior must stay empty under even-odd fill")
	}
	if b.CellMask(3, 2) == 0 {
		t.Fatal("region between outer ring and hole must be filled")
	}
}

func TestBrailleRenderShape(t *testing.T) {
	b := NewBraille(12, 4)
	b.Line(0, 0, 23, 15, Style{Stroke: "#00FF00"})
	out := b.Render()
	if got := strings.Count(out, "\n"); got != 3 {
		t.Fatalf("expected 4 rendered rows, got %d separators", got)
	}
}

func TestBrailleClear(t *testing.T) {
	b := NewBraille(4, 4)
	b.Line(0, 0, 7, 15, Style{Stroke: "#FFFFFF"})
	b.Clear()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if b.CellMask(x, y) != 0 {
				t.Fatalf("cell (%d,%d) survived Clear", x, y)
			}
		}
	}
}
