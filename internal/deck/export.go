package deck

import (
	"fmt"
	"os"
	"path/filepath"

	"regiondeck/internal/chart"
	"regiondeck/internal/geom"
	"regiondeck/internal/project"
	"regiondeck/internal/regionmap"
	"regiondeck/internal/scenario"
	"regiondeck/internal/vec"
)

// Export canvas sizes, in SVG pixels.
const (
	mapW, mapH     = 960, 540
	chartW, chartH = 640, 360
)

// ExportSVG writes the deck's three figures as standalone SVG files,
// highlighting the given selection on the map. Works without a running
// program, so the -export flag can use it headlessly.
func ExportSVG(dir string, col *geom.Collection, data *scenario.Model, selected string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export dir: %w", err)
	}

	err := writeSVG(filepath.Join(dir, "map.svg"), mapW, mapH, func(s *vec.SVG) {
		frame := project.Fit(project.Mercator{}, col, mapW, mapH, 0.96)
		mp := regionmap.Build(col, frame, nil)
		mp.SetSelected(selected)
		mp.Render(s)
	})
	if err != nil {
		return err
	}

	err = writeSVG(filepath.Join(dir, "uptake.svg"), chartW, chartH, func(s *vec.SVG) {
		var pts []chart.GroupPoint
		for _, yp := range data.National() {
			pts = append(pts, chart.GroupPoint{Period: yp.Year, A: yp.Referrals, B: yp.Accessed})
		}
		chart.GroupedBars(s, pts, chart.DefaultBarColors)
	})
	if err != nil {
		return err
	}

	return writeSVG(filepath.Join(dir, "sessions.svg"), chartW, chartH, func(s *vec.SVG) {
		var pts []chart.LinePoint
		for _, yv := range data.Sessions() {
			pts = append(pts, chart.LinePoint{Period: yv.Year, Value: yv.Value})
		}
		chart.Line(s, pts, sessionsAxis, "#0F62FE")
	})
}

func writeSVG(path string, w, h int, draw func(*vec.SVG)) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	s := vec.NewSVG(f, w, h)
	draw(s)
	s.End()
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
