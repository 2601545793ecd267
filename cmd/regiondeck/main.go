package main

import (
	"flag"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"regiondeck/internal/deck"
	"regiondeck/internal/geom"
	"regiondeck/internal/scenario"
)

func main() {
	regionsPath := flag.String("regions", "regions.geojson", "boundary feature collection (GeoJSON)")
	dataPath := flag.String("data", "data.json", "per-region dataset (JSON)")
	export := flag.String("export", "", "write SVG figures to this directory and exit")
	flag.Parse()

	col, err := geom.LoadRegions(*regionsPath)
	if err != nil {
		log.Fatal("load regions", "err", err)
	}
	ds, err := scenario.LoadDataset(*dataPath)
	if err != nil {
		log.Fatal("load dataset", "err", err)
	}
	model := scenario.NewModel(col, ds)

	if *export != "" {
		if err := deck.ExportSVG(*export, col, model, ""); err != nil {
			log.Fatal("export", "err", err)
		}
		return
	}

	p := tea.NewProgram(deck.New(col, model), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		log.Fatal("run", "err", err)
	}
}
