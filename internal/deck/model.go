package deck

import (
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"regiondeck/internal/geom"
	"regiondeck/internal/regionmap"
	"regiondeck/internal/scenario"
)

// Slides, in order.
const (
	slideMap = iota
	slideUptake
	slideSessions
	slideScenario
	slideCount
)

var slideTitles = [slideCount]string{
	"regional picture",
	"national uptake",
	"sessions per course",
	"adoption scenario",
}

type Model struct {
	width  int
	height int

	slide       int
	helpVisible bool
	showSidebar bool

	status string

	// Data, loaded once before the program starts.
	regions *geom.Collection
	data    *scenario.Model

	// Scenario input, mutated only by its key handler.
	adoption float64

	// Built once per map area size; selection changes restyle only.
	mp        *regionmap.Map
	mapCellsW int
	mapCellsH int

	// Region picker sidebar
	l list.Model

	exportDir string
}

type regionItem struct {
	code, name string
}

func (r regionItem) Title() string       { return r.name }
func (r regionItem) Description() string { return r.code }
func (r regionItem) FilterValue() string { return r.name }

func New(col *geom.Collection, data *scenario.Model) Model {
	m := Model{
		helpVisible: true,
		status:      "regiondeck ready",
		regions:     col,
		data:        data,
		adoption:    data.Params().Adoption,
		exportDir:   "figures",
	}
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	var items []list.Item
	for _, code := range col.Codes() {
		f, _ := col.Find(code)
		name := f.Name
		if name == "" {
			name = code
		}
		items = append(items, regionItem{code: code, name: name})
	}
	m.l = list.New(items, d, 0, 0)
	m.l.Title = "Regions"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	return m
}

func (m Model) Init() tea.Cmd { return nil }
