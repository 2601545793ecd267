package deck

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"regiondeck/internal/project"
	"regiondeck/internal/regionmap"
)

// layout mirrors the View arithmetic so the mouse handler and the map
// builder agree on where the figure area sits.
type layout struct {
	sidebarW int
	contentW int
	contentH int
	figX     int
	figY     int
	figW     int // figure area in cells
	figH     int
	panelW   int
}

func (m Model) layout() layout {
	var ly layout
	if m.showSidebar {
		ly.sidebarW = 28
	}
	headerHeight := 1
	footerHeight := 2
	ly.contentH = m.height - headerHeight - footerHeight
	if ly.contentH < 4 {
		ly.contentH = 4
	}
	ly.contentW = max(10, m.width)
	if m.slide == slideMap {
		ly.panelW = 34
	}
	ly.figX = ly.sidebarW
	if m.showSidebar {
		ly.figX++
	}
	ly.figY = headerHeight
	ly.figW = ly.contentW - ly.sidebarW - ly.panelW - 1
	if ly.figW < 10 {
		ly.figW = 10
	}
	ly.figH = ly.contentH
	return ly
}

// rebuildMap compiles the region shapes for the current figure area and
// records its cell dimensions, so the braille canvas and the frame always
// agree on size. Geometry is only rebuilt here (resize, slide or sidebar
// change); picking and selection restyle the existing build.
func (m *Model) rebuildMap() {
	ly := m.layout()
	frame := project.Fit(project.Mercator{}, m.regions, ly.figW*2, ly.figH*4, 0.96)
	var mp *regionmap.Map
	mp = regionmap.Build(m.regions, frame, func(code string) { mp.SetSelected(code) })
	if m.mp != nil {
		mp.SetSelected(m.mp.Selected())
	}
	m.mp = mp
	m.mapCellsW, m.mapCellsH = ly.figW, ly.figH
}

func (m *Model) pickRegion(code string) {
	if m.mp == nil {
		return
	}
	m.mp.Activate(code)
	m.status = "selected: " + m.data.Name(code)
}

// cycleRegion moves the selection through the pickable codes in order.
func (m *Model) cycleRegion(step int) {
	if m.mp == nil {
		return
	}
	codes := m.mp.Pickable()
	if len(codes) == 0 {
		m.status = "no pickable regions"
		return
	}
	cur := -1
	for i, c := range codes {
		if c == m.mp.Selected() {
			cur = i
			break
		}
	}
	next := (cur + step + len(codes)) % len(codes)
	m.pickRegion(codes[next])
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildMap()
		if m.showSidebar {
			m.l.SetSize(28-2, m.layout().contentH-2)
		}
	case tea.KeyMsg:
		// If the sidebar is filtering, it owns the keyboard.
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "right", "pgdown", " ":
			m.slide = (m.slide + 1) % slideCount
			m.rebuildMap() // panel width differs per slide
			m.status = slideTitles[m.slide]
		case "left", "pgup":
			m.slide = (m.slide + slideCount - 1) % slideCount
			m.rebuildMap()
			m.status = slideTitles[m.slide]
		case "tab":
			m.showSidebar = !m.showSidebar
			m.rebuildMap()
			if m.showSidebar {
				m.l.SetSize(28-2, m.layout().contentH-2)
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(regionItem); ok {
					m.pickRegion(it.code)
				}
			}
		case "n":
			m.cycleRegion(1)
		case "N":
			m.cycleRegion(-1)
		case "+", "=":
			m.adoption = min(1, m.adoption+0.05)
			m.status = fmt.Sprintf("adoption: %.0f%%", m.adoption*100)
		case "-", "_":
			m.adoption = max(0, m.adoption-0.05)
			m.status = fmt.Sprintf("adoption: %.0f%%", m.adoption*100)
		case "e":
			sel := ""
			if m.mp != nil {
				sel = m.mp.Selected()
			}
			if err := ExportSVG(m.exportDir, m.regions, m.data, sel); err != nil {
				m.status = "export error: " + err.Error()
			} else {
				m.status = "figures written to " + m.exportDir
			}
		case "h":
			m.helpVisible = !m.helpVisible
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			break
		}
		if m.slide != slideMap || m.mp == nil {
			break
		}
		ly := m.layout()
		cx, cy := msg.X-ly.figX, msg.Y-ly.figY
		if cx < 0 || cx >= ly.figW || cy < 0 || cy >= ly.figH {
			break
		}
		// cell center on the braille microgrid
		if code, ok := m.mp.HitTest(float64(cx*2+1), float64(cy*4+2)); ok {
			m.pickRegion(code)
		}
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}
