package deck

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	ly := m.layout()

	// Header
	title := fmt.Sprintf(" regiondeck ─ %s  [%d/%d] ", slideTitles[m.slide], m.slide+1, slideCount)
	header := lipgloss.NewStyle().Width(ly.contentW).Render(titleStyle.Render(title))

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(ly.sidebarW).Render(m.l.View())
	}

	// Figure column
	fig := m.renderSlide(ly)
	figView := lipgloss.NewStyle().Width(ly.figW).Height(ly.figH).Render(fig)

	// Detail panel (map slide only)
	var cols []string
	if m.showSidebar {
		cols = append(cols, sidebar, " ")
	}
	cols = append(cols, figView)
	if m.slide == slideMap {
		panel := boxStyle.Width(ly.panelW - 2).Render(m.detailPanel())
		cols = append(cols, panel)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	// Footer: status + help + adoption readout
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	adoption := dimStyle.Render(fmt.Sprintf("  adoption %.0f%%  ", m.adoption*100))
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, ly.contentW-lipgloss.Width(left)-lipgloss.Width(adoption))
	right := lipgloss.Place(spacerW+lipgloss.Width(adoption), 1, lipgloss.Right, lipgloss.Center, adoption)
	footer := lipgloss.NewStyle().Width(ly.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(ly.contentW).Height(m.height).Render(ui)
}

func (m Model) renderSlide(ly layout) string {
	switch m.slide {
	case slideMap:
		return m.mapFigure()
	case slideUptake:
		return m.uptakeFigure(ly.figW, ly.figH)
	case slideSessions:
		return m.sessionsFigure(ly.figW, ly.figH)
	default:
		return m.scenarioPanel(ly)
	}
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"←→ slides",
		"Tab regions",
		"Enter pick",
		"n/N cycle",
		"click pick",
		"+/- adoption",
		"e export",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
