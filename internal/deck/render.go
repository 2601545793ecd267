package deck

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"regiondeck/internal/chart"
	"regiondeck/internal/scenario"
	"regiondeck/internal/vec"
)

// sessionsAxis is fixed, not data-derived: mean sessions per course sits in
// a narrow, known band.
var sessionsAxis = chart.Axis{Min: 0, Max: 12, Step: 2}

func (m Model) mapFigure() string {
	if m.mp == nil || m.mapCellsW <= 0 {
		return ""
	}
	b := vec.NewBraille(m.mapCellsW, m.mapCellsH)
	m.mp.Render(b)
	return b.Render()
}

func (m Model) uptakeFigure(wCells, hCells int) string {
	b := vec.NewBraille(wCells, hCells)
	var pts []chart.GroupPoint
	for _, yp := range m.data.National() {
		pts = append(pts, chart.GroupPoint{Period: yp.Year, A: yp.Referrals, B: yp.Accessed})
	}
	chart.GroupedBars(b, pts, chart.DefaultBarColors)
	return b.Render()
}

func (m Model) sessionsFigure(wCells, hCells int) string {
	b := vec.NewBraille(wCells, hCells)
	var pts []chart.LinePoint
	for _, yv := range m.data.Sessions() {
		pts = append(pts, chart.LinePoint{Period: yv.Year, Value: yv.Value})
	}
	chart.Line(b, pts, sessionsAxis, "#0F62FE")
	return b.Render()
}

// detailPanel summarizes the selected region's row and its scenario outcome
// at the current adoption fraction.
func (m Model) detailPanel() string {
	sel := ""
	if m.mp != nil {
		sel = m.mp.Selected()
	}
	if sel == "" {
		return dimStyle.Render("no region selected\n\nTab opens the region list;\nn cycles, click picks.")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", titleStyle.Render(m.data.Name(sel)), dimStyle.Render(sel))
	r, ok := m.data.Region(sel)
	if !ok {
		b.WriteString(dimStyle.Render("no dataset row for this region"))
		return b.String()
	}
	fmt.Fprintf(&b, "referrals      %s\n", scenario.Count(r.Referrals))
	fmt.Fprintf(&b, "wait (days)    %.0f\n", r.WaitDays)
	fmt.Fprintf(&b, "recovery       %s\n", scenario.Percent(r.RecoveryRate))
	fmt.Fprintf(&b, "mean sessions  %.1f\n", r.MeanSessions)
	if o, ok := m.data.Evaluate(sel, m.adoption); ok {
		fmt.Fprintf(&b, "\nat %s adoption:\n", scenario.Percent(m.adoption))
		fmt.Fprintf(&b, "digital refs   %s\n", scenario.Count(o.DigitalReferrals))
		fmt.Fprintf(&b, "sessions freed %s\n", scenario.Count(o.SessionsFreed))
		fmt.Fprintf(&b, "cost avoided   %s\n", scenario.Money(o.CostAvoided))
	}
	return b.String()
}

// scenarioPanel is the closing slide: the national totals under the current
// adoption fraction.
func (m Model) scenarioPanel(ly layout) string {
	var totRefs, totFreed, totCost float64
	for _, code := range m.regions.Codes() {
		if o, ok := m.data.Evaluate(code, m.adoption); ok {
			totRefs += o.DigitalReferrals
			totFreed += o.SessionsFreed
			totCost += o.CostAvoided
		}
	}
	lines := []string{
		titleStyle.Render("adoption scenario"),
		"",
		fmt.Sprintf("adoption fraction   %s", scenario.Percent(m.adoption)),
		fmt.Sprintf("digital referrals   %s", scenario.Count(totRefs)),
		fmt.Sprintf("sessions freed      %s", scenario.Count(totFreed)),
		fmt.Sprintf("cost avoided        %s", scenario.Money(totCost)),
		"",
		dimStyle.Render("+/- adjusts the adoption fraction"),
	}
	box := boxStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(ly.figW, ly.figH, lipgloss.Center, lipgloss.Center, box)
}
