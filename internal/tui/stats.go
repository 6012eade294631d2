package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Tannerbraithwaite/nightlog/internal/stats"
	"github.com/Tannerbraithwaite/nightlog/internal/store"
)

// chartNights caps how many night bars fit on the chart.
const chartNights = 14

type statsModel struct {
	store  *store.Store
	width  int
	height int

	report stats.Report
	chart  barchart.Model
}

func newStatsModel(s *store.Store) statsModel {
	return statsModel{
		store: s,
		chart: barchart.New(60, 12),
	}
}

func (m *statsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m statsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return statsDataMsg{report: stats.Aggregate(m.store.Sessions())}
	}
}

func (m statsModel) update(msg tea.Msg) (statsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statsDataMsg:
		m.report = msg.report
		m.buildChart()
		return m, nil
	}
	return m, nil
}

func (m *statsModel) buildChart() {
	chartWidth := m.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if m.height > 30 {
		chartHeight = 16
	}

	m.chart = barchart.New(chartWidth, chartHeight)

	// Nights come reverse-chronological; the chart reads left to right.
	nights := m.report.Nights
	if len(nights) > chartNights {
		nights = nights[:chartNights]
	}

	barStyle := lipgloss.NewStyle().Foreground(colorPrimary)

	var bars []barchart.BarData
	for i := len(nights) - 1; i >= 0; i-- {
		n := nights[i]
		bars = append(bars, barchart.BarData{
			Label: nightLabel(n.Key),
			Values: []barchart.BarValue{{
				Name:  n.Key,
				Value: float64(n.TotalSeconds) / 3600.0,
				Style: barStyle,
			}},
		})
	}

	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m statsModel) view() string {
	w := m.width - 4

	title := titleStyle.Render("Statistics")

	if m.report.Empty() {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				title,
				mutedStyle.Render("No sessions recorded yet"),
			),
		)
	}

	summary := m.renderSummary()
	chartView := m.chart.View()
	tableView := m.renderNightTable(w)

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title, "", summary, "", chartView, "", tableView,
		),
	)
}

func (m statsModel) renderSummary() string {
	r := m.report
	rows := []string{
		fmt.Sprintf("  %-22s %d", "Total sessions:", r.TotalSessions),
		fmt.Sprintf("  %-22s %s (%.2f hours)", "Total time:",
			highlightStyle.Render(store.FormatDuration(r.TotalSeconds)), r.TotalHours),
		fmt.Sprintf("  %-22s %d", "Nights tracked:", len(r.Nights)),
		fmt.Sprintf("  %-22s %s (%.2f hours)", "Average per night:",
			highlightStyle.Render(store.FormatDuration(int64(r.AvgPerNight))), r.AvgPerNight/3600),
	}
	return strings.Join(rows, "\n")
}

func (m statsModel) renderNightTable(w int) string {
	var rows []string
	headerRow := mutedStyle.Render(fmt.Sprintf("  %-12s %14s %10s %14s", "Night", "Total", "Sessions", "Avg"))
	rows = append(rows, headerRow)
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", minInt(w-6, 54))))

	for _, n := range m.report.Nights {
		rows = append(rows, fmt.Sprintf("  %-12s %14s %10d %14s",
			n.Key,
			store.FormatDuration(n.TotalSeconds),
			n.Sessions,
			store.FormatDuration(int64(n.AvgSeconds)),
		))
	}

	return strings.Join(rows, "\n")
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
