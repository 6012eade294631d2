package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Tannerbraithwaite/nightlog/internal/errors"
	"github.com/Tannerbraithwaite/nightlog/internal/store"
)

const recentSessions = 5

type dashboardModel struct {
	store  *store.Store
	timer  timerModel
	width  int
	height int
}

func newDashboardModel(s *store.Store) dashboardModel {
	return dashboardModel{
		store: s,
		timer: newTimerModel(s),
	}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d dashboardModel) isRunning() bool { return d.timer.running() }
func (d dashboardModel) elapsed() time.Duration {
	return d.timer.elapsed()
}

// stopNow ends the running session outside the normal key path. Used for
// the implicit stop on interrupt-driven exit.
func (d *dashboardModel) stopNow() (store.Session, error) {
	return d.timer.stop()
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Start):
			if err := d.timer.start(); err != nil {
				return d, func() tea.Msg {
					return statusMsg{text: "Session is already running", isError: true}
				}
			}
			at := d.timer.startTime
			return d, func() tea.Msg { return sessionStartedMsg{at: at} }

		case key.Matches(msg, keys.Stop):
			sess, err := d.timer.stop()
			if errors.Is(err, errors.ErrNoSession) {
				return d, func() tea.Msg {
					return statusMsg{text: "No active session to stop", isError: true}
				}
			}
			if err != nil {
				return d, func() tea.Msg {
					return statusMsg{text: fmt.Sprintf("Error saving session: %v", err), isError: true}
				}
			}
			return d, func() tea.Msg { return sessionStoppedMsg{session: sess} }
		}
	}
	return d, nil
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}

	contentWidth := d.width - 4

	timerPanel := d.renderTimerPanel(contentWidth)
	lastPanel := d.renderLastSessionPanel(contentWidth)
	recentPanel := d.renderRecentPanel(contentWidth)

	return lipgloss.JoinVertical(lipgloss.Left, timerPanel, lastPanel, recentPanel)
}

func (d dashboardModel) renderTimerPanel(w int) string {
	if d.timer.running() {
		timeDisplay := timerRunningStyle.Width(w - 6).Render(formatClock(d.timer.elapsed()))
		indicator := successStyle.Render("●  RUNNING")
		nightLine := mutedStyle.Render("night ") +
			highlightStyle.Render(store.NightKey(d.timer.startTime)) +
			mutedStyle.Render("  started "+d.timer.startTime.Format("15:04:05"))

		content := lipgloss.JoinVertical(lipgloss.Center,
			timeDisplay,
			indicator,
			nightLine,
		)
		return activePanelStyle.Width(w).Render(content)
	}

	timeDisplay := timerStyle.Width(w - 6).Render("00:00:00")
	indicator := mutedStyle.Render("■  IDLE")
	hint := mutedStyle.Render("Press s to start tracking")

	content := lipgloss.JoinVertical(lipgloss.Center,
		timeDisplay,
		indicator,
		hint,
	)
	return panelStyle.Width(w).Render(content)
}

func (d dashboardModel) renderLastSessionPanel(w int) string {
	title := titleStyle.Render("Last Session")

	last := d.store.LastSession()
	if last == nil {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			mutedStyle.Render("No sessions recorded yet"),
		)
		return panelStyle.Width(w).Render(content)
	}

	line := fmt.Sprintf("  %s  (%.2f hours)  night %s",
		store.FormatDuration(last.DurationSeconds),
		last.DurationHours,
		last.Night,
	)
	span := mutedStyle.Render(fmt.Sprintf("  %s — %s",
		last.Start.Format("Jan 02 15:04:05"),
		last.End.Format("15:04:05"),
	))

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, line, span),
	)
}

func (d dashboardModel) renderRecentPanel(w int) string {
	title := titleStyle.Render("Recent Sessions")

	sessions := d.store.Sessions()
	if len(sessions) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			mutedStyle.Render("No sessions yet"),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	for i := len(sessions) - 1; i >= 0 && i >= len(sessions)-recentSessions; i-- {
		s := sessions[i]
		row := fmt.Sprintf("  %s  %-12s night %s",
			s.Start.Format("Jan 02 15:04"),
			store.FormatDuration(s.DurationSeconds),
			s.Night,
		)
		rows = append(rows, row)
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
