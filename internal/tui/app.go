package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/Tannerbraithwaite/nightlog/internal/export"
	"github.com/Tannerbraithwaite/nightlog/internal/git"
	"github.com/Tannerbraithwaite/nightlog/internal/store"
)

// App is the root Bubble Tea model.
type App struct {
	store     *store.Store
	committer *git.Committer
	width     int
	height    int

	activeView viewState
	showHelp   bool

	exportPicking bool
	exportCursor  int

	// Quit confirmation when a session is running
	quitPrompt  bool
	quitForm    *huh.Form
	stopAndQuit *bool

	dashboard dashboardModel
	statsView statsModel

	help   help.Model
	status string
}

func NewApp(s *store.Store, committer *git.Committer) App {
	h := help.New()
	h.ShowAll = false

	quit := true
	return App{
		store:       s,
		committer:   committer,
		activeView:  viewTimer,
		dashboard:   newDashboardModel(s),
		statsView:   newStatsModel(s),
		help:        h,
		stopAndQuit: &quit,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		commitTickCmd(),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func commitTickCmd() tea.Cmd {
	return tea.Tick(git.TickInterval, func(t time.Time) tea.Msg {
		return commitTickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.dashboard.setSize(a.width, contentHeight)
		a.statsView.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		if a.quitPrompt {
			return a.updateQuitPrompt(msg)
		}
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		switch {
		case key.Matches(msg, keys.ForceQuit):
			return a.interruptQuit()
		case key.Matches(msg, keys.Quit):
			if a.dashboard.isRunning() {
				return a.showQuitPrompt()
			}
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewTimer
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewStats
			return a, a.statsView.refresh()
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % 2
			if a.activeView == viewStats {
				return a, a.statsView.refresh()
			}
			return a, nil
		}

	case tickMsg:
		// The tick only forces a re-render of the live elapsed display.
		return a, tickCmd()

	case commitTickMsg:
		return a, tea.Batch(commitTickCmd(), a.checkCommitCmd())

	case sessionStartedMsg:
		a.status = "Session started at " + msg.at.Format("15:04:05")
		return a, nil

	case sessionStoppedMsg:
		a.status = fmt.Sprintf("Saved %s (night %s)",
			store.FormatDuration(msg.session.DurationSeconds), msg.session.Night)
		// A stop makes the committer eligible to fire immediately.
		return a, a.checkCommitCmd()

	case commitDoneMsg:
		if msg.committed {
			a.status = "Auto-commit: changes pushed at " + msg.at.Format("15:04:05")
		}
		return a, nil

	case statusMsg:
		a.status = msg.text
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewTimer:
		a.dashboard, cmd = a.dashboard.update(msg)
	case viewStats:
		a.statsView, cmd = a.statsView.update(msg)
	}
	return a, cmd
}

// checkCommitCmd runs one auto-commit cycle off the interactive path, so a
// slow or hung push never freezes the elapsed display.
func (a App) checkCommitCmd() tea.Cmd {
	committer := a.committer
	return func() tea.Msg {
		now := time.Now()
		committed := committer.MaybeCommit(now)
		return commitDoneMsg{committed: committed, at: now}
	}
}

// interruptQuit performs the implicit stop-then-commit-check before exit.
func (a App) interruptQuit() (tea.Model, tea.Cmd) {
	if a.dashboard.isRunning() {
		if sess, err := a.dashboard.stopNow(); err == nil {
			a.status = fmt.Sprintf("Saved %s (night %s)",
				store.FormatDuration(sess.DurationSeconds), sess.Night)
		}
		return a, tea.Sequence(a.checkCommitCmd(), tea.Quit)
	}
	return a, tea.Quit
}

func (a App) showQuitPrompt() (tea.Model, tea.Cmd) {
	*a.stopAndQuit = true
	a.quitForm = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("A session is running").
				Description("Stop and save it before quitting?").
				Affirmative("Stop & quit").
				Negative("Keep tracking").
				Value(a.stopAndQuit),
		),
	).WithShowHelp(false)

	a.quitPrompt = true
	return a, a.quitForm.Init()
}

func (a App) updateQuitPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		a.quitPrompt = false
		a.quitForm = nil
		return a, nil
	}

	form, cmd := a.quitForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.quitForm = f
	}

	if a.quitForm.State == huh.StateCompleted {
		a.quitPrompt = false
		a.quitForm = nil
		if *a.stopAndQuit {
			return a.interruptQuit()
		}
		return a, nil
	}

	return a, cmd
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewTimer:
		content = a.dashboard.view()
	case viewStats:
		content = a.statsView.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}
	if a.quitPrompt && a.quitForm != nil {
		content = activePanelStyle.Width(a.width - 4).Render(a.quitForm.View())
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("nightlog")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	// Live session indicator in footer
	timerInfo := ""
	if a.dashboard.isRunning() {
		timerInfo = successStyle.Render(" ● " + formatClock(a.dashboard.elapsed()))
	}

	left := footerStyle.Render(helpView)
	right := timerInfo + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	formats := []string{"CSV", "JSON"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	return func() tea.Msg {
		sessions := a.store.Sessions()

		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")

		var path string
		if format == 0 {
			path = filepath.Join(home, fmt.Sprintf("nightlog-export-%s.csv", dateStr))
			if err := export.ToCSV(sessions, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(home, fmt.Sprintf("nightlog-export-%s.json", dateStr))
			if err := export.ToJSON(sessions, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}
