package tui

import (
	"fmt"
	"time"

	"github.com/Tannerbraithwaite/nightlog/internal/stats"
	"github.com/Tannerbraithwaite/nightlog/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewTimer viewState = iota
	viewStats
)

var viewNames = []string{"Timer", "Stats"}

// --- Messages ---

type sessionStartedMsg struct {
	at time.Time
}

type sessionStoppedMsg struct {
	session store.Session
}

type statusMsg struct {
	text    string
	isError bool
}

// tickMsg drives the live elapsed display.
type tickMsg time.Time

// commitTickMsg drives the periodic background auto-commit check.
type commitTickMsg time.Time

type commitDoneMsg struct {
	committed bool
	at        time.Time
}

type statsDataMsg struct {
	report stats.Report
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

// formatClock renders a duration as HH:MM:SS for the live display.
func formatClock(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// nightLabel renders a night key as a short date for chart labels.
func nightLabel(key string) string {
	t, err := time.Parse("2006-01-02", key)
	if err != nil {
		return key
	}
	return t.Format("Jan 02")
}
