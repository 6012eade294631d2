package store

import (
	"fmt"
	"math"
	"time"
)

// Session is one completed start-to-stop tracked interval. Sessions are
// immutable once created and never deleted.
type Session struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationSeconds int64     `json:"duration_seconds"`
	DurationHours   float64   `json:"duration_hours"`
	Night           string    `json:"date"`
}

// Data is the full persisted record: the session log plus a convenience
// pointer to the most recently appended session.
type Data struct {
	Sessions    []Session `json:"sessions"`
	LastSession *Session  `json:"last_session"`
}

// NewSession builds a completed session from its two wall-clock reads.
// Duration is truncated to whole seconds, hours rounded to two decimals,
// and the night key taken from the start time.
func NewSession(start, end time.Time) Session {
	secs := int64(end.Sub(start).Seconds())
	if secs < 0 {
		secs = 0
	}
	return Session{
		Start:           start,
		End:             end,
		DurationSeconds: secs,
		DurationHours:   math.Round(float64(secs)/3600*100) / 100,
		Night:           NightKey(start),
	}
}

// NightKey maps a timestamp to the calendar date of the "night" it belongs
// to. A night runs from 6 PM to 6 PM the next day: before 18:00 a timestamp
// still counts toward the previous day's night. Uses whatever local time the
// host reports; no timezone or DST normalization.
func NightKey(t time.Time) string {
	if t.Hour() < 18 {
		t = t.AddDate(0, 0, -1)
	}
	return t.Format("2006-01-02")
}

// FormatDuration renders a second count as "2h 5m 3s", omitting leading
// zero-valued units. Zero renders as "0s".
func FormatDuration(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
