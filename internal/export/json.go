package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Tannerbraithwaite/nightlog/internal/store"
)

type jsonExport struct {
	ExportedAt string        `json:"exported_at"`
	Count      int           `json:"count"`
	Sessions   []jsonSession `json:"sessions"`
}

type jsonSession struct {
	Start       string  `json:"start"`
	End         string  `json:"end"`
	DurationSec int64   `json:"duration_seconds"`
	Duration    string  `json:"duration"`
	Hours       float64 `json:"duration_hours"`
	Night       string  `json:"night"`
}

// ToJSON writes the session log to a JSON file at path. Unlike the raw
// data file this adds human-readable durations per session.
func ToJSON(sessions []store.Session, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().Format(time.RFC3339),
		Count:      len(sessions),
	}

	for _, s := range sessions {
		export.Sessions = append(export.Sessions, jsonSession{
			Start:       s.Start.Format(time.RFC3339),
			End:         s.End.Format(time.RFC3339),
			DurationSec: s.DurationSeconds,
			Duration:    store.FormatDuration(s.DurationSeconds),
			Hours:       s.DurationHours,
			Night:       s.Night,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
