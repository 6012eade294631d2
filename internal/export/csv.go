package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/Tannerbraithwaite/nightlog/internal/store"
)

// ToCSV writes the session log to a CSV file at path.
func ToCSV(sessions []store.Session, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Start", "End", "Duration (s)", "Duration", "Hours", "Night"}); err != nil {
		return err
	}

	for _, s := range sessions {
		row := []string{
			s.Start.Format(time.RFC3339),
			s.End.Format(time.RFC3339),
			fmt.Sprintf("%d", s.DurationSeconds),
			store.FormatDuration(s.DurationSeconds),
			fmt.Sprintf("%.2f", s.DurationHours),
			s.Night,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
