package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFile is the data file name, resolved against the working directory
// so the record lives inside the repository that auto-commit targets.
const DefaultFile = "time_data.json"

// Store owns the on-disk session record. It is loaded once at startup and
// the whole record is rewritten after every mutation; there is no
// incremental append format.
type Store struct {
	path string
	data Data
}

// Load reads the record at path. A missing or unparseable file silently
// degrades to an empty store; Load never fails.
func Load(path string) *Store {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return s
	}
	s.data = d
	return s
}

// Save serializes the full record and replaces the file. The write goes
// through a temp file in the same directory followed by a rename, so a
// crash mid-write leaves the previous record intact.
func (s *Store) Save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".nightlog-*.json")
	if err != nil {
		return fmt.Errorf("create temp record: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close record: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace record: %w", err)
	}
	return nil
}

// Append adds a session to the end of the log, updates last_session and
// saves the record. Prior sessions are never reordered or modified.
func (s *Store) Append(sess Session) error {
	s.data.Sessions = append(s.data.Sessions, sess)
	s.data.LastSession = &s.data.Sessions[len(s.data.Sessions)-1]
	return s.Save()
}

// Sessions returns the session log in insertion (chronological) order.
func (s *Store) Sessions() []Session {
	return s.data.Sessions
}

// LastSession returns the most recently appended session, or nil when the
// log is empty.
func (s *Store) LastSession() *Session {
	return s.data.LastSession
}

// Path returns the location of the data file.
func (s *Store) Path() string {
	return s.path
}
