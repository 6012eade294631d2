package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Tannerbraithwaite/nightlog/internal/errors"
)

func TestDefaults(t *testing.T) {
	c := New()
	if c.DataFile != "time_data.json" {
		t.Errorf("DataFile = %q", c.DataFile)
	}
	if c.IntervalMinutes != 15 {
		t.Errorf("IntervalMinutes = %d, want 15", c.IntervalMinutes)
	}
	if c.Debug {
		t.Error("Debug should default to false")
	}
}

func TestParseFlags(t *testing.T) {
	c := New()
	err := c.ParseFlags([]string{"-file", "/tmp/x/data.json", "-interval", "5", "-debug"})
	if err != nil {
		t.Fatal(err)
	}
	if c.DataFile != "/tmp/x/data.json" {
		t.Errorf("DataFile = %q", c.DataFile)
	}
	if c.IntervalMinutes != 5 {
		t.Errorf("IntervalMinutes = %d", c.IntervalMinutes)
	}
	if !c.Debug {
		t.Error("Debug should be set")
	}
}

func TestParseFlagsInvalid(t *testing.T) {
	c := New()
	err := c.ParseFlags([]string{"-interval", "abc"})
	if !errors.Is(err, errors.ErrInvalidConfiguration) {
		t.Fatalf("expected invalid configuration error, got %v", err)
	}
}

func TestFinalizeDerivesPaths(t *testing.T) {
	dir := t.TempDir()
	c := New()
	c.DataFile = filepath.Join(dir, "time_data.json")

	if err := c.Finalize(); err != nil {
		t.Fatal(err)
	}
	if c.RepoPath != dir {
		t.Errorf("RepoPath = %q, want %q", c.RepoPath, dir)
	}
	if c.LogFile != filepath.Join(dir, "nightlog.log") {
		t.Errorf("LogFile = %q", c.LogFile)
	}
}

func TestFinalizeRejectsBadInterval(t *testing.T) {
	c := New()
	c.IntervalMinutes = 0
	if err := c.Finalize(); !errors.Is(err, errors.ErrInvalidConfiguration) {
		t.Fatalf("expected invalid configuration error, got %v", err)
	}
}

func TestFinalizeKeepsExplicitRepoPath(t *testing.T) {
	c := New()
	c.DataFile = filepath.Join(t.TempDir(), "data.json")
	c.RepoPath = "/somewhere/else"
	if err := c.Finalize(); err != nil {
		t.Fatal(err)
	}
	if c.RepoPath != "/somewhere/else" {
		t.Errorf("RepoPath = %q, explicit value should be kept", c.RepoPath)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("NIGHTLOG_DATA_FILE", "/env/data.json")
	t.Setenv("NIGHTLOG_INTERVAL_MINUTES", "30")
	t.Setenv("NIGHTLOG_DEBUG", "true")

	c := New()
	c.LoadFromEnvironment()

	if c.DataFile != "/env/data.json" {
		t.Errorf("DataFile = %q", c.DataFile)
	}
	if c.IntervalMinutes != 30 {
		t.Errorf("IntervalMinutes = %d", c.IntervalMinutes)
	}
	if !c.Debug {
		t.Error("Debug should be set from env")
	}
}

func TestInterval(t *testing.T) {
	c := New()
	c.IntervalMinutes = 15
	if c.Interval() != 15*time.Minute {
		t.Errorf("Interval = %v", c.Interval())
	}
}
