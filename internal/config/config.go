// Package config holds the runtime settings for nightlog, populated from
// defaults, environment variables and command-line flags, in that order.
package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Tannerbraithwaite/nightlog/internal/errors"
	"github.com/Tannerbraithwaite/nightlog/internal/store"
)

// DefaultIntervalMinutes between auto-commits.
const DefaultIntervalMinutes = 15

// Config holds all nightlog application settings.
type Config struct {
	// DataFile is the session record. It should live inside the repository
	// that auto-commit targets.
	DataFile string

	// RepoPath is the repository auto-commit operates on. Defaults to the
	// data file's directory.
	RepoPath string

	// IntervalMinutes between auto-commits.
	IntervalMinutes int

	// Debugging
	Debug   bool
	LogFile string

	// Version prints version information and exits.
	Version bool
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		DataFile:        store.DefaultFile,
		IntervalMinutes: DefaultIntervalMinutes,
	}
}

// LoadFromEnvironment updates config from environment variables.
func (c *Config) LoadFromEnvironment() {
	c.DataFile = getEnvString("NIGHTLOG_DATA_FILE", c.DataFile)
	c.IntervalMinutes = getEnvInt("NIGHTLOG_INTERVAL_MINUTES", c.IntervalMinutes)
	c.Debug = getEnvBool("NIGHTLOG_DEBUG", c.Debug)
	c.LogFile = getEnvString("NIGHTLOG_LOG_FILE", c.LogFile)
}

// SetupFlags registers command-line flags that override config values.
func (c *Config) SetupFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.DataFile, "file", c.DataFile, "Path to the time tracking data file")
	fs.IntVar(&c.IntervalMinutes, "interval", c.IntervalMinutes, "Minutes between auto-commits")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Enable debug logging")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Path to log file (default: next to the data file)")
	fs.BoolVar(&c.Version, "version", c.Version, "Print version information and exit")
}

// ParseFlags parses the given command-line arguments into the config.
func (c *Config) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("nightlog", flag.ContinueOnError)
	c.SetupFlags(fs)
	if err := fs.Parse(args); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfiguration, "failed to parse command-line arguments: %v", err)
	}
	return nil
}

// Finalize validates the config and resolves derived values.
func (c *Config) Finalize() error {
	if c.IntervalMinutes < 1 {
		return errors.Wrapf(errors.ErrInvalidConfiguration,
			"interval must be at least 1 minute, got %d", c.IntervalMinutes)
	}

	abs, err := filepath.Abs(c.DataFile)
	if err != nil {
		return fmt.Errorf("resolve data file path: %w", err)
	}
	c.DataFile = abs

	if c.RepoPath == "" {
		c.RepoPath = filepath.Dir(c.DataFile)
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(filepath.Dir(c.DataFile), "nightlog.log")
	}
	return nil
}

// Interval returns the auto-commit interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMinutes) * time.Minute
}

func getEnvString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
