package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Logger is the internal logging interface. nightlog runs inside an
// alternate-screen TUI, so log output goes to a file, never to the terminal;
// user-facing messages travel through the TUI status line instead.
type Logger interface {
	// Info logs an informational message.
	Info(format string, args ...interface{})

	// Warning logs a warning message.
	Warning(format string, args ...interface{})

	// Error logs an error message.
	Error(format string, args ...interface{})

	// Close flushes buffered data and closes the log file handle.
	Close() error
}

// FileLogger writes structured log lines to a file and implements Logger.
type FileLogger struct {
	mu      sync.Mutex
	logger  *slog.Logger
	enabled bool
	file    *os.File
}

// New creates a Logger. When enabled is false, all log calls are no-ops.
// When the log file cannot be opened, logging falls back to stderr rather
// than failing startup.
func New(enabled bool, logFile string) *FileLogger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	if !enabled {
		return &FileLogger{
			logger: slog.New(slog.NewTextHandler(io.Discard, opts)),
		}
	}

	var file *os.File
	var w io.Writer = os.Stderr

	if dir := filepath.Dir(logFile); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	if f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		file = f
		w = f
	}

	l := &FileLogger{
		logger:  slog.New(slog.NewTextHandler(w, opts)),
		enabled: true,
		file:    file,
	}
	l.logger.Info("nightlog debug logging started")
	return l
}

// Info logs an informational message.
func (l *FileLogger) Info(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled {
		return
	}
	l.logger.Info(fmt.Sprintf(format, args...))
}

// Warning logs a warning message.
func (l *FileLogger) Warning(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled {
		return
	}
	l.logger.Warn(fmt.Sprintf(format, args...))
}

// Error logs an error message.
func (l *FileLogger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled {
		return
	}
	l.logger.Error(fmt.Sprintf(format, args...))
}

// Close ensures any buffered data is written and closes the log file.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		if err := l.file.Sync(); err != nil {
			return err
		}
		return l.file.Close()
	}
	return nil
}
