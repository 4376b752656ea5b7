// Package logging provides structured logging for go-respawn.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a structured logger writing to stderr.
// Format is "text" or "json"; level is "debug", "info", "warn" or
// "error". Verbose forces debug level.
func New(format, level string, verbose bool) *slog.Logger {
	logLevel := parseLevel(level)
	if verbose {
		logLevel = slog.LevelDebug
	}
	return NewWithWriter(os.Stderr, format, logLevel)
}

// NewWithWriter creates a logger that writes to w. Useful for tests and
// for discarding output while the TUI owns the terminal.
func NewWithWriter(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
		// Source locations are only worth the noise when debugging.
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// SetDefault installs logger as the process-wide slog default.
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}

// parseLevel converts a string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
