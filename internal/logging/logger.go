// Package logging builds the diagnostic slog logger. Diagnostics go to a
// separate writer (stderr in the binary) so they never mix with the
// interactive prompts on stdout.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New returns a logger writing to w.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Setup installs New(w, level, format) as the slog default and returns it.
func Setup(w io.Writer, level, format string) *slog.Logger {
	logger := New(w, level, format)
	slog.SetDefault(logger)
	return logger
}

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
