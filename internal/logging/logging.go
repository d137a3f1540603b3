// Package logging configures the process-wide structured logger.
//
// Everything goes to stderr: stdout belongs to the MCP stdio transport and
// a single stray log line there corrupts the protocol stream.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New returns a JSON slog logger writing to stderr at the given level.
// Unknown levels fall back to info.
func New(level string) *slog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is New with an explicit destination, for tests.
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: l})
	return slog.New(handler)
}

// WithComponent returns a child logger tagged with the component name.
func WithComponent(logger *slog.Logger, name string) *slog.Logger {
	if logger == nil {
		logger = New("info")
	}
	return logger.With(slog.String("component", name))
}
