package logging

import (
	"io"
	"log/slog"
)

// LogFormat defines the supported log output formats.
type LogFormat string

const (
	LogFormatText LogFormat = "text" // plain text logs
	LogFormatJSON LogFormat = "json" // structured JSON logs
)

// SetupLogger returns a slog.Logger writing to w in the given format.
// Debug enables debug-level output.
func SetupLogger(format LogFormat, debug bool, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case LogFormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
