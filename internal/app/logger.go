package app

import (
	"io"
	"log/slog"
)

// newLogger builds the slog.Logger every submission step logs through. It
// does not touch the global logger, so parallel App instances stay
// isolated. The level string has already been validated by the CLI layer;
// anything unrecognized falls back to info.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
