package main

import (
	"io"
	"log/slog"
)

// Log levels accepted by --log-level.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// newLogger returns a text logger on w filtering below level.
func newLogger(w io.Writer, level string) *slog.Logger {
	var slogLevel slog.Level
	switch level {
	case LevelDebug:
		slogLevel = slog.LevelDebug
	case LevelInfo:
		slogLevel = slog.LevelInfo
	case LevelError:
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel}))
}
