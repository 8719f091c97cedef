package app

import (
	"io"
	"log/slog"
)

// newLogger builds an isolated slog.Logger writing to errW. It never touches
// the process-wide default logger, so tests can run apps side by side.
func newLogger(levelStr, formatStr string, errW io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(errW, opts))
	}
	return slog.New(slog.NewTextHandler(errW, opts))
}
