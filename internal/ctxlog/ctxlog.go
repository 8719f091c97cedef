// Package ctxlog carries a slog.Logger through context.Context so the CLI
// layers can share one configured logger without explicit plumbing.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is an unexported type to keep this package's context entries
// collision-free.
type key struct{}

var loggerKey = key{}

// WithLogger returns a new context carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from ctx, falling back to slog.Default
// when none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
