package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/davecgh/go-spew/spew"

	"github.com/vk/pathmap/internal/ctxlog"
	"github.com/vk/pathmap/internal/docload"
)

// App encapsulates one CLI invocation: the loaded document, the configured
// logger, and the destination for results.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	doc    map[string]any
}

// NewApp constructs the application, loading the target document eagerly. A
// document that cannot be loaded is a fatal startup error and panics; the
// command entrypoint recovers it into a clean exit.
func NewApp(outW, errW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured.")

	doc, err := docload.Load(ctx, config.DocPath)
	if err != nil {
		panic(fmt.Errorf("failed to load document: %w", err))
	}
	logger.Debug("Document loaded.", "path", config.DocPath)
	if logger.Enabled(ctx, slog.LevelDebug) {
		logger.Debug("Document contents follow.", "dump", spew.Sdump(doc))
	}

	return &App{
		outW:   outW,
		logger: logger,
		config: config,
		doc:    doc,
	}
}
