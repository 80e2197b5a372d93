package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/flowgridgo/internal/ctxlog"
	"github.com/vk/flowgridgo/internal/extension"
	"github.com/vk/flowgridgo/internal/hclgraph"
	"github.com/vk/flowgridgo/internal/model"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	editor *model.Editor
	loader *hclgraph.Loader
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App with its own isolated logger and editor, and all
// configured extensions attached. Startup failures panic; the entrypoint
// recovers them into a clean exit.
func NewApp(outW, logW io.Writer, cfg *Config, loader *hclgraph.Loader, extensions ...extension.Extension) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	ed := model.NewEditor("flowgrid")

	if len(extensions) == 0 {
		extensions = coreExtensions(cfg)
	}
	for _, ext := range extensions {
		if err := ext.Attach(ctx, ed); err != nil {
			// A failing extension at startup is a fatal wiring error.
			panic(fmt.Errorf("failed to attach extension %q: %w", ext.Name(), err))
		}
		logger.Debug("Extension attached.", "extension", ext.Name())
	}
	logger.Debug("All extensions attached.", "count", len(extensions))

	return &App{
		outW:   outW,
		logger: logger,
		editor: ed,
		loader: loader,
	}
}

// Editor returns the application's editor. This is primarily for testing.
func (a *App) Editor() *model.Editor {
	return a.editor
}
