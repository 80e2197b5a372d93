package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/vk/flowgridgo/internal/ctxlog"
)

// Run executes the main application logic: load the graph description,
// import it through the mutation pipeline, export the resulting snapshot
// and write it out as JSON.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	snap, err := a.loader.Load(ctx, cfg.GraphPath)
	if err != nil {
		return fmt.Errorf("failed to load graph description: %w", err)
	}
	a.logger.Info("Graph description loaded.", "nodes", len(snap.Nodes), "connections", len(snap.Connections))

	ok, err := a.editor.Import(ctx, snap)
	if err != nil {
		return fmt.Errorf("graph import failed: %w", err)
	}
	if !ok {
		return fmt.Errorf("graph import was vetoed by an extension")
	}
	a.logger.Info("Graph imported.",
		"nodes", len(a.editor.Nodes()),
		"connections", len(a.editor.Connections()))

	exported, ok, err := a.editor.Export(ctx)
	if err != nil {
		return fmt.Errorf("graph export failed: %w", err)
	}
	if !ok {
		return fmt.Errorf("graph export was vetoed by an extension")
	}

	encoded, err := json.MarshalIndent(exported, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if cfg.OutputPath != "" {
		if err := os.WriteFile(cfg.OutputPath, append(encoded, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		a.logger.Info("Snapshot written.", "path", cfg.OutputPath)
	} else {
		fmt.Fprintf(a.outW, "%s\n", encoded)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
