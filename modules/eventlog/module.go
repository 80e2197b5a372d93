// Package eventlog ships the simplest possible extension: one structured
// log line per pipeline event. It transforms nothing and never vetoes.
package eventlog

import (
	"context"

	"github.com/vk/flowgridgo/internal/ctxlog"
	"github.com/vk/flowgridgo/internal/model"
)

// Module implements the extension.Extension interface for this package.
type Module struct{}

// Name identifies the extension.
func (m *Module) Name() string {
	return "eventlog"
}

// Attach registers the logging pipe on the editor's scope.
func (m *Module) Attach(ctx context.Context, ed *model.Editor) error {
	ed.Scope().AddPipe(func(ctx context.Context, ev model.Event) (model.Event, bool, error) {
		logger := ctxlog.FromContext(ctx).With("editor", ed.Name(), "event", string(ev.Kind))
		switch {
		case ev.Node != nil:
			logger.Debug("pipeline event", "node", ev.Node.ID, "label", ev.Node.Label)
		case ev.Connection != nil:
			logger.Debug("pipeline event",
				"connection", ev.Connection.ID,
				"source", ev.Connection.Source,
				"target", ev.Connection.Target)
		case ev.Snapshot != nil:
			logger.Debug("pipeline event",
				"nodes", len(ev.Snapshot.Nodes),
				"connections", len(ev.Snapshot.Connections))
		default:
			logger.Debug("pipeline event")
		}
		return ev, true, nil
	})
	return nil
}
