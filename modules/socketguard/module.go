// Package socketguard vetoes connections between incompatible sockets.
//
// The editing core deliberately leaves socket compatibility to extensions;
// this module is the reference policy: a connectioncreate event is stopped
// when the source output's socket name differs from the target input's.
// All other events pass through untouched.
package socketguard

import (
	"context"

	"github.com/vk/flowgridgo/internal/ctxlog"
	"github.com/vk/flowgridgo/internal/editor"
	"github.com/vk/flowgridgo/internal/model"
)

// Module implements the extension.Extension interface for this package.
type Module struct{}

// Name identifies the extension.
func (m *Module) Name() string {
	return "socketguard"
}

// Attach registers the guarding pipe on the editor's scope.
func (m *Module) Attach(ctx context.Context, ed *model.Editor) error {
	ed.Scope().AddPipe(func(ctx context.Context, ev model.Event) (model.Event, bool, error) {
		if ev.Kind != editor.KindConnectionCreate {
			return ev, true, nil
		}
		if compatible(ed, ev.Connection) {
			return ev, true, nil
		}
		ctxlog.FromContext(ctx).Info("connection vetoed: incompatible sockets",
			"editor", ed.Name(),
			"connection", ev.Connection.ID,
			"source", ev.Connection.Source,
			"target", ev.Connection.Target)
		return ev, false, nil
	})
	return nil
}

// compatible resolves both endpoint sockets and compares their names.
// Endpoints that cannot be resolved are let through: referential checks
// belong to the connection constructor, not to this policy.
func compatible(ed *model.Editor, c *model.Connection) bool {
	source, ok := ed.Node(c.Source)
	if !ok {
		return true
	}
	target, ok := ed.Node(c.Target)
	if !ok {
		return true
	}
	out, ok := source.Output(c.SourceOutput)
	if !ok || out.Socket == nil {
		return true
	}
	in, ok := target.Input(c.TargetInput)
	if !ok || in.Socket == nil {
		return true
	}
	return out.Socket.CompatibleWith(in.Socket)
}
