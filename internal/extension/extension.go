package extension

import (
	"context"

	"github.com/vk/flowgridgo/internal/model"
)

// Extension is a self-contained unit of editor behavior. Attach registers
// whatever pipes the extension needs on the editor's scope; it runs once,
// before any mutation is issued, and its registration order across
// extensions is their dispatch order.
type Extension interface {
	// Name identifies the extension in logs and diagnostics.
	Name() string

	// Attach hooks the extension into the editor. Returning an error
	// aborts application startup.
	Attach(ctx context.Context, ed *model.Editor) error
}
