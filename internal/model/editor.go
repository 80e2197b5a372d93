package model

import "github.com/vk/flowgridgo/internal/editor"

// The concrete store instantiation the application and shipped extensions
// work against.
type (
	Editor   = editor.Editor[*Node, *Connection]
	Event    = editor.Event[*Node, *Connection]
	Snapshot = editor.Snapshot[*Node, *Connection]
)

// NewEditor creates an empty editor over the model entity types.
func NewEditor(name string) *Editor {
	return editor.New[*Node, *Connection](name)
}
