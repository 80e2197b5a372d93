package model

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/vk/flowgridgo/internal/editor"
	"github.com/vk/flowgridgo/internal/ident"
)

// Node is a vertex of the graph: a display label, a selection flag and
// three independent keyed mappings for inputs, outputs and controls. Keys
// are unique within each mapping, and each port or control is owned
// exclusively by its node.
type Node struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Selected bool   `json:"selected,omitempty"`

	Inputs   *orderedmap.OrderedMap[string, *Input]  `json:"inputs"`
	Outputs  *orderedmap.OrderedMap[string, *Output] `json:"outputs"`
	Controls *orderedmap.OrderedMap[string, Control] `json:"controls"`
}

// NewNode creates an empty node with a fresh identifier.
func NewNode(label string) *Node {
	return &Node{
		ID:       ident.New(),
		Label:    label,
		Inputs:   orderedmap.New[string, *Input](),
		Outputs:  orderedmap.New[string, *Output](),
		Controls: orderedmap.New[string, Control](),
	}
}

// EntityID satisfies editor.Entity.
func (n *Node) EntityID() string {
	return n.ID
}

// AddInput registers an input under key. A key already in use fails with
// ErrDuplicateEntity.
func (n *Node) AddInput(key string, in *Input) error {
	if _, exists := n.Inputs.Get(key); exists {
		return fmt.Errorf("node %q input key %q: %w", n.ID, key, editor.ErrDuplicateEntity)
	}
	n.Inputs.Set(key, in)
	return nil
}

// Input looks up an input by key.
func (n *Node) Input(key string) (*Input, bool) {
	return n.Inputs.Get(key)
}

// RemoveInput drops the input under key. A missing key fails with
// ErrNotFound.
func (n *Node) RemoveInput(key string) error {
	if _, exists := n.Inputs.Get(key); !exists {
		return fmt.Errorf("node %q input key %q: %w", n.ID, key, editor.ErrNotFound)
	}
	n.Inputs.Delete(key)
	return nil
}

// AddOutput registers an output under key. A key already in use fails with
// ErrDuplicateEntity.
func (n *Node) AddOutput(key string, out *Output) error {
	if _, exists := n.Outputs.Get(key); exists {
		return fmt.Errorf("node %q output key %q: %w", n.ID, key, editor.ErrDuplicateEntity)
	}
	n.Outputs.Set(key, out)
	return nil
}

// Output looks up an output by key.
func (n *Node) Output(key string) (*Output, bool) {
	return n.Outputs.Get(key)
}

// RemoveOutput drops the output under key. A missing key fails with
// ErrNotFound.
func (n *Node) RemoveOutput(key string) error {
	if _, exists := n.Outputs.Get(key); !exists {
		return fmt.Errorf("node %q output key %q: %w", n.ID, key, editor.ErrNotFound)
	}
	n.Outputs.Delete(key)
	return nil
}

// AddControl registers a node-level control under key. A key already in
// use fails with ErrDuplicateEntity.
func (n *Node) AddControl(key string, c Control) error {
	if _, exists := n.Controls.Get(key); exists {
		return fmt.Errorf("node %q control key %q: %w", n.ID, key, editor.ErrDuplicateEntity)
	}
	n.Controls.Set(key, c)
	return nil
}

// Control looks up a node-level control by key.
func (n *Node) Control(key string) (Control, bool) {
	return n.Controls.Get(key)
}

// RemoveControl drops the control under key. A missing key fails with
// ErrNotFound.
func (n *Node) RemoveControl(key string) error {
	if _, exists := n.Controls.Get(key); !exists {
		return fmt.Errorf("node %q control key %q: %w", n.ID, key, editor.ErrNotFound)
	}
	n.Controls.Delete(key)
	return nil
}
