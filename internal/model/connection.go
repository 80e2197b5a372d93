package model

import (
	"fmt"

	"github.com/vk/flowgridgo/internal/editor"
	"github.com/vk/flowgridgo/internal/ident"
)

// Connection is a directed edge from one node's output key to another
// node's input key. It holds identifiers only, not pointers, so it
// dangles rather than cascading if an endpoint node is later removed.
type Connection struct {
	ID           string `json:"id"`
	Source       string `json:"source"`
	SourceOutput string `json:"source_output"`
	Target       string `json:"target"`
	TargetInput  string `json:"target_input"`
}

// NewConnection creates an edge between source's output and target's
// input. Construction requires both port keys to currently exist on their
// nodes; a missing key fails with ErrNotFound and nothing reaches the
// store.
func NewConnection(source *Node, outputKey string, target *Node, inputKey string) (*Connection, error) {
	if _, ok := source.Output(outputKey); !ok {
		return nil, fmt.Errorf("source node %q has no output %q: %w", source.ID, outputKey, editor.ErrNotFound)
	}
	if _, ok := target.Input(inputKey); !ok {
		return nil, fmt.Errorf("target node %q has no input %q: %w", target.ID, inputKey, editor.ErrNotFound)
	}
	return &Connection{
		ID:           ident.New(),
		Source:       source.ID,
		SourceOutput: outputKey,
		Target:       target.ID,
		TargetInput:  inputKey,
	}, nil
}

// EntityID satisfies editor.Entity.
func (c *Connection) EntityID() string {
	return c.ID
}
