package model

import (
	"fmt"

	"github.com/vk/flowgridgo/internal/editor"
	"github.com/vk/flowgridgo/internal/ident"
)

// Port is the base of Input and Output: a named connection point on a
// node. Index orders ports for presentation; Multiple allows more than one
// simultaneous connection on the port.
type Port struct {
	ID       string  `json:"id"`
	Index    int     `json:"index,omitempty"`
	Socket   *Socket `json:"socket"`
	Label    string  `json:"label,omitempty"`
	Multiple bool    `json:"multiple"`
}

// Input is a port that receives connections. Inputs default to a single
// connection and may own at most one inline control.
type Input struct {
	Port
	Control     Control `json:"control,omitempty"`
	ShowControl bool    `json:"show_control,omitempty"`
}

// NewInput creates an input port for the given socket. Inputs do not
// accept multiple connections unless the caller flips Multiple.
func NewInput(socket *Socket, label string) *Input {
	return &Input{Port: Port{
		ID:     ident.New(),
		Socket: socket,
		Label:  label,
	}}
}

// AddControl attaches an inline control to the input and makes it visible.
// An input owns at most one control; attaching a second one fails with
// ErrInvalidState.
func (i *Input) AddControl(c Control) error {
	if i.Control != nil {
		return fmt.Errorf("input %q already has a control: %w", i.ID, editor.ErrInvalidState)
	}
	i.Control = c
	i.ShowControl = true
	return nil
}

// RemoveControl detaches the input's control, if any.
func (i *Input) RemoveControl() {
	i.Control = nil
	i.ShowControl = false
}

// Output is a port that originates connections. Outputs accept multiple
// simultaneous connections by default.
type Output struct {
	Port
}

// NewOutput creates an output port for the given socket.
func NewOutput(socket *Socket, label string) *Output {
	return &Output{Port: Port{
		ID:       ident.New(),
		Socket:   socket,
		Label:    label,
		Multiple: true,
	}}
}
