package model

import "github.com/vk/flowgridgo/internal/ident"

// Control is a unit of inline-editable state attached to an input or to a
// node directly. Concrete controls embed BaseControl.
type Control interface {
	ControlID() string
}

// BaseControl carries the identity and presentation order shared by all
// control kinds.
type BaseControl struct {
	ID    string `json:"id"`
	Index int    `json:"index,omitempty"`
}

// NewBaseControl creates the shared part of a control.
func NewBaseControl() BaseControl {
	return BaseControl{ID: ident.New()}
}

// ControlID returns the control's unique identifier.
func (c BaseControl) ControlID() string {
	return c.ID
}

// ValueControl is a control holding a single typed value, such as a text
// or number field. OnChange, when set, is invoked on every assignment,
// including assignments of an unchanged value.
type ValueControl[T any] struct {
	BaseControl
	Value    T       `json:"value"`
	Readonly bool    `json:"readonly,omitempty"`
	OnChange func(T) `json:"-"`
}

// NewValueControl creates a control with an initial value. The change
// callback may be nil.
func NewValueControl[T any](initial T, readonly bool, onChange func(T)) *ValueControl[T] {
	return &ValueControl[T]{
		BaseControl: NewBaseControl(),
		Value:       initial,
		Readonly:    readonly,
		OnChange:    onChange,
	}
}

// SetValue assigns the control's value and fires the change callback.
// Readonly is a presentation hint for widgets; programmatic assignment is
// always allowed.
func (c *ValueControl[T]) SetValue(v T) {
	c.Value = v
	if c.OnChange != nil {
		c.OnChange(v)
	}
}
