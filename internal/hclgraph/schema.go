package hclgraph

import "github.com/hashicorp/hcl/v2"

// ControlBlock represents a `control` block inside an input. The value
// expression is kept raw and evaluated during translation so numeric and
// string defaults share one attribute.
type ControlBlock struct {
	Kind     string         `hcl:"kind,optional"`
	Value    hcl.Expression `hcl:"value,optional"`
	Readonly bool           `hcl:"readonly,optional"`
	Visible  *bool          `hcl:"visible,optional"`
}

// InputBlock represents an `input` block on a node.
type InputBlock struct {
	Key      string        `hcl:"key,label"`
	Socket   string        `hcl:"socket"`
	Label    string        `hcl:"label,optional"`
	Multiple *bool         `hcl:"multiple,optional"`
	Control  *ControlBlock `hcl:"control,block"`
}

// OutputBlock represents an `output` block on a node.
type OutputBlock struct {
	Key      string `hcl:"key,label"`
	Socket   string `hcl:"socket"`
	Label    string `hcl:"label,optional"`
	Multiple *bool  `hcl:"multiple,optional"`
}

// NodeBlock represents a `node` block from a graph file. The block label
// is the file-local name connection blocks refer to.
type NodeBlock struct {
	Name     string         `hcl:"name,label"`
	ID       string         `hcl:"id,optional"`
	Label    string         `hcl:"label,optional"`
	Selected bool           `hcl:"selected,optional"`
	Inputs   []*InputBlock  `hcl:"input,block"`
	Outputs  []*OutputBlock `hcl:"output,block"`
}

// ConnectionBlock represents a `connection` block from a graph file.
type ConnectionBlock struct {
	ID           string `hcl:"id,optional"`
	Source       string `hcl:"source"`
	SourceOutput string `hcl:"source_output"`
	Target       string `hcl:"target"`
	TargetInput  string `hcl:"target_input"`
}

// GraphConfig represents the top-level structure of a graph file.
type GraphConfig struct {
	Nodes       []*NodeBlock       `hcl:"node,block"`
	Connections []*ConnectionBlock `hcl:"connection,block"`
	Body        hcl.Body           `hcl:",remain"`
}
