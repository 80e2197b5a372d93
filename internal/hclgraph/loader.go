package hclgraph

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/flowgridgo/internal/ctxlog"
	"github.com/vk/flowgridgo/internal/model"
)

// Loader translates HCL graph descriptions into import snapshots.
type Loader struct {
	// sockets dedupes socket descriptors by name, so every port sharing a
	// type name shares one Socket value.
	sockets map[string]*model.Socket
}

// NewLoader creates a graph loader.
func NewLoader() *Loader {
	return &Loader{sockets: make(map[string]*model.Socket)}
}

// Load reads every .hcl file under the given paths (files or directories)
// and translates their blocks into a single snapshot. Nodes keep file
// order; connections follow all nodes, also in file order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*model.Snapshot, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Graph loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered graph files.", "count", len(files))

	parser := hclparse.NewParser()
	snap := &model.Snapshot{}
	byName := make(map[string]*model.Node)
	var pending []*ConnectionBlock

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse graph file %s: %w", file, diags)
		}

		var root GraphConfig
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode graph file %s: %w", file, diags)
		}

		for _, blk := range root.Nodes {
			if _, taken := byName[blk.Name]; taken {
				return nil, fmt.Errorf("graph file %s: node name %q declared twice", file, blk.Name)
			}
			n, err := l.translateNode(blk)
			if err != nil {
				return nil, fmt.Errorf("graph file %s: %w", file, err)
			}
			byName[blk.Name] = n
			snap.Nodes = append(snap.Nodes, n)
		}
		pending = append(pending, root.Connections...)
	}

	// Connections resolve after every file is read, so a connection block
	// may reference a node declared in a later file.
	for _, blk := range pending {
		c, err := l.translateConnection(blk, byName)
		if err != nil {
			return nil, err
		}
		snap.Connections = append(snap.Connections, c)
	}

	logger.Debug("Graph loading complete.", "nodes", len(snap.Nodes), "connections", len(snap.Connections))
	return snap, nil
}

// translateNode builds a model node from its block, including ports and
// inline controls.
func (l *Loader) translateNode(blk *NodeBlock) (*model.Node, error) {
	label := blk.Label
	if label == "" {
		label = blk.Name
	}
	n := model.NewNode(label)
	if blk.ID != "" {
		n.ID = blk.ID
	}
	n.Selected = blk.Selected

	for _, ob := range blk.Outputs {
		out := model.NewOutput(l.socket(ob.Socket), ob.Label)
		if ob.Multiple != nil {
			out.Multiple = *ob.Multiple
		}
		if err := n.AddOutput(ob.Key, out); err != nil {
			return nil, err
		}
	}
	for _, ib := range blk.Inputs {
		in := model.NewInput(l.socket(ib.Socket), ib.Label)
		if ib.Multiple != nil {
			in.Multiple = *ib.Multiple
		}
		if ib.Control != nil {
			ctl, err := translateControl(ib.Control)
			if err != nil {
				return nil, fmt.Errorf("node %q input %q: %w", blk.Name, ib.Key, err)
			}
			if err := in.AddControl(ctl); err != nil {
				return nil, err
			}
			if ib.Control.Visible != nil {
				in.ShowControl = *ib.Control.Visible
			}
		}
		if err := n.AddInput(ib.Key, in); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// translateControl evaluates the value expression and builds a typed
// control. The kind defaults to whatever the value's cty type suggests.
func translateControl(blk *ControlBlock) (model.Control, error) {
	val := cty.NullVal(cty.DynamicPseudoType)
	if blk.Value != nil {
		v, diags := blk.Value.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("control value: %w", diags)
		}
		val = v
	}

	kind := blk.Kind
	if kind == "" {
		if !val.IsNull() && val.Type() == cty.Number {
			kind = "number"
		} else {
			kind = "text"
		}
	}

	switch kind {
	case "text":
		var s string
		if !val.IsNull() {
			converted, err := convert.Convert(val, cty.String)
			if err != nil {
				return nil, fmt.Errorf("control value is not text-convertible: %w", err)
			}
			if err := gocty.FromCtyValue(converted, &s); err != nil {
				return nil, err
			}
		}
		return model.NewValueControl(s, blk.Readonly, nil), nil
	case "number":
		var f float64
		if !val.IsNull() {
			converted, err := convert.Convert(val, cty.Number)
			if err != nil {
				return nil, fmt.Errorf("control value is not a number: %w", err)
			}
			if err := gocty.FromCtyValue(converted, &f); err != nil {
				return nil, err
			}
		}
		return model.NewValueControl(f, blk.Readonly, nil), nil
	default:
		return nil, fmt.Errorf("unknown control kind %q", kind)
	}
}

// translateConnection resolves a connection block's node names and
// delegates port validation to the connection constructor.
func (l *Loader) translateConnection(blk *ConnectionBlock, byName map[string]*model.Node) (*model.Connection, error) {
	source, ok := byName[blk.Source]
	if !ok {
		return nil, fmt.Errorf("connection references unknown node %q", blk.Source)
	}
	target, ok := byName[blk.Target]
	if !ok {
		return nil, fmt.Errorf("connection references unknown node %q", blk.Target)
	}
	c, err := model.NewConnection(source, blk.SourceOutput, target, blk.TargetInput)
	if err != nil {
		return nil, err
	}
	if blk.ID != "" {
		c.ID = blk.ID
	}
	return c, nil
}

// socket returns the shared socket descriptor for a type name.
func (l *Loader) socket(name string) *model.Socket {
	if s, ok := l.sockets[name]; ok {
		return s
	}
	s := model.NewSocket(name)
	l.sockets[name] = s
	return s
}

// findAllHCLFiles walks all given paths and returns a flat list of the
// .hcl files found.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			if _, wasSeen := seen[path]; !wasSeen {
				allFiles = append(allFiles, path)
				seen[path] = struct{}{}
			}
			continue
		}

		err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && filepath.Ext(p) == ".hcl" {
				if _, wasSeen := seen[p]; !wasSeen {
					allFiles = append(allFiles, p)
					seen[p] = struct{}{}
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return allFiles, nil
}
