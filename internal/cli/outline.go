package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/lysh/anytree/pkg/tree"
)

// outline is the TOML manifest format for tree definitions:
//
//	[[nodes]]
//	name = "root"
//
//	[[nodes]]
//	name = "child"
//	parent = "root"
//
//	[nodes.meta]
//	version = "1.0"
//
// Node names must be unique within a manifest so that parent references
// are unambiguous; the tree library itself has no such restriction.
type outline struct {
	Nodes []outlineNode `toml:"nodes"`
}

type outlineNode struct {
	Name   string         `toml:"name"`
	Parent string         `toml:"parent"`
	Meta   map[string]any `toml:"meta"`
}

// loadOutline reads a TOML manifest from path and builds the tree.
// Nodes are created first and linked afterwards, so parents may be
// declared after their children. Exactly one root is required.
func loadOutline(path string) (*tree.Node, error) {
	var o outline
	if _, err := toml.DecodeFile(path, &o); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return buildOutline(o)
}

// parseOutline decodes a manifest from TOML source and builds the tree.
func parseOutline(src string) (*tree.Node, error) {
	var o outline
	if _, err := toml.Decode(src, &o); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return buildOutline(o)
}

func buildOutline(o outline) (*tree.Node, error) {
	if len(o.Nodes) == 0 {
		return nil, errors.New("manifest defines no nodes")
	}

	byName := make(map[string]*tree.Node, len(o.Nodes))
	for _, n := range o.Nodes {
		if n.Name == "" {
			return nil, errors.New("node without a name")
		}
		if _, exists := byName[n.Name]; exists {
			return nil, fmt.Errorf("duplicate node name %q", n.Name)
		}
		byName[n.Name] = tree.New(n.Name, nil, tree.Metadata(n.Meta))
	}

	var root *tree.Node
	for _, n := range o.Nodes {
		if n.Parent == "" {
			if root != nil {
				return nil, fmt.Errorf("multiple roots: %q and %q", root.Name(), n.Name)
			}
			root = byName[n.Name]
			continue
		}
		parent, ok := byName[n.Parent]
		if !ok {
			return nil, fmt.Errorf("node %q references unknown parent %q", n.Name, n.Parent)
		}
		if err := byName[n.Name].SetParent(parent); err != nil {
			return nil, fmt.Errorf("node %q: %w", n.Name, err)
		}
	}
	if root == nil {
		return nil, errors.New("manifest has no root node (parent cycles?)")
	}
	return root, nil
}
