// Package dot renders trees to Graphviz DOT and SVG.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/lysh/anytree/pkg/tree"
)

// Options configures DOT rendering.
type Options struct {
	// ShowMeta includes metadata key-value pairs in node labels.
	// When false, only the node name is shown.
	ShowMeta bool
}

// ToDOT converts the tree below root to Graphviz DOT format. Node names
// may repeat within a tree, so DOT identifiers are assigned in pre-order
// ("n0", "n1", ...); labels carry the node name (plus metadata with
// Options.ShowMeta) and each node's tooltip is its absolute path. The
// resulting DOT string can be rendered with [RenderSVG].
func ToDOT(root *tree.Node, opts Options) string {
	ids := make(map[*tree.Node]string)
	for n := range tree.PreOrder(root) {
		ids[n] = fmt.Sprintf("n%d", len(ids))
	}

	var buf bytes.Buffer
	buf.WriteString("digraph tree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=rounded, fontsize=12];\n")
	buf.WriteString("\n")

	for n := range tree.PreOrder(root) {
		fmt.Fprintf(&buf, "  %s [label=%q, tooltip=%q];\n", ids[n], label(n, opts), pathOf(n))
	}

	buf.WriteString("\n")
	for n := range tree.PreOrder(root) {
		if n != root {
			fmt.Fprintf(&buf, "  %s -> %s;\n", ids[n.Parent()], ids[n])
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

func pathOf(n *tree.Node) string {
	names := make([]string, 0, 4)
	for _, p := range n.Path() {
		names = append(names, p.Name())
	}
	return "/" + strings.Join(names, "/")
}

func label(n *tree.Node, opts Options) string {
	if !opts.ShowMeta || len(n.Meta()) == 0 {
		return n.Name()
	}
	parts := make([]string, 0, len(n.Meta()))
	for _, k := range slices.Sorted(maps.Keys(n.Meta())) {
		parts = append(parts, fmt.Sprintf("%s: %v", k, n.Meta()[k]))
	}
	return n.Name() + "\n" + strings.Join(parts, "\n")
}
