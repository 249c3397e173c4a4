// Package render produces textual views of trees.
//
// A [Tree] walks a tree depth-first and yields one [Row] per node. The
// row's Pre prefix encodes, for every ancestor level, whether that level
// still has siblings to render; Fill is the matching prefix for
// continuation lines of multiline node payloads. Four built-in glyph
// sets are provided ([ASCIIStyle], [ContStyle], [ContRoundStyle],
// [DoubleStyle]).
//
//	for row := range render.New(root, render.Options{}).All() {
//	    fmt.Printf("%s%s\n", row.Pre, row.Node.Name())
//	}
//
// The dot subpackage renders trees to Graphviz DOT and SVG instead.
package render

import (
	"iter"
	"slices"
	"strings"

	"github.com/lysh/anytree/pkg/tree"
)

// Row is one line of a tree rendering.
type Row struct {
	Pre  string     // prefix for the node's own line
	Fill string     // prefix for continuation lines of multiline payloads
	Node *tree.Node // the rendered node
}

// ChildIter reorders the children rendered at one level. It receives a
// copy of the children in declaration order and returns the order to
// render; implementations may reorder in place.
type ChildIter func(children []*tree.Node) []*tree.Node

// Reversed is a [ChildIter] rendering children in reverse declaration
// order.
func Reversed(children []*tree.Node) []*tree.Node {
	slices.Reverse(children)
	return children
}

// SortedBy returns a [ChildIter] ordering children with the given
// comparison function, as used by [slices.SortFunc].
func SortedBy(cmp func(a, b *tree.Node) int) ChildIter {
	return func(children []*tree.Node) []*tree.Node {
		slices.SortFunc(children, cmp)
		return children
	}
}

// Options configures tree rendering.
type Options struct {
	// Style selects the glyph set. The zero value means [ContStyle].
	Style Style

	// ChildIter orders the children at each level. Nil keeps the
	// declaration order.
	ChildIter ChildIter
}

// Tree renders the tree below a root node as a sequence of rows.
// Create one with [New] and iterate with [Tree.All].
type Tree struct {
	root  *tree.Node
	style Style
	order ChildIter
}

// New creates a renderer for the tree rooted at root. A zero
// Options.Style selects [ContStyle]. New panics if a custom style's
// glyph strings differ in rune length; prefixes would not line up.
func New(root *tree.Node, opts Options) *Tree {
	style := opts.Style
	if style == (Style{}) {
		style = ContStyle
	}
	if !style.valid() {
		panic("render: style glyphs must have equal length")
	}
	return &Tree{root: root, style: style, order: opts.ChildIter}
}

// All returns the rows of the rendering in depth-first order, root
// first. The sequence is lazy and restartable.
func (t *Tree) All() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		t.rows(t.root, nil, yield)
	}
}

// rows emits the row for node and recurses into its children.
// continues records, per ancestor level, whether siblings follow.
func (t *Tree) rows(node *tree.Node, continues []bool, yield func(Row) bool) bool {
	if !yield(t.row(node, continues)) {
		return false
	}
	children := node.Children()
	if t.order != nil {
		children = t.order(children)
	}
	for i, child := range children {
		if !t.rows(child, append(continues, i != len(children)-1), yield) {
			return false
		}
	}
	return true
}

func (t *Tree) row(node *tree.Node, continues []bool) Row {
	if len(continues) == 0 {
		return Row{Node: node}
	}
	var pre, fill strings.Builder
	for _, cont := range continues[:len(continues)-1] {
		pre.WriteString(t.glyph(cont))
	}
	fill.WriteString(pre.String())
	if continues[len(continues)-1] {
		pre.WriteString(t.style.Cont)
	} else {
		pre.WriteString(t.style.End)
	}
	fill.WriteString(t.glyph(continues[len(continues)-1]))
	return Row{Pre: pre.String(), Fill: fill.String(), Node: node}
}

func (t *Tree) glyph(cont bool) string {
	if cont {
		return t.style.Vertical
	}
	return t.style.Empty()
}

// String renders the whole tree, one node per line, each line being the
// row prefix followed by the node's String form.
func (t *Tree) String() string {
	var lines []string
	for row := range t.All() {
		lines = append(lines, row.Pre+row.Node.String())
	}
	return strings.Join(lines, "\n")
}
