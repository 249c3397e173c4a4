package tree

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// LoopError is returned by [Node.SetParent] when the assignment would
// create a cycle: either the node is set as its own parent, or the new
// parent is a descendant of the node. The check runs before any link is
// touched, so a failed assignment leaves the tree unchanged.
type LoopError struct {
	Node   *Node // node whose parent was being set
	Parent *Node // rejected parent value
}

// Error implements the error interface.
func (e *LoopError) Error() string {
	if e.Node == e.Parent {
		return fmt.Sprintf("cannot set parent: %s cannot be parent of itself", e.Node)
	}
	return fmt.Sprintf("cannot set parent: %s is an ancestor of %s", e.Node, e.Parent)
}

// Metadata stores arbitrary key-value pairs attached to a node. The core
// never interprets it; it is a payload slot for callers. Metadata maps are
// never nil after [New] - an empty map is initialized when needed.
type Metadata map[string]any

// Node is a tree node with a name, an opaque metadata bag, a non-owning
// parent back-reference and an owned, ordered list of children. Insertion
// order of children is the sibling order and is significant for traversal
// and rendering.
//
// The zero value is not usable - use [New] to create nodes. Node is not
// safe for concurrent use without external synchronization.
type Node struct {
	name     string
	meta     Metadata
	parent   *Node
	children []*Node
	hooks    Hooks
}

// New creates a node with the given name and metadata, attached below
// parent. A nil parent creates a standalone root. A nil meta is replaced
// by an empty map. A freshly created node can never form a cycle, so New
// cannot fail.
func New(name string, parent *Node, meta Metadata) *Node {
	if meta == nil {
		meta = Metadata{}
	}
	n := &Node{name: name, meta: meta}
	if parent != nil {
		// Attaching a brand-new leaf cannot loop.
		n.attach(parent)
		n.parent = parent
	}
	return n
}

// Name returns the node's name.
func (n *Node) Name() string { return n.name }

// SetName changes the node's name. Renaming does not touch the structure,
// but it does change how path resolvers keyed on the name see the node.
func (n *Node) SetName(name string) { n.name = name }

// Meta returns the node's metadata map. The returned map is never nil and
// can be modified freely.
func (n *Node) Meta() Metadata { return n.meta }

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// SetParent detaches the node from its current parent (if any) and
// attaches it below parent. Passing nil makes the node a root; its
// descendants stay below it. Setting the current parent again is a no-op
// and fires no hooks.
//
// Returns a *[LoopError] if parent is the node itself or one of its
// descendants. The cycle check happens before any mutation, so on error
// the tree is left exactly as it was. The check walks parent's path to
// the root, costing O(depth).
//
// Hook order on a parent change: PreDetach, unlink from the old parent,
// PostDetach, PreAttach, link below the new parent, PostAttach.
func (n *Node) SetParent(parent *Node) error {
	old := n.parent
	if parent == old {
		return nil
	}
	if parent != nil {
		for a := parent; a != nil; a = a.parent {
			if a == n {
				return &LoopError{Node: n, Parent: parent}
			}
		}
	}
	if old != nil {
		n.detach(old)
	}
	if parent != nil {
		n.attach(parent)
	}
	n.parent = parent
	return nil
}

// detach unlinks n from parent's children, firing the detach hooks.
// The node must be present; anything else means the bidirectional
// parent/children invariant is already broken.
func (n *Node) detach(parent *Node) {
	if n.hooks != nil {
		n.hooks.PreDetach(parent)
	}
	i := slices.Index(parent.children, n)
	if i < 0 {
		panic("tree: internal data corrupt: node missing from its parent's children")
	}
	parent.children = slices.Delete(parent.children, i, i+1)
	if n.hooks != nil {
		n.hooks.PostDetach(parent)
	}
}

// attach appends n to parent's children, firing the attach hooks.
func (n *Node) attach(parent *Node) {
	if n.hooks != nil {
		n.hooks.PreAttach(parent)
	}
	if slices.Contains(parent.children, n) {
		panic("tree: internal data corrupt: node already present in new parent's children")
	}
	parent.children = append(parent.children, n)
	if n.hooks != nil {
		n.hooks.PostAttach(parent)
	}
}

// Children returns the node's children in sibling order. The returned
// slice is a copy; the children list itself is owned by the node and only
// changes through [Node.SetParent] on the children.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// Path returns the nodes from the root down to this node, inclusive.
func (n *Node) Path() []*Node {
	var path []*Node
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}

// Ancestors returns the node's path without the node itself: all parents
// up to and including the root, ordered root first. Empty for a root.
func (n *Node) Ancestors() []*Node {
	path := n.Path()
	return path[:len(path)-1]
}

// Descendants returns all nodes below this one in pre-order, excluding
// the node itself.
func (n *Node) Descendants() []*Node {
	var out []*Node
	for d := range PreOrder(n) {
		if d != n {
			out = append(out, d)
		}
	}
	return out
}

// Root returns the root of the tree this node belongs to. A root returns
// itself.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// Siblings returns the other children of the node's parent, in sibling
// order. Empty for a root or an only child.
func (n *Node) Siblings() []*Node {
	if n.parent == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.parent.children {
		if c != n {
			out = append(out, c)
		}
	}
	return out
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// Height returns the number of edges on the longest downward path from
// this node to a leaf. A leaf has height 0.
func (n *Node) Height() int {
	h := 0
	for _, c := range n.children {
		if ch := c.Height() + 1; ch > h {
			h = ch
		}
	}
	return h
}

// Depth returns the number of edges between this node and its root.
// A root has depth 0.
func (n *Node) Depth() int {
	d := 0
	for cur := n.parent; cur != nil; cur = cur.parent {
		d++
	}
	return d
}

// SetHooks registers a lifecycle observer for this node. Passing nil
// removes the observer. Hooks fire only for operations on this node, not
// for its relatives.
func (n *Node) SetHooks(h Hooks) { n.hooks = h }

// String renders the node as its absolute path plus any metadata with
// keys in sorted order, e.g. `Node("/root/sub0", bar=109, foo=4)`.
func (n *Node) String() string {
	names := make([]string, 0, 4)
	for _, p := range n.Path() {
		names = append(names, p.name)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Node(%q", "/"+strings.Join(names, "/"))
	for _, k := range slices.Sorted(maps.Keys(n.meta)) {
		fmt.Fprintf(&b, ", %s=%v", k, n.meta[k])
	}
	b.WriteString(")")
	return b.String()
}
