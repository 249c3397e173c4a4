// Package tree provides a general-purpose in-memory tree data structure.
//
// # Overview
//
// A [Node] holds a name, an arbitrary metadata bag, a back-reference to its
// parent and an ordered list of children. The parent link is the only way
// structure changes: [Node.SetParent] detaches a node from its old parent
// and attaches it to the new one, firing the lifecycle hooks and rejecting
// assignments that would create a cycle.
//
// # Basic Usage
//
// Create nodes with [New], passing the parent (or nil for a root):
//
//	udo := tree.New("Udo", nil, nil)
//	marc := tree.New("Marc", udo, nil)
//	lian := tree.New("Lian", marc, nil)
//
// Reparent or detach by setting the parent:
//
//	marc.SetParent(nil) // marc becomes a new root, lian stays below it
//
// Derived properties ([Node.Path], [Node.Descendants], [Node.Root],
// [Node.Height], ...) are computed on demand from the parent and children
// links, so they always reflect the current structure.
//
// # Traversal
//
// [PreOrder] and [PostOrder] return lazy, restartable sequences over a
// subtree:
//
//	for n := range tree.PreOrder(root) {
//	    fmt.Println(n.Name())
//	}
//
// # Lifecycle Hooks
//
// Implement the [Hooks] interface (or embed [NoopHooks] and override the
// methods you care about) and register it with [Node.SetHooks] to observe
// attach and detach operations.
//
// # Concurrency
//
// Nodes are not safe for concurrent use. Callers must serialize access if
// multiple goroutines read or mutate the same tree.
//
// # Related Packages
//
// The [resolve] package looks nodes up by slash-delimited paths, [walk]
// computes routes between two nodes, and [render] produces textual and
// Graphviz views of a tree.
//
// [resolve]: github.com/lysh/anytree/pkg/resolve
// [walk]: github.com/lysh/anytree/pkg/walk
// [render]: github.com/lysh/anytree/pkg/render
package tree
