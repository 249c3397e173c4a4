package tree

import "iter"

// PreOrder returns a depth-first sequence over the subtree rooted at
// node, visiting each node before its children. Children are visited in
// sibling order. The sequence is lazy and restartable; each step reads
// the children list live, so it observes mutations made while iterating.
func PreOrder(node *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		preOrder(node, yield)
	}
}

func preOrder(n *Node, yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, c := range n.children {
		if !preOrder(c, yield) {
			return false
		}
	}
	return true
}

// PostOrder returns a depth-first sequence over the subtree rooted at
// node, visiting all descendants of a node before the node itself. The
// starting node is yielded last.
func PostOrder(node *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		postOrder(node, yield)
	}
}

func postOrder(n *Node, yield func(*Node) bool) bool {
	for _, c := range n.children {
		if !postOrder(c, yield) {
			return false
		}
	}
	return yield(n)
}
