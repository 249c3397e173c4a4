// Package walk computes routes between two nodes of the same tree.
package walk

import (
	"fmt"
	"slices"

	"github.com/lysh/anytree/pkg/tree"
)

// WalkError is returned by [Walk] when the two nodes do not share a
// root, i.e. they belong to different trees.
type WalkError struct {
	Start *tree.Node
	End   *tree.Node
}

// Error implements the error interface.
func (e *WalkError) Error() string {
	return fmt.Sprintf("%s and %s are not part of the same tree", e.Start, e.End)
}

// Walk returns the route from start to end through their lowest common
// ancestor.
//
// up lists the nodes strictly above start, from start's parent up to and
// including the common ancestor; it is empty when start is the ancestor.
// down lists the nodes strictly below the common ancestor, from its
// child down to and including end; it is empty when end is the ancestor.
// Walk(x, x) returns two empty slices.
//
// Walk returns a *[WalkError] when start and end have different roots.
func Walk(start, end *tree.Node) (up, down []*tree.Node, err error) {
	s := start.Path()
	e := end.Path()
	if s[0] != e[0] {
		return nil, nil, &WalkError{Start: start, End: end}
	}

	// Longest common prefix by identity; s[0] == e[0] guarantees at
	// least one common element.
	common := 0
	for common < len(s) && common < len(e) && s[common] == e[common] {
		common++
	}
	lca := common - 1

	if start != s[lca] {
		up = slices.Clone(s[lca : len(s)-1])
		slices.Reverse(up)
	}
	if end != e[lca] {
		down = slices.Clone(e[lca+1:])
	}
	return up, down, nil
}
