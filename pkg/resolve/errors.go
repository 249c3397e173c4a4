package resolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lysh/anytree/pkg/tree"
)

// ResolverError reports a path resolution failure without a specific
// missing child: a malformed absolute path, or a ".." walking above a
// root. [ChildResolverError] specializes it for missing children.
type ResolverError struct {
	Node  *tree.Node // node at which resolution stopped
	Child string     // offending path segment, if any
	msg   string
}

// Error implements the error interface.
func (e *ResolverError) Error() string { return e.msg }

// ChildResolverError reports a path segment that matched none of a
// node's children. Its message enumerates the known child keys in
// definition order.
type ChildResolverError struct {
	ResolverError
	Children []string // available child keys, in definition order
}

// Unwrap exposes the embedded [ResolverError] so that
// errors.As(err, &resolverError) matches both error kinds.
func (e *ChildResolverError) Unwrap() error { return &e.ResolverError }

func newChildResolverError(node *tree.Node, child string, children []string) *ChildResolverError {
	quoted := make([]string, len(children))
	for i, c := range children {
		quoted[i] = "'" + c + "'"
	}
	return &ChildResolverError{
		ResolverError: ResolverError{
			Node:  node,
			Child: child,
			msg: fmt.Sprintf("%s has no child %s. Children are: %s.",
				node, child, strings.Join(quoted, ", ")),
		},
		Children: children,
	}
}

// aboveRootError rejects a ".." segment applied to a root node.
func aboveRootError(node *tree.Node) *ResolverError {
	return &ResolverError{
		Node:  node,
		Child: "..",
		msg:   fmt.Sprintf("%s is a root node. Cannot resolve '..' above it.", node),
	}
}

// isResolverError reports whether err is a *ResolverError or
// *ChildResolverError.
func isResolverError(err error) bool {
	var rerr *ResolverError
	return errors.As(err, &rerr)
}
