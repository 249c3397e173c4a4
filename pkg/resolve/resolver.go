// Package resolve looks tree nodes up by slash-delimited path strings.
//
// A [Resolver] maps each child to a key (the node name by default, or a
// metadata attribute) and walks path segments against that mapping.
// Paths may be relative ("sub0/sub0sub0", "..", ".") or absolute
// ("/top/sub0"). [Resolver.Glob] additionally supports the wildcards
// `*` (any run of characters) and `?` (exactly one character) inside a
// segment; wildcards never match across a `/`.
package resolve

import (
	"strings"

	"github.com/lysh/anytree/pkg/tree"
)

// Resolver resolves paths against a tree using a configurable key
// attribute. The zero value is not usable - use [New].
//
// A Resolver keeps a small cache of compiled wildcard patterns and is
// not safe for concurrent use.
type Resolver struct {
	pathattr string
	patterns *patternCache
}

// New creates a Resolver keyed on the given metadata attribute. An empty
// pathattr (or "name") keys nodes on their name.
func New(pathattr string) *Resolver {
	return &Resolver{pathattr: pathattr, patterns: newPatternCache(maxPatterns)}
}

// Get returns the node at path, starting from node.
//
// An empty path or "." resolves to the starting node, ".." to its
// parent. A path starting with "/" resolves against node's root; the
// first segment must equal the root's key. Each remaining segment must
// match exactly one child key. When several children share a key, the
// later one shadows the earlier (insertion order).
//
// Get returns a *[ResolverError] for malformed absolute paths or a ".."
// that walks above a root, and a *[ChildResolverError] naming the known
// children when a segment does not match any child.
func (r *Resolver) Get(node *tree.Node, path string) (*tree.Node, error) {
	node, parts, err := r.start(node, path)
	if err != nil {
		return nil, err
	}
	for _, part := range parts {
		switch part {
		case "..":
			parent := node.Parent()
			if parent == nil {
				return nil, aboveRootError(node)
			}
			node = parent
		case "", ".":
			// stay
		default:
			keys, byKey := r.childMap(node)
			child, ok := byKey[part]
			if !ok {
				return nil, newChildResolverError(node, part, keys)
			}
			node = child
		}
	}
	return node, nil
}

// Glob returns all nodes matching path, starting from node.
//
// Glob behaves like [Resolver.Get], but segments may contain the
// wildcards `*` and `?` and every matching child is followed. Results
// keep the children's definition order, flattened depth-first across the
// matched branches. A wildcard segment matching no child is not an
// error and resolution errors below a wildcard segment are treated as
// "no match"; a non-wildcard segment matching no child is always a
// *[ChildResolverError].
func (r *Resolver) Glob(node *tree.Node, path string) ([]*tree.Node, error) {
	node, parts, err := r.start(node, path)
	if err != nil {
		return nil, err
	}
	return r.glob(node, parts)
}

// start splits the path and, for absolute paths, positions resolution at
// the root after checking the leading segment against the root's key.
func (r *Resolver) start(node *tree.Node, path string) (*tree.Node, []string, error) {
	parts := strings.Split(path, "/")
	if !strings.HasPrefix(path, "/") {
		return node, parts, nil
	}
	root := node.Root()
	rootKey := r.key(root)
	parts = parts[1:]
	if parts[0] == "" {
		return nil, nil, &ResolverError{
			Node: root,
			msg:  "root node missing. root is '/" + rootKey + "'.",
		}
	}
	if parts[0] != rootKey {
		return nil, nil, &ResolverError{
			Node:  root,
			Child: parts[0],
			msg:   "unknown root node '/" + parts[0] + "'. root is '/" + rootKey + "'.",
		}
	}
	return root, parts[1:], nil
}

func (r *Resolver) glob(node *tree.Node, parts []string) ([]*tree.Node, error) {
	if len(parts) == 0 {
		return []*tree.Node{node}, nil
	}
	part, rest := parts[0], parts[1:]
	switch part {
	case "..":
		parent := node.Parent()
		if parent == nil {
			return nil, aboveRootError(node)
		}
		return r.glob(parent, rest)
	case "", ".":
		return r.glob(node, rest)
	}

	wild := isWildcard(part)
	keys, byKey := r.childMap(node)
	var matches []*tree.Node
	for _, key := range keys {
		if !r.patterns.match(key, part) {
			continue
		}
		if len(rest) == 0 {
			matches = append(matches, byKey[key])
			continue
		}
		sub, err := r.glob(byKey[key], rest)
		if err != nil {
			// Below a wildcard, a failing branch is just a non-match.
			if wild && isResolverError(err) {
				continue
			}
			return nil, err
		}
		matches = append(matches, sub...)
	}
	if len(matches) == 0 && !wild {
		return nil, newChildResolverError(node, part, keys)
	}
	return matches, nil
}

// childMap builds the ordered key-to-child mapping for node. On key
// collisions the later child shadows the earlier one, but the key keeps
// its first position.
func (r *Resolver) childMap(node *tree.Node) ([]string, map[string]*tree.Node) {
	children := node.Children()
	keys := make([]string, 0, len(children))
	byKey := make(map[string]*tree.Node, len(children))
	for _, child := range children {
		k := r.key(child)
		if _, seen := byKey[k]; !seen {
			keys = append(keys, k)
		}
		byKey[k] = child
	}
	return keys, byKey
}

// key returns the path key of a node under this resolver's pathattr.
// Metadata values that are not strings are not matched.
func (r *Resolver) key(node *tree.Node) string {
	if r.pathattr == "" || r.pathattr == "name" {
		return node.Name()
	}
	s, _ := node.Meta()[r.pathattr].(string)
	return s
}

func isWildcard(part string) bool {
	return strings.ContainsAny(part, "*?")
}
