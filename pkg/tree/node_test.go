package tree_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/lysh/anytree/pkg/tree"
)

// family builds the tree used throughout the tests:
//
//	f
//	├── b
//	│   ├── a
//	│   └── d
//	│       ├── c
//	│       └── e
//	└── g
//	    └── i
//	        └── h
type family struct {
	f, b, a, d, c, e, g, i, h *tree.Node
}

func newFamily() family {
	f := tree.New("f", nil, nil)
	b := tree.New("b", f, nil)
	a := tree.New("a", b, nil)
	d := tree.New("d", b, nil)
	c := tree.New("c", d, nil)
	e := tree.New("e", d, nil)
	g := tree.New("g", f, nil)
	i := tree.New("i", g, nil)
	h := tree.New("h", i, nil)
	return family{f, b, a, d, c, e, g, i, h}
}

func names(nodes []*tree.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name()
	}
	return out
}

func TestAttach(t *testing.T) {
	a := tree.New("a", nil, nil)
	b := tree.New("b", nil, nil)

	if err := b.SetParent(a); err != nil {
		t.Fatalf("SetParent() error = %v", err)
	}
	if b.Parent() != a {
		t.Errorf("Parent() = %v, want %v", b.Parent(), a)
	}
	if !slices.Contains(a.Children(), b) {
		t.Errorf("a.Children() = %v, missing b", a.Children())
	}
	if !slices.Contains(b.Ancestors(), a) {
		t.Errorf("b.Ancestors() = %v, missing a", b.Ancestors())
	}
}

func TestDetach(t *testing.T) {
	a := tree.New("a", nil, nil)
	b := tree.New("b", a, nil)
	c := tree.New("c", b, nil)

	if err := b.SetParent(nil); err != nil {
		t.Fatalf("SetParent(nil) error = %v", err)
	}
	if !b.IsRoot() {
		t.Error("b.IsRoot() = false after detach")
	}
	if slices.Contains(a.Children(), b) {
		t.Errorf("a.Children() = %v, still contains b", a.Children())
	}
	// The subtree stays intact below the detached node.
	if c.Parent() != b || c.Root() != b {
		t.Errorf("c.Parent() = %v, c.Root() = %v, want b for both", c.Parent(), c.Root())
	}
}

func TestSetParentSelfLoop(t *testing.T) {
	a := tree.New("a", nil, nil)

	err := a.SetParent(a)
	var loopErr *tree.LoopError
	if !errors.As(err, &loopErr) {
		t.Fatalf("SetParent(self) error = %v, want *LoopError", err)
	}
	if !a.IsRoot() || len(a.Children()) != 0 {
		t.Error("tree changed by failed self-parent assignment")
	}
}

func TestSetParentDescendantLoop(t *testing.T) {
	fam := newFamily()

	err := fam.b.SetParent(fam.e)
	var loopErr *tree.LoopError
	if !errors.As(err, &loopErr) {
		t.Fatalf("SetParent(descendant) error = %v, want *LoopError", err)
	}
	// The failed assignment must leave the tree untouched: b is still
	// attached below f and e still has no children.
	if fam.b.Parent() != fam.f {
		t.Errorf("b.Parent() = %v, want f", fam.b.Parent())
	}
	if !slices.Contains(fam.f.Children(), fam.b) {
		t.Error("b missing from f.Children() after failed assignment")
	}
	if len(fam.e.Children()) != 0 {
		t.Errorf("e.Children() = %v, want none", fam.e.Children())
	}
}

func TestSetParentSameParentIsNoop(t *testing.T) {
	a := tree.New("a", nil, nil)
	b := tree.New("b", a, nil)

	rec := &recordingHooks{}
	b.SetHooks(rec)
	if err := b.SetParent(a); err != nil {
		t.Fatalf("SetParent(same) error = %v", err)
	}
	if len(rec.events) != 0 {
		t.Errorf("hooks fired on no-op reassignment: %v", rec.events)
	}
	if got := names(a.Children()); !slices.Equal(got, []string{"b"}) {
		t.Errorf("a.Children() = %v, want [b]", got)
	}
}

// recordingHooks records the hook invocations in order.
type recordingHooks struct {
	events []string
}

func (r *recordingHooks) PreDetach(p *tree.Node)  { r.events = append(r.events, "pre_detach "+p.Name()) }
func (r *recordingHooks) PostDetach(p *tree.Node) { r.events = append(r.events, "post_detach "+p.Name()) }
func (r *recordingHooks) PreAttach(p *tree.Node)  { r.events = append(r.events, "pre_attach "+p.Name()) }
func (r *recordingHooks) PostAttach(p *tree.Node) { r.events = append(r.events, "post_attach "+p.Name()) }

func TestHookOrder(t *testing.T) {
	a := tree.New("a", nil, nil)
	b := tree.New("b", nil, nil)
	c := tree.New("c", nil, nil)
	rec := &recordingHooks{}
	c.SetHooks(rec)

	if err := c.SetParent(a); err != nil {
		t.Fatalf("attach: %v", err)
	}
	want := []string{"pre_attach a", "post_attach a"}
	if !slices.Equal(rec.events, want) {
		t.Fatalf("attach events = %v, want %v", rec.events, want)
	}

	rec.events = nil
	if err := c.SetParent(b); err != nil {
		t.Fatalf("reparent: %v", err)
	}
	want = []string{"pre_detach a", "post_detach a", "pre_attach b", "post_attach b"}
	if !slices.Equal(rec.events, want) {
		t.Fatalf("reparent events = %v, want %v", rec.events, want)
	}

	rec.events = nil
	if err := c.SetParent(nil); err != nil {
		t.Fatalf("detach: %v", err)
	}
	want = []string{"pre_detach b", "post_detach b"}
	if !slices.Equal(rec.events, want) {
		t.Fatalf("detach events = %v, want %v", rec.events, want)
	}
}

func TestDerivedProperties(t *testing.T) {
	fam := newFamily()

	tests := []struct {
		name   string
		node   *tree.Node
		path   []string
		depth  int
		height int
		isLeaf bool
		isRoot bool
	}{
		{"root", fam.f, []string{"f"}, 0, 3, false, true},
		{"inner", fam.d, []string{"f", "b", "d"}, 2, 1, false, false},
		{"leaf", fam.h, []string{"f", "g", "i", "h"}, 3, 0, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := names(tt.node.Path()); !slices.Equal(got, tt.path) {
				t.Errorf("Path() = %v, want %v", got, tt.path)
			}
			if got := tt.node.Depth(); got != tt.depth {
				t.Errorf("Depth() = %d, want %d", got, tt.depth)
			}
			if got := tt.node.Height(); got != tt.height {
				t.Errorf("Height() = %d, want %d", got, tt.height)
			}
			if got := tt.node.IsLeaf(); got != tt.isLeaf {
				t.Errorf("IsLeaf() = %v, want %v", got, tt.isLeaf)
			}
			if got := tt.node.IsRoot(); got != tt.isRoot {
				t.Errorf("IsRoot() = %v, want %v", got, tt.isRoot)
			}
		})
	}

	if got := names(fam.d.Ancestors()); !slices.Equal(got, []string{"f", "b"}) {
		t.Errorf("d.Ancestors() = %v, want [f b]", got)
	}
	if got := names(fam.b.Descendants()); !slices.Equal(got, []string{"a", "d", "c", "e"}) {
		t.Errorf("b.Descendants() = %v, want [a d c e]", got)
	}
	if got := names(fam.a.Siblings()); !slices.Equal(got, []string{"d"}) {
		t.Errorf("a.Siblings() = %v, want [d]", got)
	}
	if fam.h.Root() != fam.f {
		t.Errorf("h.Root() = %v, want f", fam.h.Root())
	}
}

func TestDerivedPropertiesIdempotent(t *testing.T) {
	fam := newFamily()

	if !slices.Equal(names(fam.e.Path()), names(fam.e.Path())) {
		t.Error("Path() not idempotent")
	}
	if !slices.Equal(names(fam.b.Descendants()), names(fam.b.Descendants())) {
		t.Error("Descendants() not idempotent")
	}
	if fam.f.Height() != fam.f.Height() {
		t.Error("Height() not idempotent")
	}
}

func TestMetaNeverNil(t *testing.T) {
	n := tree.New("n", nil, nil)
	if n.Meta() == nil {
		t.Fatal("Meta() = nil, want empty map")
	}
	n.Meta()["answer"] = 42
	if n.Meta()["answer"] != 42 {
		t.Error("Meta() does not retain values")
	}
}

func TestNodeString(t *testing.T) {
	root := tree.New("root", nil, nil)
	sub := tree.New("sub0", root, tree.Metadata{"foo": 4, "bar": 109})

	if got, want := root.String(), `Node("/root")`; got != want {
		t.Errorf("root.String() = %s, want %s", got, want)
	}
	if got, want := sub.String(), `Node("/root/sub0", bar=109, foo=4)`; got != want {
		t.Errorf("sub.String() = %s, want %s", got, want)
	}
}
