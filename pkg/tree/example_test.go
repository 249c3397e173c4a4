package tree_test

import (
	"fmt"

	"github.com/lysh/anytree/pkg/tree"
)

func ExampleNew() {
	// Build a small tree: udo → marc → lian
	udo := tree.New("Udo", nil, nil)
	marc := tree.New("Marc", udo, nil)
	lian := tree.New("Lian", marc, nil)

	fmt.Println(udo)
	fmt.Println(marc)
	fmt.Println(lian)
	// Output:
	// Node("/Udo")
	// Node("/Udo/Marc")
	// Node("/Udo/Marc/Lian")
}

func ExampleNode_SetParent() {
	udo := tree.New("Udo", nil, nil)
	marc := tree.New("Marc", nil, nil)
	tree.New("Lian", marc, nil)

	// Attach marc (and its subtree) below udo.
	_ = marc.SetParent(udo)
	fmt.Println("is root:", marc.IsRoot())

	// Detach again: marc becomes a root, lian stays below it.
	_ = marc.SetParent(nil)
	fmt.Println("is root:", marc.IsRoot())
	fmt.Println("children:", len(marc.Children()))
	// Output:
	// is root: false
	// is root: true
	// children: 1
}

func ExampleNode_SetParent_loop() {
	a := tree.New("a", nil, nil)
	b := tree.New("b", a, nil)

	// Attaching a below its own descendant would create a cycle.
	err := a.SetParent(b)
	fmt.Println(err)
	// Output:
	// cannot set parent: Node("/a") is an ancestor of Node("/a/b")
}

func ExamplePreOrder() {
	root := tree.New("root", nil, nil)
	s0 := tree.New("sub0", root, nil)
	tree.New("sub0A", s0, nil)
	tree.New("sub1", root, nil)

	for n := range tree.PreOrder(root) {
		fmt.Println(n.Name())
	}
	// Output:
	// root
	// sub0
	// sub0A
	// sub1
}

func ExamplePostOrder() {
	root := tree.New("root", nil, nil)
	s0 := tree.New("sub0", root, nil)
	tree.New("sub0A", s0, nil)
	tree.New("sub1", root, nil)

	for n := range tree.PostOrder(root) {
		fmt.Println(n.Name())
	}
	// Output:
	// sub0A
	// sub0
	// sub1
	// root
}
