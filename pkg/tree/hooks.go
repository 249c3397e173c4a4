package tree

// Hooks receives lifecycle notifications when a node changes parent.
// Register an implementation with [Node.SetHooks].
//
// Hooks are pure notification slots: they cannot veto the operation by
// returning a value. A panic raised from a hook propagates to the caller
// of [Node.SetParent] as usual.
type Hooks interface {
	// PreDetach fires before the node is removed from parent's children.
	PreDetach(parent *Node)

	// PostDetach fires after the node was removed from parent's children.
	PostDetach(parent *Node)

	// PreAttach fires before the node is appended to parent's children.
	PreAttach(parent *Node)

	// PostAttach fires after the node was appended to parent's children.
	PostAttach(parent *Node)
}

// NoopHooks is a no-op implementation of [Hooks]. Embed it to implement
// only the notifications you care about.
type NoopHooks struct{}

func (NoopHooks) PreDetach(*Node)  {}
func (NoopHooks) PostDetach(*Node) {}
func (NoopHooks) PreAttach(*Node)  {}
func (NoopHooks) PostAttach(*Node) {}
