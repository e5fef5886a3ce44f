package rendertree

// Tree owns a render tree: one root node and its descendants.
type Tree struct {
	root *RootNode
}

// New creates a tree holding a single fresh root node.
func New() *Tree {
	return &Tree{root: &RootNode{Ready: true}}
}

// Root returns the tree's root node, or nil after Release.
func (t *Tree) Root() *RootNode {
	return t.root
}

// Append attaches child under parent. Both must be non-nil and distinct;
// the child must not already have a parent and must not be an ancestor of
// the parent (that would form a cycle).
func (t *Tree) Append(parent, child Node) bool {
	if parent == nil || child == nil || parent == child {
		return false
	}
	if child.Parent() != nil {
		return false
	}
	for n := parent.Parent(); n != nil; n = n.Parent() {
		if n == child {
			return false
		}
	}
	parent.appendChild(child)
	child.setParent(parent)
	return true
}

// AppendText creates a text node under parent and returns it.
func (t *Tree) AppendText(parent Node, value, font string, fontSize float64, bold bool) *TextNode {
	text := NewTextNode(value, font, fontSize, bold)
	if !t.Append(parent, text) {
		return nil
	}
	return text
}

// Count returns the number of nodes in the tree, root included.
func (t *Tree) Count() int {
	if t.root == nil {
		return 0
	}
	count := 0
	it := t.Walk()
	for it.Next() != nil {
		count++
	}
	return count
}

// Release disposes every node's payload and drops the root. The tree is
// empty afterward; releasing an already-released tree is a no-op.
func (t *Tree) Release() {
	if t.root == nil {
		return
	}
	it := t.Walk()
	for node := it.Next(); node != nil; node = it.Next() {
		node.DisposeData()
	}
	t.root = nil
}
