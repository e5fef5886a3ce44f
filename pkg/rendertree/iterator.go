package rendertree

// Iterator yields the nodes of a tree in document order (pre-order, depth
// first). The zero iterator is exhausted.
type Iterator struct {
	stack   []Node
	current Node
}

// Walk returns an iterator over the tree, starting at the root.
func (t *Tree) Walk() *Iterator {
	it := &Iterator{}
	if t.root != nil {
		it.stack = []Node{t.root}
	}
	return it
}

// Next returns the next node in document order, or nil when the tree is
// exhausted.
func (it *Iterator) Next() Node {
	if len(it.stack) == 0 {
		it.current = nil
		return nil
	}
	node := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]

	// Push children in reverse so the first child pops next.
	children := node.Children()
	for i := len(children) - 1; i >= 0; i-- {
		it.stack = append(it.stack, children[i])
	}

	it.current = node
	return node
}

// CurrentKind reports the kind of the most recently yielded node. Before
// the first Next, and after exhaustion, it reports KindRoot.
func (it *Iterator) CurrentKind() Kind {
	if it.current == nil {
		return KindRoot
	}
	return it.current.Kind()
}
