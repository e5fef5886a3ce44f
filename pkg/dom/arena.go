package dom

// Arena owns the nodes of a document and hands out dense IDs.
type Arena struct {
	nodes  map[NodeID]*Node
	nextID NodeID
}

// NewArena creates an empty arena. The first registered node gets ID 0.
func NewArena() *Arena {
	return &Arena{
		nodes: make(map[NodeID]*Node),
	}
}

// Len returns the number of registered nodes.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Node returns the node with the given ID, or nil when absent.
func (a *Arena) Node(id NodeID) *Node {
	return a.nodes[id]
}

// Register adds the node to the arena and returns its assigned ID.
func (a *Arena) Register(node *Node) NodeID {
	id := a.nextID
	a.nextID++

	node.ID = id
	a.nodes[id] = node
	return id
}

// Attach makes child a child of parent. It refuses self-attachment and any
// attachment that would introduce a cycle, returning false with the tree
// unchanged.
func (a *Arena) Attach(parentID, childID NodeID) bool {
	if parentID == childID || a.hasDescendant(childID, parentID) {
		return false
	}
	parent := a.nodes[parentID]
	child := a.nodes[childID]
	if parent == nil || child == nil {
		return false
	}
	parent.Children = append(parent.Children, childID)
	child.Parent = parentID
	return true
}

// Detach removes the node and its entire subtree from the arena, unlinking
// it from its parent.
func (a *Arena) Detach(id NodeID) {
	node := a.nodes[id]
	if node == nil {
		return
	}
	for _, childID := range append([]NodeID(nil), node.Children...) {
		a.Detach(childID)
	}
	delete(a.nodes, id)
	if node.Parent != InvalidNodeID {
		if parent := a.nodes[node.Parent]; parent != nil {
			children := parent.Children[:0]
			for _, cid := range parent.Children {
				if cid != id {
					children = append(children, cid)
				}
			}
			parent.Children = children
		}
	}
}

// hasDescendant reports whether child appears anywhere below parent.
func (a *Arena) hasDescendant(parentID, childID NodeID) bool {
	parent := a.nodes[parentID]
	if parent == nil {
		return false
	}
	for _, id := range parent.Children {
		if id == childID || a.hasDescendant(id, childID) {
			return true
		}
	}
	return false
}
