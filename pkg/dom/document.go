package dom

// Document is a parsed HTML document backed by an arena.
type Document struct {
	arena *Arena
}

// NewDocument creates a document whose arena contains only the root node.
func NewDocument() *Document {
	doc := &Document{arena: NewArena()}
	doc.arena.Register(newDocumentNode())
	return doc
}

// Arena exposes the underlying node arena.
func (d *Document) Arena() *Arena {
	return d.arena
}

// Root returns the document root node.
func (d *Document) Root() *Node {
	return d.arena.Node(RootNodeID)
}

// Node returns the node with the given ID, or nil when absent.
func (d *Document) Node(id NodeID) *Node {
	return d.arena.Node(id)
}

// AddElement registers a new element node and returns its ID.
func (d *Document) AddElement(name string, attributes map[string]string) NodeID {
	return d.arena.Register(NewElement(name, attributes))
}

// AddText registers a new text node and returns its ID.
func (d *Document) AddText(value string) NodeID {
	return d.arena.Register(NewText(value))
}

// AddComment registers a new comment node and returns its ID.
func (d *Document) AddComment(value string) NodeID {
	return d.arena.Register(NewComment(value))
}

// Append attaches child under parent. Returns false when the attachment
// would create a cycle or either node is unknown.
func (d *Document) Append(parentID, childID NodeID) bool {
	return d.arena.Attach(parentID, childID)
}

// Walk visits the tree in document order (pre-order, depth first), starting
// at the root. The visitor returns false to stop the walk early.
func (d *Document) Walk(visit func(*Node) bool) {
	d.walk(RootNodeID, visit)
}

func (d *Document) walk(id NodeID, visit func(*Node) bool) bool {
	node := d.arena.Node(id)
	if node == nil {
		return true
	}
	if !visit(node) {
		return false
	}
	for _, childID := range node.Children {
		if !d.walk(childID, visit) {
			return false
		}
	}
	return true
}
