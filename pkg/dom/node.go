// Package dom provides an arena-backed document object model for parsed HTML.
//
// Nodes are owned by an Arena and refer to each other by NodeID rather than
// by pointer. ID 0 is always the document root.
package dom

// HTMLNamespace is the namespace assigned to HTML elements.
const HTMLNamespace = "http://www.w3.org/1999/xhtml"

// NodeID identifies a node within an arena. The zero value is the root.
type NodeID int

// InvalidNodeID marks the absence of a node (e.g., a detached node's parent).
const InvalidNodeID NodeID = -1

// RootNodeID is the ID of the document root node.
const RootNodeID NodeID = 0

// IsRoot reports whether this ID refers to the document root.
func (id NodeID) IsRoot() bool {
	return id == RootNodeID
}

// NodeType identifies the variant of a DOM node.
type NodeType int

const (
	// NodeTypeDocument is the document root.
	NodeTypeDocument NodeType = iota
	// NodeTypeElement is a named element with attributes.
	NodeTypeElement
	// NodeTypeText is a text run.
	NodeTypeText
	// NodeTypeComment is a comment.
	NodeTypeComment
)

func (t NodeType) String() string {
	switch t {
	case NodeTypeDocument:
		return "document"
	case NodeTypeElement:
		return "element"
	case NodeTypeText:
		return "text"
	case NodeTypeComment:
		return "comment"
	default:
		return "unknown"
	}
}

// NodeData is the variant payload of a node. Exactly one concrete type is
// carried per node, selected by the node's Type.
type NodeData interface {
	Type() NodeType
}

// DocumentData is the payload of the document root.
type DocumentData struct{}

// Type returns NodeTypeDocument.
func (DocumentData) Type() NodeType { return NodeTypeDocument }

// ElementData is the payload of an element node.
type ElementData struct {
	// Attributes holds the element's attributes by name.
	Attributes map[string]string
}

// Type returns NodeTypeElement.
func (ElementData) Type() NodeType { return NodeTypeElement }

// TextData is the payload of a text node.
type TextData struct {
	// Value is the decoded text content.
	Value string
}

// Type returns NodeTypeText.
func (TextData) Type() NodeType { return NodeTypeText }

// CommentData is the payload of a comment node.
type CommentData struct {
	// Value is the comment text, without the <!-- --> delimiters.
	Value string
}

// Type returns NodeTypeComment.
func (CommentData) Type() NodeType { return NodeTypeComment }

// Node is a single DOM node. Parent and Children are arena IDs.
type Node struct {
	// ID of the node; 0 is always the document root.
	ID NodeID
	// Parent of the node, or InvalidNodeID when detached.
	Parent NodeID
	// Children of the node, in document order.
	Children []NodeID
	// Name of the node, or empty when it is not an element.
	Name string
	// Namespace of the node, or empty when it is not an element.
	Namespace string
	// Data is the variant payload.
	Data NodeData
}

// Type returns the variant of this node's payload.
func (n *Node) Type() NodeType {
	return n.Data.Type()
}

// Attribute returns the named attribute of an element node.
func (n *Node) Attribute(name string) (string, bool) {
	data, ok := n.Data.(ElementData)
	if !ok {
		return "", false
	}
	value, ok := data.Attributes[name]
	return value, ok
}

// NewElement creates an unregistered element node in the HTML namespace.
func NewElement(name string, attributes map[string]string) *Node {
	if attributes == nil {
		attributes = make(map[string]string)
	}
	return &Node{
		Parent:    InvalidNodeID,
		Name:      name,
		Namespace: HTMLNamespace,
		Data:      ElementData{Attributes: attributes},
	}
}

// NewText creates an unregistered text node.
func NewText(value string) *Node {
	return &Node{
		Parent: InvalidNodeID,
		Data:   TextData{Value: value},
	}
}

// NewComment creates an unregistered comment node.
func NewComment(value string) *Node {
	return &Node{
		Parent: InvalidNodeID,
		Data:   CommentData{Value: value},
	}
}

// newDocumentNode creates the document root payload node.
func newDocumentNode() *Node {
	return &Node{
		Parent: InvalidNodeID,
		Data:   DocumentData{},
	}
}
