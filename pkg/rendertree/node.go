// Package rendertree defines the render-tree node representation produced by
// the render pipeline.
//
// A node is a sum type: it is exactly one of the declared variants at a
// time, and only that variant's payload exists. Consumers switch on Kind
// (or type-switch on the concrete variant) rather than probing fields.
package rendertree

// Kind is the closed discriminant of a render-tree node.
//
// KindRoot is pinned to ordinal 0; downstream consumers serialize the
// discriminant and rely on that value.
type Kind int

const (
	// KindRoot marks the single root node of a render tree.
	KindRoot Kind = 0
	// KindText marks a styled text run.
	KindText Kind = 1
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Node is a render-tree node. Exactly two variants exist: RootNode and
// TextNode.
type Node interface {
	// Kind returns the node's discriminant.
	Kind() Kind
	// Parent returns the node's parent, or nil for the root.
	Parent() Node
	// Children returns the node's children in document order.
	Children() []Node
	// VisitChildren calls the visitor function for each child.
	VisitChildren(visitor func(Node))
	// DisposeData releases only the variant payload, leaving the node
	// shell usable (the tag is preserved).
	DisposeData()

	setParent(Node)
	appendChild(Node)
}

// nodeBase provides tree linkage shared by all variants.
type nodeBase struct {
	parent   Node
	children []Node
}

func (b *nodeBase) Parent() Node {
	return b.parent
}

func (b *nodeBase) Children() []Node {
	return b.children
}

func (b *nodeBase) VisitChildren(visitor func(Node)) {
	for _, child := range b.children {
		visitor(child)
	}
}

func (b *nodeBase) setParent(parent Node) {
	b.parent = parent
}

func (b *nodeBase) appendChild(child Node) {
	b.children = append(b.children, child)
}

// RootNode is the root variant. Its payload is a readiness flag.
type RootNode struct {
	nodeBase

	// Ready reports whether the tree below this root is fully built.
	Ready bool
}

// Kind returns KindRoot.
func (*RootNode) Kind() Kind { return KindRoot }

// DisposeData is a no-op: the root payload owns no resources.
func (*RootNode) DisposeData() {}

// TextNode is the text variant: one styled text run.
type TextNode struct {
	nodeBase

	// Value is the text content.
	Value string
	// Font is the resolved font family.
	Font string
	// FontSize is the resolved size in logical pixels.
	FontSize float64
	// Bold reports whether the run is bold.
	Bold bool
}

// Kind returns KindText.
func (*TextNode) Kind() Kind { return KindText }

// DisposeData releases the payload's owned buffers. The node shell remains
// valid and keeps its tag.
func (n *TextNode) DisposeData() {
	n.Value = ""
	n.Font = ""
}

// NewNode returns a freshly constructed node. A fresh node is always tagged
// KindRoot; the tag is never left undefined.
func NewNode() Node {
	return &RootNode{Ready: true}
}

// NewTextNode constructs a text node with the given payload.
func NewTextNode(value, font string, fontSize float64, bold bool) *TextNode {
	return &TextNode{
		Value:    value,
		Font:     font,
		FontSize: fontSize,
		Bold:     bold,
	}
}

// Release disposes the node's payload and nils the caller's handle, so a
// released node cannot be reached through it afterward. Releasing a nil
// handle is a no-op, which makes double-release safe.
func Release(n *Node) {
	if n == nil || *n == nil {
		return
	}
	(*n).DisposeData()
	*n = nil
}

// TextValue returns the text payload of a text node, or "" for nil or
// non-text nodes.
func TextValue(n Node) string {
	if text, ok := n.(*TextNode); ok {
		return text.Value
	}
	return ""
}

// TextFont returns the font family of a text node, or "" for nil or
// non-text nodes.
func TextFont(n Node) string {
	if text, ok := n.(*TextNode); ok {
		return text.Font
	}
	return ""
}

// TextFontSize returns the font size of a text node, or 0 for nil or
// non-text nodes.
func TextFontSize(n Node) float64 {
	if text, ok := n.(*TextNode); ok {
		return text.FontSize
	}
	return 0
}

// TextBold reports whether a text node is bold; false for nil or non-text
// nodes.
func TextBold(n Node) bool {
	if text, ok := n.(*TextNode); ok {
		return text.Bold
	}
	return false
}
