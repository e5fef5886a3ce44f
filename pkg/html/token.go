// Package html provides a small HTML tokenizer and tree builder.
//
// The dialect covered is the subset the render pipeline consumes: start and
// end tags with attributes, self-closing syntax, text with entity decoding,
// comments, and doctype declarations (which are skipped). It is not a full
// HTML5 conformance parser.
package html

// TokenType identifies the kind of a lexed token.
type TokenType int

const (
	// TokenStartTag is an opening tag, e.g. <p class="x">.
	TokenStartTag TokenType = iota
	// TokenEndTag is a closing tag, e.g. </p>.
	TokenEndTag
	// TokenText is a run of character data.
	TokenText
	// TokenComment is a <!-- --> comment.
	TokenComment
	// TokenDoctype is a <!doctype> declaration.
	TokenDoctype
	// TokenEOF marks the end of input.
	TokenEOF
)

func (t TokenType) String() string {
	switch t {
	case TokenStartTag:
		return "start-tag"
	case TokenEndTag:
		return "end-tag"
	case TokenText:
		return "text"
	case TokenComment:
		return "comment"
	case TokenDoctype:
		return "doctype"
	case TokenEOF:
		return "eof"
	default:
		return "unknown"
	}
}

// Token is a single lexed HTML token.
type Token struct {
	// Type is the token kind.
	Type TokenType
	// Name is the lowercased tag name for start and end tags.
	Name string
	// Attributes holds start tag attributes by lowercased name.
	Attributes map[string]string
	// SelfClosing is set for <br/> style tags.
	SelfClosing bool
	// Data is the content for text and comment tokens.
	Data string
	// Line and Column are the 1-based position where the token begins.
	Line   int
	Column int
}

// voidElements never take children; their start tag closes them.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement reports whether the named element never takes children.
func IsVoidElement(name string) bool {
	return voidElements[name]
}
