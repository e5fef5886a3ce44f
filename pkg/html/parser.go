package html

import (
	"strings"

	"github.com/go-skiff/skiff/pkg/dom"
)

// Parse tokenizes the input and builds a DOM document.
//
// Recovery rules: unclosed elements are closed implicitly at end of input,
// stray end tags are ignored, void elements never take children, and
// whitespace-only text runs between elements are dropped.
func Parse(input string) (*dom.Document, error) {
	doc := dom.NewDocument()
	tokenizer := NewTokenizer(input)

	// Stack of open element IDs; the document root is always at the bottom.
	open := []dom.NodeID{dom.RootNodeID}
	names := []string{""}

	for {
		token, err := tokenizer.Next()
		if err != nil {
			return nil, err
		}

		switch token.Type {
		case TokenEOF:
			return doc, nil

		case TokenDoctype:
			// The render pipeline has no quirks handling; doctypes are skipped.

		case TokenStartTag:
			id := doc.AddElement(token.Name, token.Attributes)
			doc.Append(open[len(open)-1], id)
			if !token.SelfClosing && !IsVoidElement(token.Name) {
				open = append(open, id)
				names = append(names, token.Name)
			}

		case TokenEndTag:
			// Pop up to the nearest matching open element; ignore the tag
			// entirely when nothing matches.
			match := -1
			for i := len(names) - 1; i > 0; i-- {
				if names[i] == token.Name {
					match = i
					break
				}
			}
			if match > 0 {
				open = open[:match]
				names = names[:match]
			}

		case TokenText:
			if strings.TrimSpace(token.Data) == "" {
				continue
			}
			id := doc.AddText(token.Data)
			doc.Append(open[len(open)-1], id)

		case TokenComment:
			id := doc.AddComment(token.Data)
			doc.Append(open[len(open)-1], id)
		}
	}
}
