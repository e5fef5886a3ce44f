package html

import (
	"strconv"
	"strings"

	"github.com/go-skiff/skiff/pkg/errors"
)

// Tokenizer lexes an HTML input string into tokens.
type Tokenizer struct {
	input string
	pos   int
	line  int
	col   int
}

// NewTokenizer creates a tokenizer over the given input.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input, line: 1, col: 1}
}

// Next returns the next token, or a TokenEOF token at end of input.
func (t *Tokenizer) Next() (Token, error) {
	if t.pos >= len(t.input) {
		return Token{Type: TokenEOF, Line: t.line, Column: t.col}, nil
	}

	startLine, startCol := t.line, t.col

	if t.peek() == '<' {
		switch {
		case strings.HasPrefix(t.input[t.pos:], "<!--"):
			return t.lexComment(startLine, startCol)
		case strings.HasPrefix(t.input[t.pos:], "<!"):
			return t.lexDoctype(startLine, startCol)
		case strings.HasPrefix(t.input[t.pos:], "</"):
			return t.lexEndTag(startLine, startCol)
		default:
			if t.pos+1 < len(t.input) && isTagNameStart(t.input[t.pos+1]) {
				return t.lexStartTag(startLine, startCol)
			}
			// A lone '<' that does not open a tag is character data.
		}
	}

	return t.lexText(startLine, startCol)
}

func (t *Tokenizer) peek() byte {
	return t.input[t.pos]
}

// advance consumes one byte, tracking line and column.
func (t *Tokenizer) advance() byte {
	c := t.input[t.pos]
	t.pos++
	if c == '\n' {
		t.line++
		t.col = 1
	} else {
		t.col++
	}
	return c
}

func (t *Tokenizer) advanceN(n int) {
	for i := 0; i < n && t.pos < len(t.input); i++ {
		t.advance()
	}
}

func (t *Tokenizer) lexText(line, col int) (Token, error) {
	var sb strings.Builder
	for t.pos < len(t.input) {
		if t.peek() == '<' {
			rest := t.input[t.pos:]
			if strings.HasPrefix(rest, "<!") || strings.HasPrefix(rest, "</") ||
				(t.pos+1 < len(t.input) && isTagNameStart(t.input[t.pos+1])) {
				break
			}
		}
		sb.WriteByte(t.advance())
	}
	return Token{
		Type:   TokenText,
		Data:   DecodeEntities(sb.String()),
		Line:   line,
		Column: col,
	}, nil
}

func (t *Tokenizer) lexComment(line, col int) (Token, error) {
	t.advanceN(len("<!--"))
	end := strings.Index(t.input[t.pos:], "-->")
	if end < 0 {
		return Token{}, &errors.ParseError{Msg: "unterminated comment", Line: line, Column: col}
	}
	data := t.input[t.pos : t.pos+end]
	t.advanceN(end + len("-->"))
	return Token{Type: TokenComment, Data: data, Line: line, Column: col}, nil
}

func (t *Tokenizer) lexDoctype(line, col int) (Token, error) {
	end := strings.IndexByte(t.input[t.pos:], '>')
	if end < 0 {
		return Token{}, &errors.ParseError{Msg: "unterminated markup declaration", Line: line, Column: col}
	}
	t.advanceN(end + 1)
	return Token{Type: TokenDoctype, Line: line, Column: col}, nil
}

func (t *Tokenizer) lexEndTag(line, col int) (Token, error) {
	t.advanceN(len("</"))
	name := t.lexTagName()
	if name == "" {
		return Token{}, &errors.ParseError{Msg: "missing end tag name", Line: line, Column: col}
	}
	t.skipWhitespace()
	if t.pos >= len(t.input) || t.peek() != '>' {
		return Token{}, &errors.ParseError{Msg: "unterminated end tag", Line: line, Column: col}
	}
	t.advance()
	return Token{Type: TokenEndTag, Name: name, Line: line, Column: col}, nil
}

func (t *Tokenizer) lexStartTag(line, col int) (Token, error) {
	t.advance() // '<'
	name := t.lexTagName()

	attrs := make(map[string]string)
	selfClosing := false
	for {
		t.skipWhitespace()
		if t.pos >= len(t.input) {
			return Token{}, &errors.ParseError{Msg: "unterminated start tag", Line: line, Column: col}
		}
		c := t.peek()
		if c == '>' {
			t.advance()
			break
		}
		if c == '/' {
			t.advance()
			if t.pos >= len(t.input) || t.peek() != '>' {
				return Token{}, &errors.ParseError{Msg: "stray '/' in tag", Line: t.line, Column: t.col}
			}
			t.advance()
			selfClosing = true
			break
		}
		attrName, attrValue, err := t.lexAttribute()
		if err != nil {
			return Token{}, err
		}
		if _, exists := attrs[attrName]; !exists {
			attrs[attrName] = attrValue
		}
	}

	return Token{
		Type:        TokenStartTag,
		Name:        name,
		Attributes:  attrs,
		SelfClosing: selfClosing,
		Line:        line,
		Column:      col,
	}, nil
}

func (t *Tokenizer) lexTagName() string {
	var sb strings.Builder
	for t.pos < len(t.input) && isTagNameChar(t.peek()) {
		sb.WriteByte(t.advance())
	}
	return strings.ToLower(sb.String())
}

func (t *Tokenizer) lexAttribute() (string, string, error) {
	line, col := t.line, t.col
	var name strings.Builder
	for t.pos < len(t.input) && isAttrNameChar(t.peek()) {
		name.WriteByte(t.advance())
	}
	if name.Len() == 0 {
		return "", "", &errors.ParseError{Msg: "malformed attribute", Line: line, Column: col}
	}
	t.skipWhitespace()
	if t.pos >= len(t.input) || t.peek() != '=' {
		// Boolean attribute with no value.
		return strings.ToLower(name.String()), "", nil
	}
	t.advance() // '='
	t.skipWhitespace()
	if t.pos >= len(t.input) {
		return "", "", &errors.ParseError{Msg: "missing attribute value", Line: line, Column: col}
	}

	var value strings.Builder
	quote := t.peek()
	if quote == '"' || quote == '\'' {
		t.advance()
		for {
			if t.pos >= len(t.input) {
				return "", "", &errors.ParseError{Msg: "unterminated attribute value", Line: line, Column: col}
			}
			if t.peek() == quote {
				t.advance()
				break
			}
			value.WriteByte(t.advance())
		}
	} else {
		for t.pos < len(t.input) && !isWhitespace(t.peek()) && t.peek() != '>' && t.peek() != '/' {
			value.WriteByte(t.advance())
		}
	}
	return strings.ToLower(name.String()), DecodeEntities(value.String()), nil
}

func (t *Tokenizer) skipWhitespace() {
	for t.pos < len(t.input) && isWhitespace(t.peek()) {
		t.advance()
	}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isTagNameStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isTagNameChar(c byte) bool {
	return isTagNameStart(c) || (c >= '0' && c <= '9') || c == '-'
}

func isAttrNameChar(c byte) bool {
	return isTagNameChar(c) || c == '_' || c == ':'
}

// DecodeEntities replaces the basic named character references and numeric
// references with their literal characters.
func DecodeEntities(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '&' {
			sb.WriteByte(s[i])
			i++
			continue
		}
		semi := strings.IndexByte(s[i:], ';')
		if semi < 0 {
			sb.WriteByte(s[i])
			i++
			continue
		}
		entity := s[i+1 : i+semi]
		if decoded, ok := decodeEntity(entity); ok {
			sb.WriteString(decoded)
			i += semi + 1
			continue
		}
		sb.WriteByte(s[i])
		i++
	}
	return sb.String()
}

func decodeEntity(entity string) (string, bool) {
	switch entity {
	case "amp":
		return "&", true
	case "lt":
		return "<", true
	case "gt":
		return ">", true
	case "quot":
		return `"`, true
	case "apos":
		return "'", true
	case "nbsp":
		return " ", true
	}
	if strings.HasPrefix(entity, "#") {
		ref := entity[1:]
		base := 10
		if strings.HasPrefix(ref, "x") || strings.HasPrefix(ref, "X") {
			ref = ref[1:]
			base = 16
		}
		n, err := strconv.ParseInt(ref, base, 32)
		if err != nil || n <= 0 {
			return "", false
		}
		return string(rune(n)), true
	}
	return "", false
}
