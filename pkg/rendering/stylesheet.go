package rendering

// DefaultFontFamily is the user-agent serif family.
const DefaultFontFamily = "Times New Roman"

// User-agent font sizes per element, in logical pixels.
const (
	FontSizeH1        = 37.0
	FontSizeH2        = 27.5
	FontSizeH3        = 21.5
	FontSizeH4        = 18.5
	FontSizeH5        = 15.5
	FontSizeH6        = 12.0
	FontSizeParagraph = 18.5
)

// Stylesheet maps element names to text styles. Elements without an explicit
// rule fall back to the paragraph style.
type Stylesheet struct {
	fallback TextStyle
	rules    map[string]TextStyle
}

// DefaultStylesheet returns the user-agent stylesheet: serif family,
// headings h1-h6 bold with decreasing sizes, paragraphs normal weight.
func DefaultStylesheet() *Stylesheet {
	heading := func(size float64) TextStyle {
		return TextStyle{
			FontFamily: DefaultFontFamily,
			FontSize:   size,
			FontWeight: FontWeightBold,
		}
	}
	paragraph := TextStyle{
		FontFamily: DefaultFontFamily,
		FontSize:   FontSizeParagraph,
		FontWeight: FontWeightNormal,
	}
	return &Stylesheet{
		fallback: paragraph,
		rules: map[string]TextStyle{
			"h1": heading(FontSizeH1),
			"h2": heading(FontSizeH2),
			"h3": heading(FontSizeH3),
			"h4": heading(FontSizeH4),
			"h5": heading(FontSizeH5),
			"h6": heading(FontSizeH6),
			"p":  paragraph,
		},
	}
}

// Rule returns the explicit style for an element name.
func (s *Stylesheet) Rule(name string) (TextStyle, bool) {
	style, ok := s.rules[name]
	return style, ok
}

// SetRule adds or replaces the style for an element name.
func (s *Stylesheet) SetRule(name string, style TextStyle) {
	if style.FontFamily == "" {
		style.FontFamily = s.fallback.FontFamily
	}
	if style.FontSize <= 0 {
		style.FontSize = s.fallback.FontSize
	}
	if style.FontWeight == 0 {
		style.FontWeight = FontWeightNormal
	}
	s.rules[name] = style
}

// Fallback returns the style applied when no rule matches.
func (s *Stylesheet) Fallback() TextStyle {
	return s.fallback
}

// SetFallback replaces the fallback style.
func (s *Stylesheet) SetFallback(style TextStyle) {
	s.fallback = style
}
