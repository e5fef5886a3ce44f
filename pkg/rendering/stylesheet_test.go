package rendering

import "testing"

func TestDefaultStylesheetHeadingSizes(t *testing.T) {
	sheet := DefaultStylesheet()
	tests := []struct {
		name string
		size float64
		bold bool
	}{
		{"h1", 37.0, true},
		{"h2", 27.5, true},
		{"h3", 21.5, true},
		{"h4", 18.5, true},
		{"h5", 15.5, true},
		{"h6", 12.0, true},
		{"p", 18.5, false},
	}
	for _, tt := range tests {
		style, ok := sheet.Rule(tt.name)
		if !ok {
			t.Fatalf("expected a rule for %s", tt.name)
		}
		if style.FontSize != tt.size {
			t.Errorf("%s: expected size %v, got %v", tt.name, tt.size, style.FontSize)
		}
		if style.Bold() != tt.bold {
			t.Errorf("%s: expected bold=%v, got %v", tt.name, tt.bold, style.Bold())
		}
		if style.FontFamily != DefaultFontFamily {
			t.Errorf("%s: expected family %q, got %q", tt.name, DefaultFontFamily, style.FontFamily)
		}
	}
}

func TestStylesheetFallback(t *testing.T) {
	sheet := DefaultStylesheet()
	if _, ok := sheet.Rule("blockquote"); ok {
		t.Fatal("did not expect a rule for blockquote")
	}
	fallback := sheet.Fallback()
	if fallback.FontSize != FontSizeParagraph {
		t.Errorf("expected fallback size %v, got %v", FontSizeParagraph, fallback.FontSize)
	}
	if fallback.Bold() {
		t.Error("expected fallback to be normal weight")
	}
}

func TestStylesheetSetRuleFillsDefaults(t *testing.T) {
	sheet := DefaultStylesheet()
	sheet.SetRule("blockquote", TextStyle{FontStyle: FontStyleItalic})
	style, ok := sheet.Rule("blockquote")
	if !ok {
		t.Fatal("expected the new rule to be present")
	}
	if style.FontFamily != DefaultFontFamily {
		t.Errorf("expected defaulted family, got %q", style.FontFamily)
	}
	if style.FontSize != FontSizeParagraph {
		t.Errorf("expected defaulted size, got %v", style.FontSize)
	}
	if style.FontWeight != FontWeightNormal {
		t.Errorf("expected defaulted weight, got %v", style.FontWeight)
	}
}
