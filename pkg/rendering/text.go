// Package rendering provides text styling and measurement for the render
// pipeline.
package rendering

import (
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 16
)

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightNormal   FontWeight = 400
	FontWeightSemibold FontWeight = 600
	FontWeightBold     FontWeight = 700
)

// FontStyle represents normal or italic text styles.
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
)

// TextStyle describes how text should be rendered.
type TextStyle struct {
	FontFamily string
	FontSize   float64
	FontWeight FontWeight
	FontStyle  FontStyle
}

// Bold reports whether the style's weight is bold or heavier.
func (s TextStyle) Bold() bool {
	return s.FontWeight >= FontWeightBold
}

// TextLine represents a single laid-out line of text.
type TextLine struct {
	Text  string
	Width float64
}

// TextLayout contains measured text metrics.
type TextLayout struct {
	Text       string
	Style      TextStyle
	Size       Size
	Ascent     float64
	Descent    float64
	LineHeight float64
	Lines      []TextLine
}

// measureFace is the fixed face used for measurement. There is no GPU text
// backend here; the bitmap face's metrics are scaled to the requested size.
var measureFace = basicfont.Face7x13

// LayoutText measures the given text without a width constraint.
func LayoutText(text string, style TextStyle) *TextLayout {
	return LayoutTextWithConstraints(text, style, 0)
}

// LayoutTextWithConstraints measures and wraps text within the given width.
// A maxWidth of 0 (or infinity) disables wrapping.
func LayoutTextWithConstraints(text string, style TextStyle, maxWidth float64) *TextLayout {
	size := style.FontSize
	if size <= 0 {
		size = defaultFontSize
	}

	metrics := measureFace.Metrics()
	scale := size / float64(measureFace.Height)
	ascent := float64(metrics.Ascent.Round()) * scale
	descent := float64(metrics.Descent.Round()) * scale
	lineHeight := ascent + descent
	if lineHeight == 0 {
		lineHeight = size
	}

	measure := func(s string) float64 {
		return float64(font.MeasureString(measureFace, s).Round()) * scale
	}

	lines := layoutLines(text, maxWidth, measure)
	if len(lines) == 0 {
		lines = []TextLine{{Text: "", Width: 0}}
	}
	maxLineWidth := 0.0
	for _, line := range lines {
		maxLineWidth = math.Max(maxLineWidth, line.Width)
	}

	return &TextLayout{
		Text:       text,
		Style:      style,
		Size:       Size{Width: maxLineWidth, Height: lineHeight * float64(len(lines))},
		Ascent:     ascent,
		Descent:    descent,
		LineHeight: lineHeight,
		Lines:      lines,
	}
}

// layoutLines splits text into lines, greedily wrapping words at maxWidth.
func layoutLines(text string, maxWidth float64, measure func(string) float64) []TextLine {
	if maxWidth <= 0 || math.IsInf(maxWidth, 0) {
		var lines []TextLine
		for _, raw := range strings.Split(text, "\n") {
			lines = append(lines, TextLine{Text: raw, Width: measure(raw)})
		}
		return lines
	}

	var lines []TextLine
	for _, raw := range strings.Split(text, "\n") {
		words := strings.Fields(raw)
		if len(words) == 0 {
			lines = append(lines, TextLine{Text: "", Width: 0})
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if measure(candidate) > maxWidth {
				lines = append(lines, TextLine{Text: current, Width: measure(current)})
				current = word
				continue
			}
			current = candidate
		}
		lines = append(lines, TextLine{Text: current, Width: measure(current)})
	}
	return lines
}
