// Package layout holds the pure text fitting algorithms of the compositor.
// It knows nothing about fonts or surfaces: callers inject a Measure
// capability that maps a string to its rendered pixel width, which keeps the
// package testable without any graphics backend.
package layout

import "strings"

// Measure returns the rendered width of text in pixels for the font the
// caller is about to draw with.
type Measure func(text string) float64

// Line is one body line fitted to a maximum pixel width, ready to draw.
// Truncated marks the final line of a layout that dropped trailing words;
// the renderer appends the ellipsis marker.
type Line struct {
	Text      string
	Truncated bool
}

// WrapBody breaks body text into draw lines with a greedy word wrap and
// truncates vertically once the box runs out of room.
//
// Words accumulate into the current line while the candidate stays within
// maxWidth. When a word would overflow, the current line is emitted and the
// word starts the next one. If no further full line fits below it, the
// current line is emitted with Truncated set instead and every
// remaining word is dropped. The returned lines always fit the box: at most
// maxHeight/lineHeight of them are produced.
//
// A single word wider than maxWidth is kept whole on its own line and may
// visually overflow; mid-word breaking is deliberately not done.
func WrapBody(body string, maxWidth, maxHeight, lineHeight float64, measure Measure) []Line {
	words := strings.Fields(body)
	if len(words) == 0 || maxWidth <= 0 || lineHeight <= 0 || maxHeight < lineHeight {
		return nil
	}

	var lines []Line
	current := ""
	cursorY := 0.0
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if current == "" || measure(candidate) <= maxWidth {
			current = candidate
			continue
		}

		// The word starts a new line at cursorY+lineHeight; if that line
		// cannot fit above the box bottom, truncate here.
		if cursorY+lineHeight > maxHeight-lineHeight {
			return append(lines, Line{Text: current, Truncated: true})
		}
		lines = append(lines, Line{Text: current})
		cursorY += lineHeight
		current = word
	}
	if current != "" {
		lines = append(lines, Line{Text: current})
	}
	return lines
}
