package model

import "strings"

// Fragment is a positioned piece of text supplied by the external
// text-extraction layer. A fragment is typically a word or glyph run; line
// structure is recovered later by the line aggregator.
type Fragment struct {
	// Text is the decoded text content of the fragment.
	Text string

	// FontSize is the rendered font size in points.
	FontSize float64

	// Bold and Italic describe the font style of the fragment.
	Bold   bool
	Italic bool

	// Page is the 1-based page number the fragment appears on.
	Page int

	// BBox is the fragment's bounding box in PDF user space.
	BBox BBox
}

// IsEmpty returns true if the fragment has no visible text.
func (f Fragment) IsEmpty() bool {
	return strings.TrimSpace(f.Text) == ""
}

// TextLine is a coherent line of text assembled from fragments. Lines are
// immutable once created: every pipeline stage after the aggregator only
// reads them.
type TextLine struct {
	// Text is the assembled line text, fragments joined by single spaces.
	Text string

	// FontSize is the dominant (mode) font size across the line's fragments.
	FontSize float64

	// Bold and Italic hold the dominant style across the line's fragments.
	Bold   bool
	Italic bool

	// Page is the 1-based page number.
	Page int

	// BBox is the union of the fragment boxes.
	BBox BBox

	// Indent is the left-margin offset of the line relative to the leftmost
	// line on its page.
	Indent float64
}

// Length returns the number of runes in the line text.
func (l TextLine) Length() int {
	return len([]rune(l.Text))
}

// WordCount returns the number of whitespace-separated words.
func (l TextLine) WordCount() int {
	return len(strings.Fields(l.Text))
}

// IsEmpty returns true if the line has no visible text.
func (l TextLine) IsEmpty() bool {
	return strings.TrimSpace(l.Text) == ""
}
