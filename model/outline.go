package model

import "encoding/json"

// Level represents a heading depth in the document hierarchy.
type Level int

const (
	// LevelNone marks body text (not part of the outline).
	LevelNone Level = iota

	// LevelTitle is the single document title.
	LevelTitle

	// LevelH1 is a top-level heading.
	LevelH1

	// LevelH2 is a section heading nested under an H1.
	LevelH2

	// LevelH3 is a subsection heading nested under an H2.
	LevelH3
)

// String returns the conventional name for the level.
func (l Level) String() string {
	switch l {
	case LevelTitle:
		return "Title"
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	default:
		return "None"
	}
}

// Depth returns the nesting depth of a heading level: 1 for H1, 2 for H2,
// 3 for H3. Title and None have no depth and return 0.
func (l Level) Depth() int {
	switch l {
	case LevelH1:
		return 1
	case LevelH2:
		return 2
	case LevelH3:
		return 3
	default:
		return 0
	}
}

// LevelForDepth returns the heading level for a nesting depth, capped at H3.
// Depths below 1 return LevelNone.
func LevelForDepth(depth int) Level {
	switch {
	case depth < 1:
		return LevelNone
	case depth == 1:
		return LevelH1
	case depth == 2:
		return LevelH2
	default:
		return LevelH3
	}
}

// HeadingCandidate is the fused classification result for one line: the text,
// resolved level, page, and the winning vote's confidence. A line that
// produced no candidate is body text.
type HeadingCandidate struct {
	// Text is the heading text as it appears in the document.
	Text string

	// Level is the resolved heading level (H1-H3).
	Level Level

	// Page is the 1-based page number the heading appears on.
	Page int

	// Confidence is the winning vote's confidence in [0, 1].
	Confidence float64

	// Y is the vertical position of the heading's top edge, used for
	// document-order sorting. Not part of the serialized output.
	Y float64
}

// MarshalJSON serializes the candidate in the conventional outline shape:
// {"level": "H1", "text": "...", "page": 1}.
func (h HeadingCandidate) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Level string `json:"level"`
		Text  string `json:"text"`
		Page  int    `json:"page"`
	}{
		Level: h.Level.String(),
		Text:  h.Text,
		Page:  h.Page,
	})
}

// Outline is the extracted structure of one document: a title plus the
// headings in document order.
//
// Two invariants hold for every outline the engine produces. Entries are
// sorted by (page, vertical position) ascending, and no entry's level is more
// than one deeper than its nearest shallower predecessor.
type Outline struct {
	// Title is the detected document title. The title fallback policy
	// guarantees it is the empty string only for a completely empty document.
	Title string `json:"title"`

	// Headings are the outline entries in document order.
	Headings []HeadingCandidate `json:"outline"`
}

// HeadingsAtLevel returns all headings at the given level, in document order.
func (o *Outline) HeadingsAtLevel(level Level) []HeadingCandidate {
	if o == nil {
		return nil
	}
	var result []HeadingCandidate
	for _, h := range o.Headings {
		if h.Level == level {
			result = append(result, h)
		}
	}
	return result
}

// HeadingsOnPage returns all headings on the given page, in document order.
func (o *Outline) HeadingsOnPage(page int) []HeadingCandidate {
	if o == nil {
		return nil
	}
	var result []HeadingCandidate
	for _, h := range o.Headings {
		if h.Page == page {
			result = append(result, h)
		}
	}
	return result
}

// IsEmpty returns true if the outline has no title and no headings.
func (o *Outline) IsEmpty() bool {
	return o == nil || (o.Title == "" && len(o.Headings) == 0)
}
