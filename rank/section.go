package rank

import (
	"strings"

	"github.com/tsawler/contour/model"
)

// Section is one outline heading together with the body text that follows it,
// up to the next heading.
type Section struct {
	// Document is the source document name.
	Document string

	// Title is the heading text.
	Title string

	// Level is the heading's outline level.
	Level model.Level

	// Page is the page the heading appears on.
	Page int

	// Content is the joined body text under the heading.
	Content string
}

// Subsection is a span of a section's content, small enough to embed and
// return on its own.
type Subsection struct {
	Document string
	Page     int
	Text     string
}

// AssembleSections pairs each outline heading with the body lines between it
// and the next heading. Lines must be in document order, as produced by the
// outline engine's aggregator. Text before the first heading, including the
// title line, belongs to no section and is dropped.
func AssembleSections(document string, outline *model.Outline, lines []model.TextLine) []Section {
	if outline == nil || len(outline.Headings) == 0 {
		return nil
	}

	type key struct {
		text string
		page int
	}
	headingAt := make(map[key]*model.HeadingCandidate)
	for i := range outline.Headings {
		h := &outline.Headings[i]
		headingAt[key{h.Text, h.Page}] = h
	}

	var sections []Section
	var current *Section
	var body []string

	flush := func() {
		if current != nil {
			current.Content = strings.Join(body, " ")
			sections = append(sections, *current)
		}
		current = nil
		body = nil
	}

	for _, line := range lines {
		if line.IsEmpty() {
			continue
		}
		if h, ok := headingAt[key{line.Text, line.Page}]; ok {
			flush()
			current = &Section{
				Document: document,
				Title:    h.Text,
				Level:    h.Level,
				Page:     h.Page,
			}
			continue
		}
		if current != nil {
			body = append(body, line.Text)
		}
	}
	flush()

	return sections
}

// SplitSubsections cuts a section's content into spans of about maxChars
// runes, breaking at sentence boundaries. A single sentence longer than the
// limit stays whole. An empty section yields no subsections.
func SplitSubsections(s Section, maxChars int) []Subsection {
	content := strings.TrimSpace(s.Content)
	if content == "" {
		return nil
	}
	if maxChars <= 0 || len([]rune(content)) <= maxChars {
		return []Subsection{{Document: s.Document, Page: s.Page, Text: content}}
	}

	var subsections []Subsection
	var chunk strings.Builder
	chunkLen := 0

	emit := func() {
		text := strings.TrimSpace(chunk.String())
		if text != "" {
			subsections = append(subsections, Subsection{
				Document: s.Document,
				Page:     s.Page,
				Text:     text,
			})
		}
		chunk.Reset()
		chunkLen = 0
	}

	for _, sentence := range splitSentences(content) {
		n := len([]rune(sentence))
		if chunkLen > 0 && chunkLen+1+n > maxChars {
			emit()
		}
		if chunkLen > 0 {
			chunk.WriteByte(' ')
			chunkLen++
		}
		chunk.WriteString(sentence)
		chunkLen += n
	}
	emit()

	return subsections
}

// splitSentences breaks text at sentence-ending punctuation followed by a
// space. It is a heuristic, not a parser; abbreviations split early, which is
// harmless for chunking.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	runes := []rune(text)

	for i := 0; i < len(runes)-1; i++ {
		switch runes[i] {
		case '.', '!', '?':
			if runes[i+1] == ' ' {
				sentences = append(sentences, strings.TrimSpace(string(runes[start:i+1])))
				start = i + 2
			}
		}
	}
	if start < len(runes) {
		if s := strings.TrimSpace(string(runes[start:])); s != "" {
			sentences = append(sentences, s)
		}
	}

	return sentences
}
