package outline

import (
	"math"
	"sort"

	"github.com/tsawler/contour/model"
)

// PlacedHeading is a read-only snapshot entry describing a heading already
// placed in the outline, used by the structural classifier to infer levels
// from indentation. The engine passes the snapshot explicitly; the
// classifier never sees mutable pipeline state.
type PlacedHeading struct {
	// Level is the placed heading's resolved level.
	Level model.Level

	// Indent is the placed heading's left-margin offset.
	Indent float64
}

// StructuralClassifier flags heading candidates from document flow: a short
// line followed by a longer paragraph block. It is the weakest signal, with
// a fixed confidence that any pattern or statistical vote outranks.
type StructuralClassifier struct {
	config StructuralConfig
}

// NewStructuralClassifier creates a structural classifier with default configuration.
func NewStructuralClassifier() *StructuralClassifier {
	return &StructuralClassifier{
		config: DefaultStructuralConfig(),
	}
}

// NewStructuralClassifierWithConfig creates a structural classifier with custom configuration.
func NewStructuralClassifierWithConfig(config StructuralConfig) *StructuralClassifier {
	return &StructuralClassifier{
		config: config,
	}
}

// Classify scores the line at index against its neighbors and the outline
// built so far. It returns the vote and true, or a zero Vote and false when
// the classifier abstains.
func (c *StructuralClassifier) Classify(lines []model.TextLine, index int, placed []PlacedHeading) (Vote, bool) {
	if index < 0 || index >= len(lines) {
		return Vote{}, false
	}

	line := lines[index]
	if line.IsEmpty() {
		return Vote{}, false
	}

	if !c.isCandidate(lines, index) {
		return Vote{}, false
	}

	return Vote{
		Source:     SourceStructural,
		Level:      c.inferLevel(line, placed),
		Confidence: c.config.Confidence,
		Rationale:  RationaleStructure,
	}, true
}

// isCandidate applies the flow test: shorter than the previous line, shorter
// than the median of the following block, and immediately followed by at
// least one longer, non-empty line.
func (c *StructuralClassifier) isCandidate(lines []model.TextLine, index int) bool {
	line := lines[index]
	length := line.Length()

	// Shorter than the line before, when there is one.
	if index > 0 && length >= lines[index-1].Length() {
		return false
	}

	// The immediately following line must be longer, with no blank or short
	// line in between.
	if index+1 >= len(lines) {
		return false
	}
	next := lines[index+1]
	if next.IsEmpty() || next.Length() <= length {
		return false
	}

	// Shorter than the median length of the following block.
	end := index + 1 + c.config.LookaheadLines
	if end > len(lines) {
		end = len(lines)
	}
	var lengths []int
	for _, following := range lines[index+1 : end] {
		lengths = append(lengths, following.Length())
	}
	if len(lengths) == 0 {
		return false
	}
	sort.Ints(lengths)
	median := lengths[len(lengths)/2]

	return length < median
}

// inferLevel derives a level from indentation relative to headings already
// placed in the outline. A line indented like a previous heading shares its
// level; a line indented deeper than the most recent heading nests one level
// under it, capped at H3. With no placed headings the line is an H1.
func (c *StructuralClassifier) inferLevel(line model.TextLine, placed []PlacedHeading) model.Level {
	// Most recent sibling at the same indent wins.
	for i := len(placed) - 1; i >= 0; i-- {
		if math.Abs(placed[i].Indent-line.Indent) <= c.config.IndentTolerance {
			return placed[i].Level
		}
	}

	if len(placed) > 0 {
		last := placed[len(placed)-1]
		if line.Indent > last.Indent+c.config.IndentTolerance {
			return model.LevelForDepth(last.Level.Depth() + 1)
		}
	}

	return model.LevelH1
}
