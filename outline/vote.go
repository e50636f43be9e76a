package outline

import "github.com/tsawler/contour/model"

// VoteSource identifies the classifier that produced a vote. The declaration
// order is the fusion priority order: when two votes carry equal confidence,
// the lower-numbered source wins.
type VoteSource int

const (
	// SourcePattern is the lexical pattern classifier.
	SourcePattern VoteSource = iota

	// SourceStatistical is the font-size statistics classifier.
	SourceStatistical

	// SourceStructural is the document-flow classifier.
	SourceStructural
)

// String returns a string representation of the vote source.
func (s VoteSource) String() string {
	switch s {
	case SourcePattern:
		return "pattern"
	case SourceStatistical:
		return "statistical"
	case SourceStructural:
		return "structural"
	default:
		return "unknown"
	}
}

// Rationale tags explaining why a classifier voted. Useful when debugging
// fusion decisions.
const (
	RationaleNumbered  = "numbered"
	RationaleLettered  = "lettered"
	RationaleRoman     = "roman"
	RationaleKeyword   = "keyword"
	RationaleFontSize  = "font-size"
	RationaleStructure = "structure"
)

// Vote is one classifier's opinion about one line: the heading level it
// suggests and how confident it is. Votes are ephemeral; they exist only
// between classification and fusion.
type Vote struct {
	// Source is the classifier that produced the vote.
	Source VoteSource

	// Level is the suggested heading level.
	Level model.Level

	// Confidence is the classifier's certainty in [0, 1].
	Confidence float64

	// Rationale tags the reason for the vote.
	Rationale string
}
