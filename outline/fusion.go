package outline

import "github.com/tsawler/contour/model"

// Fuser merges the classifiers' votes for one line into a single decision
// and repairs the resulting sequence so heading levels always form a valid
// nesting. Fusion is a pure reduction over the vote list; it never errors on
// disagreement.
type Fuser struct {
	config FusionConfig
}

// NewFuser creates a fuser with default configuration.
func NewFuser() *Fuser {
	return &Fuser{
		config: DefaultFusionConfig(),
	}
}

// NewFuserWithConfig creates a fuser with custom configuration.
func NewFuserWithConfig(config FusionConfig) *Fuser {
	return &Fuser{
		config: config,
	}
}

// Fuse resolves one line's votes. The highest confidence wins; equal
// confidences are broken by source priority (pattern, then statistical, then
// structural). It returns the winning vote and true, or a zero Vote and
// false when no vote clears the minimum confidence (the line is body text).
func (f *Fuser) Fuse(votes []Vote) (Vote, bool) {
	if len(votes) == 0 {
		return Vote{}, false
	}

	winner := votes[0]
	for _, v := range votes[1:] {
		if v.Confidence > winner.Confidence {
			winner = v
			continue
		}
		if v.Confidence == winner.Confidence && v.Source < winner.Source {
			winner = v
		}
	}

	if winner.Confidence < f.config.MinConfidence {
		return Vote{}, false
	}
	return winner, true
}

// Repair enforces the nesting invariant over a document-ordered heading
// sequence: whenever an entry is more than one level deeper than the last
// emitted entry, it is demoted to exactly one level deeper. Entries are
// never promoted and never dropped, so the pass is deterministic and
// idempotent. The input slice is not modified.
func (f *Fuser) Repair(headings []model.HeadingCandidate) []model.HeadingCandidate {
	if len(headings) == 0 {
		return nil
	}

	repaired := make([]model.HeadingCandidate, len(headings))
	copy(repaired, headings)

	// A virtual root at depth 0 precedes the first entry, so a document
	// that opens with an H2 or H3 is demoted to H1.
	prevDepth := 0
	for i := range repaired {
		depth := repaired[i].Level.Depth()
		if depth > prevDepth+1 {
			depth = prevDepth + 1
			repaired[i].Level = model.LevelForDepth(depth)
		}
		prevDepth = depth
	}

	return repaired
}
