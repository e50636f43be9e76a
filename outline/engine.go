package outline

import (
	"sort"
	"sync"

	"github.com/tsawler/contour/model"
)

// Engine runs the full outline extraction pipeline: line aggregation, the
// three classifier passes, title detection, vote fusion, and nesting repair.
// An Engine holds no per-document state and is safe for concurrent use;
// each call to ExtractOutline is an independent run.
type Engine struct {
	config Config

	aggregator  *LineAggregator
	pattern     *PatternClassifier
	statistical *StatisticalClassifier
	structural  *StructuralClassifier
	title       *TitleDetector
	fuser       *Fuser
}

// NewEngine creates an engine with default configuration.
func NewEngine() *Engine {
	return NewEngineWithConfig(DefaultConfig())
}

// NewEngineWithConfig creates an engine with custom configuration.
func NewEngineWithConfig(config Config) *Engine {
	return &Engine{
		config:      config,
		aggregator:  NewLineAggregatorWithConfig(config.Aggregator),
		pattern:     NewPatternClassifierWithConfig(config.Pattern),
		statistical: NewStatisticalClassifierWithConfig(config.Statistical),
		structural:  NewStructuralClassifierWithConfig(config.Structural),
		title:       NewTitleDetectorWithConfig(config.Title),
		fuser:       NewFuserWithConfig(config.Fusion),
	}
}

// ExtractOutline converts one document's fragments into an Outline. It
// returns a *model.MalformedInputError when a fragment has invalid geometry;
// every other condition (no headings, empty document) produces a valid,
// possibly minimal outline.
func (e *Engine) ExtractOutline(fragments []model.Fragment) (*model.Outline, error) {
	lines, err := e.aggregator.Aggregate(fragments)
	if err != nil {
		return nil, err
	}

	return e.OutlineFromLines(lines), nil
}

// OutlineFromLines runs the classification stages over already-aggregated
// lines. Useful when the caller has its own line source.
func (e *Engine) OutlineFromLines(lines []model.TextLine) *model.Outline {
	// Title detection and heading classification are independent: a line
	// that wins the title score can still be emitted as a heading.
	title, _ := e.title.Detect(lines)

	stats := ComputeDocumentStats(lines)
	patternVotes, statisticalVotes := e.classifierPasses(lines, stats)

	// Structural classification and fusion run in document order because
	// the structural classifier reads the outline built so far.
	var headings []model.HeadingCandidate
	var placed []PlacedHeading
	seen := make(map[string]bool)

	for i, line := range lines {
		if line.Length() > e.config.MaxHeadingLength {
			continue
		}

		votes := make([]Vote, 0, 3)
		if v, ok := patternVotes[i]; ok {
			votes = append(votes, v)
		}
		if v, ok := statisticalVotes[i]; ok {
			votes = append(votes, v)
		}
		if v, ok := e.structural.Classify(lines, i, placed); ok {
			votes = append(votes, v)
		}

		winner, ok := e.fuser.Fuse(votes)
		if !ok {
			continue
		}

		if e.config.DeduplicateHeadings {
			if seen[line.Text] {
				continue
			}
			seen[line.Text] = true
		}

		headings = append(headings, model.HeadingCandidate{
			Text:       line.Text,
			Level:      winner.Level,
			Page:       line.Page,
			Confidence: winner.Confidence,
			Y:          line.BBox.Y1,
		})
		placed = append(placed, PlacedHeading{
			Level:  winner.Level,
			Indent: line.Indent,
		})
	}

	// Document order: page ascending, then top to bottom (Y descending in
	// PDF user space).
	sort.SliceStable(headings, func(a, b int) bool {
		if headings[a].Page != headings[b].Page {
			return headings[a].Page < headings[b].Page
		}
		return headings[a].Y > headings[b].Y
	})

	return &model.Outline{
		Title:    title,
		Headings: e.fuser.Repair(headings),
	}
}

// classifierPasses runs the pattern and statistical passes over all lines,
// optionally concurrently. Both classifiers are read-only over the line
// sequence, so running them in parallel changes nothing but wall time.
func (e *Engine) classifierPasses(lines []model.TextLine, stats DocumentStats) (map[int]Vote, map[int]Vote) {
	if !e.config.ParallelClassifiers {
		return e.patternPass(lines), e.statisticalPass(lines, stats)
	}

	var patternVotes, statisticalVotes map[int]Vote
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		patternVotes = e.patternPass(lines)
	}()
	go func() {
		defer wg.Done()
		statisticalVotes = e.statisticalPass(lines, stats)
	}()
	wg.Wait()

	return patternVotes, statisticalVotes
}

// patternPass classifies every line lexically, carrying the numbered-sibling
// context forward in document order.
func (e *Engine) patternPass(lines []model.TextLine) map[int]Vote {
	votes := make(map[int]Vote)
	var ctx PatternContext
	for i, line := range lines {
		if line.Length() > e.config.MaxHeadingLength {
			continue
		}
		if v, ok := e.pattern.Classify(line, &ctx); ok {
			votes[i] = v
		}
	}
	return votes
}

// statisticalPass classifies every line against the document stats.
func (e *Engine) statisticalPass(lines []model.TextLine, stats DocumentStats) map[int]Vote {
	votes := make(map[int]Vote)
	for i, line := range lines {
		if line.Length() > e.config.MaxHeadingLength {
			continue
		}
		if v, ok := e.statistical.Classify(line, stats); ok {
			votes[i] = v
		}
	}
	return votes
}
