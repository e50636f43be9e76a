package outline

// AggregatorConfig holds configuration for the line aggregator.
type AggregatorConfig struct {
	// MinVerticalOverlap is the minimum vertical overlap between a fragment
	// and the line it joins, as a fraction of the smaller of the two heights.
	// Default: 0.5
	MinVerticalOverlap float64

	// XOrderTolerance is the horizontal distance below which two fragments
	// are treated as equal during reading-order sorting, preserving stream
	// order for overlapping fragments. Default: 0.5 points
	XOrderTolerance float64
}

// DefaultAggregatorConfig returns sensible default configuration.
func DefaultAggregatorConfig() AggregatorConfig {
	return AggregatorConfig{
		MinVerticalOverlap: 0.5,
		XOrderTolerance:    0.5,
	}
}

// PatternConfig holds configuration for the pattern classifier.
type PatternConfig struct {
	// NumberedConfidence is the confidence assigned to explicit numbering
	// matches ("1.", "1.1", "A.", "IV."). Default: 0.9
	NumberedConfidence float64

	// KeywordConfidence is the confidence assigned to keyword-only matches.
	// Default: 0.6
	KeywordConfidence float64

	// Keywords are the heading keywords matched case-insensitively at the
	// start of a line.
	Keywords []string
}

// DefaultPatternConfig returns sensible default configuration.
func DefaultPatternConfig() PatternConfig {
	return PatternConfig{
		NumberedConfidence: 0.9,
		KeywordConfidence:  0.6,
		Keywords: []string{
			"chapter", "section", "part", "appendix",
			"introduction", "conclusion", "abstract", "summary",
			"overview", "background", "methodology", "results",
			"discussion", "references",
		},
	}
}

// StatisticalConfig holds configuration for the statistical classifier.
type StatisticalConfig struct {
	// H1Sigma, H2Sigma, and H3Sigma are the minimum deviations from the body
	// font size baseline, in standard deviations, for each level.
	// Defaults: 2.0, 1.0, 0.5
	H1Sigma float64
	H2Sigma float64
	H3Sigma float64

	// BaseConfidence is the confidence assigned to a line that clears a
	// sigma threshold, before boosts. Default: 0.7
	BaseConfidence float64

	// BoldBoost is added to the confidence of bold lines. Default: 0.1
	BoldBoost float64

	// ShortLineBoost is added to the confidence of lines narrower than
	// ShortLineWidthRatio of the typical text-block width. Default: 0.05
	ShortLineBoost float64

	// ShortLineWidthRatio is the width ratio below which a line counts as
	// short. Default: 0.6
	ShortLineWidthRatio float64
}

// DefaultStatisticalConfig returns sensible default configuration.
func DefaultStatisticalConfig() StatisticalConfig {
	return StatisticalConfig{
		H1Sigma:             2.0,
		H2Sigma:             1.0,
		H3Sigma:             0.5,
		BaseConfidence:      0.7,
		BoldBoost:           0.1,
		ShortLineBoost:      0.05,
		ShortLineWidthRatio: 0.6,
	}
}

// StructuralConfig holds configuration for the structural classifier.
type StructuralConfig struct {
	// Confidence is the fixed confidence of structural votes. It is the
	// weakest, tie-breaking signal and must stay below the other
	// classifiers' confidences. Default: 0.5
	Confidence float64

	// LookaheadLines is the number of following lines whose median length a
	// candidate must be shorter than. Default: 3
	LookaheadLines int

	// IndentTolerance is the maximum indent difference, in points, for two
	// lines to count as equally indented. Default: 2.0
	IndentTolerance float64
}

// DefaultStructuralConfig returns sensible default configuration.
func DefaultStructuralConfig() StructuralConfig {
	return StructuralConfig{
		Confidence:      0.5,
		LookaheadLines:  3,
		IndentTolerance: 2.0,
	}
}

// TitleConfig holds configuration for the title detector.
type TitleConfig struct {
	// PageWindow is the number of leading pages examined for title
	// candidates. Default: 1
	PageWindow int

	// SizeWeight scores the line's font size relative to the largest size in
	// the window. Default: 0.4
	SizeWeight float64

	// PositionWeight scores lines in the top third of the page.
	// Default: 0.2
	PositionWeight float64

	// BoldWeight scores bold lines. Default: 0.15
	BoldWeight float64

	// CenterWeight scores horizontally centered lines. Default: 0.15
	CenterWeight float64

	// CaseWeight scores all-caps or title-case lines. Default: 0.1
	CaseWeight float64

	// MinScore is the minimum score for a candidate to become the title.
	// Below it, the first non-empty line on page one is used verbatim.
	// Default: 0.35
	MinScore float64

	// CenterTolerance is the maximum distance, in points, between a line's
	// center and the content center for the line to count as centered.
	// Default: 20.0
	CenterTolerance float64
}

// DefaultTitleConfig returns sensible default configuration.
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		PageWindow:      1,
		SizeWeight:      0.4,
		PositionWeight:  0.2,
		BoldWeight:      0.15,
		CenterWeight:    0.15,
		CaseWeight:      0.1,
		MinScore:        0.35,
		CenterTolerance: 20.0,
	}
}

// FusionConfig holds configuration for vote fusion and outline repair.
type FusionConfig struct {
	// MinConfidence is the confidence below which a fused result is
	// discarded as body text. Default: 0.35
	MinConfidence float64
}

// DefaultFusionConfig returns sensible default configuration.
func DefaultFusionConfig() FusionConfig {
	return FusionConfig{
		MinConfidence: 0.35,
	}
}

// Config holds the full engine configuration. Every threshold and weight the
// pipeline uses is a named field here, so tests can tune behavior
// deterministically.
type Config struct {
	// Aggregator configures line aggregation.
	Aggregator AggregatorConfig

	// Pattern configures the pattern classifier.
	Pattern PatternConfig

	// Statistical configures the statistical classifier.
	Statistical StatisticalConfig

	// Structural configures the structural classifier.
	Structural StructuralConfig

	// Title configures the title detector.
	Title TitleConfig

	// Fusion configures vote fusion and repair.
	Fusion FusionConfig

	// MaxHeadingLength is the maximum rune count for a heading candidate.
	// Longer lines are treated as body text without classification.
	// Default: 200
	MaxHeadingLength int

	// DeduplicateHeadings suppresses repeated heading text across the
	// document, keeping the first occurrence. Default: true
	DeduplicateHeadings bool

	// ParallelClassifiers runs the pattern and statistical classifier passes
	// concurrently. This is a performance option only; results are identical
	// either way. Default: false
	ParallelClassifiers bool
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		Aggregator:          DefaultAggregatorConfig(),
		Pattern:             DefaultPatternConfig(),
		Statistical:         DefaultStatisticalConfig(),
		Structural:          DefaultStructuralConfig(),
		Title:               DefaultTitleConfig(),
		Fusion:              DefaultFusionConfig(),
		MaxHeadingLength:    200,
		DeduplicateHeadings: true,
		ParallelClassifiers: false,
	}
}
