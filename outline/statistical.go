package outline

import (
	"math"
	"sort"

	"github.com/tsawler/contour/model"
)

// DocumentStats holds the font statistics the statistical classifier scores
// against. Stats are computed once per document and are read-only afterward.
type DocumentStats struct {
	// BodyFontSize is the mode font size across all lines, assumed to be
	// the body text size.
	BodyFontSize float64

	// Sigma is the standard deviation of font sizes among lines whose size
	// differs from the mode. Zero means the document uses a single size.
	Sigma float64

	// TypicalBlockWidth is the median width of body-size lines, used to
	// recognize short heading-like lines.
	TypicalBlockWidth float64

	// LineCount is the number of lines the stats were computed from.
	LineCount int
}

// ComputeDocumentStats derives the font-size baseline for a document.
func ComputeDocumentStats(lines []model.TextLine) DocumentStats {
	stats := DocumentStats{LineCount: len(lines)}
	if len(lines) == 0 {
		return stats
	}

	// Mode font size, bucketed to 0.1pt. Ties go to the larger size so a
	// document split evenly between two sizes baselines on the bigger one.
	counts := make(map[float64]int)
	for _, line := range lines {
		bucket := math.Round(line.FontSize*10) / 10
		counts[bucket]++
	}
	maxCount := 0
	for size, count := range counts {
		if count > maxCount || (count == maxCount && size > stats.BodyFontSize) {
			maxCount = count
			stats.BodyFontSize = size
		}
	}

	// Standard deviation among off-mode lines only. A single-size document
	// therefore has sigma zero and the classifier abstains.
	var deviations []float64
	for _, line := range lines {
		bucket := math.Round(line.FontSize*10) / 10
		if bucket != stats.BodyFontSize {
			deviations = append(deviations, line.FontSize-stats.BodyFontSize)
		}
	}
	if len(deviations) > 0 {
		var sum float64
		for _, d := range deviations {
			sum += d * d
		}
		stats.Sigma = math.Sqrt(sum / float64(len(deviations)))
	}

	// Median width of body-size lines approximates the text-block width.
	var widths []float64
	for _, line := range lines {
		bucket := math.Round(line.FontSize*10) / 10
		if bucket == stats.BodyFontSize {
			widths = append(widths, line.BBox.Width())
		}
	}
	if len(widths) == 0 {
		for _, line := range lines {
			widths = append(widths, line.BBox.Width())
		}
	}
	sort.Float64s(widths)
	stats.TypicalBlockWidth = widths[len(widths)/2]

	return stats
}

// StatisticalClassifier scores lines by how far their font size deviates
// from the document's body-text baseline, boosted by boldness and short line
// width. When the document has no size variance it abstains entirely.
type StatisticalClassifier struct {
	config StatisticalConfig
}

// NewStatisticalClassifier creates a statistical classifier with default configuration.
func NewStatisticalClassifier() *StatisticalClassifier {
	return &StatisticalClassifier{
		config: DefaultStatisticalConfig(),
	}
}

// NewStatisticalClassifierWithConfig creates a statistical classifier with custom configuration.
func NewStatisticalClassifierWithConfig(config StatisticalConfig) *StatisticalClassifier {
	return &StatisticalClassifier{
		config: config,
	}
}

// Classify scores one line against the document stats. It returns the vote
// and true, or a zero Vote and false when the classifier abstains.
func (c *StatisticalClassifier) Classify(line model.TextLine, stats DocumentStats) (Vote, bool) {
	if stats.Sigma == 0 {
		// Uniform font sizes carry no signal; let the other classifiers
		// decide.
		return Vote{}, false
	}

	deviation := line.FontSize - stats.BodyFontSize

	var level model.Level
	switch {
	case deviation >= c.config.H1Sigma*stats.Sigma:
		level = model.LevelH1
	case deviation >= c.config.H2Sigma*stats.Sigma:
		level = model.LevelH2
	case deviation >= c.config.H3Sigma*stats.Sigma:
		level = model.LevelH3
	default:
		return Vote{}, false
	}

	confidence := c.config.BaseConfidence
	if line.Bold {
		confidence += c.config.BoldBoost
	}
	if stats.TypicalBlockWidth > 0 &&
		line.BBox.Width() < stats.TypicalBlockWidth*c.config.ShortLineWidthRatio {
		confidence += c.config.ShortLineBoost
	}
	if confidence > 1.0 {
		confidence = 1.0
	}

	return Vote{
		Source:     SourceStatistical,
		Level:      level,
		Confidence: confidence,
		Rationale:  RationaleFontSize,
	}, true
}
