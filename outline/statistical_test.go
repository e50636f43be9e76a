package outline

import (
	"math"
	"testing"

	"github.com/tsawler/contour/model"
)

// almostEqual compares floats with a small tolerance.
func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// makeLine creates a text line for classifier tests.
func makeLine(text string, fontSize float64, bold bool, page int, x0, y0, x1, y1 float64) model.TextLine {
	return model.TextLine{
		Text:     text,
		FontSize: fontSize,
		Bold:     bold,
		Page:     page,
		BBox:     model.NewBBox(x0, y0, x1, y1),
	}
}

// bodyLines builds a block of uniform body text lines plus the given extras.
func bodyLines(count int, size float64, extras ...model.TextLine) []model.TextLine {
	var lines []model.TextLine
	y := 700.0
	for i := 0; i < count; i++ {
		lines = append(lines, makeLine("This is an ordinary body text line for the test.", size, false, 1, 72, y-12, 540, y))
		y -= 20
	}
	return append(lines, extras...)
}

func TestComputeDocumentStatsEmpty(t *testing.T) {
	stats := ComputeDocumentStats(nil)
	if stats.LineCount != 0 {
		t.Errorf("Expected 0 lines, got %d", stats.LineCount)
	}
	if stats.Sigma != 0 {
		t.Errorf("Expected sigma 0, got %f", stats.Sigma)
	}
}

func TestComputeDocumentStatsMode(t *testing.T) {
	lines := bodyLines(10, 11,
		makeLine("Big Heading", 18, true, 1, 72, 738, 250, 756),
		makeLine("Another Heading", 16, true, 1, 72, 400, 250, 416),
	)

	stats := ComputeDocumentStats(lines)
	if stats.BodyFontSize != 11 {
		t.Errorf("Expected body size 11, got %f", stats.BodyFontSize)
	}
	if stats.Sigma == 0 {
		t.Error("Expected nonzero sigma with off-mode sizes present")
	}
	if stats.LineCount != 12 {
		t.Errorf("Expected 12 lines, got %d", stats.LineCount)
	}
}

func TestComputeDocumentStatsUniformSizes(t *testing.T) {
	stats := ComputeDocumentStats(bodyLines(8, 12))
	if stats.BodyFontSize != 12 {
		t.Errorf("Expected body size 12, got %f", stats.BodyFontSize)
	}
	if stats.Sigma != 0 {
		t.Errorf("Expected sigma 0 for uniform document, got %f", stats.Sigma)
	}
}

func TestStatisticalAbstainsOnZeroSigma(t *testing.T) {
	classifier := NewStatisticalClassifier()
	stats := DocumentStats{BodyFontSize: 12, Sigma: 0, TypicalBlockWidth: 468}

	line := makeLine("Could Be A Heading", 12, true, 1, 72, 700, 200, 712)
	if _, ok := classifier.Classify(line, stats); ok {
		t.Error("Expected abstention when sigma is zero")
	}
}

func TestStatisticalLevelThresholds(t *testing.T) {
	// Baseline 10pt with sigma 2: H1 at >= 14, H2 at >= 12, H3 at >= 11.
	stats := DocumentStats{BodyFontSize: 10, Sigma: 2, TypicalBlockWidth: 468}
	classifier := NewStatisticalClassifier()

	tests := []struct {
		name     string
		fontSize float64
		expected model.Level
		votes    bool
	}{
		{"two sigma is H1", 14, model.LevelH1, true},
		{"above two sigma is H1", 18, model.LevelH1, true},
		{"one sigma is H2", 12, model.LevelH2, true},
		{"half sigma is H3", 11, model.LevelH3, true},
		{"below half sigma abstains", 10.5, model.LevelNone, false},
		{"body size abstains", 10, model.LevelNone, false},
		{"smaller than body abstains", 8, model.LevelNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := makeLine("Heading text", tt.fontSize, false, 1, 72, 700, 460, 700+tt.fontSize)
			vote, ok := classifier.Classify(line, stats)
			if ok != tt.votes {
				t.Fatalf("voted=%v, want %v", ok, tt.votes)
			}
			if ok && vote.Level != tt.expected {
				t.Errorf("level = %s, want %s", vote.Level, tt.expected)
			}
		})
	}
}

func TestStatisticalConfidenceBoosts(t *testing.T) {
	stats := DocumentStats{BodyFontSize: 10, Sigma: 2, TypicalBlockWidth: 468}
	classifier := NewStatisticalClassifier()

	// Plain oversized line: base confidence only.
	plain := makeLine("Heading", 14, false, 1, 72, 700, 460, 714)
	vote, ok := classifier.Classify(plain, stats)
	if !ok {
		t.Fatal("Expected vote")
	}
	if !almostEqual(vote.Confidence, 0.7) {
		t.Errorf("Expected base confidence 0.7, got %f", vote.Confidence)
	}

	// Bold adds 0.1.
	bold := makeLine("Heading", 14, true, 1, 72, 700, 460, 714)
	vote, _ = classifier.Classify(bold, stats)
	if !almostEqual(vote.Confidence, 0.8) {
		t.Errorf("Expected 0.8 with bold boost, got %f", vote.Confidence)
	}

	// A line narrower than 60% of the typical block width adds 0.05.
	short := makeLine("Heading", 14, true, 1, 72, 700, 250, 714)
	vote, _ = classifier.Classify(short, stats)
	if !almostEqual(vote.Confidence, 0.85) {
		t.Errorf("Expected 0.85 with bold and short-line boosts, got %f", vote.Confidence)
	}

	if vote.Rationale != RationaleFontSize {
		t.Errorf("Expected rationale %q, got %q", RationaleFontSize, vote.Rationale)
	}
	if vote.Source != SourceStatistical {
		t.Errorf("Expected statistical source, got %s", vote.Source)
	}
}

func TestStatisticalConfidenceCap(t *testing.T) {
	config := DefaultStatisticalConfig()
	config.BaseConfidence = 0.95
	classifier := NewStatisticalClassifierWithConfig(config)
	stats := DocumentStats{BodyFontSize: 10, Sigma: 2, TypicalBlockWidth: 468}

	line := makeLine("Heading", 16, true, 1, 72, 700, 200, 716)
	vote, ok := classifier.Classify(line, stats)
	if !ok {
		t.Fatal("Expected vote")
	}
	if !almostEqual(vote.Confidence, 1.0) {
		t.Errorf("Expected confidence capped at 1.0, got %f", vote.Confidence)
	}
}
