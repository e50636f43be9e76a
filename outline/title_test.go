package outline

import (
	"testing"

	"github.com/tsawler/contour/model"
)

func TestTitleDetectorPicksLargeCenteredBoldLine(t *testing.T) {
	lines := []model.TextLine{
		makeLine("Confidential draft", 9, false, 1, 72, 770, 160, 779),
		makeLine("ANNUAL REPORT 2024", 24, true, 1, 200, 720, 412, 744),
		makeLine("Prepared by the finance department for internal review only.", 11, false, 1, 72, 680, 540, 692),
		makeLine("This opening paragraph describes the scope of the report.", 11, false, 1, 72, 660, 540, 672),
	}

	detector := NewTitleDetector()
	title, index := detector.Detect(lines)

	if title != "ANNUAL REPORT 2024" {
		t.Errorf("Expected title %q, got %q", "ANNUAL REPORT 2024", title)
	}
	if index != 1 {
		t.Errorf("Expected title line index 1, got %d", index)
	}
}

func TestTitleDetectorEmptyDocument(t *testing.T) {
	detector := NewTitleDetector()

	title, index := detector.Detect(nil)
	if title != "" {
		t.Errorf("Expected empty title, got %q", title)
	}
	if index != -1 {
		t.Errorf("Expected index -1, got %d", index)
	}
}

func TestTitleDetectorWhitespaceOnlyLines(t *testing.T) {
	lines := []model.TextLine{
		makeLine("   ", 12, false, 1, 72, 720, 100, 732),
		makeLine("\t", 12, false, 1, 72, 700, 100, 712),
	}

	detector := NewTitleDetector()
	title, index := detector.Detect(lines)

	if title != "" || index != -1 {
		t.Errorf("Expected empty title for whitespace-only document, got %q at %d", title, index)
	}
}

func TestTitleDetectorFallbackToFirstLine(t *testing.T) {
	// Uniform small lines far from the top third so no candidate reaches the
	// score threshold. The first non-empty line is used verbatim.
	lines := []model.TextLine{
		makeLine("  a quiet first line  ", 10, false, 1, 72, 220, 300, 230),
		makeLine("another quiet line", 10, false, 1, 72, 200, 280, 210),
		makeLine("and a third quiet line", 10, false, 1, 72, 180, 290, 190),
	}

	detector := NewTitleDetectorWithConfig(TitleConfig{
		PageWindow:      1,
		SizeWeight:      0.4,
		PositionWeight:  0.2,
		BoldWeight:      0.15,
		CenterWeight:    0.15,
		CaseWeight:      0.1,
		MinScore:        0.95,
		CenterTolerance: 20.0,
	})
	title, index := detector.Detect(lines)

	if title != "  a quiet first line  " {
		t.Errorf("Expected first line verbatim, got %q", title)
	}
	if index != 0 {
		t.Errorf("Expected index 0, got %d", index)
	}
}

func TestTitleDetectorEmptyPageWindowFallsBackToFirstLine(t *testing.T) {
	// A blank or image-only first page leaves the page window with no text.
	// The document still gets a title, taken from the first non-empty line
	// wherever it appears.
	lines := []model.TextLine{
		makeLine("Chapter One", 18, true, 2, 180, 720, 360, 738),
		makeLine("The story begins on the second page of the file.", 11, false, 2, 72, 680, 540, 692),
	}

	detector := NewTitleDetector()
	title, index := detector.Detect(lines)

	if title != "Chapter One" {
		t.Errorf("Expected title %q, got %q", "Chapter One", title)
	}
	if index != 0 {
		t.Errorf("Expected index 0, got %d", index)
	}
}

func TestTitleDetectorIgnoresLaterPages(t *testing.T) {
	lines := []model.TextLine{
		makeLine("Quarterly Summary", 18, true, 1, 180, 720, 420, 738),
		makeLine("HUGE BANNER ON PAGE FIVE", 36, true, 5, 100, 720, 500, 756),
	}

	detector := NewTitleDetector()
	title, _ := detector.Detect(lines)

	if title != "Quarterly Summary" {
		t.Errorf("Expected title from page window, got %q", title)
	}
}

func TestIsAllCaps(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"ANNUAL REPORT 2024", true},
		{"ANNUAL REPORT", true},
		{"Annual Report", false},
		{"AB", false},
		{"2024", false},
		{"MOSTLY UPPER with one lower word", false},
	}

	for _, tt := range tests {
		if got := isAllCaps(tt.text); got != tt.want {
			t.Errorf("isAllCaps(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestIsTitleCase(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Annual Report", true},
		{"The State of the Art", false},
		{"Annual Report 2024", true},
		{"Introduction", false},
		{"a lower case phrase", false},
	}

	for _, tt := range tests {
		if got := isTitleCase(tt.text); got != tt.want {
			t.Errorf("isTitleCase(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
