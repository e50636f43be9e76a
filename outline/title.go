package outline

import (
	"math"
	"strings"
	"unicode"

	"github.com/tsawler/contour/model"
)

// TitleDetector picks the single best document title from early-page
// candidates using a weighted heuristic score. It runs once per document,
// independently of the heading classifiers, and always produces a title:
// when no candidate scores above the threshold the first non-empty line in
// the page window is used verbatim, when the window itself is empty (front
// matter pages with no text) the first non-empty line anywhere is used, and
// only an entirely empty document yields the empty string.
type TitleDetector struct {
	config TitleConfig
}

// NewTitleDetector creates a title detector with default configuration.
func NewTitleDetector() *TitleDetector {
	return &TitleDetector{
		config: DefaultTitleConfig(),
	}
}

// NewTitleDetectorWithConfig creates a title detector with custom configuration.
func NewTitleDetectorWithConfig(config TitleConfig) *TitleDetector {
	return &TitleDetector{
		config: config,
	}
}

// Detect returns the document title and the index of the chosen line in the
// input slice, or -1 when the title did not come from a line (empty
// document).
func (d *TitleDetector) Detect(lines []model.TextLine) (string, int) {
	window := d.windowIndices(lines)
	if len(window) == 0 {
		// Nothing within the page window. Take the first non-empty line
		// of the document so only an empty document stays untitled.
		for i, line := range lines {
			if !line.IsEmpty() {
				return line.Text, i
			}
		}
		return "", -1
	}

	// Page extent and content center, estimated from the window itself so
	// the detector needs no page geometry from the caller.
	top := lines[window[0]].BBox.Y1
	bottom := lines[window[0]].BBox.Y0
	left := lines[window[0]].BBox.X0
	right := lines[window[0]].BBox.X1
	maxSize := 0.0
	for _, i := range window {
		b := lines[i].BBox
		top = math.Max(top, b.Y1)
		bottom = math.Min(bottom, b.Y0)
		left = math.Min(left, b.X0)
		right = math.Max(right, b.X1)
		maxSize = math.Max(maxSize, lines[i].FontSize)
	}
	contentCenter := (left + right) / 2
	topThird := top - (top-bottom)/3

	bestScore := -1.0
	bestIndex := -1
	for _, i := range window {
		score := d.score(lines[i], maxSize, topThird, contentCenter)
		if score > bestScore {
			bestScore = score
			bestIndex = i
		}
	}

	if bestIndex >= 0 && bestScore >= d.config.MinScore {
		return lines[bestIndex].Text, bestIndex
	}

	// Fallback: the first non-empty line, verbatim.
	return lines[window[0]].Text, window[0]
}

// windowIndices returns the indices of non-empty lines within the page
// window, in document order.
func (d *TitleDetector) windowIndices(lines []model.TextLine) []int {
	var window []int
	for i, line := range lines {
		if line.Page > d.config.PageWindow {
			break
		}
		if line.IsEmpty() {
			continue
		}
		window = append(window, i)
	}
	return window
}

// score computes the weighted title score for one line.
func (d *TitleDetector) score(line model.TextLine, maxSize, topThird, contentCenter float64) float64 {
	score := 0.0

	if maxSize > 0 {
		score += (line.FontSize / maxSize) * d.config.SizeWeight
	}

	if line.BBox.Center().Y >= topThird {
		score += d.config.PositionWeight
	}

	if line.Bold {
		score += d.config.BoldWeight
	}

	if math.Abs(line.BBox.Center().X-contentCenter) <= d.config.CenterTolerance {
		score += d.config.CenterWeight
	}

	if isAllCaps(line.Text) || isTitleCase(line.Text) {
		score += d.config.CaseWeight
	}

	return score
}

// isAllCaps reports whether the text is predominantly upper case. Very short
// strings never qualify.
func isAllCaps(text string) bool {
	text = strings.TrimSpace(text)

	upper := 0
	lower := 0
	for _, r := range text {
		switch {
		case unicode.IsUpper(r):
			upper++
		case unicode.IsLower(r):
			lower++
		}
	}

	if upper+lower < 3 {
		return false
	}
	return lower == 0 || float64(upper)/float64(upper+lower) > 0.9
}

// isTitleCase reports whether most words start with an upper-case letter.
func isTitleCase(text string) bool {
	words := strings.Fields(text)
	if len(words) < 2 {
		return false
	}

	capitalized := 0
	for _, w := range words {
		r := []rune(w)[0]
		if unicode.IsUpper(r) || unicode.IsDigit(r) {
			capitalized++
		}
	}
	return float64(capitalized)/float64(len(words)) >= 0.75
}
