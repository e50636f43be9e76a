package outline

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/contour/model"
)

// LineAggregator groups raw positioned fragments into coherent text lines.
// Grouping uses page, vertical overlap, and horizontal reading order; each
// produced line carries the dominant font size and style of its fragments.
type LineAggregator struct {
	config AggregatorConfig
}

// NewLineAggregator creates a line aggregator with default configuration.
func NewLineAggregator() *LineAggregator {
	return &LineAggregator{
		config: DefaultAggregatorConfig(),
	}
}

// NewLineAggregatorWithConfig creates a line aggregator with custom configuration.
func NewLineAggregatorWithConfig(config AggregatorConfig) *LineAggregator {
	return &LineAggregator{
		config: config,
	}
}

// Aggregate converts fragments into page-ordered text lines. The input is
// consumed in a single pass; fragment order within a line is recovered from
// X coordinates. It returns a *model.MalformedInputError if any fragment has
// non-finite or negative geometry.
func (a *LineAggregator) Aggregate(fragments []model.Fragment) ([]model.TextLine, error) {
	if err := a.validate(fragments); err != nil {
		return nil, err
	}

	// Group fragments by page, preserving input order within each page.
	pages := make(map[int][]model.Fragment)
	pageNumbers := make([]int, 0)
	for _, frag := range fragments {
		if frag.IsEmpty() {
			continue
		}
		if _, seen := pages[frag.Page]; !seen {
			pageNumbers = append(pageNumbers, frag.Page)
		}
		pages[frag.Page] = append(pages[frag.Page], frag)
	}
	sort.Ints(pageNumbers)

	var lines []model.TextLine
	for _, page := range pageNumbers {
		lines = append(lines, a.aggregatePage(pages[page])...)
	}

	return lines, nil
}

// validate rejects fragments with impossible geometry.
func (a *LineAggregator) validate(fragments []model.Fragment) error {
	for i, frag := range fragments {
		if !frag.BBox.IsFinite() {
			return &model.MalformedInputError{
				Page:   frag.Page,
				Index:  i,
				Reason: "non-finite coordinate",
			}
		}
		if frag.BBox.X0 < 0 || frag.BBox.Y0 < 0 || frag.BBox.X1 < 0 || frag.BBox.Y1 < 0 {
			return &model.MalformedInputError{
				Page:   frag.Page,
				Index:  i,
				Reason: "negative coordinate",
			}
		}
		if math.IsNaN(frag.FontSize) || math.IsInf(frag.FontSize, 0) || frag.FontSize < 0 {
			return &model.MalformedInputError{
				Page:   frag.Page,
				Index:  i,
				Reason: "invalid font size",
			}
		}
	}
	return nil
}

// aggregatePage groups one page's fragments into lines, top to bottom.
func (a *LineAggregator) aggregatePage(fragments []model.Fragment) []model.TextLine {
	if len(fragments) == 0 {
		return nil
	}

	// Sort top to bottom. PDF user space has Y growing upward, so reading
	// order is descending top edge. Stable sort preserves stream order for
	// fragments at the same height.
	sorted := make([]model.Fragment, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BBox.Y1 > sorted[j].BBox.Y1
	})

	var groups [][]model.Fragment
	var current []model.Fragment
	var currentBBox model.BBox

	for _, frag := range sorted {
		if len(current) == 0 {
			current = []model.Fragment{frag}
			currentBBox = frag.BBox
			continue
		}

		if a.sameLine(currentBBox, frag.BBox) {
			current = append(current, frag)
			currentBBox = currentBBox.Union(frag.BBox)
		} else {
			groups = append(groups, current)
			current = []model.Fragment{frag}
			currentBBox = frag.BBox
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	lines := make([]model.TextLine, 0, len(groups))
	for _, group := range groups {
		lines = append(lines, a.buildLine(group))
	}

	// Indentation is relative to the leftmost line on the page.
	leftMargin := lines[0].BBox.X0
	for _, line := range lines[1:] {
		if line.BBox.X0 < leftMargin {
			leftMargin = line.BBox.X0
		}
	}
	for i := range lines {
		lines[i].Indent = lines[i].BBox.X0 - leftMargin
	}

	return lines
}

// sameLine reports whether a fragment belongs to the line accumulated so
// far, based on vertical overlap against the smaller of the two heights.
func (a *LineAggregator) sameLine(lineBBox, fragBBox model.BBox) bool {
	overlap := lineBBox.VerticalOverlap(fragBBox)
	if overlap <= 0 {
		return false
	}

	minHeight := math.Min(lineBBox.Height(), fragBBox.Height())
	if minHeight <= 0 {
		return false
	}

	return overlap >= minHeight*a.config.MinVerticalOverlap
}

// buildLine assembles one TextLine from a group of same-line fragments.
func (a *LineAggregator) buildLine(group []model.Fragment) model.TextLine {
	// Order fragments left to right. Stable sort with a tolerance keeps
	// stream order for fragments that effectively overlap horizontally.
	sort.SliceStable(group, func(i, j int) bool {
		if math.Abs(group[i].BBox.X0-group[j].BBox.X0) < a.config.XOrderTolerance {
			return false
		}
		return group[i].BBox.X0 < group[j].BBox.X0
	})

	var sb strings.Builder
	bbox := group[0].BBox
	for i, frag := range group {
		if i > 0 {
			sb.WriteString(" ")
			bbox = bbox.Union(frag.BBox)
		}
		sb.WriteString(strings.TrimSpace(frag.Text))
	}

	size, bold, italic := dominantStyle(group)

	return model.TextLine{
		Text:     norm.NFC.String(sb.String()),
		FontSize: size,
		Bold:     bold,
		Italic:   italic,
		Page:     group[0].Page,
		BBox:     bbox,
	}
}

// dominantStyle returns the mode font size across the fragments, ties broken
// by the larger size, plus the majority bold/italic flags.
func dominantStyle(group []model.Fragment) (size float64, bold, italic bool) {
	sizeCounts := make(map[float64]int)
	boldCount := 0
	italicCount := 0

	for _, frag := range group {
		// Bucket to 0.1pt so float noise does not split the mode.
		bucket := math.Round(frag.FontSize*10) / 10
		sizeCounts[bucket]++
		if frag.Bold {
			boldCount++
		}
		if frag.Italic {
			italicCount++
		}
	}

	maxCount := 0
	for s, count := range sizeCounts {
		if count > maxCount || (count == maxCount && s > size) {
			maxCount = count
			size = s
		}
	}

	bold = boldCount*2 >= len(group)
	italic = italicCount*2 >= len(group)
	return size, bold, italic
}
