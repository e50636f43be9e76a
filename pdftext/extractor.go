package pdftext

import (
	"fmt"
	"io"
	"math"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/contour/model"
)

// Config holds configuration for PDF text extraction.
type Config struct {
	// YTolerance is the maximum baseline difference, in points, for two
	// glyphs to belong to the same run. Default: 0.5
	YTolerance float64

	// GapFactor is the maximum horizontal gap between consecutive glyphs,
	// as a fraction of the font size, before a new run starts. Gaps wider
	// than this are treated as word or column breaks. Default: 0.3
	GapFactor float64
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		YTolerance: 0.5,
		GapFactor:  0.3,
	}
}

// Extractor reads positioned text from PDF files.
type Extractor struct {
	config Config
}

// NewExtractor creates an extractor with default configuration.
func NewExtractor() *Extractor {
	return &Extractor{
		config: DefaultConfig(),
	}
}

// NewExtractorWithConfig creates an extractor with custom configuration.
func NewExtractorWithConfig(config Config) *Extractor {
	return &Extractor{
		config: config,
	}
}

// ExtractFile reads the PDF at path and returns its text fragments in
// content-stream order, page by page.
func (e *Extractor) ExtractFile(path string) ([]model.Fragment, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	return e.extract(reader)
}

// ExtractReader reads a PDF from an io.ReaderAt with the given size.
func (e *Extractor) ExtractReader(r io.ReaderAt, size int64) ([]model.Fragment, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}

	return e.extract(reader)
}

func (e *Extractor) extract(reader *pdf.Reader) ([]model.Fragment, error) {
	var fragments []model.Fragment

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		fragments = append(fragments, e.fragmentsFromPage(i, page.Content().Text)...)
	}

	return fragments, nil
}

// fragmentsFromPage merges consecutive glyphs sharing a font, size, and
// baseline into word-level fragments. A gap wider than GapFactor times the
// font size, or any change of font or baseline, starts a new fragment.
func (e *Extractor) fragmentsFromPage(pageNum int, texts []pdf.Text) []model.Fragment {
	var fragments []model.Fragment

	var run *model.Fragment
	var lastEnd float64
	var lastFont string

	flush := func() {
		if run != nil && !run.IsEmpty() {
			fragments = append(fragments, *run)
		}
		run = nil
	}

	for _, t := range texts {
		if t.S == "" || t.S == "\n" {
			continue
		}

		continues := run != nil &&
			t.Font == lastFont &&
			t.FontSize == run.FontSize &&
			math.Abs(t.Y-run.BBox.Y0) <= e.config.YTolerance &&
			t.X >= lastEnd-e.config.YTolerance &&
			t.X-lastEnd <= t.FontSize*e.config.GapFactor

		if continues {
			run.Text += t.S
			run.BBox.X1 = t.X + t.W
		} else {
			flush()
			run = &model.Fragment{
				Text:     t.S,
				FontSize: t.FontSize,
				Bold:     boldFont(t.Font),
				Italic:   italicFont(t.Font),
				Page:     pageNum,
				// The content stream gives a baseline, not a box. Approximate
				// the glyph box from the baseline and the nominal size.
				BBox: model.NewBBox(t.X, t.Y, t.X+t.W, t.Y+t.FontSize),
			}
			lastFont = t.Font
		}
		lastEnd = t.X + t.W
	}
	flush()

	return fragments
}
