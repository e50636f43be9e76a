package contour

import (
	"fmt"

	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/outline"
	"github.com/tsawler/contour/pdftext"
	"github.com/tsawler/contour/rank"
)

// Extractor provides a fluent interface for extracting outlines from PDF
// documents. Each configuration method returns a new Extractor instance,
// making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename     string
	fragments    []model.Fragment
	hasFragments bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Extractor so chain methods stay immutable.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		fragments:    e.fragments,
		hasFragments: e.hasFragments,
		options:      e.options.clone(),
		err:          e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// WithOutlineConfig replaces the outline engine configuration.
//
// Example:
//
//	config := outline.DefaultConfig()
//	config.DeduplicateHeadings = false
//	o, err := contour.Open("doc.pdf").WithOutlineConfig(config).Outline()
func (e *Extractor) WithOutlineConfig(config outline.Config) *Extractor {
	newExt := e.clone()
	newExt.options.outlineConfig = config
	return newExt
}

// WithPDFConfig replaces the PDF text reader configuration.
//
// Example:
//
//	config := pdftext.DefaultConfig()
//	config.GapFactor = 0.5
//	o, err := contour.Open("doc.pdf").WithPDFConfig(config).Outline()
func (e *Extractor) WithPDFConfig(config pdftext.Config) *Extractor {
	newExt := e.clone()
	newExt.options.pdfConfig = config
	return newExt
}

// Parallel enables concurrent classifier passes inside the outline engine.
// Output is identical to the sequential run.
//
// Example:
//
//	o, err := contour.Open("doc.pdf").Parallel().Outline()
func (e *Extractor) Parallel() *Extractor {
	newExt := e.clone()
	newExt.options.outlineConfig.ParallelClassifiers = true
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Fragments reads the source and returns its raw text fragments.
//
// Example:
//
//	fragments, err := contour.Open("document.pdf").Fragments()
func (e *Extractor) Fragments() ([]model.Fragment, error) {
	if e.err != nil {
		return nil, e.err
	}

	if e.hasFragments {
		return e.fragments, nil
	}
	if e.filename == "" {
		return nil, fmt.Errorf("no filename specified")
	}

	extractor := pdftext.NewExtractorWithConfig(e.options.pdfConfig)
	return extractor.ExtractFile(e.filename)
}

// Lines reads the source and returns its aggregated text lines in document
// order.
//
// Example:
//
//	lines, err := contour.Open("document.pdf").Lines()
func (e *Extractor) Lines() ([]model.TextLine, error) {
	fragments, err := e.Fragments()
	if err != nil {
		return nil, err
	}

	aggregator := outline.NewLineAggregatorWithConfig(e.options.outlineConfig.Aggregator)
	return aggregator.Aggregate(fragments)
}

// Outline extracts the document's title and heading outline.
//
// Example:
//
//	o, err := contour.Open("document.pdf").Outline()
//	for _, h := range o.Headings {
//	    fmt.Printf("[%s] %s (p.%d)\n", h.Level, h.Text, h.Page)
//	}
func (e *Extractor) Outline() (*model.Outline, error) {
	fragments, err := e.Fragments()
	if err != nil {
		return nil, err
	}

	engine := outline.NewEngineWithConfig(e.options.outlineConfig)
	return engine.ExtractOutline(fragments)
}

// Headings extracts the outline and returns just its headings.
//
// Example:
//
//	headings, err := contour.Open("document.pdf").Headings()
func (e *Extractor) Headings() ([]model.HeadingCandidate, error) {
	o, err := e.Outline()
	if err != nil {
		return nil, err
	}
	return o.Headings, nil
}

// Title extracts the outline and returns just its title.
//
// Example:
//
//	title, err := contour.Open("document.pdf").Title()
func (e *Extractor) Title() (string, error) {
	o, err := e.Outline()
	if err != nil {
		return "", err
	}
	return o.Title, nil
}

// Document extracts both the outline and the lines, packaged for the
// ranking stage under the given document name.
//
// Example:
//
//	doc, err := contour.Open("report.pdf").Document("report.pdf")
//	result, err := rank.NewRanker(embedder).Rank(ctx, []rank.Document{doc}, persona, job)
func (e *Extractor) Document(name string) (rank.Document, error) {
	if e.err != nil {
		return rank.Document{}, e.err
	}

	lines, err := e.Lines()
	if err != nil {
		return rank.Document{}, err
	}

	engine := outline.NewEngineWithConfig(e.options.outlineConfig)
	return rank.Document{
		Name:    name,
		Outline: engine.OutlineFromLines(lines),
		Lines:   lines,
	}, nil
}
