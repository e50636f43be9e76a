// Package contour extracts structured outlines (title plus H1-H3 headings)
// from PDF documents whose formatting is unreliable, and ranks the resulting
// sections by relevance to a persona and task.
//
// Basic usage:
//
//	outline, err := contour.Open("document.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(outline.Title)
//
// With options:
//
//	config := outline.DefaultConfig()
//	config.MaxHeadingLength = 120
//	o, err := contour.Open("report.pdf").
//	    WithOutlineConfig(config).
//	    Outline()
//
// The lower-level outline, pdftext, and rank packages are available for
// callers that need direct access to the pipeline stages.
package contour

import (
	"github.com/tsawler/contour/model"
)

// Open prepares a PDF file for extraction and returns an Extractor for
// fluent configuration. The file is not read until a terminal operation
// such as Outline() runs.
//
// Example:
//
//	outline, err := contour.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromFragments creates an Extractor over fragments the caller already has,
// bypassing PDF reading. Useful when fragments come from another source or
// from tests.
//
// Example:
//
//	outline, err := contour.FromFragments(fragments).Outline()
func FromFragments(fragments []model.Fragment) *Extractor {
	return &Extractor{
		fragments:    fragments,
		hasFragments: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	o := contour.Must(contour.Open("document.pdf").Outline())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
