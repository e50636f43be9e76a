package contour

import (
	"github.com/tsawler/contour/outline"
	"github.com/tsawler/contour/pdftext"
)

// ExtractOptions holds configuration for outline extraction.
type ExtractOptions struct {
	// outlineConfig tunes the outline engine.
	outlineConfig outline.Config

	// pdfConfig tunes the PDF text reader.
	pdfConfig pdftext.Config
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		outlineConfig: outline.DefaultConfig(),
		pdfConfig:     pdftext.DefaultConfig(),
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		outlineConfig: o.outlineConfig,
		pdfConfig:     o.pdfConfig,
	}
}
