// Package model provides the data types shared by the outline extraction
// pipeline.
//
// This package defines the values that flow between the pipeline stages: raw
// positioned [Fragment]s supplied by an external text-extraction layer,
// aggregated [TextLine]s, fused [HeadingCandidate]s, and the final [Outline].
// All types are plain values with no behavior tied to any particular PDF
// library, making them the primary API for consuming extraction results.
//
// # Pipeline Data Flow
//
// A document moves through the pipeline as:
//
//	[]Fragment -> []TextLine -> []HeadingCandidate -> Outline
//
// Fragments are produced outside the core (see the pdftext package for the
// bundled implementation). TextLines are immutable once created by the line
// aggregator. HeadingCandidates are the per-line fusion results, and the
// Outline is the ordered title + heading sequence for one document.
//
// # Heading Levels
//
// [Level] enumerates the recognized heading depths: Title, H1, H2, and H3.
// LevelNone marks body text. Levels order by depth, so comparisons like
// level > LevelH1 read as "deeper than H1".
//
// # Geometry
//
// [BBox] is an (x0, y0, x1, y1) rectangle in PDF user space (y grows upward)
// with helpers for union, overlap, and center calculations. [Point] is a 2D
// point.
//
// # Errors
//
// [MalformedInputError] reports invalid fragment geometry and identifies the
// offending fragment by page and index. It is the only error the core raises
// for input data; classifier abstentions and empty documents are normal
// control flow.
package model
