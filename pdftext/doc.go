// Package pdftext reads positioned text from PDF files and converts it into
// the fragment form the rest of the library consumes. Each glyph run on a
// page becomes one model.Fragment carrying its text, font size, style flags,
// page number, and bounding box in PDF coordinates (origin bottom-left, Y
// increasing upward).
//
// Bold and italic are inferred from the PostScript font name, which is the
// only style signal the content stream reliably carries.
package pdftext
