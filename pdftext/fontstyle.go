package pdftext

import "strings"

// boldFont reports whether a font name indicates a bold face.
func boldFont(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "bold") ||
		strings.Contains(lower, "black") ||
		strings.Contains(lower, "heavy") ||
		strings.Contains(lower, "semibold") ||
		strings.Contains(lower, "demibold")
}

// italicFont reports whether a font name indicates an italic or oblique face.
func italicFont(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "italic") ||
		strings.Contains(lower, "oblique")
}
