package model

import "fmt"

// MalformedInputError reports a fragment with invalid geometry, such as a
// non-finite or negative coordinate. It aborts processing of the current
// document only; other documents in a batch are unaffected.
type MalformedInputError struct {
	// Page is the 1-based page number of the offending fragment.
	Page int

	// Index is the fragment's position in the input sequence.
	Index int

	// Reason describes what was wrong with the fragment.
	Reason string
}

// Error implements the error interface.
func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed fragment %d on page %d: %s", e.Index, e.Page, e.Reason)
}
