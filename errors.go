package mdblock

import "errors"

// Sentinel errors for parsing operations.
//
// Malformed Markdown is never an error: the block grammar is total, so any
// input maps to some tree. The only failure class is resource exhaustion
// from adversarial container nesting.
var (
	// ErrNestingTooDeep is returned when container nesting exceeds the
	// configured recursion ceiling (see WithMaxDepth).
	ErrNestingTooDeep = errors.New("block nesting too deep")
)
