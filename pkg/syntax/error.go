package syntax

import (
	"slices"
	"strings"
)

// SyntaxError describes a region of input that did not match the grammar.
//
//nolint:revive // SyntaxError pairs with SyntaxNode and SyntaxKind.
type SyntaxError struct {
	// Span is the byte range of the offending input.
	Span Span `json:"span"`

	// Message states what went wrong, e.g. "incomplete italic text".
	Message string `json:"message"`

	// Hints tell the user how the error could be avoided or worked around.
	Hints []string `json:"hints,omitempty"`
}

// NewSyntaxError creates a detached error. The span is set when the error
// is placed into the tree.
func NewSyntaxError(message string) SyntaxError {
	return SyntaxError{Span: DetachedSpan(), Message: message}
}

// At returns a copy of the error placed at span.
func (e SyntaxError) At(span Span) SyntaxError {
	e.Hints = slices.Clone(e.Hints)
	e.Span = span
	return e
}

// WithHint returns a copy of the error with hint appended. The receiver's
// hint slice is never written to.
func (e SyntaxError) WithHint(hint string) SyntaxError {
	hints := make([]string, 0, len(e.Hints)+1)
	hints = append(hints, e.Hints...)
	e.Hints = append(hints, hint)
	return e
}

// Error implements the error interface.
func (e SyntaxError) Error() string {
	if len(e.Hints) == 0 {
		return e.Message
	}
	return e.Message + " (hint: " + strings.Join(e.Hints, "; ") + ")"
}

// spanlessEq reports whether the two errors are the same apart from spans.
func (e SyntaxError) spanlessEq(other SyntaxError) bool {
	return e.Message == other.Message && slices.Equal(e.Hints, other.Hints)
}
