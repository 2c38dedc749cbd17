package syntax

import (
	"errors"
	"fmt"

	"github.com/abhinandh-s/vimwiki-syntax/pkg/rope"
)

// ErrOutOfBounds is returned when a span does not fit inside the text it is
// mapped against.
var ErrOutOfBounds = errors.New("span out of bounds")

// Span is a half-open byte range [Start, End) into the original source.
type Span struct {
	// Start is the byte offset where the range begins (inclusive).
	Start int

	// End is the byte offset where the range ends (exclusive).
	End int
}

// NewSpan returns the span [start, end). It panics if start is negative or
// greater than end; spans are built by the lexer and parser, so an invalid
// one is a bug rather than bad input.
func NewSpan(start, end int) Span {
	if start < 0 || start > end {
		panic(fmt.Sprintf("syntax: invalid span %d..%d", start, end))
	}
	return Span{Start: start, End: end}
}

// DetachedSpan returns the sentinel used for nodes that were not produced by
// scanning, such as a SyntaxError created before it is placed. It is {1, 1}
// so it cannot be mistaken for the real empty span at offset 0.
func DetachedSpan() Span {
	return Span{Start: 1, End: 1}
}

// IsDetached reports whether s is the detached sentinel.
func (s Span) IsDetached() bool {
	return s == DetachedSpan()
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains returns true if offset lies within the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Join returns the smallest span covering both s and other.
func (s Span) Join(other Span) Span {
	return Span{Start: min(s.Start, other.Start), End: max(s.End, other.End)}
}

// String formats the span the way token dumps print it.
func (s Span) String() string {
	return fmt.Sprintf("[ span: %d..%d ]", s.Start, s.End)
}

// Slice returns the bytes of text covered by the span.
func (s Span) Slice(text string) (string, error) {
	if s.End > len(text) || s.Start < 0 || s.Start > s.End {
		return "", fmt.Errorf("%w: %d..%d in %d bytes", ErrOutOfBounds, s.Start, s.End, len(text))
	}
	return text[s.Start:s.End], nil
}

// CharSpan converts the span from byte offsets to character offsets.
func (s Span) CharSpan(text string) (Span, error) {
	return s.CharSpanIn(rope.New(text))
}

// CharSpanIn is CharSpan over an existing rope.
func (s Span) CharSpanIn(r *rope.Rope) (Span, error) {
	start, end, err := s.charBounds(r)
	if err != nil {
		return Span{}, err
	}
	return Span{Start: start, End: end}, nil
}

// CharPosition returns the one-based character offset of the span start and
// the span length in characters, for human-facing diagnostics.
func (s Span) CharPosition(text string) (int, int, error) {
	return s.CharPositionIn(rope.New(text))
}

// CharPositionIn is CharPosition over an existing rope.
func (s Span) CharPositionIn(r *rope.Rope) (int, int, error) {
	start, end, err := s.charBounds(r)
	if err != nil {
		return 0, 0, err
	}
	return start + 1, max(end-start, 0), nil
}

func (s Span) charBounds(r *rope.Rope) (int, int, error) {
	start, ok := r.ByteToChar(s.Start)
	if !ok {
		return 0, 0, s.outOfBounds(r)
	}
	end, ok := r.ByteToChar(s.End)
	if !ok {
		return 0, 0, s.outOfBounds(r)
	}
	return start, end, nil
}

func (s Span) outOfBounds(r *rope.Rope) error {
	return fmt.Errorf("%w: %d..%d in %d bytes", ErrOutOfBounds, s.Start, s.End, r.Len())
}
