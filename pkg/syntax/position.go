package syntax

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/abhinandh-s/vimwiki-syntax/pkg/rope"
)

// Position is a line and character offset in a text document, placed
// between two characters like an insert cursor. Whether both fields count
// from zero or one depends on the function that produced it.
type Position struct {
	Line      uint32 `json:"line"`
	Character uint32 `json:"character"`
}

// Range is a pair of positions.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// IsSingleLine returns true if start and end are on the same line.
func (r Range) IsSingleLine() bool {
	return r.Start.Line == r.End.Line
}

// String formats the range as "line:char-line:char".
func (r Range) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", r.Start.Line, r.Start.Character, r.End.Line, r.End.Character)
}

// ZeroBasedRange maps the span onto text with zero-based lines and
// characters, the convention of editor protocols. Characters are counted in
// runes, never bytes.
func (s Span) ZeroBasedRange(text string) (Range, error) {
	return s.ZeroBasedRangeIn(rope.New(text))
}

// ZeroBasedRangeIn is ZeroBasedRange over an existing rope.
func (s Span) ZeroBasedRangeIn(r *rope.Rope) (Range, error) {
	start, err := zeroBasedPosition(r, s.Start)
	if err != nil {
		return Range{}, fmt.Errorf("start of %s: %w", s, err)
	}

	end, err := zeroBasedPosition(r, s.End)
	if err != nil {
		return Range{}, fmt.Errorf("end of %s: %w", s, err)
	}

	return Range{Start: start, End: end}, nil
}

// OneBasedRange maps the span onto text with one-based lines and
// characters for human-facing diagnostics. The end character names the
// last character inside the span, so a span over "this is a string" maps
// to 1:1-1:16.
func (s Span) OneBasedRange(text string) (Range, error) {
	return s.OneBasedRangeIn(rope.New(text))
}

// OneBasedRangeIn is OneBasedRange over an existing rope.
func (s Span) OneBasedRangeIn(r *rope.Rope) (Range, error) {
	zero, err := s.ZeroBasedRangeIn(r)
	if err != nil {
		return Range{}, err
	}

	return Range{
		Start: Position{Line: zero.Start.Line + 1, Character: zero.Start.Character + 1},
		End:   Position{Line: zero.End.Line + 1, Character: zero.End.Character},
	}, nil
}

func zeroBasedPosition(r *rope.Rope, offset int) (Position, error) {
	line, ok := r.ByteToLine(offset)
	if !ok {
		return Position{}, fmt.Errorf("%w: offset %d in %d bytes", ErrOutOfBounds, offset, r.Len())
	}

	char, ok := r.ByteToChar(offset)
	if !ok {
		return Position{}, fmt.Errorf("%w: offset %d in %d bytes", ErrOutOfBounds, offset, r.Len())
	}

	lineStart, ok := r.LineToChar(line)
	if !ok {
		return Position{}, fmt.Errorf("%w: line %d", ErrOutOfBounds, line)
	}

	lineNum, err := safecast.Conv[uint32](line)
	if err != nil {
		return Position{}, fmt.Errorf("line %d: %w", line, err)
	}

	column, err := safecast.Conv[uint32](max(char-lineStart, 0))
	if err != nil {
		return Position{}, fmt.Errorf("character %d: %w", char-lineStart, err)
	}

	return Position{Line: lineNum, Character: column}, nil
}
