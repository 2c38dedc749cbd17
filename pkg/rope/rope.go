// Package rope provides an immutable chunked text buffer.
//
// A Rope splits its text into chunks that never straddle a UTF-8 sequence
// and keeps cumulative byte, character and newline counts per chunk, so
// slicing and offset conversions cost a binary search plus a scan of a
// single chunk instead of a scan of the whole document.
package rope

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultChunkSize is the target chunk length in bytes.
const DefaultChunkSize = 1024

// Rope is an immutable text buffer. It is safe for concurrent readers.
type Rope struct {
	chunks []chunk
	length int
	chars  int
	lines  int
}

type chunk struct {
	text string

	// Offsets of the chunk start, counted over the whole rope.
	byteStart int
	charStart int
	lineStart int // newlines before this chunk
}

// New builds a rope from text using DefaultChunkSize.
func New(text string) *Rope {
	return NewWithChunkSize(text, DefaultChunkSize)
}

// NewWithChunkSize builds a rope whose chunks are at most size bytes long,
// extended only as far as needed to keep UTF-8 sequences whole.
func NewWithChunkSize(text string, size int) *Rope {
	if size < utf8.UTFMax {
		size = utf8.UTFMax
	}

	r := &Rope{length: len(text)}

	var chars, lines int
	for start := 0; start < len(text); {
		end := min(start+size, len(text))
		// Back off to a rune boundary; continuation bytes are 10xxxxxx.
		for end < len(text) && end > start && !utf8.RuneStart(text[end]) {
			end--
		}
		if end == start {
			end = min(start+size, len(text))
		}

		part := text[start:end]
		r.chunks = append(r.chunks, chunk{
			text:      part,
			byteStart: start,
			charStart: chars,
			lineStart: lines,
		})
		chars += utf8.RuneCountInString(part)
		lines += strings.Count(part, "\n")
		start = end
	}

	r.chars = chars
	r.lines = lines + 1

	return r
}

// Len returns the length of the text in bytes.
func (r *Rope) Len() int {
	return r.length
}

// LenChars returns the number of characters (runes) in the text.
func (r *Rope) LenChars() int {
	return r.chars
}

// LenLines returns the number of lines. Text ending in a newline has a
// final empty line, and empty text has one line.
func (r *Rope) LenLines() int {
	return r.lines
}

// String returns the whole text.
func (r *Rope) String() string {
	return r.Slice(0, r.length)
}

// chunkAt returns the index of the chunk holding byte offset b.
// An offset equal to Len maps to the last chunk.
func (r *Rope) chunkAt(b int) int {
	idx := sort.Search(len(r.chunks), func(i int) bool {
		return r.chunks[i].byteStart > b
	}) - 1
	if idx < 0 {
		idx = 0
	}
	return idx
}

// Slice returns the text between byte offsets start and end.
// It panics if the range is out of bounds, like slicing a string.
func (r *Rope) Slice(start, end int) string {
	if start < 0 || end > r.length || start > end {
		panic("rope: slice bounds out of range")
	}
	if start == end {
		return ""
	}

	first := r.chunkAt(start)
	last := r.chunkAt(end - 1)

	if first == last {
		c := r.chunks[first]
		return c.text[start-c.byteStart : end-c.byteStart]
	}

	var builder strings.Builder
	builder.Grow(end - start)
	for i := first; i <= last; i++ {
		c := r.chunks[i]
		lo := max(start-c.byteStart, 0)
		hi := min(end-c.byteStart, len(c.text))
		builder.WriteString(c.text[lo:hi])
	}
	return builder.String()
}

// ByteToChar returns the index of the character containing byte offset b.
// An offset equal to Len returns LenChars. The second result is false if b
// is outside [0, Len].
func (r *Rope) ByteToChar(b int) (int, bool) {
	if b < 0 || b > r.length {
		return 0, false
	}
	if b == r.length {
		return r.chars, true
	}

	c := r.chunks[r.chunkAt(b)]
	local := b - c.byteStart

	count := 0
	for i := 0; i <= local; {
		_, size := utf8.DecodeRuneInString(c.text[i:])
		if i+size > local {
			break
		}
		count++
		i += size
	}

	return c.charStart + count, true
}

// ByteToLine returns the zero-based line holding byte offset b.
// The second result is false if b is outside [0, Len].
func (r *Rope) ByteToLine(b int) (int, bool) {
	if b < 0 || b > r.length {
		return 0, false
	}
	if r.length == 0 {
		return 0, true
	}

	c := r.chunks[r.chunkAt(b)]
	local := min(b-c.byteStart, len(c.text))

	return c.lineStart + strings.Count(c.text[:local], "\n"), true
}

// LineToByte returns the byte offset where zero-based line starts.
// Line LenLines is accepted and maps to Len.
func (r *Rope) LineToByte(line int) (int, bool) {
	if line < 0 || line > r.lines {
		return 0, false
	}
	if line == 0 {
		return 0, true
	}
	if line == r.lines {
		return r.length, true
	}

	// The last chunk whose preceding newlines are fewer than line holds the
	// newline that ends line-1.
	idx := sort.Search(len(r.chunks), func(i int) bool {
		return r.chunks[i].lineStart >= line
	}) - 1
	c := r.chunks[idx]

	seen := c.lineStart
	for i := 0; i < len(c.text); i++ {
		if c.text[i] != '\n' {
			continue
		}
		seen++
		if seen == line {
			return c.byteStart + i + 1, true
		}
	}

	return 0, false
}

// LineToChar returns the character index where zero-based line starts.
func (r *Rope) LineToChar(line int) (int, bool) {
	b, ok := r.LineToByte(line)
	if !ok {
		return 0, false
	}
	return r.ByteToChar(b)
}

// Line returns the content of zero-based line without its line ending.
func (r *Rope) Line(line int) (string, bool) {
	start, ok := r.LineToByte(line)
	if !ok || line == r.lines {
		return "", false
	}

	end := r.length
	if next, ok := r.LineToByte(line + 1); ok && line+1 < r.lines {
		end = next - 1
	}

	text := r.Slice(start, end)
	return strings.TrimSuffix(text, "\r"), true
}
