package rope

import "unicode/utf8"

// Reader walks a rope forward one rune at a time. It caches the current
// chunk, so sequential reads do not search. A Reader is not safe for
// concurrent use; create one per goroutine.
type Reader struct {
	rope   *Rope
	chunk  int
	offset int
}

// NewReader returns a Reader positioned at the start of r.
func (r *Rope) NewReader() *Reader {
	return &Reader{rope: r}
}

// Offset returns the current byte offset.
func (rd *Reader) Offset() int {
	return rd.offset
}

// AtEnd reports whether the reader has consumed the whole rope.
func (rd *Reader) AtEnd() bool {
	return rd.offset >= rd.rope.length
}

// Peek returns the rune at the current offset and its width in bytes
// without consuming it. At the end it returns (utf8.RuneError, 0).
func (rd *Reader) Peek() (rune, int) {
	if rd.AtEnd() {
		return utf8.RuneError, 0
	}

	c := rd.rope.chunks[rd.chunk]
	local := rd.offset - c.byteStart
	if local >= len(c.text) {
		// The cached chunk is exhausted; move on without searching.
		rd.chunk++
		c = rd.rope.chunks[rd.chunk]
		local = 0
	}

	return utf8.DecodeRuneInString(c.text[local:])
}

// Next consumes and returns the rune at the current offset. Invalid
// sequences advance by a single byte.
func (rd *Reader) Next() (rune, int) {
	ch, size := rd.Peek()
	rd.offset += size
	return ch, size
}
