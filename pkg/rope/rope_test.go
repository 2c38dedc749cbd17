package rope_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhinandh-s/vimwiki-syntax/pkg/rope"
)

func TestRope_Lengths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		bytes int
		chars int
		lines int
	}{
		{"empty", "", 0, 0, 1},
		{"ascii", "hello", 5, 5, 1},
		{"trailing newline", "a\n", 2, 2, 2},
		{"multibyte", "héllo wörld", 13, 11, 1},
		{"two lines", "this is a string \n and a newline", 32, 32, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := rope.New(tt.text)
			assert.Equal(t, tt.bytes, r.Len())
			assert.Equal(t, tt.chars, r.LenChars())
			assert.Equal(t, tt.lines, r.LenLines())
			assert.Equal(t, tt.text, r.String())
		})
	}
}

func TestRope_SmallChunksKeepRunesWhole(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("añ€😀\n", 20)
	r := rope.NewWithChunkSize(text, 4)

	assert.Equal(t, text, r.String())
	assert.Equal(t, len([]rune(text)), r.LenChars())
	assert.Equal(t, 21, r.LenLines())

	for i := 0; i <= len(text); i++ {
		for j := i; j <= len(text) && j < i+12; j++ {
			require.Equal(t, text[i:j], r.Slice(i, j), "slice %d..%d", i, j)
		}
	}
}

func TestRope_ByteToChar(t *testing.T) {
	t.Parallel()

	text := "aé€b"
	// Byte layout: a(0) é(1,2) €(3,4,5) b(6)
	for _, chunkSize := range []int{4, 1024} {
		r := rope.NewWithChunkSize(text, chunkSize)

		expected := map[int]int{0: 0, 1: 1, 2: 1, 3: 2, 4: 2, 5: 2, 6: 3, 7: 4}
		for b, want := range expected {
			got, ok := r.ByteToChar(b)
			require.True(t, ok)
			assert.Equal(t, want, got, "byte %d chunk size %d", b, chunkSize)
		}

		_, ok := r.ByteToChar(8)
		assert.False(t, ok)
		_, ok = r.ByteToChar(-1)
		assert.False(t, ok)
	}
}

func TestRope_LineIndex(t *testing.T) {
	t.Parallel()

	text := "first\nsecönd\n\nlast"
	r := rope.NewWithChunkSize(text, 5)

	lineTests := []struct {
		offset int
		line   int
	}{
		{0, 0}, {5, 0}, {6, 1}, {13, 1}, {14, 2}, {15, 3}, {len(text), 3},
	}
	for _, tt := range lineTests {
		got, ok := r.ByteToLine(tt.offset)
		require.True(t, ok)
		assert.Equal(t, tt.line, got, "offset %d", tt.offset)
	}

	starts := []int{0, 6, 14, 15}
	for line, want := range starts {
		got, ok := r.LineToByte(line)
		require.True(t, ok)
		assert.Equal(t, want, got, "line %d", line)
	}

	char, ok := r.LineToChar(2)
	require.True(t, ok)
	assert.Equal(t, 13, char)

	_, ok = r.LineToByte(5)
	assert.False(t, ok)
}

func TestRope_Line(t *testing.T) {
	t.Parallel()

	r := rope.New("one\r\ntwo\n\nthree")

	want := []string{"one", "two", "", "three"}
	for i, expected := range want {
		got, ok := r.Line(i)
		require.True(t, ok)
		assert.Equal(t, expected, got)
	}

	_, ok := r.Line(4)
	assert.False(t, ok)
}

func TestReader_Sequential(t *testing.T) {
	t.Parallel()

	text := "x€y\n😀"
	r := rope.NewWithChunkSize(text, 4)
	rd := r.NewReader()

	var got []rune
	for !rd.AtEnd() {
		ch, size := rd.Next()
		require.Positive(t, size)
		got = append(got, ch)
	}

	assert.Equal(t, []rune(text), got)
	assert.Equal(t, len(text), rd.Offset())

	_, size := rd.Peek()
	assert.Zero(t, size)
}

func TestRope_SlicePanicsOutOfRange(t *testing.T) {
	t.Parallel()

	r := rope.New("abc")
	assert.Panics(t, func() { r.Slice(2, 1) })
	assert.Panics(t, func() { r.Slice(0, 4) })
}
