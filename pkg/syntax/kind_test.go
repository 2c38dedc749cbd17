package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhinandh-s/vimwiki-syntax/pkg/syntax"
)

func TestSyntaxKind_Strings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "SLASH", syntax.Slash.String())
	assert.Equal(t, "INDENT_WHITESPACE", syntax.IndentWhitespace.String())
	assert.Equal(t, "UNDERLINED", syntax.Underline.String())
	assert.Equal(t, "UNKNOWN", syntax.SyntaxKind(200).String())

	assert.Equal(t, "italic", syntax.Italic.Name())
	assert.Equal(t, "end of file", syntax.EOF.Name())
	assert.Equal(t, "unknown", syntax.SyntaxKind(200).Name())
}

func TestSyntaxKind_Classes(t *testing.T) {
	t.Parallel()

	for _, kind := range []syntax.SyntaxKind{
		syntax.Asterisk, syntax.Slash, syntax.Underscore, syntax.Tilde, syntax.Hyphen, syntax.At,
	} {
		assert.True(t, kind.IsDelimiter(), kind.String())
		assert.False(t, kind.IsStructural(), kind.String())
	}

	assert.True(t, syntax.Newline.IsTrivia())
	assert.True(t, syntax.IndentWhitespace.IsTrivia())
	assert.False(t, syntax.Text.IsTrivia())

	assert.True(t, syntax.Document.IsStructural())
	assert.True(t, syntax.Heading.IsStructural())
	assert.False(t, syntax.Heading.IsPaired())
	assert.True(t, syntax.Strikethrough.IsPaired())
}

func TestSyntaxKind_PairedKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		delim syntax.SyntaxKind
		want  syntax.SyntaxKind
	}{
		{syntax.Asterisk, syntax.Bold},
		{syntax.Slash, syntax.Italic},
		{syntax.Underscore, syntax.Underline},
		{syntax.Tilde, syntax.ListItem},
		{syntax.Hyphen, syntax.Strikethrough},
	}

	for _, tt := range tests {
		got, ok := tt.delim.PairedKind()
		assert.True(t, ok, tt.delim.String())
		assert.Equal(t, tt.want, got)
	}

	_, ok := syntax.At.PairedKind()
	assert.False(t, ok, "@ does not open a span")
}
