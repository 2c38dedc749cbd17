package pretty_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhinandh-s/vimwiki-syntax/internal/ui/pretty"
	"github.com/abhinandh-s/vimwiki-syntax/pkg/syntax"
)

func oneBased(startLine, startChar, endLine, endChar uint32) syntax.Range {
	return syntax.Range{
		Start: syntax.Position{Line: startLine, Character: startChar},
		End:   syntax.Position{Line: endLine, Character: endChar},
	}
}

func TestFormatDiagnostic_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	diag := syntax.NewSyntaxError("incomplete italic text").
		WithHint("text must be wrapped in slash pairs like /text/").
		At(syntax.NewSpan(4, 11))

	result := styles.FormatDiagnostic("notes.norg", diag, oneBased(2, 5, 2, 11), pretty.DiagnosticOptions{}, "")

	assert.Contains(t, result, "notes.norg:2:5")
	assert.Contains(t, result, "error")
	assert.Contains(t, result, "incomplete italic text")
	assert.NotContains(t, result, "hint:")
	assert.NotContains(t, result, "^")
}

func TestFormatDiagnostic_WithHintsAndSource(t *testing.T) {
	styles := pretty.NewStyles(false)

	diag := syntax.NewSyntaxError("incomplete italic text").
		WithHint("text must be wrapped in slash pairs like /text/").
		At(syntax.NewSpan(5, 12))
	opts := pretty.DiagnosticOptions{ShowSource: true, ShowHints: true}

	result := styles.FormatDiagnostic("notes.norg", diag, oneBased(1, 6, 1, 12), opts, "some /italic")

	assert.Contains(t, result, "some /italic")
	assert.Contains(t, result, "hint: text must be wrapped in slash pairs like /text/")
	assert.Contains(t, result, "     ^^^^^^^\n")
}

func TestFormatSourceContext_Carets(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		line  string
		rng   syntax.Range
		caret string
	}{
		{"single character", "a / b", oneBased(1, 3, 1, 3), "  ^"},
		{"whole line", "/italic", oneBased(1, 1, 1, 7), "^^^^^^^"},
		{"empty range", "abc", oneBased(1, 3, 1, 2), "  ^"},
		{"multibyte", "héllo /wörld", oneBased(1, 7, 1, 12), "      ^^^^^^"},
		{"wide characters", "日本 /x", oneBased(1, 1, 1, 2), "^^^^"},
		{"after wide characters", "日本 /x", oneBased(1, 4, 1, 5), "     ^^"},
		{"tab", "\t/x", oneBased(1, 2, 1, 3), "    ^^"},
		{"multi line", "/a b", oneBased(1, 3, 2, 1), "  ^^"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := styles.FormatSourceContext(tt.line, tt.rng)

			lines := strings.Split(strings.TrimSuffix(result, "\n"), "\n")
			require.Len(t, lines, 2)
			assert.Equal(t, "        "+strings.ReplaceAll(tt.line, "\t", "    "), lines[0])
			assert.Equal(t, "        "+tt.caret, lines[1])
		})
	}
}

func TestFormatSourceContext_ZeroColumn(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSourceContext("test line", syntax.Range{})

	assert.Contains(t, result, "test line")
	assert.NotContains(t, result, "^")
}

func TestFormatFileHeader(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "journal/today.norg (5 errors)", styles.FormatFileHeader("journal/today.norg", 5))
	assert.Equal(t, "index.norg (1 error)", styles.FormatFileHeader("index.norg", 1))
	assert.Equal(t, "index.norg", styles.FormatFileHeader("index.norg", 0))
}

func TestFormatFileError(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatFileError("gone.norg", errors.New("read file: permission denied"))

	assert.Equal(t, "gone.norg  failed  read file: permission denied\n", result)
}
