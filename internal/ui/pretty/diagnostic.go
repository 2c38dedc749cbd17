package pretty

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/abhinandh-s/vimwiki-syntax/pkg/syntax"
)

const (
	// sourceIndent aligns source context under the diagnostic line.
	sourceIndent = "        "

	// tabWidth is the number of cells a tab expands to in source context.
	tabWidth = 4
)

// DiagnosticOptions selects the optional parts of a rendered diagnostic.
type DiagnosticOptions struct {
	// ShowSource prints the offending line with a caret underline.
	ShowSource bool

	// ShowHints prints each hint attached to the error.
	ShowHints bool
}

// FormatDiagnostic formats a single syntax error for terminal output.
// rng is the one-based range of the error and sourceLine the content of
// its first line.
func (s *Styles) FormatDiagnostic(
	path string,
	diag syntax.SyntaxError,
	rng syntax.Range,
	opts DiagnosticOptions,
	sourceLine string,
) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(path),
		rng.Start.Line,
		rng.Start.Character,
	)

	builder.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		location,
		s.Error.Render("error"),
		s.Message.Render(diag.Message),
	))

	if opts.ShowSource && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, rng))
	}

	if opts.ShowHints {
		for _, hint := range diag.Hints {
			builder.WriteString("    " + s.Dim.Render("hint:") + " " + s.Hint.Render(hint) + "\n")
		}
	}

	return builder.String()
}

// FormatSourceContext formats the source line with carets under the range.
// Columns are measured in display cells, so wide characters get two carets.
// Tabs are expanded to a fixed width on both lines. A range running past the line is
// underlined to the end of the line.
func (s *Styles) FormatSourceContext(line string, rng syntax.Range) string {
	var builder strings.Builder

	tab := strings.Repeat(" ", tabWidth)
	builder.WriteString(sourceIndent + s.SourceLine.Render(strings.ReplaceAll(line, "\t", tab)) + "\n")

	if rng.Start.Character == 0 {
		return builder.String()
	}

	runes := []rune(line)
	start := min(int(rng.Start.Character)-1, len(runes))
	end := len(runes)
	if rng.IsSingleLine() {
		end = min(max(int(rng.End.Character), start), len(runes))
	}

	var padding strings.Builder
	for _, r := range runes[:start] {
		if r == '\t' {
			padding.WriteString(tab)
			continue
		}
		padding.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	carets := max(runewidth.StringWidth(string(runes[start:end])), 1)

	builder.WriteString(sourceIndent + padding.String() + s.Caret.Render(strings.Repeat("^", carets)) + "\n")

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, errorCount int) string {
	header := s.FilePath.Render(path)
	switch errorCount {
	case 0:
	case 1:
		header += s.Dim.Render(" (1 error)")
	default:
		header += s.Dim.Render(fmt.Sprintf(" (%d errors)", errorCount))
	}
	return header
}

// FormatFileError formats a file that could not be read or parsed.
func (s *Styles) FormatFileError(path string, err error) string {
	return fmt.Sprintf("%s  %s  %s\n", s.FilePath.Render(path), s.Failure.Render("failed"), s.Message.Render(err.Error()))
}
