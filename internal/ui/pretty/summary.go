package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhinandh-s/vimwiki-syntax/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// plural picks the singular or plural word for count.
func plural(count int, singular, pluralWord string) string {
	if count == 1 {
		return singular
	}
	return pluralWord
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 syntax errors in 2 files (5 files parsed)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.ErrorsTotal == 0 && stats.FilesErrored == 0 {
		return s.Success.Render("No syntax errors") +
			s.Dim.Render(fmt.Sprintf(" (%d %s parsed)", stats.FilesParsed, plural(stats.FilesParsed, wordFile, wordFiles))) + "\n"
	}

	var parts []string

	if stats.ErrorsTotal > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d syntax %s", stats.ErrorsTotal,
			plural(stats.ErrorsTotal, "error", "errors")))+
			fmt.Sprintf(" in %d %s", stats.FilesWithErrors, plural(stats.FilesWithErrors, wordFile, wordFiles)))
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s failed", stats.FilesErrored,
			plural(stats.FilesErrored, wordFile, wordFiles))))
	}

	return strings.Join(parts, ", ") +
		s.Dim.Render(fmt.Sprintf(" (%d %s parsed)", stats.FilesParsed, plural(stats.FilesParsed, wordFile, wordFiles))) + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	row := func(label string, value string) {
		builder.WriteString(fmt.Sprintf("  %-19s%s\n", label+":", value))
	}

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row("Files discovered", s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)))
	row("Files parsed", s.SummaryValue.Render(strconv.Itoa(stats.FilesParsed)))

	if stats.FilesWithErrors > 0 {
		row("Files with errors", s.Failure.Render(strconv.Itoa(stats.FilesWithErrors)))
	}
	if stats.FilesErrored > 0 {
		row("Files failed", s.Failure.Render(strconv.Itoa(stats.FilesErrored)))
	}

	builder.WriteString("\n")

	row("Bytes", s.SummaryValue.Render(strconv.Itoa(stats.BytesParsed)))
	row("Tokens", s.SummaryValue.Render(strconv.Itoa(stats.TokensTotal)))
	row("Nodes", s.SummaryValue.Render(strconv.Itoa(stats.NodesTotal)))
	row("Syntax errors", s.SummaryValue.Render(strconv.Itoa(stats.ErrorsTotal)))

	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Check failed"))
	case stats.ErrorsTotal > 0:
		builder.WriteString(s.Failure.Render("Syntax errors found"))
	default:
		builder.WriteString(s.Success.Render("All files parsed cleanly"))
	}
	builder.WriteString("\n")

	return builder.String()
}
