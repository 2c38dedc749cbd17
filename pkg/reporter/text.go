package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/abhinandh-s/vimwiki-syntax/internal/ui/pretty"
	"github.com/abhinandh-s/vimwiki-syntax/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	diagOpts := pretty.DiagnosticOptions{
		ShowSource: r.opts.ShowSource,
		ShowHints:  r.opts.ShowHints,
	}

	var total int
	for _, file := range result.Files {
		total += r.reportFile(file, diagOpts)
	}

	switch {
	case r.opts.ShowStats:
		fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))
	case r.opts.ShowSummary:
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

// reportFile writes the diagnostics of one file and returns their count.
func (r *TextReporter) reportFile(file runner.FileOutcome, diagOpts pretty.DiagnosticOptions) int {
	path := displayPath(file.Path, r.opts.WorkingDir)

	if file.Error != nil {
		fmt.Fprint(r.bw, r.styles.FormatFileError(path, file.Error))
		return 0
	}

	diagnostics := file.Diagnostics()
	if len(diagnostics) == 0 {
		return 0
	}

	if r.opts.GroupByFile {
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(diagnostics)))
	}

	for _, diag := range diagnostics {
		// Spans come from the parser, so a failed mapping means a corrupt snapshot.
		rng, rangeErr := file.Snapshot.Range(diag.Span)
		if rangeErr != nil {
			continue
		}

		var sourceLine string
		if r.opts.ShowSource {
			sourceLine = file.Snapshot.LineContent(int(rng.Start.Line))
		}

		fmt.Fprint(r.bw, r.styles.FormatDiagnostic(path, diag, rng, diagOpts, sourceLine))
	}

	if r.opts.GroupByFile {
		fmt.Fprintln(r.bw)
	}

	return len(diagnostics)
}
