package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhinandh-s/vimwiki-syntax/pkg/runner"
	"github.com/abhinandh-s/vimwiki-syntax/pkg/syntax"
)

// jsonSchemaVersion is bumped when the JSON layout changes incompatibly.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path        string           `json:"path"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
	Error       string           `json:"error,omitempty"`
}

// JSONDiagnostic represents a single syntax error. Range is one-based.
type JSONDiagnostic struct {
	Message string       `json:"message"`
	Hints   []string     `json:"hints,omitempty"`
	Span    JSONSpan     `json:"span"`
	Range   syntax.Range `json:"range"`
	Text    string       `json:"text"`
}

// JSONSpan is a half-open byte range.
type JSONSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int `json:"filesDiscovered"`
	FilesParsed     int `json:"filesParsed"`
	FilesWithErrors int `json:"filesWithErrors"`
	FilesErrored    int `json:"filesErrored"`
	TotalErrors     int `json:"totalErrors"`
	Bytes           int `json:"bytes"`
	Tokens          int `json:"tokens"`
	Nodes           int `json:"nodes"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalErrors, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonSchemaVersion,
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	stats := result.Stats
	output.Summary = JSONSummary{
		FilesDiscovered: stats.FilesDiscovered,
		FilesParsed:     stats.FilesParsed,
		FilesWithErrors: stats.FilesWithErrors,
		FilesErrored:    stats.FilesErrored,
		TotalErrors:     stats.ErrorsTotal,
		Bytes:           stats.BytesParsed,
		Tokens:          stats.TokensTotal,
		Nodes:           stats.NodesTotal,
	}

	output.Files = make([]JSONFileResult, 0, len(result.Files))

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:        displayPath(file.Path, r.opts.WorkingDir),
			Diagnostics: make([]JSONDiagnostic, 0),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}

		diagnostics := file.Diagnostics()
		var content string
		if len(diagnostics) > 0 {
			content = file.Snapshot.Content()
		}

		for _, diag := range diagnostics {
			jsonDiag := JSONDiagnostic{
				Message: diag.Message,
				Hints:   diag.Hints,
				Span:    JSONSpan{Start: diag.Span.Start, End: diag.Span.End},
			}
			if rng, err := file.Snapshot.Range(diag.Span); err == nil {
				jsonDiag.Range = rng
			}
			if text, err := diag.Span.Slice(content); err == nil {
				jsonDiag.Text = text
			}

			fileResult.Diagnostics = append(fileResult.Diagnostics, jsonDiag)
		}

		output.Files = append(output.Files, fileResult)
	}

	return output
}
