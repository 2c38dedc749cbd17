package runner

import "github.com/abhinandh-s/vimwiki-syntax/pkg/syntax"

// FileOutcome pairs a discovered path with its parse result.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Snapshot is the parsed file.
	// Nil if the file could not be read or parsed.
	Snapshot *syntax.FileSnapshot

	// Error is set if the file could not be processed.
	Error error
}

// Diagnostics returns the syntax errors of the outcome's snapshot.
func (o FileOutcome) Diagnostics() []syntax.SyntaxError {
	if o.Snapshot == nil {
		return nil
	}
	return o.Snapshot.Diagnostics()
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesParsed is the number of files successfully parsed.
	FilesParsed int

	// FilesErrored is the number of files that could not be read or parsed.
	FilesErrored int

	// FilesWithErrors is the number of parsed files containing syntax errors.
	FilesWithErrors int

	// ErrorsTotal is the total number of syntax errors across all files.
	ErrorsTotal int

	BytesParsed int
	TokensTotal int
	NodesTotal  int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasSyntaxErrors reports whether any parsed file contains syntax errors.
func (r *Result) HasSyntaxErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.ErrorsTotal > 0
}

// HasFileErrors reports whether any file failed to be read or parsed.
func (r *Result) HasFileErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	snapshot := outcome.Snapshot
	if snapshot == nil {
		return
	}

	r.Stats.FilesParsed++
	r.Stats.BytesParsed += snapshot.Text.Len()
	r.Stats.TokensTotal += len(snapshot.Tokens)
	r.Stats.NodesTotal += countNodes(snapshot.Root) - 1

	errs := len(snapshot.Diagnostics())
	r.Stats.ErrorsTotal += errs
	if errs > 0 {
		r.Stats.FilesWithErrors++
	}
}

// countNodes counts every node in the tree, the root included.
func countNodes(root syntax.SyntaxNode) int {
	count := 0
	_ = syntax.Walk(root, func(syntax.SyntaxNode) error {
		count++
		return nil
	})
	return count
}
