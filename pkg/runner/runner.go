package runner

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/abhinandh-s/vimwiki-syntax/internal/logging"
	"github.com/abhinandh-s/vimwiki-syntax/pkg/fsutil"
	"github.com/abhinandh-s/vimwiki-syntax/pkg/syntax"
)

// ParseFunc turns file content into a snapshot. norg.ParseFile satisfies it.
type ParseFunc func(ctx context.Context, path string, content []byte) (*syntax.FileSnapshot, error)

// Runner orchestrates multi-file parsing.
type Runner struct {
	// Parse handles a single file.
	Parse ParseFunc
}

// New creates a new Runner with the given parse function.
func New(parse ParseFunc) *Runner {
	return &Runner{Parse: parse}
}

// Run discovers files under opts.Paths and parses them concurrently.
// It returns a deterministic collection of FileOutcome values and aggregate stats.
//
// A file that cannot be read or parsed is recorded in its outcome and does
// not stop the run. Cancellation does: outcomes gathered so far are returned
// together with the context error.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	logging.FromContext(ctx).Debug("parsing files",
		logging.FieldFiles, len(files),
		logging.FieldJobs, jobs,
	)

	// Each worker owns one slot, so the output order matches discovery.
	outcomes := make([]FileOutcome, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for idx, path := range files {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			outcomes[idx] = r.parseFile(groupCtx, path, opts.MaxFileSize)
			return nil
		})
	}

	_ = group.Wait()

	for _, outcome := range outcomes {
		if outcome.Path != "" {
			result.accumulate(outcome)
		}
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	return result, nil
}

// parseFile reads and parses a single file.
func (r *Runner) parseFile(ctx context.Context, path string, maxSize int64) FileOutcome {
	outcome := FileOutcome{Path: path}
	logger := logging.FromContext(ctx)

	content, err := fsutil.ReadFile(ctx, path, maxSize)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	snapshot, err := r.Parse(ctx, path, content)
	if err != nil {
		outcome.Error = fmt.Errorf("parse file: %w", err)
		return outcome
	}

	outcome.Snapshot = snapshot
	logger.Debug("parsed file",
		logging.FieldPath, path,
		logging.FieldBytes, len(content),
		logging.FieldTokens, len(snapshot.Tokens),
	)

	return outcome
}
