package runner_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhinandh-s/vimwiki-syntax/pkg/fsutil"
	"github.com/abhinandh-s/vimwiki-syntax/pkg/parser/norg"
	"github.com/abhinandh-s/vimwiki-syntax/pkg/runner"
	"github.com/abhinandh-s/vimwiki-syntax/pkg/syntax"
)

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "* Title\nsome *bold* text", "good.norg")
	writeFiles(t, dir, "/broken\n_bad _", "bad.norg")

	result, err := runner.New(norg.ParseFile).Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Jobs:       2,
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 2)
	assert.Equal(t, filepath.Join(dir, "bad.norg"), result.Files[0].Path)
	assert.Equal(t, filepath.Join(dir, "good.norg"), result.Files[1].Path)

	for _, outcome := range result.Files {
		require.NoError(t, outcome.Error)
		require.NotNil(t, outcome.Snapshot)
		assert.Equal(t, outcome.Path, outcome.Snapshot.Path)
	}

	assert.Len(t, result.Files[0].Diagnostics(), 2)
	assert.Empty(t, result.Files[1].Diagnostics())

	stats := result.Stats
	assert.Equal(t, 2, stats.FilesDiscovered)
	assert.Equal(t, 2, stats.FilesParsed)
	assert.Zero(t, stats.FilesErrored)
	assert.Equal(t, 1, stats.FilesWithErrors)
	assert.Equal(t, 2, stats.ErrorsTotal)
	assert.Equal(t, len("* Title\nsome *bold* text")+len("/broken\n_bad _"), stats.BytesParsed)
	assert.Positive(t, stats.TokensTotal)
	assert.Positive(t, stats.NodesTotal)

	assert.True(t, result.HasSyntaxErrors())
	assert.False(t, result.HasFileErrors())
}

func TestRunner_NoFiles(t *testing.T) {
	t.Parallel()

	result, err := runner.New(norg.ParseFile).Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: t.TempDir(),
	})
	require.NoError(t, err)

	assert.Empty(t, result.Files)
	assert.Zero(t, result.Stats.FilesDiscovered)
	assert.False(t, result.HasSyntaxErrors())
}

func TestRunner_ParseErrorIsRecorded(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "x", "a.norg", "b.norg")

	errBoom := errors.New("boom")
	parse := func(ctx context.Context, path string, content []byte) (*syntax.FileSnapshot, error) {
		if filepath.Base(path) == "a.norg" {
			return nil, errBoom
		}
		return norg.ParseFile(ctx, path, content)
	}

	result, err := runner.New(parse).Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 2)
	require.ErrorIs(t, result.Files[0].Error, errBoom)
	assert.Nil(t, result.Files[0].Snapshot)
	assert.Nil(t, result.Files[0].Diagnostics())
	require.NoError(t, result.Files[1].Error)

	assert.Equal(t, 1, result.Stats.FilesErrored)
	assert.Equal(t, 1, result.Stats.FilesParsed)
	assert.True(t, result.HasFileErrors())
}

func TestRunner_SerialMatchesParallel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "- item *bold* /it /\n* Heading\n", "a.norg", "b/c.norg", "b/d.norg", "e.norg", "f/g/h.norg")

	run := func(jobs int) *runner.Result {
		result, err := runner.New(norg.ParseFile).Run(context.Background(), runner.Options{
			Paths:      []string{"."},
			WorkingDir: dir,
			Jobs:       jobs,
		})
		require.NoError(t, err)
		return result
	}

	serial := run(1)
	parallel := run(8)

	assert.Equal(t, serial.Stats, parallel.Stats)
	require.Len(t, parallel.Files, len(serial.Files))
	for i := range serial.Files {
		assert.Equal(t, serial.Files[i].Path, parallel.Files[i].Path)
		assert.True(t, serial.Files[i].Snapshot.Root.SpanlessEq(parallel.Files[i].Snapshot.Root))
	}
}

func TestRunner_JobsBoundsConcurrency(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "x", "a.norg", "b.norg", "c.norg", "d.norg", "e.norg", "f.norg")

	var active, peak atomic.Int32
	parse := func(ctx context.Context, path string, content []byte) (*syntax.FileSnapshot, error) {
		current := active.Add(1)
		defer active.Add(-1)
		for {
			old := peak.Load()
			if current <= old || peak.CompareAndSwap(old, current) {
				break
			}
		}
		return norg.ParseFile(ctx, path, content)
	}

	result, err := runner.New(parse).Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Jobs:       2,
	})
	require.NoError(t, err)

	assert.Len(t, result.Files, 6)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestRunner_Cancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "x", "a.norg", "b.norg", "c.norg")

	ctx, cancel := context.WithCancel(context.Background())
	parse := func(ctx context.Context, path string, content []byte) (*syntax.FileSnapshot, error) {
		cancel()
		return norg.ParseFile(ctx, path, content)
	}

	result, err := runner.New(parse).Run(ctx, runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Jobs:       1,
	})
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, result)
	assert.Equal(t, 3, result.Stats.FilesDiscovered)
	assert.Less(t, result.Stats.FilesParsed, 3)
}

func TestRunner_MaxFileSize(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "small", "a.norg")
	writeFiles(t, dir, "this file is well over the limit", "b.norg")

	result, err := runner.New(norg.ParseFile).Run(context.Background(), runner.Options{
		Paths:       []string{"."},
		WorkingDir:  dir,
		MaxFileSize: 10,
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 2)
	require.NoError(t, result.Files[0].Error)
	require.ErrorIs(t, result.Files[1].Error, fsutil.ErrTooLarge)
	assert.Nil(t, result.Files[1].Snapshot)
	assert.Equal(t, 1, result.Stats.FilesParsed)
	assert.Equal(t, 1, result.Stats.FilesErrored)
	assert.True(t, result.HasFileErrors())
}
