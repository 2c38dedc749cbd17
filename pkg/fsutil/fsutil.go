// Package fsutil provides the file reading and writing primitives used by
// norgsyntax: context-aware source reads and atomic writes.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrTooLarge indicates the file exceeds the caller's size limit.
	ErrTooLarge = errors.New("file too large")
)

// ReadFile reads a source file. A positive maxSize rejects larger files
// before they are read. The underlying os error stays in the chain, so
// errors.Is(err, fs.ErrNotExist) keeps working.
func ReadFile(ctx context.Context, path string, maxSize int64) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, categorize(path, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	if maxSize > 0 && stat.Size() > maxSize {
		return nil, fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrTooLarge, path, stat.Size(), maxSize)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, categorize(path, err)
	}

	return content, nil
}

func categorize(path string, err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}
}
