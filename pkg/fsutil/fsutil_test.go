package fsutil_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/abhinandh-s/vimwiki-syntax/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "notes.norg")
		if err := os.WriteFile(path, []byte("* Title"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		got, err := fsutil.ReadFile(context.Background(), path, 0)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(got) != "* Title" {
			t.Errorf("content = %q, want %q", got, "* Title")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "gone.norg"), 0)
		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("error = %v, want fs.ErrNotExist in chain", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.ReadFile(context.Background(), t.TempDir(), 0)
		if !errors.Is(err, fsutil.ErrIsDirectory) {
			t.Errorf("error = %v, want ErrIsDirectory", err)
		}
	})

	t.Run("size limit", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "big.norg")
		if err := os.WriteFile(path, []byte("0123456789"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		if _, err := fsutil.ReadFile(context.Background(), path, 10); err != nil {
			t.Errorf("file at the limit: error = %v", err)
		}
		if _, err := fsutil.ReadFile(context.Background(), path, 9); !errors.Is(err, fsutil.ErrTooLarge) {
			t.Errorf("error = %v, want ErrTooLarge", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fsutil.ReadFile(ctx, "unused", 0)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}
