// Package runner discovers norg files and parses them concurrently.
package runner

import (
	"slices"

	"github.com/abhinandh-s/vimwiki-syntax/pkg/config"
)

// Options controls file discovery and parsing.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (with leading dot) picked up
	// when walking directories. Defaults to DefaultExtensions().
	Extensions []string

	// IncludeGlobs are additional glob patterns to include, relative to WorkingDir.
	// Empty means "include everything that matches Extensions".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs bounds the number of files parsed at once.
	// 0 or negative means runtime.NumCPU().
	Jobs int

	// MaxFileSize skips files larger than this many bytes with a file error.
	// 0 means no limit.
	MaxFileSize int64
}

// OptionsFromConfig builds runner options for paths from a resolved config.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	if cfg == nil {
		return Options{Paths: paths}
	}
	return Options{
		Paths:        paths,
		Extensions:   slices.Clone(cfg.Extensions),
		ExcludeGlobs: slices.Clone(cfg.Ignore),
		Jobs:         cfg.Jobs,
	}
}

// DefaultExtensions returns the default set of norg file extensions.
func DefaultExtensions() []string {
	return slices.Clone(config.DefaultExtensions)
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
