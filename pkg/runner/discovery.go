package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover finds norg files matching opts under the given working directory.
// It returns a deterministically sorted, deduplicated list of absolute file
// paths. Files named explicitly are kept even when their extension does not
// match, so "check notes.txt" parses the file it was asked to.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	m := &matcher{
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		include:    opts.IncludeGlobs,
		exclude:    opts.ExcludeGlobs,
		follow:     opts.FollowSymlinks,
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			if !m.excluded(absPath) {
				add(absPath)
			}
			continue
		}

		discovered, err := m.walk(ctx, absPath)
		if err != nil {
			return nil, err
		}
		for _, f := range discovered {
			add(f)
		}
	}

	sort.Strings(files)

	return files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// matcher holds the discovery criteria for one Discover call.
type matcher struct {
	workDir    string
	extensions []string
	include    []string
	exclude    []string
	follow     bool
}

// rel returns path relative to the working directory for glob matching.
func (m *matcher) rel(path string) string {
	relPath, err := filepath.Rel(m.workDir, path)
	if err != nil {
		return path
	}
	return relPath
}

// excluded reports whether path matches an exclude glob.
func (m *matcher) excluded(path string) bool {
	return matchAny(m.rel(path), m.exclude)
}

// matches reports whether a file found while walking should be parsed.
func (m *matcher) matches(path string) bool {
	if !hasExtension(path, m.extensions) {
		return false
	}

	relPath := m.rel(path)
	if matchAny(relPath, m.exclude) {
		return false
	}

	return len(m.include) == 0 || matchAny(relPath, m.include)
}

// walk recursively collects matching files under root. Hidden files and
// directories are skipped, as are unreadable entries.
func (m *matcher) walk(ctx context.Context, root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		hidden := path != root && strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if hidden || m.excluded(path) {
				return filepath.SkipDir
			}
			return nil
		}

		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			target, ok := resolveSymlink(path)
			if !ok {
				return nil
			}
			if target.IsDir() {
				return m.walkLinkedDir(ctx, path, &files)
			}
		}

		if m.matches(path) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// walkLinkedDir walks the target of a directory symlink when following is
// enabled. The target is walked rather than the link itself because WalkDir
// does not descend into a symlinked root.
func (m *matcher) walkLinkedDir(ctx context.Context, link string, files *[]string) error {
	if !m.follow {
		return nil
	}

	realPath, err := filepath.EvalSymlinks(link)
	if err != nil {
		return nil //nolint:nilerr // Broken links are skipped.
	}

	subFiles, err := m.walk(ctx, realPath)
	if err != nil {
		return err
	}
	*files = append(*files, subFiles...)
	return nil
}

// resolveSymlink stats the target of a symlink. ok is false for broken or
// inaccessible links.
func resolveSymlink(path string) (fs.FileInfo, bool) {
	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil, false
	}
	info, err := os.Stat(realPath)
	if err != nil {
		return nil, false
	}
	return info, true
}

// hasExtension checks if the file has one of extensions, ignoring case.
func hasExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, e := range extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// matchAny reports whether relPath matches any of patterns.
func matchAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a path against a glob pattern. Besides filepath.Match
// syntax it understands "dir/**", "**/name" and "prefix/**/suffix". A
// pattern without a slash also matches the base name.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchDoubleStar(path, pattern)
	}

	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}

	matched, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && matched
}

// matchDoubleStar handles patterns containing a "**" segment.
func matchDoubleStar(path, pattern string) bool {
	prefix, suffix, _ := strings.Cut(pattern, "**")
	prefix = strings.TrimSuffix(prefix, "/")
	suffix = strings.TrimPrefix(suffix, "/")

	if prefix != "" && path != prefix && !strings.HasPrefix(path, prefix+"/") {
		return false
	}

	if suffix == "" {
		return true
	}

	// The suffix may match any trailing run of path segments.
	segments := strings.Split(path, "/")
	for i := range segments {
		tail := strings.Join(segments[i:], "/")
		if matched, err := filepath.Match(suffix, tail); err == nil && matched {
			return true
		}
	}

	return false
}
