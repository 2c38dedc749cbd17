package configloader

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/abhinandh-s/vimwiki-syntax/pkg/config"
)

// appName names the per-user and system config directories.
const appName = "norgsyntax"

// ConfigPaths lists the config file found for each layer. An empty string
// means the layer has no file.
type ConfigPaths struct {
	System   string // /etc/norgsyntax/config.yaml
	User     string // $XDG_CONFIG_HOME/norgsyntax/config.yaml
	Project  string // nearest .norgsyntax.yml above the working directory
	Explicit string // --config
}

//nolint:gochecknoglobals // Read-only lookup tables.
var (
	globalConfigFiles  = []string{"config.yaml", "config.yml"}
	projectConfigFiles = []string{config.FileName, ".norgsyntax.yaml", "norgsyntax.yml", "norgsyntax.yaml"}
	vcsRootMarkers     = []string{".git", ".hg", ".svn"}
)

// DiscoverPaths finds the system, user and project config files for workDir.
// Missing files are not errors.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("discover config: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	paths := &ConfigPaths{Project: project}
	if dir := systemConfigDir(); dir != "" {
		paths.System = firstExisting(dir, globalConfigFiles)
	}
	if dir := userConfigDir(); dir != "" {
		paths.User = firstExisting(dir, globalConfigFiles)
	}
	return paths, nil
}

func systemConfigDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(cmp.Or(os.Getenv("ProgramData"), `C:\ProgramData`), appName)
	}
	return filepath.Join("/etc", appName)
}

func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// FindProjectConfig walks upward from startDir and returns the first project
// config file it sees. The walk ends after a VCS root, the home directory or
// the filesystem root has been searched.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	dir, err := filepath.Abs(cmp.Or(startDir, "."))
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}

	home, _ := os.UserHomeDir()

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("find project config: %w", err)
		}

		if path := firstExisting(dir, projectConfigFiles); path != "" {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir || dir == home || isVCSRoot(dir) {
			return "", nil
		}
		dir = parent
	}
}

// firstExisting returns the first of names that is a regular file in dir.
func firstExisting(dir string, names []string) string {
	for _, name := range names {
		if path := filepath.Join(dir, name); fileExists(path) {
			return path
		}
	}
	return ""
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
