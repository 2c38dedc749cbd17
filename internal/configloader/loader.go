// Package configloader provides configuration loading and resolution.
// It implements XDG-style configuration discovery, hierarchical merging,
// environment variable support and validation.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/abhinandh-s/vimwiki-syntax/pkg/config"
	"github.com/abhinandh-s/vimwiki-syntax/pkg/fsutil"
)

const (
	// configFilePermissions is the file mode for configuration files (world-readable).
	configFilePermissions = 0o644

	// maxConfigSize bounds config files; anything larger is not a config.
	maxConfigSize = 1 << 20
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (NORGSYNTAX_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.norgsyntax.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/norgsyntax/config.yaml)
//  6. System config (/etc/norgsyntax/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}

	layers := []struct {
		name    string
		path    string
		skipped bool
	}{
		{"system", paths.System, opts.IgnoreSystemConfig},
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig},
		{"explicit", paths.Explicit, false},
	}

	fileConfigs := []*config.Config{config.NewConfig()}
	for _, layer := range layers {
		if layer.skipped || layer.path == "" {
			continue
		}

		fileCfg, err := loadConfigFile(ctx, layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}

		validation := ValidateWithFile(fileCfg, layer.path)
		if !validation.Valid() {
			return nil, &validation.Errors[0]
		}

		fileConfigs = append(fileConfigs, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	cfg := MergeAll(fileConfigs...)

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}

	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML file.
func loadConfigFile(ctx context.Context, path string) (*config.Config, error) {
	content, err := fsutil.ReadFile(ctx, path, maxConfigSize)
	if err != nil {
		return nil, err
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// WriteConfig writes the configuration template to path. It refuses to
// overwrite an existing file unless force is set.
func WriteConfig(ctx context.Context, path string, minimal, force bool) error {
	if !force && fileExists(path) {
		return fmt.Errorf("%s: %w", path, os.ErrExist)
	}

	if err := fsutil.WriteAtomic(ctx, path, config.Template(minimal), configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}
