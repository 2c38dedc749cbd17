package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/abhinandh-s/vimwiki-syntax/pkg/config"
)

// ValidationError is a single invalid setting. Field is a dotted config path
// such as "output.hints", or an environment variable name.
type ValidationError struct {
	Field    string
	Value    any
	Message  string
	FilePath string // config file the value came from, if any
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{e.FilePath, e.Field} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(append(parts, e.Message), ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warn(field, message string) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Message: message})
}

// Validate checks a configuration for errors and warnings. Empty values are
// accepted because they mean "inherit" during merging.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.fail("format", cfg.Format, "invalid format %q; must be one of: text, json", cfg.Format)
	}
	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.fail("color", cfg.Color, "invalid color mode %q; must be one of: auto, always, never", cfg.Color)
	}
	if cfg.Jobs < 0 {
		result.fail("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	if cfg.Extensions != nil && len(cfg.Extensions) == 0 {
		result.warn("extensions", "empty extension list; directories will yield no files")
	}
	for i, ext := range cfg.Extensions {
		if len(ext) < 2 || ext[0] != '.' {
			result.fail(fmt.Sprintf("extensions[%d]", i), ext, "invalid extension %q; must start with a dot, e.g. .norg", ext)
		}
	}

	// filepath.Match only reports malformed patterns.
	for i, pattern := range cfg.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.fail(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}

	return result
}

// ValidateWithFile validates cfg and attributes every finding to filePath.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for _, findings := range [][]ValidationError{result.Errors, result.Warnings} {
		for i := range findings {
			findings[i].FilePath = filePath
		}
	}
	return result
}
