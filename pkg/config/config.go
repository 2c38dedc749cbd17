// Package config defines core configuration types for norgsyntax.
// These types are pure data structures; discovery and merging live in
// internal/configloader.
package config

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// ColorMode controls when terminal output is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// DefaultExtensions are the file extensions discovered when none are configured.
//
//nolint:gochecknoglobals // Read-only defaults.
var DefaultExtensions = []string{".norg"}

// OutputConfig controls what the text reporter prints for each diagnostic.
// Nil fields mean "use the default", so a config file can turn a default-on
// option off.
type OutputConfig struct {
	// Hints prints the hints attached to each syntax error.
	Hints *bool `mapstructure:"hints" yaml:"hints,omitempty"`

	// Source prints the offending source line with a caret under the span.
	Source *bool `mapstructure:"source" yaml:"source,omitempty"`

	// Summary prints the closing file and error counts.
	Summary *bool `mapstructure:"summary" yaml:"summary,omitempty"`
}

// Config is the root configuration structure for norgsyntax.
type Config struct {
	// Extensions lists the file extensions picked up when walking directories.
	Extensions []string `mapstructure:"extensions" yaml:"extensions,omitempty"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `mapstructure:"ignore" yaml:"ignore,omitempty"`

	// Format specifies the output format of the check command.
	Format OutputFormat `mapstructure:"format" yaml:"format,omitempty"`

	// Color selects when output is styled ("auto", "always" or "never").
	Color ColorMode `mapstructure:"color" yaml:"color,omitempty"`

	// Jobs specifies the number of parallel workers. 0 means GOMAXPROCS.
	Jobs int `mapstructure:"jobs" yaml:"jobs,omitempty"`

	// Output controls text report details.
	Output OutputConfig `mapstructure:"output" yaml:"output,omitempty"`

	// CLI-level options (not persisted to config files).

	// Debug enables debug logging.
	Debug bool `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Extensions: append([]string(nil), DefaultExtensions...),
		Ignore:     nil,
		Format:     FormatText,
		Color:      ColorAuto,
		Jobs:       0, // 0 means use GOMAXPROCS
		Output: OutputConfig{
			Hints:   boolPtr(true),
			Source:  boolPtr(true),
			Summary: boolPtr(true),
		},
	}
}

// ShowHints reports whether hints are printed. Defaults to true.
func (o OutputConfig) ShowHints() bool {
	return o.Hints == nil || *o.Hints
}

// ShowSource reports whether source context is printed. Defaults to true.
func (o OutputConfig) ShowSource() bool {
	return o.Source == nil || *o.Source
}

// ShowSummary reports whether the summary line is printed. Defaults to true.
func (o OutputConfig) ShowSummary() bool {
	return o.Summary == nil || *o.Summary
}

func boolPtr(b bool) *bool {
	return &b
}
