package reporter

import (
	"io"
	"os"

	"github.com/abhinandh-s/vimwiki-syntax/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format config.OutputFormat

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowSource includes the offending source line under each diagnostic.
	ShowSource bool

	// ShowHints lists the hints attached to each diagnostic.
	ShowHints bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// ShowStats replaces the summary line with the full statistics block
	// (bytes, tokens and nodes parsed). Text output only.
	ShowStats bool

	// GroupByFile groups diagnostics under a per-file header.
	GroupByFile bool

	// Compact uses minified JSON.
	Compact bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      config.FormatText,
		Color:       string(config.ColorAuto),
		ShowSource:  true,
		ShowHints:   true,
		ShowSummary: true,
		GroupByFile: true,
	}
}

// OptionsFromConfig derives reporter options from a resolved config.
func OptionsFromConfig(cfg *config.Config, writer io.Writer) Options {
	opts := DefaultOptions()
	if writer != nil {
		opts.Writer = writer
	}
	if cfg == nil {
		return opts
	}

	if cfg.Format != "" {
		opts.Format = cfg.Format
	}
	if cfg.Color != "" {
		opts.Color = string(cfg.Color)
	}
	opts.ShowSource = cfg.Output.ShowSource()
	opts.ShowHints = cfg.Output.ShowHints()
	opts.ShowSummary = cfg.Output.ShowSummary()

	return opts
}
