// Package logging provides a structured logging wrapper around charmbracelet/log.
// Commands configure the process-wide default logger; workers reach it
// through the context so a run can swap in its own.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Format selects how log records are encoded.
type Format string

const (
	FormatText   Format = "text"
	FormatJSON   Format = "json"
	FormatLogfmt Format = "logfmt"
)

//nolint:gochecknoglobals // Process-wide default logger.
var (
	defaultMu     sync.RWMutex
	defaultLogger *log.Logger
)

// New creates a logger writing to w at the given level. A nil writer means
// stderr. Unknown levels fall back to info.
func New(w io.Writer, level string) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := log.NewWithOptions(w, log.Options{})
	logger.SetLevel(parseLevel(level))
	return logger
}

// NewInteractive creates an info-level logger for terminal sessions. It
// prefixes every line with the program name so messages stand apart from
// command output.
func NewInteractive() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "norgsyntax"})
	logger.SetLevel(log.InfoLevel)
	return logger
}

// parseLevel accepts the charmbracelet level names plus "warning".
func parseLevel(level string) log.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		return log.WarnLevel
	}
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel
	}
	return parsed
}

// ParseFormat validates a log format name.
func ParseFormat(name string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(name))); format {
	case FormatText, FormatJSON, FormatLogfmt:
		return format, nil
	default:
		return "", fmt.Errorf("invalid log format %q: must be text, json, or logfmt", name)
	}
}

// SetFormat changes how logger encodes records.
func SetFormat(logger *log.Logger, format Format) {
	switch format {
	case FormatJSON:
		logger.SetFormatter(log.JSONFormatter)
	case FormatLogfmt:
		logger.SetFormatter(log.LogfmtFormatter)
	default:
		logger.SetFormatter(log.TextFormatter)
	}
}

// Default returns the process-wide logger, creating an info-level stderr
// logger on first use.
func Default() *log.Logger {
	defaultMu.RLock()
	logger := defaultLogger
	defaultMu.RUnlock()
	if logger != nil {
		return logger
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New(os.Stderr, "info")
	}
	return defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger *log.Logger) {
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}

// SetLevel updates the level of the default logger.
func SetLevel(level string) {
	Default().SetLevel(parseLevel(level))
}
