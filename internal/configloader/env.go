package configloader

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/abhinandh-s/vimwiki-syntax/pkg/config"
)

// envVarPrefix is the prefix for all norgsyntax environment variables.
const envVarPrefix = "NORGSYNTAX_"

// envBinding ties one environment variable to the config field it sets.
type envBinding struct {
	suffix      string
	field       string
	description string
	apply       func(cfg *config.Config, value string) error
}

// envBindings is sorted by suffix so ListEnvVars needs no sorting.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envBindings = []envBinding{
	{"COLOR", "color", "Colored output: auto, always or never",
		stringEnv(func(c *config.Config, v string) { c.Color = config.ColorMode(v) })},
	{"DEBUG", "debug", "Enable debug logging: true or false",
		boolEnv(func(c *config.Config, v bool) { c.Debug = v })},
	{"EXTENSIONS", "extensions", "Comma-separated file extensions to check",
		sliceEnv(func(c *config.Config, v []string) { c.Extensions = v })},
	{"FORMAT", "format", "Output format: text or json",
		stringEnv(func(c *config.Config, v string) { c.Format = config.OutputFormat(v) })},
	{"IGNORE", "ignore", "Comma-separated list of ignore patterns",
		sliceEnv(func(c *config.Config, v []string) { c.Ignore = v })},
	{"JOBS", "jobs", "Number of parallel workers (0 = auto)",
		intEnv(func(c *config.Config, v int) { c.Jobs = v })},
	{"OUTPUT_HINTS", "output.hints", "Print error hints: true or false",
		boolEnv(func(c *config.Config, v bool) { c.Output.Hints = &v })},
	{"OUTPUT_SOURCE", "output.source", "Print source context: true or false",
		boolEnv(func(c *config.Config, v bool) { c.Output.Source = &v })},
	{"OUTPUT_SUMMARY", "output.summary", "Print the summary line: true or false",
		boolEnv(func(c *config.Config, v bool) { c.Output.Summary = &v })},
}

func stringEnv(set func(*config.Config, string)) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		set(cfg, strings.TrimSpace(value))
		return nil
	}
}

func boolEnv(set func(*config.Config, bool)) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return errors.New("expected a boolean (true/false/1/0)")
		}
		set(cfg, b)
		return nil
	}
}

func intEnv(set func(*config.Config, int)) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		i, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return errors.New("expected an integer")
		}
		set(cfg, i)
		return nil
	}
}

func sliceEnv(set func(*config.Config, []string)) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		set(cfg, parseSliceValue(value))
		return nil
	}
}

// LoadFromEnv applies NORGSYNTAX_* overrides to cfg. A malformed value is
// reported as a *ValidationError naming the variable.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, binding := range envBindings {
		name := envVarPrefix + binding.suffix
		value, ok := os.LookupEnv(name)
		if !ok || value == "" {
			continue
		}

		if err := binding.apply(cfg, value); err != nil {
			return &ValidationError{
				Field:   name,
				Value:   value,
				Message: "invalid value " + strconv.Quote(value) + ": " + err.Error(),
			}
		}
	}

	return nil
}

// parseSliceValue splits a comma-separated list, dropping empty elements.
func parseSliceValue(value string) []string {
	var result []string
	for part := range strings.SplitSeq(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// EnvVar describes one supported environment variable.
type EnvVar struct {
	Name        string
	Field       string
	Description string
}

// ListEnvVars returns all supported environment variables sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, len(envBindings))
	for i, binding := range envBindings {
		vars[i] = EnvVar{Name: envVarPrefix + binding.suffix, Field: binding.field, Description: binding.description}
	}
	return vars
}
