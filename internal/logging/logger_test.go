package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/abhinandh-s/vimwiki-syntax/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		"DEBUG":   log.DebugLevel,
		"Info":    log.InfoLevel,
		"warn":    log.WarnLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
		" error ": log.ErrorLevel,
		"verbose": log.InfoLevel,
		"":        log.InfoLevel,
	}

	for level, want := range tests {
		t.Run(level, func(t *testing.T) {
			t.Parallel()

			if got := logging.New(nil, level).GetLevel(); got != want {
				t.Errorf("New(%q) level = %v, want %v", level, got, want)
			}
		})
	}
}

func TestNew_WritesToWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(&buf, "info")

	logger.Debug("hidden")
	logger.Info("parsed file", logging.FieldPath, "notes.norg", logging.FieldTokens, 12)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record written at info level: %q", out)
	}
	for _, want := range []string{"parsed file", "path=notes.norg", "tokens=12"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"text", "JSON", " logfmt "} {
		if _, err := logging.ParseFormat(name); err != nil {
			t.Errorf("ParseFormat(%q) error = %v", name, err)
		}
	}

	if _, err := logging.ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) expected error")
	}
}

func TestSetFormat_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(&buf, "info")
	logging.SetFormat(logger, logging.FormatJSON)

	logger.Info("check run finished", logging.FieldErrorsTotal, 3)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if record["msg"] != "check run finished" {
		t.Errorf("msg = %v", record["msg"])
	}
	if record[logging.FieldErrorsTotal] != float64(3) {
		t.Errorf("%s = %v", logging.FieldErrorsTotal, record[logging.FieldErrorsTotal])
	}
}

func TestSetDefaultAndLevel(t *testing.T) {
	// Not parallel because it modifies the default logger.
	original := logging.Default()
	defer logging.SetDefault(original)

	replacement := logging.New(nil, "info")
	logging.SetDefault(replacement)
	if logging.Default() != replacement {
		t.Fatal("SetDefault did not change the default logger")
	}

	logging.SetLevel("debug")
	if replacement.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", replacement.GetLevel())
	}
}

func TestNewInteractive(t *testing.T) {
	t.Parallel()

	if got := logging.NewInteractive().GetLevel(); got != log.InfoLevel {
		t.Errorf("level = %v, want info", got)
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	if logging.FromContext(context.Background()) == nil {
		t.Fatal("FromContext returned nil for an empty context")
	}

	logger := logging.New(nil, "debug")
	ctx := logging.WithLogger(context.Background(), logger)

	if logging.FromContext(ctx) != logger {
		t.Error("FromContext did not return the attached logger")
	}
}
