package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/abhinandh-s/vimwiki-syntax/internal/cli"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "norgsyntax" {
		t.Errorf("expected Use to be 'norgsyntax', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"lex", "parse", "check", "init", "config", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestCheckCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	checkCmd, _, err := cmd.Find([]string{"check"})
	if err != nil {
		t.Fatalf("check command not found: %v", err)
	}

	expectedFlags := []string{
		"format",
		"jobs",
		"ignore",
		"extensions",
		"no-source",
		"no-hints",
		"no-summary",
		"compact",
		"follow-symlinks",
		"max-file-size",
		"stats",
	}

	for _, flagName := range expectedFlags {
		if checkCmd.Flags().Lookup(flagName) == nil {
			t.Errorf("expected flag %q to exist on check command", flagName)
		}
	}

	// Check accepts arbitrary paths.
	if err := checkCmd.Args(checkCmd, []string{"a.norg", "b.norg", "journal/"}); err != nil {
		t.Errorf("check command should accept arbitrary args, got error: %v", err)
	}
}

func TestSingleInputCommandsRejectExtraArgs(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"lex", "parse"} {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Fatalf("%s command not found: %v", name, err)
		}
		if err := subCmd.Args(subCmd, []string{"a.norg", "b.norg"}); err == nil {
			t.Errorf("%s should reject two file arguments", name)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, flagName := range []string{"debug", "config", "color", "log-format"} {
		if cmd.PersistentFlags().Lookup(flagName) == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{
		Version: "1.2.3",
		Commit:  "abc123",
		Date:    "2026-01-01",
	})
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	for _, want := range []string{"norgsyntax", "1.2.3", "abc123", "2026-01-01"} {
		if !bytes.Contains(out.Bytes(), []byte(want)) {
			t.Errorf("expected version output to contain %q, got %q", want, out.String())
		}
	}
}

func TestHelpOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "root",
			args: []string{"--color", "never", "--help"},
			want: []string{"lossless syntax tree", "Usage:", "norgsyntax [command]", "Commands:", "  check", "Global Flags:"},
		},
		{
			name: "check",
			args: []string{"--color", "never", "check", "--help"},
			want: []string{"Usage:", "norgsyntax check [paths...] [flags]", "--max-file-size int", "--color string"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := cli.NewRootCommand(testInfo())
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetArgs(tt.args)

			if err := cmd.Execute(); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			got := out.String()
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("help output missing %q:\n%s", want, got)
				}
			}
			if strings.Contains(got, "\x1b[") {
				t.Error("help output contains ANSI escapes with --color never")
			}
		})
	}
}
