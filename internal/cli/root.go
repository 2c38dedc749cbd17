// Package cli provides the Cobra command structure for norgsyntax.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/abhinandh-s/vimwiki-syntax/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root norgsyntax command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string
	var logFormat string

	rootCmd := &cobra.Command{
		Use:   "norgsyntax",
		Short: "A lossless parser and syntax checker for norg markup",
		Long: `norgsyntax turns norg-style markup into a lossless syntax tree.

Every byte of the input is kept, so the tree can be printed back to the exact
source. Malformed markup (unterminated bold or italic pairs, trailing
whitespace before a closing delimiter, inline markup inside headings) becomes
error nodes carrying a message and hints instead of aborting the parse.

Use lex and parse to inspect a single file, and check to validate whole
directory trees of .norg files concurrently.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			format, err := logging.ParseFormat(logFormat)
			if err != nil {
				return err
			}
			logging.SetFormat(logging.Default(), format)
			if debug {
				logging.SetLevel("debug")
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", string(logging.FormatText),
		"log record format: text, json, logfmt")

	rootCmd.AddCommand(newLexCommand())
	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	newHelpFormatter().apply(rootCmd)

	return rootCmd
}
