package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhinandh-s/vimwiki-syntax/internal/configloader"
	"github.com/abhinandh-s/vimwiki-syntax/internal/logging"
	"github.com/abhinandh-s/vimwiki-syntax/pkg/config"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force   bool
	minimal bool
	output  string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a norgsyntax configuration file",
		Long: `Create a new .norgsyntax.yml configuration file in the current directory.

The default file lists every option with its default value. --minimal writes
the same options commented out, so only the lines you uncomment take effect.

Examples:
  norgsyntax init                      Create .norgsyntax.yml
  norgsyntax init --minimal            Create a fully commented file
  norgsyntax init --output notes.yml   Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.minimal, "minimal", false, "Comment out every option")
	cmd.Flags().StringVarP(&flags.output, "output", "o", config.FileName, "Output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()
	logger.SetOutput(cmd.ErrOrStderr())

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := configloader.WriteConfig(cmd.Context(), absPath, flags.minimal, flags.force); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("file %q already exists; use --force to overwrite", flags.output)
		}
		return err
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	logger.Info("customize your configuration by editing the file")

	return nil
}
