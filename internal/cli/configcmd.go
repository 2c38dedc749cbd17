package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhinandh-s/vimwiki-syntax/internal/configloader"
	"github.com/abhinandh-s/vimwiki-syntax/internal/ui/pretty"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the resolved configuration",
		Args:  cobra.NoArgs,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration after merging defaults, configuration files,
NORGSYNTAX_* environment variables and flags, followed by the files it was
loaded from.`,
		Args: cobra.NoArgs,
		RunE: runConfigShow,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "env",
		Short: "List the supported environment variables",
		Args:  cobra.NoArgs,
		RunE:  runConfigEnv,
	})

	return cmd
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	env, err := loadCommandEnv(cmd, nil)
	if err != nil {
		return err
	}

	data, err := env.config.ToYAML()
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	out := cmd.OutOrStdout()
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	if len(env.result.LoadedFrom) > 0 {
		fmt.Fprintf(out, "# loaded from: %s\n", strings.Join(env.result.LoadedFrom, ", "))
	}

	return nil
}

func runConfigEnv(cmd *cobra.Command, _ []string) error {
	env, err := loadCommandEnv(cmd, nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(env.colorMode(), out))

	vars := configloader.ListEnvVars()
	width, fieldWidth := 0, 0
	for _, v := range vars {
		width = max(width, len(v.Name))
		fieldWidth = max(fieldWidth, len(v.Field))
	}

	for _, v := range vars {
		fmt.Fprintf(out, "  %s  %s  %s\n",
			styles.Bold.Render(rpad(v.Name, width)),
			styles.Dim.Render(rpad(v.Field, fieldWidth)),
			v.Description)
	}

	return nil
}
