package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhinandh-s/vimwiki-syntax/internal/logging"
	"github.com/abhinandh-s/vimwiki-syntax/internal/ui/pretty"
	"github.com/abhinandh-s/vimwiki-syntax/pkg/parser/norg"
)

type parseFlags struct {
	tree  bool
	width int
}

func newParseCommand() *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Print the syntax tree of a file",
		Long: `Parse a norg file and print its nodes.

The default view lists top-level nodes as a document of paragraphs, starting
a new paragraph at every newline. --tree prints the full nested tree with
delimiters, whitespace and error nodes.

Examples:
  norgsyntax parse notes.norg              # Paragraph view
  norgsyntax parse --tree notes.norg       # Nested view
  echo '*bold*' | norgsyntax parse --tree  # Read from stdin`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.tree, "tree", false, "print the nested syntax tree")
	cmd.Flags().IntVar(&flags.width, "width", 0,
		"truncate tree lines to this many columns (0 = terminal width, -1 = never)")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, flags *parseFlags) error {
	env, err := loadCommandEnv(cmd, nil)
	if err != nil {
		return err
	}

	path, content, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	snapshot, err := norg.ParseFile(env.ctx, path, content)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	logging.FromContext(env.ctx).Debug("parsed input",
		logging.FieldInput, path,
		logging.FieldBytes, len(content),
		logging.FieldNodes, len(snapshot.Nodes),
	)

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(env.colorMode(), out))

	var rendered string
	if flags.tree {
		width := flags.width
		if width == 0 {
			width = pretty.TerminalWidth(out)
		}
		rendered = styles.FormatTree(snapshot.Root, width)
	} else {
		rendered = styles.FormatAST(snapshot.Nodes)
	}

	if _, err := fmt.Fprint(out, rendered); err != nil {
		return fmt.Errorf("write tree: %w", err)
	}
	return nil
}
