package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhinandh-s/vimwiki-syntax/internal/logging"
	"github.com/abhinandh-s/vimwiki-syntax/internal/ui/pretty"
	"github.com/abhinandh-s/vimwiki-syntax/pkg/parser/norg"
	"github.com/abhinandh-s/vimwiki-syntax/pkg/rope"
)

func newLexCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lex [file|-]",
		Short: "Print the token stream of a file",
		Long: `Tokenize a norg file and print one token per line as
KIND "text" [ span: start..end ]. Spans are byte offsets into the input.
Reads standard input when no file is given or the file is "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLex,
	}
}

func runLex(cmd *cobra.Command, args []string) error {
	env, err := loadCommandEnv(cmd, nil)
	if err != nil {
		return err
	}

	path, content, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	tokens := norg.NewLexerFromRope(rope.New(string(content))).Lex()

	logging.FromContext(env.ctx).Debug("lexed input",
		logging.FieldInput, path,
		logging.FieldBytes, len(content),
		logging.FieldTokens, len(tokens),
	)

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(env.colorMode(), out))

	if _, err := fmt.Fprint(out, styles.FormatTokens(tokens)); err != nil {
		return fmt.Errorf("write tokens: %w", err)
	}
	return nil
}
