package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhinandh-s/vimwiki-syntax/internal/logging"
	"github.com/abhinandh-s/vimwiki-syntax/pkg/config"
	"github.com/abhinandh-s/vimwiki-syntax/pkg/parser/norg"
	"github.com/abhinandh-s/vimwiki-syntax/pkg/reporter"
	"github.com/abhinandh-s/vimwiki-syntax/pkg/runner"
)

var (
	// ErrSyntaxErrorsFound is returned when a checked file contains error nodes.
	ErrSyntaxErrorsFound = errors.New("syntax errors found")

	// ErrFilesFailed is returned when a file could not be read or parsed.
	ErrFilesFailed = errors.New("some files could not be checked")
)

type checkFlags struct {
	format     string
	jobs       int
	ignore     []string
	extensions []string
	noSource   bool
	noHints    bool
	noSummary  bool
	stats      bool
	compact    bool
	follow     bool
	maxSize    int64
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check norg files for syntax errors",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	addCheckFlags(cmd, flags)

	return cmd
}

const checkLongDescription = `Parse norg files and report every syntax error.

By default, checks all .norg files in the current directory and
subdirectories. Hidden files and directories are skipped. Specify paths to
check specific files or directories.

Exits with a non-zero status when any file contains a syntax error or could
not be read.

Examples:
  norgsyntax check                       # Check current directory
  norgsyntax check journal/              # Check a directory
  norgsyntax check index.norg            # Check a single file
  norgsyntax check --format json         # Output as JSON for CI
  norgsyntax check --stats               # Show bytes, tokens and nodes parsed
  norgsyntax check --ignore 'archive/**' # Skip a subtree`

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	env, err := loadCommandEnv(cmd, checkCLIConfig(cmd, flags))
	if err != nil {
		return err
	}

	cfg := env.config
	logger := logging.FromContext(env.ctx)

	logger.Debug("configuration loaded",
		logging.FieldFormat, cfg.Format,
		logging.FieldJobs, cfg.Jobs,
	)

	runOpts := runner.OptionsFromConfig(cfg, args)
	runOpts.WorkingDir = env.workDir
	runOpts.FollowSymlinks = flags.follow
	runOpts.MaxFileSize = flags.maxSize

	logger.Debug("starting check run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
	)

	result, err := runner.New(norg.ParseFile).Run(env.ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("check run failed"), err)
	}

	logger.Debug("check run finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesParsed, result.Stats.FilesParsed,
		logging.FieldFilesWithErrors, result.Stats.FilesWithErrors,
		logging.FieldErrorsTotal, result.Stats.ErrorsTotal,
	)

	repOpts := reporter.OptionsFromConfig(cfg, cmd.OutOrStdout())
	repOpts.Compact = flags.compact
	repOpts.ShowStats = flags.stats
	repOpts.WorkingDir = env.workDir

	rep, err := reporter.New(repOpts)
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(env.ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	var errs []error
	if result.HasSyntaxErrors() {
		errs = append(errs, ErrSyntaxErrorsFound)
	}
	if result.HasFileErrors() {
		errs = append(errs, ErrFilesFailed)
	}
	return errors.Join(errs...)
}

// checkCLIConfig builds the CLI configuration layer from the flags the user
// set explicitly, so unset flags never mask file or environment values.
func checkCLIConfig(cmd *cobra.Command, flags *checkFlags) *config.Config {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	if changed("ignore") {
		cfg.Ignore = flags.ignore
	}
	if changed("extensions") {
		cfg.Extensions = flags.extensions
	}
	if changed("no-source") {
		cfg.Output.Source = boolFlag(!flags.noSource)
	}
	if changed("no-hints") {
		cfg.Output.Hints = boolFlag(!flags.noHints)
	}
	if changed("no-summary") {
		cfg.Output.Summary = boolFlag(!flags.noSummary)
	}

	return cfg
}

func boolFlag(value bool) *bool {
	return &value
}

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.extensions, "extensions", nil, "file extensions to check (default .norg)")
	cmd.Flags().BoolVar(&flags.noSource, "no-source", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.noHints, "no-hints", false, "hide error hints in output")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "hide the summary line")
	cmd.Flags().BoolVar(&flags.stats, "stats", false, "print a statistics block instead of the summary line")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
	cmd.Flags().BoolVar(&flags.follow, "follow-symlinks", false, "descend into symlinked directories")
	cmd.Flags().Int64Var(&flags.maxSize, "max-file-size", 0, "report files larger than this many bytes instead of parsing them (0 = no limit)")
}
