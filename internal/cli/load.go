package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhinandh-s/vimwiki-syntax/internal/configloader"
	"github.com/abhinandh-s/vimwiki-syntax/internal/logging"
	"github.com/abhinandh-s/vimwiki-syntax/pkg/config"
)

// stdinPath is the argument that selects standard input.
const stdinPath = "-"

// commandEnv is the resolved state shared by all commands.
type commandEnv struct {
	ctx     context.Context
	workDir string
	config  *config.Config
	result  *configloader.LoadResult
}

// loadCommandEnv resolves the configuration for cmd, layering cliCfg over
// files and environment. The --color and --debug root flags are folded into
// the CLI layer when set explicitly.
func loadCommandEnv(cmd *cobra.Command, cliCfg *config.Config) (*commandEnv, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if cliCfg == nil {
		cliCfg = &config.Config{}
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	if cmd.Flags().Changed("color") {
		color, err := cmd.Flags().GetString("color")
		if err != nil {
			return nil, fmt.Errorf("get color flag: %w", err)
		}
		mode, err := config.ParseColorMode(color)
		if err != nil {
			return nil, err
		}
		cliCfg.Color = mode
	}

	if debug, err := cmd.Flags().GetBool("debug"); err == nil && debug {
		cliCfg.Debug = true
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	cfg := loadResult.Config
	if cfg.Debug {
		logging.SetLevel("debug")
	}

	logger := logging.Default()
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	return &commandEnv{
		ctx:     logging.WithLogger(ctx, logger),
		workDir: workDir,
		config:  cfg,
		result:  loadResult,
	}, nil
}

// colorMode returns the resolved color mode as the string pretty expects.
func (e *commandEnv) colorMode() string {
	return string(e.config.Color)
}

// readInput returns the content named by args: a file path, or standard
// input when args is empty or "-". The returned path is empty for stdin.
func readInput(cmd *cobra.Command, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == stdinPath {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return "", content, nil
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("read file: %w", err)
	}
	return args[0], content, nil
}
