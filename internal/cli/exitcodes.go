package cli

import (
	"errors"

	"github.com/abhinandh-s/vimwiki-syntax/internal/configloader"
)

// Exit codes for norgsyntax.
const (
	// ExitSuccess indicates successful execution with no syntax errors.
	ExitSuccess = 0

	// ExitSyntaxErrors indicates the check completed but found syntax errors.
	ExitSyntaxErrors = 1

	// ExitFailure indicates the command failed for any other reason, such as
	// invalid usage or unreadable input.
	ExitFailure = 2

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates files that could not be read.
	ExitIOError = 74
)

// ExitCode maps a command error to a process exit code. Unreadable files
// outrank syntax errors, and configuration errors outrank both.
func ExitCode(err error) int {
	var validationErr *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, ErrFilesFailed):
		return ExitIOError
	case errors.Is(err, ErrSyntaxErrorsFound):
		return ExitSyntaxErrors
	default:
		return ExitFailure
	}
}

// IsReported reports whether err only signals findings that were already
// written to the output, so it needs no separate log line.
func IsReported(err error) bool {
	return errors.Is(err, ErrSyntaxErrorsFound) || errors.Is(err, ErrFilesFailed)
}
