package cmd

import (
	"errors"
	"fmt"
	"strings"

	oerrors "github.com/opmodel/gitrev/internal/errors"
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Diagnostic formats err as the one-line stderr message
// "gitrev: <stage>: <reason>".
func Diagnostic(err error) string {
	reason := strings.ReplaceAll(strings.TrimSpace(err.Error()), "\n", " ")
	return fmt.Sprintf("gitrev: %s: %s", oerrors.Stage(err), reason)
}

// wrapConfig marks a config loading failure with ErrConfig.
func wrapConfig(err error) error {
	return fmt.Errorf("%w: %w", oerrors.ErrConfig, err)
}

func errOutputConflict(flagValue, argValue string) error {
	return oerrors.Wrap(oerrors.ErrConfig,
		fmt.Sprintf("output path given twice: --output %s and argument %s", flagValue, argValue))
}
