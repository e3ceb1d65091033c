// Package errors defines the failure taxonomy for gitrev.
//
// Every stage of the render pipeline returns one of the typed errors below.
// Each type unwraps to a sentinel so callers can classify failures with
// errors.Is, and errors.As recovers the structured payload.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure stages.
var (
	// ErrCommand indicates a git query failed.
	ErrCommand = errors.New("command failed")

	// ErrTemplate indicates the template could not be read, parsed, or executed.
	ErrTemplate = errors.New("template failed")

	// ErrOutput indicates the rendered result could not be written.
	ErrOutput = errors.New("output failed")

	// ErrExtraVars indicates the user-supplied variables were rejected.
	ErrExtraVars = errors.New("invalid extra vars")

	// ErrConfig indicates an invalid configuration value.
	ErrConfig = errors.New("invalid configuration")
)

// CommandStartError reports that a git process could not be launched.
type CommandStartError struct {
	// Command is the literal command line that was attempted.
	Command string
	Err     error
}

func (e *CommandStartError) Error() string {
	return fmt.Sprintf("failed to run command '%s': %v", e.Command, e.Err)
}

// Unwrap returns the sentinel and the underlying cause.
func (e *CommandStartError) Unwrap() []error {
	return []error{ErrCommand, e.Err}
}

// CommandOutputError reports that a git process produced output that is not
// valid UTF-8 text.
type CommandOutputError struct {
	Command string
}

func (e *CommandOutputError) Error() string {
	return fmt.Sprintf("failed to parse output of command '%s': not valid UTF-8", e.Command)
}

// Unwrap returns ErrCommand.
func (e *CommandOutputError) Unwrap() error {
	return ErrCommand
}

// CommandExitError reports that a git process exited with a non-zero status.
type CommandExitError struct {
	Command string
	Code    int
	// Stderr is the trimmed diagnostic output of the process.
	Stderr string
}

func (e *CommandExitError) Error() string {
	msg := fmt.Sprintf("command '%s' exited with status %d", e.Command, e.Code)
	if e.Stderr != "" {
		msg += ": " + firstLine(e.Stderr)
	}
	return msg
}

// Unwrap returns ErrCommand.
func (e *CommandExitError) Unwrap() error {
	return ErrCommand
}

// TemplateStage identifies where template processing failed.
type TemplateStage string

const (
	// StageIO means the template file could not be read.
	StageIO TemplateStage = "read"
	// StageCompile means the template source failed to parse.
	StageCompile TemplateStage = "parse"
	// StageRender means execution failed, including helper failures.
	StageRender TemplateStage = "render"
)

// TemplateError reports a failure reading, compiling, or rendering a template.
type TemplateError struct {
	Stage TemplateStage
	Path  string
	Err   error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("failed to %s template %s: %v", e.Stage, e.Path, e.Err)
}

// Unwrap returns the sentinel and the underlying cause.
func (e *TemplateError) Unwrap() []error {
	return []error{ErrTemplate, e.Err}
}

// HelperUsageError reports a template helper invoked with the wrong
// arguments. It surfaces as the cause of a render-stage TemplateError.
type HelperUsageError struct {
	Helper string
	Reason string
}

func (e *HelperUsageError) Error() string {
	return e.Helper + ": " + e.Reason
}

// OutputError reports a failure writing the rendered result.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("failed to write the output to %s: %v", e.Path, e.Err)
}

// Unwrap returns the sentinel and the underlying cause.
func (e *OutputError) Unwrap() []error {
	return []error{ErrOutput, e.Err}
}

// ExtraVarsError reports malformed or non-object extra variables.
type ExtraVarsError struct {
	// Source is "--vars" or the path of a vars file.
	Source string
	Reason string
	Err    error
}

func (e *ExtraVarsError) Error() string {
	msg := fmt.Sprintf("invalid extra vars from %s: %s", e.Source, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the sentinel and the underlying cause, if any.
func (e *ExtraVarsError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrExtraVars}
	}
	return []error{ErrExtraVars, e.Err}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// Stage returns a short name for the pipeline stage an error belongs to.
func Stage(err error) string {
	switch {
	case errors.Is(err, ErrExtraVars):
		return "vars"
	case errors.Is(err, ErrTemplate):
		// Checked before ErrCommand: helper query failures surface
		// wrapped inside a render error.
		return "template"
	case errors.Is(err, ErrOutput):
		return "output"
	case errors.Is(err, ErrCommand):
		return "git"
	case errors.Is(err, ErrConfig):
		return "config"
	default:
		return "error"
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}
