package gitinfo

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	oerrors "github.com/opmodel/gitrev/internal/errors"
)

// Runner executes a git invocation and returns its raw standard output.
// Implementations report failures as *errors.CommandStartError or
// *errors.CommandExitError.
type Runner interface {
	Run(ctx context.Context, env []string, args ...string) ([]byte, error)
}

// ExecRunner runs the git binary as a subprocess.
type ExecRunner struct {
	// Binary is the git executable. Defaults to "git".
	Binary string

	// Dir is the working directory for every invocation. Empty means the
	// current directory.
	Dir string
}

// NewExecRunner creates a runner that executes git in dir.
func NewExecRunner(dir string) *ExecRunner {
	return &ExecRunner{Binary: "git", Dir: dir}
}

// Run executes git with args. Extra env entries are appended to the
// process environment. The call blocks until the process exits.
func (r *ExecRunner) Run(ctx context.Context, env []string, args ...string) ([]byte, error) {
	binary := r.Binary
	if binary == "" {
		binary = "git"
	}
	commandLine := CommandLine(binary, args...)

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = r.Dir
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &oerrors.CommandExitError{
				Command: commandLine,
				Code:    exitErr.ExitCode(),
				Stderr:  strings.TrimSpace(stderr.String()),
			}
		}
		return nil, &oerrors.CommandStartError{Command: commandLine, Err: err}
	}

	return stdout.Bytes(), nil
}

// CommandLine renders a command and its arguments the way a user would type
// them, for error messages.
func CommandLine(binary string, args ...string) string {
	if len(args) == 0 {
		return binary
	}
	return binary + " " + strings.Join(args, " ")
}
