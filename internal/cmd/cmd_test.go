package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	oerrors "github.com/opmodel/gitrev/internal/errors"
	"github.com/opmodel/gitrev/internal/pipeline"
)

const testRevision = "0123456789abcdef0123456789abcdef01234567"

// stubRunner answers git invocations from a table keyed by the joined args.
type stubRunner struct {
	responses map[string]string
	calls     []string
}

func (s *stubRunner) Run(_ context.Context, _ []string, args ...string) ([]byte, error) {
	key := strings.Join(args, " ")
	s.calls = append(s.calls, key)
	if out, ok := s.responses[key]; ok {
		return []byte(out), nil
	}
	return nil, &oerrors.CommandExitError{Command: "git " + key, Code: 128, Stderr: "fatal: unexpected"}
}

func newStub() *stubRunner {
	return &stubRunner{responses: map[string]string{
		"rev-parse HEAD":              testRevision + "\n",
		"rev-parse --short HEAD":      "0123456\n",
		"rev-parse --short=10 HEAD":   "0123456789\n",
		"rev-parse --abbrev-ref HEAD": "main\n",
		"tag -l --points-at HEAD":     "v1.2.0\nnightly\n",
		"tag -l --points-at HEAD v*":  "v1.2.0\n",

		"--no-pager log -1 --no-color --format=%an": "Ada Lovelace\n",
	}}
}

// isolate keeps user and project config out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GITREV_CONFIG", "")
	t.Chdir(t.TempDir())
}

// execute runs a fresh command tree and returns stdout.
func execute(t *testing.T, runner *stubRunner, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(pipeline.Deps{Runner: runner, Environ: []string{"CI=true"}})
	return executeCmd(root, args...)
}

func executeCmd(cmd *cobra.Command, args ...string) (string, error) {
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
