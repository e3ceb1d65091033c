package templates

import (
	"fmt"
	"strings"

	oerrors "github.com/opmodel/gitrev/internal/errors"
	"github.com/opmodel/gitrev/internal/output"
)

// HelperName is the template function that splices git log output into the
// rendered text: {{ git_log_format "%h %s" }}.
const HelperName = "git_log_format"

// LogFormatFunc runs a git log query for the current revision with the given
// --format specifier.
type LogFormatFunc func(format string) (string, error)

// HelperPolicy decides what a failed helper query does to the render.
type HelperPolicy string

const (
	// HelperFail aborts the render with the query error.
	HelperFail HelperPolicy = "fail"

	// HelperIgnore logs a warning and renders nothing at the call site.
	HelperIgnore HelperPolicy = "ignore"
)

// ParseHelperPolicy parses a policy name. Empty means HelperFail.
func ParseHelperPolicy(s string) (HelperPolicy, error) {
	switch HelperPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", HelperFail:
		return HelperFail, nil
	case HelperIgnore:
		return HelperIgnore, nil
	default:
		return "", oerrors.Wrap(oerrors.ErrConfig,
			fmt.Sprintf("unknown helper error policy %q (valid: fail, ignore)", s))
	}
}

// logFormatHelper builds the git_log_format template function. Usage errors
// always fail the render; query failures follow policy.
func logFormatHelper(query LogFormatFunc, policy HelperPolicy) func(args ...any) (string, error) {
	return func(args ...any) (string, error) {
		if len(args) != 1 {
			return "", &oerrors.HelperUsageError{
				Helper: HelperName,
				Reason: fmt.Sprintf("one argument expected, got %d", len(args)),
			}
		}
		format, ok := args[0].(string)
		if !ok {
			return "", &oerrors.HelperUsageError{
				Helper: HelperName,
				Reason: fmt.Sprintf("only string argument is accepted, got %T", args[0]),
			}
		}
		if query == nil {
			return "", &oerrors.HelperUsageError{Helper: HelperName, Reason: "no log source configured"}
		}

		out, err := query(format)
		if err != nil {
			if policy == HelperIgnore {
				output.Warn("git log query failed, rendering nothing",
					"helper", HelperName,
					"format", format,
					"error", err,
				)
				return "", nil
			}
			return "", err
		}
		return strings.TrimSpace(out), nil
	}
}
