// Package cmd provides command implementations for gitrev.
package cmd

// Exit codes. Every failure maps to ExitFailure; the stage that failed is
// reported in the diagnostic line instead.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates any failure: config, vars, git, template, or output.
	ExitFailure = 9
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitFailure:
		return "Failure"
	default:
		return "Unknown"
	}
}
