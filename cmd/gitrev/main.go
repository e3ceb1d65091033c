// Package main is the entry point for gitrev.
package main

import (
	"fmt"
	"os"

	"github.com/opmodel/gitrev/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cmd.Diagnostic(err))
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
