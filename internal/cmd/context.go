package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/opmodel/gitrev/internal/errors"
	"github.com/opmodel/gitrev/internal/output"
	"github.com/opmodel/gitrev/internal/pipeline"
)

// newContextCmd creates the context command, which prints the data a
// template would be rendered against.
func newContextCmd(g *globalFlags, deps pipeline.Deps) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "context",
		Short: "Print the template context",
		Long: `Print the data a template is rendered against, in the order templates
see it: revision, rev_short, branch, tags, env, extra.

Examples:
  # Inspect the context as JSON
  gitrev context

  # As YAML, with extra variables and only release tags
  gitrev context -f yaml -t 'v*' --vars '{"channel":"beta"}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputFormat, ok := output.ParseOutputFormat(format)
			if !ok {
				return NewExitError(oerrors.Wrap(oerrors.ErrConfig,
					fmt.Sprintf("unknown format %q (valid: %s)", format, strings.Join(output.ValidFormats(), ", "))),
					ExitFailure)
			}

			opts, err := g.resolve(cmd, "", "", false)
			if err != nil {
				return err
			}

			tctx, err := pipeline.BuildContext(context.Background(), opts, deps)
			if err != nil {
				return NewExitError(err, ExitFailure)
			}

			if err := output.WriteContext(cmd.OutOrStdout(), tctx, outputFormat); err != nil {
				return NewExitError(err, ExitFailure)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json",
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))

	return cmd
}
