package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/opmodel/gitrev/internal/errors"
	"github.com/opmodel/gitrev/internal/output"
	"github.com/opmodel/gitrev/internal/templates"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	var (
		force bool
		list  bool
	)

	cmd := &cobra.Command{
		Use:   "init [TEMPLATE] [PATH]",
		Short: "Write a built-in starter template",
		Long: fmt.Sprintf(`Write one of the built-in templates to disk so it can be customized.

Templates:
  build-info     JSON document describing the build commit
  release-notes  Markdown release notes from the last commit
  version        Single line with the current tag or short revision
  version-go     Go source file with revision constants (default)

Examples:
  # Write version.go.tmpl to the current directory
  gitrev init

  # Write a specific template to a chosen path
  gitrev init build-info templates/build-info.json.tmpl

  # Show available templates
  gitrev init --list

Valid templates: %s`, strings.Join(templates.Names(), ", ")),
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				return listTemplates(cmd)
			}

			opts := templates.GenerateOptions{Force: force}
			if len(args) > 0 {
				if _, err := templates.Get(args[0]); err != nil {
					return NewExitError(oerrors.Wrap(oerrors.ErrConfig, err.Error()), ExitFailure)
				}
				opts.TemplateName = args[0]
			}
			if len(args) > 1 {
				opts.TargetPath = args[1]
			}

			result, err := templates.NewGenerator(opts).Generate()
			if err != nil {
				return NewExitError(oerrors.Wrap(oerrors.ErrOutput, err.Error()), ExitFailure)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Created %s from template %s",
				output.StyleNoun.Render(result.Path), output.StyleNoun.Render(result.TemplateName))))
			fmt.Fprintln(out, output.StyleDim.Render(fmt.Sprintf("  render it with: gitrev %s %s", result.Path, result.RenderTarget)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	cmd.Flags().BoolVar(&list, "list", false, "List built-in templates")

	return cmd
}

func listTemplates(cmd *cobra.Command) error {
	tbl := output.NewTable("NAME", "TARGET", "DESCRIPTION")
	for _, t := range templates.List() {
		tbl.Row(t.Name, t.Target, t.Description)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), tbl.String())
	return err
}
