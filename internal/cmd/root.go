package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/opmodel/gitrev/internal/config"
	"github.com/opmodel/gitrev/internal/output"
	"github.com/opmodel/gitrev/internal/pipeline"
	"github.com/opmodel/gitrev/internal/version"
)

// globalFlags holds flags shared by the root command and its subcommands,
// plus the configuration loaded in PersistentPreRunE.
type globalFlags struct {
	configFile   string
	dir          string
	verbose      bool
	timestamps   bool
	tagPattern   string
	extraVars    string
	varsFile     string
	shortLength  int
	strict       bool
	helperErrors string

	cfg *config.Config
}

// renderFlags holds flags that only apply to rendering.
type renderFlags struct {
	output string
	debug  bool
}

// NewRootCmd creates the root command for gitrev.
func NewRootCmd() *cobra.Command {
	return newRootCmd(pipeline.Deps{})
}

// newRootCmd builds the command tree with injectable pipeline collaborators.
func newRootCmd(deps pipeline.Deps) *cobra.Command {
	g := &globalFlags{}
	r := &renderFlags{}

	rootCmd := &cobra.Command{
		Use:   "gitrev TEMPLATE [OUTPUT]",
		Short: "Render templates with git revision information",
		Long: `gitrev renders a text template against metadata describing the current
git checkout, the process environment, and optional extra variables.

Template data:
  .revision    full commit id of HEAD
  .rev_short   abbreviated commit id
  .branch      current branch name (HEAD when detached)
  .tags        tags pointing at HEAD
  .env         environment variables
  .extra       object given with --vars / --vars-file

The git_log_format helper runs git log for HEAD with the given format:
  {{ git_log_format "%an <%ae>" }}

Examples:
  # Render to stdout
  gitrev version.go.tmpl

  # Render to a file, only listing release tags
  gitrev version.go.tmpl -o version.go -t 'v*'

  # Pass extra variables
  gitrev build-info.json.tmpl build-info.json --vars '{"channel":"beta"}'`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.initialize(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, g, r, deps)
		},
	}

	g.AddTo(rootCmd)
	r.AddTo(rootCmd)

	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(newContextCmd(g, deps))
	rootCmd.AddCommand(NewInitCmd())

	return rootCmd
}

// AddTo registers the shared flags as persistent flags on cmd.
func (g *globalFlags) AddTo(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&g.configFile, "config", "", "Path to config file (env: GITREV_CONFIG)")
	pf.StringVarP(&g.dir, "dir", "C", "", "Run git in this directory")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "Enable verbose output")
	pf.BoolVar(&g.timestamps, "timestamps", true, "Show timestamps in log output")
	pf.StringVarP(&g.tagPattern, "tag-pattern", "t", "",
		"Only list tags matching this glob (env: GITREV_TAG_PATTERN)")
	pf.StringVarP(&g.extraVars, "vars", "e", "", "Extra variables as a JSON object, available as .extra")
	pf.StringVar(&g.varsFile, "vars-file", "",
		"JSON or YAML file with extra variables (env: GITREV_VARS_FILE)")
	pf.IntVarP(&g.shortLength, "short", "s", 0,
		"Length of .rev_short; 0 uses git's default (env: GITREV_SHORT_LENGTH)")
	pf.BoolVar(&g.strict, "strict", false, "Fail on references to missing keys (env: GITREV_STRICT)")
	pf.StringVar(&g.helperErrors, "helper-errors", "fail",
		"What a failed git_log_format query does: fail, ignore (env: GITREV_HELPER_ERRORS)")
}

// AddTo registers the render-only flags on cmd.
func (r *renderFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&r.output, "output", "o", "", "Write the result to this file instead of stdout")
	cmd.Flags().BoolVarP(&r.debug, "debug", "d", false, "Print the template context before the result")
}

// initialize loads configuration and sets up logging.
func (g *globalFlags) initialize(cmd *cobra.Command) error {
	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: g.configFile,
		RepoDir:   g.dir,
	})
	if err != nil {
		return err
	}

	cfg, err := config.NewLoader().Load(pathResult.ConfigPath, pathResult.Required)
	if err != nil {
		return NewExitError(wrapConfig(err), ExitFailure)
	}
	g.cfg = cfg

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: g.verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(g.timestamps)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	info := version.Get()
	output.Debug("gitrev started",
		"version", info.Version,
		"config", pathResult.ConfigPath,
		"configSource", pathResult.Source,
	)

	return nil
}

// resolve merges the command line over the loaded configuration.
func (g *globalFlags) resolve(cmd *cobra.Command, templatePath, outputPath string, debug bool) (*config.Options, error) {
	flags := cmd.Flags()
	opts, err := config.Resolve(config.Flags{
		TemplatePath:    templatePath,
		OutputPath:      outputPath,
		ExtraVars:       g.extraVars,
		Debug:           debug,
		RepoDir:         g.dir,
		TagPattern:      g.tagPattern,
		TagPatternSet:   flags.Changed("tag-pattern"),
		VarsFile:        g.varsFile,
		VarsFileSet:     flags.Changed("vars-file"),
		ShortLength:     g.shortLength,
		ShortLengthSet:  flags.Changed("short"),
		Strict:          g.strict,
		StrictSet:       flags.Changed("strict"),
		HelperErrors:    g.helperErrors,
		HelperErrorsSet: flags.Changed("helper-errors"),
	}, g.cfg)
	if err != nil {
		return nil, NewExitError(err, ExitFailure)
	}
	return opts, nil
}

func runRender(cmd *cobra.Command, args []string, g *globalFlags, r *renderFlags, deps pipeline.Deps) error {
	outputPath := r.output
	if len(args) == 2 {
		if outputPath != "" && outputPath != args[1] {
			return NewExitError(errOutputConflict(outputPath, args[1]), ExitFailure)
		}
		outputPath = args[1]
	}

	opts, err := g.resolve(cmd, args[0], outputPath, r.debug)
	if err != nil {
		return err
	}

	if deps.Sink == nil {
		sink := output.NewSink()
		sink.Stdout = cmd.OutOrStdout()
		deps.Sink = sink
	}

	if _, err := pipeline.Run(context.Background(), opts, deps); err != nil {
		return NewExitError(err, ExitFailure)
	}
	return nil
}
