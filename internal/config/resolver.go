package config

import (
	"os"

	oerrors "github.com/opmodel/gitrev/internal/errors"
	"github.com/opmodel/gitrev/internal/output"
	"github.com/opmodel/gitrev/internal/templates"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceProject indicates the per-repository config file.
	SourceProject ConfigSource = "project"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
	// RepoDir is the repository directory searched for .gitrev.yaml.
	RepoDir string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path. Empty when no file applies.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Required is true when the user named the file explicitly, so a
	// missing file is an error.
	Required bool
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) GITREV_CONFIG env, (3) .gitrev.yaml in the
// repository directory, (4) ~/.gitrev/config.yaml.
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	if opts.FlagValue != "" {
		return ResolveConfigPathResult{ConfigPath: opts.FlagValue, Source: SourceFlag, Required: true}, nil
	}
	if envValue := os.Getenv("GITREV_CONFIG"); envValue != "" {
		return ResolveConfigPathResult{ConfigPath: envValue, Source: SourceEnv, Required: true}, nil
	}
	if project := ProjectConfigFile(opts.RepoDir); fileExists(project) {
		return ResolveConfigPathResult{ConfigPath: project, Source: SourceProject}, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		// No home directory: run on flags and env alone.
		return ResolveConfigPathResult{Source: SourceDefault}, nil //nolint:nilerr // home is optional
	}
	return ResolveConfigPathResult{ConfigPath: paths.ConfigFile, Source: SourceDefault}, nil
}

// Flags carries the command line values. The *Set fields record whether
// the user passed the flag, so unset flags fall through to the config.
type Flags struct {
	TemplatePath string
	OutputPath   string
	ExtraVars    string
	Debug        bool
	RepoDir      string

	TagPattern    string
	TagPatternSet bool

	VarsFile    string
	VarsFileSet bool

	ShortLength    int
	ShortLengthSet bool

	Strict    bool
	StrictSet bool

	HelperErrors    string
	HelperErrorsSet bool
}

// Resolve merges flags over cfg (which already reflects env over file) and
// validates the result.
func Resolve(flags Flags, cfg *Config) (*Options, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	opts := &Options{
		TemplatePath: flags.TemplatePath,
		OutputPath:   flags.OutputPath,
		ExtraVars:    flags.ExtraVars,
		Debug:        flags.Debug,
		RepoDir:      flags.RepoDir,
		TagPattern:   pick(flags.TagPatternSet, flags.TagPattern, cfg.TagPattern),
		VarsFile:     pick(flags.VarsFileSet, flags.VarsFile, cfg.VarsFile),
		ShortLength:  pick(flags.ShortLengthSet, flags.ShortLength, cfg.ShortLength),
		Strict:       pick(flags.StrictSet, flags.Strict, cfg.Strict),
	}

	policy, err := templates.ParseHelperPolicy(pick(flags.HelperErrorsSet, flags.HelperErrors, cfg.HelperErrors))
	if err != nil {
		return nil, err
	}
	opts.HelperPolicy = policy

	if err := Validate(opts); err != nil {
		return nil, oerrors.Wrap(oerrors.ErrConfig, err.Error())
	}

	output.Debug("resolved options",
		"template", opts.TemplatePath,
		"output", opts.OutputPath,
		"tagPattern", opts.TagPattern,
		"shortLength", opts.ShortLength,
		"strict", opts.Strict,
		"helperErrors", opts.HelperPolicy,
		"dir", opts.RepoDir,
	)

	return opts, nil
}

func pick[T any](set bool, flagValue, configValue T) T {
	if set {
		return flagValue
	}
	return configValue
}
