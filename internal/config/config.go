// Package config provides configuration loading and resolution.
package config

import (
	"github.com/opmodel/gitrev/internal/templates"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps"`
}

// Config is the on-disk configuration. Every field is optional; command
// line flags take precedence.
type Config struct {
	// TagPattern filters the tags listed for HEAD.
	// Env: GITREV_TAG_PATTERN
	TagPattern string `mapstructure:"tagPattern"`

	// ShortLength is the abbreviated revision length. Zero uses git's default.
	// Env: GITREV_SHORT_LENGTH
	ShortLength int `mapstructure:"shortLength"`

	// HelperErrors is the git_log_format failure policy: fail or ignore.
	// Env: GITREV_HELPER_ERRORS, Default: fail
	HelperErrors string `mapstructure:"helperErrors"`

	// Strict makes references to missing keys fail the render.
	// Env: GITREV_STRICT
	Strict bool `mapstructure:"strict"`

	// VarsFile is a JSON or YAML file with extra variables.
	// Env: GITREV_VARS_FILE
	VarsFile string `mapstructure:"varsFile"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log"`
}

// Options is the resolved, read-only configuration for one invocation.
type Options struct {
	// TemplatePath is the template file to render.
	TemplatePath string

	// OutputPath is the destination file. Empty means stdout.
	OutputPath string

	// TagPattern filters the tags listed for HEAD.
	TagPattern string

	// ExtraVars is the inline JSON object given with --vars.
	ExtraVars string

	// VarsFile is a JSON or YAML file with extra variables.
	VarsFile string

	// ShortLength is the abbreviated revision length. Zero uses git's default.
	ShortLength int

	// Debug dumps the context before the output.
	Debug bool

	// Strict makes references to missing keys fail the render.
	Strict bool

	// HelperPolicy is the git_log_format failure policy.
	HelperPolicy templates.HelperPolicy

	// RepoDir is the directory git runs in. Empty means the current directory.
	RepoDir string
}
