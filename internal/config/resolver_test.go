package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/gitrev/internal/errors"
	"github.com/opmodel/gitrev/internal/templates"
)

func TestResolveConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv("GITREV_CONFIG", "/env/config.yaml")
		res, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: "/flag/config.yaml"})
		require.NoError(t, err)
		assert.Equal(t, "/flag/config.yaml", res.ConfigPath)
		assert.Equal(t, SourceFlag, res.Source)
		assert.True(t, res.Required)
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("GITREV_CONFIG", "/env/config.yaml")
		res, err := ResolveConfigPath(ResolveConfigPathOptions{})
		require.NoError(t, err)
		assert.Equal(t, "/env/config.yaml", res.ConfigPath)
		assert.Equal(t, SourceEnv, res.Source)
		assert.True(t, res.Required)
	})

	t.Run("project file", func(t *testing.T) {
		t.Setenv("GITREV_CONFIG", "")
		repo := t.TempDir()
		project := filepath.Join(repo, ProjectConfigName)
		require.NoError(t, os.WriteFile(project, []byte("strict: true\n"), 0o644))

		res, err := ResolveConfigPath(ResolveConfigPathOptions{RepoDir: repo})
		require.NoError(t, err)
		assert.Equal(t, project, res.ConfigPath)
		assert.Equal(t, SourceProject, res.Source)
		assert.False(t, res.Required)
	})

	t.Run("user default", func(t *testing.T) {
		t.Setenv("GITREV_CONFIG", "")
		res, err := ResolveConfigPath(ResolveConfigPathOptions{RepoDir: t.TempDir()})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".gitrev", "config.yaml"), res.ConfigPath)
		assert.Equal(t, SourceDefault, res.Source)
		assert.False(t, res.Required)
	})
}

func TestResolve_Precedence(t *testing.T) {
	cfg := &Config{
		TagPattern:   "v*",
		ShortLength:  10,
		HelperErrors: "ignore",
		Strict:       true,
		VarsFile:     "cfg.json",
	}

	t.Run("config values when flags unset", func(t *testing.T) {
		opts, err := Resolve(Flags{
			TemplatePath: "in.tmpl",
			TagPattern:   "ignored-*",
			ShortLength:  7,
		}, cfg)
		require.NoError(t, err)

		assert.Equal(t, "v*", opts.TagPattern)
		assert.Equal(t, 10, opts.ShortLength)
		assert.Equal(t, templates.HelperIgnore, opts.HelperPolicy)
		assert.True(t, opts.Strict)
		assert.Equal(t, "cfg.json", opts.VarsFile)
	})

	t.Run("flags override config", func(t *testing.T) {
		opts, err := Resolve(Flags{
			TemplatePath:    "in.tmpl",
			OutputPath:      "out.txt",
			ExtraVars:       `{"a":1}`,
			Debug:           true,
			RepoDir:         "repo",
			TagPattern:      "release-*",
			TagPatternSet:   true,
			ShortLength:     8,
			ShortLengthSet:  true,
			Strict:          false,
			StrictSet:       true,
			HelperErrors:    "fail",
			HelperErrorsSet: true,
			VarsFile:        "flag.yaml",
			VarsFileSet:     true,
		}, cfg)
		require.NoError(t, err)

		assert.Equal(t, "in.tmpl", opts.TemplatePath)
		assert.Equal(t, "out.txt", opts.OutputPath)
		assert.Equal(t, `{"a":1}`, opts.ExtraVars)
		assert.True(t, opts.Debug)
		assert.Equal(t, "repo", opts.RepoDir)
		assert.Equal(t, "release-*", opts.TagPattern)
		assert.Equal(t, 8, opts.ShortLength)
		assert.False(t, opts.Strict)
		assert.Equal(t, templates.HelperFail, opts.HelperPolicy)
		assert.Equal(t, "flag.yaml", opts.VarsFile)
	})

	t.Run("nil config", func(t *testing.T) {
		opts, err := Resolve(Flags{TemplatePath: "in.tmpl"}, nil)
		require.NoError(t, err)
		assert.Equal(t, templates.HelperFail, opts.HelperPolicy)
		assert.Zero(t, opts.ShortLength)
	})
}

func TestResolve_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		cfg   *Config
		want  string
	}{
		{
			name:  "unknown helper policy",
			flags: Flags{TemplatePath: "in.tmpl"},
			cfg:   &Config{HelperErrors: "retry"},
			want:  "unknown helper error policy",
		},
		{
			name:  "short length too small",
			flags: Flags{TemplatePath: "in.tmpl", ShortLength: 2, ShortLengthSet: true},
			want:  "shortLength: must be between 4 and 40, got 2",
		},
		{
			name:  "short length too large",
			flags: Flags{TemplatePath: "in.tmpl"},
			cfg:   &Config{ShortLength: 41},
			want:  "shortLength",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.flags, tt.cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrConfig))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(&Options{TemplatePath: "a.tmpl"}))
	assert.NoError(t, Validate(&Options{TemplatePath: "a.tmpl", ShortLength: 4}))
	assert.NoError(t, Validate(&Options{TemplatePath: "a.tmpl", ShortLength: 40}))

	err := Validate(&Options{TemplatePath: "a.tmpl", OutputPath: "a.tmpl", ShortLength: 3})
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 2)
	assert.Contains(t, err.Error(), "config validation failed")
}
