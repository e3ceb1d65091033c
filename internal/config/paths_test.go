package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	paths, err := DefaultPaths()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".gitrev"), paths.HomeDir)
	assert.Equal(t, filepath.Join(home, ".gitrev", "config.yaml"), paths.ConfigFile)
}

func TestProjectConfigFile(t *testing.T) {
	assert.Equal(t, ".gitrev.yaml", ProjectConfigFile(""))
	assert.Equal(t, filepath.Join("repo", ".gitrev.yaml"), ProjectConfigFile("repo"))
}
