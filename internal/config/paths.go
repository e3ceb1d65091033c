package config

import (
	"os"
	"path/filepath"
)

// ProjectConfigName is the per-repository config file name.
const ProjectConfigName = ".gitrev.yaml"

// Paths contains standard filesystem paths for gitrev.
type Paths struct {
	// ConfigFile is the path to the user config file (~/.gitrev/config.yaml).
	ConfigFile string

	// HomeDir is the gitrev home directory (~/.gitrev).
	HomeDir string
}

// DefaultPaths returns the default paths for gitrev.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	gitrevHome := filepath.Join(homeDir, ".gitrev")

	return &Paths{
		ConfigFile: filepath.Join(gitrevHome, "config.yaml"),
		HomeDir:    gitrevHome,
	}, nil
}

// ProjectConfigFile returns the per-repository config path for repoDir.
func ProjectConfigFile(repoDir string) string {
	if repoDir == "" {
		repoDir = "."
	}
	return filepath.Join(repoDir, ProjectConfigName)
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
