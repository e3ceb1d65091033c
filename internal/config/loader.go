package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for gitrev configuration.
const envPrefix = "GITREV"

// Loader handles loading and merging configuration from the config file and
// environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	// Set up environment variable bindings
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind specific environment variables
	_ = v.BindEnv("tagPattern", "GITREV_TAG_PATTERN")
	_ = v.BindEnv("shortLength", "GITREV_SHORT_LENGTH")
	_ = v.BindEnv("helperErrors", "GITREV_HELPER_ERRORS")
	_ = v.BindEnv("strict", "GITREV_STRICT")
	_ = v.BindEnv("varsFile", "GITREV_VARS_FILE")
	_ = v.BindEnv("log.timestamps", "GITREV_LOG_TIMESTAMPS")

	v.SetDefault("helperErrors", "fail")

	return &Loader{v: v}
}

// Load loads configuration from configFile. An empty path loads from the
// environment only. When required is false a missing file is not an error.
// Environment variables take precedence over file values.
func (l *Loader) Load(configFile string, required bool) (*Config, error) {
	if configFile != "" {
		expandedPath, err := ExpandPath(configFile)
		if err != nil {
			return nil, fmt.Errorf("expanding config path: %w", err)
		}

		l.v.SetConfigFile(expandedPath)
		l.v.SetConfigType("yaml")

		if err := l.v.ReadInConfig(); err != nil {
			_, notFound := err.(viper.ConfigFileNotFoundError)
			if !(notFound || os.IsNotExist(err)) || required {
				return nil, fmt.Errorf("reading config file %s: %w", expandedPath, err)
			}
			// Config file not found is OK, we'll use defaults + env vars
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return home + strings.TrimPrefix(path, "~"), nil
}
