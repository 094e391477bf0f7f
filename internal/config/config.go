// Package config provides configuration management for the searchql
// CLI using Viper.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// AppName is the application name used for config file naming.
const AppName = "searchql"

// Output format names accepted by the CLI.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config represents the top-level configuration structure.
type Config struct {
	Output  string `mapstructure:"output" yaml:"output"`
	Color   bool   `mapstructure:"color" yaml:"color"`
	Verbose bool   `mapstructure:"verbose" yaml:"verbose"`
}

// Init initializes Viper with default configuration. Call this once at
// application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths, in order of precedence.
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))

	viper.SetEnvPrefix("SEARCHQL")
	viper.AutomaticEnv()

	viper.SetDefault("output", OutputText)
	viper.SetDefault("color", true)
	viper.SetDefault("verbose", false)
}

// Load reads the configuration file. If path is provided, it reads
// from that specific file; otherwise it searches the default locations
// and falls back to defaults when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
			// Implicit load without a file is fine; use defaults.
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}

// ValidOutput reports whether name is a supported output format.
func ValidOutput(name string) bool {
	switch name {
	case OutputText, OutputJSON, OutputYAML:
		return true
	}
	return false
}
