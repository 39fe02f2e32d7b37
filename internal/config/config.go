// Package config provides configuration management for fieldrules using Viper.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// AppName is the application name used for config file naming.
const AppName = "fieldrules"

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// ErrInvalidConfig indicates configuration validation failed.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the top-level configuration structure.
type Config struct {
	// RulesFile is the rules document used when --rules is not given.
	RulesFile string `mapstructure:"rules_file" yaml:"rules_file"`
	Output    string `mapstructure:"output" yaml:"output"`
	Color     bool   `mapstructure:"color" yaml:"color"`
}

// New returns a Viper instance with the search paths, environment binding
// and defaults of fieldrules.
func New() *viper.Viper {
	v := viper.New()

	v.SetConfigName(AppName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))

	v.SetEnvPrefix("FIELDRULES")
	v.AutomaticEnv()

	v.SetDefault("rules_file", "")
	v.SetDefault("output", OutputText)
	v.SetDefault("color", true)

	return v
}

// Load reads the configuration. An explicit path must exist; without one a
// missing file just means defaults.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
		return nil
	default:
		return errors.Wrapf(ErrInvalidConfig, "output must be %q or %q, got %q", OutputText, OutputJSON, c.Output)
	}
}
