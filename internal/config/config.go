// Package config loads born-vision settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. BORN_VISION_LOG_LEVEL.
const EnvPrefix = "BORN_VISION"

// Output formats for listings.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// Config is the full configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Development bool   `mapstructure:"development" yaml:"development"`
}

// OutputConfig controls how the CLI prints listings.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Log:    LogConfig{Level: "info"},
		Output: OutputConfig{Format: FormatTable},
	}
}

// Load reads the configuration. An empty path uses defaults and the
// environment only; a missing file at an explicit path is an error.
func Load(path string) (Config, error) {
	v := viper.New()

	defaults := Defaults()
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.development", defaults.Log.Development)
	v.SetDefault("output.format", defaults.Output.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.Output.Format {
	case FormatTable, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("invalid output format %q (want table, yaml or json)", c.Output.Format)
	}
	if c.Log.Level == "" {
		return errors.New("log level must not be empty")
	}
	return nil
}
