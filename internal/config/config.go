package config

import (
	"fmt"
	"slices"
)

// Config represents the application configuration
type Config struct {
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// DefaultsConfig holds values used for manifest options that were not
// given on the command line
type DefaultsConfig struct {
	License string `mapstructure:"license" yaml:"license"`
	Account string `mapstructure:"account" yaml:"account"`
	Product string `mapstructure:"product" yaml:"product"`
	Notes   string `mapstructure:"notes" yaml:"notes"`
	CRS     string `mapstructure:"crs" yaml:"crs"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

var (
	validLevels  = []string{"debug", "info", "warn", "error", "off"}
	validFormats = []string{"pretty", "json"}
)

// Validate validates the configuration, filling empty logging values
func (c *Config) Validate() error {
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	if !slices.Contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging.level %q (use one of %v)", c.Logging.Level, validLevels)
	}
	if !slices.Contains(validFormats, c.Logging.Format) {
		return fmt.Errorf("invalid logging.format %q (use one of %v)", c.Logging.Format, validFormats)
	}
	return nil
}
