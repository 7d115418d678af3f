package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	// Logging defaults
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "pretty"

	// EnvPrefix prefixes every environment override (PXM_DEFAULTS_ACCOUNT, ...)
	EnvPrefix = "PXM"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pxm"
	}
	return filepath.Join(home, ".pxm")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
