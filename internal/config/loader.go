package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/pxm-manifest/internal/utils"
)

// ErrConfigExists indicates a config file is already present
var ErrConfigExists = errors.New("config file already exists")

// Load loads configuration from file, environment, and defaults.
// An explicit cfgFile must exist; otherwise config.yaml is looked up in
// ConfigDir() only and may be absent. The working directory is never
// searched, so an unrelated project's config.yaml cannot change a manifest.
func Load(cfgFile string) (*Config, error) {
	cfg, _, err := LoadWithViper(cfgFile)
	return cfg, err
}

// LoadWithViper loads configuration and returns the viper instance
func LoadWithViper(cfgFile string) (*Config, *viper.Viper, error) {
	v := viper.New()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(utils.ExpandPath(cfgFile))
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// Environment variables (PXM_*)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return &cfg, v, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("defaults.license", d.Defaults.License)
	v.SetDefault("defaults.account", d.Defaults.Account)
	v.SetDefault("defaults.product", d.Defaults.Product)
	v.SetDefault("defaults.notes", d.Defaults.Notes)
	v.SetDefault("defaults.crs", d.Defaults.CRS)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// WriteDefault renders the default configuration as YAML at path.
// An existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	path = utils.ExpandPath(path)
	if !force && utils.FileExists(path) {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}

	if err := utils.EnsureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
