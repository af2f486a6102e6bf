// Package config handles configuration loading and management for
// ticklist. It supports XDG config paths and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds all configuration for ticklist.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Output  OutputConfig  `mapstructure:"output"`
}

// StorageConfig selects and locates the persistence backend.
type StorageConfig struct {
	// Backend is "json" or "sqlite".
	Backend string `mapstructure:"backend"`
	// Path overrides the data file location. Empty uses the XDG
	// data directory.
	Path string `mapstructure:"path"`
}

// TUIConfig holds interactive mode settings.
type TUIConfig struct {
	// Watch reloads the view when another process rewrites the data file.
	Watch bool `mapstructure:"watch"`
}

// OutputConfig holds plain output settings.
type OutputConfig struct {
	// Color enables urgency coloring in list output.
	Color bool `mapstructure:"color"`
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q (expected %s or %s)",
			c.Storage.Backend, BackendJSON, BackendSQLite)
	}
}

// Load loads configuration from the XDG config path and environment
// variables. Precedence (highest to lowest):
// 1. Environment variables (TICKLIST_STORAGE_BACKEND, TICKLIST_STORAGE_PATH)
// 2. User config (~/.config/ticklist/config.yaml)
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(getUserConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	v.BindEnv("storage.backend", "TICKLIST_STORAGE_BACKEND")
	v.BindEnv("storage.path", "TICKLIST_STORAGE_PATH")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Storage.Path = os.ExpandEnv(cfg.Storage.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Storage.Path = os.ExpandEnv(cfg.Storage.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the current configuration to the user config file.
func Save(cfg *Config) error {
	userConfigDir := getUserConfigDir()
	if err := os.MkdirAll(userConfigDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(userConfigDir, "config.yaml"))

	v.Set("storage.backend", cfg.Storage.Backend)
	v.Set("storage.path", cfg.Storage.Path)
	v.Set("tui.watch", cfg.TUI.Watch)
	v.Set("output.color", cfg.Output.Color)

	return v.WriteConfig()
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendJSON,
		},
		TUI: TUIConfig{
			Watch: true,
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.backend", BackendJSON)
	v.SetDefault("storage.path", "")
	v.SetDefault("tui.watch", true)
	v.SetDefault("output.color", true)
}

// getUserConfigDir returns the XDG config directory for ticklist.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "ticklist")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "ticklist")
	}
	return filepath.Join(home, ".config", "ticklist")
}
