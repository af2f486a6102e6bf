package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ticklist/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Manage configuration",
	Long: `View or modify ticklist configuration.

Without arguments, displays current configuration.
With one argument (key), displays the value for that key.
With two arguments (key value), sets the configuration value.

Configuration is stored at ~/.config/ticklist/config.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		switch len(args) {
		case 0:
			displayAllConfig(cfg)
		case 1:
			displayConfigKey(cfg, args[0])
		default:
			setConfigKey(cfg, args[0], args[1])
		}
	},
}

// displayAllConfig prints all configuration values.
func displayAllConfig(cfg *config.Config) {
	pathDisplay := cfg.Storage.Path
	if pathDisplay == "" {
		pathDisplay = "(default)"
	}

	fmt.Printf("storage.backend: %s\n", cfg.Storage.Backend)
	fmt.Printf("storage.path: %s\n", pathDisplay)
	fmt.Printf("tui.watch: %t\n", cfg.TUI.Watch)
	fmt.Printf("output.color: %t\n", cfg.Output.Color)
}

// displayConfigKey prints a single configuration value.
func displayConfigKey(cfg *config.Config, key string) {
	value, err := getConfigValue(cfg, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(value)
}

// setConfigKey sets a configuration value and saves the config.
func setConfigKey(cfg *config.Config, key, value string) {
	if err := setConfigValue(cfg, key, value); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := config.Save(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Set %s = %s\n", key, value)
}

// getConfigValue retrieves a configuration value by dot-notation key.
func getConfigValue(cfg *config.Config, key string) (string, error) {
	switch strings.ToLower(key) {
	case "storage.backend":
		return cfg.Storage.Backend, nil
	case "storage.path":
		if cfg.Storage.Path == "" {
			return "(default)", nil
		}
		return cfg.Storage.Path, nil
	case "tui.watch":
		return strconv.FormatBool(cfg.TUI.Watch), nil
	case "output.color":
		return strconv.FormatBool(cfg.Output.Color), nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// setConfigValue sets a configuration value by dot-notation key.
func setConfigValue(cfg *config.Config, key, value string) error {
	switch strings.ToLower(key) {
	case "storage.backend":
		if value != config.BackendJSON && value != config.BackendSQLite {
			return fmt.Errorf("invalid backend %q (expected %s or %s)",
				value, config.BackendJSON, config.BackendSQLite)
		}
		cfg.Storage.Backend = value
	case "storage.path":
		cfg.Storage.Path = value
	case "tui.watch":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for tui.watch: %w", err)
		}
		cfg.TUI.Watch = b
	case "output.color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for output.color: %w", err)
		}
		cfg.Output.Color = b
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}
