package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	// Theme is the catppuccin flavor to use (mocha, macchiato, frappe, latte)
	Theme string `yaml:"theme"`

	// HistoryFile overrides the history file path ($HISTFILE / ~/.bash_history)
	HistoryFile string `yaml:"history_file"`

	// MaxRows caps the number of result rows regardless of terminal height
	// (0 means use the full viewport)
	MaxRows int `yaml:"max_rows"`

	// NoInject prints the selected command to stdout instead of writing it
	// into the terminal input buffer
	NoInject bool `yaml:"no_inject"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Theme: "mocha",
	}
}

// Load reads the config from a YAML file, falling back to defaults
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) //nolint:gosec // config path from known locations
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDefaultPath attempts to load config from standard locations
func LoadFromDefaultPath() (*Config, error) {
	// Check in order: current dir, ~/.config/shellhist/, XDG_CONFIG_HOME
	paths := []string{
		"config.yaml",
		filepath.Join(os.Getenv("HOME"), ".config", "shellhist", "config.yaml"),
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "shellhist", "config.yaml"))
	}

	for _, path := range paths {
		cleanPath := filepath.Clean(path)
		if _, err := os.Stat(cleanPath); err == nil {
			return Load(cleanPath)
		}
	}

	return DefaultConfig(), nil
}
