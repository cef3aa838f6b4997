package config

import (
	"os"
	"path/filepath"
)

// DefaultIndent is the default JSON indentation.
const DefaultIndent = "  "

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	color := true
	return &Config{
		Output: OutputConfig{
			Color:  &color,
			Indent: DefaultIndent,
		},
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "packer-inject", "config.json")
}
