// Package config provides configuration loading for WorkLens.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the complete WorkLens configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig configures the SQLite database.
type DatabaseConfig struct {
	// Path is the database file path (empty = XDG data dir default).
	Path string `yaml:"path"`
}

// CatalogConfig configures the question catalog source.
type CatalogConfig struct {
	// Path is a catalog JSON file to seed from (empty = embedded default).
	Path string `yaml:"path"`
}

// LogConfig configures logging output.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// File receives log lines; empty discards them. The TUI owns the
	// terminal, so logs never go to stderr while it is running.
	File string `yaml:"file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""}, // resolve via XDG at open time
		Catalog:  CatalogConfig{Path: ""},  // embedded catalog
		Log:      LogConfig{Level: "info", File: ""},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps the configured level name to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
}

// Merge overlays non-zero fields from other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Database.Path != "" {
		c.Database.Path = other.Database.Path
	}
	if other.Catalog.Path != "" {
		c.Catalog.Path = other.Catalog.Path
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.File != "" {
		c.Log.File = other.Log.File
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return &config, nil
}

// SaveToFile saves configuration to a YAML file, creating parent
// directories as needed.
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
