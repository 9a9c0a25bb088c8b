package config

import (
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// ProjectConfigFile is the name of the project-level config file.
	ProjectConfigFile = "worklens.yaml"
	// UserConfigDir is the directory for user-level config.
	UserConfigDir = ".config/worklens"
	// UserConfigFile is the name of the user-level config file.
	UserConfigFile = "config.yaml"
)

// Loader handles configuration loading with layered precedence.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load loads configuration with layered precedence:
// 1. Defaults
// 2. User config (~/.config/worklens/config.yaml)
// 3. Project config (worklens.yaml in the current directory)
// 4. Environment (WORKLENS_DB)
func (l *Loader) Load() (*Config, error) {
	config := DefaultConfig()

	userConfigPath := l.userConfigPath()
	if userConfig, err := LoadFromFile(userConfigPath); err == nil {
		l.logger.Debug("loaded user config", slog.String("path", userConfigPath))
		config.Merge(userConfig)
	} else if !os.IsNotExist(err) {
		l.logger.Warn("failed to load user config",
			slog.String("path", userConfigPath), slog.String("error", err.Error()))
	}

	if projectConfig, err := LoadFromFile(ProjectConfigFile); err == nil {
		l.logger.Debug("loaded project config", slog.String("path", ProjectConfigFile))
		config.Merge(projectConfig)
	} else if !os.IsNotExist(err) {
		l.logger.Warn("failed to load project config",
			slog.String("path", ProjectConfigFile), slog.String("error", err.Error()))
	}

	if p := os.Getenv("WORKLENS_DB"); p != "" {
		config.Database.Path = p
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// EnsureUserConfig creates the user config file with defaults if it
// doesn't exist.
func (l *Loader) EnsureUserConfig() error {
	userConfigPath := l.userConfigPath()
	if _, err := os.Stat(userConfigPath); err == nil {
		return nil
	}

	config := DefaultConfig()
	if err := config.SaveToFile(userConfigPath); err != nil {
		return err
	}
	l.logger.Info("created default user config", slog.String("path", userConfigPath))
	return nil
}

// userConfigPath returns the path to the user config file.
func (l *Loader) userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}
