package config

import (
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// UserConfigDir is the directory for user-level config, relative to home.
	UserConfigDir = ".config/studyflow"
	// UserConfigFile is the name of the user-level config file.
	UserConfigFile = "config.yaml"
)

// Loader handles configuration loading with layered precedence.
type Loader struct {
	logger *slog.Logger
	home   string
	getenv func(string) string
}

// NewLoader creates a loader for the current user and process environment.
func NewLoader(logger *slog.Logger) *Loader {
	home, _ := os.UserHomeDir()
	return NewLoaderAt(logger, home, os.Getenv)
}

// NewLoaderAt creates a loader with an explicit home directory and env source.
func NewLoaderAt(logger *slog.Logger, home string, getenv func(string) string) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	return &Loader{logger: logger, home: home, getenv: getenv}
}

// UserConfigPath returns the path of the user config file.
func (l *Loader) UserConfigPath() string {
	return filepath.Join(l.home, UserConfigDir, UserConfigFile)
}

// Load applies, in order: defaults, the user config file, environment
// variables. The result is validated.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig(l.home)

	path := l.UserConfigPath()
	if userCfg, err := LoadFromFile(path); err == nil {
		l.logger.Debug("loaded user config", slog.String("path", path))
		cfg.Merge(userCfg)
	} else if !os.IsNotExist(err) {
		l.logger.Warn("failed to load user config", slog.String("path", path), slog.String("error", err.Error()))
	}

	if err := cfg.ApplyEnv(l.getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
