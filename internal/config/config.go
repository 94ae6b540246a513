// Package config loads the app settings file. Settings cover file locations
// and presentation defaults only; nothing here affects sampling.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the app settings.
type Config struct {
	// RosterPath is the class,student CSV file.
	RosterPath string `yaml:"roster"`

	// MessagesPath is the rating,message CSV file.
	MessagesPath string `yaml:"messages"`

	// SpinSeconds is the default slot animation length.
	SpinSeconds int `yaml:"spin_seconds"`

	// SoundEnabled toggles audio cues in the presentation layer.
	SoundEnabled bool `yaml:"sound"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		RosterPath:   "assets/students.csv",
		MessagesPath: "assets/messages.csv",
		SpinSeconds:  10,
		SoundEnabled: true,
	}
}

// Load reads the YAML config at path, falling back to defaults for absent
// fields. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.SpinSeconds < 1 {
		cfg.SpinSeconds = 1
	}
	return cfg, nil
}

// DefaultPath resolves the config file location in priority order:
// 1. CLASSPICK_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/classpick/config.yaml
// 3. ~/.config/classpick/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("CLASSPICK_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "classpick", "config.yaml"), nil
}
