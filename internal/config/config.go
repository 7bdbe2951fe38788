// Package config reads the optional user defaults file for the viewer.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rneiva/autoscroll/internal/validate"
)

// DefaultPath is where user defaults live unless overridden.
const DefaultPath = "~/.config/autoscroll/config.yaml"

// DefaultInterval is the built-in scroll interval in seconds.
const DefaultInterval = 1

// File is the on-disk shape of the defaults file.
type File struct {
	// DefaultInterval overrides the built-in one-second scroll interval.
	// The -s flag still beats it.
	DefaultInterval int `yaml:"default_interval" validate:"omitempty,gte=1,lte=59"`
}

// Load parses the defaults file at path. A missing file yields the built-in
// defaults; a present but malformed or out-of-range file is an error, since
// the viewer never retries or self-heals.
func Load(path string) (File, error) {
	cfg := File{DefaultInterval: DefaultInterval}

	expandedPath, err := expandTilde(path)
	if err != nil {
		return cfg, err
	}

	logrus.Debug("Loading config file from: ", expandedPath)
	data, err := os.ReadFile(expandedPath)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", expandedPath, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", expandedPath, err)
	}
	if cfg.DefaultInterval == 0 {
		cfg.DefaultInterval = DefaultInterval
	}
	if err := validate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", expandedPath, err)
	}
	return cfg, nil
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}
