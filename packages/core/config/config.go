// Package config loads the verity configuration controlling failure
// message rendering and snapshot behavior. JSON and YAML config files
// are supported.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the verity settings.
type Config struct {
	MaxValueLength  int    `json:"maxValueLength,omitempty" yaml:"maxValueLength,omitempty"`
	MaxElements     int    `json:"maxElements,omitempty" yaml:"maxElements,omitempty"`
	NoColor         *bool  `json:"noColor,omitempty" yaml:"noColor,omitempty"`
	UpdateSnapshots *bool  `json:"updateSnapshots,omitempty" yaml:"updateSnapshots,omitempty"`
	SnapshotDir     string `json:"snapshotDir,omitempty" yaml:"snapshotDir,omitempty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		MaxValueLength: 200,
		MaxElements:    20,
	}
}

func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetNoColor returns the no-color setting, defaulting to false.
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// GetUpdateSnapshots returns the snapshot update setting, defaulting
// to false.
func (c *Config) GetUpdateSnapshots() bool {
	return getBool(c.UpdateSnapshots, false)
}

// Filenames lists the config file names searched for, in order.
var Filenames = []string{
	".verity.config.json",
	"verity.config.json",
	".verity.config.yaml",
	"verity.config.yaml",
}

// Load loads configuration from the given path, or searches the current
// directory when path is empty.
func Load(path string) (*Config, error) {
	if path != "" {
		return loadFile(path)
	}
	return FindAndLoad(".")
}

// FindAndLoad searches dir and its parent directories for a config
// file, so tests run from a package subdirectory still pick up the
// project-root config. Returns defaults when none exists.
func FindAndLoad(dir string) (*Config, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	for {
		for _, filename := range Filenames {
			configPath := filepath.Join(abs, filename)
			if _, err := os.Stat(configPath); err == nil {
				return loadFile(configPath)
			}
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			break
		}
		abs = parent
	}
	return DefaultConfig(), nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid YAML config %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid JSON config %s: %w", path, err)
		}
	}

	return cfg, nil
}

// Merge merges other into c, with other taking precedence.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c

	if other.MaxValueLength > 0 {
		result.MaxValueLength = other.MaxValueLength
	}
	if other.MaxElements > 0 {
		result.MaxElements = other.MaxElements
	}
	if other.SnapshotDir != "" {
		result.SnapshotDir = other.SnapshotDir
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}
	if other.UpdateSnapshots != nil {
		result.UpdateSnapshots = other.UpdateSnapshots
	}

	return &result
}

// Save writes the configuration to a file, JSON or YAML by extension.
func (c *Config) Save(path string) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
