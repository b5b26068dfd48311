// Package config loads the application-level configuration (storage backend
// selection, data location, debug flag) from a YAML file. User-facing
// settings live in the store, not here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Backend selects the persistence backend.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

// Config is the top-level application configuration.
type Config struct {
	// Storage selects the KV backend: "file" (one JSON file per key) or
	// "sqlite" (a single database file).
	Storage Backend `yaml:"storage"`

	// DataDir is where blobs, backups and logs live.
	DataDir string `yaml:"data_dir"`

	// Debug mirrors logs to stderr at debug level.
	Debug bool `yaml:"debug"`
}

// Default returns the in-memory default configuration.
func Default() Config {
	return Config{
		Storage: BackendFile,
		DataDir: "~/.local/share/gigcal",
	}
}

// Normalize fills missing values so partially-filled configs from older
// versions still behave.
func (c *Config) Normalize() {
	if c.Storage == "" {
		c.Storage = BackendFile
	}
	if c.DataDir == "" {
		c.DataDir = Default().DataDir
	}
}

// Validate rejects unknown backend names.
func (c Config) Validate() error {
	switch c.Storage {
	case BackendFile, BackendSQLite:
		return nil
	}
	return fmt.Errorf("unknown storage backend %q (expected file or sqlite)", c.Storage)
}

// Load reads the config file at path. A missing file yields the defaults;
// that is not an error.
func Load(path string) (Config, error) {
	path = ExpandHome(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the config file, creating parent directories as needed.
func Save(path string, cfg Config) error {
	path = ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ExpandHome resolves a leading ~/ against the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
