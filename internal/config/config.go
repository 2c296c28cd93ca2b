// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the auth state blob goes to the
// storage backend selected below.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/shinichismile/pointmoney01/internal/xdg"
)

// Backend names a storage backend for the persisted auth state.
type Backend string

// Supported auth state storage backends.
const (
	// BackendAuto picks the OS keychain when one is available and falls
	// back to a file in the XDG state dir otherwise.
	BackendAuto     Backend = "auto"
	BackendKeychain Backend = "keychain"
	BackendFile     Backend = "file"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	LogLevel string        `json:"log_level"`
	Storage  StorageConfig `json:"storage"`
	NoColor  bool          `json:"no_color"`
}

// StorageConfig selects where the serialized auth state is persisted.
type StorageConfig struct {
	Backend Backend `json:"backend"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults.
func Load() (Config, error) {
	var c Config
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.LogLevel = "info"
			c.Storage = StorageConfig{Backend: BackendAuto}
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendAuto
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
