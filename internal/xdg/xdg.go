// Package xdg resolves XDG Base Directory paths for pointmoney.
// Directories are created on first use with private permissions, since the
// state directory can hold the serialized auth state when no OS keychain
// is available.
package xdg

import (
	"os"
	"path/filepath"
)

const appDir = "pointmoney"

// ConfigDir returns the XDG config directory for pointmoney.
// It falls back to ~/.config/pointmoney when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	return ensure(os.Getenv("XDG_CONFIG_HOME"), ".config")
}

// StateDir returns the XDG state directory for pointmoney.
// It falls back to ~/.local/state/pointmoney when XDG_STATE_HOME is unset.
func StateDir() (string, error) {
	return ensure(os.Getenv("XDG_STATE_HOME"), ".local", "state")
}

func ensure(base string, fallback ...string) (string, error) {
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(append([]string{home}, fallback...)...)
	}
	dir := filepath.Join(base, appDir)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
