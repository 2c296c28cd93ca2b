// Copyright (c) 2025 pointmoney
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth implements persistence for authentication state.
//
// This file defines the Storage backends: the OS keychain (via
// internal/keychain), a plain file in the XDG state dir, and an in-memory
// variant for tests.
package auth

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/shinichismile/pointmoney01/internal/config"
	"github.com/shinichismile/pointmoney01/internal/keychain"
	"github.com/shinichismile/pointmoney01/internal/xdg"
)

// Storage persists the serialized auth state blob.
// Load returns an empty slice (and nil error) when nothing is stored.
type Storage interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Clear() error
}

// KeychainStorage keeps the blob in the OS keychain.
type KeychainStorage struct{}

// Load reads the blob from the keychain.
func (KeychainStorage) Load() ([]byte, error) {
	km, err := keychain.GetManager()
	if err != nil {
		return nil, err
	}
	return km.LoadAuthState()
}

// Save writes the blob to the keychain.
func (KeychainStorage) Save(data []byte) error {
	km, err := keychain.GetManager()
	if err != nil {
		return err
	}
	return km.SaveAuthState(data)
}

// Clear removes the blob from the keychain.
func (KeychainStorage) Clear() error {
	km, err := keychain.GetManager()
	if err != nil {
		return err
	}
	return km.ClearAuthState()
}

// stateFileName is the on-disk name of the auth state blob.
const stateFileName = "auth_state.json"

// FileStorage keeps the blob as a private file in the XDG state dir.
// It is the fallback for systems without a usable keychain.
type FileStorage struct {
	Path string
}

// NewFileStorage resolves the state file path under the XDG state dir.
func NewFileStorage() (*FileStorage, error) {
	dir, err := xdg.StateDir()
	if err != nil {
		return nil, err
	}
	return &FileStorage{Path: filepath.Join(dir, stateFileName)}, nil
}

// Load reads the state file. A missing file yields empty state.
func (f *FileStorage) Load() ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

// Save writes the state file with 0600 permissions.
func (f *FileStorage) Save(data []byte) error {
	return os.WriteFile(f.Path, data, 0o600)
}

// Clear removes the state file. Removing a missing file is not an error.
func (f *FileStorage) Clear() error {
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// MemoryStorage holds the blob in memory. Tests use it to exercise the
// store without touching the keychain or the filesystem.
type MemoryStorage struct {
	data []byte
}

// Load returns the stored blob.
func (m *MemoryStorage) Load() ([]byte, error) { return m.data, nil }

// Save replaces the stored blob.
func (m *MemoryStorage) Save(data []byte) error {
	m.data = append([]byte(nil), data...)
	return nil
}

// Clear drops the stored blob.
func (m *MemoryStorage) Clear() error {
	m.data = nil
	return nil
}

// DefaultStorage resolves the backend selected in configuration:
// "keychain", "file", or "auto" (keychain when one opens, file otherwise).
func DefaultStorage() (Storage, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	switch cfg.Storage.Backend {
	case config.BackendFile:
		return NewFileStorage()
	case config.BackendKeychain:
		if _, err := keychain.GetManager(); err != nil {
			return nil, err
		}
		return KeychainStorage{}, nil
	default:
		if _, err := keychain.GetManager(); err == nil {
			return KeychainStorage{}, nil
		}
		return NewFileStorage()
	}
}
