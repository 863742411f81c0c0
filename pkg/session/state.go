// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

type fileState struct {
	ActiveStoreID string `json:"active_store_id"`
}

// FileStateStore keeps the selection in a small JSON file, typically
// under the user's config directory.
type FileStateStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStateStore(path string) *FileStateStore {
	return &FileStateStore{path: path}
}

// DefaultStatePath places the state file under os.UserConfigDir.
func DefaultStatePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config dir: %w", err)
	}
	return filepath.Join(dir, "fieldcrm", "state.json"), nil
}

func (f *FileStateStore) Load() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read state file: %w", err)
	}

	var state fileState
	if err := json.Unmarshal(data, &state); err != nil {
		// A corrupt state file is treated as no selection rather
		// than locking the operator out.
		return "", nil
	}

	return state.ActiveStoreID, nil
}

func (f *FileStateStore) Save(storeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.Marshal(fileState{ActiveStoreID: storeID})
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create state dir: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

func (f *FileStateStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryStateStore is an in-process StateStore, used in tests and in
// callers that do not want persistence.
type MemoryStateStore struct {
	mu            sync.Mutex
	activeStoreID string
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{}
}

func (m *MemoryStateStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeStoreID, nil
}

func (m *MemoryStateStore) Save(storeID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeStoreID = storeID
	return nil
}

func (m *MemoryStateStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeStoreID = ""
	return nil
}
