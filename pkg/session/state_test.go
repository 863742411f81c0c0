// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStateStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	store := NewFileStateStore(path)

	if got, err := store.Load(); err != nil || got != "" {
		t.Fatalf("fresh store must load empty, got %q, %v", got, err)
	}

	if err := store.Save(storeA); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := store.Load(); got != storeA {
		t.Errorf("expected %s, got %q", storeA, got)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := store.Load(); got != "" {
		t.Errorf("expected empty after clear, got %q", got)
	}
}

func TestFileStateStore_CorruptFileLoadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	store := NewFileStateStore(path)
	if got, err := store.Load(); err != nil || got != "" {
		t.Errorf("corrupt state must load as no selection, got %q, %v", got, err)
	}
}
