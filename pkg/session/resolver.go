// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/crewline/fieldcrm/internal/logging"
	"github.com/crewline/fieldcrm/internal/tracing"
	"github.com/crewline/fieldcrm/internal/types"
)

// Snapshot is one consistent view of the caller's authorization state
// as returned by the server. It is never mutated after Refresh.
type Snapshot struct {
	Identity    *types.Identity
	Permissions []*types.StorePermission
	Stores      []*types.Store
}

func (s *Snapshot) isAdmin() bool {
	return s.Identity != nil && s.Identity.IsGlobalAdmin
}

func (s *Snapshot) hasPermission(storeID string) bool {
	for _, p := range s.Permissions {
		if p.StoreID == storeID {
			return true
		}
	}
	return false
}

// Resolver fetches the caller's authorization summary and maintains
// the active store selection. A failed fetch never discards the last
// successfully resolved state, so a transient server error does not
// eject the operator from their workspace.
type Resolver struct {
	client ClientInterface
	state  StateStore
	tracer tracing.TracingInterface
	logger logging.LoggerInterface

	mu            sync.RWMutex
	snapshot      *Snapshot
	activeStoreID string
}

func NewResolver(
	client ClientInterface,
	state StateStore,
	tracer tracing.TracingInterface,
	logger logging.LoggerInterface,
) *Resolver {
	return &Resolver{
		client: client,
		state:  state,
		tracer: tracer,
		logger: logger,
	}
}

// Refresh fetches the authorization summary and re-resolves the active
// store. On fetch failure the previous snapshot and selection are kept
// and the error is returned for the caller to retry.
func (r *Resolver) Refresh(ctx context.Context) error {
	ctx, span := r.tracer.Start(ctx, "session.Resolver.Refresh")
	defer span.End()

	me, err := r.client.GetMe(ctx)
	if err != nil {
		r.logger.Warnf("permission fetch failed, keeping last known state: %v", err)
		return fmt.Errorf("failed to fetch permissions: %w", err)
	}

	snapshot := &Snapshot{
		Identity:    me.Identity,
		Permissions: me.Permissions,
		Stores:      me.Stores,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	active, err := r.resolveActiveStore(snapshot)
	if err != nil {
		return err
	}

	r.snapshot = snapshot
	r.activeStoreID = active
	return nil
}

// resolveActiveStore validates any saved selection against the fresh
// snapshot and falls back deterministically. Callers hold r.mu.
func (r *Resolver) resolveActiveStore(snapshot *Snapshot) (string, error) {
	saved, err := r.state.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load saved store: %w", err)
	}

	if saved != "" && !snapshot.isAdmin() && !snapshot.hasPermission(saved) {
		// Access was revoked or the store is gone. Never keep a
		// dangling selection.
		r.logger.Infof("clearing saved store %s: no longer permitted", saved)
		if err := r.state.Clear(); err != nil {
			return "", fmt.Errorf("failed to clear saved store: %w", err)
		}
		saved = ""
	}

	if saved != "" {
		return saved, nil
	}

	if snapshot.isAdmin() {
		// Admins are only auto-scoped in a single-store deployment.
		// With more stores they must pick explicitly.
		if len(snapshot.Stores) == 1 {
			id := snapshot.Stores[0].ID
			if err := r.state.Save(id); err != nil {
				return "", fmt.Errorf("failed to persist store selection: %w", err)
			}
			return id, nil
		}
		return "", nil
	}

	if len(snapshot.Permissions) > 0 {
		id := snapshot.Permissions[0].StoreID
		if err := r.state.Save(id); err != nil {
			return "", fmt.Errorf("failed to persist store selection: %w", err)
		}
		return id, nil
	}

	return "", nil
}

// ActiveStoreID returns the resolved selection, empty when unset.
func (r *Resolver) ActiveStoreID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.activeStoreID
}

// SetActiveStore updates the selection in memory and on disk under one
// lock, so the two can never be observed out of step. Non-admins may
// only select stores they hold a permission for.
func (r *Resolver) SetActiveStore(storeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.snapshot == nil {
		return fmt.Errorf("no permission snapshot loaded")
	}
	if !r.snapshot.isAdmin() && !r.snapshot.hasPermission(storeID) {
		return fmt.Errorf("no access to store %s", storeID)
	}

	if err := r.state.Save(storeID); err != nil {
		return fmt.Errorf("failed to persist store selection: %w", err)
	}
	r.activeStoreID = storeID
	return nil
}

// CanView reports view access to the given store, or to the active
// store when the id is empty.
func (r *Resolver) CanView(storeID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := r.snapshot
	if snapshot == nil {
		return false
	}
	if storeID == "" {
		storeID = r.activeStoreID
	}
	if storeID == "" {
		return false
	}
	if snapshot.isAdmin() {
		return true
	}
	return snapshot.hasPermission(storeID)
}

// CanEdit reports edit access to the given store, or to the active
// store when the id is empty.
func (r *Resolver) CanEdit(storeID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := r.snapshot
	if snapshot == nil {
		return false
	}
	if storeID == "" {
		storeID = r.activeStoreID
	}
	if storeID == "" {
		return false
	}
	if snapshot.isAdmin() {
		return true
	}
	for _, p := range snapshot.Permissions {
		if p.StoreID == storeID {
			return p.CanEdit
		}
	}
	return false
}

func (r *Resolver) IsAdmin() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot != nil && r.snapshot.isAdmin()
}

// HasAnyAccess gates the whole application: an identity with no admin
// flag and no permissions lands in a dead-end "no access" state.
func (r *Resolver) HasAnyAccess() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.snapshot == nil {
		return false
	}
	return r.snapshot.isAdmin() || len(r.snapshot.Permissions) > 0
}

// Snapshot returns the last successfully fetched state, nil before the
// first successful Refresh.
func (r *Resolver) Snapshot() *Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}
