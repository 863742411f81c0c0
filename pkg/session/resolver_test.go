// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/crewline/fieldcrm/internal/types"
	"github.com/crewline/fieldcrm/pkg/accounts"
)

//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	storeA = "0191e3a8-2c89-7bb3-9c35-0f5f0e3c9a11"
	storeB = "0191e3a8-2c89-7bb3-9c35-0f5f0e3c9a22"
)

func newResolverForTest(t *testing.T, state StateStore) (*Resolver, *MockClientInterface, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockClient := NewMockClientInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		Return(context.Background(), trace.SpanFromContext(context.Background())).
		AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()

	resolver := NewResolver(mockClient, state, mockTracer, mockLogger)
	return resolver, mockClient, ctrl
}

func regularMe(permissions ...*types.StorePermission) *accounts.Me {
	return &accounts.Me{
		Identity:    &types.Identity{ID: "user-1", Email: "clerk@example.com"},
		Permissions: permissions,
		Stores:      nil,
	}
}

func adminMe(stores ...*types.Store) *accounts.Me {
	return &accounts.Me{
		Identity: &types.Identity{ID: "admin-1", Email: "hq@example.com", IsGlobalAdmin: true},
		Stores:   stores,
	}
}

func TestResolver_NonAdminAutoSelectsFirstPermittedStore(t *testing.T) {
	state := NewMemoryStateStore()
	resolver, mockClient, ctrl := newResolverForTest(t, state)
	defer ctrl.Finish()

	mockClient.EXPECT().GetMe(gomock.Any()).Return(regularMe(
		&types.StorePermission{StoreID: storeA, CanEdit: false},
		&types.StorePermission{StoreID: storeB, CanEdit: true},
	), nil)

	if err := resolver.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := resolver.ActiveStoreID(); got != storeA {
		t.Errorf("expected first permitted store %s, got %q", storeA, got)
	}
	if saved, _ := state.Load(); saved != storeA {
		t.Errorf("selection must be persisted, got %q", saved)
	}
}

func TestResolver_AdminAutoSelectsOnlyWithSingleStore(t *testing.T) {
	tests := []struct {
		name           string
		stores         []*types.Store
		expectedActive string
	}{
		{
			name:           "single store deployment auto-selects",
			stores:         []*types.Store{{ID: storeA, Name: "Main St"}},
			expectedActive: storeA,
		},
		{
			name: "multiple stores force an explicit pick",
			stores: []*types.Store{
				{ID: storeA, Name: "Main St"},
				{ID: storeB, Name: "Harbor Rd"},
			},
			expectedActive: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewMemoryStateStore()
			resolver, mockClient, ctrl := newResolverForTest(t, state)
			defer ctrl.Finish()

			mockClient.EXPECT().GetMe(gomock.Any()).Return(adminMe(tt.stores...), nil)

			if err := resolver.Refresh(context.Background()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := resolver.ActiveStoreID(); got != tt.expectedActive {
				t.Errorf("expected active store %q, got %q", tt.expectedActive, got)
			}
		})
	}
}

func TestResolver_RevokedSavedStoreIsNeverKept(t *testing.T) {
	state := NewMemoryStateStore()
	if err := state.Save(storeB); err != nil {
		t.Fatal(err)
	}

	resolver, mockClient, ctrl := newResolverForTest(t, state)
	defer ctrl.Finish()

	// storeB was revoked; only storeA remains.
	mockClient.EXPECT().GetMe(gomock.Any()).Return(regularMe(
		&types.StorePermission{StoreID: storeA, CanEdit: true},
	), nil)

	if err := resolver.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := resolver.ActiveStoreID(); got != storeA {
		t.Errorf("expected fallback to %s, got %q", storeA, got)
	}
	if got := resolver.ActiveStoreID(); got == storeB {
		t.Error("revoked store must never remain active")
	}
}

func TestResolver_RevokedSavedStoreWithNoRemainingAccess(t *testing.T) {
	state := NewMemoryStateStore()
	if err := state.Save(storeB); err != nil {
		t.Fatal(err)
	}

	resolver, mockClient, ctrl := newResolverForTest(t, state)
	defer ctrl.Finish()

	mockClient.EXPECT().GetMe(gomock.Any()).Return(regularMe(), nil)

	if err := resolver.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := resolver.ActiveStoreID(); got != "" {
		t.Errorf("expected no active store, got %q", got)
	}
	if saved, _ := state.Load(); saved != "" {
		t.Errorf("persisted selection must be cleared, got %q", saved)
	}
	if resolver.HasAnyAccess() {
		t.Error("identity with no permissions must report no access")
	}
}

func TestResolver_FetchFailureKeepsLastKnownGood(t *testing.T) {
	state := NewMemoryStateStore()
	resolver, mockClient, ctrl := newResolverForTest(t, state)
	defer ctrl.Finish()

	mockClient.EXPECT().GetMe(gomock.Any()).Return(regularMe(
		&types.StorePermission{StoreID: storeA, CanEdit: true},
	), nil)
	if err := resolver.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mockClient.EXPECT().GetMe(gomock.Any()).Return(nil, errors.New("connection refused"))
	if err := resolver.Refresh(context.Background()); err == nil {
		t.Fatal("expected the fetch error to surface")
	}

	if got := resolver.ActiveStoreID(); got != storeA {
		t.Errorf("transient failure must not eject the operator, got %q", got)
	}
	if !resolver.CanEdit(storeA) {
		t.Error("capabilities must keep answering from the last snapshot")
	}
}

func TestResolver_SetActiveStore(t *testing.T) {
	state := NewMemoryStateStore()
	resolver, mockClient, ctrl := newResolverForTest(t, state)
	defer ctrl.Finish()

	mockClient.EXPECT().GetMe(gomock.Any()).Return(regularMe(
		&types.StorePermission{StoreID: storeA, CanEdit: false},
		&types.StorePermission{StoreID: storeB, CanEdit: true},
	), nil)
	if err := resolver.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := resolver.SetActiveStore(storeB); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resolver.ActiveStoreID(); got != storeB {
		t.Errorf("expected %s, got %q", storeB, got)
	}
	if saved, _ := state.Load(); saved != storeB {
		t.Errorf("memory and disk must agree, disk has %q", saved)
	}

	if err := resolver.SetActiveStore("0191e3a8-0000-7bb3-9c35-0f5f0e3c9a99"); err == nil {
		t.Error("selecting an unpermitted store must fail")
	}
}

func TestResolver_CapabilitiesDefaultToActiveStore(t *testing.T) {
	state := NewMemoryStateStore()
	resolver, mockClient, ctrl := newResolverForTest(t, state)
	defer ctrl.Finish()

	mockClient.EXPECT().GetMe(gomock.Any()).Return(regularMe(
		&types.StorePermission{StoreID: storeA, CanEdit: false},
	), nil)
	if err := resolver.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !resolver.CanView("") {
		t.Error("expected view access to the active store")
	}
	if resolver.CanEdit("") {
		t.Error("view-only permission must not grant edit")
	}
	if resolver.CanView(storeB) {
		t.Error("no permission row means no access")
	}
	if resolver.IsAdmin() {
		t.Error("regular identity must not report admin")
	}
	if !resolver.HasAnyAccess() {
		t.Error("one permission row is enough for access")
	}
}
