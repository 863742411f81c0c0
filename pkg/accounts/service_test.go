// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/crewline/fieldcrm/internal/storage"
	"github.com/crewline/fieldcrm/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package accounts -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package accounts -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package accounts -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package accounts -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	testSubject = "auth0|user-1"
	testEmail   = "clerk@example.com"
	storeA      = "0191e3a8-2c89-7bb3-9c35-0f5f0e3c9a11"
	storeB      = "0191e3a8-9f12-7cc1-8d20-1a6f1e4d0b22"
)

func newServiceForTest(t *testing.T) (*Service, *MockStorageInterface, *MockSecurityLoggerInterface, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthzInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockSecurity := NewMockSecurityLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		Return(context.Background(), trace.SpanFromContext(context.Background())).
		AnyTimes()
	mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()

	svc := NewService(mockStorage, mockAuthz, mockTracer, mockMonitor, mockLogger)
	return svc, mockStorage, mockSecurity, ctrl
}

func TestService_SyncUser_NoPendingInvitations(t *testing.T) {
	svc, mockStorage, _, ctrl := newServiceForTest(t)
	defer ctrl.Finish()

	identity := &types.Identity{ID: testSubject, Email: testEmail}
	mockStorage.EXPECT().UpsertIdentity(gomock.Any(), testSubject, testEmail).Return(identity, nil)
	mockStorage.EXPECT().ListPendingInvitationsByEmail(gomock.Any(), testEmail).Return(nil, nil)

	got, err := svc.SyncUser(context.Background(), testSubject, testEmail)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != testSubject {
		t.Errorf("expected identity %s, got %s", testSubject, got.ID)
	}
}

func TestService_SyncUser_AdminInvitationWins(t *testing.T) {
	svc, mockStorage, mockSecurity, ctrl := newServiceForTest(t)
	defer ctrl.Finish()

	identity := &types.Identity{ID: testSubject, Email: testEmail}
	invitations := []*types.Invitation{
		{ID: "inv-1", Email: testEmail, StoreID: storeA, CanEdit: true},
		{ID: "inv-2", Email: testEmail, IsGlobalAdmin: true},
	}

	mockStorage.EXPECT().UpsertIdentity(gomock.Any(), testSubject, testEmail).Return(identity, nil)
	mockStorage.EXPECT().ListPendingInvitationsByEmail(gomock.Any(), testEmail).Return(invitations, nil)
	mockStorage.EXPECT().SetGlobalAdmin(gomock.Any(), testSubject, true).Return(nil)
	// The per-store invitation is consumed but produces no permission row.
	mockStorage.EXPECT().MarkInvitationsAccepted(gomock.Any(), []string{"inv-1", "inv-2"}).Return(nil)
	mockSecurity.EXPECT().PermissionChange(testSubject, "", "grant_global_admin")

	got, err := svc.SyncUser(context.Background(), testSubject, testEmail)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsGlobalAdmin {
		t.Error("expected identity to become global admin")
	}
}

func TestService_SyncUser_ConflictingInvitationsEditWins(t *testing.T) {
	svc, mockStorage, mockSecurity, ctrl := newServiceForTest(t)
	defer ctrl.Finish()

	identity := &types.Identity{ID: testSubject, Email: testEmail}
	invitations := []*types.Invitation{
		{ID: "inv-1", Email: testEmail, StoreID: storeA, CanEdit: false},
		{ID: "inv-2", Email: testEmail, StoreID: storeA, CanEdit: true},
		{ID: "inv-3", Email: testEmail, StoreID: storeB, CanEdit: false},
	}

	mockStorage.EXPECT().UpsertIdentity(gomock.Any(), testSubject, testEmail).Return(identity, nil)
	mockStorage.EXPECT().ListPendingInvitationsByEmail(gomock.Any(), testEmail).Return(invitations, nil)
	mockStorage.EXPECT().GetPermission(gomock.Any(), testSubject, storeA).Return(nil, storage.ErrNotFound)
	mockStorage.EXPECT().GetPermission(gomock.Any(), testSubject, storeB).Return(nil, storage.ErrNotFound)
	mockStorage.EXPECT().UpsertPermission(gomock.Any(), &types.StorePermission{
		IdentityID: testSubject, StoreID: storeA, CanEdit: true,
	}).Return(nil, nil)
	mockStorage.EXPECT().UpsertPermission(gomock.Any(), &types.StorePermission{
		IdentityID: testSubject, StoreID: storeB, CanEdit: false,
	}).Return(nil, nil)
	mockStorage.EXPECT().MarkInvitationsAccepted(gomock.Any(), []string{"inv-1", "inv-2", "inv-3"}).Return(nil)
	mockSecurity.EXPECT().PermissionChange(testSubject, storeA, "grant_edit")
	mockSecurity.EXPECT().PermissionChange(testSubject, storeB, "grant_view")

	if _, err := svc.SyncUser(context.Background(), testSubject, testEmail); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_SyncUser_NeverDowngradesExistingGrant(t *testing.T) {
	svc, mockStorage, mockSecurity, ctrl := newServiceForTest(t)
	defer ctrl.Finish()

	identity := &types.Identity{ID: testSubject, Email: testEmail}
	invitations := []*types.Invitation{
		{ID: "inv-1", Email: testEmail, StoreID: storeA, CanEdit: false},
	}

	mockStorage.EXPECT().UpsertIdentity(gomock.Any(), testSubject, testEmail).Return(identity, nil)
	mockStorage.EXPECT().ListPendingInvitationsByEmail(gomock.Any(), testEmail).Return(invitations, nil)
	mockStorage.EXPECT().GetPermission(gomock.Any(), testSubject, storeA).
		Return(&types.StorePermission{IdentityID: testSubject, StoreID: storeA, CanEdit: true}, nil)
	mockStorage.EXPECT().UpsertPermission(gomock.Any(), &types.StorePermission{
		IdentityID: testSubject, StoreID: storeA, CanEdit: true,
	}).Return(nil, nil)
	mockStorage.EXPECT().MarkInvitationsAccepted(gomock.Any(), []string{"inv-1"}).Return(nil)
	mockSecurity.EXPECT().PermissionChange(testSubject, storeA, "grant_edit")

	if _, err := svc.SyncUser(context.Background(), testSubject, testEmail); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Two syncs back to back: the first consumes the invitation, the
// second sees no pending rows and grants nothing further.
func TestService_SyncUser_SecondRunIsNoOp(t *testing.T) {
	svc, mockStorage, mockSecurity, ctrl := newServiceForTest(t)
	defer ctrl.Finish()

	identity := &types.Identity{ID: testSubject, Email: testEmail}
	invitations := []*types.Invitation{
		{ID: "inv-1", Email: testEmail, StoreID: storeA, CanEdit: true},
	}

	mockStorage.EXPECT().UpsertIdentity(gomock.Any(), testSubject, testEmail).
		Return(identity, nil).Times(2)
	gomock.InOrder(
		mockStorage.EXPECT().ListPendingInvitationsByEmail(gomock.Any(), testEmail).Return(invitations, nil),
		mockStorage.EXPECT().ListPendingInvitationsByEmail(gomock.Any(), testEmail).Return(nil, nil),
	)
	mockStorage.EXPECT().GetPermission(gomock.Any(), testSubject, storeA).Return(nil, storage.ErrNotFound)
	mockStorage.EXPECT().UpsertPermission(gomock.Any(), &types.StorePermission{
		IdentityID: testSubject, StoreID: storeA, CanEdit: true,
	}).Return(nil, nil)
	mockStorage.EXPECT().MarkInvitationsAccepted(gomock.Any(), []string{"inv-1"}).Return(nil)
	mockSecurity.EXPECT().PermissionChange(testSubject, storeA, "grant_edit")

	if _, err := svc.SyncUser(context.Background(), testSubject, testEmail); err != nil {
		t.Fatalf("unexpected error on first sync: %v", err)
	}
	if _, err := svc.SyncUser(context.Background(), testSubject, testEmail); err != nil {
		t.Fatalf("unexpected error on second sync: %v", err)
	}
}

func TestService_SyncUser_StorageError(t *testing.T) {
	svc, mockStorage, _, ctrl := newServiceForTest(t)
	defer ctrl.Finish()

	mockStorage.EXPECT().UpsertIdentity(gomock.Any(), testSubject, testEmail).
		Return(nil, errors.New("connection refused"))

	if _, err := svc.SyncUser(context.Background(), testSubject, testEmail); err == nil {
		t.Fatal("expected error but got none")
	}
}

func TestService_GetMe_UnknownIdentity(t *testing.T) {
	svc, mockStorage, _, ctrl := newServiceForTest(t)
	defer ctrl.Finish()

	mockStorage.EXPECT().GetIdentity(gomock.Any(), testSubject).Return(nil, storage.ErrNotFound)

	me, err := svc.GetMe(context.Background(), testSubject)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if me.Identity != nil {
		t.Error("expected nil identity for unknown subject")
	}
	if len(me.Stores) != 0 || len(me.Permissions) != 0 {
		t.Error("expected empty view for unknown subject")
	}
}

func TestService_GetMe_GlobalAdminSeesAllStores(t *testing.T) {
	svc, mockStorage, _, ctrl := newServiceForTest(t)
	defer ctrl.Finish()

	identity := &types.Identity{ID: testSubject, Email: testEmail, IsGlobalAdmin: true}
	stores := []*types.Store{{ID: storeA, Name: "Northgate"}, {ID: storeB, Name: "Riverside"}}

	mockStorage.EXPECT().GetIdentity(gomock.Any(), testSubject).Return(identity, nil)
	mockStorage.EXPECT().ListStores(gomock.Any()).Return(stores, nil)

	me, err := svc.GetMe(context.Background(), testSubject)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(me.Stores) != 2 {
		t.Errorf("expected 2 stores, got %d", len(me.Stores))
	}
	if len(me.Permissions) != 0 {
		t.Error("admins hold no permission rows")
	}
}

func TestService_GetMe_RegularUserSeesPermittedStores(t *testing.T) {
	svc, mockStorage, _, ctrl := newServiceForTest(t)
	defer ctrl.Finish()

	identity := &types.Identity{ID: testSubject, Email: testEmail}
	permissions := []*types.StorePermission{{IdentityID: testSubject, StoreID: storeA, CanEdit: true}}
	stores := []*types.Store{{ID: storeA, Name: "Northgate"}}

	mockStorage.EXPECT().GetIdentity(gomock.Any(), testSubject).Return(identity, nil)
	mockStorage.EXPECT().ListPermissions(gomock.Any(), testSubject).Return(permissions, nil)
	mockStorage.EXPECT().ListStoresByIdentityID(gomock.Any(), testSubject).Return(stores, nil)

	me, err := svc.GetMe(context.Background(), testSubject)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(me.Stores) != 1 || me.Stores[0].ID != storeA {
		t.Errorf("expected only the permitted store, got %v", me.Stores)
	}
	if len(me.Permissions) != 1 || !me.Permissions[0].CanEdit {
		t.Errorf("expected the edit permission, got %v", me.Permissions)
	}
}

func TestService_SetGlobalAdmin(t *testing.T) {
	svc, mockStorage, mockSecurity, ctrl := newServiceForTest(t)
	defer ctrl.Finish()

	mockStorage.EXPECT().SetGlobalAdmin(gomock.Any(), testSubject, false).Return(nil)
	mockStorage.EXPECT().GetIdentity(gomock.Any(), testSubject).
		Return(&types.Identity{ID: testSubject, Email: testEmail}, nil)
	mockSecurity.EXPECT().PermissionChange(testSubject, "", "revoke_global_admin")

	identity, err := svc.SetGlobalAdmin(context.Background(), testSubject, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.IsGlobalAdmin {
		t.Error("expected admin flag cleared")
	}
}

func TestService_SetGlobalAdmin_UnknownUser(t *testing.T) {
	svc, mockStorage, _, ctrl := newServiceForTest(t)
	defer ctrl.Finish()

	mockStorage.EXPECT().SetGlobalAdmin(gomock.Any(), "ghost", true).Return(storage.ErrNotFound)

	_, err := svc.SetGlobalAdmin(context.Background(), "ghost", true)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestService_GrantPermission(t *testing.T) {
	svc, mockStorage, mockSecurity, ctrl := newServiceForTest(t)
	defer ctrl.Finish()

	target := "auth0|user-2"
	mockStorage.EXPECT().GetIdentity(gomock.Any(), target).
		Return(&types.Identity{ID: target, Email: "manager@example.com"}, nil)
	mockStorage.EXPECT().UpsertPermission(gomock.Any(), &types.StorePermission{
		IdentityID: target, StoreID: storeA, CanEdit: true,
	}).Return(&types.StorePermission{IdentityID: target, StoreID: storeA, CanEdit: true}, nil)
	mockSecurity.EXPECT().PermissionChange(target, storeA, "grant_edit")

	permission, err := svc.GrantPermission(context.Background(), target, storeA, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !permission.CanEdit {
		t.Error("expected an edit grant")
	}
}

func TestService_GrantPermission_UnknownIdentity(t *testing.T) {
	svc, mockStorage, _, ctrl := newServiceForTest(t)
	defer ctrl.Finish()

	mockStorage.EXPECT().GetIdentity(gomock.Any(), "auth0|ghost").Return(nil, storage.ErrNotFound)

	if _, err := svc.GrantPermission(context.Background(), "auth0|ghost", storeA, false); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestService_RevokePermission(t *testing.T) {
	svc, mockStorage, mockSecurity, ctrl := newServiceForTest(t)
	defer ctrl.Finish()

	target := "auth0|user-2"
	mockStorage.EXPECT().DeletePermission(gomock.Any(), target, storeA).Return(nil)
	mockSecurity.EXPECT().PermissionChange(target, storeA, "revoke")

	if err := svc.RevokePermission(context.Background(), target, storeA); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
