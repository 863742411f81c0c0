// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package stores

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/crewline/fieldcrm/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package stores -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package stores -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package stores -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package stores -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	testSubject = "auth0|user-1"
	storeA      = "0191e3a8-2c89-7bb3-9c35-0f5f0e3c9a11"
	storeB      = "0191e3a8-9f12-7cc1-8d20-1a6f1e4d0b22"
)

func newServiceForTest(t *testing.T) (*Service, *MockStorageInterface, *MockAuthzInterface, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthzInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		Return(context.Background(), trace.SpanFromContext(context.Background())).
		AnyTimes()

	svc := NewService(mockStorage, mockAuthz, mockTracer, mockMonitor, mockLogger)
	return svc, mockStorage, mockAuthz, ctrl
}

func TestService_ListStores_AdminSeesAll(t *testing.T) {
	svc, mockStorage, mockAuthz, ctrl := newServiceForTest(t)
	defer ctrl.Finish()

	all := []*types.Store{{ID: storeA}, {ID: storeB}}
	mockAuthz.EXPECT().IsGlobalAdmin(gomock.Any(), testSubject).Return(true, nil)
	mockStorage.EXPECT().ListStores(gomock.Any()).Return(all, nil)

	got, err := svc.ListStores(context.Background(), testSubject)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 stores, got %d", len(got))
	}
}

func TestService_ListStores_RegularUserSeesPermitted(t *testing.T) {
	svc, mockStorage, mockAuthz, ctrl := newServiceForTest(t)
	defer ctrl.Finish()

	mockAuthz.EXPECT().IsGlobalAdmin(gomock.Any(), testSubject).Return(false, nil)
	mockStorage.EXPECT().ListStoresByIdentityID(gomock.Any(), testSubject).
		Return([]*types.Store{{ID: storeA}}, nil)

	got, err := svc.ListStores(context.Background(), testSubject)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != storeA {
		t.Errorf("expected only the permitted store, got %v", got)
	}
}

func TestService_UpdateStore_ReturnsFreshRow(t *testing.T) {
	svc, mockStorage, _, ctrl := newServiceForTest(t)
	defer ctrl.Finish()

	store := &types.Store{ID: storeA, Name: "Northgate II"}
	mockStorage.EXPECT().UpdateStore(gomock.Any(), store, []string{"name"}).Return(nil)
	mockStorage.EXPECT().GetStoreByID(gomock.Any(), storeA).
		Return(&types.Store{ID: storeA, Name: "Northgate II"}, nil)

	updated, err := svc.UpdateStore(context.Background(), store, []string{"name"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Northgate II" {
		t.Errorf("expected updated name, got %q", updated.Name)
	}
}

func TestService_CreateStore_StorageError(t *testing.T) {
	svc, mockStorage, _, ctrl := newServiceForTest(t)
	defer ctrl.Finish()

	mockStorage.EXPECT().CreateStore(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	if _, err := svc.CreateStore(context.Background(), &types.Store{Name: "Northgate"}); err == nil {
		t.Fatal("expected error but got none")
	}
}
