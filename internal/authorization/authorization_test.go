// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/crewline/fieldcrm/internal/storage"
	"github.com/crewline/fieldcrm/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go

func TestAuthorizer_IsGlobalAdmin(t *testing.T) {
	identityID := "auth0|admin-1"

	testCases := []struct {
		name           string
		setupMocks     func(*MockAuthzStoreInterface)
		expectedResult bool
		expectedErr    bool
	}{
		{
			name: "admin identity",
			setupMocks: func(mockStore *MockAuthzStoreInterface) {
				mockStore.EXPECT().GetIdentity(gomock.Any(), identityID).
					Return(&types.Identity{ID: identityID, IsGlobalAdmin: true}, nil)
			},
			expectedResult: true,
		},
		{
			name: "regular identity",
			setupMocks: func(mockStore *MockAuthzStoreInterface) {
				mockStore.EXPECT().GetIdentity(gomock.Any(), identityID).
					Return(&types.Identity{ID: identityID}, nil)
			},
			expectedResult: false,
		},
		{
			name: "unknown identity is not an admin",
			setupMocks: func(mockStore *MockAuthzStoreInterface) {
				mockStore.EXPECT().GetIdentity(gomock.Any(), identityID).
					Return(nil, storage.ErrNotFound)
			},
			expectedResult: false,
		},
		{
			name: "storage error",
			setupMocks: func(mockStore *MockAuthzStoreInterface) {
				mockStore.EXPECT().GetIdentity(gomock.Any(), identityID).
					Return(nil, errors.New("connection refused"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := NewMockAuthzStoreInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
				Return(context.Background(), trace.SpanFromContext(context.Background())).
				AnyTimes()
			tc.setupMocks(mockStore)

			a := NewAuthorizer(mockStore, mockTracer, mockMonitor, mockLogger)

			result, err := a.IsGlobalAdmin(context.Background(), identityID)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if result != tc.expectedResult {
				t.Errorf("expected result %v, got %v", tc.expectedResult, result)
			}
		})
	}
}

func TestAuthorizer_CanView(t *testing.T) {
	identityID := "auth0|user-1"
	storeID := "0191e3a8-2c89-7bb3-9c35-0f5f0e3c9a11"

	testCases := []struct {
		name           string
		setupMocks     func(*MockAuthzStoreInterface)
		expectedResult bool
		expectedErr    bool
	}{
		{
			name: "global admin views any store without a permission row",
			setupMocks: func(mockStore *MockAuthzStoreInterface) {
				mockStore.EXPECT().GetIdentity(gomock.Any(), identityID).
					Return(&types.Identity{ID: identityID, IsGlobalAdmin: true}, nil)
			},
			expectedResult: true,
		},
		{
			name: "permission row grants view",
			setupMocks: func(mockStore *MockAuthzStoreInterface) {
				mockStore.EXPECT().GetIdentity(gomock.Any(), identityID).
					Return(&types.Identity{ID: identityID}, nil)
				mockStore.EXPECT().GetPermission(gomock.Any(), identityID, storeID).
					Return(&types.StorePermission{IdentityID: identityID, StoreID: storeID}, nil)
			},
			expectedResult: true,
		},
		{
			name: "view-only permission row still grants view",
			setupMocks: func(mockStore *MockAuthzStoreInterface) {
				mockStore.EXPECT().GetIdentity(gomock.Any(), identityID).
					Return(&types.Identity{ID: identityID}, nil)
				mockStore.EXPECT().GetPermission(gomock.Any(), identityID, storeID).
					Return(&types.StorePermission{IdentityID: identityID, StoreID: storeID, CanEdit: false}, nil)
			},
			expectedResult: true,
		},
		{
			name: "no permission row denies view",
			setupMocks: func(mockStore *MockAuthzStoreInterface) {
				mockStore.EXPECT().GetIdentity(gomock.Any(), identityID).
					Return(&types.Identity{ID: identityID}, nil)
				mockStore.EXPECT().GetPermission(gomock.Any(), identityID, storeID).
					Return(nil, storage.ErrNotFound)
			},
			expectedResult: false,
		},
		{
			name: "unknown identity denied without error",
			setupMocks: func(mockStore *MockAuthzStoreInterface) {
				mockStore.EXPECT().GetIdentity(gomock.Any(), identityID).
					Return(nil, storage.ErrNotFound)
				mockStore.EXPECT().GetPermission(gomock.Any(), identityID, storeID).
					Return(nil, storage.ErrNotFound)
			},
			expectedResult: false,
		},
		{
			name: "storage error surfaces",
			setupMocks: func(mockStore *MockAuthzStoreInterface) {
				mockStore.EXPECT().GetIdentity(gomock.Any(), identityID).
					Return(&types.Identity{ID: identityID}, nil)
				mockStore.EXPECT().GetPermission(gomock.Any(), identityID, storeID).
					Return(nil, errors.New("connection refused"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := NewMockAuthzStoreInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
				Return(context.Background(), trace.SpanFromContext(context.Background())).
				AnyTimes()
			tc.setupMocks(mockStore)

			a := NewAuthorizer(mockStore, mockTracer, mockMonitor, mockLogger)

			result, err := a.CanView(context.Background(), identityID, storeID)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if result != tc.expectedResult {
				t.Errorf("expected result %v, got %v", tc.expectedResult, result)
			}
		})
	}
}

func TestAuthorizer_CanEdit(t *testing.T) {
	identityID := "auth0|user-1"
	storeID := "0191e3a8-2c89-7bb3-9c35-0f5f0e3c9a11"

	testCases := []struct {
		name           string
		setupMocks     func(*MockAuthzStoreInterface)
		expectedResult bool
		expectedErr    bool
	}{
		{
			name: "global admin edits any store",
			setupMocks: func(mockStore *MockAuthzStoreInterface) {
				mockStore.EXPECT().GetIdentity(gomock.Any(), identityID).
					Return(&types.Identity{ID: identityID, IsGlobalAdmin: true}, nil)
			},
			expectedResult: true,
		},
		{
			name: "edit permission grants edit",
			setupMocks: func(mockStore *MockAuthzStoreInterface) {
				mockStore.EXPECT().GetIdentity(gomock.Any(), identityID).
					Return(&types.Identity{ID: identityID}, nil)
				mockStore.EXPECT().GetPermission(gomock.Any(), identityID, storeID).
					Return(&types.StorePermission{IdentityID: identityID, StoreID: storeID, CanEdit: true}, nil)
			},
			expectedResult: true,
		},
		{
			name: "view-only permission denies edit",
			setupMocks: func(mockStore *MockAuthzStoreInterface) {
				mockStore.EXPECT().GetIdentity(gomock.Any(), identityID).
					Return(&types.Identity{ID: identityID}, nil)
				mockStore.EXPECT().GetPermission(gomock.Any(), identityID, storeID).
					Return(&types.StorePermission{IdentityID: identityID, StoreID: storeID, CanEdit: false}, nil)
			},
			expectedResult: false,
		},
		{
			name: "no permission row denies edit",
			setupMocks: func(mockStore *MockAuthzStoreInterface) {
				mockStore.EXPECT().GetIdentity(gomock.Any(), identityID).
					Return(&types.Identity{ID: identityID}, nil)
				mockStore.EXPECT().GetPermission(gomock.Any(), identityID, storeID).
					Return(nil, storage.ErrNotFound)
			},
			expectedResult: false,
		},
		{
			name: "storage error surfaces",
			setupMocks: func(mockStore *MockAuthzStoreInterface) {
				mockStore.EXPECT().GetIdentity(gomock.Any(), identityID).
					Return(nil, errors.New("connection refused"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := NewMockAuthzStoreInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
				Return(context.Background(), trace.SpanFromContext(context.Background())).
				AnyTimes()
			tc.setupMocks(mockStore)

			a := NewAuthorizer(mockStore, mockTracer, mockMonitor, mockLogger)

			result, err := a.CanEdit(context.Background(), identityID, storeID)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if result != tc.expectedResult {
				t.Errorf("expected result %v, got %v", tc.expectedResult, result)
			}
		})
	}
}
