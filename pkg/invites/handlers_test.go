// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/crewline/fieldcrm/internal/storage"
	"github.com/crewline/fieldcrm/internal/types"
	"github.com/crewline/fieldcrm/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package invites -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invites -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invites -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invites -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	testSubject = "auth0|admin-1"
	storeA      = "0191e3a8-2c89-7bb3-9c35-0f5f0e3c9a11"
)

func newAPIForTest(t *testing.T) (*API, *MockServiceInterface, *MockAuthzInterface, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockService := NewMockServiceInterface(ctrl)
	mockAuthz := NewMockAuthzInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockSecurity := NewMockSecurityLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).
		AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()
	mockSecurity.EXPECT().AuthzFailure(gomock.Any(), gomock.Any()).AnyTimes()

	api := NewAPI(mockService, mockAuthz, mockTracer, mockMonitor, mockLogger)
	return api, mockService, mockAuthz, ctrl
}

func serve(api *API, req *http.Request, subject string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	api.RegisterEndpoints(router)

	if subject != "" {
		req = req.WithContext(authentication.WithUserID(req.Context(), subject))
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestAPI_HandleList(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		setupMocks     func(*MockServiceInterface, *MockAuthzInterface)
		expectedStatus int
	}{
		{
			name:   "editor lists store invitations",
			target: "/invites?store_id=" + storeA,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanEdit(gomock.Any(), testSubject, storeA).Return(true, nil)
				mockService.EXPECT().ListInvitationsByStore(gomock.Any(), storeA).
					Return([]*types.Invitation{{ID: "inv-1", Email: "clerk@example.com", StoreID: storeA}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "non-editor gets not found",
			target: "/invites?store_id=" + storeA,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanEdit(gomock.Any(), testSubject, storeA).Return(false, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing store_id",
			target:         "/invites",
			setupMocks:     func(*MockServiceInterface, *MockAuthzInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, mockService, mockAuthz, ctrl := newAPIForTest(t)
			defer ctrl.Finish()

			tt.setupMocks(mockService, mockAuthz)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := serve(api, req, testSubject)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
		})
	}
}

func TestAPI_HandleCreate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface, *MockAuthzInterface)
		expectedStatus int
	}{
		{
			name: "admin invites for a store",
			body: `{"email":"clerk@example.com","store_id":"` + storeA + `","can_edit":true}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().IsGlobalAdmin(gomock.Any(), testSubject).Return(true, nil)
				mockService.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).
					Return(&types.Invitation{ID: "inv-1", Email: "clerk@example.com", StoreID: storeA, CanEdit: true}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "admin invites a global admin without store",
			body: `{"email":"boss@example.com","is_global_admin":true}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().IsGlobalAdmin(gomock.Any(), testSubject).Return(true, nil)
				mockService.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).
					Return(&types.Invitation{ID: "inv-2", Email: "boss@example.com", IsGlobalAdmin: true}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "store invitation without store_id",
			body: `{"email":"clerk@example.com","can_edit":true}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().IsGlobalAdmin(gomock.Any(), testSubject).Return(true, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "non-admin forbidden",
			body: `{"email":"clerk@example.com","store_id":"` + storeA + `"}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().IsGlobalAdmin(gomock.Any(), testSubject).Return(false, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, mockService, mockAuthz, ctrl := newAPIForTest(t)
			defer ctrl.Finish()

			tt.setupMocks(mockService, mockAuthz)

			req := httptest.NewRequest(http.MethodPost, "/invites", bytes.NewBufferString(tt.body))
			rr := serve(api, req, testSubject)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
		})
	}
}

func TestAPI_HandleDelete_AdminOnly(t *testing.T) {
	api, _, mockAuthz, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	mockAuthz.EXPECT().IsGlobalAdmin(gomock.Any(), testSubject).Return(false, nil)

	req := httptest.NewRequest(http.MethodDelete, "/invites/inv-1", nil)
	rr := serve(api, req, testSubject)

	if rr.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, rr.Code)
	}
}

func TestAPI_HandleGet(t *testing.T) {
	api, mockService, mockAuthz, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	mockAuthz.EXPECT().IsGlobalAdmin(gomock.Any(), testSubject).Return(true, nil)
	mockService.EXPECT().GetInvitation(gomock.Any(), "inv-1").
		Return(&types.Invitation{ID: "inv-1", Email: "new@example.com", StoreID: storeA}, nil)

	req := httptest.NewRequest(http.MethodGet, "/invites/inv-1", nil)
	rr := serve(api, req, testSubject)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestAPI_HandleGet_UnknownInvitation(t *testing.T) {
	api, mockService, mockAuthz, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	mockAuthz.EXPECT().IsGlobalAdmin(gomock.Any(), testSubject).Return(true, nil)
	mockService.EXPECT().GetInvitation(gomock.Any(), "inv-404").Return(nil, storage.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/invites/inv-404", nil)
	rr := serve(api, req, testSubject)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
}
