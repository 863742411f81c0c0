// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package stores

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

// A denied store and a missing store must be indistinguishable from the
// caller's side: same status, same body.
func TestAPI_HandleGet_DeniedAndAbsentAreIdentical(t *testing.T) {
	api, mockService, mockAuthz, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	// Denied: the gate says no, the service is never consulted.
	mockAuthz.EXPECT().CanView(gomock.Any(), testSubject, storeA).Return(false, nil)
	deniedReq := httptest.NewRequest(http.MethodGet, "/stores/"+storeA, nil)
	denied := serve(api, deniedReq, testSubject)

	// Absent: the gate would allow (admin), but the row is gone.
	mockAuthz.EXPECT().CanView(gomock.Any(), testSubject, storeB).Return(true, nil)
	mockService.EXPECT().GetStore(gomock.Any(), storeB).Return(nil, storage.ErrNotFound)
	absentReq := httptest.NewRequest(http.MethodGet, "/stores/"+storeB, nil)
	absent := serve(api, absentReq, testSubject)

	if denied.Code != http.StatusNotFound || absent.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for both, got %d and %d", denied.Code, absent.Code)
	}
	if denied.Body.String() != absent.Body.String() {
		t.Errorf("denied and absent responses differ: %q vs %q", denied.Body.String(), absent.Body.String())
	}
}

func TestAPI_HandleGet_Permitted(t *testing.T) {
	api, mockService, mockAuthz, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	mockAuthz.EXPECT().CanView(gomock.Any(), testSubject, storeA).Return(true, nil)
	mockService.EXPECT().GetStore(gomock.Any(), storeA).
		Return(&types.Store{ID: storeA, Name: "Northgate"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/stores/"+storeA, nil)
	rr := serve(api, req, testSubject)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
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
			name: "admin creates store",
			body: `{"name":"Northgate","city":"Leeds"}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().IsGlobalAdmin(gomock.Any(), testSubject).Return(true, nil)
				mockService.EXPECT().CreateStore(gomock.Any(), gomock.Any()).
					Return(&types.Store{ID: storeA, Name: "Northgate", City: "Leeds"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "non-admin forbidden",
			body: `{"name":"Northgate"}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().IsGlobalAdmin(gomock.Any(), testSubject).Return(false, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "missing name",
			body: `{"city":"Leeds"}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().IsGlobalAdmin(gomock.Any(), testSubject).Return(true, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, mockService, mockAuthz, ctrl := newAPIForTest(t)
			defer ctrl.Finish()

			tt.setupMocks(mockService, mockAuthz)

			req := httptest.NewRequest(http.MethodPost, "/stores", bytes.NewBufferString(tt.body))
			rr := serve(api, req, testSubject)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
		})
	}
}

func TestAPI_HandleUpdate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface, *MockAuthzInterface)
		expectedStatus int
	}{
		{
			name: "editor updates store",
			body: `{"name":"Northgate II"}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanEdit(gomock.Any(), testSubject, storeA).Return(true, nil)
				mockService.EXPECT().UpdateStore(gomock.Any(), gomock.Any(), []string{"name"}).
					Return(&types.Store{ID: storeA, Name: "Northgate II"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "view-only caller gets not found",
			body: `{"name":"Northgate II"}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanEdit(gomock.Any(), testSubject, storeA).Return(false, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "no updatable fields",
			body: `{}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanEdit(gomock.Any(), testSubject, storeA).Return(true, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, mockService, mockAuthz, ctrl := newAPIForTest(t)
			defer ctrl.Finish()

			tt.setupMocks(mockService, mockAuthz)

			req := httptest.NewRequest(http.MethodPatch, "/stores/"+storeA, bytes.NewBufferString(tt.body))
			rr := serve(api, req, testSubject)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
		})
	}
}

func TestAPI_HandleDelete_AdminOnly(t *testing.T) {
	api, mockService, mockAuthz, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	mockAuthz.EXPECT().IsGlobalAdmin(gomock.Any(), testSubject).Return(true, nil)
	mockService.EXPECT().DeleteStore(gomock.Any(), storeA).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/stores/"+storeA, nil)
	rr := serve(api, req, testSubject)

	if rr.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}
}

func TestAPI_HandleListUsers_EditGated(t *testing.T) {
	api, mockService, mockAuthz, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	mockAuthz.EXPECT().CanEdit(gomock.Any(), testSubject, storeA).Return(true, nil)
	mockService.EXPECT().ListStoreUsers(gomock.Any(), storeA).
		Return([]*types.StorePermission{{IdentityID: testSubject, StoreID: storeA, CanEdit: true}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/stores/"+storeA+"/users", nil)
	rr := serve(api, req, testSubject)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestAPI_HandleListUsers_DeniedIsNotFound(t *testing.T) {
	api, _, mockAuthz, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	mockAuthz.EXPECT().CanEdit(gomock.Any(), testSubject, storeA).Return(false, nil)

	req := httptest.NewRequest(http.MethodGet, "/stores/"+storeA+"/users", nil)
	rr := serve(api, req, testSubject)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
}
