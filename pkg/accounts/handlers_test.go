// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"bytes"
	"context"
	"encoding/json"
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

func serveAuthenticated(api *API, req *http.Request, subject string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	api.RegisterEndpoints(router)

	if subject != "" {
		principal := &authentication.Principal{ID: subject, Email: testEmail}
		req = req.WithContext(authentication.WithPrincipal(req.Context(), principal))
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestAPI_HandleGetMe(t *testing.T) {
	api, mockService, _, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	me := &Me{
		Identity: &types.Identity{ID: testSubject, Email: testEmail},
		Stores:   []*types.Store{{ID: storeA, Name: "Northgate"}},
	}
	mockService.EXPECT().GetMe(gomock.Any(), testSubject).Return(me, nil)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rr := serveAuthenticated(api, req, testSubject)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var got Me
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Identity == nil || got.Identity.ID != testSubject {
		t.Errorf("unexpected identity in response: %+v", got.Identity)
	}
}

func TestAPI_HandleGetMe_Unauthenticated(t *testing.T) {
	api, _, _, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rr := serveAuthenticated(api, req, "")

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestAPI_HandleSyncUser(t *testing.T) {
	api, mockService, _, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	mockService.EXPECT().SyncUser(gomock.Any(), testSubject, testEmail).
		Return(&types.Identity{ID: testSubject, Email: testEmail}, nil)

	req := httptest.NewRequest(http.MethodPost, "/users/sync", nil)
	rr := serveAuthenticated(api, req, testSubject)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

// A body-supplied email must never key the aggregation: the sync runs
// against the token's email claim, so a caller cannot harvest
// invitations addressed to someone else.
func TestAPI_HandleSyncUser_IgnoresBodyEmail(t *testing.T) {
	api, mockService, _, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	mockService.EXPECT().SyncUser(gomock.Any(), testSubject, testEmail).
		Return(&types.Identity{ID: testSubject, Email: testEmail}, nil)

	body := bytes.NewBufferString(`{"email":"victim-admin@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/users/sync", body)
	rr := serveAuthenticated(api, req, testSubject)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestAPI_HandleSyncUser_MissingEmailClaim(t *testing.T) {
	api, _, _, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/users/sync", nil)
	req = req.WithContext(authentication.WithUserID(req.Context(), testSubject))

	router := chi.NewRouter()
	api.RegisterEndpoints(router)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestAPI_HandleListUsers_RequiresAdmin(t *testing.T) {
	api, _, mockAuthz, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	mockAuthz.EXPECT().IsGlobalAdmin(gomock.Any(), testSubject).Return(false, nil)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rr := serveAuthenticated(api, req, testSubject)

	if rr.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, rr.Code)
	}
}

func TestAPI_HandleListUsers(t *testing.T) {
	api, mockService, mockAuthz, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	mockAuthz.EXPECT().IsGlobalAdmin(gomock.Any(), testSubject).Return(true, nil)
	mockService.EXPECT().ListUsers(gomock.Any()).
		Return([]*types.Identity{{ID: testSubject, Email: testEmail}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rr := serveAuthenticated(api, req, testSubject)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestAPI_HandleUpdateUser(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface, *MockAuthzInterface)
		expectedStatus int
	}{
		{
			name: "grant admin",
			body: `{"is_global_admin":true}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().IsGlobalAdmin(gomock.Any(), testSubject).Return(true, nil)
				mockService.EXPECT().SetGlobalAdmin(gomock.Any(), "user-2", true).
					Return(&types.Identity{ID: "user-2", IsGlobalAdmin: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown user",
			body: `{"is_global_admin":true}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().IsGlobalAdmin(gomock.Any(), testSubject).Return(true, nil)
				mockService.EXPECT().SetGlobalAdmin(gomock.Any(), "user-2", true).
					Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "missing flag",
			body: `{}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().IsGlobalAdmin(gomock.Any(), testSubject).Return(true, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "not an admin",
			body: `{"is_global_admin":true}`,
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

			req := httptest.NewRequest(http.MethodPatch, "/users/user-2", bytes.NewBufferString(tt.body))
			rr := serveAuthenticated(api, req, testSubject)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
		})
	}
}

func TestAPI_HandleGrantPermission(t *testing.T) {
	tests := []struct {
		name           string
		userID         string
		body           string
		setupMocks     func(*MockServiceInterface, *MockAuthzInterface)
		expectedStatus int
	}{
		{
			name:   "admin grants edit access",
			userID: "auth0|user-2",
			body:   `{"store_id":"` + storeA + `","can_edit":true}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().IsGlobalAdmin(gomock.Any(), testSubject).Return(true, nil)
				mockService.EXPECT().GrantPermission(gomock.Any(), "auth0|user-2", storeA, true).
					Return(&types.StorePermission{IdentityID: "auth0|user-2", StoreID: storeA, CanEdit: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "unknown user",
			userID: "auth0|ghost",
			body:   `{"store_id":"` + storeA + `"}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().IsGlobalAdmin(gomock.Any(), testSubject).Return(true, nil)
				mockService.EXPECT().GrantPermission(gomock.Any(), "auth0|ghost", storeA, false).
					Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "missing store_id",
			userID: "auth0|user-2",
			body:   `{"can_edit":true}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().IsGlobalAdmin(gomock.Any(), testSubject).Return(true, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "non-admin forbidden",
			userID: "auth0|user-2",
			body:   `{"store_id":"` + storeA + `"}`,
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

			req := httptest.NewRequest(http.MethodPut, "/users/"+tt.userID+"/permissions", bytes.NewBufferString(tt.body))
			rr := serveAuthenticated(api, req, testSubject)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
		})
	}
}

func TestAPI_HandleRevokePermission(t *testing.T) {
	api, mockService, mockAuthz, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	mockAuthz.EXPECT().IsGlobalAdmin(gomock.Any(), testSubject).Return(true, nil)
	mockService.EXPECT().RevokePermission(gomock.Any(), "auth0|user-2", storeA).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/users/auth0|user-2/permissions/"+storeA, nil)
	rr := serveAuthenticated(api, req, testSubject)

	if rr.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}
}
