// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package contacts

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

//go:generate mockgen -build_flags=--mod=mod -package contacts -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package contacts -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package contacts -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package contacts -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	testSubject = "auth0|user-1"
	storeA      = "0191e3a8-2c89-7bb3-9c35-0f5f0e3c9a11"
	contactID   = "0191e3a9-1111-7aaa-bbbb-000000000001"
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

// The gate runs against the store of the stored row, so a contact in a
// forbidden store is indistinguishable from one that does not exist.
func TestAPI_HandleGet_DeniedAndAbsentAreIdentical(t *testing.T) {
	api, mockService, mockAuthz, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	mockService.EXPECT().GetContact(gomock.Any(), contactID).
		Return(&types.Contact{ID: contactID, StoreID: storeA, Name: "Dana"}, nil)
	mockAuthz.EXPECT().CanView(gomock.Any(), testSubject, storeA).Return(false, nil)
	denied := serve(api, httptest.NewRequest(http.MethodGet, "/contacts/"+contactID, nil), testSubject)

	mockService.EXPECT().GetContact(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)
	absent := serve(api, httptest.NewRequest(http.MethodGet, "/contacts/missing", nil), testSubject)

	if denied.Code != http.StatusNotFound || absent.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for both, got %d and %d", denied.Code, absent.Code)
	}
	if denied.Body.String() != absent.Body.String() {
		t.Errorf("denied and absent responses differ: %q vs %q", denied.Body.String(), absent.Body.String())
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
			name: "editor creates contact",
			body: `{"store_id":"` + storeA + `","name":"Dana"}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanEdit(gomock.Any(), testSubject, storeA).Return(true, nil)
				mockService.EXPECT().CreateContact(gomock.Any(), gomock.Any()).
					Return(&types.Contact{ID: contactID, StoreID: storeA, Name: "Dana"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "view-only caller gets not found",
			body: `{"store_id":"` + storeA + `","name":"Dana"}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanEdit(gomock.Any(), testSubject, storeA).Return(false, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing name",
			body:           `{"store_id":"` + storeA + `"}`,
			setupMocks:     func(*MockServiceInterface, *MockAuthzInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, mockService, mockAuthz, ctrl := newAPIForTest(t)
			defer ctrl.Finish()

			tt.setupMocks(mockService, mockAuthz)

			req := httptest.NewRequest(http.MethodPost, "/contacts", bytes.NewBufferString(tt.body))
			rr := serve(api, req, testSubject)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
		})
	}
}

// A PATCH can never move a contact between stores: the store of the
// existing row decides access and the request carries no store field.
func TestAPI_HandleUpdate_IgnoresClientStore(t *testing.T) {
	api, mockService, mockAuthz, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	existing := &types.Contact{ID: contactID, StoreID: storeA, Name: "Dana"}
	mockService.EXPECT().GetContact(gomock.Any(), contactID).Return(existing, nil)
	mockAuthz.EXPECT().CanEdit(gomock.Any(), testSubject, storeA).Return(true, nil)
	mockService.EXPECT().UpdateContact(gomock.Any(), gomock.Any(), []string{"name"}).
		DoAndReturn(func(_ context.Context, c *types.Contact, _ []string) (*types.Contact, error) {
			if c.StoreID != storeA {
				t.Errorf("store id must come from the stored row, got %q", c.StoreID)
			}
			return c, nil
		})

	body := `{"name":"Dana Q.","store_id":"some-other-store"}`
	req := httptest.NewRequest(http.MethodPatch, "/contacts/"+contactID, bytes.NewBufferString(body))
	rr := serve(api, req, testSubject)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestAPI_HandleCreateReachout_InheritsContactStore(t *testing.T) {
	api, mockService, mockAuthz, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	existing := &types.Contact{ID: contactID, StoreID: storeA, Name: "Dana"}
	mockService.EXPECT().GetContact(gomock.Any(), contactID).Return(existing, nil)
	mockAuthz.EXPECT().CanEdit(gomock.Any(), testSubject, storeA).Return(true, nil)
	mockService.EXPECT().CreateReachout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *types.Reachout) (*types.Reachout, error) {
			if r.StoreID != storeA {
				t.Errorf("reachout must inherit the contact's store, got %q", r.StoreID)
			}
			if r.ContactID != contactID {
				t.Errorf("unexpected contact id %q", r.ContactID)
			}
			return r, nil
		})

	body := `{"method":"call","notes":"left voicemail"}`
	req := httptest.NewRequest(http.MethodPost, "/contacts/"+contactID+"/reachouts", bytes.NewBufferString(body))
	rr := serve(api, req, testSubject)

	if rr.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, rr.Code)
	}
}

func TestAPI_HandleCreateReachout_RejectsUnknownMethod(t *testing.T) {
	api, mockService, mockAuthz, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	existing := &types.Contact{ID: contactID, StoreID: storeA, Name: "Dana"}
	mockService.EXPECT().GetContact(gomock.Any(), contactID).Return(existing, nil)
	mockAuthz.EXPECT().CanEdit(gomock.Any(), testSubject, storeA).Return(true, nil)

	body := `{"method":"carrier-pigeon"}`
	req := httptest.NewRequest(http.MethodPost, "/contacts/"+contactID+"/reachouts", bytes.NewBufferString(body))
	rr := serve(api, req, testSubject)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestAPI_HandleDelete(t *testing.T) {
	api, mockService, mockAuthz, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	existing := &types.Contact{ID: contactID, StoreID: storeA, Name: "Dana"}
	mockService.EXPECT().GetContact(gomock.Any(), contactID).Return(existing, nil)
	mockAuthz.EXPECT().CanEdit(gomock.Any(), testSubject, storeA).Return(true, nil)
	mockService.EXPECT().DeleteContact(gomock.Any(), contactID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/contacts/"+contactID, nil)
	rr := serve(api, req, testSubject)

	if rr.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}
}
