// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package donations

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

//go:generate mockgen -build_flags=--mod=mod -package donations -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package donations -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package donations -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package donations -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	testSubject = "auth0|user-1"
	storeA      = "0191e3a8-2c89-7bb3-9c35-0f5f0e3c9a11"
	donationID  = "0191e3a9-2222-7aaa-bbbb-000000000002"
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

func TestAPI_HandleCreate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface, *MockAuthzInterface)
		expectedStatus int
	}{
		{
			name: "editor records donation",
			body: `{"store_id":"` + storeA + `","amount_cents":2500,"currency":"eur"}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanEdit(gomock.Any(), testSubject, storeA).Return(true, nil)
				mockService.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, d *types.Donation) (*types.Donation, error) {
						if d.Currency != "EUR" {
							t.Errorf("currency must be normalized to upper case, got %q", d.Currency)
						}
						if d.ReceivedAt.IsZero() {
							t.Error("received_at must default to the current time")
						}
						d.ID = donationID
						return d, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "view-only caller gets not found",
			body: `{"store_id":"` + storeA + `","amount_cents":2500,"currency":"EUR"}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanEdit(gomock.Any(), testSubject, storeA).Return(false, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "zero amount rejected",
			body:           `{"store_id":"` + storeA + `","amount_cents":0,"currency":"EUR"}`,
			setupMocks:     func(*MockServiceInterface, *MockAuthzInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad currency rejected",
			body:           `{"store_id":"` + storeA + `","amount_cents":100,"currency":"EURO"}`,
			setupMocks:     func(*MockServiceInterface, *MockAuthzInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown contact reported as bad request",
			body: `{"store_id":"` + storeA + `","contact_id":"0191e3a9-3333-7aaa-bbbb-000000000003","amount_cents":100,"currency":"EUR"}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanEdit(gomock.Any(), testSubject, storeA).Return(true, nil)
				mockService.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).
					Return(nil, storage.ErrForeignKeyViolation)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, mockService, mockAuthz, ctrl := newAPIForTest(t)
			defer ctrl.Finish()

			tt.setupMocks(mockService, mockAuthz)

			req := httptest.NewRequest(http.MethodPost, "/donations", bytes.NewBufferString(tt.body))
			rr := serve(api, req, testSubject)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
		})
	}
}

func TestAPI_HandleGet_DeniedAndAbsentAreIdentical(t *testing.T) {
	api, mockService, mockAuthz, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	mockService.EXPECT().GetDonation(gomock.Any(), donationID).
		Return(&types.Donation{ID: donationID, StoreID: storeA, AmountCents: 2500, Currency: "EUR"}, nil)
	mockAuthz.EXPECT().CanView(gomock.Any(), testSubject, storeA).Return(false, nil)
	denied := serve(api, httptest.NewRequest(http.MethodGet, "/donations/"+donationID, nil), testSubject)

	mockService.EXPECT().GetDonation(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)
	absent := serve(api, httptest.NewRequest(http.MethodGet, "/donations/missing", nil), testSubject)

	if denied.Code != http.StatusNotFound || absent.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for both, got %d and %d", denied.Code, absent.Code)
	}
	if denied.Body.String() != absent.Body.String() {
		t.Errorf("denied and absent responses differ: %q vs %q", denied.Body.String(), absent.Body.String())
	}
}

func TestAPI_HandleList(t *testing.T) {
	api, mockService, mockAuthz, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	mockAuthz.EXPECT().CanView(gomock.Any(), testSubject, storeA).Return(true, nil)
	mockService.EXPECT().ListDonationsByStore(gomock.Any(), storeA).
		Return([]*types.Donation{{ID: donationID, StoreID: storeA, AmountCents: 2500, Currency: "EUR"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/donations?store_id="+storeA, nil)
	rr := serve(api, req, testSubject)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestAPI_HandleList_MissingStoreID(t *testing.T) {
	api, _, _, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	rr := serve(api, httptest.NewRequest(http.MethodGet, "/donations", nil), testSubject)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestAPI_HandleDelete_EditGated(t *testing.T) {
	api, mockService, mockAuthz, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	mockService.EXPECT().GetDonation(gomock.Any(), donationID).
		Return(&types.Donation{ID: donationID, StoreID: storeA}, nil)
	mockAuthz.EXPECT().CanEdit(gomock.Any(), testSubject, storeA).Return(true, nil)
	mockService.EXPECT().DeleteDonation(gomock.Any(), donationID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/donations/"+donationID, nil)
	rr := serve(api, req, testSubject)

	if rr.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}
}
