// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package calendar

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/crewline/fieldcrm/internal/storage"
	"github.com/crewline/fieldcrm/internal/types"
	"github.com/crewline/fieldcrm/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package calendar -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package calendar -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package calendar -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package calendar -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	testSubject = "auth0|user-1"
	storeA      = "0191e3a8-2c89-7bb3-9c35-0f5f0e3c9a11"
	eventID     = "0191e3a9-4444-7aaa-bbbb-000000000004"
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
	starts := time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC).Format(time.RFC3339)
	ends := time.Date(2026, 9, 12, 12, 0, 0, 0, time.UTC).Format(time.RFC3339)

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface, *MockAuthzInterface)
		expectedStatus int
	}{
		{
			name: "editor schedules event",
			body: `{"store_id":"` + storeA + `","title":"Sidewalk sale","starts_at":"` + starts + `","ends_at":"` + ends + `"}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanEdit(gomock.Any(), testSubject, storeA).Return(true, nil)
				mockService.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).
					Return(&types.CalendarEvent{ID: eventID, StoreID: storeA, Title: "Sidewalk sale"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "view-only caller gets not found",
			body: `{"store_id":"` + storeA + `","title":"Sidewalk sale","starts_at":"` + starts + `","ends_at":"` + ends + `"}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanEdit(gomock.Any(), testSubject, storeA).Return(false, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "ends before it starts",
			body:           `{"store_id":"` + storeA + `","title":"Sidewalk sale","starts_at":"` + ends + `","ends_at":"` + starts + `"}`,
			setupMocks:     func(*MockServiceInterface, *MockAuthzInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing title",
			body:           `{"store_id":"` + storeA + `","starts_at":"` + starts + `","ends_at":"` + ends + `"}`,
			setupMocks:     func(*MockServiceInterface, *MockAuthzInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, mockService, mockAuthz, ctrl := newAPIForTest(t)
			defer ctrl.Finish()

			tt.setupMocks(mockService, mockAuthz)

			req := httptest.NewRequest(http.MethodPost, "/calendar-events", bytes.NewBufferString(tt.body))
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

	mockService.EXPECT().GetEvent(gomock.Any(), eventID).
		Return(&types.CalendarEvent{ID: eventID, StoreID: storeA, Title: "Sidewalk sale"}, nil)
	mockAuthz.EXPECT().CanView(gomock.Any(), testSubject, storeA).Return(false, nil)
	denied := serve(api, httptest.NewRequest(http.MethodGet, "/calendar-events/"+eventID, nil), testSubject)

	mockService.EXPECT().GetEvent(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)
	absent := serve(api, httptest.NewRequest(http.MethodGet, "/calendar-events/missing", nil), testSubject)

	if denied.Code != http.StatusNotFound || absent.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for both, got %d and %d", denied.Code, absent.Code)
	}
	if denied.Body.String() != absent.Body.String() {
		t.Errorf("denied and absent responses differ: %q vs %q", denied.Body.String(), absent.Body.String())
	}
}

// Shifting only starts_at past the stored ends_at must be rejected even
// though the request by itself looks well formed.
func TestAPI_HandleUpdate_RejectsInvertedWindow(t *testing.T) {
	api, mockService, mockAuthz, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	existing := &types.CalendarEvent{
		ID:       eventID,
		StoreID:  storeA,
		Title:    "Sidewalk sale",
		StartsAt: time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2026, 9, 12, 12, 0, 0, 0, time.UTC),
	}
	mockService.EXPECT().GetEvent(gomock.Any(), eventID).Return(existing, nil)
	mockAuthz.EXPECT().CanEdit(gomock.Any(), testSubject, storeA).Return(true, nil)

	body := `{"starts_at":"2026-09-12T13:00:00Z"}`
	req := httptest.NewRequest(http.MethodPatch, "/calendar-events/"+eventID, bytes.NewBufferString(body))
	rr := serve(api, req, testSubject)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestAPI_HandleUpdate(t *testing.T) {
	api, mockService, mockAuthz, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	existing := &types.CalendarEvent{
		ID:       eventID,
		StoreID:  storeA,
		Title:    "Sidewalk sale",
		StartsAt: time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2026, 9, 12, 12, 0, 0, 0, time.UTC),
	}
	mockService.EXPECT().GetEvent(gomock.Any(), eventID).Return(existing, nil)
	mockAuthz.EXPECT().CanEdit(gomock.Any(), testSubject, storeA).Return(true, nil)
	mockService.EXPECT().UpdateEvent(gomock.Any(), gomock.Any(), []string{"title", "location"}).
		DoAndReturn(func(_ context.Context, e *types.CalendarEvent, _ []string) (*types.CalendarEvent, error) {
			return e, nil
		})

	body := `{"title":"Clearance sale","location":"Back lot"}`
	req := httptest.NewRequest(http.MethodPatch, "/calendar-events/"+eventID, bytes.NewBufferString(body))
	rr := serve(api, req, testSubject)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestAPI_HandleDelete_DeniedIsNotFound(t *testing.T) {
	api, mockService, mockAuthz, ctrl := newAPIForTest(t)
	defer ctrl.Finish()

	mockService.EXPECT().GetEvent(gomock.Any(), eventID).
		Return(&types.CalendarEvent{ID: eventID, StoreID: storeA}, nil)
	mockAuthz.EXPECT().CanEdit(gomock.Any(), testSubject, storeA).Return(false, nil)

	req := httptest.NewRequest(http.MethodDelete, "/calendar-events/"+eventID, nil)
	rr := serve(api, req, testSubject)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
}
