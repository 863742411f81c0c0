// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package contacts

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/crewline/fieldcrm/internal/types"
)

func newServiceForTest(t *testing.T) (*Service, *MockStorageInterface, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		Return(context.Background(), trace.SpanFromContext(context.Background())).
		AnyTimes()

	service := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)
	return service, mockStorage, ctrl
}

func TestService_UpdateContact_ReturnsFreshRow(t *testing.T) {
	service, mockStorage, ctrl := newServiceForTest(t)
	defer ctrl.Finish()

	ctx := context.Background()
	contact := &types.Contact{ID: contactID, StoreID: storeA, Name: "Dana Q."}
	fresh := &types.Contact{ID: contactID, StoreID: storeA, Name: "Dana Q.", Email: "dana@example.com"}

	mockStorage.EXPECT().UpdateContact(ctx, contact, []string{"name"}).Return(nil)
	mockStorage.EXPECT().GetContactByID(ctx, contactID).Return(fresh, nil)

	got, err := service.UpdateContact(ctx, contact, []string{"name"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != fresh {
		t.Errorf("expected the re-read row, got %+v", got)
	}
}

func TestService_CreateContact_WrapsStorageError(t *testing.T) {
	service, mockStorage, ctrl := newServiceForTest(t)
	defer ctrl.Finish()

	ctx := context.Background()
	boom := errors.New("connection reset")
	mockStorage.EXPECT().CreateContact(ctx, gomock.Any()).Return(nil, boom)

	_, err := service.CreateContact(ctx, &types.Contact{StoreID: storeA, Name: "Dana"})
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped storage error, got %v", err)
	}
}
