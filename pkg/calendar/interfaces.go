// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package calendar

import (
	"context"

	"github.com/crewline/fieldcrm/internal/types"
)

type ServiceInterface interface {
	CreateEvent(ctx context.Context, e *types.CalendarEvent) (*types.CalendarEvent, error)
	GetEvent(ctx context.Context, id string) (*types.CalendarEvent, error)
	ListEventsByStore(ctx context.Context, storeID string) ([]*types.CalendarEvent, error)
	UpdateEvent(ctx context.Context, e *types.CalendarEvent, paths []string) (*types.CalendarEvent, error)
	DeleteEvent(ctx context.Context, id string) error
}

type StorageInterface interface {
	CreateEvent(ctx context.Context, e *types.CalendarEvent) (*types.CalendarEvent, error)
	GetEventByID(ctx context.Context, id string) (*types.CalendarEvent, error)
	ListEventsByStore(ctx context.Context, storeID string) ([]*types.CalendarEvent, error)
	UpdateEvent(ctx context.Context, e *types.CalendarEvent, paths []string) error
	DeleteEvent(ctx context.Context, id string) error
}

type AuthzInterface interface {
	CanView(ctx context.Context, identityID, storeID string) (bool, error)
	CanEdit(ctx context.Context, identityID, storeID string) (bool, error)
}
