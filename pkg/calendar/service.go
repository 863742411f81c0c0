// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package calendar

import (
	"context"
	"fmt"

	"github.com/crewline/fieldcrm/internal/logging"
	"github.com/crewline/fieldcrm/internal/monitoring"
	"github.com/crewline/fieldcrm/internal/tracing"
	"github.com/crewline/fieldcrm/internal/types"
)

type Service struct {
	storage StorageInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) CreateEvent(ctx context.Context, e *types.CalendarEvent) (*types.CalendarEvent, error) {
	ctx, span := s.tracer.Start(ctx, "calendar.Service.CreateEvent")
	defer span.End()

	created, err := s.storage.CreateEvent(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return created, nil
}

func (s *Service) GetEvent(ctx context.Context, id string) (*types.CalendarEvent, error) {
	ctx, span := s.tracer.Start(ctx, "calendar.Service.GetEvent")
	defer span.End()

	return s.storage.GetEventByID(ctx, id)
}

func (s *Service) ListEventsByStore(ctx context.Context, storeID string) ([]*types.CalendarEvent, error) {
	ctx, span := s.tracer.Start(ctx, "calendar.Service.ListEventsByStore")
	defer span.End()

	return s.storage.ListEventsByStore(ctx, storeID)
}

func (s *Service) UpdateEvent(ctx context.Context, e *types.CalendarEvent, paths []string) (*types.CalendarEvent, error) {
	ctx, span := s.tracer.Start(ctx, "calendar.Service.UpdateEvent")
	defer span.End()

	if err := s.storage.UpdateEvent(ctx, e, paths); err != nil {
		return nil, err
	}

	return s.storage.GetEventByID(ctx, e.ID)
}

func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "calendar.Service.DeleteEvent")
	defer span.End()

	return s.storage.DeleteEvent(ctx, id)
}
