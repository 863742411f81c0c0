// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package contacts

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

func (s *Service) CreateContact(ctx context.Context, c *types.Contact) (*types.Contact, error) {
	ctx, span := s.tracer.Start(ctx, "contacts.Service.CreateContact")
	defer span.End()

	created, err := s.storage.CreateContact(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return created, nil
}

func (s *Service) GetContact(ctx context.Context, id string) (*types.Contact, error) {
	ctx, span := s.tracer.Start(ctx, "contacts.Service.GetContact")
	defer span.End()

	return s.storage.GetContactByID(ctx, id)
}

func (s *Service) ListContactsByStore(ctx context.Context, storeID string) ([]*types.Contact, error) {
	ctx, span := s.tracer.Start(ctx, "contacts.Service.ListContactsByStore")
	defer span.End()

	return s.storage.ListContactsByStore(ctx, storeID)
}

func (s *Service) UpdateContact(ctx context.Context, c *types.Contact, paths []string) (*types.Contact, error) {
	ctx, span := s.tracer.Start(ctx, "contacts.Service.UpdateContact")
	defer span.End()

	if err := s.storage.UpdateContact(ctx, c, paths); err != nil {
		return nil, err
	}

	return s.storage.GetContactByID(ctx, c.ID)
}

func (s *Service) DeleteContact(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "contacts.Service.DeleteContact")
	defer span.End()

	return s.storage.DeleteContact(ctx, id)
}

// CreateReachout stamps the reachout with the contact's store so the
// access gate never needs a join at read time.
func (s *Service) CreateReachout(ctx context.Context, r *types.Reachout) (*types.Reachout, error) {
	ctx, span := s.tracer.Start(ctx, "contacts.Service.CreateReachout")
	defer span.End()

	created, err := s.storage.CreateReachout(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to create reachout: %w", err)
	}

	return created, nil
}

func (s *Service) ListReachoutsByContact(ctx context.Context, contactID string) ([]*types.Reachout, error) {
	ctx, span := s.tracer.Start(ctx, "contacts.Service.ListReachoutsByContact")
	defer span.End()

	return s.storage.ListReachoutsByContact(ctx, contactID)
}
