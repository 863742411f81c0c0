// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

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

// CreateInvitation records a pending grant for an email that may not
// have an account yet. Duplicate pending invitations for the same
// (email, store) collapse into one row with can_edit OR-merged by the
// storage layer.
func (s *Service) CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.CreateInvitation")
	defer span.End()

	created, err := s.storage.CreateInvitation(ctx, inv)
	if err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	s.logger.Infof("invitation %s created for %s", created.ID, created.Email)
	return created, nil
}

func (s *Service) GetInvitation(ctx context.Context, id string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.GetInvitation")
	defer span.End()

	return s.storage.GetInvitationByID(ctx, id)
}

func (s *Service) ListInvitationsByStore(ctx context.Context, storeID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.ListInvitationsByStore")
	defer span.End()

	return s.storage.ListInvitationsByStore(ctx, storeID)
}

func (s *Service) DeleteInvitation(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "invites.Service.DeleteInvitation")
	defer span.End()

	return s.storage.DeleteInvitation(ctx, id)
}
