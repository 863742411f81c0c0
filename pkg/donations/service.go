// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package donations

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

func (s *Service) CreateDonation(ctx context.Context, d *types.Donation) (*types.Donation, error) {
	ctx, span := s.tracer.Start(ctx, "donations.Service.CreateDonation")
	defer span.End()

	created, err := s.storage.CreateDonation(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("failed to create donation: %w", err)
	}

	s.logger.Infof("recorded donation of %d %s for store %s", created.AmountCents, created.Currency, created.StoreID)

	return created, nil
}

func (s *Service) GetDonation(ctx context.Context, id string) (*types.Donation, error) {
	ctx, span := s.tracer.Start(ctx, "donations.Service.GetDonation")
	defer span.End()

	return s.storage.GetDonationByID(ctx, id)
}

func (s *Service) ListDonationsByStore(ctx context.Context, storeID string) ([]*types.Donation, error) {
	ctx, span := s.tracer.Start(ctx, "donations.Service.ListDonationsByStore")
	defer span.End()

	return s.storage.ListDonationsByStore(ctx, storeID)
}

func (s *Service) DeleteDonation(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "donations.Service.DeleteDonation")
	defer span.End()

	return s.storage.DeleteDonation(ctx, id)
}
