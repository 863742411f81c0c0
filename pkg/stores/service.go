// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package stores

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
	authz   AuthzInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) ListStores(ctx context.Context, subject string) ([]*types.Store, error) {
	ctx, span := s.tracer.Start(ctx, "stores.Service.ListStores")
	defer span.End()

	admin, err := s.authz.IsGlobalAdmin(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to check admin flag: %w", err)
	}

	if admin {
		return s.storage.ListStores(ctx)
	}

	return s.storage.ListStoresByIdentityID(ctx, subject)
}

func (s *Service) GetStore(ctx context.Context, id string) (*types.Store, error) {
	ctx, span := s.tracer.Start(ctx, "stores.Service.GetStore")
	defer span.End()

	return s.storage.GetStoreByID(ctx, id)
}

func (s *Service) CreateStore(ctx context.Context, store *types.Store) (*types.Store, error) {
	ctx, span := s.tracer.Start(ctx, "stores.Service.CreateStore")
	defer span.End()

	created, err := s.storage.CreateStore(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return created, nil
}

func (s *Service) UpdateStore(ctx context.Context, store *types.Store, paths []string) (*types.Store, error) {
	ctx, span := s.tracer.Start(ctx, "stores.Service.UpdateStore")
	defer span.End()

	if err := s.storage.UpdateStore(ctx, store, paths); err != nil {
		return nil, err
	}

	return s.storage.GetStoreByID(ctx, store.ID)
}

func (s *Service) DeleteStore(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "stores.Service.DeleteStore")
	defer span.End()

	return s.storage.DeleteStore(ctx, id)
}

func (s *Service) ListStoreUsers(ctx context.Context, storeID string) ([]*types.StorePermission, error) {
	ctx, span := s.tracer.Start(ctx, "stores.Service.ListStoreUsers")
	defer span.End()

	return s.storage.ListPermissionsByStore(ctx, storeID)
}
