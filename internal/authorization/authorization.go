// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"

	"github.com/crewline/fieldcrm/internal/logging"
	"github.com/crewline/fieldcrm/internal/monitoring"
	"github.com/crewline/fieldcrm/internal/storage"
	"github.com/crewline/fieldcrm/internal/tracing"
)

// Authorizer answers access questions from the permission rows in the
// database. It never distinguishes "store does not exist" from "no
// permission for this store": both come back as a plain false so that
// callers can return the same not-found response for either case.
type Authorizer struct {
	store AuthzStoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) IsGlobalAdmin(ctx context.Context, identityID string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.IsGlobalAdmin")
	defer span.End()

	identity, err := a.store.GetIdentity(ctx, identityID)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return identity.IsGlobalAdmin, nil
}

func (a *Authorizer) CanView(ctx context.Context, identityID, storeID string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CanView")
	defer span.End()

	admin, err := a.IsGlobalAdmin(ctx, identityID)
	if err != nil {
		return false, err
	}
	if admin {
		return true, nil
	}

	_, err = a.store.GetPermission(ctx, identityID, storeID)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func (a *Authorizer) CanEdit(ctx context.Context, identityID, storeID string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CanEdit")
	defer span.End()

	admin, err := a.IsGlobalAdmin(ctx, identityID)
	if err != nil {
		return false, err
	}
	if admin {
		return true, nil
	}

	permission, err := a.store.GetPermission(ctx, identityID, storeID)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return permission.CanEdit, nil
}

func NewAuthorizer(store AuthzStoreInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	a := new(Authorizer)

	a.store = store
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
