// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/crewline/fieldcrm/internal/logging"
	"github.com/crewline/fieldcrm/internal/monitoring"
	"github.com/crewline/fieldcrm/internal/storage"
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

// SyncUser upserts the identity and folds every pending invitation for
// the email into concrete grants. An admin invitation wins outright:
// the flag is set and any per-store invitations are simply consumed,
// since an admin can already reach every store. Otherwise per-store
// invitations are merged with a logical OR on can_edit, both across the
// pending invitations and against an existing permission row, so a
// grant is never downgraded. All consumed invitations are marked
// accepted; re-running the sync is a no-op.
//
// The handler runs inside the per-request transaction, so the grants
// and the accepted marks land atomically.
func (s *Service) SyncUser(ctx context.Context, subject, email string) (*types.Identity, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.SyncUser")
	defer span.End()

	identity, err := s.storage.UpsertIdentity(ctx, subject, email)
	if err != nil {
		return nil, fmt.Errorf("failed to provision identity: %w", err)
	}

	invitations, err := s.storage.ListPendingInvitationsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending invitations: %w", err)
	}
	if len(invitations) == 0 {
		return identity, nil
	}

	grantsAdmin := false
	for _, inv := range invitations {
		if inv.IsGlobalAdmin {
			grantsAdmin = true
			break
		}
	}

	if grantsAdmin {
		if err := s.storage.SetGlobalAdmin(ctx, subject, true); err != nil {
			return nil, fmt.Errorf("failed to set global admin flag: %w", err)
		}
		identity.IsGlobalAdmin = true
		s.logger.Security().PermissionChange(subject, "", "grant_global_admin")
	} else {
		if err := s.applyStoreGrants(ctx, subject, invitations); err != nil {
			return nil, err
		}
	}

	ids := make([]string, len(invitations))
	for i, inv := range invitations {
		ids[i] = inv.ID
	}
	if err := s.storage.MarkInvitationsAccepted(ctx, ids); err != nil {
		return nil, fmt.Errorf("failed to mark invitations accepted: %w", err)
	}

	return identity, nil
}

func (s *Service) applyStoreGrants(ctx context.Context, subject string, invitations []*types.Invitation) error {
	merged := make(map[string]bool)
	var order []string
	for _, inv := range invitations {
		if inv.StoreID == "" {
			continue
		}
		if _, seen := merged[inv.StoreID]; !seen {
			order = append(order, inv.StoreID)
		}
		merged[inv.StoreID] = merged[inv.StoreID] || inv.CanEdit
	}

	for _, storeID := range order {
		canEdit := merged[storeID]

		existing, err := s.storage.GetPermission(ctx, subject, storeID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to read existing permission: %w", err)
		}
		if existing != nil {
			canEdit = canEdit || existing.CanEdit
		}

		if _, err := s.storage.UpsertPermission(ctx, &types.StorePermission{
			IdentityID: subject,
			StoreID:    storeID,
			CanEdit:    canEdit,
		}); err != nil {
			return fmt.Errorf("failed to upsert permission: %w", err)
		}

		action := "grant_view"
		if canEdit {
			action = "grant_edit"
		}
		s.logger.Security().PermissionChange(subject, storeID, action)
	}

	return nil
}

// GetMe returns nil Identity when the subject has never synced; the
// caller-side resolver treats that as "no access anywhere".
func (s *Service) GetMe(ctx context.Context, subject string) (*Me, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.GetMe")
	defer span.End()

	identity, err := s.storage.GetIdentity(ctx, subject)
	if errors.Is(err, storage.ErrNotFound) {
		return &Me{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	me := &Me{Identity: identity}

	if identity.IsGlobalAdmin {
		stores, err := s.storage.ListStores(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list stores: %w", err)
		}
		me.Stores = stores
		return me, nil
	}

	permissions, err := s.storage.ListPermissions(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	stores, err := s.storage.ListStoresByIdentityID(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	me.Permissions = permissions
	me.Stores = stores
	return me, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*types.Identity, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.ListUsers")
	defer span.End()

	return s.storage.ListIdentities(ctx)
}

func (s *Service) SetGlobalAdmin(ctx context.Context, id string, isGlobalAdmin bool) (*types.Identity, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.SetGlobalAdmin")
	defer span.End()

	if err := s.storage.SetGlobalAdmin(ctx, id, isGlobalAdmin); err != nil {
		return nil, err
	}

	action := "revoke_global_admin"
	if isGlobalAdmin {
		action = "grant_global_admin"
	}
	s.logger.Security().PermissionChange(id, "", action)

	return s.storage.GetIdentity(ctx, id)
}

// GrantPermission is the admin-edit path for store access, distinct
// from the invitation flow: it acts on an existing identity directly.
func (s *Service) GrantPermission(ctx context.Context, identityID, storeID string, canEdit bool) (*types.StorePermission, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.GrantPermission")
	defer span.End()

	if _, err := s.storage.GetIdentity(ctx, identityID); err != nil {
		return nil, err
	}

	permission, err := s.storage.UpsertPermission(ctx, &types.StorePermission{
		IdentityID: identityID,
		StoreID:    storeID,
		CanEdit:    canEdit,
	})
	if err != nil {
		return nil, err
	}

	action := "grant_view"
	if canEdit {
		action = "grant_edit"
	}
	s.logger.Security().PermissionChange(identityID, storeID, action)

	return permission, nil
}

func (s *Service) RevokePermission(ctx context.Context, identityID, storeID string) error {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.RevokePermission")
	defer span.End()

	if err := s.storage.DeletePermission(ctx, identityID, storeID); err != nil {
		return err
	}

	s.logger.Security().PermissionChange(identityID, storeID, "revoke")
	return nil
}
