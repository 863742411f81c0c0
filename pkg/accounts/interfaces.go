// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"

	"github.com/crewline/fieldcrm/internal/types"
)

// Me is the caller-facing view of an authenticated identity: who they
// are and which stores they can reach.
type Me struct {
	Identity    *types.Identity          `json:"identity"`
	Permissions []*types.StorePermission `json:"permissions"`
	Stores      []*types.Store           `json:"stores"`
}

type ServiceInterface interface {
	// SyncUser provisions the identity row and applies any pending
	// invitations addressed to the email. Callers must pass the email
	// asserted by the verified credential, never client input. Safe to
	// call on every login.
	SyncUser(ctx context.Context, subject, email string) (*types.Identity, error)
	GetMe(ctx context.Context, subject string) (*Me, error)
	ListUsers(ctx context.Context) ([]*types.Identity, error)
	SetGlobalAdmin(ctx context.Context, id string, isGlobalAdmin bool) (*types.Identity, error)
	GrantPermission(ctx context.Context, identityID, storeID string, canEdit bool) (*types.StorePermission, error)
	RevokePermission(ctx context.Context, identityID, storeID string) error
}

type StorageInterface interface {
	GetIdentity(ctx context.Context, id string) (*types.Identity, error)
	UpsertIdentity(ctx context.Context, id, email string) (*types.Identity, error)
	SetGlobalAdmin(ctx context.Context, id string, isGlobalAdmin bool) error
	ListIdentities(ctx context.Context) ([]*types.Identity, error)
	GetPermission(ctx context.Context, identityID, storeID string) (*types.StorePermission, error)
	ListPermissions(ctx context.Context, identityID string) ([]*types.StorePermission, error)
	UpsertPermission(ctx context.Context, p *types.StorePermission) (*types.StorePermission, error)
	DeletePermission(ctx context.Context, identityID, storeID string) error
	ListStores(ctx context.Context) ([]*types.Store, error)
	ListStoresByIdentityID(ctx context.Context, identityID string) ([]*types.Store, error)
	ListPendingInvitationsByEmail(ctx context.Context, email string) ([]*types.Invitation, error)
	MarkInvitationsAccepted(ctx context.Context, ids []string) error
}

type AuthzInterface interface {
	IsGlobalAdmin(ctx context.Context, identityID string) (bool, error)
}
