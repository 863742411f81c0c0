// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"

	"github.com/crewline/fieldcrm/internal/types"
)

type ServiceInterface interface {
	CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	GetInvitation(ctx context.Context, id string) (*types.Invitation, error)
	ListInvitationsByStore(ctx context.Context, storeID string) ([]*types.Invitation, error)
	DeleteInvitation(ctx context.Context, id string) error
}

type StorageInterface interface {
	CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error)
	ListInvitationsByStore(ctx context.Context, storeID string) ([]*types.Invitation, error)
	DeleteInvitation(ctx context.Context, id string) error
}

type AuthzInterface interface {
	IsGlobalAdmin(ctx context.Context, identityID string) (bool, error)
	CanEdit(ctx context.Context, identityID, storeID string) (bool, error)
}
