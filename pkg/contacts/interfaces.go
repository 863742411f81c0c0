// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package contacts

import (
	"context"

	"github.com/crewline/fieldcrm/internal/types"
)

type ServiceInterface interface {
	CreateContact(ctx context.Context, c *types.Contact) (*types.Contact, error)
	GetContact(ctx context.Context, id string) (*types.Contact, error)
	ListContactsByStore(ctx context.Context, storeID string) ([]*types.Contact, error)
	UpdateContact(ctx context.Context, c *types.Contact, paths []string) (*types.Contact, error)
	DeleteContact(ctx context.Context, id string) error
	CreateReachout(ctx context.Context, r *types.Reachout) (*types.Reachout, error)
	ListReachoutsByContact(ctx context.Context, contactID string) ([]*types.Reachout, error)
}

type StorageInterface interface {
	CreateContact(ctx context.Context, c *types.Contact) (*types.Contact, error)
	GetContactByID(ctx context.Context, id string) (*types.Contact, error)
	ListContactsByStore(ctx context.Context, storeID string) ([]*types.Contact, error)
	UpdateContact(ctx context.Context, c *types.Contact, paths []string) error
	DeleteContact(ctx context.Context, id string) error
	CreateReachout(ctx context.Context, r *types.Reachout) (*types.Reachout, error)
	ListReachoutsByContact(ctx context.Context, contactID string) ([]*types.Reachout, error)
}

type AuthzInterface interface {
	CanView(ctx context.Context, identityID, storeID string) (bool, error)
	CanEdit(ctx context.Context, identityID, storeID string) (bool, error)
}
