// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package stores

import (
	"context"

	"github.com/crewline/fieldcrm/internal/types"
)

type ServiceInterface interface {
	// ListStores returns every store for admins and only the permitted
	// ones for everyone else.
	ListStores(ctx context.Context, subject string) ([]*types.Store, error)
	GetStore(ctx context.Context, id string) (*types.Store, error)
	CreateStore(ctx context.Context, store *types.Store) (*types.Store, error)
	UpdateStore(ctx context.Context, store *types.Store, paths []string) (*types.Store, error)
	DeleteStore(ctx context.Context, id string) error
	ListStoreUsers(ctx context.Context, storeID string) ([]*types.StorePermission, error)
}

type StorageInterface interface {
	CreateStore(ctx context.Context, store *types.Store) (*types.Store, error)
	GetStoreByID(ctx context.Context, id string) (*types.Store, error)
	ListStores(ctx context.Context) ([]*types.Store, error)
	ListStoresByIdentityID(ctx context.Context, identityID string) ([]*types.Store, error)
	UpdateStore(ctx context.Context, store *types.Store, paths []string) error
	DeleteStore(ctx context.Context, id string) error
	ListPermissionsByStore(ctx context.Context, storeID string) ([]*types.StorePermission, error)
}

type AuthzInterface interface {
	IsGlobalAdmin(ctx context.Context, identityID string) (bool, error)
	CanView(ctx context.Context, identityID, storeID string) (bool, error)
	CanEdit(ctx context.Context, identityID, storeID string) (bool, error)
}
