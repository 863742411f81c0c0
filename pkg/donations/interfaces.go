// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package donations

import (
	"context"

	"github.com/crewline/fieldcrm/internal/types"
)

type ServiceInterface interface {
	CreateDonation(ctx context.Context, d *types.Donation) (*types.Donation, error)
	GetDonation(ctx context.Context, id string) (*types.Donation, error)
	ListDonationsByStore(ctx context.Context, storeID string) ([]*types.Donation, error)
	DeleteDonation(ctx context.Context, id string) error
}

type StorageInterface interface {
	CreateDonation(ctx context.Context, d *types.Donation) (*types.Donation, error)
	GetDonationByID(ctx context.Context, id string) (*types.Donation, error)
	ListDonationsByStore(ctx context.Context, storeID string) ([]*types.Donation, error)
	DeleteDonation(ctx context.Context, id string) error
}

type AuthzInterface interface {
	CanView(ctx context.Context, identityID, storeID string) (bool, error)
	CanEdit(ctx context.Context, identityID, storeID string) (bool, error)
}
