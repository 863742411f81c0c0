// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/crewline/fieldcrm/internal/types"
)

type StorageInterface interface {
	GetIdentity(ctx context.Context, id string) (*types.Identity, error)
	UpsertIdentity(ctx context.Context, id, email string) (*types.Identity, error)
	SetGlobalAdmin(ctx context.Context, id string, isGlobalAdmin bool) error
	ListIdentities(ctx context.Context) ([]*types.Identity, error)

	GetPermission(ctx context.Context, identityID, storeID string) (*types.StorePermission, error)
	ListPermissions(ctx context.Context, identityID string) ([]*types.StorePermission, error)
	ListPermissionsByStore(ctx context.Context, storeID string) ([]*types.StorePermission, error)
	UpsertPermission(ctx context.Context, p *types.StorePermission) (*types.StorePermission, error)
	DeletePermission(ctx context.Context, identityID, storeID string) error

	CreateStore(ctx context.Context, st *types.Store) (*types.Store, error)
	GetStoreByID(ctx context.Context, id string) (*types.Store, error)
	ListStores(ctx context.Context) ([]*types.Store, error)
	ListStoresByIdentityID(ctx context.Context, identityID string) ([]*types.Store, error)
	UpdateStore(ctx context.Context, st *types.Store, paths []string) error
	DeleteStore(ctx context.Context, id string) error

	CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error)
	ListPendingInvitationsByEmail(ctx context.Context, email string) ([]*types.Invitation, error)
	ListInvitationsByStore(ctx context.Context, storeID string) ([]*types.Invitation, error)
	MarkInvitationsAccepted(ctx context.Context, ids []string) error
	DeleteInvitation(ctx context.Context, id string) error

	CreateContact(ctx context.Context, c *types.Contact) (*types.Contact, error)
	GetContactByID(ctx context.Context, id string) (*types.Contact, error)
	ListContactsByStore(ctx context.Context, storeID string) ([]*types.Contact, error)
	UpdateContact(ctx context.Context, c *types.Contact, paths []string) error
	DeleteContact(ctx context.Context, id string) error

	CreateReachout(ctx context.Context, r *types.Reachout) (*types.Reachout, error)
	ListReachoutsByContact(ctx context.Context, contactID string) ([]*types.Reachout, error)

	CreateDonation(ctx context.Context, d *types.Donation) (*types.Donation, error)
	GetDonationByID(ctx context.Context, id string) (*types.Donation, error)
	ListDonationsByStore(ctx context.Context, storeID string) ([]*types.Donation, error)
	DeleteDonation(ctx context.Context, id string) error

	CreateEvent(ctx context.Context, e *types.CalendarEvent) (*types.CalendarEvent, error)
	GetEventByID(ctx context.Context, id string) (*types.CalendarEvent, error)
	ListEventsByStore(ctx context.Context, storeID string) ([]*types.CalendarEvent, error)
	UpdateEvent(ctx context.Context, e *types.CalendarEvent, paths []string) error
	DeleteEvent(ctx context.Context, id string) error
}
