// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/crewline/fieldcrm/internal/types"
)

type AuthorizerInterface interface {
	// IsGlobalAdmin reports whether the identity holds the global admin
	// flag. Unknown identities are not admins.
	IsGlobalAdmin(context.Context, string) (bool, error)
	// CanView reports whether the identity may read resources scoped to
	// the store. Global admins may view every store.
	CanView(context.Context, string, string) (bool, error)
	// CanEdit reports whether the identity may mutate resources scoped
	// to the store. CanEdit implies CanView.
	CanEdit(context.Context, string, string) (bool, error)
}

type AuthzStoreInterface interface {
	GetIdentity(context.Context, string) (*types.Identity, error)
	GetPermission(context.Context, string, string) (*types.StorePermission, error)
}
