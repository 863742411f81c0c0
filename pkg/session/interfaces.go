// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"

	"github.com/crewline/fieldcrm/internal/types"
	"github.com/crewline/fieldcrm/pkg/accounts"
)

type ClientInterface interface {
	GetMe(ctx context.Context) (*accounts.Me, error)
	// SyncUser provisions the caller server-side; the server derives the
	// email from the bearer token, so no email travels in the request.
	SyncUser(ctx context.Context) (*types.Identity, error)
}

// StateStore persists the operator's chosen active store across
// process restarts. Implementations hold a single value.
type StateStore interface {
	Load() (string, error)
	Save(storeID string) error
	Clear() error
}
