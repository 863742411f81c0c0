// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Identity is an authenticated operator. The ID is the stable subject
// issued by the identity provider; rows are created on first sync.
type Identity struct {
	ID            string    `db:"id" json:"id"`
	Email         string    `db:"email" json:"email"`
	IsGlobalAdmin bool      `db:"is_global_admin" json:"is_global_admin"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// Store is a physical retail location, the unit of data isolation.
type Store struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	AddressLine1 string    `db:"address_line1" json:"address_line1"`
	City         string    `db:"city" json:"city"`
	Region       string    `db:"region" json:"region"`
	PostalCode   string    `db:"postal_code" json:"postal_code"`
	CreatedBy    string    `db:"created_by" json:"created_by"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// StorePermission grants an identity access to one store. Row existence
// grants view; CanEdit additionally grants edit. One row per
// (identity, store) pair. Global admins hold no rows.
type StorePermission struct {
	IdentityID string    `db:"identity_id" json:"identity_id"`
	StoreID    string    `db:"store_id" json:"store_id"`
	CanEdit    bool      `db:"can_edit" json:"can_edit"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
)

// Invitation is a pending grant addressed to an email, not yet bound to
// an identity. A global-admin invitation carries no store ID. Immutable
// except for the pending -> accepted transition.
type Invitation struct {
	ID            string    `db:"id" json:"id"`
	Email         string    `db:"email" json:"email"`
	StoreID       string    `db:"store_id" json:"store_id"`
	CanEdit       bool      `db:"can_edit" json:"can_edit"`
	IsGlobalAdmin bool      `db:"is_global_admin" json:"is_global_admin"`
	InvitedBy     string    `db:"invited_by" json:"invited_by"`
	InvitedAt     time.Time `db:"invited_at" json:"invited_at"`
	Status        string    `db:"status" json:"status"`
}

type Contact struct {
	ID        string    `db:"id" json:"id"`
	StoreID   string    `db:"store_id" json:"store_id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Notes     string    `db:"notes" json:"notes"`
	CreatedBy string    `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Reachout is a logged outreach attempt against a contact. It carries
// the store ID of its contact so the access gate never needs a join.
type Reachout struct {
	ID         string    `db:"id" json:"id"`
	ContactID  string    `db:"contact_id" json:"contact_id,omitempty"`
	StoreID    string    `db:"store_id" json:"store_id"`
	Method     string    `db:"method" json:"method"`
	Notes      string    `db:"notes" json:"notes"`
	OccurredAt time.Time `db:"occurred_at" json:"occurred_at"`
	CreatedBy  string    `db:"created_by" json:"created_by"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type Donation struct {
	ID          string    `db:"id" json:"id"`
	StoreID     string    `db:"store_id" json:"store_id"`
	ContactID   string    `db:"contact_id" json:"contact_id,omitempty"`
	AmountCents int64     `db:"amount_cents" json:"amount_cents"`
	Currency    string    `db:"currency" json:"currency"`
	Notes       string    `db:"notes" json:"notes"`
	ReceivedAt  time.Time `db:"received_at" json:"received_at"`
	CreatedBy   string    `db:"created_by" json:"created_by"`
}

type CalendarEvent struct {
	ID        string    `db:"id" json:"id"`
	StoreID   string    `db:"store_id" json:"store_id"`
	Title     string    `db:"title" json:"title"`
	Location  string    `db:"location" json:"location"`
	Notes     string    `db:"notes" json:"notes"`
	StartsAt  time.Time `db:"starts_at" json:"starts_at"`
	EndsAt    time.Time `db:"ends_at" json:"ends_at"`
	CreatedBy string    `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
