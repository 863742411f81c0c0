// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/crewline/fieldcrm/internal/types"
)

// CreateInvitation inserts a pending invitation. A second pending
// invitation for the same (email, store) does not create a new row;
// the can_edit levels are OR-merged so an edit grant is never
// downgraded by a later view-only invite. Global-admin invitations
// carry a NULL store id and are not deduplicated.
func (s *Storage) CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitation")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation ID: %w", err)
	}

	var storeID interface{}
	if inv.StoreID != "" {
		storeID = inv.StoreID
	}

	row := s.db.Statement(ctx).
		Insert("invitations").
		Columns("id", "email", "store_id", "can_edit", "is_global_admin", "invited_by").
		Values(id.String(), inv.Email, storeID, inv.CanEdit, inv.IsGlobalAdmin, inv.InvitedBy).
		Suffix(`ON CONFLICT (email, store_id) WHERE status = 'pending'
			DO UPDATE SET can_edit = invitations.can_edit OR EXCLUDED.can_edit
			RETURNING id, email, store_id, can_edit, is_global_admin, invited_by, invited_at, status`).
		QueryRowContext(ctx)

	created, err := scanInvitation(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert invitation: %w", err)
	}

	return created, nil
}

func (s *Storage) GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select("id", "email", "store_id", "can_edit", "is_global_admin", "invited_by", "invited_at", "status").
		From("invitations").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	inv, err := scanInvitation(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return inv, nil
}

func (s *Storage) ListPendingInvitationsByEmail(ctx context.Context, email string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPendingInvitationsByEmail")
	defer span.End()

	return s.listInvitations(ctx, sq.Eq{"email": email, "status": types.InvitationPending})
}

func (s *Storage) ListInvitationsByStore(ctx context.Context, storeID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitationsByStore")
	defer span.End()

	return s.listInvitations(ctx, sq.Eq{"store_id": storeID})
}

func (s *Storage) listInvitations(ctx context.Context, pred interface{}) ([]*types.Invitation, error) {
	rows, err := s.db.Statement(ctx).
		Select("id", "email", "store_id", "can_edit", "is_global_admin", "invited_by", "invited_at", "status").
		From("invitations").
		Where(pred).
		OrderBy("invited_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []*types.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invitations, nil
}

// MarkInvitationsAccepted closes out consumed invitations. The
// transition is one-way; accepted rows are never reopened.
func (s *Storage) MarkInvitationsAccepted(ctx context.Context, ids []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkInvitationsAccepted")
	defer span.End()

	if len(ids) == 0 {
		return nil
	}

	_, err := s.db.Statement(ctx).
		Update("invitations").
		Set("status", types.InvitationAccepted).
		Where(sq.Eq{"id": ids, "status": types.InvitationPending}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark invitations accepted: %w", err)
	}

	return nil
}

func (s *Storage) DeleteInvitation(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteInvitation")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("invitations").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete invitation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInvitation(row rowScanner) (*types.Invitation, error) {
	var inv types.Invitation
	var storeID sql.NullString

	err := row.Scan(&inv.ID, &inv.Email, &storeID, &inv.CanEdit, &inv.IsGlobalAdmin, &inv.InvitedBy, &inv.InvitedAt, &inv.Status)
	if err != nil {
		return nil, err
	}

	inv.StoreID = storeID.String
	return &inv, nil
}
