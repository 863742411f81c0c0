// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/crewline/fieldcrm/internal/types"
)

func (s *Storage) GetIdentity(ctx context.Context, id string) (*types.Identity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetIdentity")
	defer span.End()

	var i types.Identity
	err := s.db.Statement(ctx).
		Select("id", "email", "is_global_admin", "created_at").
		From("identities").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&i.ID, &i.Email, &i.IsGlobalAdmin, &i.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return &i, nil
}

// UpsertIdentity creates the identity row on first sync, or refreshes
// the email on subsequent ones. The global admin flag is never touched
// here; see SetGlobalAdmin.
func (s *Storage) UpsertIdentity(ctx context.Context, id, email string) (*types.Identity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertIdentity")
	defer span.End()

	var i types.Identity
	err := s.db.Statement(ctx).
		Insert("identities").
		Columns("id", "email").
		Values(id, email).
		Suffix("ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email RETURNING id, email, is_global_admin, created_at").
		QueryRowContext(ctx).
		Scan(&i.ID, &i.Email, &i.IsGlobalAdmin, &i.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to upsert identity: %w", err)
	}

	return &i, nil
}

func (s *Storage) SetGlobalAdmin(ctx context.Context, id string, isGlobalAdmin bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetGlobalAdmin")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("identities").
		Set("is_global_admin", isGlobalAdmin).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set global admin flag: %w", err)
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

func (s *Storage) ListIdentities(ctx context.Context) ([]*types.Identity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListIdentities")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "email", "is_global_admin", "created_at").
		From("identities").
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list identities: %w", err)
	}
	defer rows.Close()

	var identities []*types.Identity
	for rows.Next() {
		var i types.Identity
		if err := rows.Scan(&i.ID, &i.Email, &i.IsGlobalAdmin, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan identity: %w", err)
		}
		identities = append(identities, &i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return identities, nil
}
