// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/crewline/fieldcrm/internal/types"
)

func (s *Storage) GetPermission(ctx context.Context, identityID, storeID string) (*types.StorePermission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPermission")
	defer span.End()

	var p types.StorePermission
	err := s.db.Statement(ctx).
		Select("identity_id", "store_id", "can_edit", "created_at").
		From("store_permissions").
		Where(sq.Eq{"identity_id": identityID, "store_id": storeID}).
		QueryRowContext(ctx).
		Scan(&p.IdentityID, &p.StoreID, &p.CanEdit, &p.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get permission: %w", err)
	}

	return &p, nil
}

func (s *Storage) ListPermissions(ctx context.Context, identityID string) ([]*types.StorePermission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPermissions")
	defer span.End()

	return s.listPermissions(ctx, sq.Eq{"identity_id": identityID})
}

func (s *Storage) ListPermissionsByStore(ctx context.Context, storeID string) ([]*types.StorePermission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPermissionsByStore")
	defer span.End()

	return s.listPermissions(ctx, sq.Eq{"store_id": storeID})
}

func (s *Storage) listPermissions(ctx context.Context, pred interface{}) ([]*types.StorePermission, error) {
	rows, err := s.db.Statement(ctx).
		Select("identity_id", "store_id", "can_edit", "created_at").
		From("store_permissions").
		Where(pred).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	defer rows.Close()

	var perms []*types.StorePermission
	for rows.Next() {
		var p types.StorePermission
		if err := rows.Scan(&p.IdentityID, &p.StoreID, &p.CanEdit, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		perms = append(perms, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return perms, nil
}

// UpsertPermission overwrites the can_edit level if the row already
// exists, keeping one row per (identity, store) pair.
func (s *Storage) UpsertPermission(ctx context.Context, p *types.StorePermission) (*types.StorePermission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertPermission")
	defer span.End()

	row := s.db.Statement(ctx).
		Insert("store_permissions").
		Columns("identity_id", "store_id", "can_edit").
		Values(p.IdentityID, p.StoreID, p.CanEdit).
		Suffix("ON CONFLICT (identity_id, store_id) DO UPDATE SET can_edit = EXCLUDED.can_edit RETURNING identity_id, store_id, can_edit, created_at").
		QueryRowContext(ctx)

	var upserted types.StorePermission
	if err := row.Scan(&upserted.IdentityID, &upserted.StoreID, &upserted.CanEdit, &upserted.CreatedAt); err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to upsert permission: %w", err)
	}

	return &upserted, nil
}

func (s *Storage) DeletePermission(ctx context.Context, identityID, storeID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeletePermission")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("store_permissions").
		Where(sq.Eq{"identity_id": identityID, "store_id": storeID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete permission: %w", err)
	}

	return nil
}
