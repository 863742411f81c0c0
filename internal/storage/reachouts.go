// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/crewline/fieldcrm/internal/types"
)

func (s *Storage) CreateReachout(ctx context.Context, r *types.Reachout) (*types.Reachout, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateReachout")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate reachout ID: %w", err)
	}

	var created types.Reachout
	err = s.db.Statement(ctx).
		Insert("reachouts").
		Columns("id", "contact_id", "store_id", "method", "notes", "occurred_at", "created_by").
		Values(id.String(), r.ContactID, r.StoreID, r.Method, r.Notes, r.OccurredAt, r.CreatedBy).
		Suffix("RETURNING id, contact_id, store_id, method, notes, occurred_at, created_by, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.ContactID, &created.StoreID, &created.Method, &created.Notes, &created.OccurredAt, &created.CreatedBy, &created.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert reachout: %w", err)
	}

	return &created, nil
}

func (s *Storage) ListReachoutsByContact(ctx context.Context, contactID string) ([]*types.Reachout, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListReachoutsByContact")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "contact_id", "store_id", "method", "notes", "occurred_at", "created_by", "created_at").
		From("reachouts").
		Where(sq.Eq{"contact_id": contactID}).
		OrderBy("occurred_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reachouts: %w", err)
	}
	defer rows.Close()

	var reachouts []*types.Reachout
	for rows.Next() {
		var r types.Reachout
		if err := rows.Scan(&r.ID, &r.ContactID, &r.StoreID, &r.Method, &r.Notes, &r.OccurredAt, &r.CreatedBy, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reachout: %w", err)
		}
		reachouts = append(reachouts, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return reachouts, nil
}
