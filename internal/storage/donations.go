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

func (s *Storage) CreateDonation(ctx context.Context, d *types.Donation) (*types.Donation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateDonation")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate donation ID: %w", err)
	}

	var contactID interface{}
	if d.ContactID != "" {
		contactID = d.ContactID
	}

	row := s.db.Statement(ctx).
		Insert("donations").
		Columns("id", "store_id", "contact_id", "amount_cents", "currency", "notes", "received_at", "created_by").
		Values(id.String(), d.StoreID, contactID, d.AmountCents, d.Currency, d.Notes, d.ReceivedAt, d.CreatedBy).
		Suffix("RETURNING id, store_id, contact_id, amount_cents, currency, notes, received_at, created_by").
		QueryRowContext(ctx)

	created, err := scanDonation(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert donation: %w", err)
	}

	return created, nil
}

func (s *Storage) GetDonationByID(ctx context.Context, id string) (*types.Donation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetDonationByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select("id", "store_id", "contact_id", "amount_cents", "currency", "notes", "received_at", "created_by").
		From("donations").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	d, err := scanDonation(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get donation: %w", err)
	}

	return d, nil
}

func (s *Storage) ListDonationsByStore(ctx context.Context, storeID string) ([]*types.Donation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDonationsByStore")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "store_id", "contact_id", "amount_cents", "currency", "notes", "received_at", "created_by").
		From("donations").
		Where(sq.Eq{"store_id": storeID}).
		OrderBy("received_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	defer rows.Close()

	var donations []*types.Donation
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan donation: %w", err)
		}
		donations = append(donations, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return donations, nil
}

func (s *Storage) DeleteDonation(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteDonation")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("donations").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete donation: %w", err)
	}

	return nil
}

func scanDonation(row rowScanner) (*types.Donation, error) {
	var d types.Donation
	var contactID sql.NullString

	err := row.Scan(&d.ID, &d.StoreID, &contactID, &d.AmountCents, &d.Currency, &d.Notes, &d.ReceivedAt, &d.CreatedBy)
	if err != nil {
		return nil, err
	}

	d.ContactID = contactID.String
	return &d, nil
}
