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

func (s *Storage) CreateContact(ctx context.Context, c *types.Contact) (*types.Contact, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateContact")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate contact ID: %w", err)
	}

	var created types.Contact
	err = s.db.Statement(ctx).
		Insert("contacts").
		Columns("id", "store_id", "name", "email", "phone", "notes", "created_by").
		Values(id.String(), c.StoreID, c.Name, c.Email, c.Phone, c.Notes, c.CreatedBy).
		Suffix("RETURNING id, store_id, name, email, phone, notes, created_by, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.StoreID, &created.Name, &created.Email, &created.Phone, &created.Notes, &created.CreatedBy, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert contact: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetContactByID(ctx context.Context, id string) (*types.Contact, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetContactByID")
	defer span.End()

	var c types.Contact
	err := s.db.Statement(ctx).
		Select("id", "store_id", "name", "email", "phone", "notes", "created_by", "created_at", "updated_at").
		From("contacts").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.StoreID, &c.Name, &c.Email, &c.Phone, &c.Notes, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return &c, nil
}

func (s *Storage) ListContactsByStore(ctx context.Context, storeID string) ([]*types.Contact, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListContactsByStore")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "store_id", "name", "email", "phone", "notes", "created_by", "created_at", "updated_at").
		From("contacts").
		Where(sq.Eq{"store_id": storeID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*types.Contact
	for rows.Next() {
		var c types.Contact
		if err := rows.Scan(&c.ID, &c.StoreID, &c.Name, &c.Email, &c.Phone, &c.Notes, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return contacts, nil
}

// UpdateContact writes only fields named in paths. store_id is not an
// updatable path: a contact can never be moved between stores.
func (s *Storage) UpdateContact(ctx context.Context, c *types.Contact, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateContact")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = c.Name
		case "email":
			updateMap["email"] = c.Email
		case "phone":
			updateMap["phone"] = c.Phone
		case "notes":
			updateMap["notes"] = c.Notes
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	updateMap["updated_at"] = sq.Expr("now()")

	res, err := s.db.Statement(ctx).
		Update("contacts").
		SetMap(updateMap).
		Where(sq.Eq{"id": c.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
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

func (s *Storage) DeleteContact(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteContact")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("contacts").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	return nil
}
