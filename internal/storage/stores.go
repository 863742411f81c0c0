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

const storeColumns = "id, name, address_line1, city, region, postal_code, created_by, created_at"

func (s *Storage) CreateStore(ctx context.Context, st *types.Store) (*types.Store, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateStore")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate store ID: %w", err)
	}

	var created types.Store
	err = s.db.Statement(ctx).
		Insert("stores").
		Columns("id", "name", "address_line1", "city", "region", "postal_code", "created_by").
		Values(id.String(), st.Name, st.AddressLine1, st.City, st.Region, st.PostalCode, st.CreatedBy).
		Suffix("RETURNING " + storeColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.AddressLine1, &created.City, &created.Region, &created.PostalCode, &created.CreatedBy, &created.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert store: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetStoreByID(ctx context.Context, id string) (*types.Store, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetStoreByID")
	defer span.End()

	var st types.Store
	err := s.db.Statement(ctx).
		Select("id", "name", "address_line1", "city", "region", "postal_code", "created_by", "created_at").
		From("stores").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&st.ID, &st.Name, &st.AddressLine1, &st.City, &st.Region, &st.PostalCode, &st.CreatedBy, &st.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get store: %w", err)
	}

	return &st, nil
}

func (s *Storage) ListStores(ctx context.Context) ([]*types.Store, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListStores")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "name", "address_line1", "city", "region", "postal_code", "created_by", "created_at").
		From("stores").
		OrderBy("created_at")

	return s.scanStores(ctx, query)
}

// ListStoresByIdentityID returns the stores the identity holds an
// explicit permission for, in permission-grant order. Global admins
// hold no permission rows; callers use ListStores for them.
func (s *Storage) ListStoresByIdentityID(ctx context.Context, identityID string) ([]*types.Store, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListStoresByIdentityID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("s.id", "s.name", "s.address_line1", "s.city", "s.region", "s.postal_code", "s.created_by", "s.created_at").
		From("stores s").
		Join("store_permissions p ON s.id = p.store_id").
		Where(sq.Eq{"p.identity_id": identityID}).
		OrderBy("p.created_at")

	return s.scanStores(ctx, query)
}

func (s *Storage) scanStores(ctx context.Context, query sq.SelectBuilder) ([]*types.Store, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer rows.Close()

	var stores []*types.Store
	for rows.Next() {
		var st types.Store
		if err := rows.Scan(&st.ID, &st.Name, &st.AddressLine1, &st.City, &st.Region, &st.PostalCode, &st.CreatedBy, &st.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return stores, nil
}

// UpdateStore follows PATCH semantics: only fields named in paths are written.
func (s *Storage) UpdateStore(ctx context.Context, st *types.Store, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateStore")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = st.Name
		case "address_line1":
			updateMap["address_line1"] = st.AddressLine1
		case "city":
			updateMap["city"] = st.City
		case "region":
			updateMap["region"] = st.Region
		case "postal_code":
			updateMap["postal_code"] = st.PostalCode
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("stores").
		SetMap(updateMap).
		Where(sq.Eq{"id": st.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update store: %w", err)
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

func (s *Storage) DeleteStore(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteStore")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("stores").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}

	return nil
}
