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

func (s *Storage) CreateEvent(ctx context.Context, e *types.CalendarEvent) (*types.CalendarEvent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateEvent")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate event ID: %w", err)
	}

	var created types.CalendarEvent
	err = s.db.Statement(ctx).
		Insert("calendar_events").
		Columns("id", "store_id", "title", "location", "notes", "starts_at", "ends_at", "created_by").
		Values(id.String(), e.StoreID, e.Title, e.Location, e.Notes, e.StartsAt, e.EndsAt, e.CreatedBy).
		Suffix("RETURNING id, store_id, title, location, notes, starts_at, ends_at, created_by, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.StoreID, &created.Title, &created.Location, &created.Notes, &created.StartsAt, &created.EndsAt, &created.CreatedBy, &created.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetEventByID(ctx context.Context, id string) (*types.CalendarEvent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetEventByID")
	defer span.End()

	var e types.CalendarEvent
	err := s.db.Statement(ctx).
		Select("id", "store_id", "title", "location", "notes", "starts_at", "ends_at", "created_by", "created_at").
		From("calendar_events").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&e.ID, &e.StoreID, &e.Title, &e.Location, &e.Notes, &e.StartsAt, &e.EndsAt, &e.CreatedBy, &e.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &e, nil
}

func (s *Storage) ListEventsByStore(ctx context.Context, storeID string) ([]*types.CalendarEvent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListEventsByStore")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "store_id", "title", "location", "notes", "starts_at", "ends_at", "created_by", "created_at").
		From("calendar_events").
		Where(sq.Eq{"store_id": storeID}).
		OrderBy("starts_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*types.CalendarEvent
	for rows.Next() {
		var e types.CalendarEvent
		if err := rows.Scan(&e.ID, &e.StoreID, &e.Title, &e.Location, &e.Notes, &e.StartsAt, &e.EndsAt, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return events, nil
}

func (s *Storage) UpdateEvent(ctx context.Context, e *types.CalendarEvent, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateEvent")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "title":
			updateMap["title"] = e.Title
		case "location":
			updateMap["location"] = e.Location
		case "notes":
			updateMap["notes"] = e.Notes
		case "starts_at":
			updateMap["starts_at"] = e.StartsAt
		case "ends_at":
			updateMap["ends_at"] = e.EndsAt
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("calendar_events").
		SetMap(updateMap).
		Where(sq.Eq{"id": e.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
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

func (s *Storage) DeleteEvent(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteEvent")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("calendar_events").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}
