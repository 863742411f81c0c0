// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/crewline/fieldcrm/internal/authorization"
	"github.com/crewline/fieldcrm/internal/http/response"
	"github.com/crewline/fieldcrm/internal/logging"
	"github.com/crewline/fieldcrm/internal/monitoring"
	"github.com/crewline/fieldcrm/internal/storage"
	"github.com/crewline/fieldcrm/internal/tracing"
	"github.com/crewline/fieldcrm/internal/types"
	"github.com/crewline/fieldcrm/pkg/authentication"
)

type API struct {
	service ServiceInterface
	authz   AuthzInterface

	validate *validator.Validate
	tracer   tracing.TracingInterface
	monitor  monitoring.MonitorInterface
	logger   logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	authz AuthzInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		authz:    authz,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/calendar-events", a.handleList)
	r.Post("/calendar-events", a.handleCreate)
	r.Get("/calendar-events/{id}", a.handleGet)
	r.Patch("/calendar-events/{id}", a.handleUpdate)
	r.Delete("/calendar-events/{id}", a.handleDelete)
}

type createEventRequest struct {
	StoreID  string    `json:"store_id" validate:"required,uuid"`
	Title    string    `json:"title" validate:"required"`
	Location string    `json:"location"`
	Notes    string    `json:"notes"`
	StartsAt time.Time `json:"starts_at" validate:"required"`
	EndsAt   time.Time `json:"ends_at" validate:"required,gtfield=StartsAt"`
}

type updateEventRequest struct {
	Title    *string    `json:"title"`
	Location *string    `json:"location"`
	Notes    *string    `json:"notes"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "calendar.API.handleList")
	defer span.End()

	subject, ok := authentication.GetUserID(ctx)
	if !ok {
		response.Unauthorized(w)
		return
	}

	storeID := r.URL.Query().Get("store_id")
	if storeID == "" {
		response.BadRequest(w, "store_id is required")
		return
	}

	if !a.allowView(ctx, w, subject, storeID) {
		return
	}

	events, err := a.service.ListEventsByStore(ctx, storeID)
	if err != nil {
		a.logger.Errorf("failed to list events: %v", err)
		response.InternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusOK, events)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "calendar.API.handleCreate")
	defer span.End()

	subject, ok := authentication.GetUserID(ctx)
	if !ok {
		response.Unauthorized(w)
		return
	}

	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		response.BadRequest(w, "store_id, title, starts_at and a later ends_at are required")
		return
	}

	if !a.allowEdit(ctx, w, subject, req.StoreID) {
		return
	}

	event := &types.CalendarEvent{
		StoreID:   req.StoreID,
		Title:     req.Title,
		Location:  req.Location,
		Notes:     req.Notes,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
		CreatedBy: subject,
	}

	created, err := a.service.CreateEvent(ctx, event)
	if errors.Is(err, storage.ErrForeignKeyViolation) {
		response.BadRequest(w, "store does not exist")
		return
	}
	if err != nil {
		a.logger.Errorf("failed to create event: %v", err)
		response.InternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "calendar.API.handleGet")
	defer span.End()

	subject, ok := authentication.GetUserID(ctx)
	if !ok {
		response.Unauthorized(w)
		return
	}

	event, ok := a.fetchViewable(ctx, w, subject, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	response.WriteJSON(w, http.StatusOK, event)
}

func (a *API) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "calendar.API.handleUpdate")
	defer span.End()

	subject, ok := authentication.GetUserID(ctx)
	if !ok {
		response.Unauthorized(w)
		return
	}

	event, ok := a.fetchEditable(ctx, w, subject, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req updateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	var paths []string
	if req.Title != nil {
		event.Title = *req.Title
		paths = append(paths, "title")
	}
	if req.Location != nil {
		event.Location = *req.Location
		paths = append(paths, "location")
	}
	if req.Notes != nil {
		event.Notes = *req.Notes
		paths = append(paths, "notes")
	}
	if req.StartsAt != nil {
		event.StartsAt = *req.StartsAt
		paths = append(paths, "starts_at")
	}
	if req.EndsAt != nil {
		event.EndsAt = *req.EndsAt
		paths = append(paths, "ends_at")
	}

	if len(paths) == 0 {
		response.BadRequest(w, "no updatable fields in request")
		return
	}

	if !event.EndsAt.After(event.StartsAt) {
		response.BadRequest(w, "ends_at must be after starts_at")
		return
	}

	updated, err := a.service.UpdateEvent(ctx, event, paths)
	if errors.Is(err, storage.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		a.logger.Errorf("failed to update event %s: %v", event.ID, err)
		response.InternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "calendar.API.handleDelete")
	defer span.End()

	subject, ok := authentication.GetUserID(ctx)
	if !ok {
		response.Unauthorized(w)
		return
	}

	event, ok := a.fetchEditable(ctx, w, subject, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := a.service.DeleteEvent(ctx, event.ID); err != nil {
		a.logger.Errorf("failed to delete event %s: %v", event.ID, err)
		response.InternalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) fetchViewable(ctx context.Context, w http.ResponseWriter, subject, id string) (*types.CalendarEvent, bool) {
	event, err := a.service.GetEvent(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		response.NotFound(w)
		return nil, false
	}
	if err != nil {
		a.logger.Errorf("failed to get event %s: %v", id, err)
		response.InternalError(w)
		return nil, false
	}

	if !a.allowView(ctx, w, subject, event.StoreID) {
		return nil, false
	}

	return event, true
}

func (a *API) fetchEditable(ctx context.Context, w http.ResponseWriter, subject, id string) (*types.CalendarEvent, bool) {
	event, err := a.service.GetEvent(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		response.NotFound(w)
		return nil, false
	}
	if err != nil {
		a.logger.Errorf("failed to get event %s: %v", id, err)
		response.InternalError(w)
		return nil, false
	}

	if !a.allowEdit(ctx, w, subject, event.StoreID) {
		return nil, false
	}

	return event, true
}

func (a *API) allowView(ctx context.Context, w http.ResponseWriter, subject, storeID string) bool {
	allowed, err := a.authz.CanView(ctx, subject, storeID)
	if err != nil {
		a.logger.Errorf("failed to check view access: %v", err)
		response.InternalError(w)
		return false
	}
	if !allowed {
		a.logger.Security().AuthzFailure(subject, authorization.VIEW_ACTION)
		response.NotFound(w)
		return false
	}
	return true
}

func (a *API) allowEdit(ctx context.Context, w http.ResponseWriter, subject, storeID string) bool {
	allowed, err := a.authz.CanEdit(ctx, subject, storeID)
	if err != nil {
		a.logger.Errorf("failed to check edit access: %v", err)
		response.InternalError(w)
		return false
	}
	if !allowed {
		a.logger.Security().AuthzFailure(subject, authorization.EDIT_ACTION)
		response.NotFound(w)
		return false
	}
	return true
}
