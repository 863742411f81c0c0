// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package stores

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

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
	r.Get("/stores", a.handleList)
	r.Post("/stores", a.handleCreate)
	r.Get("/stores/{id}", a.handleGet)
	r.Patch("/stores/{id}", a.handleUpdate)
	r.Delete("/stores/{id}", a.handleDelete)
	r.Get("/stores/{id}/users", a.handleListUsers)
}

type createStoreRequest struct {
	Name         string `json:"name" validate:"required"`
	AddressLine1 string `json:"address_line1"`
	City         string `json:"city"`
	Region       string `json:"region"`
	PostalCode   string `json:"postal_code"`
}

type updateStoreRequest struct {
	Name         *string `json:"name"`
	AddressLine1 *string `json:"address_line1"`
	City         *string `json:"city"`
	Region       *string `json:"region"`
	PostalCode   *string `json:"postal_code"`
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "stores.API.handleList")
	defer span.End()

	subject, ok := authentication.GetUserID(ctx)
	if !ok {
		response.Unauthorized(w)
		return
	}

	list, err := a.service.ListStores(ctx, subject)
	if err != nil {
		a.logger.Errorf("failed to list stores: %v", err)
		response.InternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusOK, list)
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "stores.API.handleGet")
	defer span.End()

	subject, ok := authentication.GetUserID(ctx)
	if !ok {
		response.Unauthorized(w)
		return
	}

	id := chi.URLParam(r, "id")

	allowed, err := a.authz.CanView(ctx, subject, id)
	if err != nil {
		a.logger.Errorf("failed to check view access: %v", err)
		response.InternalError(w)
		return
	}
	if !allowed {
		a.logger.Security().AuthzFailure(subject, authorization.VIEW_ACTION)
		response.NotFound(w)
		return
	}

	store, err := a.service.GetStore(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		a.logger.Errorf("failed to get store %s: %v", id, err)
		response.InternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusOK, store)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "stores.API.handleCreate")
	defer span.End()

	subject, ok := a.requireAdmin(ctx, w)
	if !ok {
		return
	}

	var req createStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		response.BadRequest(w, "name is required")
		return
	}

	store := &types.Store{
		Name:         req.Name,
		AddressLine1: req.AddressLine1,
		City:         req.City,
		Region:       req.Region,
		PostalCode:   req.PostalCode,
		CreatedBy:    subject,
	}

	created, err := a.service.CreateStore(ctx, store)
	if err != nil {
		a.logger.Errorf("failed to create store: %v", err)
		response.InternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "stores.API.handleUpdate")
	defer span.End()

	subject, ok := authentication.GetUserID(ctx)
	if !ok {
		response.Unauthorized(w)
		return
	}

	id := chi.URLParam(r, "id")

	allowed, err := a.authz.CanEdit(ctx, subject, id)
	if err != nil {
		a.logger.Errorf("failed to check edit access: %v", err)
		response.InternalError(w)
		return
	}
	if !allowed {
		a.logger.Security().AuthzFailure(subject, authorization.EDIT_ACTION)
		response.NotFound(w)
		return
	}

	var req updateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	store := &types.Store{ID: id}
	var paths []string
	if req.Name != nil {
		store.Name = *req.Name
		paths = append(paths, "name")
	}
	if req.AddressLine1 != nil {
		store.AddressLine1 = *req.AddressLine1
		paths = append(paths, "address_line1")
	}
	if req.City != nil {
		store.City = *req.City
		paths = append(paths, "city")
	}
	if req.Region != nil {
		store.Region = *req.Region
		paths = append(paths, "region")
	}
	if req.PostalCode != nil {
		store.PostalCode = *req.PostalCode
		paths = append(paths, "postal_code")
	}

	if len(paths) == 0 {
		response.BadRequest(w, "no updatable fields in request")
		return
	}

	updated, err := a.service.UpdateStore(ctx, store, paths)
	if errors.Is(err, storage.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		a.logger.Errorf("failed to update store %s: %v", id, err)
		response.InternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "stores.API.handleDelete")
	defer span.End()

	if _, ok := a.requireAdmin(ctx, w); !ok {
		return
	}

	id := chi.URLParam(r, "id")

	if err := a.service.DeleteStore(ctx, id); err != nil {
		a.logger.Errorf("failed to delete store %s: %v", id, err)
		response.InternalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListUsers lists the permission rows for a store, so a manager
// can see who reaches their location. Edit access is required and a
// denial looks like an absent store.
func (a *API) handleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "stores.API.handleListUsers")
	defer span.End()

	subject, ok := authentication.GetUserID(ctx)
	if !ok {
		response.Unauthorized(w)
		return
	}

	id := chi.URLParam(r, "id")

	allowed, err := a.authz.CanEdit(ctx, subject, id)
	if err != nil {
		a.logger.Errorf("failed to check edit access: %v", err)
		response.InternalError(w)
		return
	}
	if !allowed {
		a.logger.Security().AuthzFailure(subject, authorization.EDIT_ACTION)
		response.NotFound(w)
		return
	}

	permissions, err := a.service.ListStoreUsers(ctx, id)
	if err != nil {
		a.logger.Errorf("failed to list users for store %s: %v", id, err)
		response.InternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusOK, permissions)
}

func (a *API) requireAdmin(ctx context.Context, w http.ResponseWriter) (string, bool) {
	subject, ok := authentication.GetUserID(ctx)
	if !ok {
		response.Unauthorized(w)
		return "", false
	}

	admin, err := a.authz.IsGlobalAdmin(ctx, subject)
	if err != nil {
		a.logger.Errorf("failed to check admin flag for %s: %v", subject, err)
		response.InternalError(w)
		return "", false
	}
	if !admin {
		a.logger.Security().AuthzFailure(subject, authorization.ADMIN_ACTION)
		response.Forbidden(w)
		return "", false
	}

	return subject, true
}
