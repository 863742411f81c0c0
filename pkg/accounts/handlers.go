// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

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
	r.Get("/me", a.handleGetMe)
	r.Post("/users/sync", a.handleSyncUser)
	r.Get("/users", a.handleListUsers)
	r.Patch("/users/{id}", a.handleUpdateUser)
	r.Put("/users/{id}/permissions", a.handleGrantPermission)
	r.Delete("/users/{id}/permissions/{storeID}", a.handleRevokePermission)
}

type updateUserRequest struct {
	IsGlobalAdmin *bool `json:"is_global_admin" validate:"required"`
}

type grantPermissionRequest struct {
	StoreID string `json:"store_id" validate:"required,uuid"`
	CanEdit bool   `json:"can_edit"`
}

func (a *API) handleGetMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.handleGetMe")
	defer span.End()

	subject, ok := authentication.GetUserID(ctx)
	if !ok {
		response.Unauthorized(w)
		return
	}

	me, err := a.service.GetMe(ctx, subject)
	if err != nil {
		a.logger.Errorf("failed to build /me view: %v", err)
		response.InternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusOK, me)
}

// handleSyncUser provisions the caller and folds their pending
// invitations into grants. The email that keys the aggregation comes
// from the verified token claim only; a body-supplied email is ignored,
// otherwise any subject could harvest invitations addressed to someone
// else.
func (a *API) handleSyncUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.handleSyncUser")
	defer span.End()

	subject, ok := authentication.GetUserID(ctx)
	if !ok {
		response.Unauthorized(w)
		return
	}

	email, ok := authentication.GetUserEmail(ctx)
	if !ok {
		response.BadRequest(w, "token does not carry an email claim")
		return
	}

	identity, err := a.service.SyncUser(ctx, subject, email)
	if err != nil {
		a.logger.Errorf("failed to sync user %s: %v", subject, err)
		response.InternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusOK, identity)
}

func (a *API) handleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.handleListUsers")
	defer span.End()

	if _, ok := a.requireAdmin(ctx, w); !ok {
		return
	}

	identities, err := a.service.ListUsers(ctx)
	if err != nil {
		a.logger.Errorf("failed to list users: %v", err)
		response.InternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusOK, identities)
}

func (a *API) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.handleUpdateUser")
	defer span.End()

	if _, ok := a.requireAdmin(ctx, w); !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "user id is required")
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		response.BadRequest(w, "is_global_admin is required")
		return
	}

	identity, err := a.service.SetGlobalAdmin(ctx, id, *req.IsGlobalAdmin)
	if errors.Is(err, storage.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		a.logger.Errorf("failed to update user %s: %v", id, err)
		response.InternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusOK, identity)
}

func (a *API) handleGrantPermission(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.handleGrantPermission")
	defer span.End()

	if _, ok := a.requireAdmin(ctx, w); !ok {
		return
	}

	id := chi.URLParam(r, "id")

	var req grantPermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		response.BadRequest(w, "store_id is required")
		return
	}

	permission, err := a.service.GrantPermission(ctx, id, req.StoreID, req.CanEdit)
	if errors.Is(err, storage.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if errors.Is(err, storage.ErrForeignKeyViolation) {
		response.BadRequest(w, "store does not exist")
		return
	}
	if err != nil {
		a.logger.Errorf("failed to grant permission to %s: %v", id, err)
		response.InternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusOK, permission)
}

func (a *API) handleRevokePermission(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.handleRevokePermission")
	defer span.End()

	if _, ok := a.requireAdmin(ctx, w); !ok {
		return
	}

	id := chi.URLParam(r, "id")
	storeID := chi.URLParam(r, "storeID")

	if err := a.service.RevokePermission(ctx, id, storeID); err != nil {
		a.logger.Errorf("failed to revoke permission for %s: %v", id, err)
		response.InternalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// requireAdmin gates operation-level admin endpoints. Unlike
// store-scoped denials these return a plain 403: the endpoint itself is
// no secret, only its data is.
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
