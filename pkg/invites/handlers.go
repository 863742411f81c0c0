// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

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
	r.Get("/invites", a.handleList)
	r.Post("/invites", a.handleCreate)
	r.Get("/invites/{id}", a.handleGet)
	r.Delete("/invites/{id}", a.handleDelete)
}

type createInviteRequest struct {
	Email         string `json:"email" validate:"required,email"`
	StoreID       string `json:"store_id" validate:"required_unless=IsGlobalAdmin true,omitempty,uuid"`
	CanEdit       bool   `json:"can_edit"`
	IsGlobalAdmin bool   `json:"is_global_admin"`
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.handleList")
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

	allowed, err := a.authz.CanEdit(ctx, subject, storeID)
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

	invitations, err := a.service.ListInvitationsByStore(ctx, storeID)
	if err != nil {
		a.logger.Errorf("failed to list invitations: %v", err)
		response.InternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusOK, invitations)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.handleCreate")
	defer span.End()

	subject, ok := a.requireAdmin(ctx, w)
	if !ok {
		return
	}

	var req createInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		response.BadRequest(w, "a valid email and store_id are required")
		return
	}

	inv := &types.Invitation{
		Email:         req.Email,
		StoreID:       req.StoreID,
		CanEdit:       req.CanEdit,
		IsGlobalAdmin: req.IsGlobalAdmin,
		InvitedBy:     subject,
	}

	created, err := a.service.CreateInvitation(ctx, inv)
	if errors.Is(err, storage.ErrForeignKeyViolation) {
		response.BadRequest(w, "store does not exist")
		return
	}
	if err != nil {
		a.logger.Errorf("failed to create invitation: %v", err)
		response.InternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.handleGet")
	defer span.End()

	if _, ok := a.requireAdmin(ctx, w); !ok {
		return
	}

	id := chi.URLParam(r, "id")

	inv, err := a.service.GetInvitation(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		a.logger.Errorf("failed to get invitation %s: %v", id, err)
		response.InternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusOK, inv)
}

func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.handleDelete")
	defer span.End()

	if _, ok := a.requireAdmin(ctx, w); !ok {
		return
	}

	id := chi.URLParam(r, "id")

	err := a.service.DeleteInvitation(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		a.logger.Errorf("failed to delete invitation %s: %v", id, err)
		response.InternalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
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
