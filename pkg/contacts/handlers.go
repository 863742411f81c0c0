// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package contacts

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
	r.Get("/contacts", a.handleList)
	r.Post("/contacts", a.handleCreate)
	r.Get("/contacts/{id}", a.handleGet)
	r.Patch("/contacts/{id}", a.handleUpdate)
	r.Delete("/contacts/{id}", a.handleDelete)
	r.Get("/contacts/{id}/reachouts", a.handleListReachouts)
	r.Post("/contacts/{id}/reachouts", a.handleCreateReachout)
}

type createContactRequest struct {
	StoreID string `json:"store_id" validate:"required,uuid"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes"`
}

type updateContactRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Notes *string `json:"notes"`
}

type createReachoutRequest struct {
	Method     string     `json:"method" validate:"required,oneof=visit call email text"`
	Notes      string     `json:"notes"`
	OccurredAt *time.Time `json:"occurred_at"`
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "contacts.API.handleList")
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

	contacts, err := a.service.ListContactsByStore(ctx, storeID)
	if err != nil {
		a.logger.Errorf("failed to list contacts: %v", err)
		response.InternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusOK, contacts)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "contacts.API.handleCreate")
	defer span.End()

	subject, ok := authentication.GetUserID(ctx)
	if !ok {
		response.Unauthorized(w)
		return
	}

	var req createContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		response.BadRequest(w, "store_id and name are required")
		return
	}

	if !a.allowEdit(ctx, w, subject, req.StoreID) {
		return
	}

	contact := &types.Contact{
		StoreID:   req.StoreID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Notes:     req.Notes,
		CreatedBy: subject,
	}

	created, err := a.service.CreateContact(ctx, contact)
	if errors.Is(err, storage.ErrForeignKeyViolation) {
		// The gate passed, so the caller may know the store is gone.
		response.BadRequest(w, "store does not exist")
		return
	}
	if err != nil {
		a.logger.Errorf("failed to create contact: %v", err)
		response.InternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "contacts.API.handleGet")
	defer span.End()

	subject, ok := authentication.GetUserID(ctx)
	if !ok {
		response.Unauthorized(w)
		return
	}

	contact, ok := a.fetchViewable(ctx, w, subject, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	response.WriteJSON(w, http.StatusOK, contact)
}

func (a *API) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "contacts.API.handleUpdate")
	defer span.End()

	subject, ok := authentication.GetUserID(ctx)
	if !ok {
		response.Unauthorized(w)
		return
	}

	contact, ok := a.fetchEditable(ctx, w, subject, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req updateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	var paths []string
	if req.Name != nil {
		contact.Name = *req.Name
		paths = append(paths, "name")
	}
	if req.Email != nil {
		contact.Email = *req.Email
		paths = append(paths, "email")
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
		paths = append(paths, "phone")
	}
	if req.Notes != nil {
		contact.Notes = *req.Notes
		paths = append(paths, "notes")
	}

	if len(paths) == 0 {
		response.BadRequest(w, "no updatable fields in request")
		return
	}

	updated, err := a.service.UpdateContact(ctx, contact, paths)
	if errors.Is(err, storage.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		a.logger.Errorf("failed to update contact %s: %v", contact.ID, err)
		response.InternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "contacts.API.handleDelete")
	defer span.End()

	subject, ok := authentication.GetUserID(ctx)
	if !ok {
		response.Unauthorized(w)
		return
	}

	contact, ok := a.fetchEditable(ctx, w, subject, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := a.service.DeleteContact(ctx, contact.ID); err != nil {
		a.logger.Errorf("failed to delete contact %s: %v", contact.ID, err)
		response.InternalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleListReachouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "contacts.API.handleListReachouts")
	defer span.End()

	subject, ok := authentication.GetUserID(ctx)
	if !ok {
		response.Unauthorized(w)
		return
	}

	contact, ok := a.fetchViewable(ctx, w, subject, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	reachouts, err := a.service.ListReachoutsByContact(ctx, contact.ID)
	if err != nil {
		a.logger.Errorf("failed to list reachouts: %v", err)
		response.InternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusOK, reachouts)
}

func (a *API) handleCreateReachout(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "contacts.API.handleCreateReachout")
	defer span.End()

	subject, ok := authentication.GetUserID(ctx)
	if !ok {
		response.Unauthorized(w)
		return
	}

	contact, ok := a.fetchEditable(ctx, w, subject, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req createReachoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		response.BadRequest(w, "method must be one of visit, call, email, text")
		return
	}

	occurredAt := time.Now().UTC()
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	reachout := &types.Reachout{
		ContactID:  contact.ID,
		StoreID:    contact.StoreID,
		Method:     req.Method,
		Notes:      req.Notes,
		OccurredAt: occurredAt,
		CreatedBy:  subject,
	}

	created, err := a.service.CreateReachout(ctx, reachout)
	if err != nil {
		a.logger.Errorf("failed to create reachout: %v", err)
		response.InternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusCreated, created)
}

// fetchViewable loads the contact and clears it through the gate using
// the store id from the stored row. Denial and absence both end in the
// canonical not-found response.
func (a *API) fetchViewable(ctx context.Context, w http.ResponseWriter, subject, id string) (*types.Contact, bool) {
	contact, err := a.service.GetContact(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		response.NotFound(w)
		return nil, false
	}
	if err != nil {
		a.logger.Errorf("failed to get contact %s: %v", id, err)
		response.InternalError(w)
		return nil, false
	}

	if !a.allowView(ctx, w, subject, contact.StoreID) {
		return nil, false
	}

	return contact, true
}

func (a *API) fetchEditable(ctx context.Context, w http.ResponseWriter, subject, id string) (*types.Contact, bool) {
	contact, err := a.service.GetContact(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		response.NotFound(w)
		return nil, false
	}
	if err != nil {
		a.logger.Errorf("failed to get contact %s: %v", id, err)
		response.InternalError(w)
		return nil, false
	}

	if !a.allowEdit(ctx, w, subject, contact.StoreID) {
		return nil, false
	}

	return contact, true
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
