// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package donations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
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
	r.Get("/donations", a.handleList)
	r.Post("/donations", a.handleCreate)
	r.Get("/donations/{id}", a.handleGet)
	r.Delete("/donations/{id}", a.handleDelete)
}

type createDonationRequest struct {
	StoreID     string     `json:"store_id" validate:"required,uuid"`
	ContactID   string     `json:"contact_id" validate:"omitempty,uuid"`
	AmountCents int64      `json:"amount_cents" validate:"required,gt=0"`
	Currency    string     `json:"currency" validate:"required,len=3"`
	Notes       string     `json:"notes"`
	ReceivedAt  *time.Time `json:"received_at"`
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "donations.API.handleList")
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

	donations, err := a.service.ListDonationsByStore(ctx, storeID)
	if err != nil {
		a.logger.Errorf("failed to list donations: %v", err)
		response.InternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusOK, donations)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "donations.API.handleCreate")
	defer span.End()

	subject, ok := authentication.GetUserID(ctx)
	if !ok {
		response.Unauthorized(w)
		return
	}

	var req createDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		response.BadRequest(w, "store_id, a positive amount_cents and a 3-letter currency are required")
		return
	}

	if !a.allowEdit(ctx, w, subject, req.StoreID) {
		return
	}

	receivedAt := time.Now().UTC()
	if req.ReceivedAt != nil {
		receivedAt = *req.ReceivedAt
	}

	donation := &types.Donation{
		StoreID:     req.StoreID,
		ContactID:   req.ContactID,
		AmountCents: req.AmountCents,
		Currency:    strings.ToUpper(req.Currency),
		Notes:       req.Notes,
		ReceivedAt:  receivedAt,
		CreatedBy:   subject,
	}

	created, err := a.service.CreateDonation(ctx, donation)
	if errors.Is(err, storage.ErrForeignKeyViolation) {
		response.BadRequest(w, "store or contact does not exist")
		return
	}
	if err != nil {
		a.logger.Errorf("failed to create donation: %v", err)
		response.InternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "donations.API.handleGet")
	defer span.End()

	subject, ok := authentication.GetUserID(ctx)
	if !ok {
		response.Unauthorized(w)
		return
	}

	donation, ok := a.fetchViewable(ctx, w, subject, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	response.WriteJSON(w, http.StatusOK, donation)
}

func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "donations.API.handleDelete")
	defer span.End()

	subject, ok := authentication.GetUserID(ctx)
	if !ok {
		response.Unauthorized(w)
		return
	}

	donation, ok := a.fetchEditable(ctx, w, subject, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := a.service.DeleteDonation(ctx, donation.ID); err != nil {
		a.logger.Errorf("failed to delete donation %s: %v", donation.ID, err)
		response.InternalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) fetchViewable(ctx context.Context, w http.ResponseWriter, subject, id string) (*types.Donation, bool) {
	donation, err := a.service.GetDonation(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		response.NotFound(w)
		return nil, false
	}
	if err != nil {
		a.logger.Errorf("failed to get donation %s: %v", id, err)
		response.InternalError(w)
		return nil, false
	}

	if !a.allowView(ctx, w, subject, donation.StoreID) {
		return nil, false
	}

	return donation, true
}

func (a *API) fetchEditable(ctx context.Context, w http.ResponseWriter, subject, id string) (*types.Donation, bool) {
	donation, err := a.service.GetDonation(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		response.NotFound(w)
		return nil, false
	}
	if err != nil {
		a.logger.Errorf("failed to get donation %s: %v", id, err)
		response.InternalError(w)
		return nil, false
	}

	if !a.allowEdit(ctx, w, subject, donation.StoreID) {
		return nil, false
	}

	return donation, true
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
