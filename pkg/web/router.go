// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/crewline/fieldcrm/internal/authorization"
	"github.com/crewline/fieldcrm/internal/db"
	"github.com/crewline/fieldcrm/internal/logging"
	"github.com/crewline/fieldcrm/internal/monitoring"
	"github.com/crewline/fieldcrm/internal/storage"
	"github.com/crewline/fieldcrm/internal/tracing"
	"github.com/crewline/fieldcrm/pkg/accounts"
	"github.com/crewline/fieldcrm/pkg/authentication"
	"github.com/crewline/fieldcrm/pkg/calendar"
	"github.com/crewline/fieldcrm/pkg/contacts"
	"github.com/crewline/fieldcrm/pkg/donations"
	"github.com/crewline/fieldcrm/pkg/invites"
	"github.com/crewline/fieldcrm/pkg/metrics"
	"github.com/crewline/fieldcrm/pkg/status"
	"github.com/crewline/fieldcrm/pkg/stores"
)

func NewRouter(
	s storage.StorageInterface,
	dbClient db.ClientInterface,
	authn *authentication.Middleware,
	corsAllowedOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(corsAllowedOrigins),
	)

	router.Use(middlewares...)

	authorizer := authorization.NewAuthorizer(s, tracer, monitor, logger)

	accountsAPI := accounts.NewAPI(
		accounts.NewService(s, authorizer, tracer, monitor, logger),
		authorizer,
		tracer, monitor, logger,
	)
	storesAPI := stores.NewAPI(
		stores.NewService(s, authorizer, tracer, monitor, logger),
		authorizer,
		tracer, monitor, logger,
	)
	invitesAPI := invites.NewAPI(
		invites.NewService(s, tracer, monitor, logger),
		authorizer,
		tracer, monitor, logger,
	)
	contactsAPI := contacts.NewAPI(
		contacts.NewService(s, tracer, monitor, logger),
		authorizer,
		tracer, monitor, logger,
	)
	donationsAPI := donations.NewAPI(
		donations.NewService(s, tracer, monitor, logger),
		authorizer,
		tracer, monitor, logger,
	)
	calendarAPI := calendar.NewAPI(
		calendar.NewService(s, tracer, monitor, logger),
		authorizer,
		tracer, monitor, logger,
	)

	// Infra endpoints stay outside authentication.
	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(authn.Authenticate())
		r.Use(db.TransactionMiddleware(dbClient, logger))

		r.Route("/api/v0", func(r chi.Router) {
			accountsAPI.RegisterEndpoints(r)
			storesAPI.RegisterEndpoints(r)
			invitesAPI.RegisterEndpoints(r)
			contactsAPI.RegisterEndpoints(r)
			donationsAPI.RegisterEndpoints(r)
			calendarAPI.RegisterEndpoints(r)
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
