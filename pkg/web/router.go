// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/seniorhub/household-service/internal/config"
	"github.com/seniorhub/household-service/internal/delivery"
	"github.com/seniorhub/household-service/internal/identity"
	"github.com/seniorhub/household-service/internal/logging"
	"github.com/seniorhub/household-service/internal/monitoring"
	"github.com/seniorhub/household-service/internal/rate"
	"github.com/seniorhub/household-service/internal/storage"
	"github.com/seniorhub/household-service/internal/token"
	"github.com/seniorhub/household-service/internal/tracing"
	"github.com/seniorhub/household-service/pkg/households"
	"github.com/seniorhub/household-service/pkg/invitations"
	"github.com/seniorhub/household-service/pkg/metrics"
	"github.com/seniorhub/household-service/pkg/status"
)

func NewRouter(
	specs *config.EnvSpec,
	store storage.StorageInterface,
	queue delivery.QueueInterface,
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
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	codec := token.NewCodec(specs.TokenSigningSecret)
	limiter := rate.NewLimiter(specs.InviteRateLimit, specs.InviteRateWindow)
	links := invitations.NewLinkBuilder(specs.PublicBaseURL, specs.WebFallbackURL)

	invitationService := invitations.NewService(
		store, codec, limiter, queue, links, specs.InvitationTTL,
		tracer, monitor, logger,
	)
	invitationAPI := invitations.NewAPI(invitationService, links, tracer, monitor, logger)

	householdService := households.NewService(store, tracer, monitor, logger)
	householdAPI := households.NewAPI(householdService, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(queue, tracer, monitor, logger).RegisterEndpoints(router)

	// Invitees follow these links before they have a session.
	router.Group(func(public chi.Router) {
		invitationAPI.RegisterPublicEndpoints(public)
	})

	router.Group(func(protected chi.Router) {
		protected.Use(identity.NewMiddleware(tracer, logger).Authenticate())
		invitationAPI.RegisterEndpoints(protected)
		householdAPI.RegisterEndpoints(protected)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
