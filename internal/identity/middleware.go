// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"encoding/json"
	"net/http"

	"github.com/seniorhub/household-service/internal/logging"
	"github.com/seniorhub/household-service/internal/tracing"
	"github.com/seniorhub/household-service/internal/types"
)

// Headers set by the authenticating gateway.
const (
	HeaderUserID    = "X-Auth-User-Id"
	HeaderEmail     = "X-Auth-Email"
	HeaderFirstName = "X-Auth-First-Name"
	HeaderLastName  = "X-Auth-Last-Name"
)

type Middleware struct {
	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer: tracer,
		logger: logger,
	}
}

// Authenticate rejects requests missing the forwarded identity headers and
// attaches the requester to the context otherwise.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.Authenticate")
			defer span.End()

			userID := r.Header.Get(HeaderUserID)
			email := r.Header.Get(HeaderEmail)
			if userID == "" || email == "" {
				m.unauthorizedResponse(w, "missing identity headers")
				return
			}

			requester := types.Requester{
				UserID:    userID,
				Email:     types.NormalizeEmail(email),
				FirstName: types.NormalizeName(r.Header.Get(HeaderFirstName)),
				LastName:  types.NormalizeName(r.Header.Get(HeaderLastName)),
			}

			ctx = WithRequester(ctx, requester)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) unauthorizedResponse(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "error",
		"message": message,
	})
}
