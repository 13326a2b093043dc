// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package households

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/seniorhub/household-service/internal/identity"
	"github.com/seniorhub/household-service/internal/logging"
	"github.com/seniorhub/household-service/internal/monitoring"
	"github.com/seniorhub/household-service/internal/tracing"
	"github.com/seniorhub/household-service/pkg/invitations"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/v1/households", a.create)
	mux.Get("/v1/households", a.listMine)
	mux.Get("/v1/households/{householdId}", a.overview)
	mux.Get("/v1/households/{householdId}/members", a.listMembers)
	mux.Patch("/v1/households/{householdId}/members/{memberId}", a.updateMemberRole)
	mux.Delete("/v1/households/{householdId}/members/{memberId}", a.removeMember)
}

type createRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "households.API.create")
	defer span.End()

	requester, ok := identity.GetRequester(ctx)
	if !ok {
		a.writeError(w, invitations.NewAuthorizationError("unauthenticated"))
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, invitations.NewValidationError("invalid request body"))
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, invitations.NewValidationError(err.Error()))
		return
	}

	household, err := a.service.Create(ctx, req.Name, requester)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeSuccess(w, http.StatusCreated, household)
}

func (a *API) listMine(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "households.API.listMine")
	defer span.End()

	requester, ok := identity.GetRequester(ctx)
	if !ok {
		a.writeError(w, invitations.NewAuthorizationError("unauthenticated"))
		return
	}

	households, err := a.service.ListMine(ctx, requester)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeSuccess(w, http.StatusOK, map[string]interface{}{"households": households})
}

func (a *API) overview(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "households.API.overview")
	defer span.End()

	requester, ok := identity.GetRequester(ctx)
	if !ok {
		a.writeError(w, invitations.NewAuthorizationError("unauthenticated"))
		return
	}

	overview, err := a.service.Overview(ctx, chi.URLParam(r, "householdId"), requester)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeSuccess(w, http.StatusOK, map[string]interface{}{
		"household":       overview.Household,
		"membersCount":    overview.MembersCount,
		"seniorsCount":    overview.SeniorsCount,
		"caregiversCount": overview.CaregiversCount,
	})
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "households.API.listMembers")
	defer span.End()

	requester, ok := identity.GetRequester(ctx)
	if !ok {
		a.writeError(w, invitations.NewAuthorizationError("unauthenticated"))
		return
	}

	members, err := a.service.ListMembers(ctx, chi.URLParam(r, "householdId"), requester)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeSuccess(w, http.StatusOK, map[string]interface{}{"members": members})
}

type updateMemberRequest struct {
	Role string `json:"role" validate:"required,oneof=senior caregiver"`
}

func (a *API) updateMemberRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "households.API.updateMemberRole")
	defer span.End()

	requester, ok := identity.GetRequester(ctx)
	if !ok {
		a.writeError(w, invitations.NewAuthorizationError("unauthenticated"))
		return
	}

	var req updateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, invitations.NewValidationError("invalid request body"))
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, invitations.NewValidationError(err.Error()))
		return
	}

	member, err := a.service.UpdateMemberRole(ctx, chi.URLParam(r, "householdId"), chi.URLParam(r, "memberId"), req.Role, requester)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeSuccess(w, http.StatusOK, member)
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "households.API.removeMember")
	defer span.End()

	requester, ok := identity.GetRequester(ctx)
	if !ok {
		a.writeError(w, invitations.NewAuthorizationError("unauthenticated"))
		return
	}

	err := a.service.RemoveMember(ctx, chi.URLParam(r, "householdId"), chi.URLParam(r, "memberId"), requester)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeSuccess(w, http.StatusOK, nil)
}

type envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func (a *API) writeSuccess(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(envelope{Status: "success", Data: data})
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	message := "internal server error"

	if kind, ok := invitations.KindOf(err); ok {
		message = err.Error()
		switch kind {
		case invitations.KindValidation:
			code = http.StatusBadRequest
		case invitations.KindAuthorization:
			code = http.StatusForbidden
		case invitations.KindNotFound:
			code = http.StatusNotFound
		case invitations.KindConflict:
			code = http.StatusConflict
		case invitations.KindExpired:
			code = http.StatusGone
		case invitations.KindRateLimited:
			code = http.StatusTooManyRequests
		}
	} else {
		a.logger.Errorf("request failed: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(envelope{Status: "error", Message: message})
}
