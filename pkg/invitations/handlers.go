// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/seniorhub/household-service/internal/identity"
	"github.com/seniorhub/household-service/internal/logging"
	"github.com/seniorhub/household-service/internal/monitoring"
	"github.com/seniorhub/household-service/internal/tracing"
)

var mobileUserAgent = regexp.MustCompile(`(?i)iphone|ipad|ipod|android`)

type API struct {
	service  ServiceInterface
	links    *LinkBuilder
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	links *LinkBuilder,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		links:    links,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// RegisterEndpoints mounts the identity-gated invitation routes.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/v1/households/{householdId}/invitations/bulk", a.createBulk)
	mux.Get("/v1/households/{householdId}/invitations", a.listByHousehold)
	mux.Post("/v1/households/{householdId}/invitations/{invitationId}/cancel", a.cancel)
	mux.Post("/v1/households/{householdId}/invitations/{invitationId}/resend", a.resend)
	mux.Get("/v1/invitations/my-pending", a.listMyPending)
	mux.Post("/v1/invitations/accept", a.accept)
	mux.Post("/v1/invitations/auto-accept", a.autoAccept)
}

// RegisterPublicEndpoints mounts the routes reachable without identity
// headers; invitees follow these before they have an account session.
func (a *API) RegisterPublicEndpoints(mux chi.Router) {
	mux.Get("/v1/invitations/resolve", a.resolve)
	mux.Get("/v1/invitations/accept-link", a.acceptLink)
}

type bulkRequest struct {
	Invitations []Candidate `json:"invitations" validate:"required,min=1,max=50,dive"`
}

func (a *API) createBulk(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.createBulk")
	defer span.End()

	requester, ok := identity.GetRequester(ctx)
	if !ok {
		a.writeError(w, NewAuthorizationError("unauthenticated"))
		return
	}

	var req bulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, NewValidationError("invalid request body"))
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, NewValidationError(err.Error()))
		return
	}

	result, err := a.service.CreateBulk(ctx, chi.URLParam(r, "householdId"), requester, req.Invitations)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeSuccess(w, http.StatusCreated, result)
}

type acceptRequest struct {
	Token        string `json:"token" validate:"omitempty,max=512"`
	InvitationID string `json:"invitationId" validate:"omitempty,uuid"`
}

func (a *API) accept(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.accept")
	defer span.End()

	requester, ok := identity.GetRequester(ctx)
	if !ok {
		a.writeError(w, NewAuthorizationError("unauthenticated"))
		return
	}

	var req acceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, NewValidationError("invalid request body"))
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, NewValidationError(err.Error()))
		return
	}

	result, err := a.service.Accept(ctx, requester, req.Token, req.InvitationID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeSuccess(w, http.StatusOK, result)
}

func (a *API) autoAccept(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.autoAccept")
	defer span.End()

	requester, ok := identity.GetRequester(ctx)
	if !ok {
		a.writeError(w, NewAuthorizationError("unauthenticated"))
		return
	}

	accepted, err := a.service.AutoAcceptPending(ctx, requester)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeSuccess(w, http.StatusOK, map[string]interface{}{
		"acceptedCount": len(accepted),
		"memberships":   accepted,
	})
}

func (a *API) cancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.cancel")
	defer span.End()

	requester, ok := identity.GetRequester(ctx)
	if !ok {
		a.writeError(w, NewAuthorizationError("unauthenticated"))
		return
	}

	err := a.service.Cancel(ctx, chi.URLParam(r, "householdId"), chi.URLParam(r, "invitationId"), requester)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeSuccess(w, http.StatusOK, nil)
}

func (a *API) resend(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.resend")
	defer span.End()

	requester, ok := identity.GetRequester(ctx)
	if !ok {
		a.writeError(w, NewAuthorizationError("unauthenticated"))
		return
	}

	result, err := a.service.Resend(ctx, chi.URLParam(r, "householdId"), chi.URLParam(r, "invitationId"), requester)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeSuccess(w, http.StatusOK, result)
}

func (a *API) listByHousehold(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.listByHousehold")
	defer span.End()

	requester, ok := identity.GetRequester(ctx)
	if !ok {
		a.writeError(w, NewAuthorizationError("unauthenticated"))
		return
	}

	views, err := a.service.ListByHousehold(ctx, chi.URLParam(r, "householdId"), requester)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeSuccess(w, http.StatusOK, map[string]interface{}{"invitations": views})
}

func (a *API) listMyPending(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.listMyPending")
	defer span.End()

	requester, ok := identity.GetRequester(ctx)
	if !ok {
		a.writeError(w, NewAuthorizationError("unauthenticated"))
		return
	}

	views, err := a.service.ListPendingForRequester(ctx, requester)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeSuccess(w, http.StatusOK, map[string]interface{}{"invitations": views})
}

func (a *API) resolve(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.resolve")
	defer span.End()

	view, err := a.service.ResolveByToken(ctx, r.URL.Query().Get("token"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeSuccess(w, http.StatusOK, view)
}

// acceptLink is the emailed smart redirect: mobile user agents go to the
// app deep link, everything else to the web fallback.
func (a *API) acceptLink(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.acceptLink")
	defer span.End()

	token := r.URL.Query().Get("token")
	if _, err := a.service.ResolveByToken(ctx, token); err != nil {
		a.writeError(w, err)
		return
	}

	target := a.links.FallbackLink(token)
	if target == "" || mobileUserAgent.MatchString(r.UserAgent()) {
		target = a.links.DeepLink(token)
	}

	http.Redirect(w, r, target, http.StatusFound)
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

	if kind, ok := KindOf(err); ok {
		message = err.Error()
		switch kind {
		case KindValidation:
			code = http.StatusBadRequest
		case KindAuthorization:
			code = http.StatusForbidden
		case KindNotFound:
			code = http.StatusNotFound
		case KindConflict:
			code = http.StatusConflict
		case KindExpired:
			code = http.StatusGone
		case KindRateLimited:
			code = http.StatusTooManyRequests
		}
	} else {
		a.logger.Errorf("request failed: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(envelope{Status: "error", Message: message})
}
