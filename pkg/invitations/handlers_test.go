// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/seniorhub/household-service/internal/identity"
	"github.com/seniorhub/household-service/internal/logging"
	"github.com/seniorhub/household-service/internal/monitoring"
	"github.com/seniorhub/household-service/internal/tracing"
	"github.com/seniorhub/household-service/internal/types"
)

var testRequester = types.Requester{UserID: "user-2", Email: "ben@example.com", FirstName: "Ben", LastName: "Martin"}

func newTestAPI(t *testing.T) (*API, *MockServiceInterface, *chi.Mux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := NewMockServiceInterface(ctrl)

	api := NewAPI(
		service,
		NewLinkBuilder("https://api.example.com", "https://web.example.com/invite"),
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("household-service"),
		logging.NewNoopLogger(),
	)

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	api.RegisterPublicEndpoints(mux)

	return api, service, mux
}

func authenticated(req *http.Request) *http.Request {
	return req.WithContext(identity.WithRequester(req.Context(), testRequester))
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var e envelope
	if err := json.NewDecoder(rec.Body).Decode(&e); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return e
}

func TestAPI_CreateBulk(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		setupMocks   func(*MockServiceInterface)
		expectedCode int
	}{
		{
			name: "valid batch",
			body: `{"invitations":[{"email":"dina@example.com","firstName":"Dina","role":"senior"}]}`,
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().CreateBulk(gomock.Any(), "household-1", testRequester, gomock.Len(1)).
					Return(&BulkResult{AcceptedCount: 1, Deliveries: []DeliveryResult{{Email: "dina@example.com", Status: DeliverySent}}}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid role rejected before the service",
			body:         `{"invitations":[{"email":"dina@example.com","role":"admin"}]}`,
			setupMocks:   func(service *MockServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "malformed body",
			body:         `{"invitations":`,
			setupMocks:   func(service *MockServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "rate limited maps to 429",
			body: `{"invitations":[{"email":"dina@example.com","role":"senior"}]}`,
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().CreateBulk(gomock.Any(), "household-1", testRequester, gomock.Any()).
					Return(nil, NewRateLimitedError("invitation rate limit exceeded, try again later"))
			},
			expectedCode: http.StatusTooManyRequests,
		},
		{
			name: "non-caregiver maps to 403",
			body: `{"invitations":[{"email":"dina@example.com","role":"senior"}]}`,
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().CreateBulk(gomock.Any(), "household-1", testRequester, gomock.Any()).
					Return(nil, NewAuthorizationError("requester is not an active caregiver of this household"))
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, service, mux := newTestAPI(t)
			tc.setupMocks(service)

			req := authenticated(httptest.NewRequest(http.MethodPost, "/v1/households/household-1/invitations/bulk", strings.NewReader(tc.body)))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedCode {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedCode, rec.Code, rec.Body.String())
			}

			e := decodeEnvelope(t, rec)
			if tc.expectedCode >= 400 && e.Status != "error" {
				t.Errorf("expected error envelope, got %+v", e)
			}
		})
	}
}

func TestAPI_Accept(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		setupMocks   func(*MockServiceInterface)
		expectedCode int
	}{
		{
			name: "redeems a token",
			body: `{"token":"raw-token"}`,
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().Accept(gomock.Any(), testRequester, "raw-token", "").
					Return(&AcceptResult{HouseholdID: "household-1", Role: types.RoleSenior}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "expired token maps to 410",
			body: `{"token":"raw-token"}`,
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().Accept(gomock.Any(), testRequester, "raw-token", "").
					Return(nil, NewExpiredError("invitation has expired"))
			},
			expectedCode: http.StatusGone,
		},
		{
			name: "terminal invitation maps to 409",
			body: `{"token":"raw-token"}`,
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().Accept(gomock.Any(), testRequester, "raw-token", "").
					Return(nil, NewConflictError("invitation is no longer pending"))
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, service, mux := newTestAPI(t)
			tc.setupMocks(service)

			req := authenticated(httptest.NewRequest(http.MethodPost, "/v1/invitations/accept", strings.NewReader(tc.body)))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedCode {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedCode, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAPI_AcceptLink(t *testing.T) {
	view := &View{ID: "inv-1", HouseholdName: "Martin Family Home"}

	testCases := []struct {
		name           string
		userAgent      string
		expectedPrefix string
	}{
		{
			name:           "mobile user agent gets the deep link",
			userAgent:      "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)",
			expectedPrefix: "seniorhub://invite",
		},
		{
			name:           "desktop user agent gets the web fallback",
			userAgent:      "Mozilla/5.0 (X11; Linux x86_64) Firefox/132.0",
			expectedPrefix: "https://web.example.com/invite",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, service, mux := newTestAPI(t)
			service.EXPECT().ResolveByToken(gomock.Any(), "raw-token").Return(view, nil)

			req := httptest.NewRequest(http.MethodGet, "/v1/invitations/accept-link?token=raw-token", nil)
			req.Header.Set("User-Agent", tc.userAgent)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != http.StatusFound {
				t.Fatalf("expected redirect, got %d", rec.Code)
			}
			location := rec.Header().Get("Location")
			if !strings.HasPrefix(location, tc.expectedPrefix) {
				t.Errorf("expected redirect to %s..., got %s", tc.expectedPrefix, location)
			}
			if !strings.Contains(location, "token=raw-token") {
				t.Errorf("expected token in redirect target, got %s", location)
			}
		})
	}

	t.Run("unresolvable token is a 404", func(t *testing.T) {
		_, service, mux := newTestAPI(t)
		service.EXPECT().ResolveByToken(gomock.Any(), "dead-token").Return(nil, NewNotFoundError("invitation not found"))

		req := httptest.NewRequest(http.MethodGet, "/v1/invitations/accept-link?token=dead-token", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestAPI_ListMyPending(t *testing.T) {
	_, service, mux := newTestAPI(t)
	service.EXPECT().ListPendingForRequester(gomock.Any(), testRequester).
		Return([]*View{{ID: "inv-1", HouseholdName: "Martin Family Home", Status: types.InvitationPending}}, nil)

	req := authenticated(httptest.NewRequest(http.MethodGet, "/v1/invitations/my-pending", nil))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Martin Family Home") {
		t.Errorf("expected invitation data in response, got %s", rec.Body.String())
	}
}

func TestAPI_UnauthenticatedRequest(t *testing.T) {
	_, _, mux := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/invitations/my-pending", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
