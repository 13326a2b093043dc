// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package households

import (
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
	"github.com/seniorhub/household-service/pkg/invitations"
)

var testRequester = types.Requester{UserID: "user-2", Email: "ben@example.com", FirstName: "Ben", LastName: "Martin"}

func newTestAPI(t *testing.T) (*MockServiceInterface, *chi.Mux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := NewMockServiceInterface(ctrl)

	api := NewAPI(
		service,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("household-service"),
		logging.NewNoopLogger(),
	)

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	return service, mux
}

func authenticated(req *http.Request) *http.Request {
	return req.WithContext(identity.WithRequester(req.Context(), testRequester))
}

func TestAPI_Create(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		setupMocks   func(*MockServiceInterface)
		expectedCode int
	}{
		{
			name: "valid household",
			body: `{"name":"Martin Family Home"}`,
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().Create(gomock.Any(), "Martin Family Home", testRequester).
					Return(&types.Household{ID: "household-1", Name: "Martin Family Home"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "missing name",
			body:         `{}`,
			setupMocks:   func(service *MockServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, mux := newTestAPI(t)
			tc.setupMocks(service)

			req := authenticated(httptest.NewRequest(http.MethodPost, "/v1/households", strings.NewReader(tc.body)))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedCode {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedCode, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAPI_Overview(t *testing.T) {
	service, mux := newTestAPI(t)
	service.EXPECT().Overview(gomock.Any(), "household-1", testRequester).
		Return(&types.HouseholdOverview{
			Household:       &types.Household{ID: "household-1", Name: "Martin Family Home"},
			MembersCount:    2,
			SeniorsCount:    1,
			CaregiversCount: 1,
		}, nil)

	req := authenticated(httptest.NewRequest(http.MethodGet, "/v1/households/household-1", nil))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"membersCount":2`) {
		t.Errorf("expected member counts in response, got %s", rec.Body.String())
	}
}

func TestAPI_UpdateMemberRole(t *testing.T) {
	service, mux := newTestAPI(t)
	service.EXPECT().UpdateMemberRole(gomock.Any(), "household-1", "member-1", types.RoleCaregiver, testRequester).
		Return(&types.Member{ID: "member-1", Role: types.RoleCaregiver}, nil)

	req := authenticated(httptest.NewRequest(http.MethodPatch, "/v1/households/household-1/members/member-1", strings.NewReader(`{"role":"caregiver"}`)))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAPI_RemoveMember(t *testing.T) {
	service, mux := newTestAPI(t)
	service.EXPECT().RemoveMember(gomock.Any(), "household-1", "member-1", testRequester).
		Return(invitations.NewAuthorizationError("requester is not an active caregiver of this household"))

	req := authenticated(httptest.NewRequest(http.MethodDelete, "/v1/households/household-1/members/member-1", nil))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
