// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/seniorhub/household-service/internal/config"
	"github.com/seniorhub/household-service/internal/delivery"
	"github.com/seniorhub/household-service/internal/identity"
	"github.com/seniorhub/household-service/internal/logging"
	"github.com/seniorhub/household-service/internal/mail"
	"github.com/seniorhub/household-service/internal/monitoring"
	"github.com/seniorhub/household-service/internal/storage"
	"github.com/seniorhub/household-service/internal/tracing"
)

type captureProvider struct {
	mu       sync.Mutex
	messages []*mail.Message
}

func (p *captureProvider) Send(_ context.Context, message *mail.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, message)
	return nil
}

func (p *captureProvider) last(t *testing.T) *mail.Message {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.messages) == 0 {
		t.Fatal("expected at least one delivered email")
	}
	return p.messages[len(p.messages)-1]
}

func newTestServer(t *testing.T) (http.Handler, *captureProvider, *delivery.Queue) {
	t.Helper()

	specs := &config.EnvSpec{
		TokenSigningSecret: "router-test-secret",
		InvitationTTL:      72 * time.Hour,
		PublicBaseURL:      "https://api.example.com",
		WebFallbackURL:     "https://web.example.com/invite",
		InviteRateLimit:    10,
		InviteRateWindow:   time.Minute,
	}

	provider := &captureProvider{}
	queue := delivery.NewQueue(provider, delivery.NewMetrics(), logging.NewNoopLogger(), 3, time.Millisecond)

	handler := NewRouter(
		specs,
		storage.NewSeededInMemoryStorage(),
		queue,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("household-service"),
		logging.NewNoopLogger(),
	)

	return handler, provider, queue
}

func doRequest(handler http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func caregiverHeaders() map[string]string {
	return map[string]string{
		identity.HeaderUserID:    "user-2",
		identity.HeaderEmail:     "ben@example.com",
		identity.HeaderFirstName: "Ben",
		identity.HeaderLastName:  "Martin",
	}
}

func inviteeHeaders() map[string]string {
	return map[string]string{
		identity.HeaderUserID:    "user-3",
		identity.HeaderEmail:     "carol@example.com",
		identity.HeaderFirstName: "Carol",
		identity.HeaderLastName:  "Reyes",
	}
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response envelope: %v", err)
	}
	if out == nil {
		return
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("failed to decode response data: %v", err)
	}
}

var tokenPattern = regexp.MustCompile(`token=([A-Za-z0-9.\-]+)`)

// TestInvitationLifecycle drives the whole flow over the assembled router:
// a caregiver invites a new senior, the invitee inspects the public link,
// accepts it and shows up as an active household member.
func TestInvitationLifecycle(t *testing.T) {
	handler, provider, queue := newTestServer(t)

	var token string

	t.Run("caregiver invites a senior", func(t *testing.T) {
		body := `{"invitations":[{"email":"Carol@Example.com","firstName":"Carol","role":"senior"}]}`
		rec := doRequest(handler, http.MethodPost, "/v1/households/household-1/invitations/bulk", body, caregiverHeaders())
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}

		var result struct {
			AcceptedCount int `json:"acceptedCount"`
			Deliveries    []struct {
				Email  string `json:"email"`
				Status string `json:"status"`
			} `json:"deliveries"`
		}
		decodeData(t, rec, &result)
		if result.AcceptedCount != 1 {
			t.Fatalf("expected 1 accepted invitation, got %d", result.AcceptedCount)
		}
		if result.Deliveries[0].Email != "carol@example.com" {
			t.Errorf("expected normalized recipient email, got %s", result.Deliveries[0].Email)
		}
	})

	t.Run("invitation email carries the accept link", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := queue.Shutdown(ctx); err != nil {
			t.Fatalf("queue did not drain: %v", err)
		}

		message := provider.last(t)
		if message.To != "carol@example.com" {
			t.Fatalf("expected email to carol@example.com, got %s", message.To)
		}
		if !strings.Contains(message.Body, "https://api.example.com/v1/invitations/accept-link?token=") {
			t.Fatalf("expected accept link in email body:\n%s", message.Body)
		}

		match := tokenPattern.FindStringSubmatch(message.Body)
		if match == nil {
			t.Fatal("no token found in email body")
		}
		token = match[1]
	})

	t.Run("public resolve masks the invitee email", func(t *testing.T) {
		rec := doRequest(handler, http.MethodGet, "/v1/invitations/resolve?token="+token, "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var view struct {
			HouseholdName string `json:"householdName"`
			InviteeEmail  string `json:"inviteeEmail"`
			AssignedRole  string `json:"assignedRole"`
		}
		decodeData(t, rec, &view)
		if view.HouseholdName != "Martin Family Home" {
			t.Errorf("expected household name in public view, got %q", view.HouseholdName)
		}
		if view.InviteeEmail != "c***@example.com" {
			t.Errorf("expected masked email, got %q", view.InviteeEmail)
		}
		if view.AssignedRole != "senior" {
			t.Errorf("expected senior role, got %q", view.AssignedRole)
		}
	})

	t.Run("accept link redirects mobile clients to the app", func(t *testing.T) {
		rec := doRequest(handler, http.MethodGet, "/v1/invitations/accept-link?token="+token, "", map[string]string{
			"User-Agent": "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)",
		})
		if rec.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", rec.Code)
		}
		location := rec.Header().Get("Location")
		if !strings.HasPrefix(location, "seniorhub://invite?") {
			t.Errorf("expected deep link redirect, got %s", location)
		}
		if !strings.Contains(location, "token="+token) {
			t.Errorf("expected token in redirect location, got %s", location)
		}
	})

	t.Run("invitee accepts and joins the household", func(t *testing.T) {
		body := fmt.Sprintf(`{"token":%q}`, token)
		rec := doRequest(handler, http.MethodPost, "/v1/invitations/accept", body, inviteeHeaders())
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var result struct {
			HouseholdID string `json:"householdId"`
			Role        string `json:"role"`
		}
		decodeData(t, rec, &result)
		if result.HouseholdID != "household-1" {
			t.Errorf("expected household-1, got %s", result.HouseholdID)
		}
		if result.Role != "senior" {
			t.Errorf("expected senior role, got %s", result.Role)
		}
	})

	t.Run("new member appears in the household listing", func(t *testing.T) {
		rec := doRequest(handler, http.MethodGet, "/v1/households/household-1/members", "", caregiverHeaders())
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), "carol@example.com") {
			t.Errorf("expected carol in member listing: %s", rec.Body.String())
		}
	})

	t.Run("second accept conflicts", func(t *testing.T) {
		body := fmt.Sprintf(`{"token":%q}`, token)
		rec := doRequest(handler, http.MethodPost, "/v1/invitations/accept", body, inviteeHeaders())
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}

func TestPublicRoutesSkipIdentity(t *testing.T) {
	handler, _, _ := newTestServer(t)

	rec := doRequest(handler, http.MethodGet, "/v1/invitations/resolve?token=not-a-real-token", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a dead token, got %d", rec.Code)
	}
}

func TestProtectedRoutesRequireIdentity(t *testing.T) {
	handler, _, _ := newTestServer(t)

	rec := doRequest(handler, http.MethodGet, "/v1/households", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity headers, got %d", rec.Code)
	}
}

func TestStatusReportsQueueSnapshot(t *testing.T) {
	handler, _, _ := newTestServer(t)

	rec := doRequest(handler, http.MethodGet, "/api/v0/status", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"delivery"`) {
		t.Errorf("expected delivery snapshot in status body: %s", rec.Body.String())
	}
}
