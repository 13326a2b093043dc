// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/seniorhub/household-service/internal/delivery"
	"github.com/seniorhub/household-service/internal/logging"
	"github.com/seniorhub/household-service/internal/monitoring"
	"github.com/seniorhub/household-service/internal/tracing"
)

type fixedQueue struct {
	snapshot delivery.Snapshot
}

func (q *fixedQueue) EnqueueBulk(_ []*delivery.Job)    {}
func (q *fixedQueue) Snapshot() delivery.Snapshot      { return q.snapshot }
func (q *fixedQueue) Shutdown(_ context.Context) error { return nil }

func TestStatusEndpoint(t *testing.T) {
	api := NewAPI(
		&fixedQueue{snapshot: delivery.Snapshot{Queued: 5, Sent: 3, Failed: 2, Retries: 1, DeadLetter: 1}},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("household-service"),
		logging.NewNoopLogger(),
	)

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/status", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp statusResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected ok status, got %q", resp.Status)
	}
	if resp.Delivery.Queued != 5 || resp.Delivery.DeadLetter != 1 {
		t.Errorf("unexpected delivery snapshot %+v", resp.Delivery)
	}
}

func TestVersionEndpoint(t *testing.T) {
	api := NewAPI(
		&fixedQueue{},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("household-service"),
		logging.NewNoopLogger(),
	)

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/version", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
