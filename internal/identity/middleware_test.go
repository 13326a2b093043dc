// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/seniorhub/household-service/internal/logging"
	"github.com/seniorhub/household-service/internal/tracing"
	"github.com/seniorhub/household-service/internal/types"
)

func TestAuthenticate(t *testing.T) {
	testCases := []struct {
		name         string
		headers      map[string]string
		expectedCode int
		expected     *types.Requester
	}{
		{
			name: "full identity",
			headers: map[string]string{
				HeaderUserID:    "user-2",
				HeaderEmail:     "Ben@Example.com",
				HeaderFirstName: " Ben ",
				HeaderLastName:  "Martin",
			},
			expectedCode: http.StatusOK,
			expected:     &types.Requester{UserID: "user-2", Email: "ben@example.com", FirstName: "Ben", LastName: "Martin"},
		},
		{
			name: "missing email",
			headers: map[string]string{
				HeaderUserID: "user-2",
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "no headers",
			headers:      map[string]string{},
			expectedCode: http.StatusUnauthorized,
		},
	}

	middleware := NewMiddleware(tracing.NewNoopTracer(), logging.NewNoopLogger())

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var captured *types.Requester
			handler := middleware.Authenticate()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if requester, ok := GetRequester(r.Context()); ok {
					captured = &requester
				}
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/households", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tc.expectedCode {
				t.Fatalf("expected status %d, got %d", tc.expectedCode, rec.Code)
			}
			if tc.expected == nil {
				if captured != nil {
					t.Error("expected no requester in context")
				}
				return
			}
			if captured == nil {
				t.Fatal("expected requester in context")
			}
			if *captured != *tc.expected {
				t.Errorf("expected requester %+v, got %+v", tc.expected, captured)
			}
		})
	}
}
