// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rate

import (
	"testing"
	"time"
)

func TestLimiterAllow(t *testing.T) {
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewLimiter(3, time.Minute)
	limiter.now = func() time.Time { return current }

	for i := 0; i < 3; i++ {
		if !limiter.Allow("user-1") {
			t.Fatalf("expected call %d to be allowed", i+1)
		}
	}
	if limiter.Allow("user-1") {
		t.Error("expected fourth call to be denied")
	}

	// Another actor has an independent window.
	if !limiter.Allow("user-2") {
		t.Error("expected independent actor to be allowed")
	}

	// A denied call must not extend the window.
	current = current.Add(59 * time.Second)
	if limiter.Allow("user-1") {
		t.Error("expected denial inside the window")
	}

	current = current.Add(time.Second)
	if !limiter.Allow("user-1") {
		t.Error("expected allowance once the window elapsed")
	}
	if !limiter.Allow("user-1") {
		t.Error("expected fresh window to carry its own count")
	}
}
