// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package rate provides the per-actor fixed-window limiter applied to
// invitation issuance.
package rate

import (
	"sync"
	"time"
)

type LimiterInterface interface {
	Allow(actorID string) bool
}

type window struct {
	start time.Time
	count int
}

// Limiter counts events per actor inside a fixed window. The window resets
// when its full duration has elapsed; there is no sliding behavior.
type Limiter struct {
	mu      sync.Mutex
	limit   int
	period  time.Duration
	now     func() time.Time
	windows map[string]*window
}

func NewLimiter(limit int, period time.Duration) *Limiter {
	return &Limiter{
		limit:   limit,
		period:  period,
		now:     time.Now,
		windows: make(map[string]*window),
	}
}

// Allow reports whether the actor may perform another event and records it
// when permitted. A denied call does not consume the window.
func (l *Limiter) Allow(actorID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[actorID]
	if !ok || now.Sub(w.start) >= l.period {
		l.windows[actorID] = &window{start: now, count: 1}
		return true
	}

	if w.count >= l.limit {
		return false
	}

	w.count++
	return true
}
