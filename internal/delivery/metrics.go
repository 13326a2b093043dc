// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package delivery implements the asynchronous invitation email queue.
package delivery

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Snapshot is a point-in-time read of the queue counters. All counts are
// monotonic since process start.
type Snapshot struct {
	Queued     int64 `json:"queued"`
	Sent       int64 `json:"sent"`
	Failed     int64 `json:"failed"`
	Retries    int64 `json:"retries"`
	DeadLetter int64 `json:"deadLetter"`
}

// Metrics tracks delivery outcomes. The atomic counters back the status
// endpoint; the prometheus counter mirrors them for scraping.
type Metrics struct {
	queued     atomic.Int64
	sent       atomic.Int64
	failed     atomic.Int64
	retries    atomic.Int64
	deadLetter atomic.Int64

	events *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "email_delivery_events_total",
			Help: "Invitation email delivery events by outcome",
		}, []string{"event"}),
	}

	// Duplicate registration only happens in tests that build several
	// queues; the first registration wins.
	_ = prometheus.Register(m.events)

	return m
}

func (m *Metrics) incr(counter *atomic.Int64, event string) {
	counter.Add(1)
	m.events.WithLabelValues(event).Inc()
}

func (m *Metrics) Queued()     { m.incr(&m.queued, "queued") }
func (m *Metrics) Sent()       { m.incr(&m.sent, "sent") }
func (m *Metrics) Failed()     { m.incr(&m.failed, "failed") }
func (m *Metrics) Retried()    { m.incr(&m.retries, "retries") }
func (m *Metrics) DeadLetter() { m.incr(&m.deadLetter, "dead_letter") }

func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		Queued:     m.queued.Load(),
		Sent:       m.sent.Load(),
		Failed:     m.failed.Load(),
		Retries:    m.retries.Load(),
		DeadLetter: m.deadLetter.Load(),
	}
}
