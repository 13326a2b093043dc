// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package delivery

import (
	"context"
	"sync"
	"time"

	"github.com/seniorhub/household-service/internal/logging"
	"github.com/seniorhub/household-service/internal/mail"
	"github.com/seniorhub/household-service/internal/types"
)

// Job is a single invitation email to deliver. Jobs live only in memory;
// a crash between enqueue and send loses the notification, but the
// invitation itself stays redeemable.
type Job struct {
	InvitationID     string
	InviteeEmail     string
	InviteeFirstName string
	HouseholdName    string
	InviterName      string
	AssignedRole     string
	AcceptLinkURL    string
	FallbackURL      string
}

type QueueInterface interface {
	EnqueueBulk(jobs []*Job)
	Snapshot() Snapshot
	Shutdown(ctx context.Context) error
}

// Queue retries each job up to maxRetries attempts with a fixed delay
// between attempts, then dead-letters it. Delivery failures never reach
// the invitation-creation caller.
type Queue struct {
	provider   mail.EmailProviderInterface
	metrics    *Metrics
	logger     logging.LoggerInterface
	maxRetries int
	retryDelay time.Duration

	// schedule is swapped in tests to run retries synchronously.
	schedule func(d time.Duration, f func())
	inFlight sync.WaitGroup
}

func NewQueue(provider mail.EmailProviderInterface, metrics *Metrics, logger logging.LoggerInterface, maxRetries int, retryDelay time.Duration) *Queue {
	return &Queue{
		provider:   provider,
		metrics:    metrics,
		logger:     logger,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		schedule: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

// EnqueueBulk hands jobs to the queue and returns immediately.
func (q *Queue) EnqueueBulk(jobs []*Job) {
	for _, job := range jobs {
		q.metrics.Queued()
		q.inFlight.Add(1)

		j := job
		go q.attempt(j, 1)
	}
}

func (q *Queue) attempt(job *Job, attempt int) {
	message := mail.NewInvitationMessage(mail.InvitationParams{
		InviteeEmail:     job.InviteeEmail,
		InviteeFirstName: job.InviteeFirstName,
		HouseholdName:    job.HouseholdName,
		InviterName:      job.InviterName,
		AssignedRole:     job.AssignedRole,
		AcceptLinkURL:    job.AcceptLinkURL,
		FallbackURL:      job.FallbackURL,
	})

	err := q.provider.Send(context.Background(), message)
	if err == nil {
		q.metrics.Sent()
		q.inFlight.Done()
		return
	}

	q.metrics.Failed()
	q.logger.Warnf("invitation email attempt %d/%d failed invitation=%s to=%s: %v",
		attempt, q.maxRetries, job.InvitationID, types.MaskEmail(job.InviteeEmail), err)

	if attempt >= q.maxRetries {
		q.metrics.DeadLetter()
		q.logger.Errorf("invitation email dead-lettered invitation=%s to=%s",
			job.InvitationID, types.MaskEmail(job.InviteeEmail))
		q.inFlight.Done()
		return
	}

	q.metrics.Retried()
	q.schedule(q.retryDelay, func() { q.attempt(job, attempt+1) })
}

func (q *Queue) Snapshot() Snapshot {
	return q.metrics.Snapshot()
}

// Shutdown waits for in-flight jobs, including scheduled retries, until
// the context expires.
func (q *Queue) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		q.inFlight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
