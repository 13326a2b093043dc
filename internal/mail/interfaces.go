// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package mail defines the outbound email boundary and the providers
// behind it.
package mail

import "context"

// EmailProviderInterface sends a single message. Failures are retryable;
// the delivery queue owns the retry policy.
type EmailProviderInterface interface {
	Send(ctx context.Context, message *Message) error
}

type Message struct {
	To      string
	Subject string
	Body    string
}
