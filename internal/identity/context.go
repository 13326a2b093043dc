// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package identity attaches the authenticated requester to request
// contexts. Authentication itself happens upstream at the gateway; this
// service trusts the forwarded identity headers.
package identity

import (
	"context"

	"github.com/seniorhub/household-service/internal/types"
)

// Private key type to avoid collisions
type contextKey struct{}

var requesterContextKey = contextKey{}

// WithRequester returns a new context carrying the requester.
func WithRequester(ctx context.Context, requester types.Requester) context.Context {
	return context.WithValue(ctx, requesterContextKey, requester)
}

// GetRequester retrieves the requester from the context.
// Returns false when no identity was attached.
func GetRequester(ctx context.Context) (types.Requester, bool) {
	requester, ok := ctx.Value(requesterContextKey).(types.Requester)
	return requester, ok
}
