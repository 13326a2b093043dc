// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"time"

	"github.com/seniorhub/household-service/internal/delivery"
	"github.com/seniorhub/household-service/internal/storage"
	"github.com/seniorhub/household-service/internal/types"
)

type ServiceInterface interface {
	CreateBulk(ctx context.Context, householdID string, requester types.Requester, candidates []Candidate) (*BulkResult, error)
	Accept(ctx context.Context, requester types.Requester, token, invitationID string) (*AcceptResult, error)
	AutoAcceptPending(ctx context.Context, requester types.Requester) ([]*AcceptResult, error)
	Cancel(ctx context.Context, householdID, invitationID string, requester types.Requester) error
	Resend(ctx context.Context, householdID, invitationID string, requester types.Requester) (*ResendResult, error)
	ResolveByToken(ctx context.Context, token string) (*View, error)
	ListPendingForRequester(ctx context.Context, requester types.Requester) ([]*View, error)
	ListByHousehold(ctx context.Context, householdID string, requester types.Requester) ([]*View, error)
}

type StorageInterface interface {
	CreateInvitationIfAbsent(ctx context.Context, invitation *types.Invitation) (storage.CreateOutcome, error)
	GetInvitationByTokenHash(ctx context.Context, tokenHash string) (*types.Invitation, error)
	GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error)
	FindLatestPendingByEmail(ctx context.Context, email string) (*types.Invitation, error)
	ListPendingInvitationsByEmail(ctx context.Context, email string) ([]*types.Invitation, error)
	ListInvitationsByHousehold(ctx context.Context, householdID string) ([]*types.Invitation, error)
	TransitionToAccepted(ctx context.Context, id string, acceptedAt time.Time) error
	TransitionToCancelled(ctx context.Context, id string) error
	TransitionToExpired(ctx context.Context, id string) error
	RotateInvitationToken(ctx context.Context, id, newHash string, newExpiry time.Time) error
	FindActiveMember(ctx context.Context, userID, householdID string) (*types.Member, error)
	UpsertActiveMember(ctx context.Context, householdID string, profile types.Requester, role string, joinedAt time.Time) (*types.Member, error)
	GetHouseholdOverview(ctx context.Context, householdID string) (*types.HouseholdOverview, error)
	RecordAuditEvent(ctx context.Context, event *types.AuditEvent) error
}

type TokenCodecInterface interface {
	Sign(invitationID string) (string, error)
	Verify(token string) bool
	Hash(token string) string
}

type LimiterInterface interface {
	Allow(actorID string) bool
}

type QueueInterface interface {
	EnqueueBulk(jobs []*delivery.Job)
}
