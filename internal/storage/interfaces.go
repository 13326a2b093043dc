// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/seniorhub/household-service/internal/types"
)

// InvitationStoreInterface is the persistent collection of invitation records.
// Every mutating operation is a single atomic unit: the Postgres backing runs
// each inside a transaction holding a row lock, the in-memory backing holds a
// mutex for the whole operation. Higher layers never reconcile lost updates.
type InvitationStoreInterface interface {
	// CreateInvitationIfAbsent atomically checks for an existing pending
	// invitation with the same (household, email, role) key and for an
	// existing active membership for the email before inserting. Two
	// concurrent creators for the same key get exactly one OutcomeCreated.
	CreateInvitationIfAbsent(ctx context.Context, inv *types.Invitation) (CreateOutcome, error)
	GetInvitationByTokenHash(ctx context.Context, hash string) (*types.Invitation, error)
	GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error)
	// FindLatestPendingByEmail returns the most recently created pending
	// invitation for an email, or ErrNotFound.
	FindLatestPendingByEmail(ctx context.Context, email string) (*types.Invitation, error)
	// ListPendingInvitationsByEmail lazily flips lapsed pending rows to
	// expired as a side effect of being read.
	ListPendingInvitationsByEmail(ctx context.Context, email string) ([]*types.Invitation, error)
	// ListInvitationsByHousehold has the same lazy-expiry side effect.
	ListInvitationsByHousehold(ctx context.Context, householdID string) ([]*types.Invitation, error)
	// TransitionToAccepted is a compare-and-set from pending to accepted;
	// returns ErrAlreadyTerminal when a concurrent caller won the race.
	TransitionToAccepted(ctx context.Context, id string, acceptedAt time.Time) error
	TransitionToCancelled(ctx context.Context, id string) error
	TransitionToExpired(ctx context.Context, id string) error
	// RotateInvitationToken replaces the token hash and expiry window of a
	// pending, not-yet-expired invitation. Status is never changed.
	RotateInvitationToken(ctx context.Context, id, newHash string, newExpiry time.Time) error
}

type MembershipStoreInterface interface {
	FindActiveMember(ctx context.Context, userID, householdID string) (*types.Member, error)
	// UpsertActiveMember reactivates and re-roles an existing membership row
	// for (household, user) or inserts a brand-new active one.
	UpsertActiveMember(ctx context.Context, householdID string, profile types.Requester, role string, joinedAt time.Time) (*types.Member, error)
	ListHouseholdMembers(ctx context.Context, householdID string) ([]*types.Member, error)
	GetMemberByID(ctx context.Context, memberID, householdID string) (*types.Member, error)
	UpdateMemberRole(ctx context.Context, memberID, newRole string) (*types.Member, error)
	RemoveMember(ctx context.Context, memberID string) error
}

type HouseholdStoreInterface interface {
	CreateHousehold(ctx context.Context, name string, requester types.Requester) (*types.Household, error)
	GetHouseholdOverview(ctx context.Context, householdID string) (*types.HouseholdOverview, error)
	ListUserHouseholds(ctx context.Context, userID string) ([]*types.UserHousehold, error)
}

// AuditSinkInterface records orchestration-layer audit events, fire-and-forget.
type AuditSinkInterface interface {
	RecordAuditEvent(ctx context.Context, event *types.AuditEvent) error
}

// StorageInterface is the full storage surface used for wiring; both the
// Postgres and the in-memory backing satisfy it with identical contracts.
type StorageInterface interface {
	InvitationStoreInterface
	MembershipStoreInterface
	HouseholdStoreInterface
	AuditSinkInterface
}
