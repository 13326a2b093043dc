// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package households

import (
	"context"

	"github.com/seniorhub/household-service/internal/types"
)

type ServiceInterface interface {
	Create(ctx context.Context, name string, requester types.Requester) (*types.Household, error)
	ListMine(ctx context.Context, requester types.Requester) ([]*types.UserHousehold, error)
	Overview(ctx context.Context, householdID string, requester types.Requester) (*types.HouseholdOverview, error)
	ListMembers(ctx context.Context, householdID string, requester types.Requester) ([]*types.Member, error)
	UpdateMemberRole(ctx context.Context, householdID, memberID, role string, requester types.Requester) (*types.Member, error)
	RemoveMember(ctx context.Context, householdID, memberID string, requester types.Requester) error
}

type StorageInterface interface {
	CreateHousehold(ctx context.Context, name string, requester types.Requester) (*types.Household, error)
	GetHouseholdOverview(ctx context.Context, householdID string) (*types.HouseholdOverview, error)
	ListUserHouseholds(ctx context.Context, userID string) ([]*types.UserHousehold, error)
	ListHouseholdMembers(ctx context.Context, householdID string) ([]*types.Member, error)
	GetMemberByID(ctx context.Context, memberID, householdID string) (*types.Member, error)
	UpdateMemberRole(ctx context.Context, memberID, newRole string) (*types.Member, error)
	RemoveMember(ctx context.Context, memberID string) error
	FindActiveMember(ctx context.Context, userID, householdID string) (*types.Member, error)
	RecordAuditEvent(ctx context.Context, event *types.AuditEvent) error
}
