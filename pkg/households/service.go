// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package households implements household and member management. The
// invitation lifecycle lives in pkg/invitations.
package households

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/seniorhub/household-service/internal/logging"
	"github.com/seniorhub/household-service/internal/monitoring"
	"github.com/seniorhub/household-service/internal/storage"
	"github.com/seniorhub/household-service/internal/tracing"
	"github.com/seniorhub/household-service/internal/types"
	"github.com/seniorhub/household-service/pkg/invitations"
)

const maxHouseholdNameLength = 200

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) Create(ctx context.Context, name string, requester types.Requester) (*types.Household, error) {
	ctx, span := s.tracer.Start(ctx, "households.Service.Create")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxHouseholdNameLength {
		return nil, invitations.NewValidationError("household name is required and must be at most 200 characters")
	}

	household, err := s.storage.CreateHousehold(ctx, name, requester)
	if err != nil {
		return nil, fmt.Errorf("failed to create household: %w", err)
	}

	s.recordAudit(ctx, &types.AuditEvent{
		HouseholdID: household.ID,
		ActorUserID: requester.UserID,
		Action:      "households.create",
	})

	return household, nil
}

func (s *Service) ListMine(ctx context.Context, requester types.Requester) ([]*types.UserHousehold, error) {
	ctx, span := s.tracer.Start(ctx, "households.Service.ListMine")
	defer span.End()

	households, err := s.storage.ListUserHouseholds(ctx, requester.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list households: %w", err)
	}
	return households, nil
}

// requireActiveMember gates read paths: any active member may view.
func (s *Service) requireActiveMember(ctx context.Context, userID, householdID string) (*types.Member, error) {
	member, err := s.storage.FindActiveMember(ctx, userID, householdID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, invitations.NewAuthorizationError("requester is not a member of this household")
		}
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	return member, nil
}

// requireActiveCaregiver gates member mutations.
func (s *Service) requireActiveCaregiver(ctx context.Context, userID, householdID string) error {
	member, err := s.requireActiveMember(ctx, userID, householdID)
	if err != nil {
		return err
	}
	if member.Role != types.RoleCaregiver {
		return invitations.NewAuthorizationError("requester is not an active caregiver of this household")
	}
	return nil
}

func (s *Service) Overview(ctx context.Context, householdID string, requester types.Requester) (*types.HouseholdOverview, error) {
	ctx, span := s.tracer.Start(ctx, "households.Service.Overview")
	defer span.End()

	if _, err := s.requireActiveMember(ctx, requester.UserID, householdID); err != nil {
		return nil, err
	}

	overview, err := s.storage.GetHouseholdOverview(ctx, householdID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, invitations.NewNotFoundError("household not found")
		}
		return nil, fmt.Errorf("failed to load household: %w", err)
	}
	return overview, nil
}

func (s *Service) ListMembers(ctx context.Context, householdID string, requester types.Requester) ([]*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "households.Service.ListMembers")
	defer span.End()

	if _, err := s.requireActiveMember(ctx, requester.UserID, householdID); err != nil {
		return nil, err
	}

	members, err := s.storage.ListHouseholdMembers(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

func (s *Service) UpdateMemberRole(ctx context.Context, householdID, memberID, role string, requester types.Requester) (*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "households.Service.UpdateMemberRole")
	defer span.End()

	if role != types.RoleSenior && role != types.RoleCaregiver {
		return nil, invitations.NewValidationError("role must be senior or caregiver")
	}

	if err := s.requireActiveCaregiver(ctx, requester.UserID, householdID); err != nil {
		return nil, err
	}

	if _, err := s.storage.GetMemberByID(ctx, memberID, householdID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, invitations.NewNotFoundError("member not found")
		}
		return nil, fmt.Errorf("failed to look up member: %w", err)
	}

	member, err := s.storage.UpdateMemberRole(ctx, memberID, role)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, invitations.NewNotFoundError("member not found")
		}
		return nil, fmt.Errorf("failed to update member role: %w", err)
	}

	s.recordAudit(ctx, &types.AuditEvent{
		HouseholdID: householdID,
		ActorUserID: requester.UserID,
		Action:      "members.update_role",
		TargetID:    memberID,
		Metadata:    map[string]string{"role": role},
	})

	return member, nil
}

func (s *Service) RemoveMember(ctx context.Context, householdID, memberID string, requester types.Requester) error {
	ctx, span := s.tracer.Start(ctx, "households.Service.RemoveMember")
	defer span.End()

	if err := s.requireActiveCaregiver(ctx, requester.UserID, householdID); err != nil {
		return err
	}

	if _, err := s.storage.GetMemberByID(ctx, memberID, householdID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return invitations.NewNotFoundError("member not found")
		}
		return fmt.Errorf("failed to look up member: %w", err)
	}

	if err := s.storage.RemoveMember(ctx, memberID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return invitations.NewNotFoundError("member not found")
		}
		return fmt.Errorf("failed to remove member: %w", err)
	}

	s.recordAudit(ctx, &types.AuditEvent{
		HouseholdID: householdID,
		ActorUserID: requester.UserID,
		Action:      "members.remove",
		TargetID:    memberID,
	})

	return nil
}

func (s *Service) recordAudit(ctx context.Context, event *types.AuditEvent) {
	if err := s.storage.RecordAuditEvent(ctx, event); err != nil {
		s.logger.Errorf("failed to record audit event %s: %v", event.Action, err)
	}
}
