// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/seniorhub/household-service/internal/delivery"
	"github.com/seniorhub/household-service/internal/logging"
	"github.com/seniorhub/household-service/internal/monitoring"
	"github.com/seniorhub/household-service/internal/storage"
	"github.com/seniorhub/household-service/internal/tracing"
	"github.com/seniorhub/household-service/internal/types"
)

const (
	maxBatchSize = 50

	// One reason for every ineligible recipient. Distinguishing "already a
	// member" from other conflicts would leak household composition to the
	// caller.
	ineligibleReason = "unable to invite this recipient"
)

type Service struct {
	storage StorageInterface
	codec   TokenCodecInterface
	limiter LimiterInterface
	queue   QueueInterface
	links   *LinkBuilder
	ttl     time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	codec TokenCodecInterface,
	limiter LimiterInterface,
	queue QueueInterface,
	links *LinkBuilder,
	ttl time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		codec:   codec,
		limiter: limiter,
		queue:   queue,
		links:   links,
		ttl:     ttl,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// requireActiveCaregiver gates the caregiver-only operations.
func (s *Service) requireActiveCaregiver(ctx context.Context, userID, householdID string) error {
	member, err := s.storage.FindActiveMember(ctx, userID, householdID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return NewAuthorizationError("requester is not an active caregiver of this household")
		}
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if member.Role != types.RoleCaregiver {
		return NewAuthorizationError("requester is not an active caregiver of this household")
	}
	return nil
}

func (s *Service) CreateBulk(ctx context.Context, householdID string, requester types.Requester, candidates []Candidate) (*BulkResult, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.CreateBulk")
	defer span.End()

	if len(candidates) == 0 || len(candidates) > maxBatchSize {
		return nil, NewValidationError(fmt.Sprintf("batch size must be between 1 and %d", maxBatchSize))
	}

	if !s.limiter.Allow(requester.UserID) {
		return nil, NewRateLimitedError("invitation rate limit exceeded, try again later")
	}

	if err := s.requireActiveCaregiver(ctx, requester.UserID, householdID); err != nil {
		return nil, err
	}

	overview, err := s.storage.GetHouseholdOverview(ctx, householdID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, NewNotFoundError("household not found")
		}
		return nil, fmt.Errorf("failed to load household: %w", err)
	}
	householdName := overview.Household.Name

	now := time.Now()
	inviterName := joinName(requester.FirstName, requester.LastName)

	result := &BulkResult{Deliveries: make([]DeliveryResult, 0, len(candidates))}
	var jobs []*delivery.Job

	// Each candidate is an independent attempt. Nothing rolls back.
	for _, candidate := range candidates {
		email := types.NormalizeEmail(candidate.Email)

		invitationID, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate invitation ID: %w", err)
		}

		token, err := s.codec.Sign(invitationID.String())
		if err != nil {
			return nil, fmt.Errorf("failed to sign invitation token: %w", err)
		}

		invitation := &types.Invitation{
			ID:               invitationID.String(),
			HouseholdID:      householdID,
			InviterUserID:    requester.UserID,
			InviteeEmail:     email,
			InviteeFirstName: types.NormalizeName(candidate.FirstName),
			InviteeLastName:  types.NormalizeName(candidate.LastName),
			AssignedRole:     candidate.Role,
			TokenHash:        s.codec.Hash(token),
			TokenExpiresAt:   now.Add(s.ttl),
			Status:           types.InvitationPending,
			CreatedAt:        now,
		}

		outcome, err := s.storage.CreateInvitationIfAbsent(ctx, invitation)
		if err != nil {
			return nil, fmt.Errorf("failed to create invitation: %w", err)
		}

		switch outcome {
		case storage.OutcomeDuplicate:
			result.SkippedCount++
			result.Deliveries = append(result.Deliveries, DeliveryResult{
				Email:  email,
				Status: DeliverySkipped,
				Reason: "a pending invitation already exists",
			})
		case storage.OutcomeMemberConflict:
			result.FailedCount++
			result.Deliveries = append(result.Deliveries, DeliveryResult{
				Email:  email,
				Status: DeliveryFailed,
				Reason: ineligibleReason,
			})
		case storage.OutcomeCreated:
			result.AcceptedCount++
			result.Deliveries = append(result.Deliveries, DeliveryResult{
				Email:        email,
				Status:       DeliverySent,
				InvitationID: invitation.ID,
			})
			jobs = append(jobs, &delivery.Job{
				InvitationID:     invitation.ID,
				InviteeEmail:     email,
				InviteeFirstName: invitation.InviteeFirstName,
				HouseholdName:    householdName,
				InviterName:      inviterName,
				AssignedRole:     invitation.AssignedRole,
				AcceptLinkURL:    s.links.AcceptLink(token),
				FallbackURL:      s.links.FallbackLink(token),
			})
		}
	}

	if len(jobs) > 0 {
		s.queue.EnqueueBulk(jobs)
	}

	s.recordAudit(ctx, &types.AuditEvent{
		HouseholdID: householdID,
		ActorUserID: requester.UserID,
		Action:      "invitations.bulk_create",
		Metadata: map[string]string{
			"accepted": fmt.Sprintf("%d", result.AcceptedCount),
			"skipped":  fmt.Sprintf("%d", result.SkippedCount),
			"failed":   fmt.Sprintf("%d", result.FailedCount),
		},
	})

	return result, nil
}

// resolveForAccept applies the identifier precedence: token, then
// invitation id, then the most recent pending invitation for the
// requester's email.
func (s *Service) resolveForAccept(ctx context.Context, requester types.Requester, token, invitationID string) (*types.Invitation, error) {
	switch {
	case token != "":
		if !s.codec.Verify(token) {
			return nil, NewNotFoundError("invitation not found")
		}
		invitation, err := s.storage.GetInvitationByTokenHash(ctx, s.codec.Hash(token))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, NewNotFoundError("invitation not found")
			}
			return nil, fmt.Errorf("failed to look up invitation: %w", err)
		}
		return invitation, nil
	case invitationID != "":
		invitation, err := s.storage.GetInvitationByID(ctx, invitationID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, NewNotFoundError("invitation not found")
			}
			return nil, fmt.Errorf("failed to look up invitation: %w", err)
		}
		return invitation, nil
	default:
		invitation, err := s.storage.FindLatestPendingByEmail(ctx, requester.Email)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, NewNotFoundError("no pending invitation for this account")
			}
			return nil, fmt.Errorf("failed to look up invitation: %w", err)
		}
		return invitation, nil
	}
}

func (s *Service) Accept(ctx context.Context, requester types.Requester, token, invitationID string) (*AcceptResult, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Accept")
	defer span.End()

	invitation, err := s.resolveForAccept(ctx, requester, token, invitationID)
	if err != nil {
		return nil, err
	}

	if invitation.InviteeEmail != requester.Email {
		return nil, NewAuthorizationError("invitation was issued to a different account")
	}
	if invitation.Status != types.InvitationPending {
		return nil, NewConflictError("invitation is no longer pending")
	}

	now := time.Now()
	if !invitation.TokenExpiresAt.After(now) {
		// The failure path still flips the row so later reads see expired.
		if err := s.storage.TransitionToExpired(ctx, invitation.ID); err != nil && !errors.Is(err, storage.ErrAlreadyTerminal) {
			s.logger.Errorf("failed to expire invitation %s: %v", invitation.ID, err)
		}
		return nil, NewExpiredError("invitation has expired")
	}

	if err := s.storage.TransitionToAccepted(ctx, invitation.ID, now); err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyTerminal):
			return nil, NewConflictError("invitation is no longer pending")
		case errors.Is(err, storage.ErrNotFound):
			return nil, NewNotFoundError("invitation not found")
		default:
			return nil, fmt.Errorf("failed to accept invitation: %w", err)
		}
	}

	member, err := s.storage.UpsertActiveMember(ctx, invitation.HouseholdID, requester, invitation.AssignedRole, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	s.recordAudit(ctx, &types.AuditEvent{
		HouseholdID: invitation.HouseholdID,
		ActorUserID: requester.UserID,
		Action:      "invitations.accept",
		TargetID:    invitation.ID,
	})

	return &AcceptResult{
		HouseholdID:   invitation.HouseholdID,
		HouseholdName: invitation.HouseholdName,
		MemberID:      member.ID,
		Role:          member.Role,
		JoinedAt:      member.JoinedAt,
	}, nil
}

// AutoAcceptPending redeems every pending invitation for the requester's
// email, tolerating individual failures.
func (s *Service) AutoAcceptPending(ctx context.Context, requester types.Requester) ([]*AcceptResult, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.AutoAcceptPending")
	defer span.End()

	pending, err := s.storage.ListPendingInvitationsByEmail(ctx, requester.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending invitations: %w", err)
	}

	accepted := make([]*AcceptResult, 0, len(pending))
	for _, invitation := range pending {
		result, err := s.Accept(ctx, requester, "", invitation.ID)
		if err != nil {
			s.logger.Warnf("auto-accept skipped invitation %s: %v", invitation.ID, err)
			continue
		}
		accepted = append(accepted, result)
	}

	return accepted, nil
}

func (s *Service) Cancel(ctx context.Context, householdID, invitationID string, requester types.Requester) error {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Cancel")
	defer span.End()

	if err := s.requireActiveCaregiver(ctx, requester.UserID, householdID); err != nil {
		return err
	}

	invitation, err := s.storage.GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return NewNotFoundError("invitation not found")
		}
		return fmt.Errorf("failed to look up invitation: %w", err)
	}
	if invitation.HouseholdID != householdID {
		return NewNotFoundError("invitation not found")
	}

	if err := s.storage.TransitionToCancelled(ctx, invitationID); err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyTerminal):
			return NewConflictError("invitation is no longer pending")
		case errors.Is(err, storage.ErrNotFound):
			return NewNotFoundError("invitation not found")
		default:
			return fmt.Errorf("failed to cancel invitation: %w", err)
		}
	}

	s.recordAudit(ctx, &types.AuditEvent{
		HouseholdID: householdID,
		ActorUserID: requester.UserID,
		Action:      "invitations.cancel",
		TargetID:    invitationID,
	})

	return nil
}

func (s *Service) Resend(ctx context.Context, householdID, invitationID string, requester types.Requester) (*ResendResult, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Resend")
	defer span.End()

	if err := s.requireActiveCaregiver(ctx, requester.UserID, householdID); err != nil {
		return nil, err
	}

	invitation, err := s.storage.GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, NewNotFoundError("invitation not found")
		}
		return nil, fmt.Errorf("failed to look up invitation: %w", err)
	}
	if invitation.HouseholdID != householdID {
		return nil, NewNotFoundError("invitation not found")
	}

	token, err := s.codec.Sign(invitationID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign invitation token: %w", err)
	}

	newExpiry := time.Now().Add(s.ttl)
	if err := s.storage.RotateInvitationToken(ctx, invitationID, s.codec.Hash(token), newExpiry); err != nil {
		switch {
		case errors.Is(err, storage.ErrTokenExpired):
			return nil, NewConflictError("invitation token has expired, cancel it and invite again")
		case errors.Is(err, storage.ErrAlreadyTerminal):
			return nil, NewConflictError("invitation is no longer pending")
		case errors.Is(err, storage.ErrNotFound):
			return nil, NewNotFoundError("invitation not found")
		default:
			return nil, fmt.Errorf("failed to rotate invitation token: %w", err)
		}
	}

	s.queue.EnqueueBulk([]*delivery.Job{{
		InvitationID:     invitation.ID,
		InviteeEmail:     invitation.InviteeEmail,
		InviteeFirstName: invitation.InviteeFirstName,
		HouseholdName:    invitation.HouseholdName,
		InviterName:      joinName(requester.FirstName, requester.LastName),
		AssignedRole:     invitation.AssignedRole,
		AcceptLinkURL:    s.links.AcceptLink(token),
		FallbackURL:      s.links.FallbackLink(token),
	}})

	s.recordAudit(ctx, &types.AuditEvent{
		HouseholdID: householdID,
		ActorUserID: requester.UserID,
		Action:      "invitations.resend",
		TargetID:    invitationID,
	})

	return &ResendResult{
		InvitationID:  invitationID,
		AcceptLinkURL: s.links.AcceptLink(token),
		DeepLinkURL:   s.links.DeepLink(token),
		FallbackURL:   s.links.FallbackLink(token),
		ExpiresAt:     newExpiry,
	}, nil
}

// ResolveByToken is the public pre-redemption lookup used by the invite
// landing page. Anything not redeemable reads as not found.
func (s *Service) ResolveByToken(ctx context.Context, token string) (*View, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.ResolveByToken")
	defer span.End()

	if token == "" || !s.codec.Verify(token) {
		return nil, NewNotFoundError("invitation not found")
	}

	invitation, err := s.storage.GetInvitationByTokenHash(ctx, s.codec.Hash(token))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, NewNotFoundError("invitation not found")
		}
		return nil, fmt.Errorf("failed to look up invitation: %w", err)
	}

	if invitation.Status != types.InvitationPending {
		return nil, NewNotFoundError("invitation not found")
	}
	if !invitation.TokenExpiresAt.After(time.Now()) {
		if err := s.storage.TransitionToExpired(ctx, invitation.ID); err != nil && !errors.Is(err, storage.ErrAlreadyTerminal) {
			s.logger.Errorf("failed to expire invitation %s: %v", invitation.ID, err)
		}
		return nil, NewNotFoundError("invitation not found")
	}

	return newView(invitation, true), nil
}

func (s *Service) ListPendingForRequester(ctx context.Context, requester types.Requester) ([]*View, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.ListPendingForRequester")
	defer span.End()

	pending, err := s.storage.ListPendingInvitationsByEmail(ctx, requester.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending invitations: %w", err)
	}

	views := make([]*View, len(pending))
	for i, invitation := range pending {
		// The requester owns these invitations, no masking needed.
		views[i] = newView(invitation, false)
	}
	return views, nil
}

func (s *Service) ListByHousehold(ctx context.Context, householdID string, requester types.Requester) ([]*View, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.ListByHousehold")
	defer span.End()

	if err := s.requireActiveCaregiver(ctx, requester.UserID, householdID); err != nil {
		return nil, err
	}

	invitations, err := s.storage.ListInvitationsByHousehold(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list household invitations: %w", err)
	}

	views := make([]*View, len(invitations))
	for i, invitation := range invitations {
		views[i] = newView(invitation, true)
	}
	return views, nil
}

func (s *Service) recordAudit(ctx context.Context, event *types.AuditEvent) {
	if err := s.storage.RecordAuditEvent(ctx, event); err != nil {
		s.logger.Errorf("failed to record audit event %s: %v", event.Action, err)
	}
}

func newView(invitation *types.Invitation, maskEmail bool) *View {
	email := invitation.InviteeEmail
	if maskEmail {
		email = types.MaskEmail(email)
	}
	return &View{
		ID:             invitation.ID,
		HouseholdID:    invitation.HouseholdID,
		HouseholdName:  invitation.HouseholdName,
		InviteeEmail:   email,
		AssignedRole:   invitation.AssignedRole,
		Status:         invitation.Status,
		CreatedAt:      invitation.CreatedAt,
		TokenExpiresAt: invitation.TokenExpiresAt,
	}
}

func joinName(first, last string) string {
	switch {
	case first == "" && last == "":
		return ""
	case last == "":
		return first
	case first == "":
		return last
	default:
		return first + " " + last
	}
}
