// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/seniorhub/household-service/internal/types"
)

func (s *Storage) CreateInvitationIfAbsent(ctx context.Context, inv *types.Invitation) (CreateOutcome, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitationIfAbsent")
	defer span.End()

	tx, stmt, err := s.db.TxStatement(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.rollback(tx)

	// Lock any existing pending row for the same key so a concurrent
	// cancel/accept cannot slip between the check and the insert.
	var existingID string
	err = stmt.
		Select("id").
		From("household_invitations").
		Where(sq.Eq{
			"household_id":  inv.HouseholdID,
			"invitee_email": inv.InviteeEmail,
			"assigned_role": inv.AssignedRole,
			"status":        types.InvitationPending,
		}).
		Limit(1).
		Suffix("FOR UPDATE").
		QueryRowContext(ctx).
		Scan(&existingID)

	if err == nil {
		return OutcomeDuplicate, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to check for duplicate invitation: %w", err)
	}

	var memberID string
	err = stmt.
		Select("id").
		From("household_members").
		Where(sq.Eq{
			"household_id": inv.HouseholdID,
			"email":        inv.InviteeEmail,
			"status":       types.MemberActive,
		}).
		Limit(1).
		QueryRowContext(ctx).
		Scan(&memberID)

	if err == nil {
		return OutcomeMemberConflict, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to check for active membership: %w", err)
	}

	_, err = stmt.
		Insert("household_invitations").
		Columns(
			"id", "household_id", "inviter_user_id", "invitee_email",
			"invitee_first_name", "invitee_last_name", "assigned_role",
			"token_hash", "token_expires_at", "status", "created_at",
		).
		Values(
			inv.ID, inv.HouseholdID, inv.InviterUserID, inv.InviteeEmail,
			inv.InviteeFirstName, inv.InviteeLastName, inv.AssignedRole,
			inv.TokenHash, inv.TokenExpiresAt, types.InvitationPending, inv.CreatedAt,
		).
		ExecContext(ctx)

	if err != nil {
		// The partial unique index backstops the duplicate check against
		// creators racing on a key that had no row to lock.
		if IsDuplicateKeyError(err) {
			return OutcomeDuplicate, nil
		}
		if IsForeignKeyViolation(err) {
			return 0, ErrForeignKeyViolation
		}
		return 0, fmt.Errorf("failed to insert invitation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit invitation creation: %w", err)
	}

	return OutcomeCreated, nil
}

func (s *Storage) GetInvitationByTokenHash(ctx context.Context, hash string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByTokenHash")
	defer span.End()

	return s.getInvitation(ctx, sq.Eq{"i.token_hash": hash})
}

func (s *Storage) GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByID")
	defer span.End()

	return s.getInvitation(ctx, sq.Eq{"i.id": id})
}

func (s *Storage) getInvitation(ctx context.Context, pred sq.Eq) (*types.Invitation, error) {
	row := s.db.Statement(ctx).
		Select(invitationColumns...).
		From("household_invitations i").
		Join("households h ON h.id = i.household_id").
		Where(pred).
		Limit(1).
		QueryRowContext(ctx)

	inv, err := scanInvitation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return inv, nil
}

func (s *Storage) FindLatestPendingByEmail(ctx context.Context, email string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindLatestPendingByEmail")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(invitationColumns...).
		From("household_invitations i").
		Join("households h ON h.id = i.household_id").
		Where(sq.Eq{"i.invitee_email": email, "i.status": types.InvitationPending}).
		OrderBy("i.created_at DESC").
		Limit(1).
		QueryRowContext(ctx)

	inv, err := scanInvitation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find pending invitation: %w", err)
	}

	return inv, nil
}

func (s *Storage) ListPendingInvitationsByEmail(ctx context.Context, email string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPendingInvitationsByEmail")
	defer span.End()

	if err := s.expireLapsed(ctx, sq.Eq{"invitee_email": email}); err != nil {
		return nil, err
	}

	return s.listInvitations(ctx, sq.Eq{"i.invitee_email": email, "i.status": types.InvitationPending})
}

func (s *Storage) ListInvitationsByHousehold(ctx context.Context, householdID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitationsByHousehold")
	defer span.End()

	if err := s.expireLapsed(ctx, sq.Eq{"household_id": householdID}); err != nil {
		return nil, err
	}

	return s.listInvitations(ctx, sq.Eq{"i.household_id": householdID})
}

// expireLapsed flips pending rows whose window has passed. Expiry is detected
// on read, there is no background sweeper.
func (s *Storage) expireLapsed(ctx context.Context, scope sq.Eq) error {
	_, err := s.db.Statement(ctx).
		Update("household_invitations").
		Set("status", types.InvitationExpired).
		Where(scope).
		Where(sq.Eq{"status": types.InvitationPending}).
		Where(sq.LtOrEq{"token_expires_at": time.Now()}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to expire lapsed invitations: %w", err)
	}
	return nil
}

func (s *Storage) listInvitations(ctx context.Context, pred sq.Eq) ([]*types.Invitation, error) {
	rows, err := s.db.Statement(ctx).
		Select(invitationColumns...).
		From("household_invitations i").
		Join("households h ON h.id = i.household_id").
		Where(pred).
		OrderBy("i.created_at DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []*types.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invitation rows: %w", err)
	}

	return invitations, nil
}

func (s *Storage) TransitionToAccepted(ctx context.Context, id string, acceptedAt time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.TransitionToAccepted")
	defer span.End()

	return s.transition(ctx, id, func(stmt sq.StatementBuilderType) sq.UpdateBuilder {
		return stmt.
			Update("household_invitations").
			Set("status", types.InvitationAccepted).
			Set("accepted_at", acceptedAt)
	})
}

func (s *Storage) TransitionToCancelled(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.TransitionToCancelled")
	defer span.End()

	return s.transition(ctx, id, func(stmt sq.StatementBuilderType) sq.UpdateBuilder {
		return stmt.
			Update("household_invitations").
			Set("status", types.InvitationCancelled)
	})
}

func (s *Storage) TransitionToExpired(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.TransitionToExpired")
	defer span.End()

	return s.transition(ctx, id, func(stmt sq.StatementBuilderType) sq.UpdateBuilder {
		return stmt.
			Update("household_invitations").
			Set("status", types.InvitationExpired)
	})
}

// transition implements the compare-and-set from pending to a terminal state.
// The FOR UPDATE lock serializes racing callers; the loser reads the winner's
// committed status and gets ErrAlreadyTerminal.
func (s *Storage) transition(ctx context.Context, id string, update func(sq.StatementBuilderType) sq.UpdateBuilder) error {
	tx, stmt, err := s.db.TxStatement(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.rollback(tx)

	var status string
	err = stmt.
		Select("status").
		From("household_invitations").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		QueryRowContext(ctx).
		Scan(&status)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock invitation: %w", err)
	}

	if status != types.InvitationPending {
		return ErrAlreadyTerminal
	}

	if _, err := update(stmt).Where(sq.Eq{"id": id}).ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to transition invitation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit invitation transition: %w", err)
	}

	return nil
}

func (s *Storage) RotateInvitationToken(ctx context.Context, id, newHash string, newExpiry time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.RotateInvitationToken")
	defer span.End()

	tx, stmt, err := s.db.TxStatement(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.rollback(tx)

	var (
		status    string
		expiresAt time.Time
	)
	err = stmt.
		Select("status", "token_expires_at").
		From("household_invitations").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		QueryRowContext(ctx).
		Scan(&status, &expiresAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock invitation: %w", err)
	}

	if status != types.InvitationPending {
		return ErrAlreadyTerminal
	}
	if !expiresAt.After(time.Now()) {
		return ErrTokenExpired
	}

	_, err = stmt.
		Update("household_invitations").
		Set("token_hash", newHash).
		Set("token_expires_at", newExpiry).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to rotate invitation token: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit token rotation: %w", err)
	}

	return nil
}
