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
	"github.com/google/uuid"

	"github.com/seniorhub/household-service/internal/types"
)

func (s *Storage) FindActiveMember(ctx context.Context, userID, householdID string) (*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindActiveMember")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(memberColumns...).
		From("household_members").
		Where(sq.Eq{
			"user_id":      userID,
			"household_id": householdID,
			"status":       types.MemberActive,
		}).
		Limit(1).
		QueryRowContext(ctx)

	m, err := scanMember(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member: %w", err)
	}

	return m, nil
}

func (s *Storage) UpsertActiveMember(ctx context.Context, householdID string, profile types.Requester, role string, joinedAt time.Time) (*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertActiveMember")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate member ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("household_members").
		Columns(
			"id", "household_id", "user_id", "email", "first_name", "last_name",
			"role", "status", "joined_at", "created_at",
		).
		Values(
			id.String(), householdID, profile.UserID,
			types.NormalizeEmail(profile.Email),
			types.NormalizeName(profile.FirstName),
			types.NormalizeName(profile.LastName),
			role, types.MemberActive, joinedAt, joinedAt,
		).
		Suffix(`ON CONFLICT (household_id, user_id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			role = EXCLUDED.role,
			status = 'active',
			joined_at = EXCLUDED.joined_at
		RETURNING id, household_id, user_id, email, first_name, last_name, role, status, joined_at, created_at`).
		QueryRowContext(ctx)

	m, err := scanMember(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert member: %w", err)
	}

	return m, nil
}

func (s *Storage) ListHouseholdMembers(ctx context.Context, householdID string) ([]*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListHouseholdMembers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(memberColumns...).
		From("household_members").
		Where(sq.Eq{"household_id": householdID, "status": types.MemberActive}).
		OrderBy("joined_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}

	return members, nil
}

func (s *Storage) GetMemberByID(ctx context.Context, memberID, householdID string) (*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMemberByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(memberColumns...).
		From("household_members").
		Where(sq.Eq{
			"id":           memberID,
			"household_id": householdID,
			"status":       types.MemberActive,
		}).
		Limit(1).
		QueryRowContext(ctx)

	m, err := scanMember(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return m, nil
}

func (s *Storage) UpdateMemberRole(ctx context.Context, memberID, newRole string) (*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMemberRole")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("household_members").
		Set("role", newRole).
		Where(sq.Eq{"id": memberID, "status": types.MemberActive}).
		Suffix("RETURNING id, household_id, user_id, email, first_name, last_name, role, status, joined_at, created_at").
		QueryRowContext(ctx)

	m, err := scanMember(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update member role: %w", err)
	}

	return m, nil
}

func (s *Storage) RemoveMember(ctx context.Context, memberID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("household_members").
		Where(sq.Eq{"id": memberID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
