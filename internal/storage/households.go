// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/seniorhub/household-service/internal/types"
)

func (s *Storage) CreateHousehold(ctx context.Context, name string, requester types.Requester) (*types.Household, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateHousehold")
	defer span.End()

	householdID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate household ID: %w", err)
	}
	memberID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate member ID: %w", err)
	}

	tx, stmt, err := s.db.TxStatement(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.rollback(tx)

	now := time.Now()
	trimmed := strings.TrimSpace(name)

	_, err = stmt.
		Insert("households").
		Columns("id", "name", "created_by_user_id", "created_at", "updated_at").
		Values(householdID.String(), trimmed, requester.UserID, now, now).
		ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert household: %w", err)
	}

	// The creator always joins as an active caregiver.
	_, err = stmt.
		Insert("household_members").
		Columns(
			"id", "household_id", "user_id", "email", "first_name", "last_name",
			"role", "status", "joined_at", "created_at",
		).
		Values(
			memberID.String(), householdID.String(), requester.UserID,
			types.NormalizeEmail(requester.Email),
			types.NormalizeName(requester.FirstName),
			types.NormalizeName(requester.LastName),
			types.RoleCaregiver, types.MemberActive, now, now,
		).
		ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert creator membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit household creation: %w", err)
	}

	return &types.Household{
		ID:              householdID.String(),
		Name:            trimmed,
		CreatedByUserID: requester.UserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

func (s *Storage) GetHouseholdOverview(ctx context.Context, householdID string) (*types.HouseholdOverview, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetHouseholdOverview")
	defer span.End()

	var (
		h          types.Household
		members    int
		seniors    int
		caregivers int
	)

	err := s.db.Statement(ctx).
		Select(
			"h.id", "h.name", "h.created_by_user_id", "h.created_at", "h.updated_at",
			"COUNT(m.id) FILTER (WHERE m.status = 'active')::int AS members_count",
			"COUNT(m.id) FILTER (WHERE m.status = 'active' AND m.role = 'senior')::int AS seniors_count",
			"COUNT(m.id) FILTER (WHERE m.status = 'active' AND m.role = 'caregiver')::int AS caregivers_count",
		).
		From("households h").
		LeftJoin("household_members m ON m.household_id = h.id").
		Where(sq.Eq{"h.id": householdID}).
		GroupBy("h.id").
		QueryRowContext(ctx).
		Scan(&h.ID, &h.Name, &h.CreatedByUserID, &h.CreatedAt, &h.UpdatedAt, &members, &seniors, &caregivers)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get household overview: %w", err)
	}

	return &types.HouseholdOverview{
		Household:       &h,
		MembersCount:    members,
		SeniorsCount:    seniors,
		CaregiversCount: caregivers,
	}, nil
}

func (s *Storage) ListUserHouseholds(ctx context.Context, userID string) ([]*types.UserHousehold, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUserHouseholds")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(
			"m.household_id",
			"h.name AS household_name",
			"m.role AS my_role",
			"m.joined_at",
			"(SELECT COUNT(*) FROM household_members WHERE household_id = m.household_id AND status = 'active')::int AS member_count",
		).
		From("household_members m").
		Join("households h ON h.id = m.household_id").
		Where(sq.Eq{"m.user_id": userID, "m.status": types.MemberActive}).
		OrderBy("m.joined_at DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list user households: %w", err)
	}
	defer rows.Close()

	var households []*types.UserHousehold
	for rows.Next() {
		var uh types.UserHousehold
		if err := rows.Scan(&uh.HouseholdID, &uh.HouseholdName, &uh.MyRole, &uh.JoinedAt, &uh.MemberCount); err != nil {
			return nil, fmt.Errorf("failed to scan user household: %w", err)
		}
		households = append(households, &uh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating household rows: %w", err)
	}

	return households, nil
}
