// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"

	"github.com/seniorhub/household-service/internal/db"
	"github.com/seniorhub/household-service/internal/logging"
	"github.com/seniorhub/household-service/internal/monitoring"
	"github.com/seniorhub/household-service/internal/tracing"
	"github.com/seniorhub/household-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

// Storage is the Postgres-backed implementation. Mutating invitation
// operations run inside a transaction that takes a SELECT ... FOR UPDATE row
// lock before reading decision-relevant state, so concurrent transitions on
// one invitation serialize on the row and exactly one writer wins.
type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) rollback(tx db.TxInterface) {
	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		s.logger.Errorf("failed to rollback transaction: %v", err)
	}
}

func scanMember(row interface{ Scan(...any) error }) (*types.Member, error) {
	var m types.Member
	err := row.Scan(
		&m.ID, &m.HouseholdID, &m.UserID, &m.Email, &m.FirstName, &m.LastName,
		&m.Role, &m.Status, &m.JoinedAt, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanInvitation(row interface{ Scan(...any) error }) (*types.Invitation, error) {
	var (
		inv        types.Invitation
		acceptedAt sql.NullTime
	)
	err := row.Scan(
		&inv.ID, &inv.HouseholdID, &inv.HouseholdName, &inv.InviterUserID,
		&inv.InviteeEmail, &inv.InviteeFirstName, &inv.InviteeLastName,
		&inv.AssignedRole, &inv.TokenHash, &inv.TokenExpiresAt, &inv.Status,
		&inv.CreatedAt, &acceptedAt,
	)
	if err != nil {
		return nil, err
	}
	if acceptedAt.Valid {
		inv.AcceptedAt = &acceptedAt.Time
	}
	return &inv, nil
}

var invitationColumns = []string{
	"i.id", "i.household_id", "h.name AS household_name", "i.inviter_user_id",
	"i.invitee_email", "i.invitee_first_name", "i.invitee_last_name",
	"i.assigned_role", "i.token_hash", "i.token_expires_at", "i.status",
	"i.created_at", "i.accepted_at",
}

var memberColumns = []string{
	"id", "household_id", "user_id", "email", "first_name", "last_name",
	"role", "status", "joined_at", "created_at",
}
