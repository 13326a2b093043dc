// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")

	// ErrAlreadyTerminal is returned by compare-and-set transitions when the
	// invitation is no longer pending. Exactly one of two concurrent callers
	// racing on the same row sees it.
	ErrAlreadyTerminal = errors.New("invitation is not pending")

	// ErrTokenExpired is returned by RotateInvitationToken when the current
	// window has already lapsed; the caller must cancel and recreate.
	ErrTokenExpired = errors.New("invitation token expired")
)

// CreateOutcome reports how CreateInvitationIfAbsent resolved a candidate.
type CreateOutcome int

const (
	// OutcomeCreated means a new pending invitation row was inserted.
	OutcomeCreated CreateOutcome = iota
	// OutcomeDuplicate means a pending invitation already exists for the
	// same (household, email, role) key. Reported, not an error.
	OutcomeDuplicate
	// OutcomeMemberConflict means the recipient already holds an active
	// membership in the household.
	OutcomeMemberConflict
)

// PostgreSQL error codes
const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// IsDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeUniqueViolation
	}
	return false
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeForeignKeyViolation
	}
	return false
}
