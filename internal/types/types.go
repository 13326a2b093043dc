// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Household roles assignable through invitations.
const (
	RoleSenior    = "senior"
	RoleCaregiver = "caregiver"
)

// Invitation lifecycle states. Every state other than pending is terminal.
const (
	InvitationPending   = "pending"
	InvitationAccepted  = "accepted"
	InvitationExpired   = "expired"
	InvitationCancelled = "cancelled"
)

// Membership states.
const (
	MemberActive  = "active"
	MemberPending = "pending"
)

type Household struct {
	ID              string    `db:"id"`
	Name            string    `db:"name"`
	CreatedByUserID string    `db:"created_by_user_id"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type HouseholdOverview struct {
	Household       *Household
	MembersCount    int
	SeniorsCount    int
	CaregiversCount int
}

type Member struct {
	ID          string    `db:"id"`
	HouseholdID string    `db:"household_id"`
	UserID      string    `db:"user_id"`
	Email       string    `db:"email"`
	FirstName   string    `db:"first_name"`
	LastName    string    `db:"last_name"`
	Role        string    `db:"role"`
	Status      string    `db:"status"`
	JoinedAt    time.Time `db:"joined_at"`
	CreatedAt   time.Time `db:"created_at"`
}

type Invitation struct {
	ID               string     `db:"id"`
	HouseholdID      string     `db:"household_id"`
	HouseholdName    string     `db:"household_name"`
	InviterUserID    string     `db:"inviter_user_id"`
	InviteeEmail     string     `db:"invitee_email"`
	InviteeFirstName string     `db:"invitee_first_name"`
	InviteeLastName  string     `db:"invitee_last_name"`
	AssignedRole     string     `db:"assigned_role"`
	TokenHash        string     `db:"token_hash"`
	TokenExpiresAt   time.Time  `db:"token_expires_at"`
	Status           string     `db:"status"`
	CreatedAt        time.Time  `db:"created_at"`
	AcceptedAt       *time.Time `db:"accepted_at"`
}

// UserHousehold is the membership view returned when listing the households
// a user belongs to.
type UserHousehold struct {
	HouseholdID   string
	HouseholdName string
	MyRole        string
	JoinedAt      time.Time
	MemberCount   int
}

// Requester is the authenticated identity attached to each request by the
// identity middleware. Email is normalized before any comparison.
type Requester struct {
	UserID    string
	Email     string
	FirstName string
	LastName  string
}

type AuditEvent struct {
	HouseholdID string
	ActorUserID string
	Action      string
	TargetID    string
	Metadata    map[string]string
}
