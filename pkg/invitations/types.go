// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import "time"

// Candidate is one recipient of a bulk invitation request.
type Candidate struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"omitempty,max=100"`
	LastName  string `json:"lastName" validate:"omitempty,max=100"`
	Role      string `json:"role" validate:"required,oneof=senior caregiver"`
}

// Delivery statuses reported in the synchronous bulk response. "sent"
// means handed to the queue; transport outcomes are visible only through
// the delivery counters.
const (
	DeliverySent    = "sent"
	DeliverySkipped = "skipped"
	DeliveryFailed  = "failed"
)

type DeliveryResult struct {
	Email        string `json:"email"`
	Status       string `json:"status"`
	Reason       string `json:"reason,omitempty"`
	InvitationID string `json:"invitationId,omitempty"`
}

// BulkResult reports every candidate's independent outcome. Per-recipient
// failures are data here, never error returns.
type BulkResult struct {
	AcceptedCount int              `json:"acceptedCount"`
	SkippedCount  int              `json:"skippedCount"`
	FailedCount   int              `json:"failedCount"`
	Deliveries    []DeliveryResult `json:"deliveries"`
}

// ResendResult carries the rotated delivery URLs. This is the only read
// path that ever exposes a raw token.
type ResendResult struct {
	InvitationID  string    `json:"invitationId"`
	AcceptLinkURL string    `json:"acceptLinkUrl"`
	DeepLinkURL   string    `json:"deepLinkUrl"`
	FallbackURL   string    `json:"fallbackUrl,omitempty"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

// View is the sanitized invitation shape returned by read paths. Email is
// masked except when the invitation belongs to the requester.
type View struct {
	ID             string    `json:"id"`
	HouseholdID    string    `json:"householdId"`
	HouseholdName  string    `json:"householdName"`
	InviteeEmail   string    `json:"inviteeEmail"`
	AssignedRole   string    `json:"assignedRole"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	TokenExpiresAt time.Time `json:"tokenExpiresAt"`
}

// AcceptResult reports the membership granted by a redemption.
type AcceptResult struct {
	HouseholdID   string    `json:"householdId"`
	HouseholdName string    `json:"householdName"`
	MemberID      string    `json:"memberId"`
	Role          string    `json:"role"`
	JoinedAt      time.Time `json:"joinedAt"`
}
