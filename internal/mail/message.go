// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"fmt"
	"strings"

	"github.com/seniorhub/household-service/internal/types"
)

const invitationSubject = "Senior Hub household invitation"

// InvitationParams carries everything the invitation template needs.
type InvitationParams struct {
	InviteeEmail     string
	InviteeFirstName string
	HouseholdName    string
	InviterName      string
	AssignedRole     string
	AcceptLinkURL    string
	FallbackURL      string
}

func roleLabel(role string) string {
	switch role {
	case types.RoleCaregiver:
		return "Caregiver"
	case types.RoleSenior:
		return "Senior"
	default:
		return role
	}
}

// NewInvitationMessage renders the plain-text invitation email.
func NewInvitationMessage(params InvitationParams) *Message {
	greeting := strings.TrimSpace(params.InviteeFirstName)
	if greeting == "" {
		greeting = "there"
	}

	inviter := strings.TrimSpace(params.InviterName)
	if inviter == "" {
		inviter = "A Senior Hub member"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", greeting)
	fmt.Fprintf(&b, "%s has invited you to join the household %q on Senior Hub as a %s.\n\n",
		inviter, params.HouseholdName, roleLabel(params.AssignedRole))
	fmt.Fprintf(&b, "Accept the invitation:\n%s\n\n", params.AcceptLinkURL)
	if params.FallbackURL != "" {
		fmt.Fprintf(&b, "If the link above does not open, use:\n%s\n\n", params.FallbackURL)
	}
	b.WriteString("This invitation expires in 72 hours.\n\nThe Senior Hub team\n")

	return &Message{
		To:      params.InviteeEmail,
		Subject: invitationSubject,
		Body:    b.String(),
	}
}
