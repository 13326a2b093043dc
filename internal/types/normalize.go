// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"strings"
)

// NormalizeEmail trims and lower-cases an address; invitations are keyed on
// the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// MaskEmail redacts the local part for read paths and audit metadata,
// "dina@example.com" becomes "d***@example.com".
func MaskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 1 {
		return email
	}
	return email[:1] + "***" + email[at:]
}
