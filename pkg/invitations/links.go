// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"net/url"
	"strings"
)

const deepLinkScheme = "seniorhub://invite"

// LinkBuilder renders the three delivery URLs for a raw invitation token.
type LinkBuilder struct {
	publicBaseURL  string
	webFallbackURL string
}

func NewLinkBuilder(publicBaseURL, webFallbackURL string) *LinkBuilder {
	return &LinkBuilder{
		publicBaseURL:  strings.TrimRight(publicBaseURL, "/"),
		webFallbackURL: webFallbackURL,
	}
}

// DeepLink opens the mobile app directly.
func (b *LinkBuilder) DeepLink(token string) string {
	return deepLinkScheme + "?type=household-invite&token=" + url.QueryEscape(token)
}

// AcceptLink is the emailed smart redirect endpoint.
func (b *LinkBuilder) AcceptLink(token string) string {
	return b.publicBaseURL + "/v1/invitations/accept-link?token=" + url.QueryEscape(token)
}

// FallbackLink is the web landing page for clients without the app.
// Empty when no fallback URL is configured.
func (b *LinkBuilder) FallbackLink(token string) string {
	if b.webFallbackURL == "" {
		return ""
	}

	separator := "?"
	if strings.Contains(b.webFallbackURL, "?") {
		separator = "&"
	}
	return b.webFallbackURL + separator + "type=household-invite&token=" + url.QueryEscape(token)
}
