// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package token implements the invitation bearer credential format.
//
// A token is three dot-separated segments: the invitation ID, a random hex
// nonce, and a hex HMAC-SHA256 over the first two segments. The token is
// stateless and never persisted; storage keys invitations by a SHA-256 hash
// of the whole token. Verification alone never authorizes anything, the
// store lookup on the hash is always required as well.
package token

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const nonceSize = 16

type Codec struct {
	secret string
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: secret}
}

// Sign mints a fresh token for an invitation ID. The nonce exists purely so
// reissues of the same invitation produce distinct tokens; it carries no
// meaning.
func (c *Codec) Sign(invitationID string) (string, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate token nonce: %w", err)
	}

	payload := invitationID + "." + hex.EncodeToString(nonce)
	return payload + "." + c.signature(payload), nil
}

// Verify checks structural validity (exactly three non-empty segments) and
// recomputes the HMAC with a constant-time comparison. It does not decode or
// trust any claim beyond that.
func (c *Codec) Verify(tok string) bool {
	segments := strings.Split(tok, ".")
	if len(segments) != 3 {
		return false
	}

	for _, segment := range segments {
		if segment == "" {
			return false
		}
	}

	expected := c.signature(segments[0] + "." + segments[1])
	return hmac.Equal([]byte(expected), []byte(segments[2]))
}

func (c *Codec) signature(payload string) string {
	mac := hmac.New(sha256.New, []byte(c.secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// Hash returns the one-way digest persisted as the store lookup key.
func (c *Codec) Hash(tok string) string {
	return Hash(tok)
}

// Hash returns the one-way digest persisted as the store lookup key.
func Hash(tok string) string {
	sum := sha256.Sum256([]byte(tok))
	return hex.EncodeToString(sum[:])
}
