// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/seniorhub/household-service/internal/logging"
	"github.com/seniorhub/household-service/internal/types"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendProvider sends through the Resend HTTP API.
type ResendProvider struct {
	apiKey   string
	from     string
	endpoint string
	client   *http.Client
	logger   logging.LoggerInterface
}

func NewResendProvider(apiKey, from string, logger logging.LoggerInterface) *ResendProvider {
	return &ResendProvider{
		apiKey:   apiKey,
		from:     from,
		endpoint: resendEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

func (p *ResendProvider) Send(ctx context.Context, message *Message) error {
	payload, err := json.Marshal(resendRequest{
		From:    p.from,
		To:      []string{message.To},
		Subject: message.Subject,
		Text:    message.Body,
	})
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("email provider returned status %d: %s", resp.StatusCode, body)
	}

	p.logger.Infof("email sent to=%s", types.MaskEmail(message.To))
	return nil
}
