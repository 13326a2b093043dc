// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/seniorhub/household-service/internal/logging"
	"github.com/seniorhub/household-service/internal/types"
)

// failureDomain lets development builds exercise the retry and
// dead-letter paths without a real provider outage.
const failureDomain = "@fail.test"

// ConsoleProvider logs messages instead of sending them. Used by the
// in-memory persistence profile and tests.
type ConsoleProvider struct {
	logger logging.LoggerInterface
}

func NewConsoleProvider(logger logging.LoggerInterface) *ConsoleProvider {
	return &ConsoleProvider{logger: logger}
}

func (p *ConsoleProvider) Send(_ context.Context, message *Message) error {
	if strings.HasSuffix(strings.ToLower(message.To), failureDomain) {
		return fmt.Errorf("console provider: simulated delivery failure for %s", types.MaskEmail(message.To))
	}

	p.logger.Infof("email delivered to console to=%s subject=%q", types.MaskEmail(message.To), message.Subject)
	p.logger.Debugf("email body:\n%s", message.Body)

	return nil
}
