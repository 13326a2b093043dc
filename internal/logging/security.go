// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits audit-relevant security events on a fixed schema so
// they can be picked up by downstream alerting independently of application
// log levels.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("security_event", zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("security_event", zap.String("event", "sys_shutdown"))
}

func (s *SecurityLogger) AuthorizationDenied(actorID, action string) {
	s.l.Warn("security_event",
		zap.String("event", "authz_fail"),
		zap.String("actor", actorID),
		zap.String("action", action),
	)
}

func (s *SecurityLogger) RateLimitExceeded(actorID string) {
	s.l.Warn("security_event",
		zap.String("event", "rate_limited"),
		zap.String("actor", actorID),
	)
}
