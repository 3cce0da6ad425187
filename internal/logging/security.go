// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits the structured events consumed by security analytics.
// Events carry a stable "event" field so downstream filters don't parse messages.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "system_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "system_shutdown"))
}

func (s *SecurityLogger) AccessGranted(userID, tenantID int64, appSlug, source string) {
	s.l.Info("access granted",
		zap.String("event", "access_granted"),
		zap.Int64("user_id", userID),
		zap.Int64("tenant_id", tenantID),
		zap.String("application", appSlug),
		zap.String("source", source),
	)
}

func (s *SecurityLogger) AccessDenied(userID, tenantID int64, appSlug, reason string) {
	s.l.Warn("access denied",
		zap.String("event", "access_denied"),
		zap.Int64("user_id", userID),
		zap.Int64("tenant_id", tenantID),
		zap.String("application", appSlug),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) RepeatedFailures(userID int64, ip string, count int) {
	s.l.Warn("repeated authorization failures",
		zap.String("event", "repeated_failures"),
		zap.Int64("user_id", userID),
		zap.String("ip", ip),
		zap.Int("count", count),
	)
}
