// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/andremelo97/simplia-paas-sub002/internal/logging"
	"github.com/andremelo97/simplia-paas-sub002/internal/monitoring"
	"github.com/andremelo97/simplia-paas-sub002/internal/tracing"
	"github.com/andremelo97/simplia-paas-sub002/internal/types"
)

const (
	defaultAlertWindowHours = 24
	defaultAlertLimit       = 50
)

// SecurityAlertsRequest scopes the repeated-failures heuristic.
type SecurityAlertsRequest struct {
	Hours     int
	Threshold int64
	Limit     uint64
}

type Service struct {
	storage        StorageInterface
	alertThreshold int64

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	alertThreshold int64,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:        storage,
		alertThreshold: alertThreshold,
		tracer:         tracer,
		monitor:        monitor,
		logger:         logger,
	}
}

// Create appends one decision record. The log is append-only; there is no
// update or delete path anywhere in the service.
func (s *Service) Create(ctx context.Context, e *types.AccessLogEntry) (*types.AccessLogEntry, error) {
	ctx, span := s.tracer.Start(ctx, "audit.Service.Create")
	defer span.End()

	if e.Decision != types.DecisionGranted && e.Decision != types.DecisionDenied {
		return nil, types.NewValidationError(fmt.Sprintf("invalid decision %q", e.Decision))
	}
	if e.Reason == "" {
		return nil, types.NewValidationError("reason is required")
	}

	created, err := s.storage.CreateAccessLogEntry(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("failed to create access log entry: %w", err)
	}

	return created, nil
}

func (s *Service) FindFiltered(ctx context.Context, f types.AccessLogFilter, p types.Pagination) ([]*types.AccessLogEntry, int64, error) {
	ctx, span := s.tracer.Start(ctx, "audit.Service.FindFiltered")
	defer span.End()

	return s.storage.ListAccessLog(ctx, f, p)
}

func (s *Service) GetSummary(ctx context.Context, f types.AccessLogFilter) (*types.AccessSummary, error) {
	ctx, span := s.tracer.Start(ctx, "audit.Service.GetSummary")
	defer span.End()

	return s.storage.GetAccessSummary(ctx, f)
}

func (s *Service) GetOverview(ctx context.Context, f types.AccessLogFilter) (*types.AccessOverview, error) {
	ctx, span := s.tracer.Start(ctx, "audit.Service.GetOverview")
	defer span.End()

	return s.storage.GetAccessOverview(ctx, f)
}

func (s *Service) GetByApplication(ctx context.Context, f types.AccessLogFilter) ([]*types.AppDecisionCount, error) {
	ctx, span := s.tracer.Start(ctx, "audit.Service.GetByApplication")
	defer span.End()

	return s.storage.CountByApplication(ctx, f)
}

func (s *Service) GetByTenant(ctx context.Context, f types.AccessLogFilter) ([]*types.TenantDecisionCount, error) {
	ctx, span := s.tracer.Start(ctx, "audit.Service.GetByTenant")
	defer span.End()

	return s.storage.CountByTenant(ctx, f)
}

func (s *Service) GetTimeline(ctx context.Context, f types.AccessLogFilter, bucket string) ([]*types.TimelineBucket, error) {
	ctx, span := s.tracer.Start(ctx, "audit.Service.GetTimeline")
	defer span.End()

	if bucket != "hour" && bucket != "day" {
		return nil, types.NewValidationError(fmt.Sprintf("invalid timeline bucket %q", bucket))
	}

	return s.storage.GetTimeline(ctx, f, bucket)
}

func (s *Service) GetTopDenialReasons(ctx context.Context, f types.AccessLogFilter, limit uint64) ([]*types.DenialReasonCount, error) {
	ctx, span := s.tracer.Start(ctx, "audit.Service.GetTopDenialReasons")
	defer span.End()

	if limit == 0 {
		limit = 10
	}

	return s.storage.TopDenialReasons(ctx, f, limit)
}

// GetSecurityAlerts surfaces (user, IP) pairs with repeated denials in the
// trailing window. Each alert is mirrored to the security log so it lands in
// downstream analytics even when nobody polls this endpoint.
func (s *Service) GetSecurityAlerts(ctx context.Context, req SecurityAlertsRequest) ([]*types.SecurityAlert, error) {
	ctx, span := s.tracer.Start(ctx, "audit.Service.GetSecurityAlerts")
	defer span.End()

	if req.Hours <= 0 {
		req.Hours = defaultAlertWindowHours
	}
	if req.Threshold <= 0 {
		req.Threshold = s.alertThreshold
	}
	if req.Limit == 0 {
		req.Limit = defaultAlertLimit
	}

	since := time.Now().Add(-time.Duration(req.Hours) * time.Hour)

	alerts, err := s.storage.FindRepeatedDenials(ctx, since, req.Threshold, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find repeated denials: %w", err)
	}

	for _, a := range alerts {
		s.logger.Security().RepeatedFailures(a.UserID, a.IPAddress, int(a.Failures))
	}

	return alerts, nil
}
