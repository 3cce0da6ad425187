// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"
	"time"

	"github.com/andremelo97/simplia-paas-sub002/internal/types"
)

type ServiceInterface interface {
	Create(ctx context.Context, e *types.AccessLogEntry) (*types.AccessLogEntry, error)
	FindFiltered(ctx context.Context, f types.AccessLogFilter, p types.Pagination) ([]*types.AccessLogEntry, int64, error)
	GetSummary(ctx context.Context, f types.AccessLogFilter) (*types.AccessSummary, error)
	GetOverview(ctx context.Context, f types.AccessLogFilter) (*types.AccessOverview, error)
	GetByApplication(ctx context.Context, f types.AccessLogFilter) ([]*types.AppDecisionCount, error)
	GetByTenant(ctx context.Context, f types.AccessLogFilter) ([]*types.TenantDecisionCount, error)
	GetTimeline(ctx context.Context, f types.AccessLogFilter, bucket string) ([]*types.TimelineBucket, error)
	GetTopDenialReasons(ctx context.Context, f types.AccessLogFilter, limit uint64) ([]*types.DenialReasonCount, error)
	GetSecurityAlerts(ctx context.Context, req SecurityAlertsRequest) ([]*types.SecurityAlert, error)
}

type StorageInterface interface {
	CreateAccessLogEntry(ctx context.Context, e *types.AccessLogEntry) (*types.AccessLogEntry, error)
	ListAccessLog(ctx context.Context, f types.AccessLogFilter, p types.Pagination) ([]*types.AccessLogEntry, int64, error)
	GetAccessSummary(ctx context.Context, f types.AccessLogFilter) (*types.AccessSummary, error)
	GetAccessOverview(ctx context.Context, f types.AccessLogFilter) (*types.AccessOverview, error)
	CountByApplication(ctx context.Context, f types.AccessLogFilter) ([]*types.AppDecisionCount, error)
	CountByTenant(ctx context.Context, f types.AccessLogFilter) ([]*types.TenantDecisionCount, error)
	GetTimeline(ctx context.Context, f types.AccessLogFilter, bucket string) ([]*types.TimelineBucket, error)
	TopDenialReasons(ctx context.Context, f types.AccessLogFilter, limit uint64) ([]*types.DenialReasonCount, error)
	FindRepeatedDenials(ctx context.Context, since time.Time, threshold int64, limit uint64) ([]*types.SecurityAlert, error)
}
