// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/andremelo97/simplia-paas-sub002/internal/db"
	"github.com/andremelo97/simplia-paas-sub002/internal/types"
)

var accessLogColumns = []string{
	"id", "user_id", "tenant_id", "application_id", "decision", "reason",
	"ip_address", "user_agent", "endpoint", "created_at",
}

// Columns callers may sort the audit listing by.
var accessLogSortable = map[string]string{
	"created_at": "created_at",
	"decision":   "decision",
	"user_id":    "user_id",
	"tenant_id":  "tenant_id",
}

func accessLogWhere(q sq.SelectBuilder, f types.AccessLogFilter) sq.SelectBuilder {
	if f.TenantID != nil {
		q = q.Where(sq.Eq{"tenant_id": *f.TenantID})
	}
	if f.UserID != nil {
		q = q.Where(sq.Eq{"user_id": *f.UserID})
	}
	if f.ApplicationID != nil {
		q = q.Where(sq.Eq{"application_id": *f.ApplicationID})
	}
	if f.Decision != "" {
		q = q.Where(sq.Eq{"decision": f.Decision})
	}
	if f.IPAddress != "" {
		q = q.Where(sq.Eq{"ip_address": f.IPAddress})
	}
	if f.From != nil {
		q = q.Where(sq.GtOrEq{"created_at": *f.From})
	}
	if f.To != nil {
		q = q.Where(sq.Lt{"created_at": *f.To})
	}
	return q
}

// CreateAccessLogEntry appends one immutable decision record. There is no
// update or delete path for access_log rows.
func (s *Storage) CreateAccessLogEntry(ctx context.Context, e *types.AccessLogEntry) (*types.AccessLogEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAccessLogEntry")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate access log ID: %w", err)
	}

	var created types.AccessLogEntry
	err = s.db.Statement(ctx).
		Insert("access_log").
		Columns("id", "user_id", "tenant_id", "application_id", "decision",
			"reason", "ip_address", "user_agent", "endpoint").
		Values(id.String(), e.UserID, e.TenantID, e.ApplicationID, e.Decision,
			e.Reason, e.IPAddress, e.UserAgent, e.Endpoint).
		Suffix("RETURNING " + columnList(accessLogColumns)).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.UserID, &created.TenantID, &created.ApplicationID,
			&created.Decision, &created.Reason, &created.IPAddress, &created.UserAgent,
			&created.Endpoint, &created.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert access log entry: %w", err)
	}

	return &created, nil
}

func (s *Storage) ListAccessLog(ctx context.Context, f types.AccessLogFilter, p types.Pagination) ([]*types.AccessLogEntry, int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAccessLog")
	defer span.End()

	var total int64
	countQuery := accessLogWhere(s.db.Statement(ctx).Select("COUNT(*)").From("access_log"), f)
	if err := countQuery.QueryRowContext(ctx).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count access log entries: %w", err)
	}

	sortCol, ok := accessLogSortable[p.SortBy]
	if !ok {
		sortCol = "created_at"
	}
	direction := "ASC"
	if p.SortDesc || p.SortBy == "" {
		direction = "DESC"
	}

	query := accessLogWhere(
		s.db.Statement(ctx).Select(accessLogColumns...).From("access_log"), f).
		OrderBy(sortCol + " " + direction).
		Limit(db.PageSize(p.Size)).
		Offset(db.Offset(p.Page, db.PageSize(p.Size)))

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list access log entries: %w", err)
	}
	defer rows.Close()

	var entries []*types.AccessLogEntry
	for rows.Next() {
		var e types.AccessLogEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.TenantID, &e.ApplicationID,
			&e.Decision, &e.Reason, &e.IPAddress, &e.UserAgent,
			&e.Endpoint, &e.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan access log entry: %w", err)
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, total, nil
}

func (s *Storage) GetAccessSummary(ctx context.Context, f types.AccessLogFilter) (*types.AccessSummary, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAccessSummary")
	defer span.End()

	var summary types.AccessSummary
	query := accessLogWhere(s.db.Statement(ctx).
		Select(
			"COUNT(*)",
			"COUNT(*) FILTER (WHERE decision = 'granted')",
			"COUNT(*) FILTER (WHERE decision = 'denied')",
		).
		From("access_log"), f)

	if err := query.QueryRowContext(ctx).Scan(&summary.Total, &summary.Granted, &summary.Denied); err != nil {
		return nil, fmt.Errorf("failed to get access summary: %w", err)
	}

	return &summary, nil
}

func (s *Storage) GetAccessOverview(ctx context.Context, f types.AccessLogFilter) (*types.AccessOverview, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAccessOverview")
	defer span.End()

	var overview types.AccessOverview
	query := accessLogWhere(s.db.Statement(ctx).
		Select(
			"COUNT(*)",
			"COUNT(*) FILTER (WHERE decision = 'granted')",
			"COUNT(*) FILTER (WHERE decision = 'denied')",
			"COUNT(DISTINCT user_id)",
			"COUNT(DISTINCT tenant_id)",
		).
		From("access_log"), f)

	err := query.QueryRowContext(ctx).Scan(
		&overview.Total, &overview.Granted, &overview.Denied,
		&overview.UniqueUsers, &overview.UniqueTenants,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get access overview: %w", err)
	}

	return &overview, nil
}

func (s *Storage) CountByApplication(ctx context.Context, f types.AccessLogFilter) ([]*types.AppDecisionCount, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountByApplication")
	defer span.End()

	query := accessLogWhere(s.db.Statement(ctx).
		Select(
			"application_id",
			"COUNT(*) FILTER (WHERE decision = 'granted')",
			"COUNT(*) FILTER (WHERE decision = 'denied')",
		).
		From("access_log"), f).
		Where(sq.NotEq{"application_id": nil}).
		GroupBy("application_id").
		OrderBy("COUNT(*) DESC")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count by application: %w", err)
	}
	defer rows.Close()

	var counts []*types.AppDecisionCount
	for rows.Next() {
		var c types.AppDecisionCount
		if err := rows.Scan(&c.ApplicationID, &c.Granted, &c.Denied); err != nil {
			return nil, fmt.Errorf("failed to scan application count: %w", err)
		}
		counts = append(counts, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return counts, nil
}

func (s *Storage) CountByTenant(ctx context.Context, f types.AccessLogFilter) ([]*types.TenantDecisionCount, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountByTenant")
	defer span.End()

	query := accessLogWhere(s.db.Statement(ctx).
		Select(
			"tenant_id",
			"COUNT(*) FILTER (WHERE decision = 'granted')",
			"COUNT(*) FILTER (WHERE decision = 'denied')",
		).
		From("access_log"), f).
		GroupBy("tenant_id").
		OrderBy("COUNT(*) DESC")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count by tenant: %w", err)
	}
	defer rows.Close()

	var counts []*types.TenantDecisionCount
	for rows.Next() {
		var c types.TenantDecisionCount
		if err := rows.Scan(&c.TenantID, &c.Granted, &c.Denied); err != nil {
			return nil, fmt.Errorf("failed to scan tenant count: %w", err)
		}
		counts = append(counts, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return counts, nil
}

// GetTimeline buckets decisions by hour or day.
func (s *Storage) GetTimeline(ctx context.Context, f types.AccessLogFilter, bucket string) ([]*types.TimelineBucket, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTimeline")
	defer span.End()

	if bucket != "hour" && bucket != "day" {
		bucket = "day"
	}

	query := accessLogWhere(s.db.Statement(ctx).
		Select(
			fmt.Sprintf("date_trunc('%s', created_at) AS bucket", bucket),
			"COUNT(*) FILTER (WHERE decision = 'granted')",
			"COUNT(*) FILTER (WHERE decision = 'denied')",
		).
		From("access_log"), f).
		GroupBy("bucket").
		OrderBy("bucket")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get timeline: %w", err)
	}
	defer rows.Close()

	var buckets []*types.TimelineBucket
	for rows.Next() {
		var b types.TimelineBucket
		if err := rows.Scan(&b.Bucket, &b.Granted, &b.Denied); err != nil {
			return nil, fmt.Errorf("failed to scan timeline bucket: %w", err)
		}
		buckets = append(buckets, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return buckets, nil
}

func (s *Storage) TopDenialReasons(ctx context.Context, f types.AccessLogFilter, limit uint64) ([]*types.DenialReasonCount, error) {
	ctx, span := s.tracer.Start(ctx, "storage.TopDenialReasons")
	defer span.End()

	query := accessLogWhere(s.db.Statement(ctx).
		Select("reason", "COUNT(*)").
		From("access_log"), f).
		Where(sq.Eq{"decision": types.DecisionDenied}).
		GroupBy("reason").
		OrderBy("COUNT(*) DESC").
		Limit(limit)

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get top denial reasons: %w", err)
	}
	defer rows.Close()

	var reasons []*types.DenialReasonCount
	for rows.Next() {
		var r types.DenialReasonCount
		if err := rows.Scan(&r.Reason, &r.Count); err != nil {
			return nil, fmt.Errorf("failed to scan denial reason: %w", err)
		}
		reasons = append(reasons, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return reasons, nil
}

// FindRepeatedDenials groups denied entries since the given instant by
// (user, IP) and returns the groups at or above the threshold.
func (s *Storage) FindRepeatedDenials(ctx context.Context, since time.Time, threshold int64, limit uint64) ([]*types.SecurityAlert, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindRepeatedDenials")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("user_id", "ip_address", "COUNT(*)", "MIN(created_at)", "MAX(created_at)").
		From("access_log").
		Where(sq.Eq{"decision": types.DecisionDenied}).
		Where(sq.GtOrEq{"created_at": since}).
		GroupBy("user_id", "ip_address").
		Having(sq.GtOrEq{"COUNT(*)": threshold}).
		OrderBy("COUNT(*) DESC").
		Limit(limit)

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find repeated denials: %w", err)
	}
	defer rows.Close()

	var alerts []*types.SecurityAlert
	for rows.Next() {
		a := types.SecurityAlert{
			Kind:     "repeated_failures",
			Severity: "medium",
		}
		if err := rows.Scan(&a.UserID, &a.IPAddress, &a.Failures, &a.FirstSeen, &a.LastSeen); err != nil {
			return nil, fmt.Errorf("failed to scan security alert: %w", err)
		}
		alerts = append(alerts, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return alerts, nil
}
