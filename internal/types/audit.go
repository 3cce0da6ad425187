// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// AccessLogFilter narrows audit queries. Nil / zero fields are ignored.
type AccessLogFilter struct {
	TenantID      *int64
	UserID        *int64
	ApplicationID *string
	Decision      string
	IPAddress     string
	From          *time.Time
	To            *time.Time
}

// Pagination controls audit listing. SortBy is restricted to a small column
// allow-list by the storage layer.
type Pagination struct {
	Page     int64
	Size     int64
	SortBy   string
	SortDesc bool
}

type AccessSummary struct {
	Total   int64 `json:"total"`
	Granted int64 `json:"granted"`
	Denied  int64 `json:"denied"`
}

// AccessOverview extends the summary with distinct actor counts for dashboards.
type AccessOverview struct {
	AccessSummary
	UniqueUsers   int64 `json:"unique_users"`
	UniqueTenants int64 `json:"unique_tenants"`
}

type AppDecisionCount struct {
	ApplicationID string `json:"application_id"`
	Granted       int64  `json:"granted"`
	Denied        int64  `json:"denied"`
}

type TenantDecisionCount struct {
	TenantID int64 `json:"tenant_id"`
	Granted  int64 `json:"granted"`
	Denied   int64 `json:"denied"`
}

type TimelineBucket struct {
	Bucket  time.Time `json:"bucket"`
	Granted int64     `json:"granted"`
	Denied  int64     `json:"denied"`
}

type DenialReasonCount struct {
	Reason string `json:"reason"`
	Count  int64  `json:"count"`
}

// SecurityAlert flags repeated denials from one (user, IP) pair inside a
// trailing window. A threshold heuristic, not an anomaly detector.
type SecurityAlert struct {
	Kind      string    `json:"kind"`
	Severity  string    `json:"severity"`
	UserID    int64     `json:"user_id"`
	IPAddress string    `json:"ip_address"`
	Failures  int64     `json:"failures"`
	FirstSeen time.Time `json:"first_seen"`
	LastSeen  time.Time `json:"last_seen"`
}
