// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/andremelo97/simplia-paas-sub002/internal/types"
)

type StorageInterface interface {
	// Applications
	CreateApplication(ctx context.Context, app *types.Application) (*types.Application, error)
	GetApplicationByID(ctx context.Context, id string) (*types.Application, error)
	GetApplicationBySlug(ctx context.Context, slug string) (*types.Application, error)
	ListApplications(ctx context.Context) ([]*types.Application, error)
	SetApplicationStatus(ctx context.Context, id, status string) error

	// Pricing ledger
	CreatePricingEntry(ctx context.Context, e *types.PricingEntry) (*types.PricingEntry, error)
	GetPricingEntryByID(ctx context.Context, id string) (*types.PricingEntry, error)
	UpdatePricingEntry(ctx context.Context, id string, u types.PricingEntryUpdate) (*types.PricingEntry, error)
	ListPricingEntries(ctx context.Context, applicationID, userType string, activeOnly bool) ([]*types.PricingEntry, error)
	GetPricingEntryAt(ctx context.Context, applicationID, userType string, at time.Time) (*types.PricingEntry, error)

	// License registry
	CreateLicense(ctx context.Context, l *types.License) (*types.License, error)
	GetLicense(ctx context.Context, tenantID int64, applicationID string) (*types.License, error)
	GetLicenseBySlug(ctx context.Context, tenantID int64, slug string) (*types.License, error)
	UpdateLicense(ctx context.Context, id string, u types.LicenseUpdate) (*types.License, error)
	AdjustSeats(ctx context.Context, tenantID int64, applicationID string, delta int) error
	ExpireLicenses(ctx context.Context, now time.Time) ([]types.TenantApp, error)

	// Tenant provisioning registry
	IsProvisioned(ctx context.Context, tenantID int64, applicationID string) (bool, error)
	MarkProvisioned(ctx context.Context, tenantID int64, applicationID string) error

	// Access grants
	CreateGrant(ctx context.Context, g *types.Grant) (*types.Grant, error)
	GetGrantByID(ctx context.Context, id string) (*types.Grant, error)
	GetActiveGrant(ctx context.Context, userID, tenantID int64, applicationID string) (*types.Grant, error)
	RevokeGrant(ctx context.Context, id string) error
	HasActiveGrantBySlug(ctx context.Context, userID, tenantID int64, slug string, now time.Time) (bool, error)
	ListGrantsByUser(ctx context.Context, userID, tenantID int64) ([]*types.Grant, error)

	// Audit log
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
