// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"time"

	"github.com/andremelo97/simplia-paas-sub002/internal/types"
)

type ServiceInterface interface {
	GrantAccess(ctx context.Context, req *GrantRequest) (*types.Grant, error)
	Revoke(ctx context.Context, grantID string, revokedBy int64) error
	HasAccess(ctx context.Context, userID, tenantID int64, slug string) (bool, error)
	ActiveGrant(ctx context.Context, userID, tenantID int64, applicationID string) (*types.Grant, error)
	ListUserGrants(ctx context.Context, userID, tenantID int64) ([]*types.Grant, error)
	GetGrant(ctx context.Context, id string) (*types.Grant, error)
}

type StorageInterface interface {
	GetApplicationByID(ctx context.Context, id string) (*types.Application, error)
	GetLicense(ctx context.Context, tenantID int64, applicationID string) (*types.License, error)
	CreateGrant(ctx context.Context, g *types.Grant) (*types.Grant, error)
	GetGrantByID(ctx context.Context, id string) (*types.Grant, error)
	GetActiveGrant(ctx context.Context, userID, tenantID int64, applicationID string) (*types.Grant, error)
	RevokeGrant(ctx context.Context, id string) error
	HasActiveGrantBySlug(ctx context.Context, userID, tenantID int64, slug string, now time.Time) (bool, error)
	ListGrantsByUser(ctx context.Context, userID, tenantID int64) ([]*types.Grant, error)
	AdjustSeats(ctx context.Context, tenantID int64, applicationID string, delta int) error
}

// PricingResolverInterface resolves the price snapshot frozen into new grants.
type PricingResolverInterface interface {
	GetCurrentPrice(ctx context.Context, applicationID, userType string) (*types.PricingEntry, error)
}

// AuditLogInterface records grant lifecycle events in the access log.
type AuditLogInterface interface {
	Create(ctx context.Context, e *types.AccessLogEntry) (*types.AccessLogEntry, error)
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
