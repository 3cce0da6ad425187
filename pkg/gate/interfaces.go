// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package gate

import (
	"context"

	"github.com/andremelo97/simplia-paas-sub002/internal/types"
)

// ApplicationResolverInterface resolves catalog entries by slug.
type ApplicationResolverInterface interface {
	GetApplicationBySlug(ctx context.Context, slug string) (*types.Application, error)
}

// LicenseCheckerInterface answers whether a tenant holds a usable license.
// Implementations may serve reads from a cache.
type LicenseCheckerInterface interface {
	CheckLicense(ctx context.Context, tenantID int64, slug string) (*types.License, error)
}

// AccessCheckerInterface resolves a user's active grant, which carries the
// authoritative in-app role.
type AccessCheckerInterface interface {
	ActiveGrant(ctx context.Context, userID, tenantID int64, applicationID string) (*types.Grant, error)
}

// AuditLogInterface records authorization decisions in the access log.
type AuditLogInterface interface {
	Create(ctx context.Context, e *types.AccessLogEntry) (*types.AccessLogEntry, error)
}
