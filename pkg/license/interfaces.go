// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package license

import (
	"context"
	"time"

	"github.com/andremelo97/simplia-paas-sub002/internal/types"
)

type ServiceInterface interface {
	GrantLicense(ctx context.Context, l *types.License) (*types.License, error)
	GetLicense(ctx context.Context, tenantID int64, applicationID string) (*types.License, error)
	UpdateLicense(ctx context.Context, tenantID int64, applicationID string, u types.LicenseUpdate) (*types.License, error)
	HasActiveLicense(ctx context.Context, tenantID int64, slug string) (bool, error)
	CheckLicense(ctx context.Context, tenantID int64, slug string) (*types.License, error)
	CheckSeatAvailability(ctx context.Context, tenantID int64, applicationID string) (*types.SeatAvailability, error)
	IncrementSeat(ctx context.Context, tenantID int64, applicationID string) error
	DecrementSeat(ctx context.Context, tenantID int64, applicationID string) error
	ExpireLicenses(ctx context.Context) ([]types.TenantApp, error)
}

type StorageInterface interface {
	GetApplicationByID(ctx context.Context, id string) (*types.Application, error)
	CreateLicense(ctx context.Context, l *types.License) (*types.License, error)
	GetLicense(ctx context.Context, tenantID int64, applicationID string) (*types.License, error)
	GetLicenseBySlug(ctx context.Context, tenantID int64, slug string) (*types.License, error)
	UpdateLicense(ctx context.Context, id string, u types.LicenseUpdate) (*types.License, error)
	AdjustSeats(ctx context.Context, tenantID int64, applicationID string, delta int) error
	ExpireLicenses(ctx context.Context, now time.Time) ([]types.TenantApp, error)
}

// SchemaProvisionerInterface prepares per-tenant application resources after a
// license is granted. Provision must be idempotent; IsProvisioned guards
// repeat grants from re-running it.
type SchemaProvisionerInterface interface {
	IsProvisioned(ctx context.Context, tenantID int64, applicationID string) (bool, error)
	Provision(ctx context.Context, tenantID int64, applicationID string) error
}
