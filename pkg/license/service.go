// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package license

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andremelo97/simplia-paas-sub002/internal/cache"
	"github.com/andremelo97/simplia-paas-sub002/internal/logging"
	"github.com/andremelo97/simplia-paas-sub002/internal/monitoring"
	"github.com/andremelo97/simplia-paas-sub002/internal/storage"
	"github.com/andremelo97/simplia-paas-sub002/internal/tracing"
	"github.com/andremelo97/simplia-paas-sub002/internal/types"
)

type Service struct {
	storage          StorageInterface
	provisioner      SchemaProvisionerInterface
	cache            cache.LicenseCacheInterface
	provisionTimeout time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	provisioner SchemaProvisionerInterface,
	licenseCache cache.LicenseCacheInterface,
	provisionTimeout time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:          storage,
		provisioner:      provisioner,
		cache:            licenseCache,
		provisionTimeout: provisionTimeout,
		tracer:           tracer,
		monitor:          monitor,
		logger:           logger,
	}
}

func validLicenseStatus(status string) bool {
	switch status {
	case types.LicenseStatusActive, types.LicenseStatusTrial, types.LicenseStatusSuspended,
		types.LicenseStatusExpired, types.LicenseStatusRevoked:
		return true
	}
	return false
}

// GrantLicense creates the (tenant, application) subscription and, for
// applications flagged as requiring it, provisions tenant resources. The
// unique constraint on the pair is the source of truth for duplicates.
// Provisioning is idempotent and runs after the insert so a failed provision
// leaves a retriable license behind.
func (s *Service) GrantLicense(ctx context.Context, l *types.License) (*types.License, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.GrantLicense")
	defer span.End()

	if l.TenantID <= 0 {
		return nil, types.NewValidationError("tenant_id must be positive")
	}
	if l.Status == "" {
		l.Status = types.LicenseStatusActive
	}
	if !validLicenseStatus(l.Status) {
		return nil, types.NewValidationError(fmt.Sprintf("invalid license status %q", l.Status))
	}
	if l.SeatsPurchased != nil && *l.SeatsPurchased < 0 {
		return nil, types.NewValidationError("seats_purchased must not be negative")
	}

	app, err := s.storage.GetApplicationByID(ctx, l.ApplicationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("application", l.ApplicationID)
		}
		return nil, fmt.Errorf("failed to load application: %w", err)
	}

	l.Active = l.Status == types.LicenseStatusActive
	if l.Status == types.LicenseStatusTrial {
		l.TrialUsed = true
	}

	created, err := s.storage.CreateLicense(ctx, l)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, types.NewDuplicateLicenseError(l.TenantID, l.ApplicationID)
		}
		return nil, fmt.Errorf("failed to create license: %w", err)
	}

	if app.RequiresProvisioning {
		if err := s.provision(ctx, created.TenantID, created.ApplicationID); err != nil {
			// License exists either way; the next grant or an explicit retry
			// finishes provisioning.
			s.logger.Errorf("provisioning failed for tenant %d application %s: %v", created.TenantID, created.ApplicationID, err)
		}
	}

	if err := s.cache.Invalidate(ctx, created.TenantID, app.Slug); err != nil {
		s.logger.Warnf("failed to invalidate license cache: %v", err)
	}

	return created, nil
}

func (s *Service) provision(ctx context.Context, tenantID int64, applicationID string) error {
	ctx, span := s.tracer.Start(ctx, "license.Service.provision")
	defer span.End()

	provisioned, err := s.provisioner.IsProvisioned(ctx, tenantID, applicationID)
	if err != nil {
		return fmt.Errorf("failed to check provisioning state: %w", err)
	}
	if provisioned {
		return nil
	}

	provisionCtx, cancel := context.WithTimeout(ctx, s.provisionTimeout)
	defer cancel()

	if err := s.provisioner.Provision(provisionCtx, tenantID, applicationID); err != nil {
		return fmt.Errorf("failed to provision tenant resources: %w", err)
	}

	s.logger.Infof("provisioned tenant %d for application %s", tenantID, applicationID)
	return nil
}

func (s *Service) GetLicense(ctx context.Context, tenantID int64, applicationID string) (*types.License, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.GetLicense")
	defer span.End()

	l, err := s.storage.GetLicense(ctx, tenantID, applicationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("license", fmt.Sprintf("%d/%s", tenantID, applicationID))
		}
		return nil, fmt.Errorf("failed to get license: %w", err)
	}

	return l, nil
}

func (s *Service) UpdateLicense(ctx context.Context, tenantID int64, applicationID string, u types.LicenseUpdate) (*types.License, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.UpdateLicense")
	defer span.End()

	if u.Status != nil && !validLicenseStatus(*u.Status) {
		return nil, types.NewValidationError(fmt.Sprintf("invalid license status %q", *u.Status))
	}
	if u.SeatsPurchased != nil && *u.SeatsPurchased < 0 {
		return nil, types.NewValidationError("seats_purchased must not be negative")
	}

	current, err := s.storage.GetLicense(ctx, tenantID, applicationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("license", fmt.Sprintf("%d/%s", tenantID, applicationID))
		}
		return nil, fmt.Errorf("failed to load license: %w", err)
	}

	updated, err := s.storage.UpdateLicense(ctx, current.ID, u)
	if err != nil {
		return nil, fmt.Errorf("failed to update license: %w", err)
	}

	app, err := s.storage.GetApplicationByID(ctx, applicationID)
	if err == nil {
		if err := s.cache.Invalidate(ctx, tenantID, app.Slug); err != nil {
			s.logger.Warnf("failed to invalidate license cache: %v", err)
		}
	}

	return updated, nil
}

// CheckLicense returns the license when it authorizes access right now. Cache
// first, storage on miss; cache errors fall through to storage.
func (s *Service) CheckLicense(ctx context.Context, tenantID int64, slug string) (*types.License, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.CheckLicense")
	defer span.End()

	now := time.Now()

	if l, hit, err := s.cache.Get(ctx, tenantID, slug); err == nil && hit {
		if !l.IsUsable(now) {
			return nil, types.NewNotFoundError("active license", slug)
		}
		return l, nil
	} else if err != nil {
		s.logger.Warnf("license cache read failed, falling back to storage: %v", err)
	}

	l, err := s.storage.GetLicenseBySlug(ctx, tenantID, slug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("active license", slug)
		}
		return nil, fmt.Errorf("failed to check license: %w", err)
	}

	if err := s.cache.Set(ctx, tenantID, slug, l); err != nil {
		s.logger.Warnf("failed to populate license cache: %v", err)
	}

	if !l.IsUsable(now) {
		return nil, types.NewNotFoundError("active license", slug)
	}

	return l, nil
}

func (s *Service) HasActiveLicense(ctx context.Context, tenantID int64, slug string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.HasActiveLicense")
	defer span.End()

	_, err := s.CheckLicense(ctx, tenantID, slug)
	if err != nil {
		if engineErr, ok := types.AsEngineError(err); ok && engineErr.Code == types.CodeNotFound {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// CheckSeatAvailability is informational only. Seat counts are advisory and
// never block a grant.
func (s *Service) CheckSeatAvailability(ctx context.Context, tenantID int64, applicationID string) (*types.SeatAvailability, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.CheckSeatAvailability")
	defer span.End()

	l, err := s.GetLicense(ctx, tenantID, applicationID)
	if err != nil {
		return nil, err
	}

	availability := &types.SeatAvailability{
		Purchased: l.SeatsPurchased,
		Used:      l.SeatsUsed,
	}
	if l.SeatsPurchased != nil {
		available := *l.SeatsPurchased - l.SeatsUsed
		if available < 0 {
			available = 0
		}
		availability.Available = &available
	}

	return availability, nil
}

func (s *Service) IncrementSeat(ctx context.Context, tenantID int64, applicationID string) error {
	ctx, span := s.tracer.Start(ctx, "license.Service.IncrementSeat")
	defer span.End()

	return s.storage.AdjustSeats(ctx, tenantID, applicationID, 1)
}

func (s *Service) DecrementSeat(ctx context.Context, tenantID int64, applicationID string) error {
	ctx, span := s.tracer.Start(ctx, "license.Service.DecrementSeat")
	defer span.End()

	return s.storage.AdjustSeats(ctx, tenantID, applicationID, -1)
}

// ExpireLicenses sweeps licenses past their expiry into status=expired and
// invalidates their cache entries.
func (s *Service) ExpireLicenses(ctx context.Context) ([]types.TenantApp, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.ExpireLicenses")
	defer span.End()

	expired, err := s.storage.ExpireLicenses(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to expire licenses: %w", err)
	}

	for _, pair := range expired {
		if err := s.cache.Invalidate(ctx, pair.TenantID, pair.Slug); err != nil {
			s.logger.Warnf("failed to invalidate license cache for tenant %d app %s: %v", pair.TenantID, pair.Slug, err)
		}
	}

	if len(expired) > 0 {
		s.logger.Infof("expired %d licenses", len(expired))
	}

	return expired, nil
}
