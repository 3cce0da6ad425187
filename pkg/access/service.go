// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andremelo97/simplia-paas-sub002/internal/logging"
	"github.com/andremelo97/simplia-paas-sub002/internal/monitoring"
	"github.com/andremelo97/simplia-paas-sub002/internal/storage"
	"github.com/andremelo97/simplia-paas-sub002/internal/tracing"
	"github.com/andremelo97/simplia-paas-sub002/internal/types"
)

// GrantRequest carries everything needed to grant a user access to an
// application within a tenant.
type GrantRequest struct {
	UserID        int64
	TenantID      int64
	ApplicationID string
	RoleInApp     string
	UserType      string
	GrantedBy     int64
	ExpiresAt     *time.Time
}

type Service struct {
	storage StorageInterface
	pricing PricingResolverInterface
	audit   AuditLogInterface
	tx      TxRunnerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	pricing PricingResolverInterface,
	audit AuditLogInterface,
	tx TxRunnerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		pricing: pricing,
		audit:   audit,
		tx:      tx,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// GrantAccess creates an access grant with the current price frozen into it.
// The price fields are copied verbatim from the pricing ledger and never
// recomputed afterwards. Grant insert and seat increment commit together.
func (s *Service) GrantAccess(ctx context.Context, req *GrantRequest) (*types.Grant, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.GrantAccess")
	defer span.End()

	if !types.ValidRole(req.RoleInApp) {
		return nil, types.NewInvalidRoleError(req.RoleInApp)
	}
	if req.UserType == "" {
		return nil, types.NewValidationError("user_type is required")
	}

	app, err := s.storage.GetApplicationByID(ctx, req.ApplicationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("application", req.ApplicationID)
		}
		return nil, fmt.Errorf("failed to load application: %w", err)
	}

	now := time.Now()

	license, err := s.storage.GetLicense(ctx, req.TenantID, req.ApplicationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("active license", app.Slug)
		}
		return nil, fmt.Errorf("failed to load license: %w", err)
	}
	if !license.IsUsable(now) {
		return nil, types.NewNotFoundError("active license", app.Slug)
	}

	// Seat capacity is advisory: an exhausted pool is reported, never blocking.
	if !license.CanAddUser() {
		s.logger.Warnf("seat pool exhausted for tenant %d application %s, granting anyway", req.TenantID, app.Slug)
	}

	if _, err := s.storage.GetActiveGrant(ctx, req.UserID, req.TenantID, req.ApplicationID); err == nil {
		return nil, types.NewDuplicateGrantError(req.UserID, req.TenantID, req.ApplicationID)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing grant: %w", err)
	}

	price, err := s.pricing.GetCurrentPrice(ctx, req.ApplicationID, req.UserType)
	if err != nil {
		// PRICING_NOT_CONFIGURED passes through untouched: no price, no grant.
		return nil, err
	}

	var created *types.Grant
	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		created, err = s.storage.CreateGrant(txCtx, &types.Grant{
			UserID:        req.UserID,
			TenantID:      req.TenantID,
			ApplicationID: req.ApplicationID,
			RoleInApp:     req.RoleInApp,
			PriceCents:    price.PriceCents,
			Currency:      price.Currency,
			BillingCycle:  price.BillingCycle,
			UserType:      price.UserType,
			GrantedAt:     types.NormalizeTime(now),
			GrantedBy:     req.GrantedBy,
			ExpiresAt:     req.ExpiresAt,
			Active:        true,
		})
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				return types.NewDuplicateGrantError(req.UserID, req.TenantID, req.ApplicationID)
			}
			return fmt.Errorf("failed to create grant: %w", err)
		}

		return s.storage.AdjustSeats(txCtx, req.TenantID, req.ApplicationID, 1)
	})
	if err != nil {
		return nil, err
	}

	s.recordEvent(ctx, created.UserID, created.TenantID, created.ApplicationID, types.DecisionGranted, "access granted")
	s.logger.Security().AccessGranted(created.UserID, created.TenantID, app.Slug, "grant")

	return created, nil
}

// Revoke deactivates a grant and releases its seat. The grant row survives for
// history; only the active flag flips.
func (s *Service) Revoke(ctx context.Context, grantID string, revokedBy int64) error {
	ctx, span := s.tracer.Start(ctx, "access.Service.Revoke")
	defer span.End()

	grant, err := s.storage.GetGrantByID(ctx, grantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.NewNotFoundError("grant", grantID)
		}
		return fmt.Errorf("failed to load grant: %w", err)
	}

	if !grant.Active {
		return types.NewValidationError("grant is already revoked")
	}

	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.storage.RevokeGrant(txCtx, grantID); err != nil {
			return fmt.Errorf("failed to revoke grant: %w", err)
		}
		return s.storage.AdjustSeats(txCtx, grant.TenantID, grant.ApplicationID, -1)
	})
	if err != nil {
		return err
	}

	s.recordEvent(ctx, grant.UserID, grant.TenantID, grant.ApplicationID, types.DecisionDenied, fmt.Sprintf("access revoked by %d", revokedBy))

	return nil
}

// HasAccess reports whether the user holds an active, unexpired grant for the
// application slug.
func (s *Service) HasAccess(ctx context.Context, userID, tenantID int64, slug string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.HasAccess")
	defer span.End()

	return s.storage.HasActiveGrantBySlug(ctx, userID, tenantID, slug, time.Now())
}

// ActiveGrant returns the user's active, unexpired grant for the application.
// An expired grant is reported as not found.
func (s *Service) ActiveGrant(ctx context.Context, userID, tenantID int64, applicationID string) (*types.Grant, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.ActiveGrant")
	defer span.End()

	grant, err := s.storage.GetActiveGrant(ctx, userID, tenantID, applicationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("grant", fmt.Sprintf("%d/%d/%s", userID, tenantID, applicationID))
		}
		return nil, fmt.Errorf("failed to load active grant: %w", err)
	}

	if !grant.IsUsable(time.Now()) {
		return nil, types.NewNotFoundError("grant", fmt.Sprintf("%d/%d/%s", userID, tenantID, applicationID))
	}

	return grant, nil
}

func (s *Service) ListUserGrants(ctx context.Context, userID, tenantID int64) ([]*types.Grant, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.ListUserGrants")
	defer span.End()

	return s.storage.ListGrantsByUser(ctx, userID, tenantID)
}

func (s *Service) GetGrant(ctx context.Context, id string) (*types.Grant, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.GetGrant")
	defer span.End()

	grant, err := s.storage.GetGrantByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("grant", id)
		}
		return nil, fmt.Errorf("failed to load grant: %w", err)
	}

	return grant, nil
}

// recordEvent appends a grant lifecycle row to the access log. The log is an
// audit trail, a write failure must not undo the grant operation itself.
func (s *Service) recordEvent(ctx context.Context, userID, tenantID int64, applicationID, decision, reason string) {
	if _, err := s.audit.Create(ctx, &types.AccessLogEntry{
		UserID:        userID,
		TenantID:      tenantID,
		ApplicationID: &applicationID,
		Decision:      decision,
		Reason:        reason,
	}); err != nil {
		s.logger.Errorf("failed to record access log entry: %v", err)
	}
}
