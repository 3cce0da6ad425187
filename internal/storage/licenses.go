// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/andremelo97/simplia-paas-sub002/internal/types"
)

var licenseColumns = []string{
	"id", "tenant_id", "application_id", "status", "seats_purchased",
	"seats_used", "expires_at", "trial_used", "active", "created_at", "updated_at",
}

func scanLicense(row sq.RowScanner) (*types.License, error) {
	var l types.License
	err := row.Scan(
		&l.ID, &l.TenantID, &l.ApplicationID, &l.Status, &l.SeatsPurchased,
		&l.SeatsUsed, &l.ExpiresAt, &l.TrialUsed, &l.Active, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Storage) CreateLicense(ctx context.Context, l *types.License) (*types.License, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateLicense")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate license ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("licenses").
		Columns("id", "tenant_id", "application_id", "status", "seats_purchased",
			"seats_used", "expires_at", "trial_used", "active").
		Values(id.String(), l.TenantID, l.ApplicationID, l.Status, l.SeatsPurchased,
			l.SeatsUsed, l.ExpiresAt, l.TrialUsed, l.Active).
		Suffix("RETURNING " + columnList(licenseColumns)).
		QueryRowContext(ctx)

	created, err := scanLicense(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert license: %w", err)
	}

	return created, nil
}

func (s *Storage) GetLicense(ctx context.Context, tenantID int64, applicationID string) (*types.License, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLicense")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(licenseColumns...).
		From("licenses").
		Where(sq.Eq{"tenant_id": tenantID, "application_id": applicationID}).
		QueryRowContext(ctx)

	l, err := scanLicense(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get license: %w", err)
	}

	return l, nil
}

func (s *Storage) GetLicenseBySlug(ctx context.Context, tenantID int64, slug string) (*types.License, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLicenseBySlug")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(
			"l.id", "l.tenant_id", "l.application_id", "l.status", "l.seats_purchased",
			"l.seats_used", "l.expires_at", "l.trial_used", "l.active", "l.created_at", "l.updated_at",
		).
		From("licenses l").
		Join("applications a ON a.id = l.application_id").
		Where(sq.Eq{"l.tenant_id": tenantID, "a.slug": slug}).
		QueryRowContext(ctx)

	l, err := scanLicense(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get license by slug: %w", err)
	}

	return l, nil
}

func (s *Storage) UpdateLicense(ctx context.Context, id string, u types.LicenseUpdate) (*types.License, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateLicense")
	defer span.End()

	updateMap := map[string]interface{}{
		"updated_at": sq.Expr("now()"),
	}
	if u.Status != nil {
		updateMap["status"] = *u.Status
		// The active flag has a single source of truth: the status.
		updateMap["active"] = *u.Status == types.LicenseStatusActive
	}
	if u.UnlimitedSeats {
		updateMap["seats_purchased"] = nil
	} else if u.SeatsPurchased != nil {
		updateMap["seats_purchased"] = *u.SeatsPurchased
	}
	if u.ClearExpiresAt {
		updateMap["expires_at"] = nil
	} else if u.ExpiresAt != nil {
		updateMap["expires_at"] = *u.ExpiresAt
	}
	if u.TrialUsed != nil {
		updateMap["trial_used"] = *u.TrialUsed
	}

	row := s.db.Statement(ctx).
		Update("licenses").
		SetMap(updateMap).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList(licenseColumns)).
		QueryRowContext(ctx)

	l, err := scanLicense(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update license: %w", err)
	}

	return l, nil
}

// AdjustSeats applies a single atomic delta to seats_used, clamped at zero.
func (s *Storage) AdjustSeats(ctx context.Context, tenantID int64, applicationID string, delta int) error {
	ctx, span := s.tracer.Start(ctx, "storage.AdjustSeats")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("licenses").
		Set("seats_used", sq.Expr("GREATEST(seats_used + ?, 0)", delta)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"tenant_id": tenantID, "application_id": applicationID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to adjust seats: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// ExpireLicenses flips every overdue license to expired and returns the
// affected pairs so callers can invalidate caches.
func (s *Storage) ExpireLicenses(ctx context.Context, now time.Time) ([]types.TenantApp, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ExpireLicenses")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Update("licenses l").
		Set("status", types.LicenseStatusExpired).
		Set("active", false).
		Set("updated_at", sq.Expr("now()")).
		From("applications a").
		Where("a.id = l.application_id").
		Where(sq.LtOrEq{"l.expires_at": now}).
		Where(sq.NotEq{"l.status": types.LicenseStatusExpired}).
		Suffix("RETURNING l.tenant_id, l.application_id, a.slug").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to expire licenses: %w", err)
	}
	defer rows.Close()

	var affected []types.TenantApp
	for rows.Next() {
		var ta types.TenantApp
		if err := rows.Scan(&ta.TenantID, &ta.ApplicationID, &ta.Slug); err != nil {
			return nil, fmt.Errorf("failed to scan expired license: %w", err)
		}
		affected = append(affected, ta)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return affected, nil
}
