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

var grantColumns = []string{
	"id", "user_id", "tenant_id", "application_id", "role_in_app",
	"price_cents", "currency", "billing_cycle", "user_type",
	"granted_at", "granted_by", "expires_at", "active",
}

func scanGrant(row sq.RowScanner) (*types.Grant, error) {
	var g types.Grant
	err := row.Scan(
		&g.ID, &g.UserID, &g.TenantID, &g.ApplicationID, &g.RoleInApp,
		&g.PriceCents, &g.Currency, &g.BillingCycle, &g.UserType,
		&g.GrantedAt, &g.GrantedBy, &g.ExpiresAt, &g.Active,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Storage) CreateGrant(ctx context.Context, g *types.Grant) (*types.Grant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateGrant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate grant ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("grants").
		Columns("id", "user_id", "tenant_id", "application_id", "role_in_app",
			"price_cents", "currency", "billing_cycle", "user_type",
			"granted_at", "granted_by", "expires_at", "active").
		Values(id.String(), g.UserID, g.TenantID, g.ApplicationID, g.RoleInApp,
			g.PriceCents, g.Currency, g.BillingCycle, g.UserType,
			g.GrantedAt, g.GrantedBy, g.ExpiresAt, g.Active).
		Suffix("RETURNING " + columnList(grantColumns)).
		QueryRowContext(ctx)

	created, err := scanGrant(row)
	if err != nil {
		// The partial unique index on active grants is the source of truth
		// for "already granted".
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert grant: %w", err)
	}

	return created, nil
}

func (s *Storage) GetGrantByID(ctx context.Context, id string) (*types.Grant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetGrantByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(grantColumns...).
		From("grants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	g, err := scanGrant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get grant: %w", err)
	}

	return g, nil
}

func (s *Storage) GetActiveGrant(ctx context.Context, userID, tenantID int64, applicationID string) (*types.Grant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetActiveGrant")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(grantColumns...).
		From("grants").
		Where(sq.Eq{
			"user_id":        userID,
			"tenant_id":      tenantID,
			"application_id": applicationID,
			"active":         true,
		}).
		QueryRowContext(ctx)

	g, err := scanGrant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active grant: %w", err)
	}

	return g, nil
}

// RevokeGrant is a soft revoke: grants are never physically deleted.
func (s *Storage) RevokeGrant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RevokeGrant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("grants").
		Set("active", false).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to revoke grant: %w", err)
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

func (s *Storage) HasActiveGrantBySlug(ctx context.Context, userID, tenantID int64, slug string, now time.Time) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.HasActiveGrantBySlug")
	defer span.End()

	row := s.db.Statement(ctx).
		Select("1").
		From("grants g").
		Join("applications a ON a.id = g.application_id").
		Where(sq.Eq{"g.user_id": userID, "g.tenant_id": tenantID, "a.slug": slug, "g.active": true}).
		Where(sq.Or{sq.Eq{"g.expires_at": nil}, sq.Gt{"g.expires_at": now}}).
		Limit(1).
		QueryRowContext(ctx)

	var one int
	if err := row.Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check grant existence: %w", err)
	}

	return true, nil
}

func (s *Storage) ListGrantsByUser(ctx context.Context, userID, tenantID int64) ([]*types.Grant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListGrantsByUser")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(grantColumns...).
		From("grants").
		Where(sq.Eq{"user_id": userID, "tenant_id": tenantID}).
		OrderBy("granted_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list grants: %w", err)
	}
	defer rows.Close()

	var grants []*types.Grant
	for rows.Next() {
		g, err := scanGrant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grant: %w", err)
		}
		grants = append(grants, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return grants, nil
}
