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

var pricingEntryColumns = []string{
	"id", "application_id", "user_type", "price_cents", "currency",
	"billing_cycle", "valid_from", "valid_to", "active", "created_at",
}

func scanPricingEntry(row sq.RowScanner) (*types.PricingEntry, error) {
	var e types.PricingEntry
	err := row.Scan(
		&e.ID, &e.ApplicationID, &e.UserType, &e.PriceCents, &e.Currency,
		&e.BillingCycle, &e.ValidFrom, &e.ValidTo, &e.Active, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Storage) CreatePricingEntry(ctx context.Context, e *types.PricingEntry) (*types.PricingEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePricingEntry")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pricing entry ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("pricing_entries").
		Columns("id", "application_id", "user_type", "price_cents", "currency",
			"billing_cycle", "valid_from", "valid_to", "active").
		Values(id.String(), e.ApplicationID, e.UserType, e.PriceCents, e.Currency,
			e.BillingCycle, e.ValidFrom, e.ValidTo, e.Active).
		Suffix("RETURNING " + columnList(pricingEntryColumns)).
		QueryRowContext(ctx)

	created, err := scanPricingEntry(row)
	if err != nil {
		if IsExclusionViolation(err) {
			return nil, ErrExclusionViolation
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert pricing entry: %w", err)
	}

	return created, nil
}

func (s *Storage) GetPricingEntryByID(ctx context.Context, id string) (*types.PricingEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPricingEntryByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(pricingEntryColumns...).
		From("pricing_entries").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	e, err := scanPricingEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pricing entry: %w", err)
	}

	return e, nil
}

func (s *Storage) UpdatePricingEntry(ctx context.Context, id string, u types.PricingEntryUpdate) (*types.PricingEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdatePricingEntry")
	defer span.End()

	updateMap := make(map[string]interface{})
	if u.PriceCents != nil {
		updateMap["price_cents"] = *u.PriceCents
	}
	if u.ValidFrom != nil {
		updateMap["valid_from"] = *u.ValidFrom
	}
	if u.ClearValidTo {
		updateMap["valid_to"] = nil
	} else if u.ValidTo != nil {
		updateMap["valid_to"] = *u.ValidTo
	}
	if u.Active != nil {
		updateMap["active"] = *u.Active
	}

	if len(updateMap) == 0 {
		return s.GetPricingEntryByID(ctx, id)
	}

	row := s.db.Statement(ctx).
		Update("pricing_entries").
		SetMap(updateMap).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList(pricingEntryColumns)).
		QueryRowContext(ctx)

	e, err := scanPricingEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if IsExclusionViolation(err) {
			return nil, ErrExclusionViolation
		}
		return nil, fmt.Errorf("failed to update pricing entry: %w", err)
	}

	return e, nil
}

func (s *Storage) ListPricingEntries(ctx context.Context, applicationID, userType string, activeOnly bool) ([]*types.PricingEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPricingEntries")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(pricingEntryColumns...).
		From("pricing_entries").
		Where(sq.Eq{"application_id": applicationID, "user_type": userType}).
		OrderBy("valid_from DESC")

	if activeOnly {
		query = query.Where(sq.Eq{"active": true})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pricing entries: %w", err)
	}
	defer rows.Close()

	var entries []*types.PricingEntry
	for rows.Next() {
		e, err := scanPricingEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pricing entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}

// GetPricingEntryAt returns the active entry whose half-open validity range
// contains the given instant.
func (s *Storage) GetPricingEntryAt(ctx context.Context, applicationID, userType string, at time.Time) (*types.PricingEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPricingEntryAt")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(pricingEntryColumns...).
		From("pricing_entries").
		Where(sq.Eq{"application_id": applicationID, "user_type": userType, "active": true}).
		Where(sq.LtOrEq{"valid_from": at}).
		Where(sq.Or{sq.Eq{"valid_to": nil}, sq.Gt{"valid_to": at}}).
		OrderBy("valid_from DESC").
		Limit(1).
		QueryRowContext(ctx)

	e, err := scanPricingEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pricing entry at instant: %w", err)
	}

	return e, nil
}
