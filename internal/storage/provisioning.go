// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) IsProvisioned(ctx context.Context, tenantID int64, applicationID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.IsProvisioned")
	defer span.End()

	row := s.db.Statement(ctx).
		Select("1").
		From("tenant_provisioning").
		Where(sq.Eq{"tenant_id": tenantID, "application_id": applicationID}).
		QueryRowContext(ctx)

	var one int
	if err := row.Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check provisioning state: %w", err)
	}

	return true, nil
}

// MarkProvisioned is idempotent: a concurrent insert for the same pair is not
// an error.
func (s *Storage) MarkProvisioned(ctx context.Context, tenantID int64, applicationID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkProvisioned")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("tenant_provisioning").
		Columns("tenant_id", "application_id", "provisioned_at").
		Values(tenantID, applicationID, time.Now().UTC()).
		Suffix("ON CONFLICT (tenant_id, application_id) DO NOTHING").
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark tenant as provisioned: %w", err)
	}

	return nil
}
