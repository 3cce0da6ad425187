// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/andremelo97/simplia-paas-sub002/internal/types"
)

const applicationColumns = "id, slug, name, status, requires_provisioning, created_at"

func (s *Storage) CreateApplication(ctx context.Context, app *types.Application) (*types.Application, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateApplication")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate application ID: %w", err)
	}

	var created types.Application
	err = s.db.Statement(ctx).
		Insert("applications").
		Columns("id", "slug", "name", "status", "requires_provisioning").
		Values(id.String(), app.Slug, app.Name, app.Status, app.RequiresProvisioning).
		Suffix("RETURNING " + applicationColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Slug, &created.Name, &created.Status, &created.RequiresProvisioning, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert application: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetApplicationByID(ctx context.Context, id string) (*types.Application, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetApplicationByID")
	defer span.End()

	return s.getApplication(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetApplicationBySlug(ctx context.Context, slug string) (*types.Application, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetApplicationBySlug")
	defer span.End()

	return s.getApplication(ctx, sq.Eq{"slug": slug})
}

func (s *Storage) getApplication(ctx context.Context, where sq.Eq) (*types.Application, error) {
	var app types.Application
	err := s.db.Statement(ctx).
		Select("id", "slug", "name", "status", "requires_provisioning", "created_at").
		From("applications").
		Where(where).
		QueryRowContext(ctx).
		Scan(&app.ID, &app.Slug, &app.Name, &app.Status, &app.RequiresProvisioning, &app.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	return &app, nil
}

func (s *Storage) ListApplications(ctx context.Context) ([]*types.Application, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListApplications")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "slug", "name", "status", "requires_provisioning", "created_at").
		From("applications").
		OrderBy("slug").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []*types.Application
	for rows.Next() {
		var app types.Application
		if err := rows.Scan(&app.ID, &app.Slug, &app.Name, &app.Status, &app.RequiresProvisioning, &app.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, &app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return apps, nil
}

func (s *Storage) SetApplicationStatus(ctx context.Context, id, status string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetApplicationStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("applications").
		Set("status", status).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
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
