// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

// Package catalog manages the application registry. Applications are
// referenced by pricing entries, licenses and grants; once created only the
// status may change.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/andremelo97/simplia-paas-sub002/internal/logging"
	"github.com/andremelo97/simplia-paas-sub002/internal/monitoring"
	"github.com/andremelo97/simplia-paas-sub002/internal/storage"
	"github.com/andremelo97/simplia-paas-sub002/internal/tracing"
	"github.com/andremelo97/simplia-paas-sub002/internal/types"
)

// slugPattern keeps slugs usable as URL path segments and cache key parts.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func validStatus(status string) bool {
	switch status {
	case types.AppStatusActive, types.AppStatusDeprecated, types.AppStatusTrial:
		return true
	}
	return false
}

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) CreateApplication(ctx context.Context, app *types.Application) (*types.Application, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.CreateApplication")
	defer span.End()

	if !slugPattern.MatchString(app.Slug) {
		return nil, types.NewValidationError(fmt.Sprintf("invalid application slug %q", app.Slug))
	}
	if app.Name == "" {
		return nil, types.NewValidationError("application name is required")
	}
	if app.Status == "" {
		app.Status = types.AppStatusActive
	}
	if !validStatus(app.Status) {
		return nil, types.NewValidationError(fmt.Sprintf("invalid application status %q", app.Status))
	}

	created, err := s.storage.CreateApplication(ctx, app)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, types.NewDuplicateApplicationError(app.Slug)
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	s.logger.Infof("registered application %q (%s)", created.Slug, created.ID)

	return created, nil
}

func (s *Service) GetApplication(ctx context.Context, id string) (*types.Application, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.GetApplication")
	defer span.End()

	app, err := s.storage.GetApplicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("application", id)
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	return app, nil
}

func (s *Service) GetApplicationBySlug(ctx context.Context, slug string) (*types.Application, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.GetApplicationBySlug")
	defer span.End()

	app, err := s.storage.GetApplicationBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("application", slug)
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	return app, nil
}

func (s *Service) ListApplications(ctx context.Context) ([]*types.Application, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.ListApplications")
	defer span.End()

	return s.storage.ListApplications(ctx)
}

func (s *Service) SetApplicationStatus(ctx context.Context, id, status string) (*types.Application, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.SetApplicationStatus")
	defer span.End()

	if !validStatus(status) {
		return nil, types.NewValidationError(fmt.Sprintf("invalid application status %q", status))
	}

	if err := s.storage.SetApplicationStatus(ctx, id, status); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("application", id)
		}
		return nil, fmt.Errorf("failed to set application status: %w", err)
	}

	return s.GetApplication(ctx, id)
}
