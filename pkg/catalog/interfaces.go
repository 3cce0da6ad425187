// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"context"

	"github.com/andremelo97/simplia-paas-sub002/internal/types"
)

type ServiceInterface interface {
	CreateApplication(ctx context.Context, app *types.Application) (*types.Application, error)
	GetApplication(ctx context.Context, id string) (*types.Application, error)
	GetApplicationBySlug(ctx context.Context, slug string) (*types.Application, error)
	ListApplications(ctx context.Context) ([]*types.Application, error)
	SetApplicationStatus(ctx context.Context, id, status string) (*types.Application, error)
}

type StorageInterface interface {
	CreateApplication(ctx context.Context, app *types.Application) (*types.Application, error)
	GetApplicationByID(ctx context.Context, id string) (*types.Application, error)
	GetApplicationBySlug(ctx context.Context, slug string) (*types.Application, error)
	ListApplications(ctx context.Context) ([]*types.Application, error)
	SetApplicationStatus(ctx context.Context, id, status string) error
}
