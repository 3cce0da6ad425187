// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"

	"github.com/andremelo97/simplia-paas-sub002/internal/types"
)

// LicenseCacheInterface is a read-through cache for license lookups on the
// authorization hot path. A cache miss returns (nil, false, nil); errors are
// reserved for backend failures and callers are expected to fall through to
// storage on any error.
type LicenseCacheInterface interface {
	Get(ctx context.Context, tenantID int64, slug string) (*types.License, bool, error)
	Set(ctx context.Context, tenantID int64, slug string, license *types.License) error
	Invalidate(ctx context.Context, tenantID int64, slug string) error
}
