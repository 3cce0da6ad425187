// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"

	"github.com/andremelo97/simplia-paas-sub002/internal/types"
)

// NoopLicenseCache always misses. Used when Redis is not configured and in tests.
type NoopLicenseCache struct{}

func NewNoopLicenseCache() *NoopLicenseCache {
	return &NoopLicenseCache{}
}

func (n *NoopLicenseCache) Get(_ context.Context, _ int64, _ string) (*types.License, bool, error) {
	return nil, false, nil
}

func (n *NoopLicenseCache) Set(_ context.Context, _ int64, _ string, _ *types.License) error {
	return nil
}

func (n *NoopLicenseCache) Invalidate(_ context.Context, _ int64, _ string) error {
	return nil
}
