// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/andremelo97/simplia-paas-sub002/internal/logging"
	"github.com/andremelo97/simplia-paas-sub002/internal/tracing"
	"github.com/andremelo97/simplia-paas-sub002/internal/types"
)

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// LicenseCache caches license rows in Redis keyed per tenant and application
// slug. Entries expire after the configured TTL; writes to the license
// registry must invalidate explicitly for changes to be visible sooner.
type LicenseCache struct {
	client *redis.Client
	ttl    time.Duration

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewLicenseCache(cfg Config, tracer tracing.TracingInterface, logger logging.LoggerInterface) (*LicenseCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &LicenseCache{
		client: client,
		ttl:    cfg.TTL,
		tracer: tracer,
		logger: logger,
	}, nil
}

func licenseKey(tenantID int64, slug string) string {
	return fmt.Sprintf("license:%d:%s", tenantID, slug)
}

func (c *LicenseCache) Get(ctx context.Context, tenantID int64, slug string) (*types.License, bool, error) {
	ctx, span := c.tracer.Start(ctx, "cache.LicenseCache.Get")
	defer span.End()

	payload, err := c.client.Get(ctx, licenseKey(tenantID, slug)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read license cache: %w", err)
	}

	var license types.License
	if err := json.Unmarshal(payload, &license); err != nil {
		// Corrupt entries are dropped so the caller falls back to storage.
		c.logger.Warnf("dropping corrupt license cache entry for tenant %d app %s: %v", tenantID, slug, err)
		_ = c.client.Del(ctx, licenseKey(tenantID, slug)).Err()
		return nil, false, nil
	}

	return &license, true, nil
}

func (c *LicenseCache) Set(ctx context.Context, tenantID int64, slug string, license *types.License) error {
	ctx, span := c.tracer.Start(ctx, "cache.LicenseCache.Set")
	defer span.End()

	payload, err := json.Marshal(license)
	if err != nil {
		return fmt.Errorf("failed to marshal license: %w", err)
	}

	if err := c.client.Set(ctx, licenseKey(tenantID, slug), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write license cache: %w", err)
	}

	return nil
}

func (c *LicenseCache) Invalidate(ctx context.Context, tenantID int64, slug string) error {
	ctx, span := c.tracer.Start(ctx, "cache.LicenseCache.Invalidate")
	defer span.End()

	if err := c.client.Del(ctx, licenseKey(tenantID, slug)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate license cache: %w", err)
	}

	return nil
}

func (c *LicenseCache) Close() error {
	return c.client.Close()
}
