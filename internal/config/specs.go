// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// JWTSigningKey verifies the bearer tokens carrying the identity fast path.
	JWTSigningKey string `envconfig:"jwt_signing_key" required:"true"`

	// RedisAddr enables the license check cache when set. Empty means no cache.
	RedisAddr       string        `envconfig:"redis_addr" default:""`
	RedisPassword   string        `envconfig:"redis_password" default:""`
	RedisDB         int           `envconfig:"redis_db" default:"0"`
	LicenseCacheTTL time.Duration `envconfig:"license_cache_ttl" default:"30s"`

	// ProvisionTimeout bounds the one-time schema provisioning call on first license grant.
	ProvisionTimeout time.Duration `envconfig:"provision_timeout" default:"60s"`

	// AlertThreshold is the repeated-failure count that raises a security alert.
	AlertThreshold int `envconfig:"alert_threshold" default:"3"`

	// ProtectedApps lists application slugs to mount behind the gate.
	ProtectedApps []string `envconfig:"protected_apps" default:"tq"`
}
