// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/andremelo97/simplia-paas-sub002/internal/cache"
	"github.com/andremelo97/simplia-paas-sub002/internal/db"
	httptypes "github.com/andremelo97/simplia-paas-sub002/internal/http/types"
	"github.com/andremelo97/simplia-paas-sub002/internal/identity"
	"github.com/andremelo97/simplia-paas-sub002/internal/logging"
	"github.com/andremelo97/simplia-paas-sub002/internal/monitoring"
	"github.com/andremelo97/simplia-paas-sub002/internal/storage"
	"github.com/andremelo97/simplia-paas-sub002/internal/tracing"
	"github.com/andremelo97/simplia-paas-sub002/internal/types"
	"github.com/andremelo97/simplia-paas-sub002/pkg/access"
	"github.com/andremelo97/simplia-paas-sub002/pkg/audit"
	"github.com/andremelo97/simplia-paas-sub002/pkg/catalog"
	"github.com/andremelo97/simplia-paas-sub002/pkg/gate"
	"github.com/andremelo97/simplia-paas-sub002/pkg/license"
	"github.com/andremelo97/simplia-paas-sub002/pkg/metrics"
	"github.com/andremelo97/simplia-paas-sub002/pkg/pricing"
	"github.com/andremelo97/simplia-paas-sub002/pkg/status"
)

// Config carries the request-path settings the router needs beyond its
// dependencies.
type Config struct {
	JWTSigningKey    string
	ProvisionTimeout time.Duration
	AlertThreshold   int64
	ProtectedApps    []string
}

// NewRouter assembles the full HTTP surface: admin APIs for the catalog,
// pricing ledger, license registry, grant store and audit log, plus the
// gate-protected application routes.
func NewRouter(
	cfg Config,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	licenseCache cache.LicenseCacheInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		}),
		identity.NewMiddleware(cfg.JWTSigningKey, tracer, monitor, logger).HTTPMiddleware,
		db.TransactionMiddleware(dbClient, logger),
	)

	router.Use(middlewares...)

	catalogService := catalog.NewService(s, tracer, monitor, logger)
	pricingService := pricing.NewService(s, dbClient, tracer, monitor, logger)
	provisioner := license.NewRegistryProvisioner(s, tracer, logger)
	licenseService := license.NewService(s, provisioner, licenseCache, cfg.ProvisionTimeout, tracer, monitor, logger)
	auditService := audit.NewService(s, cfg.AlertThreshold, tracer, monitor, logger)
	accessService := access.NewService(s, pricingService, auditService, dbClient, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	catalog.NewAPI(catalogService, logger).RegisterEndpoints(router)
	pricing.NewAPI(pricingService, logger).RegisterEndpoints(router)
	license.NewAPI(licenseService, logger).RegisterEndpoints(router)
	access.NewAPI(accessService, logger).RegisterEndpoints(router)
	audit.NewAPI(auditService, logger).RegisterEndpoints(router)

	g := gate.NewGate(s, licenseService, accessService, auditService, tracer, monitor, logger)
	registerProtectedApps(router, g, cfg.ProtectedApps)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

// registerProtectedApps mounts one route group per application slug behind the
// gate. The entry endpoint echoes the evaluation outcome; the admin endpoint
// additionally demands the admin role.
func registerProtectedApps(router *chi.Mux, g *gate.Gate, slugs []string) {
	for _, slug := range slugs {
		entry := appEntry(slug)

		router.Group(func(r chi.Router) {
			r.Use(g.RequireApp(slug))
			r.Get("/apps/"+slug, entry)
		})

		router.Group(func(r chi.Router) {
			r.Use(g.RequireApp(slug, gate.WithRequiredRole(types.RoleAdmin)))
			r.Get("/apps/"+slug+"/admin", entry)
		})
	}
}

func appEntry(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, ok := gate.DecisionFromContext(r.Context())
		if !ok {
			// The gate always attaches a decision before the handler runs.
			httptypes.WriteJSON(w, http.StatusInternalServerError, httptypes.Response{
				Error: &httptypes.Error{
					Status:  http.StatusInternalServerError,
					Code:    "INTERNAL",
					Message: "missing authorization decision",
				},
			})
			return
		}

		httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{
			Data: map[string]interface{}{
				"application_id":   d.ApplicationID,
				"application_name": d.ApplicationName,
				"slug":             slug,
				"effective_role":   d.EffectiveRole,
				"source":           d.Source,
				"seats":            d.Seats,
			},
		})
	}
}
