// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

// Package gate enforces application access on protected routes. Every request
// passes four layers, each short-circuiting on failure: caller identity,
// tenant license, user grant and in-app role. Each evaluation appends exactly
// one row to the access log once a caller and tenant are known.
package gate

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	httptypes "github.com/andremelo97/simplia-paas-sub002/internal/http/types"
	"github.com/andremelo97/simplia-paas-sub002/internal/identity"
	"github.com/andremelo97/simplia-paas-sub002/internal/logging"
	"github.com/andremelo97/simplia-paas-sub002/internal/monitoring"
	"github.com/andremelo97/simplia-paas-sub002/internal/storage"
	"github.com/andremelo97/simplia-paas-sub002/internal/tracing"
	"github.com/andremelo97/simplia-paas-sub002/internal/types"
)

// Denial reasons recorded in the access log and returned to callers.
const (
	ReasonAuthenticationRequired = "authentication_required"
	ReasonTenantContextRequired  = "tenant_context_required"
	ReasonUnknownApplication     = "unknown_application"
	ReasonNoTenantLicense        = "no_tenant_license"
	ReasonNoUserAccess           = "no_user_access"
	ReasonAuthorizationError     = "authorization_error"

	roleInsufficientPrefix = "role_insufficient_"

	// Access decision sources. "claim" means the JWT allowed_apps claim
	// vouched for the grant; "store" means the grant store was consulted.
	SourceClaim = "claim"
	SourceStore = "store"
)

// DecisionContext is attached to the request context after a granted
// evaluation so downstream handlers can read the outcome without re-querying.
type DecisionContext struct {
	ApplicationID   string
	ApplicationName string
	Slug            string
	EffectiveRole   string
	Source          string
	License         *types.License
	Seats           types.SeatAvailability
}

type decisionContextKey struct{}

// WithDecision returns ctx carrying the evaluation outcome.
func WithDecision(ctx context.Context, d *DecisionContext) context.Context {
	return context.WithValue(ctx, decisionContextKey{}, d)
}

// DecisionFromContext extracts the evaluation outcome, if any.
func DecisionFromContext(ctx context.Context) (*DecisionContext, bool) {
	d, ok := ctx.Value(decisionContextKey{}).(*DecisionContext)
	return d, ok
}

type requirements struct {
	role string
}

// Option adjusts a single RequireApp factory call.
type Option func(*requirements)

// WithRequiredRole adds a minimum in-app role to the evaluation. Admin
// satisfies every requirement; manager and operations satisfy each other.
func WithRequiredRole(role string) Option {
	return func(r *requirements) {
		r.role = role
	}
}

type Gate struct {
	apps     ApplicationResolverInterface
	licenses LicenseCheckerInterface
	access   AccessCheckerInterface
	audit    AuditLogInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewGate(
	apps ApplicationResolverInterface,
	licenses LicenseCheckerInterface,
	access AccessCheckerInterface,
	audit AuditLogInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Gate {
	return &Gate{
		apps:     apps,
		licenses: licenses,
		access:   access,
		audit:    audit,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// denial is an evaluation outcome that stops the request.
type denial struct {
	status int
	reason string
}

// RequireApp returns middleware guarding one application's routes.
func (g *Gate) RequireApp(slug string, opts ...Option) func(http.Handler) http.Handler {
	req := requirements{}
	for _, opt := range opts {
		opt(&req)
	}
	if req.role != "" && !types.ValidRole(req.role) {
		panic(fmt.Sprintf("gate: unknown required role %q for app %q", req.role, slug))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := g.tracer.Start(r.Context(), "gate.Gate.RequireApp")
			defer span.End()
			r = r.WithContext(ctx)

			decision, app, denied, err := g.evaluate(ctx, r, slug, req)

			switch {
			case err != nil:
				g.logger.Errorf("authorization evaluation failed for app %q: %v", slug, err)
				g.conclude(ctx, r, slug, app, &denial{
					status: http.StatusInternalServerError,
					reason: ReasonAuthorizationError,
				})
				httptypes.WriteJSON(w, http.StatusInternalServerError, httptypes.Response{
					Error: &httptypes.Error{
						Status:  http.StatusInternalServerError,
						Code:    "INTERNAL",
						Message: "authorization check failed",
					},
				})
			case denied != nil:
				g.conclude(ctx, r, slug, app, denied)
				httptypes.WriteJSON(w, denied.status, httptypes.Response{
					Error: &httptypes.Error{
						Status:  denied.status,
						Code:    denialCode(denied.reason),
						Message: fmt.Sprintf("access to %q denied", slug),
						Details: map[string]interface{}{"reason": denied.reason},
					},
				})
			default:
				g.conclude(ctx, r, slug, app, nil)
				next.ServeHTTP(w, r.WithContext(WithDecision(ctx, decision)))
			}
		})
	}
}

// evaluate runs the four layers. The resolved application is returned on every
// path past layer 2 so the audit row can name it even on a denial. A non-nil
// denial is an expected rejection; an error is an infrastructure failure.
func (g *Gate) evaluate(ctx context.Context, r *http.Request, slug string, req requirements) (*DecisionContext, *types.Application, *denial, error) {
	// Layer 1: identity. No storage is touched before a caller and tenant
	// are established.
	id, ok := identity.FromContext(ctx)
	if !ok {
		return nil, nil, &denial{status: http.StatusUnauthorized, reason: ReasonAuthenticationRequired}, nil
	}
	if id.TenantID <= 0 {
		return nil, nil, &denial{status: http.StatusBadRequest, reason: ReasonTenantContextRequired}, nil
	}

	// Layer 2: application and tenant license.
	app, err := g.apps.GetApplicationBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, &denial{status: http.StatusNotFound, reason: ReasonUnknownApplication}, nil
		}
		return nil, nil, nil, fmt.Errorf("failed to resolve application: %w", err)
	}

	lic, err := g.licenses.CheckLicense(ctx, id.TenantID, slug)
	if err != nil {
		if engineErr, ok := types.AsEngineError(err); ok && engineErr.Code == types.CodeNotFound {
			return nil, app, &denial{status: http.StatusForbidden, reason: ReasonNoTenantLicense}, nil
		}
		return nil, app, nil, fmt.Errorf("failed to check license: %w", err)
	}

	// Layer 3: user grant. The allowed_apps claim short-circuits the store
	// lookup; tokens are short-lived so the claim is trusted as issued. On
	// the claim path the effective role comes from the token, on the store
	// path from the grant itself.
	source := SourceClaim
	effectiveRole := id.Role
	if !id.HasApp(slug) {
		source = SourceStore
		grant, err := g.access.ActiveGrant(ctx, id.UserID, id.TenantID, app.ID)
		if err != nil {
			if engineErr, ok := types.AsEngineError(err); ok && engineErr.Code == types.CodeNotFound {
				return nil, app, &denial{status: http.StatusForbidden, reason: ReasonNoUserAccess}, nil
			}
			return nil, app, nil, fmt.Errorf("failed to check grant: %w", err)
		}
		effectiveRole = grant.RoleInApp
	}

	// Layer 4: in-app role, only when the route demands one.
	if req.role != "" && !roleSatisfies(effectiveRole, req.role) {
		return nil, app, &denial{status: http.StatusForbidden, reason: roleInsufficientPrefix + req.role}, nil
	}

	return &DecisionContext{
		ApplicationID:   app.ID,
		ApplicationName: app.Name,
		Slug:            slug,
		EffectiveRole:   effectiveRole,
		Source:          source,
		License:         lic,
		Seats:           seatSnapshot(lic),
	}, app, nil, nil
}

// conclude records the evaluation outcome: one metric increment, one security
// log line and, when a caller is known, one access log row. Audit failures
// are logged and never surface to the caller.
func (g *Gate) conclude(ctx context.Context, r *http.Request, slug string, app *types.Application, denied *denial) {
	decision := types.DecisionGranted
	reason := "authorized"
	if denied != nil {
		decision = types.DecisionDenied
		reason = denied.reason
	}
	g.monitor.IncAuthorizationDecision(decision, reason)

	id, ok := identity.FromContext(ctx)
	if !ok {
		// Nothing to attribute the row to. The metric still counts it.
		return
	}

	if denied != nil {
		g.logger.Security().AccessDenied(id.UserID, id.TenantID, slug, reason)
	} else {
		g.logger.Security().AccessGranted(id.UserID, id.TenantID, slug, "gate")
	}

	entry := &types.AccessLogEntry{
		UserID:    id.UserID,
		TenantID:  id.TenantID,
		Decision:  decision,
		Reason:    reason,
		IPAddress: clientIP(r),
		UserAgent: r.UserAgent(),
		Endpoint:  r.URL.Path,
	}
	if app != nil {
		entry.ApplicationID = &app.ID
	}
	if _, err := g.audit.Create(ctx, entry); err != nil {
		g.logger.Errorf("failed to record authorization decision: %v", err)
	}
}

// denialCode maps a denial reason onto the envelope error code.
func denialCode(reason string) string {
	switch reason {
	case ReasonAuthenticationRequired:
		return "AUTHENTICATION_REQUIRED"
	case ReasonTenantContextRequired:
		return "TENANT_CONTEXT_REQUIRED"
	case ReasonUnknownApplication:
		return "UNKNOWN_APPLICATION"
	case ReasonNoTenantLicense:
		return "LICENSE_DENIED"
	case ReasonNoUserAccess:
		return "ACCESS_DENIED"
	}
	if strings.HasPrefix(reason, roleInsufficientPrefix) {
		return "ROLE_INSUFFICIENT"
	}
	return "ACCESS_DENIED"
}

// roleSatisfies compares the effective role against the requirement. Admin
// passes everything. Manager and operations are one tier and satisfy each
// other. Everything else is an exact match.
func roleSatisfies(effective, required string) bool {
	if effective == required || effective == types.RoleAdmin {
		return true
	}
	managerTier := func(role string) bool {
		return role == types.RoleManager || role == types.RoleOperations
	}
	return managerTier(effective) && managerTier(required)
}

func seatSnapshot(l *types.License) types.SeatAvailability {
	s := types.SeatAvailability{
		Purchased: l.SeatsPurchased,
		Used:      l.SeatsUsed,
	}
	if l.SeatsPurchased != nil {
		available := *l.SeatsPurchased - l.SeatsUsed
		if available < 0 {
			available = 0
		}
		s.Available = &available
	}
	return s
}

// clientIP prefers the first X-Forwarded-For hop, falling back to the socket
// peer address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first, _, found := strings.Cut(fwd, ","); found || first != "" {
			return strings.TrimSpace(first)
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
