// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/andremelo97/simplia-paas-sub002/internal/logging"
	"github.com/andremelo97/simplia-paas-sub002/internal/monitoring"
	"github.com/andremelo97/simplia-paas-sub002/internal/tracing"
)

// Claims is the token payload issued by the identity provider.
type Claims struct {
	TenantID    int64    `json:"tenant_id"`
	TenantName  string   `json:"tenant_name"`
	AllowedApps []string `json:"allowed_apps"`
	Role        string   `json:"role"`
	jwt.RegisteredClaims
}

type Middleware struct {
	signingKey []byte

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(signingKey string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		signingKey: []byte(signingKey),
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

// HTTPMiddleware resolves the caller identity from a bearer token and injects
// it into the request context. It never rejects: missing or invalid identity
// is enforced (and audited) by the authorization gate, not here.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		token, found := bearerToken(r.Header)
		if !found {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		id, err := m.parse(token)
		if err != nil {
			m.logger.Debugf("identity token rejected: %v", err)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(ctx, id)))
	})
}

func (m *Middleware) parse(token string) (*Identity, error) {
	claims := new(Claims)
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.signingKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	subject, err := claims.RegisteredClaims.GetSubject()
	if err != nil {
		return nil, err
	}

	uid, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid subject claim: %w", err)
	}

	return &Identity{
		UserID:      uid,
		TenantID:    claims.TenantID,
		TenantName:  claims.TenantName,
		AllowedApps: claims.AllowedApps,
		Role:        claims.Role,
	}, nil
}

func bearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}
