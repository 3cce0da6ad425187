// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andremelo97/simplia-paas-sub002/internal/logging"
	"github.com/andremelo97/simplia-paas-sub002/internal/monitoring"
	"github.com/andremelo97/simplia-paas-sub002/internal/tracing"
)

const testSigningKey = "test-signing-key"

func newTestMiddleware() *Middleware {
	return NewMiddleware(
		testSigningKey,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(subject string) Claims {
	return Claims{
		TenantID:    42,
		TenantName:  "Clinic A",
		AllowedApps: []string{"tq", "pm-burnout"},
		Role:        "manager",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestMiddleware_HTTPMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authorization  string
		expectIdentity bool
	}{
		{
			name:           "valid token resolves the identity",
			authorization:  "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSigningKey), validClaims("7")),
			expectIdentity: true,
		},
		{
			name:          "missing header passes through anonymously",
			authorization: "",
		},
		{
			name:          "non bearer scheme is ignored",
			authorization: "Basic dXNlcjpwYXNz",
		},
		{
			name:          "wrong signing key is rejected",
			authorization: "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other-key"), validClaims("7")),
		},
		{
			name: "expired token is rejected",
			authorization: "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSigningKey), Claims{
				TenantID: 42,
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   "7",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				},
			}),
		},
		{
			name:          "non numeric subject is rejected",
			authorization: "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSigningKey), validClaims("not-a-user-id")),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var resolved *Identity
			var found bool

			handler := newTestMiddleware().HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				resolved, found = FromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/apps/tq", nil)
			if tc.authorization != "" {
				req.Header.Set("Authorization", tc.authorization)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			// The middleware never blocks; enforcement happens downstream.
			assert.Equal(t, http.StatusOK, rec.Code)

			if !tc.expectIdentity {
				assert.False(t, found)
				return
			}
			require.True(t, found)
			assert.Equal(t, int64(7), resolved.UserID)
			assert.Equal(t, int64(42), resolved.TenantID)
			assert.Equal(t, "manager", resolved.Role)
			assert.True(t, resolved.HasApp("tq"))
			assert.False(t, resolved.HasApp("ghost"))
		})
	}
}

func TestMiddleware_RejectsUnexpectedSigningMethod(t *testing.T) {
	// Tokens signed with "none" or non-HMAC methods must never resolve.
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims("7")).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, parseErr := newTestMiddleware().parse(token)
	assert.Error(t, parseErr)
}
