// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package gate

//go:generate mockgen -build_flags=--mod=mod -package gate -destination ./mock_gate.go -source=./interfaces.go

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/andremelo97/simplia-paas-sub002/internal/identity"
	"github.com/andremelo97/simplia-paas-sub002/internal/logging"
	"github.com/andremelo97/simplia-paas-sub002/internal/monitoring"
	"github.com/andremelo97/simplia-paas-sub002/internal/storage"
	"github.com/andremelo97/simplia-paas-sub002/internal/tracing"
	"github.com/andremelo97/simplia-paas-sub002/internal/types"
)

const (
	testUserID   = int64(7)
	testTenantID = int64(42)
	testAppID    = "01926ec8-5f3b-7c91-b2d4-3f8a61c0e977"
	testAppSlug  = "tq"
)

type gateMocks struct {
	apps     *MockApplicationResolverInterface
	licenses *MockLicenseCheckerInterface
	access   *MockAccessCheckerInterface
	audit    *MockAuditLogInterface
}

func newTestGate(ctrl *gomock.Controller) (*Gate, *gateMocks) {
	m := &gateMocks{
		apps:     NewMockApplicationResolverInterface(ctrl),
		licenses: NewMockLicenseCheckerInterface(ctrl),
		access:   NewMockAccessCheckerInterface(ctrl),
		audit:    NewMockAuditLogInterface(ctrl),
	}
	g := NewGate(
		m.apps,
		m.licenses,
		m.access,
		m.audit,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return g, m
}

func testApplication() *types.Application {
	return &types.Application{
		ID:     testAppID,
		Slug:   testAppSlug,
		Name:   "Transcription Quote",
		Status: types.AppStatusActive,
	}
}

func usableLicense() *types.License {
	seats := 10
	return &types.License{
		ID:             "01926ec8-bbbb-7c91-b2d4-3f8a61c0e977",
		TenantID:       testTenantID,
		ApplicationID:  testAppID,
		Status:         types.LicenseStatusActive,
		SeatsPurchased: &seats,
		SeatsUsed:      4,
		Active:         true,
	}
}

func activeGrant(role string) *types.Grant {
	return &types.Grant{
		ID:            "01926ec8-cccc-7c91-b2d4-3f8a61c0e977",
		UserID:        testUserID,
		TenantID:      testTenantID,
		ApplicationID: testAppID,
		RoleInApp:     role,
		Active:        true,
	}
}

func testIdentity(apps ...string) *identity.Identity {
	return &identity.Identity{
		UserID:      testUserID,
		TenantID:    testTenantID,
		TenantName:  "Clinic A",
		AllowedApps: apps,
		Role:        types.RoleUser,
	}
}

// expectAudit captures the single access log row written by an evaluation.
func expectAudit(audit *MockAuditLogInterface, captured **types.AccessLogEntry) {
	audit.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *types.AccessLogEntry) (*types.AccessLogEntry, error) {
			*captured = e
			return e, nil
		})
}

func serve(g *Gate, id *identity.Identity, opts ...Option) (*httptest.ResponseRecorder, *DecisionContext) {
	var decision *DecisionContext
	handler := g.RequireApp(testAppSlug, opts...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision, _ = DecisionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/apps/"+testAppSlug, nil)
	req.RemoteAddr = "203.0.113.9:51412"
	req.Header.Set("User-Agent", "curl/8.5.0")
	if id != nil {
		req = req.WithContext(identity.WithIdentity(req.Context(), id))
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, decision
}

func TestGate_GrantsViaClaim(t *testing.T) {
	ctrl := gomock.NewController(t)
	g, m := newTestGate(ctrl)

	m.apps.EXPECT().GetApplicationBySlug(gomock.Any(), testAppSlug).Return(testApplication(), nil)
	m.licenses.EXPECT().CheckLicense(gomock.Any(), testTenantID, testAppSlug).Return(usableLicense(), nil)

	var logged *types.AccessLogEntry
	expectAudit(m.audit, &logged)

	rec, decision := serve(g, testIdentity(testAppSlug))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, decision)
	assert.Equal(t, testAppID, decision.ApplicationID)
	assert.Equal(t, "Transcription Quote", decision.ApplicationName)
	assert.Equal(t, SourceClaim, decision.Source)
	assert.Equal(t, types.RoleUser, decision.EffectiveRole)
	require.NotNil(t, decision.Seats.Available)
	assert.Equal(t, 6, *decision.Seats.Available)

	require.NotNil(t, logged)
	assert.Equal(t, types.DecisionGranted, logged.Decision)
	assert.Equal(t, testUserID, logged.UserID)
	assert.Equal(t, testTenantID, logged.TenantID)
	require.NotNil(t, logged.ApplicationID)
	assert.Equal(t, testAppID, *logged.ApplicationID)
	assert.Equal(t, "203.0.113.9", logged.IPAddress)
	assert.Equal(t, "/apps/"+testAppSlug, logged.Endpoint)
}

func TestGate_GrantsViaStoreFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	g, m := newTestGate(ctrl)

	m.apps.EXPECT().GetApplicationBySlug(gomock.Any(), testAppSlug).Return(testApplication(), nil)
	m.licenses.EXPECT().CheckLicense(gomock.Any(), testTenantID, testAppSlug).Return(usableLicense(), nil)
	m.access.EXPECT().ActiveGrant(gomock.Any(), testUserID, testTenantID, testAppID).Return(activeGrant(types.RoleManager), nil)

	var logged *types.AccessLogEntry
	expectAudit(m.audit, &logged)

	rec, decision := serve(g, testIdentity("other-app"))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, decision)
	assert.Equal(t, SourceStore, decision.Source)
	assert.Equal(t, types.RoleManager, decision.EffectiveRole)
	require.NotNil(t, logged)
	assert.Equal(t, types.DecisionGranted, logged.Decision)
	require.NotNil(t, logged.ApplicationID)
	assert.Equal(t, testAppID, *logged.ApplicationID)
}

// The stored grant's role is authoritative on the store path: a grant that
// says admin opens an admin route even when the token role says user.
func TestGate_StoreGrantRoleSatisfiesRequirement(t *testing.T) {
	ctrl := gomock.NewController(t)
	g, m := newTestGate(ctrl)

	m.apps.EXPECT().GetApplicationBySlug(gomock.Any(), testAppSlug).Return(testApplication(), nil)
	m.licenses.EXPECT().CheckLicense(gomock.Any(), testTenantID, testAppSlug).Return(usableLicense(), nil)
	m.access.EXPECT().ActiveGrant(gomock.Any(), testUserID, testTenantID, testAppID).Return(activeGrant(types.RoleAdmin), nil)

	var logged *types.AccessLogEntry
	expectAudit(m.audit, &logged)

	rec, decision := serve(g, testIdentity("other-app"), WithRequiredRole(types.RoleAdmin))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, decision)
	assert.Equal(t, types.RoleAdmin, decision.EffectiveRole)
	require.NotNil(t, logged)
	assert.Equal(t, types.DecisionGranted, logged.Decision)
}

func TestGate_Denials(t *testing.T) {
	tests := []struct {
		name         string
		id           *identity.Identity
		opts         []Option
		setupMocks   func(m *gateMocks)
		expectStatus int
		expectReason string
		expectCode   string
		expectAudit  bool
		expectAppID  bool
	}{
		{
			name:         "missing identity",
			id:           nil,
			setupMocks:   func(m *gateMocks) {},
			expectStatus: http.StatusUnauthorized,
			expectReason: ReasonAuthenticationRequired,
			expectCode:   "AUTHENTICATION_REQUIRED",
		},
		{
			name: "missing tenant context",
			id: &identity.Identity{
				UserID: testUserID,
				Role:   types.RoleUser,
			},
			setupMocks:   func(m *gateMocks) {},
			expectStatus: http.StatusBadRequest,
			expectReason: ReasonTenantContextRequired,
			expectCode:   "TENANT_CONTEXT_REQUIRED",
			expectAudit:  true,
		},
		{
			name: "unknown application",
			id:   testIdentity(testAppSlug),
			setupMocks: func(m *gateMocks) {
				m.apps.EXPECT().
					GetApplicationBySlug(gomock.Any(), testAppSlug).
					Return(nil, storage.ErrNotFound)
			},
			expectStatus: http.StatusNotFound,
			expectReason: ReasonUnknownApplication,
			expectCode:   "UNKNOWN_APPLICATION",
			expectAudit:  true,
		},
		{
			name: "no tenant license",
			id:   testIdentity(testAppSlug),
			setupMocks: func(m *gateMocks) {
				m.apps.EXPECT().
					GetApplicationBySlug(gomock.Any(), testAppSlug).
					Return(testApplication(), nil)
				m.licenses.EXPECT().
					CheckLicense(gomock.Any(), testTenantID, testAppSlug).
					Return(nil, types.NewNotFoundError("active license", testAppSlug))
			},
			expectStatus: http.StatusForbidden,
			expectReason: ReasonNoTenantLicense,
			expectCode:   "LICENSE_DENIED",
			expectAudit:  true,
			expectAppID:  true,
		},
		{
			name: "no user access",
			id:   testIdentity(),
			setupMocks: func(m *gateMocks) {
				m.apps.EXPECT().
					GetApplicationBySlug(gomock.Any(), testAppSlug).
					Return(testApplication(), nil)
				m.licenses.EXPECT().
					CheckLicense(gomock.Any(), testTenantID, testAppSlug).
					Return(usableLicense(), nil)
				m.access.EXPECT().
					ActiveGrant(gomock.Any(), testUserID, testTenantID, testAppID).
					Return(nil, types.NewNotFoundError("grant", "7/42/"+testAppID))
			},
			expectStatus: http.StatusForbidden,
			expectReason: ReasonNoUserAccess,
			expectCode:   "ACCESS_DENIED",
			expectAudit:  true,
			expectAppID:  true,
		},
		{
			name: "insufficient role",
			id:   testIdentity(testAppSlug),
			opts: []Option{WithRequiredRole(types.RoleAdmin)},
			setupMocks: func(m *gateMocks) {
				m.apps.EXPECT().
					GetApplicationBySlug(gomock.Any(), testAppSlug).
					Return(testApplication(), nil)
				m.licenses.EXPECT().
					CheckLicense(gomock.Any(), testTenantID, testAppSlug).
					Return(usableLicense(), nil)
			},
			expectStatus: http.StatusForbidden,
			expectReason: "role_insufficient_admin",
			expectCode:   "ROLE_INSUFFICIENT",
			expectAudit:  true,
			expectAppID:  true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			g, m := newTestGate(ctrl)
			tc.setupMocks(m)

			var logged *types.AccessLogEntry
			if tc.expectAudit {
				expectAudit(m.audit, &logged)
			}

			rec, decision := serve(g, tc.id, tc.opts...)

			assert.Equal(t, tc.expectStatus, rec.Code)
			assert.Nil(t, decision)
			assert.Contains(t, rec.Body.String(), tc.expectReason)
			assert.Contains(t, rec.Body.String(), tc.expectCode)

			if tc.expectAudit {
				require.NotNil(t, logged)
				assert.Equal(t, types.DecisionDenied, logged.Decision)
				assert.Equal(t, tc.expectReason, logged.Reason)
				if tc.expectAppID {
					require.NotNil(t, logged.ApplicationID)
					assert.Equal(t, testAppID, *logged.ApplicationID)
				} else {
					assert.Nil(t, logged.ApplicationID)
				}
			}
		})
	}
}

func TestGate_ManagerSatisfiesOperationsRequirement(t *testing.T) {
	ctrl := gomock.NewController(t)
	g, m := newTestGate(ctrl)

	m.apps.EXPECT().GetApplicationBySlug(gomock.Any(), testAppSlug).Return(testApplication(), nil)
	m.licenses.EXPECT().CheckLicense(gomock.Any(), testTenantID, testAppSlug).Return(usableLicense(), nil)

	var logged *types.AccessLogEntry
	expectAudit(m.audit, &logged)

	id := testIdentity(testAppSlug)
	id.Role = types.RoleManager

	rec, decision := serve(g, id, WithRequiredRole(types.RoleOperations))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, decision)
	assert.Equal(t, types.RoleManager, decision.EffectiveRole)
}

func TestGate_InfrastructureFailureDegradesTo500(t *testing.T) {
	ctrl := gomock.NewController(t)
	g, m := newTestGate(ctrl)

	m.apps.EXPECT().
		GetApplicationBySlug(gomock.Any(), testAppSlug).
		Return(nil, errors.New("connection reset"))

	var logged *types.AccessLogEntry
	expectAudit(m.audit, &logged)

	rec, decision := serve(g, testIdentity(testAppSlug))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Nil(t, decision)
	require.NotNil(t, logged)
	assert.Equal(t, types.DecisionDenied, logged.Decision)
	assert.Equal(t, ReasonAuthorizationError, logged.Reason)
}

func TestGate_AuditFailureDoesNotBlockRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	g, m := newTestGate(ctrl)

	m.apps.EXPECT().GetApplicationBySlug(gomock.Any(), testAppSlug).Return(testApplication(), nil)
	m.licenses.EXPECT().CheckLicense(gomock.Any(), testTenantID, testAppSlug).Return(usableLicense(), nil)
	m.audit.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset"))

	rec, decision := serve(g, testIdentity(testAppSlug))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, decision)
}

func TestRoleSatisfies(t *testing.T) {
	tests := []struct {
		effective string
		required  string
		expect    bool
	}{
		{types.RoleAdmin, types.RoleAdmin, true},
		{types.RoleAdmin, types.RoleUser, true},
		{types.RoleManager, types.RoleOperations, true},
		{types.RoleOperations, types.RoleManager, true},
		{types.RoleManager, types.RoleManager, true},
		{types.RoleUser, types.RoleUser, true},
		{types.RoleUser, types.RoleAdmin, false},
		{types.RoleManager, types.RoleAdmin, false},
		{types.RoleUser, types.RoleOperations, false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expect, roleSatisfies(tc.effective, tc.required),
			"effective=%s required=%s", tc.effective, tc.required)
	}
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "203.0.113.9:51412"
	assert.Equal(t, "203.0.113.9", clientIP(r))

	r.Header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.1")
	assert.Equal(t, "198.51.100.4", clientIP(r))

	r.Header.Set("X-Forwarded-For", "198.51.100.7")
	assert.Equal(t, "198.51.100.7", clientIP(r))
}
