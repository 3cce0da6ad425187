// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/andremelo97/simplia-paas-sub002/internal/logging"
	"github.com/andremelo97/simplia-paas-sub002/internal/monitoring"
	"github.com/andremelo97/simplia-paas-sub002/internal/storage"
	"github.com/andremelo97/simplia-paas-sub002/internal/tracing"
	"github.com/andremelo97/simplia-paas-sub002/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_access.go -source=./interfaces.go

const (
	userID   = int64(7)
	tenantID = int64(42)
	adminID  = int64(99)
	appID    = "0191e1a0-0000-7000-8000-000000000001"
	appSlug  = "tq"
)

type serviceMocks struct {
	storage *MockStorageInterface
	pricing *MockPricingResolverInterface
	audit   *MockAuditLogInterface
	tx      *MockTxRunnerInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, serviceMocks) {
	m := serviceMocks{
		storage: NewMockStorageInterface(ctrl),
		pricing: NewMockPricingResolverInterface(ctrl),
		audit:   NewMockAuditLogInterface(ctrl),
		tx:      NewMockTxRunnerInterface(ctrl),
	}
	s := NewService(m.storage, m.pricing, m.audit, m.tx,
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return s, m
}

func passthroughTx(mockTx *MockTxRunnerInterface) {
	mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func validRequest() *GrantRequest {
	return &GrantRequest{
		UserID:        userID,
		TenantID:      tenantID,
		ApplicationID: appID,
		RoleInApp:     types.RoleManager,
		UserType:      "clinic",
		GrantedBy:     adminID,
	}
}

func usableLicense() *types.License {
	seats := 10
	return &types.License{
		ID:             "license-1",
		TenantID:       tenantID,
		ApplicationID:  appID,
		Status:         types.LicenseStatusActive,
		Active:         true,
		SeatsPurchased: &seats,
		SeatsUsed:      3,
	}
}

func currentPrice() *types.PricingEntry {
	return &types.PricingEntry{
		ID:            "entry-1",
		ApplicationID: appID,
		UserType:      "clinic",
		PriceCents:    9900,
		Currency:      "USD",
		BillingCycle:  types.BillingCycleMonthly,
	}
}

func TestService_GrantAccess(t *testing.T) {
	app := &types.Application{ID: appID, Slug: appSlug, Name: "Transcription"}

	t.Run("success freezes price snapshot and increments seat", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)

		m.storage.EXPECT().GetApplicationByID(gomock.Any(), appID).Return(app, nil)
		m.storage.EXPECT().GetLicense(gomock.Any(), tenantID, appID).Return(usableLicense(), nil)
		m.storage.EXPECT().GetActiveGrant(gomock.Any(), userID, tenantID, appID).Return(nil, storage.ErrNotFound)
		m.pricing.EXPECT().GetCurrentPrice(gomock.Any(), appID, "clinic").Return(currentPrice(), nil)
		passthroughTx(m.tx)
		m.storage.EXPECT().CreateGrant(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, g *types.Grant) (*types.Grant, error) {
				assert.Equal(t, int64(9900), g.PriceCents)
				assert.Equal(t, "USD", g.Currency)
				assert.Equal(t, types.BillingCycleMonthly, g.BillingCycle)
				assert.Equal(t, "clinic", g.UserType)
				assert.Equal(t, adminID, g.GrantedBy)
				assert.True(t, g.Active)
				g.ID = "grant-1"
				return g, nil
			})
		m.storage.EXPECT().AdjustSeats(gomock.Any(), tenantID, appID, 1).Return(nil)
		m.audit.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e *types.AccessLogEntry) (*types.AccessLogEntry, error) {
				assert.Equal(t, types.DecisionGranted, e.Decision)
				assert.Equal(t, "access granted", e.Reason)
				return e, nil
			})

		grant, err := s.GrantAccess(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, "grant-1", grant.ID)
	})

	t.Run("invalid role rejected before storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, _ := newTestService(ctrl)

		req := validRequest()
		req.RoleInApp = "superuser"

		_, err := s.GrantAccess(context.Background(), req)
		engineErr, ok := types.AsEngineError(err)
		require.True(t, ok)
		assert.Equal(t, types.CodeInvalidRoleInApp, engineErr.Code)
	})

	t.Run("unknown application", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		m.storage.EXPECT().GetApplicationByID(gomock.Any(), appID).Return(nil, storage.ErrNotFound)

		_, err := s.GrantAccess(context.Background(), validRequest())
		engineErr, ok := types.AsEngineError(err)
		require.True(t, ok)
		assert.Equal(t, types.CodeNotFound, engineErr.Code)
	})

	t.Run("unusable license blocks grant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		suspended := usableLicense()
		suspended.Status = types.LicenseStatusSuspended
		suspended.Active = false

		s, m := newTestService(ctrl)
		m.storage.EXPECT().GetApplicationByID(gomock.Any(), appID).Return(app, nil)
		m.storage.EXPECT().GetLicense(gomock.Any(), tenantID, appID).Return(suspended, nil)

		_, err := s.GrantAccess(context.Background(), validRequest())
		engineErr, ok := types.AsEngineError(err)
		require.True(t, ok)
		assert.Equal(t, types.CodeNotFound, engineErr.Code)
	})

	t.Run("duplicate active grant rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		m.storage.EXPECT().GetApplicationByID(gomock.Any(), appID).Return(app, nil)
		m.storage.EXPECT().GetLicense(gomock.Any(), tenantID, appID).Return(usableLicense(), nil)
		m.storage.EXPECT().GetActiveGrant(gomock.Any(), userID, tenantID, appID).Return(&types.Grant{ID: "grant-existing"}, nil)

		_, err := s.GrantAccess(context.Background(), validRequest())
		engineErr, ok := types.AsEngineError(err)
		require.True(t, ok)
		assert.Equal(t, types.CodeDuplicateGrant, engineErr.Code)
	})

	t.Run("no pricing means no grant and no seat change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		m.storage.EXPECT().GetApplicationByID(gomock.Any(), appID).Return(app, nil)
		m.storage.EXPECT().GetLicense(gomock.Any(), tenantID, appID).Return(usableLicense(), nil)
		m.storage.EXPECT().GetActiveGrant(gomock.Any(), userID, tenantID, appID).Return(nil, storage.ErrNotFound)
		m.pricing.EXPECT().GetCurrentPrice(gomock.Any(), appID, "clinic").Return(nil, types.NewPricingNotConfiguredError(appID, "clinic"))

		_, err := s.GrantAccess(context.Background(), validRequest())
		engineErr, ok := types.AsEngineError(err)
		require.True(t, ok)
		assert.Equal(t, types.CodePricingNotConfigured, engineErr.Code)
	})

	t.Run("exhausted seat pool still grants", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		full := usableLicense()
		full.SeatsUsed = *full.SeatsPurchased

		s, m := newTestService(ctrl)
		m.storage.EXPECT().GetApplicationByID(gomock.Any(), appID).Return(app, nil)
		m.storage.EXPECT().GetLicense(gomock.Any(), tenantID, appID).Return(full, nil)
		m.storage.EXPECT().GetActiveGrant(gomock.Any(), userID, tenantID, appID).Return(nil, storage.ErrNotFound)
		m.pricing.EXPECT().GetCurrentPrice(gomock.Any(), appID, "clinic").Return(currentPrice(), nil)
		passthroughTx(m.tx)
		m.storage.EXPECT().CreateGrant(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, g *types.Grant) (*types.Grant, error) {
				g.ID = "grant-1"
				return g, nil
			})
		m.storage.EXPECT().AdjustSeats(gomock.Any(), tenantID, appID, 1).Return(nil)
		m.audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := s.GrantAccess(context.Background(), validRequest())
		require.NoError(t, err)
	})

	t.Run("racing duplicate hits partial unique index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		m.storage.EXPECT().GetApplicationByID(gomock.Any(), appID).Return(app, nil)
		m.storage.EXPECT().GetLicense(gomock.Any(), tenantID, appID).Return(usableLicense(), nil)
		m.storage.EXPECT().GetActiveGrant(gomock.Any(), userID, tenantID, appID).Return(nil, storage.ErrNotFound)
		m.pricing.EXPECT().GetCurrentPrice(gomock.Any(), appID, "clinic").Return(currentPrice(), nil)
		passthroughTx(m.tx)
		m.storage.EXPECT().CreateGrant(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)

		_, err := s.GrantAccess(context.Background(), validRequest())
		engineErr, ok := types.AsEngineError(err)
		require.True(t, ok)
		assert.Equal(t, types.CodeDuplicateGrant, engineErr.Code)
	})
}

func TestService_Revoke(t *testing.T) {
	activeGrant := &types.Grant{
		ID:            "grant-1",
		UserID:        userID,
		TenantID:      tenantID,
		ApplicationID: appID,
		Active:        true,
	}

	t.Run("success releases seat and records audit entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		m.storage.EXPECT().GetGrantByID(gomock.Any(), "grant-1").Return(activeGrant, nil)
		passthroughTx(m.tx)
		m.storage.EXPECT().RevokeGrant(gomock.Any(), "grant-1").Return(nil)
		m.storage.EXPECT().AdjustSeats(gomock.Any(), tenantID, appID, -1).Return(nil)
		m.audit.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e *types.AccessLogEntry) (*types.AccessLogEntry, error) {
				assert.Equal(t, "access revoked by 99", e.Reason)
				return e, nil
			})

		require.NoError(t, s.Revoke(context.Background(), "grant-1", adminID))
	})

	t.Run("already revoked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		revoked := *activeGrant
		revoked.Active = false

		s, m := newTestService(ctrl)
		m.storage.EXPECT().GetGrantByID(gomock.Any(), "grant-1").Return(&revoked, nil)

		err := s.Revoke(context.Background(), "grant-1", adminID)
		engineErr, ok := types.AsEngineError(err)
		require.True(t, ok)
		assert.Equal(t, types.CodeValidation, engineErr.Code)
	})

	t.Run("unknown grant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		m.storage.EXPECT().GetGrantByID(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)

		err := s.Revoke(context.Background(), "missing", adminID)
		engineErr, ok := types.AsEngineError(err)
		require.True(t, ok)
		assert.Equal(t, types.CodeNotFound, engineErr.Code)
	})
}

func TestService_HasAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.storage.EXPECT().HasActiveGrantBySlug(gomock.Any(), userID, tenantID, appSlug, gomock.Any()).Return(true, nil)

	ok, err := s.HasAccess(context.Background(), userID, tenantID, appSlug)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestService_ActiveGrant(t *testing.T) {
	past := time.Now().Add(-time.Hour)

	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
		expectRole string
	}{
		{
			name: "active grant returned with its role",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetActiveGrant(gomock.Any(), userID, tenantID, appID).
					Return(&types.Grant{ID: "grant-1", RoleInApp: types.RoleAdmin, Active: true}, nil)
			},
			expectRole: types.RoleAdmin,
		},
		{
			name: "expired grant reported as not found",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetActiveGrant(gomock.Any(), userID, tenantID, appID).
					Return(&types.Grant{ID: "grant-1", RoleInApp: types.RoleUser, Active: true, ExpiresAt: &past}, nil)
			},
		},
		{
			name: "no grant at all",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetActiveGrant(gomock.Any(), userID, tenantID, appID).
					Return(nil, storage.ErrNotFound)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			tc.setupMocks(m.storage)

			grant, err := s.ActiveGrant(context.Background(), userID, tenantID, appID)

			if tc.expectRole == "" {
				engineErr, ok := types.AsEngineError(err)
				require.True(t, ok)
				assert.Equal(t, types.CodeNotFound, engineErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectRole, grant.RoleInApp)
		})
	}
}

func TestService_GrantAccess_SnapshotSurvivesPriceChange(t *testing.T) {
	// The snapshot is copied at grant time; a later ledger change must not be
	// reflected in the stored grant.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := &types.Application{ID: appID, Slug: appSlug}
	price := currentPrice()

	s, m := newTestService(ctrl)
	m.storage.EXPECT().GetApplicationByID(gomock.Any(), appID).Return(app, nil)
	m.storage.EXPECT().GetLicense(gomock.Any(), tenantID, appID).Return(usableLicense(), nil)
	m.storage.EXPECT().GetActiveGrant(gomock.Any(), userID, tenantID, appID).Return(nil, storage.ErrNotFound)
	m.pricing.EXPECT().GetCurrentPrice(gomock.Any(), appID, "clinic").Return(price, nil)
	passthroughTx(m.tx)

	var stored *types.Grant
	m.storage.EXPECT().CreateGrant(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, g *types.Grant) (*types.Grant, error) {
			g.ID = "grant-1"
			stored = g
			return g, nil
		})
	m.storage.EXPECT().AdjustSeats(gomock.Any(), tenantID, appID, 1).Return(nil)
	m.audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := s.GrantAccess(context.Background(), validRequest())
	require.NoError(t, err)

	price.PriceCents = 19900
	assert.Equal(t, int64(9900), stored.PriceCents)
}
