// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package license

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/andremelo97/simplia-paas-sub002/internal/cache"
	"github.com/andremelo97/simplia-paas-sub002/internal/logging"
	"github.com/andremelo97/simplia-paas-sub002/internal/monitoring"
	"github.com/andremelo97/simplia-paas-sub002/internal/storage"
	"github.com/andremelo97/simplia-paas-sub002/internal/tracing"
	"github.com/andremelo97/simplia-paas-sub002/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package license -destination ./mock_license.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package license -destination ./mock_cache.go -source=../../internal/cache/interfaces.go

const (
	tenantID = int64(42)
	appID    = "0191e1a0-0000-7000-8000-000000000001"
	appSlug  = "tq"
)

func newTestService(s StorageInterface, p SchemaProvisionerInterface, c cache.LicenseCacheInterface) *Service {
	if c == nil {
		c = cache.NewNoopLicenseCache()
	}
	return NewService(s, p, c, time.Minute, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestService_GrantLicense(t *testing.T) {
	app := &types.Application{ID: appID, Slug: appSlug, Name: "Transcription", RequiresProvisioning: true}
	plainApp := &types.Application{ID: appID, Slug: appSlug, Name: "Transcription"}

	testCases := []struct {
		name         string
		license      *types.License
		setupMocks   func(*MockStorageInterface, *MockSchemaProvisionerInterface)
		expectedCode string
	}{
		{
			name:    "success provisions tenant",
			license: &types.License{TenantID: tenantID, ApplicationID: appID},
			setupMocks: func(mockStorage *MockStorageInterface, mockProvisioner *MockSchemaProvisionerInterface) {
				mockStorage.EXPECT().GetApplicationByID(gomock.Any(), appID).Return(app, nil)
				mockStorage.EXPECT().CreateLicense(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, l *types.License) (*types.License, error) {
						assert.True(t, l.Active)
						assert.Equal(t, types.LicenseStatusActive, l.Status)
						l.ID = "license-1"
						return l, nil
					})
				mockProvisioner.EXPECT().IsProvisioned(gomock.Any(), tenantID, appID).Return(false, nil)
				mockProvisioner.EXPECT().Provision(gomock.Any(), tenantID, appID).Return(nil)
			},
		},
		{
			name:    "already provisioned skips provisioning",
			license: &types.License{TenantID: tenantID, ApplicationID: appID},
			setupMocks: func(mockStorage *MockStorageInterface, mockProvisioner *MockSchemaProvisionerInterface) {
				mockStorage.EXPECT().GetApplicationByID(gomock.Any(), appID).Return(app, nil)
				mockStorage.EXPECT().CreateLicense(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, l *types.License) (*types.License, error) {
						l.ID = "license-1"
						return l, nil
					})
				mockProvisioner.EXPECT().IsProvisioned(gomock.Any(), tenantID, appID).Return(true, nil)
			},
		},
		{
			// No provisioner expectations: the flag decides, not the license.
			name:    "application without the flag skips the provisioner",
			license: &types.License{TenantID: tenantID, ApplicationID: appID},
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockSchemaProvisionerInterface) {
				mockStorage.EXPECT().GetApplicationByID(gomock.Any(), appID).Return(plainApp, nil)
				mockStorage.EXPECT().CreateLicense(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, l *types.License) (*types.License, error) {
						l.ID = "license-1"
						return l, nil
					})
			},
		},
		{
			name:    "trial marks trial_used",
			license: &types.License{TenantID: tenantID, ApplicationID: appID, Status: types.LicenseStatusTrial},
			setupMocks: func(mockStorage *MockStorageInterface, mockProvisioner *MockSchemaProvisionerInterface) {
				mockStorage.EXPECT().GetApplicationByID(gomock.Any(), appID).Return(app, nil)
				mockStorage.EXPECT().CreateLicense(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, l *types.License) (*types.License, error) {
						assert.True(t, l.TrialUsed)
						assert.False(t, l.Active)
						l.ID = "license-1"
						return l, nil
					})
				mockProvisioner.EXPECT().IsProvisioned(gomock.Any(), tenantID, appID).Return(true, nil)
			},
		},
		{
			name:    "unknown application",
			license: &types.License{TenantID: tenantID, ApplicationID: appID},
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockSchemaProvisionerInterface) {
				mockStorage.EXPECT().GetApplicationByID(gomock.Any(), appID).Return(nil, storage.ErrNotFound)
			},
			expectedCode: types.CodeNotFound,
		},
		{
			name:    "duplicate pair rejected by constraint",
			license: &types.License{TenantID: tenantID, ApplicationID: appID},
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockSchemaProvisionerInterface) {
				mockStorage.EXPECT().GetApplicationByID(gomock.Any(), appID).Return(app, nil)
				mockStorage.EXPECT().CreateLicense(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedCode: types.CodeDuplicateLicense,
		},
		{
			name:         "invalid status rejected",
			license:      &types.License{TenantID: tenantID, ApplicationID: appID, Status: "paused"},
			setupMocks:   func(*MockStorageInterface, *MockSchemaProvisionerInterface) {},
			expectedCode: types.CodeValidation,
		},
		{
			name:         "non-positive tenant rejected",
			license:      &types.License{TenantID: 0, ApplicationID: appID},
			setupMocks:   func(*MockStorageInterface, *MockSchemaProvisionerInterface) {},
			expectedCode: types.CodeValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockProvisioner := NewMockSchemaProvisionerInterface(ctrl)
			tc.setupMocks(mockStorage, mockProvisioner)

			s := newTestService(mockStorage, mockProvisioner, nil)

			created, err := s.GrantLicense(context.Background(), tc.license)

			if tc.expectedCode != "" {
				engineErr, ok := types.AsEngineError(err)
				require.True(t, ok)
				assert.Equal(t, tc.expectedCode, engineErr.Code)
				assert.Nil(t, created)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "license-1", created.ID)
		})
	}
}

func TestService_GrantLicense_ProvisionFailureKeepsLicense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := &types.Application{ID: appID, Slug: appSlug, RequiresProvisioning: true}
	provisionErr := errors.New("schema creation failed")

	mockStorage := NewMockStorageInterface(ctrl)
	mockProvisioner := NewMockSchemaProvisionerInterface(ctrl)

	mockStorage.EXPECT().GetApplicationByID(gomock.Any(), appID).Return(app, nil)
	mockStorage.EXPECT().CreateLicense(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l *types.License) (*types.License, error) {
			l.ID = "license-1"
			return l, nil
		})
	mockProvisioner.EXPECT().IsProvisioned(gomock.Any(), tenantID, appID).Return(false, nil)
	mockProvisioner.EXPECT().Provision(gomock.Any(), tenantID, appID).Return(provisionErr)

	s := newTestService(mockStorage, mockProvisioner, nil)

	created, err := s.GrantLicense(context.Background(), &types.License{TenantID: tenantID, ApplicationID: appID})
	require.NoError(t, err)
	assert.Equal(t, "license-1", created.ID)
}

func TestService_CheckLicense(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-time.Hour)

	usable := &types.License{ID: "license-1", TenantID: tenantID, ApplicationID: appID, Status: types.LicenseStatusActive, Active: true, ExpiresAt: &future}
	expired := &types.License{ID: "license-2", TenantID: tenantID, ApplicationID: appID, Status: types.LicenseStatusActive, Active: true, ExpiresAt: &past}
	suspended := &types.License{ID: "license-3", TenantID: tenantID, ApplicationID: appID, Status: types.LicenseStatusSuspended, Active: false}

	testCases := []struct {
		name         string
		setupMocks   func(*MockStorageInterface, *MockLicenseCacheInterface)
		expectUsable bool
	}{
		{
			name: "cache hit usable",
			setupMocks: func(_ *MockStorageInterface, mockCache *MockLicenseCacheInterface) {
				mockCache.EXPECT().Get(gomock.Any(), tenantID, appSlug).Return(usable, true, nil)
			},
			expectUsable: true,
		},
		{
			name: "cache hit expired license denied without storage",
			setupMocks: func(_ *MockStorageInterface, mockCache *MockLicenseCacheInterface) {
				mockCache.EXPECT().Get(gomock.Any(), tenantID, appSlug).Return(expired, true, nil)
			},
		},
		{
			name: "cache miss falls back to storage and populates cache",
			setupMocks: func(mockStorage *MockStorageInterface, mockCache *MockLicenseCacheInterface) {
				mockCache.EXPECT().Get(gomock.Any(), tenantID, appSlug).Return(nil, false, nil)
				mockStorage.EXPECT().GetLicenseBySlug(gomock.Any(), tenantID, appSlug).Return(usable, nil)
				mockCache.EXPECT().Set(gomock.Any(), tenantID, appSlug, usable).Return(nil)
			},
			expectUsable: true,
		},
		{
			name: "cache error falls through to storage",
			setupMocks: func(mockStorage *MockStorageInterface, mockCache *MockLicenseCacheInterface) {
				mockCache.EXPECT().Get(gomock.Any(), tenantID, appSlug).Return(nil, false, errors.New("redis down"))
				mockStorage.EXPECT().GetLicenseBySlug(gomock.Any(), tenantID, appSlug).Return(usable, nil)
				mockCache.EXPECT().Set(gomock.Any(), tenantID, appSlug, usable).Return(nil)
			},
			expectUsable: true,
		},
		{
			name: "suspended license denied",
			setupMocks: func(mockStorage *MockStorageInterface, mockCache *MockLicenseCacheInterface) {
				mockCache.EXPECT().Get(gomock.Any(), tenantID, appSlug).Return(nil, false, nil)
				mockStorage.EXPECT().GetLicenseBySlug(gomock.Any(), tenantID, appSlug).Return(suspended, nil)
				mockCache.EXPECT().Set(gomock.Any(), tenantID, appSlug, suspended).Return(nil)
			},
		},
		{
			name: "no license at all",
			setupMocks: func(mockStorage *MockStorageInterface, mockCache *MockLicenseCacheInterface) {
				mockCache.EXPECT().Get(gomock.Any(), tenantID, appSlug).Return(nil, false, nil)
				mockStorage.EXPECT().GetLicenseBySlug(gomock.Any(), tenantID, appSlug).Return(nil, storage.ErrNotFound)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockCache := NewMockLicenseCacheInterface(ctrl)
			tc.setupMocks(mockStorage, mockCache)

			s := newTestService(mockStorage, NewMockSchemaProvisionerInterface(ctrl), mockCache)

			l, err := s.CheckLicense(context.Background(), tenantID, appSlug)

			if tc.expectUsable {
				require.NoError(t, err)
				assert.NotNil(t, l)
				return
			}
			engineErr, ok := types.AsEngineError(err)
			require.True(t, ok)
			assert.Equal(t, types.CodeNotFound, engineErr.Code)
		})
	}
}

func TestService_CheckSeatAvailability(t *testing.T) {
	seats := 10

	testCases := []struct {
		name     string
		license  *types.License
		expected *types.SeatAvailability
	}{
		{
			name:    "limited seats",
			license: &types.License{ID: "license-1", SeatsPurchased: &seats, SeatsUsed: 7},
			expected: &types.SeatAvailability{
				Purchased: &seats,
				Used:      7,
				Available: intp(3),
			},
		},
		{
			name:    "overcommitted clamps available at zero",
			license: &types.License{ID: "license-1", SeatsPurchased: &seats, SeatsUsed: 12},
			expected: &types.SeatAvailability{
				Purchased: &seats,
				Used:      12,
				Available: intp(0),
			},
		},
		{
			name:    "unlimited seats",
			license: &types.License{ID: "license-1", SeatsUsed: 99},
			expected: &types.SeatAvailability{
				Used: 99,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStorage.EXPECT().GetLicense(gomock.Any(), tenantID, appID).Return(tc.license, nil)

			s := newTestService(mockStorage, NewMockSchemaProvisionerInterface(ctrl), nil)

			got, err := s.CheckSeatAvailability(context.Background(), tenantID, appID)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestService_ExpireLicenses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	affected := []types.TenantApp{
		{TenantID: 1, ApplicationID: appID, Slug: appSlug},
		{TenantID: 2, ApplicationID: appID, Slug: appSlug},
	}

	mockStorage := NewMockStorageInterface(ctrl)
	mockCache := NewMockLicenseCacheInterface(ctrl)

	mockStorage.EXPECT().ExpireLicenses(gomock.Any(), gomock.Any()).Return(affected, nil)
	mockCache.EXPECT().Invalidate(gomock.Any(), int64(1), appSlug).Return(nil)
	mockCache.EXPECT().Invalidate(gomock.Any(), int64(2), appSlug).Return(nil)

	s := newTestService(mockStorage, NewMockSchemaProvisionerInterface(ctrl), mockCache)

	expired, err := s.ExpireLicenses(context.Background())
	require.NoError(t, err)
	assert.Len(t, expired, 2)
}

func TestService_UpdateLicense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	current := &types.License{ID: "license-1", TenantID: tenantID, ApplicationID: appID, Status: types.LicenseStatusActive, Active: true}
	suspended := types.LicenseStatusSuspended

	mockStorage := NewMockStorageInterface(ctrl)
	mockCache := NewMockLicenseCacheInterface(ctrl)

	mockStorage.EXPECT().GetLicense(gomock.Any(), tenantID, appID).Return(current, nil)
	mockStorage.EXPECT().UpdateLicense(gomock.Any(), "license-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, u types.LicenseUpdate) (*types.License, error) {
			require.NotNil(t, u.Status)
			assert.Equal(t, suspended, *u.Status)
			updated := *current
			updated.Status = suspended
			updated.Active = false
			return &updated, nil
		})
	mockStorage.EXPECT().GetApplicationByID(gomock.Any(), appID).Return(&types.Application{ID: appID, Slug: appSlug}, nil)
	mockCache.EXPECT().Invalidate(gomock.Any(), tenantID, appSlug).Return(nil)

	s := newTestService(mockStorage, NewMockSchemaProvisionerInterface(ctrl), mockCache)

	updated, err := s.UpdateLicense(context.Background(), tenantID, appID, types.LicenseUpdate{Status: &suspended})
	require.NoError(t, err)
	assert.False(t, updated.Active)
}

func intp(v int) *int {
	return &v
}
