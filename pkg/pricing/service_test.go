// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package pricing

import (
	"context"
	"errors"
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

//go:generate mockgen -build_flags=--mod=mod -package pricing -destination ./mock_pricing.go -source=./interfaces.go

const (
	appID    = "0191e1a0-0000-7000-8000-000000000001"
	userType = "clinic"
)

func newTestService(storage StorageInterface, tx TxRunnerInterface) *Service {
	return NewService(storage, tx, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func tsp(s string) *time.Time {
	t := ts(s)
	return &t
}

func TestService_GetPriceAt(t *testing.T) {
	at := ts("2026-03-01T00:00:00Z")
	entry := &types.PricingEntry{ID: "entry-1", ApplicationID: appID, UserType: userType, PriceCents: 9900}
	dbErr := errors.New("db error")

	testCases := []struct {
		name         string
		setupMocks   func(*MockStorageInterface)
		expected     *types.PricingEntry
		expectedCode string
		expectedErr  error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetPricingEntryAt(gomock.Any(), appID, userType, at).Return(entry, nil)
			},
			expected: entry,
		},
		{
			name: "no entry maps to pricing not configured",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetPricingEntryAt(gomock.Any(), appID, userType, at).Return(nil, storage.ErrNotFound)
			},
			expectedCode: types.CodePricingNotConfigured,
		},
		{
			name: "storage error",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetPricingEntryAt(gomock.Any(), appID, userType, at).Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			s := newTestService(mockStorage, NewMockTxRunnerInterface(ctrl))

			got, err := s.GetPriceAt(context.Background(), appID, userType, at)

			if tc.expectedCode != "" {
				engineErr, ok := types.AsEngineError(err)
				require.True(t, ok)
				assert.Equal(t, tc.expectedCode, engineErr.Code)
				return
			}
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestService_CreateEntry(t *testing.T) {
	existing := &types.PricingEntry{
		ID:            "entry-existing",
		ApplicationID: appID,
		UserType:      userType,
		BillingCycle:  types.BillingCycleMonthly,
		Currency:      "USD",
		ValidFrom:     ts("2026-01-01T00:00:00Z"),
		ValidTo:       tsp("2026-06-01T00:00:00Z"),
		Active:        true,
	}

	testCases := []struct {
		name         string
		entry        *types.PricingEntry
		setupMocks   func(*MockStorageInterface)
		expectedCode string
	}{
		{
			name: "success",
			entry: &types.PricingEntry{
				ApplicationID: appID,
				UserType:      userType,
				PriceCents:    9900,
				Currency:      "USD",
				BillingCycle:  types.BillingCycleMonthly,
				ValidFrom:     ts("2026-06-01T00:00:00Z"),
			},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListPricingEntries(gomock.Any(), appID, userType, true).Return([]*types.PricingEntry{existing}, nil)
				mockStorage.EXPECT().CreatePricingEntry(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e *types.PricingEntry) (*types.PricingEntry, error) {
						e.ID = "entry-new"
						return e, nil
					})
			},
		},
		{
			name: "negative price rejected",
			entry: &types.PricingEntry{
				ApplicationID: appID,
				UserType:      userType,
				PriceCents:    -1,
				Currency:      "USD",
				BillingCycle:  types.BillingCycleMonthly,
				ValidFrom:     ts("2026-06-01T00:00:00Z"),
			},
			setupMocks:   func(*MockStorageInterface) {},
			expectedCode: types.CodeValidation,
		},
		{
			name: "invalid billing cycle rejected",
			entry: &types.PricingEntry{
				ApplicationID: appID,
				UserType:      userType,
				PriceCents:    9900,
				Currency:      "USD",
				BillingCycle:  "weekly",
				ValidFrom:     ts("2026-06-01T00:00:00Z"),
			},
			setupMocks:   func(*MockStorageInterface) {},
			expectedCode: types.CodeValidation,
		},
		{
			name: "overlap rejected without insert",
			entry: &types.PricingEntry{
				ApplicationID: appID,
				UserType:      userType,
				PriceCents:    9900,
				Currency:      "USD",
				BillingCycle:  types.BillingCycleMonthly,
				ValidFrom:     ts("2026-03-01T00:00:00Z"),
			},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListPricingEntries(gomock.Any(), appID, userType, true).Return([]*types.PricingEntry{existing}, nil)
			},
			expectedCode: types.CodePricingOverlap,
		},
		{
			// Overlap is keyed on (application, user type, billing cycle,
			// currency): a yearly entry may cover the same period as a
			// monthly one.
			name: "overlapping yearly entry coexists with monthly",
			entry: &types.PricingEntry{
				ApplicationID: appID,
				UserType:      userType,
				PriceCents:    99000,
				Currency:      "USD",
				BillingCycle:  types.BillingCycleYearly,
				ValidFrom:     ts("2026-03-01T00:00:00Z"),
			},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListPricingEntries(gomock.Any(), appID, userType, true).Return([]*types.PricingEntry{existing}, nil)
				mockStorage.EXPECT().CreatePricingEntry(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e *types.PricingEntry) (*types.PricingEntry, error) {
						e.ID = "entry-yearly"
						return e, nil
					})
			},
		},
		{
			name: "racing insert hits exclusion constraint",
			entry: &types.PricingEntry{
				ApplicationID: appID,
				UserType:      userType,
				PriceCents:    9900,
				Currency:      "USD",
				BillingCycle:  types.BillingCycleMonthly,
				ValidFrom:     ts("2026-06-01T00:00:00Z"),
			},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListPricingEntries(gomock.Any(), appID, userType, true).Return(nil, nil)
				mockStorage.EXPECT().CreatePricingEntry(gomock.Any(), gomock.Any()).Return(nil, storage.ErrExclusionViolation)
			},
			expectedCode: types.CodePricingOverlap,
		},
		{
			name: "unknown application",
			entry: &types.PricingEntry{
				ApplicationID: appID,
				UserType:      userType,
				PriceCents:    9900,
				Currency:      "USD",
				BillingCycle:  types.BillingCycleMonthly,
				ValidFrom:     ts("2026-06-01T00:00:00Z"),
			},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListPricingEntries(gomock.Any(), appID, userType, true).Return(nil, nil)
				mockStorage.EXPECT().CreatePricingEntry(gomock.Any(), gomock.Any()).Return(nil, storage.ErrForeignKeyViolation)
			},
			expectedCode: types.CodeNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			s := newTestService(mockStorage, NewMockTxRunnerInterface(ctrl))

			created, err := s.CreateEntry(context.Background(), tc.entry)

			if tc.expectedCode != "" {
				engineErr, ok := types.AsEngineError(err)
				require.True(t, ok)
				assert.Equal(t, tc.expectedCode, engineErr.Code)
				assert.Nil(t, created)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, created.ID)
			assert.True(t, created.Active)
		})
	}
}

func TestService_CreateEntry_TouchingRangesDoNotConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := &types.PricingEntry{
		ID:            "entry-existing",
		ApplicationID: appID,
		UserType:      userType,
		BillingCycle:  types.BillingCycleMonthly,
		Currency:      "USD",
		ValidFrom:     ts("2026-01-01T00:00:00Z"),
		ValidTo:       tsp("2026-06-01T00:00:00Z"),
		Active:        true,
	}

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListPricingEntries(gomock.Any(), appID, userType, true).Return([]*types.PricingEntry{existing}, nil)
	mockStorage.EXPECT().CreatePricingEntry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *types.PricingEntry) (*types.PricingEntry, error) {
			return e, nil
		})

	s := newTestService(mockStorage, NewMockTxRunnerInterface(ctrl))

	// Starts exactly where the existing entry ends.
	_, err := s.CreateEntry(context.Background(), &types.PricingEntry{
		ApplicationID: appID,
		UserType:      userType,
		PriceCents:    12900,
		Currency:      "USD",
		BillingCycle:  types.BillingCycleMonthly,
		ValidFrom:     ts("2026-06-01T00:00:00Z"),
	})
	require.NoError(t, err)
}

func TestService_SchedulePrice(t *testing.T) {
	future := types.NormalizeTime(time.Now().Add(48 * time.Hour))
	openEnded := &types.PricingEntry{
		ID:            "entry-open",
		ApplicationID: appID,
		UserType:      userType,
		PriceCents:    9900,
		Currency:      "USD",
		BillingCycle:  types.BillingCycleMonthly,
		ValidFrom:     ts("2026-01-01T00:00:00Z"),
		Active:        true,
	}

	t.Run("closes open-ended entry and creates successor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockTx := NewMockTxRunnerInterface(ctrl)

		mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})
		mockStorage.EXPECT().ListPricingEntries(gomock.Any(), appID, userType, true).Return([]*types.PricingEntry{openEnded}, nil)
		mockStorage.EXPECT().UpdatePricingEntry(gomock.Any(), "entry-open", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, u types.PricingEntryUpdate) (*types.PricingEntry, error) {
				require.NotNil(t, u.ValidTo)
				assert.Equal(t, future, *u.ValidTo)
				return openEnded, nil
			})
		mockStorage.EXPECT().CreatePricingEntry(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e *types.PricingEntry) (*types.PricingEntry, error) {
				assert.Equal(t, future, e.ValidFrom)
				assert.Nil(t, e.ValidTo)
				e.ID = "entry-next"
				return e, nil
			})

		s := newTestService(mockStorage, mockTx)

		created, err := s.SchedulePrice(context.Background(), appID, userType, 12900, "USD", types.BillingCycleMonthly, future)
		require.NoError(t, err)
		assert.Equal(t, "entry-next", created.ID)
	})

	t.Run("past hand-off rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s := newTestService(NewMockStorageInterface(ctrl), NewMockTxRunnerInterface(ctrl))

		_, err := s.SchedulePrice(context.Background(), appID, userType, 12900, "USD", types.BillingCycleMonthly, time.Now().Add(-time.Hour))
		engineErr, ok := types.AsEngineError(err)
		require.True(t, ok)
		assert.Equal(t, types.CodeValidation, engineErr.Code)
	})

	t.Run("create failure rolls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockTx := NewMockTxRunnerInterface(ctrl)

		mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context) error) error {
				// The runner surfaces fn's error after rolling back.
				return fn(ctx)
			})
		mockStorage.EXPECT().ListPricingEntries(gomock.Any(), appID, userType, true).Return([]*types.PricingEntry{openEnded}, nil)
		mockStorage.EXPECT().UpdatePricingEntry(gomock.Any(), "entry-open", gomock.Any()).Return(openEnded, nil)
		mockStorage.EXPECT().CreatePricingEntry(gomock.Any(), gomock.Any()).Return(nil, storage.ErrExclusionViolation)

		s := newTestService(mockStorage, mockTx)

		_, err := s.SchedulePrice(context.Background(), appID, userType, 12900, "USD", types.BillingCycleMonthly, future)
		engineErr, ok := types.AsEngineError(err)
		require.True(t, ok)
		assert.Equal(t, types.CodePricingOverlap, engineErr.Code)
	})
}

func TestService_UpdateEntry(t *testing.T) {
	current := &types.PricingEntry{
		ID:            "entry-1",
		ApplicationID: appID,
		UserType:      userType,
		PriceCents:    9900,
		Currency:      "USD",
		BillingCycle:  types.BillingCycleMonthly,
		ValidFrom:     ts("2026-01-01T00:00:00Z"),
		ValidTo:       tsp("2026-06-01T00:00:00Z"),
		Active:        true,
	}

	t.Run("price-only update skips overlap check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		newPrice := int64(10900)

		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().GetPricingEntryByID(gomock.Any(), "entry-1").Return(current, nil)
		mockStorage.EXPECT().UpdatePricingEntry(gomock.Any(), "entry-1", gomock.Any()).Return(current, nil)

		s := newTestService(mockStorage, NewMockTxRunnerInterface(ctrl))

		_, err := s.UpdateEntry(context.Background(), "entry-1", types.PricingEntryUpdate{PriceCents: &newPrice})
		require.NoError(t, err)
	})

	t.Run("validity change re-runs overlap check excluding self", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		other := &types.PricingEntry{
			ID:           "entry-2",
			BillingCycle: types.BillingCycleMonthly,
			Currency:     "USD",
			ValidFrom:    ts("2026-06-01T00:00:00Z"),
			ValidTo:      tsp("2026-09-01T00:00:00Z"),
			Active:       true,
		}

		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().GetPricingEntryByID(gomock.Any(), "entry-1").Return(current, nil)
		mockStorage.EXPECT().ListPricingEntries(gomock.Any(), appID, userType, true).Return([]*types.PricingEntry{current, other}, nil)

		s := newTestService(mockStorage, NewMockTxRunnerInterface(ctrl))

		// Extending into entry-2's range must fail.
		_, err := s.UpdateEntry(context.Background(), "entry-1", types.PricingEntryUpdate{ValidTo: tsp("2026-07-01T00:00:00Z")})
		engineErr, ok := types.AsEngineError(err)
		require.True(t, ok)
		assert.Equal(t, types.CodePricingOverlap, engineErr.Code)
	})

	t.Run("unknown entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().GetPricingEntryByID(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)

		s := newTestService(mockStorage, NewMockTxRunnerInterface(ctrl))

		_, err := s.UpdateEntry(context.Background(), "missing", types.PricingEntryUpdate{})
		engineErr, ok := types.AsEngineError(err)
		require.True(t, ok)
		assert.Equal(t, types.CodeNotFound, engineErr.Code)
	})
}

func TestRangesOverlap(t *testing.T) {
	testCases := []struct {
		name     string
		aFrom    time.Time
		aTo      *time.Time
		bFrom    time.Time
		bTo      *time.Time
		expected bool
	}{
		{
			name:     "disjoint",
			aFrom:    ts("2026-01-01T00:00:00Z"),
			aTo:      tsp("2026-02-01T00:00:00Z"),
			bFrom:    ts("2026-03-01T00:00:00Z"),
			bTo:      tsp("2026-04-01T00:00:00Z"),
			expected: false,
		},
		{
			name:     "touching half-open ranges",
			aFrom:    ts("2026-01-01T00:00:00Z"),
			aTo:      tsp("2026-02-01T00:00:00Z"),
			bFrom:    ts("2026-02-01T00:00:00Z"),
			bTo:      tsp("2026-03-01T00:00:00Z"),
			expected: false,
		},
		{
			name:     "partial overlap",
			aFrom:    ts("2026-01-01T00:00:00Z"),
			aTo:      tsp("2026-03-01T00:00:00Z"),
			bFrom:    ts("2026-02-01T00:00:00Z"),
			bTo:      tsp("2026-04-01T00:00:00Z"),
			expected: true,
		},
		{
			name:     "containment",
			aFrom:    ts("2026-01-01T00:00:00Z"),
			aTo:      tsp("2026-12-01T00:00:00Z"),
			bFrom:    ts("2026-03-01T00:00:00Z"),
			bTo:      tsp("2026-04-01T00:00:00Z"),
			expected: true,
		},
		{
			name:     "two open-ended ranges always overlap",
			aFrom:    ts("2026-01-01T00:00:00Z"),
			bFrom:    ts("2027-01-01T00:00:00Z"),
			expected: true,
		},
		{
			name:     "open-ended after closed range",
			aFrom:    ts("2026-02-01T00:00:00Z"),
			bFrom:    ts("2026-01-01T00:00:00Z"),
			bTo:      tsp("2026-02-01T00:00:00Z"),
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, rangesOverlap(tc.aFrom, tc.aTo, tc.bFrom, tc.bTo))
			assert.Equal(t, tc.expected, rangesOverlap(tc.bFrom, tc.bTo, tc.aFrom, tc.aTo))
		})
	}
}

func TestService_CheckOverlap(t *testing.T) {
	existing := &types.PricingEntry{
		ID:            "entry-1",
		ApplicationID: appID,
		UserType:      userType,
		BillingCycle:  "monthly",
		Currency:      "USD",
		ValidFrom:     ts("2026-01-01T00:00:00Z"),
		ValidTo:       tsp("2026-06-01T00:00:00Z"),
		Active:        true,
	}

	t.Run("conflict reports both ranges", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().ListPricingEntries(gomock.Any(), appID, userType, true).Return([]*types.PricingEntry{existing}, nil)

		s := newTestService(mockStorage, NewMockTxRunnerInterface(ctrl))

		conflict, err := s.CheckOverlap(context.Background(), appID, userType, ts("2026-03-01T00:00:00Z"), nil, types.BillingCycleMonthly, "USD", "")
		require.NoError(t, err)
		require.NotNil(t, conflict)
		assert.Equal(t, "entry-1", conflict.ConflictingID)
		assert.Equal(t, existing.ValidFrom, conflict.ExistingFrom)
		assert.Equal(t, ts("2026-03-01T00:00:00Z"), conflict.RequestedFrom)
	})

	t.Run("different billing cycle does not conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().ListPricingEntries(gomock.Any(), appID, userType, true).Return([]*types.PricingEntry{existing}, nil)

		s := newTestService(mockStorage, NewMockTxRunnerInterface(ctrl))

		conflict, err := s.CheckOverlap(context.Background(), appID, userType, ts("2026-03-01T00:00:00Z"), nil, types.BillingCycleYearly, "USD", "")
		require.NoError(t, err)
		assert.Nil(t, conflict)
	})

	t.Run("different currency does not conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().ListPricingEntries(gomock.Any(), appID, userType, true).Return([]*types.PricingEntry{existing}, nil)

		s := newTestService(mockStorage, NewMockTxRunnerInterface(ctrl))

		conflict, err := s.CheckOverlap(context.Background(), appID, userType, ts("2026-03-01T00:00:00Z"), nil, types.BillingCycleMonthly, "EUR", "")
		require.NoError(t, err)
		assert.Nil(t, conflict)
	})

	t.Run("excluded entry does not conflict with itself", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().ListPricingEntries(gomock.Any(), appID, userType, true).Return([]*types.PricingEntry{existing}, nil)

		s := newTestService(mockStorage, NewMockTxRunnerInterface(ctrl))

		conflict, err := s.CheckOverlap(context.Background(), appID, userType, ts("2026-02-01T00:00:00Z"), tsp("2026-04-01T00:00:00Z"), types.BillingCycleMonthly, "USD", "entry-1")
		require.NoError(t, err)
		assert.Nil(t, conflict)
	})

	t.Run("touching ranges are free", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().ListPricingEntries(gomock.Any(), appID, userType, true).Return([]*types.PricingEntry{existing}, nil)

		s := newTestService(mockStorage, NewMockTxRunnerInterface(ctrl))

		conflict, err := s.CheckOverlap(context.Background(), appID, userType, ts("2026-06-01T00:00:00Z"), nil, types.BillingCycleMonthly, "USD", "")
		require.NoError(t, err)
		assert.Nil(t, conflict)
	})
}
