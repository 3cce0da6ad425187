// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package pricing

import (
	"context"
	"time"

	"github.com/andremelo97/simplia-paas-sub002/internal/types"
)

type ServiceInterface interface {
	GetCurrentPrice(ctx context.Context, applicationID, userType string) (*types.PricingEntry, error)
	GetPriceAt(ctx context.Context, applicationID, userType string, at time.Time) (*types.PricingEntry, error)
	GetHistory(ctx context.Context, applicationID, userType string) ([]*types.PricingEntry, error)
	GetEntry(ctx context.Context, id string) (*types.PricingEntry, error)
	CreateEntry(ctx context.Context, e *types.PricingEntry) (*types.PricingEntry, error)
	UpdateEntry(ctx context.Context, id string, u types.PricingEntryUpdate) (*types.PricingEntry, error)
	SchedulePrice(ctx context.Context, applicationID, userType string, priceCents int64, currency, billingCycle string, from time.Time) (*types.PricingEntry, error)
	CheckOverlap(ctx context.Context, applicationID, userType string, from time.Time, to *time.Time, billingCycle, currency, excludeID string) (*types.PricingConflict, error)
	EndEntry(ctx context.Context, id string, at time.Time) (*types.PricingEntry, error)
}

type StorageInterface interface {
	CreatePricingEntry(ctx context.Context, e *types.PricingEntry) (*types.PricingEntry, error)
	GetPricingEntryByID(ctx context.Context, id string) (*types.PricingEntry, error)
	UpdatePricingEntry(ctx context.Context, id string, u types.PricingEntryUpdate) (*types.PricingEntry, error)
	ListPricingEntries(ctx context.Context, applicationID, userType string, activeOnly bool) ([]*types.PricingEntry, error)
	GetPricingEntryAt(ctx context.Context, applicationID, userType string, at time.Time) (*types.PricingEntry, error)
}

// TxRunnerInterface runs fn with a transaction attached to the context, so a
// schedule hand-off commits or rolls back as one unit.
type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
