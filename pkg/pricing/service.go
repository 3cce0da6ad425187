// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andremelo97/simplia-paas-sub002/internal/logging"
	"github.com/andremelo97/simplia-paas-sub002/internal/monitoring"
	"github.com/andremelo97/simplia-paas-sub002/internal/storage"
	"github.com/andremelo97/simplia-paas-sub002/internal/tracing"
	"github.com/andremelo97/simplia-paas-sub002/internal/types"
)

type Service struct {
	storage StorageInterface
	tx      TxRunnerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tx TxRunnerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tx:      tx,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) GetCurrentPrice(ctx context.Context, applicationID, userType string) (*types.PricingEntry, error) {
	ctx, span := s.tracer.Start(ctx, "pricing.Service.GetCurrentPrice")
	defer span.End()

	return s.GetPriceAt(ctx, applicationID, userType, time.Now())
}

func (s *Service) GetPriceAt(ctx context.Context, applicationID, userType string, at time.Time) (*types.PricingEntry, error) {
	ctx, span := s.tracer.Start(ctx, "pricing.Service.GetPriceAt")
	defer span.End()

	entry, err := s.storage.GetPricingEntryAt(ctx, applicationID, userType, types.NormalizeTime(at))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewPricingNotConfiguredError(applicationID, userType)
		}
		return nil, fmt.Errorf("failed to resolve price: %w", err)
	}

	return entry, nil
}

func (s *Service) GetHistory(ctx context.Context, applicationID, userType string) ([]*types.PricingEntry, error) {
	ctx, span := s.tracer.Start(ctx, "pricing.Service.GetHistory")
	defer span.End()

	return s.storage.ListPricingEntries(ctx, applicationID, userType, false)
}

func (s *Service) GetEntry(ctx context.Context, id string) (*types.PricingEntry, error) {
	ctx, span := s.tracer.Start(ctx, "pricing.Service.GetEntry")
	defer span.End()

	entry, err := s.storage.GetPricingEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("pricing entry", id)
		}
		return nil, fmt.Errorf("failed to load pricing entry: %w", err)
	}

	return entry, nil
}

// CheckOverlap reports whether the half-open range [from, to) would collide
// with an active entry sharing the same (application, user type, billing
// cycle, currency) key, without writing anything. A nil conflict means the
// range is free.
func (s *Service) CheckOverlap(ctx context.Context, applicationID, userType string, from time.Time, to *time.Time, billingCycle, currency, excludeID string) (*types.PricingConflict, error) {
	ctx, span := s.tracer.Start(ctx, "pricing.Service.CheckOverlap")
	defer span.End()

	return s.checkOverlap(ctx, applicationID, userType, from, to, billingCycle, currency, excludeID)
}

// checkOverlap compares the requested half-open range [from, to) against every
// active entry with the same four-part key. Entries on a different billing
// cycle or currency coexist freely. A nil bound is open-ended. Touching
// ranges do not conflict.
func (s *Service) checkOverlap(ctx context.Context, applicationID, userType string, from time.Time, to *time.Time, billingCycle, currency, excludeID string) (*types.PricingConflict, error) {
	ctx, span := s.tracer.Start(ctx, "pricing.Service.checkOverlap")
	defer span.End()

	entries, err := s.storage.ListPricingEntries(ctx, applicationID, userType, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list pricing entries: %w", err)
	}

	for _, e := range entries {
		if e.ID == excludeID {
			continue
		}
		if e.BillingCycle != billingCycle || e.Currency != currency {
			continue
		}
		if rangesOverlap(from, to, e.ValidFrom, e.ValidTo) {
			return &types.PricingConflict{
				ConflictingID: e.ID,
				ApplicationID: applicationID,
				UserType:      userType,
				BillingCycle:  e.BillingCycle,
				Currency:      e.Currency,
				ExistingFrom:  e.ValidFrom,
				ExistingTo:    e.ValidTo,
				RequestedFrom: from,
				RequestedTo:   to,
			}, nil
		}
	}

	return nil, nil
}

// rangesOverlap implements aFrom < bEnd && bFrom < aEnd on half-open ranges,
// treating a nil end as +infinity.
func rangesOverlap(aFrom time.Time, aTo *time.Time, bFrom time.Time, bTo *time.Time) bool {
	aBeforeBEnd := bTo == nil || aFrom.Before(*bTo)
	bBeforeAEnd := aTo == nil || bFrom.Before(*aTo)
	return aBeforeBEnd && bBeforeAEnd
}

func validateEntry(e *types.PricingEntry) error {
	if e.ApplicationID == "" {
		return types.NewValidationError("application_id is required")
	}
	if e.UserType == "" {
		return types.NewValidationError("user_type is required")
	}
	if e.PriceCents < 0 {
		return types.NewValidationError("price_cents must not be negative")
	}
	if e.Currency == "" {
		return types.NewValidationError("currency is required")
	}
	if !types.ValidBillingCycle(e.BillingCycle) {
		return types.NewValidationError(fmt.Sprintf("invalid billing cycle %q", e.BillingCycle))
	}
	if e.ValidTo != nil && !e.ValidFrom.Before(*e.ValidTo) {
		return types.NewValidationError("valid_from must be before valid_to")
	}
	return nil
}

func (s *Service) CreateEntry(ctx context.Context, e *types.PricingEntry) (*types.PricingEntry, error) {
	ctx, span := s.tracer.Start(ctx, "pricing.Service.CreateEntry")
	defer span.End()

	e.ValidFrom = types.NormalizeTime(e.ValidFrom)
	if e.ValidTo != nil {
		to := types.NormalizeTime(*e.ValidTo)
		e.ValidTo = &to
	}
	e.Active = true

	if err := validateEntry(e); err != nil {
		return nil, err
	}

	conflict, err := s.checkOverlap(ctx, e.ApplicationID, e.UserType, e.ValidFrom, e.ValidTo, e.BillingCycle, e.Currency, "")
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, types.NewPricingOverlapError(conflict)
	}

	created, err := s.storage.CreatePricingEntry(ctx, e)
	if err != nil {
		// The exclusion constraint catches a racing insert the optimistic
		// check above could not see.
		if errors.Is(err, storage.ErrExclusionViolation) {
			return nil, types.NewPricingOverlapError(&types.PricingConflict{
				ApplicationID: e.ApplicationID,
				UserType:      e.UserType,
				BillingCycle:  e.BillingCycle,
				Currency:      e.Currency,
				RequestedFrom: e.ValidFrom,
				RequestedTo:   e.ValidTo,
			})
		}
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, types.NewNotFoundError("application", e.ApplicationID)
		}
		return nil, fmt.Errorf("failed to create pricing entry: %w", err)
	}

	return created, nil
}

func (s *Service) UpdateEntry(ctx context.Context, id string, u types.PricingEntryUpdate) (*types.PricingEntry, error) {
	ctx, span := s.tracer.Start(ctx, "pricing.Service.UpdateEntry")
	defer span.End()

	current, err := s.storage.GetPricingEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("pricing entry", id)
		}
		return nil, fmt.Errorf("failed to load pricing entry: %w", err)
	}

	if u.PriceCents != nil && *u.PriceCents < 0 {
		return nil, types.NewValidationError("price_cents must not be negative")
	}

	if u.ValidFrom != nil {
		from := types.NormalizeTime(*u.ValidFrom)
		u.ValidFrom = &from
	}
	if u.ValidTo != nil {
		to := types.NormalizeTime(*u.ValidTo)
		u.ValidTo = &to
	}

	// Re-validate the resulting range when validity changes.
	if u.ValidFrom != nil || u.ValidTo != nil || u.ClearValidTo {
		from := current.ValidFrom
		if u.ValidFrom != nil {
			from = *u.ValidFrom
		}
		to := current.ValidTo
		if u.ClearValidTo {
			to = nil
		} else if u.ValidTo != nil {
			to = u.ValidTo
		}

		if to != nil && !from.Before(*to) {
			return nil, types.NewValidationError("valid_from must be before valid_to")
		}

		conflict, err := s.checkOverlap(ctx, current.ApplicationID, current.UserType, from, to, current.BillingCycle, current.Currency, id)
		if err != nil {
			return nil, err
		}
		if conflict != nil {
			return nil, types.NewPricingOverlapError(conflict)
		}
	}

	updated, err := s.storage.UpdatePricingEntry(ctx, id, u)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("pricing entry", id)
		}
		if errors.Is(err, storage.ErrExclusionViolation) {
			return nil, types.NewPricingOverlapError(&types.PricingConflict{
				ConflictingID: "",
				ApplicationID: current.ApplicationID,
				UserType:      current.UserType,
				BillingCycle:  current.BillingCycle,
				Currency:      current.Currency,
				RequestedFrom: current.ValidFrom,
				RequestedTo:   current.ValidTo,
			})
		}
		return nil, fmt.Errorf("failed to update pricing entry: %w", err)
	}

	return updated, nil
}

// SchedulePrice closes the open-ended entry at the hand-off instant and
// creates the successor, both inside one transaction. Validity is half-open,
// so the predecessor's valid_to equals the successor's valid_from and no
// instant is covered twice or left uncovered.
func (s *Service) SchedulePrice(ctx context.Context, applicationID, userType string, priceCents int64, currency, billingCycle string, from time.Time) (*types.PricingEntry, error) {
	ctx, span := s.tracer.Start(ctx, "pricing.Service.SchedulePrice")
	defer span.End()

	from = types.NormalizeTime(from)
	if !from.After(types.NormalizeTime(time.Now())) {
		return nil, types.NewValidationError("scheduled valid_from must be in the future")
	}

	var created *types.PricingEntry
	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		entries, err := s.storage.ListPricingEntries(txCtx, applicationID, userType, true)
		if err != nil {
			return fmt.Errorf("failed to list pricing entries: %w", err)
		}

		// Only the open-ended predecessor on the same cycle and currency
		// hands off to the new entry.
		for _, e := range entries {
			if e.BillingCycle != billingCycle || e.Currency != currency {
				continue
			}
			if e.ValidTo != nil || !e.ValidFrom.Before(from) {
				continue
			}
			if _, err := s.storage.UpdatePricingEntry(txCtx, e.ID, types.PricingEntryUpdate{ValidTo: &from}); err != nil {
				return fmt.Errorf("failed to close open-ended entry %s: %w", e.ID, err)
			}
		}

		created, err = s.storage.CreatePricingEntry(txCtx, &types.PricingEntry{
			ApplicationID: applicationID,
			UserType:      userType,
			PriceCents:    priceCents,
			Currency:      currency,
			BillingCycle:  billingCycle,
			ValidFrom:     from,
			Active:        true,
		})
		if err != nil {
			if errors.Is(err, storage.ErrExclusionViolation) {
				return types.NewPricingOverlapError(&types.PricingConflict{
					ApplicationID: applicationID,
					UserType:      userType,
					BillingCycle:  billingCycle,
					Currency:      currency,
					RequestedFrom: from,
				})
			}
			if errors.Is(err, storage.ErrForeignKeyViolation) {
				return types.NewNotFoundError("application", applicationID)
			}
			return fmt.Errorf("failed to create scheduled entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infof("scheduled price for application %s user type %s from %s", applicationID, userType, from.Format(time.RFC3339))

	return created, nil
}

// EndEntry closes an entry's validity and deactivates it.
func (s *Service) EndEntry(ctx context.Context, id string, at time.Time) (*types.PricingEntry, error) {
	ctx, span := s.tracer.Start(ctx, "pricing.Service.EndEntry")
	defer span.End()

	at = types.NormalizeTime(at)
	inactive := false

	updated, err := s.storage.UpdatePricingEntry(ctx, id, types.PricingEntryUpdate{
		ValidTo: &at,
		Active:  &inactive,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("pricing entry", id)
		}
		return nil, fmt.Errorf("failed to end pricing entry: %w", err)
	}

	return updated, nil
}
