// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// PricingEntryUpdate carries partial pricing updates. Nil fields are left
// untouched; ClearValidTo reopens the entry (valid_to = NULL).
type PricingEntryUpdate struct {
	PriceCents   *int64
	ValidFrom    *time.Time
	ValidTo      *time.Time
	ClearValidTo bool
	Active       *bool
}

// LicenseUpdate carries partial license updates. A status change drives the
// active flag: "active" forces it true, anything else forces it false.
type LicenseUpdate struct {
	Status         *string
	SeatsPurchased *int
	UnlimitedSeats bool
	ExpiresAt      *time.Time
	ClearExpiresAt bool
	TrialUsed      *bool
}
