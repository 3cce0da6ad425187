// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Application statuses.
const (
	AppStatusActive     = "active"
	AppStatusDeprecated = "deprecated"
	AppStatusTrial      = "trial"
)

// License statuses.
const (
	LicenseStatusActive    = "active"
	LicenseStatusTrial     = "trial"
	LicenseStatusSuspended = "suspended"
	LicenseStatusExpired   = "expired"
	LicenseStatusRevoked   = "revoked"
)

// Billing cycles.
const (
	BillingCycleMonthly = "monthly"
	BillingCycleYearly  = "yearly"
)

// In-app roles. Manager and operations sit on the same privilege tier.
const (
	RoleUser       = "user"
	RoleOperations = "operations"
	RoleManager    = "manager"
	RoleAdmin      = "admin"
)

// Authorization decisions.
const (
	DecisionGranted = "granted"
	DecisionDenied  = "denied"
)

func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleOperations, RoleManager, RoleAdmin:
		return true
	}
	return false
}

func ValidBillingCycle(cycle string) bool {
	return cycle == BillingCycleMonthly || cycle == BillingCycleYearly
}

// NormalizeTime truncates to whole seconds in UTC. All interval comparisons
// run on normalized instants so sub-second jitter cannot produce phantom
// overlaps or gaps.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

// Application is a licensable product module. Immutable once referenced by
// pricing or licenses, except for status. RequiresProvisioning marks
// applications that need per-tenant resources created when licensed.
type Application struct {
	ID                   string    `db:"id"`
	Slug                 string    `db:"slug"`
	Name                 string    `db:"name"`
	Status               string    `db:"status"`
	RequiresProvisioning bool      `db:"requires_provisioning"`
	CreatedAt            time.Time `db:"created_at"`
}

// PricingEntry is one versioned price record. Validity is the half-open
// interval [ValidFrom, ValidTo); a nil ValidTo means open-ended.
type PricingEntry struct {
	ID            string     `db:"id"`
	ApplicationID string     `db:"application_id"`
	UserType      string     `db:"user_type"`
	PriceCents    int64      `db:"price_cents"`
	Currency      string     `db:"currency"`
	BillingCycle  string     `db:"billing_cycle"`
	ValidFrom     time.Time  `db:"valid_from"`
	ValidTo       *time.Time `db:"valid_to"`
	Active        bool       `db:"active"`
	CreatedAt     time.Time  `db:"created_at"`
}

// License is a tenant's subscription record for one application.
type License struct {
	ID             string     `db:"id"`
	TenantID       int64      `db:"tenant_id"`
	ApplicationID  string     `db:"application_id"`
	Status         string     `db:"status"`
	SeatsPurchased *int       `db:"seats_purchased"`
	SeatsUsed      int        `db:"seats_used"`
	ExpiresAt      *time.Time `db:"expires_at"`
	TrialUsed      bool       `db:"trial_used"`
	Active         bool       `db:"active"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// IsUsable reports whether the license authorizes access at the given instant.
func (l *License) IsUsable(now time.Time) bool {
	if !l.Active || l.Status != LicenseStatusActive {
		return false
	}
	if l.ExpiresAt != nil && !l.ExpiresAt.After(now) {
		return false
	}
	return true
}

// CanAddUser reports whether seat capacity allows another grant. A nil
// SeatsPurchased means unlimited. Seat accounting is advisory, see the
// license registry docs.
func (l *License) CanAddUser() bool {
	return l.SeatsPurchased == nil || l.SeatsUsed < *l.SeatsPurchased
}

// SeatAvailability is the informational seat count snapshot surfaced to admins.
type SeatAvailability struct {
	Purchased *int
	Used      int
	Available *int
}

// TenantApp identifies a (tenant, application) license pair, used for cache
// invalidation after the expiry sweep.
type TenantApp struct {
	TenantID      int64
	ApplicationID string
	Slug          string
}

// Grant is a user's access to an application within a tenant. The price fields
// are frozen from the pricing ledger at grant time and never recomputed.
type Grant struct {
	ID            string     `db:"id"`
	UserID        int64      `db:"user_id"`
	TenantID      int64      `db:"tenant_id"`
	ApplicationID string     `db:"application_id"`
	RoleInApp     string     `db:"role_in_app"`
	PriceCents    int64      `db:"price_cents"`
	Currency      string     `db:"currency"`
	BillingCycle  string     `db:"billing_cycle"`
	UserType      string     `db:"user_type"`
	GrantedAt     time.Time  `db:"granted_at"`
	GrantedBy     int64      `db:"granted_by"`
	ExpiresAt     *time.Time `db:"expires_at"`
	Active        bool       `db:"active"`
}

// IsUsable reports whether the grant authorizes access at the given instant.
func (g *Grant) IsUsable(now time.Time) bool {
	if !g.Active {
		return false
	}
	if g.ExpiresAt != nil && !g.ExpiresAt.After(now) {
		return false
	}
	return true
}

// AccessLogEntry is one append-only authorization decision record.
type AccessLogEntry struct {
	ID            string     `db:"id"`
	UserID        int64      `db:"user_id"`
	TenantID      int64      `db:"tenant_id"`
	ApplicationID *string    `db:"application_id"`
	Decision      string     `db:"decision"`
	Reason        string     `db:"reason"`
	IPAddress     string     `db:"ip_address"`
	UserAgent     string     `db:"user_agent"`
	Endpoint      string     `db:"endpoint"`
	CreatedAt     time.Time  `db:"created_at"`
}
