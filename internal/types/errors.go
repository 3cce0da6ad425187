// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Machine-readable error codes surfaced to API clients.
const (
	CodeNotFound             = "NOT_FOUND"
	CodeValidation           = "VALIDATION_ERROR"
	CodePricingOverlap       = "PRICING_OVERLAP"
	CodePricingNotConfigured = "PRICING_NOT_CONFIGURED"
	CodeDuplicateLicense     = "DUPLICATE_LICENSE"
	CodeDuplicateApplication = "DUPLICATE_APPLICATION"
	CodeDuplicateGrant       = "DUPLICATE_GRANT"
	CodeInvalidRoleInApp     = "INVALID_ROLE_IN_APP"
)

// Error is the closed error shape of the engine: a code, an HTTP-analogous
// status and optional structured details. There is no error hierarchy, every
// kind carries the same shape.
type Error struct {
	Code    string
	Status  int
	Message string
	Details map[string]interface{}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsEngineError unwraps err into *Error when possible.
func AsEngineError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// ErrorStatus maps err to an HTTP status, defaulting to 500.
func ErrorStatus(err error) int {
	if e, ok := AsEngineError(err); ok {
		return e.Status
	}
	return http.StatusInternalServerError
}

func NewNotFoundError(resource, id string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("%s %q not found", resource, id),
	}
}

func NewValidationError(message string) *Error {
	return &Error{
		Code:    CodeValidation,
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

func NewInvalidRoleError(role string) *Error {
	return &Error{
		Code:    CodeInvalidRoleInApp,
		Status:  http.StatusUnprocessableEntity,
		Message: fmt.Sprintf("invalid role in app: %q", role),
		Details: map[string]interface{}{
			"role":        role,
			"valid_roles": []string{RoleUser, RoleOperations, RoleManager, RoleAdmin},
		},
	}
}

func NewPricingNotConfiguredError(applicationID, userType string) *Error {
	return &Error{
		Code:    CodePricingNotConfigured,
		Status:  http.StatusUnprocessableEntity,
		Message: fmt.Sprintf("no pricing configured for application %q and user type %q", applicationID, userType),
		Details: map[string]interface{}{
			"application_id": applicationID,
			"user_type":      userType,
		},
	}
}

func NewDuplicateLicenseError(tenantID int64, applicationID string) *Error {
	return &Error{
		Code:    CodeDuplicateLicense,
		Status:  http.StatusConflict,
		Message: fmt.Sprintf("license already exists for tenant %d and application %q", tenantID, applicationID),
		Details: map[string]interface{}{
			"tenant_id":      tenantID,
			"application_id": applicationID,
		},
	}
}

func NewDuplicateApplicationError(slug string) *Error {
	return &Error{
		Code:    CodeDuplicateApplication,
		Status:  http.StatusConflict,
		Message: fmt.Sprintf("application with slug %q already exists", slug),
		Details: map[string]interface{}{
			"slug": slug,
		},
	}
}

func NewDuplicateGrantError(userID, tenantID int64, applicationID string) *Error {
	return &Error{
		Code:    CodeDuplicateGrant,
		Status:  http.StatusConflict,
		Message: fmt.Sprintf("active grant already exists for user %d in tenant %d for application %q", userID, tenantID, applicationID),
		Details: map[string]interface{}{
			"user_id":        userID,
			"tenant_id":      tenantID,
			"application_id": applicationID,
		},
	}
}

// PricingConflict describes the clash between a requested validity range and
// an existing entry, with enough detail to resolve it without another query.
type PricingConflict struct {
	ConflictingID string     `json:"conflicting_id"`
	ApplicationID string     `json:"application_id"`
	UserType      string     `json:"user_type"`
	BillingCycle  string     `json:"billing_cycle"`
	Currency      string     `json:"currency"`
	ExistingFrom  time.Time  `json:"existing_from"`
	ExistingTo    *time.Time `json:"existing_to"`
	RequestedFrom time.Time  `json:"requested_from"`
	RequestedTo   *time.Time `json:"requested_to"`
}

func NewPricingOverlapError(c *PricingConflict) *Error {
	return &Error{
		Code:    CodePricingOverlap,
		Status:  http.StatusUnprocessableEntity,
		Message: "pricing validity range overlaps an existing active entry",
		Details: map[string]interface{}{
			"conflict": c,
		},
	}
}
