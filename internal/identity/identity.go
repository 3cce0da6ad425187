// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
)

// Identity is the resolved caller of a protected request. AllowedApps is the
// pre-resolved entitlement claim used by the gate's fast path; it may lag the
// grant store until the token is reissued.
type Identity struct {
	UserID      int64
	TenantID    int64
	TenantName  string
	AllowedApps []string
	Role        string
}

// HasApp reports whether the identity claim lists the application slug.
func (i *Identity) HasApp(slug string) bool {
	for _, s := range i.AllowedApps {
		if s == slug {
			return true
		}
	}
	return false
}

type contextKey struct{}

var identityContextKey contextKey

// WithIdentity returns a new context with the identity attached.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

// FromContext retrieves the identity from the context.
func FromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(*Identity)
	return id, ok
}
