// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// password derivation, HTTP response writing and session token generation
// and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key used to store the request principal in the context.
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying principal.
func WithPrincipal(ctx context.Context, principal models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, principal)
}

// GetPrincipalFromContext returns the principal attached to ctx, or
// [models.Anonymous] when nothing (or something of the wrong type) is attached.
func GetPrincipalFromContext(ctx context.Context) models.Principal {
	if ctx == nil {
		return models.Anonymous
	}

	principal, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	if !ok {
		return models.Anonymous
	}

	return principal
}
