// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, trace identifiers, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/api-blog/models"
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

// RequesterCtxKey is the key under which the authentication middleware
// stores the resolved *models.Requester.
var RequesterCtxKey = contextKey("requester")

// WithRequester returns a copy of ctx carrying requester. A nil requester
// is stored as-is and read back as anonymous.
func WithRequester(ctx context.Context, requester *models.Requester) context.Context {
	return context.WithValue(ctx, RequesterCtxKey, requester)
}

// GetRequesterFromContext returns the requester stored by [WithRequester],
// or nil for an anonymous caller.
//
// Example usage:
//
//	requester := utils.GetRequesterFromContext(r.Context())
//	if requester == nil {
//	    // anonymous
//	}
func GetRequesterFromContext(ctx context.Context) *models.Requester {
	requester, _ := ctx.Value(RequesterCtxKey).(*models.Requester)
	return requester
}
