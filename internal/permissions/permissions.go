// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package permissions holds the authorization policy for posts.
//
// The policy is a pure function of the HTTP method, the target post and the
// requester. It performs no I/O and keeps no state, so it can be called from
// any layer and tested exhaustively.
package permissions

import (
	"net/http"

	"github.com/MKhiriev/api-blog/models"
)

// IsReadOnly reports whether method never modifies a resource.
func IsReadOnly(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

// Allow reports whether requester may perform method on post.
//
// Read-only methods are always allowed. Any other method is allowed only for
// an authenticated requester who either authored the post or is staff.
// A nil requester is anonymous.
func Allow(method string, post models.Post, requester *models.Requester) bool {
	if IsReadOnly(method) {
		return true
	}
	if requester == nil {
		return false
	}

	return requester.UserID == post.AuthorID || requester.IsStaff
}

// Check is Allow with the denial reason attached.
//
// It returns nil when the operation is allowed, [ErrAuthenticationRequired]
// when requester is anonymous and [ErrForbidden] when requester is known
// but neither the author nor staff.
func Check(method string, post models.Post, requester *models.Requester) error {
	if Allow(method, post, requester) {
		return nil
	}
	if requester == nil {
		return ErrAuthenticationRequired
	}

	return ErrForbidden
}

// RequireAuthenticated is the collection-level rule: anyone may read, only
// an authenticated requester may create.
func RequireAuthenticated(method string, requester *models.Requester) error {
	if IsReadOnly(method) || requester != nil {
		return nil
	}

	return ErrAuthenticationRequired
}
