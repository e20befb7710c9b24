// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the blog REST API.
//
// [BlogAPI] hides request building, bearer token handling and status code
// mapping. Failed calls return an [*APIError] that wraps one of the sentinel
// errors from errors.go, so callers can branch with [errors.Is] (e.g.
// [ErrForbidden] for 403, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/api-blog/models"
)

// BlogAPI is the set of calls a client can make against the blog server.
type BlogAPI interface {
	// SetToken stores the bearer token attached to every subsequent request.
	// An empty token makes the client anonymous again.
	SetToken(token string)

	// Token returns the bearer token currently stored, or "".
	Token() string

	// Register creates an account. It does not log in.
	Register(ctx context.Context, credentials models.Credentials) (models.UserResponse, error)

	// Login exchanges credentials for an access token and stores it via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	// VerifyToken asks the server whether token is still valid.
	VerifyToken(ctx context.Context, token string) error

	// Me returns the account behind the stored token.
	Me(ctx context.Context) (models.UserResponse, error)

	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	CreatePost(ctx context.Context, req models.PostRequest) (models.Post, error)

	// UpdatePost sends a partial update. Nil fields of req are left out of
	// the request body and keep their stored value.
	UpdatePost(ctx context.Context, id int64, req models.PostRequest) (models.Post, error)
	DeletePost(ctx context.Context, id int64) error
}
