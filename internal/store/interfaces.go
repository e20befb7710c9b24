package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/api-blog/models"
)

// PostRepository persists blog posts. Every read resolves the author's
// username; every mutation is a single SQL statement.
type PostRepository interface {
	// Find returns the post with the given id or [ErrPostNotFound].
	Find(ctx context.Context, id int64) (models.Post, error)
	// List returns every post ordered by ascending id. An empty store yields
	// an empty, non-nil slice.
	List(ctx context.Context) ([]models.Post, error)
	// Save inserts a new post and returns it with the assigned ID.
	Save(ctx context.Context, post models.Post) (models.Post, error)
	// Update overwrites the client-mutable fields of an existing post.
	Update(ctx context.Context, post models.Post) (models.Post, error)
	// Delete permanently removes a post.
	Delete(ctx context.Context, id int64) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}
