// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/api-blog/internal/logger"
	"github.com/MKhiriev/api-blog/models"
)

// postRepository is the SQL-backed implementation of [PostRepository].
// Reads join the users table so every returned post carries its author's
// username.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by db.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

func (r *postRepository) Find(ctx context.Context, id int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.findPost(id)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.Find").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	post, err := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postRepository.Find").Int64("post_id", id).Msg("error scanning post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}

func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.listPosts()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.List").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			log.Err(err).Str("func", "*postRepository.List").Msg("error scanning post")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.List").Msg("error iterating posts")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// Save inserts post and returns it with the database-assigned ID.
// A missing author maps to [ErrNoUserWasFound].
func (r *postRepository) Save(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.insertPost(post)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.Save").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&post.ID); err != nil {
		log.Err(err).Str("func", "*postRepository.Save").Msg("error inserting post")
		if r.db.errorClassificator.Classify(err) == ForeignKeyViolation {
			return models.Post{}, ErrNoUserWasFound
		}
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return post, nil
}

func (r *postRepository) Update(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.updatePost(post)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.Update").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*postRepository.Update").Int64("post_id", post.ID).Msg("error updating post")
		return models.Post{}, err
	}

	return post, nil
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.deletePost(id)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.Delete").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*postRepository.Delete").Int64("post_id", id).Msg("error deleting post")
		return err
	}

	return nil
}

// execAffectingOne runs a statement addressed by primary key and reports
// [ErrPostNotFound] when it touched no row.
func (r *postRepository) execAffectingOne(ctx context.Context, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	err := row.Scan(
		&post.ID,
		&post.AuthorID,
		&post.Author,
		&post.Title,
		&post.Text,
		&post.CreatedAt,
		&post.Published,
	)
	if err != nil {
		return models.Post{}, err
	}

	post.CreatedAt = post.CreatedAt.UTC()
	return post, nil
}
