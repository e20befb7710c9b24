// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/api-blog/internal/logger"
	"github.com/MKhiriev/api-blog/internal/permissions"
	"github.com/MKhiriev/api-blog/internal/store"
	"github.com/MKhiriev/api-blog/internal/validators"
	"github.com/MKhiriev/api-blog/models"
)

// postService is the concrete implementation of [PostService]. It combines
// the repository, the authorization policy and field validation.
type postService struct {
	posts     store.PostRepository
	validator validators.Validator

	// now stamps CreatedAt on new posts.
	now func() time.Time

	logger *logger.Logger
}

func NewPostService(posts store.PostRepository, validator validators.Validator, logger *logger.Logger) PostService {
	return &postService{
		posts:     posts,
		validator: validator,
		now:       func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		logger:    logger,
	}
}

func (s *postService) List(ctx context.Context) ([]models.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}

	return posts, nil
}

func (s *postService) Get(ctx context.Context, id int64) (models.Post, error) {
	post, err := s.posts.Find(ctx, id)
	if err != nil {
		return models.Post{}, fmt.Errorf("error getting post %d: %w", id, err)
	}

	return post, nil
}

// Create stores a new post authored by requester. read is only called once
// the requester is known to be authenticated.
func (s *postService) Create(ctx context.Context, requester *models.Requester, read models.PostInputReader) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := permissions.RequireAuthenticated(http.MethodPost, requester); err != nil {
		return models.Post{}, err
	}

	input, err := read()
	if err != nil {
		return models.Post{}, err
	}

	input = validators.NormalizePostInput(input)
	if err = s.validator.Validate(ctx, input, validators.FieldTitle, validators.FieldText); err != nil {
		return models.Post{}, err
	}

	post := models.Post{
		AuthorID:  requester.UserID,
		Author:    requester.Username,
		CreatedAt: s.now(),
	}.Merge(input)

	saved, err := s.posts.Save(ctx, post)
	if err != nil {
		log.Err(err).Str("func", "*postService.Create").Int64("author_id", requester.UserID).Msg("error saving post")
		return models.Post{}, fmt.Errorf("error saving post: %w", err)
	}

	log.Info().Int64("post_id", saved.ID).Int64("author_id", saved.AuthorID).Msg("post created")
	return saved, nil
}

// Update applies the provided fields to the post and persists the result
// with a single statement. read is called after the find and permission
// checks.
func (s *postService) Update(ctx context.Context, id int64, requester *models.Requester, read models.PostInputReader) (models.Post, error) {
	log := logger.FromContext(ctx)

	post, err := s.Get(ctx, id)
	if err != nil {
		return models.Post{}, err
	}

	if err = permissions.Check(http.MethodPatch, post, requester); err != nil {
		log.Warn().Err(err).Int64("post_id", id).Msg("post update denied")
		return models.Post{}, err
	}

	input, err := read()
	if err != nil {
		return models.Post{}, err
	}

	input = validators.NormalizePostInput(input)
	if err = s.validator.Validate(ctx, input); err != nil {
		return models.Post{}, err
	}

	updated, err := s.posts.Update(ctx, post.Merge(input))
	if err != nil {
		log.Err(err).Str("func", "*postService.Update").Int64("post_id", id).Msg("error updating post")
		return models.Post{}, fmt.Errorf("error updating post %d: %w", id, err)
	}

	return updated, nil
}

func (s *postService) Delete(ctx context.Context, id int64, requester *models.Requester) error {
	log := logger.FromContext(ctx)

	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = permissions.Check(http.MethodDelete, post, requester); err != nil {
		log.Warn().Err(err).Int64("post_id", id).Msg("post deletion denied")
		return err
	}

	if err = s.posts.Delete(ctx, id); err != nil {
		log.Err(err).Str("func", "*postService.Delete").Int64("post_id", id).Msg("error deleting post")
		return fmt.Errorf("error deleting post %d: %w", id, err)
	}

	log.Info().Int64("post_id", id).Int64("by", requester.UserID).Msg("post deleted")
	return nil
}
