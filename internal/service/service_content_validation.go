// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// ContentValidationService checks submitted post and comment fields before
// they reach the wrapped ContentService. Failures wrap both
// ErrInvalidDataProvided and a validators.FieldErrors.
type ContentValidationService struct {
	inner     ContentService
	validator validators.Validator
}

func NewContentValidationService() ContentServiceWrapper {
	return &ContentValidationService{
		validator: validators.NewFormValidator(),
	}
}

func (v *ContentValidationService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return v.inner.ListPosts(ctx)
}

func (v *ContentValidationService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	return v.inner.GetPost(ctx, postID)
}

func (v *ContentValidationService) CreatePost(ctx context.Context, fields models.PostFields, author models.Principal) (models.Post, error) {
	if err := v.validator.Validate(ctx, fields); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreatePost(ctx, fields, author)
}

func (v *ContentValidationService) UpdatePost(ctx context.Context, postID int64, fields models.PostFields) (models.Post, error) {
	if err := v.validator.Validate(ctx, fields); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdatePost(ctx, postID, fields)
}

func (v *ContentValidationService) DeletePost(ctx context.Context, postID int64) error {
	return v.inner.DeletePost(ctx, postID)
}

func (v *ContentValidationService) ListComments(ctx context.Context, postID int64) ([]models.CommentView, error) {
	return v.inner.ListComments(ctx, postID)
}

// AddComment lets an anonymous author through unvalidated so the inner
// service reports ErrUnauthenticated rather than a form error.
func (v *ContentValidationService) AddComment(ctx context.Context, text string, author models.Principal, postID int64) (models.Comment, error) {
	if !author.IsAnonymous() {
		if err := v.validator.Validate(ctx, models.CommentForm{Text: text}); err != nil {
			return models.Comment{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}

	return v.inner.AddComment(ctx, text, author, postID)
}

func (v *ContentValidationService) Wrap(wrapped ContentService) ContentService {
	v.inner = wrapped
	return v
}
