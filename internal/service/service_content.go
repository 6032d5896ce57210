// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

// contentService is the concrete implementation of ContentService.
// It stamps authorship on new posts and comments and otherwise delegates to
// the repositories.
type contentService struct {
	postRepository    store.PostRepository
	commentRepository store.CommentRepository

	// now returns the creation time stamped on new posts.
	now func() time.Time

	logger *logger.Logger
}

func NewContentService(postRepository store.PostRepository, commentRepository store.CommentRepository, logger *logger.Logger) ContentService {
	return &contentService{
		postRepository:    postRepository,
		commentRepository: commentRepository,
		now:               time.Now,
		logger:            logger,
	}
}

func (c *contentService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := c.postRepository.ListPosts(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing posts failed")
		return nil, fmt.Errorf("listing posts failed: %w", err)
	}

	return posts, nil
}

func (c *contentService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	post, err := c.postRepository.GetPost(ctx, postID)
	if err != nil {
		return models.Post{}, fmt.Errorf("getting post %d failed: %w", postID, err)
	}

	return post, nil
}

// CreatePost saves a new post on behalf of author. The author's current
// display name and today's date are copied into the post and never change
// afterwards.
func (c *contentService) CreatePost(ctx context.Context, fields models.PostFields, author models.Principal) (models.Post, error) {
	log := logger.FromContext(ctx)

	if author.IsAnonymous() {
		return models.Post{}, ErrUnauthenticated
	}
	if !author.IsAdministrator() {
		log.Warn().Int64("user_id", author.UserID).Msg("non-administrator tried to create a post")
		return models.Post{}, ErrForbidden
	}

	post, err := c.postRepository.CreatePost(ctx, models.Post{
		AuthorID:   author.UserID,
		Author:     author.Name,
		Date:       c.now().Format(models.PostDateLayout),
		PostFields: fields,
	})
	if err != nil {
		log.Err(err).Str("title", fields.Title).Msg("post creation failed")
		return models.Post{}, fmt.Errorf("post creation failed: %w", err)
	}

	log.Info().Int64("post_id", post.PostID).Msg("post created")
	return post, nil
}

func (c *contentService) UpdatePost(ctx context.Context, postID int64, fields models.PostFields) (models.Post, error) {
	post, err := c.postRepository.UpdatePost(ctx, postID, fields)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("post_id", postID).Msg("post update failed")
		return models.Post{}, fmt.Errorf("post update failed: %w", err)
	}

	return post, nil
}

func (c *contentService) DeletePost(ctx context.Context, postID int64) error {
	if err := c.postRepository.DeletePost(ctx, postID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("post_id", postID).Msg("post deletion failed")
		return fmt.Errorf("post deletion failed: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("post_id", postID).Msg("post deleted with its comments")
	return nil
}

func (c *contentService) ListComments(ctx context.Context, postID int64) ([]models.CommentView, error) {
	comments, err := c.commentRepository.ListComments(ctx, postID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("post_id", postID).Msg("listing comments failed")
		return nil, fmt.Errorf("listing comments failed: %w", err)
	}

	return comments, nil
}

// AddComment attaches text to a post on behalf of author. Anonymous readers
// get ErrUnauthenticated; a missing post yields store.ErrPostNotFound.
func (c *contentService) AddComment(ctx context.Context, text string, author models.Principal, postID int64) (models.Comment, error) {
	if author.IsAnonymous() {
		return models.Comment{}, ErrUnauthenticated
	}

	comment, err := c.commentRepository.AddComment(ctx, models.Comment{
		Text:     text,
		AuthorID: author.UserID,
		PostID:   postID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("post_id", postID).Msg("adding comment failed")
		return models.Comment{}, fmt.Errorf("adding comment failed: %w", err)
	}

	return comment, nil
}
