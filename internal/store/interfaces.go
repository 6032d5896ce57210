// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the server-assigned
	// UserID, Role and CreatedAt. The first account ever created becomes
	// the administrator.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// PostRepository persists blog posts.
type PostRepository interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	UpdatePost(ctx context.Context, postID int64, fields models.PostFields) (models.Post, error)
	// DeletePost removes the post together with all of its comments.
	DeletePost(ctx context.Context, postID int64) error
}

// CommentRepository persists comments on posts.
type CommentRepository interface {
	ListComments(ctx context.Context, postID int64) ([]models.CommentView, error)
	// AddComment checks that the parent post exists and inserts the comment
	// in one transaction.
	AddComment(ctx context.Context, comment models.Comment) (models.Comment, error)
}
