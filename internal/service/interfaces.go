// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// AuthService registers accounts and checks credentials.
type AuthService interface {
	Register(ctx context.Context, email, rawPassword, name string) (models.User, error)
	Authenticate(ctx context.Context, email, rawPassword string) (models.User, error)
}

// SessionService issues session tokens and resolves them back to the
// principal they belong to.
type SessionService interface {
	Login(ctx context.Context, user models.User) (models.Token, error)
	Resolve(ctx context.Context, token string) (models.Principal, error)
}

// ContentService manages posts and their comments.
type ContentService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	CreatePost(ctx context.Context, fields models.PostFields, author models.Principal) (models.Post, error)
	UpdatePost(ctx context.Context, postID int64, fields models.PostFields) (models.Post, error)
	DeletePost(ctx context.Context, postID int64) error

	ListComments(ctx context.Context, postID int64) ([]models.CommentView, error)
	AddComment(ctx context.Context, text string, author models.Principal, postID int64) (models.Comment, error)
}

// ContentServiceWrapper defines middleware composition for ContentService.
// Implementations wrap an existing ContentService to add behavior such as
// logging or validating.
type ContentServiceWrapper interface {
	Wrap(ContentService) ContentService
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
