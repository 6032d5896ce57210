// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/migrations"
	"github.com/MKhiriev/go-blog/models"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	cfg := config.Storage{DB: config.DB{DSN: "sqlite://" + filepath.Join(t.TempDir(), "blog.db")}}
	storages, err := NewStorages(testContext(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	require.Equal(t, migrations.DialectSQLite, storages.db.Dialect())
	return storages
}

func TestSQLiteStorages_BlogLifecycle(t *testing.T) {
	ctx := testContext()
	s := newSQLiteStorages(t)

	// the first account becomes the administrator
	alice, err := s.UserRepository.CreateUser(ctx, models.User{Email: "a@x.com", PasswordHash: "h1", Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), alice.UserID)
	assert.Equal(t, models.RoleAdministrator, alice.Role)
	assert.False(t, alice.CreatedAt.IsZero())

	bob, err := s.UserRepository.CreateUser(ctx, models.User{Email: "b@x.com", PasswordHash: "h2", Name: "Bob"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), bob.UserID)
	assert.Equal(t, models.RoleMember, bob.Role)

	_, err = s.UserRepository.CreateUser(ctx, models.User{Email: "a@x.com", PasswordHash: "h3", Name: "Mallory"})
	require.ErrorIs(t, err, ErrEmailAlreadyExists)

	// lookups are case-sensitive
	_, err = s.UserRepository.FindUserByEmail(ctx, "A@x.com")
	require.ErrorIs(t, err, ErrUserNotFound)
	found, err := s.UserRepository.FindUserByID(ctx, bob.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", found.Name)

	post, err := s.PostRepository.CreatePost(ctx, models.Post{
		AuthorID: alice.UserID,
		Author:   alice.Name,
		Date:     "October 19, 2026",
		PostFields: models.PostFields{
			Title: "Hello", Subtitle: "First", Body: "Body", ImgURL: "https://example.com/a.png",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), post.PostID)

	duplicate := post
	duplicate.PostID = 0
	_, err = s.PostRepository.CreatePost(ctx, duplicate)
	require.ErrorIs(t, err, ErrTitleAlreadyExists)

	comment, err := s.CommentRepository.AddComment(ctx, models.Comment{Text: "Nice post", AuthorID: bob.UserID, PostID: post.PostID})
	require.NoError(t, err)
	assert.Positive(t, comment.CommentID)

	_, err = s.CommentRepository.AddComment(ctx, models.Comment{Text: "Lost", AuthorID: bob.UserID, PostID: 404})
	require.ErrorIs(t, err, ErrPostNotFound)

	_, err = s.CommentRepository.AddComment(ctx, models.Comment{Text: "Ghost", AuthorID: 404, PostID: post.PostID})
	require.ErrorIs(t, err, ErrUserNotFound)

	comments, err := s.CommentRepository.ListComments(ctx, post.PostID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Bob", comments[0].AuthorName)
	assert.Equal(t, "b@x.com", comments[0].AuthorEmail)

	updated, err := s.PostRepository.UpdatePost(ctx, post.PostID, models.PostFields{
		Title: "Hello again", Subtitle: "Edited", Body: "New body", ImgURL: "https://example.com/b.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello again", updated.Title)
	assert.Equal(t, "Alice", updated.Author)
	assert.Equal(t, post.Date, updated.Date)

	_, err = s.PostRepository.UpdatePost(ctx, 404, updated.PostFields)
	require.ErrorIs(t, err, ErrPostNotFound)

	require.NoError(t, s.PostRepository.DeletePost(ctx, post.PostID))
	require.ErrorIs(t, s.PostRepository.DeletePost(ctx, post.PostID), ErrPostNotFound)

	comments, err = s.CommentRepository.ListComments(ctx, post.PostID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	_, err = s.PostRepository.GetPost(ctx, post.PostID)
	require.ErrorIs(t, err, ErrPostNotFound)

	posts, err := s.PostRepository.ListPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestSQLiteStorages_SingleAdministratorIndex(t *testing.T) {
	ctx := testContext()
	s := newSQLiteStorages(t)

	_, err := s.UserRepository.CreateUser(ctx, models.User{Email: "a@x.com", PasswordHash: "h", Name: "Alice"})
	require.NoError(t, err)

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO users (email, password_hash, name, role) VALUES (?, ?, ?, ?)",
		"c@x.com", "h", "Carol", string(models.RoleAdministrator))
	require.Error(t, err)
	assert.True(t, isUniqueViolation(err, constraintUserRole), "got %v", err)
}

func TestSQLiteStorages_MigrationsAreIdempotent(t *testing.T) {
	s := newSQLiteStorages(t)

	require.NoError(t, s.db.Migrate(testContext()))
}
