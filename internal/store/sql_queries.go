// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog/models"
)

var (
	userColumns = []string{"id", "email", "password_hash", "name", "role", "created_at"}
	postColumns = []string{"id", "author_id", "title", "subtitle", "date", "body", "author", "img_url"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// buildCreateUserQuery inserts a user and decides its role in the same
// statement: administrator when the table is empty, member otherwise.
func (db *DB) buildCreateUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(models.User{}.TableName()).
		Columns("email", "password_hash", "name", "role").
		Values(
			user.Email,
			user.PasswordHash,
			user.Name,
			sq.Expr("CASE WHEN EXISTS (SELECT 1 FROM users) THEN ? ELSE ? END", models.RoleMember, models.RoleAdministrator),
		).
		Suffix(returning(userColumns)).
		ToSql()
}

func (db *DB) buildFindUserQuery(where sq.Eq) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
}

func (db *DB) buildListPostsQuery() (string, []any, error) {
	return db.builder.
		Select(postColumns...).
		From(models.Post{}.TableName()).
		OrderBy("id ASC").
		ToSql()
}

func (db *DB) buildGetPostQuery(postID int64) (string, []any, error) {
	return db.builder.
		Select(postColumns...).
		From(models.Post{}.TableName()).
		Where(sq.Eq{"id": postID}).
		ToSql()
}

func (db *DB) buildPostExistsQuery(postID int64) (string, []any, error) {
	return db.builder.
		Select("1").
		From(models.Post{}.TableName()).
		Where(sq.Eq{"id": postID}).
		ToSql()
}

func (db *DB) buildCreatePostQuery(post models.Post) (string, []any, error) {
	return db.builder.
		Insert(models.Post{}.TableName()).
		Columns("author_id", "title", "subtitle", "date", "body", "author", "img_url").
		Values(post.AuthorID, post.Title, post.Subtitle, post.Date, post.Body, post.Author, post.ImgURL).
		Suffix(returning(postColumns)).
		ToSql()
}

// buildUpdatePostQuery replaces the editable fields only. Author, date and
// identifier never change.
func (db *DB) buildUpdatePostQuery(postID int64, fields models.PostFields) (string, []any, error) {
	return db.builder.
		Update(models.Post{}.TableName()).
		Set("title", fields.Title).
		Set("subtitle", fields.Subtitle).
		Set("body", fields.Body).
		Set("img_url", fields.ImgURL).
		Where(sq.Eq{"id": postID}).
		Suffix(returning(postColumns)).
		ToSql()
}

func (db *DB) buildDeletePostCommentsQuery(postID int64) (string, []any, error) {
	return db.builder.
		Delete(models.Comment{}.TableName()).
		Where(sq.Eq{"post_id": postID}).
		ToSql()
}

func (db *DB) buildDeletePostQuery(postID int64) (string, []any, error) {
	return db.builder.
		Delete(models.Post{}.TableName()).
		Where(sq.Eq{"id": postID}).
		ToSql()
}

func (db *DB) buildListCommentsQuery(postID int64) (string, []any, error) {
	return db.builder.
		Select("c.id", "c.text", "c.author_id", "c.post_id", "u.name", "u.email").
		From(fmt.Sprintf("%s c", models.Comment{}.TableName())).
		Join(fmt.Sprintf("%s u ON u.id = c.author_id", models.User{}.TableName())).
		Where(sq.Eq{"c.post_id": postID}).
		OrderBy("c.id ASC").
		ToSql()
}

func (db *DB) buildAddCommentQuery(comment models.Comment) (string, []any, error) {
	return db.builder.
		Insert(models.Comment{}.TableName()).
		Columns("text", "author_id", "post_id").
		Values(comment.Text, comment.AuthorID, comment.PostID).
		Suffix("RETURNING id").
		ToSql()
}
