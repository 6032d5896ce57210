// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/migrations"
	"github.com/MKhiriev/go-blog/models"
)

func TestBuildQueries_Placeholders(t *testing.T) {
	post := models.Post{
		AuthorID: 1,
		Author:   "Alice",
		Date:     "January 02, 2026",
		PostFields: models.PostFields{
			Title: "Hello", Subtitle: "World", Body: "Body", ImgURL: "https://example.com/a.png",
		},
	}

	tests := []struct {
		name    string
		dialect string
		want    []string
		notWant []string
	}{
		{
			name:    "postgres uses dollar placeholders",
			dialect: migrations.DialectPostgres,
			want:    []string{"$1", "$7"},
			notWant: []string{"?"},
		},
		{
			name:    "sqlite uses question placeholders",
			dialect: migrations.DialectSQLite,
			want:    []string{"?"},
			notWant: []string{"$1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newDB(nil, tt.dialect, logger.Nop())

			query, args, err := db.buildCreatePostQuery(post)
			require.NoError(t, err)

			for _, w := range tt.want {
				require.Contains(t, query, w)
			}
			for _, nw := range tt.notWant {
				require.NotContains(t, query, nw)
			}
			require.Len(t, args, 7)
		})
	}
}

func TestBuildCreateUserQuery(t *testing.T) {
	db := newDB(nil, migrations.DialectPostgres, logger.Nop())

	query, args, err := db.buildCreateUserQuery(models.User{Email: "a@x.com", PasswordHash: "hash", Name: "Alice"})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.True(t, strings.HasPrefix(q, "insert into users"))
	// the role is decided by the insert itself
	require.Contains(t, q, "case when exists (select 1 from users) then $4 else $5 end")
	require.Contains(t, q, "returning id, email, password_hash, name, role, created_at")
	require.Equal(t, []any{"a@x.com", "hash", "Alice", models.RoleMember, models.RoleAdministrator}, args)
}

func TestBuildFindUserQuery(t *testing.T) {
	db := newDB(nil, migrations.DialectSQLite, logger.Nop())

	query, args, err := db.buildFindUserQuery(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	require.Equal(t, "SELECT id, email, password_hash, name, role, created_at FROM users WHERE email = ?", query)
	require.Equal(t, []any{"a@x.com"}, args)
}

func TestBuildListPostsQuery_OrderedByID(t *testing.T) {
	db := newDB(nil, migrations.DialectPostgres, logger.Nop())

	query, args, err := db.buildListPostsQuery()
	require.NoError(t, err)

	require.Equal(t, "SELECT id, author_id, title, subtitle, date, body, author, img_url FROM blog_posts ORDER BY id ASC", query)
	require.Empty(t, args)
}

func TestBuildUpdatePostQuery_OnlyEditableFields(t *testing.T) {
	db := newDB(nil, migrations.DialectPostgres, logger.Nop())

	query, args, err := db.buildUpdatePostQuery(7, models.PostFields{
		Title: "New", Subtitle: "Sub", Body: "Body", ImgURL: "https://example.com/b.png",
	})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.True(t, strings.HasPrefix(q, "update blog_posts set"))
	require.NotContains(t, q, "author =")
	require.NotContains(t, q, "date =")
	require.Contains(t, q, "where id = $5")
	require.Equal(t, []any{"New", "Sub", "Body", "https://example.com/b.png", int64(7)}, args)
}

func TestBuildListCommentsQuery(t *testing.T) {
	db := newDB(nil, migrations.DialectPostgres, logger.Nop())

	query, args, err := db.buildListCommentsQuery(3)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from comments c join users u on u.id = c.author_id")
	require.Contains(t, q, "where c.post_id = $1")
	require.Contains(t, q, "order by c.id asc")
	require.Equal(t, []any{int64(3)}, args)
}

func TestBuildDeleteQueries(t *testing.T) {
	db := newDB(nil, migrations.DialectPostgres, logger.Nop())

	query, args, err := db.buildDeletePostCommentsQuery(9)
	require.NoError(t, err)
	require.Equal(t, "DELETE FROM comments WHERE post_id = $1", query)
	require.Equal(t, []any{int64(9)}, args)

	query, args, err = db.buildDeletePostQuery(9)
	require.NoError(t, err)
	require.Equal(t, "DELETE FROM blog_posts WHERE id = $1", query)
	require.Equal(t, []any{int64(9)}, args)
}
