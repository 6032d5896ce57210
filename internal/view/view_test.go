// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package view

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog/models"
)

func newTestRenderer(t *testing.T) *HTMLRenderer {
	t.Helper()

	r, err := NewHTMLRenderer()
	require.NoError(t, err)
	return r
}

func TestNewHTMLRenderer_ParsesEveryPage(t *testing.T) {
	r := newTestRenderer(t)

	for _, name := range pageNames {
		assert.Contains(t, r.templates, name)
	}
}

func TestHTMLRenderer_RenderEveryPageWithZeroPage(t *testing.T) {
	r := newTestRenderer(t)

	for _, name := range pageNames {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			err := r.Render(rec, http.StatusOK, name, Page{})

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		})
	}
}

func TestHTMLRenderer_Index(t *testing.T) {
	r := newTestRenderer(t)
	posts := []models.Post{
		{PostID: 1, Author: "Alice", Date: "March 07, 2026", PostFields: models.PostFields{Title: "Hello", Subtitle: "World"}},
	}

	t.Run("administrator sees management links", func(t *testing.T) {
		rec := httptest.NewRecorder()
		page := Page{
			Principal:  models.Principal{UserID: 1, Name: "Alice", Role: models.RoleAdministrator},
			Posts:      posts,
			AdminEmail: "owner@x.com",
			Flash:      "Welcome back!",
		}

		require.NoError(t, r.Render(rec, http.StatusOK, PageIndex, page))

		body := rec.Body.String()
		assert.Contains(t, body, `href="/post/1"`)
		assert.Contains(t, body, "Posted by Alice on March 07, 2026")
		assert.Contains(t, body, `href="/delete/1"`)
		assert.Contains(t, body, `href="/new-post"`)
		assert.Contains(t, body, "owner@x.com")
		assert.Contains(t, body, "Welcome back!")
		assert.Contains(t, body, "Log Out")
	})

	t.Run("anonymous sees login links only", func(t *testing.T) {
		rec := httptest.NewRecorder()

		require.NoError(t, r.Render(rec, http.StatusOK, PageIndex, Page{Posts: posts}))

		body := rec.Body.String()
		assert.NotContains(t, body, `href="/delete/1"`)
		assert.NotContains(t, body, `href="/new-post"`)
		assert.Contains(t, body, `href="/login"`)
	})
}

func TestHTMLRenderer_PostEscapesCommentsButNotBody(t *testing.T) {
	r := newTestRenderer(t)
	rec := httptest.NewRecorder()
	page := Page{
		Post: models.Post{PostID: 3, PostFields: models.PostFields{Title: "T", Body: "<p>rich</p>"}},
		Comments: []models.CommentView{
			{Comment: models.Comment{Text: "<script>x</script>"}, AuthorName: "Bob", AuthorEmail: "bob@x.com"},
		},
	}

	require.NoError(t, r.Render(rec, http.StatusOK, PagePost, page))

	body := rec.Body.String()
	assert.Contains(t, body, "<p>rich</p>")
	assert.NotContains(t, body, "<script>x</script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "https://www.gravatar.com/avatar/")
	assert.Contains(t, body, `action="/post/3"`)
}

func TestHTMLRenderer_FormRefillAndErrors(t *testing.T) {
	r := newTestRenderer(t)
	rec := httptest.NewRecorder()
	page := Page{
		Form:   models.RegisterForm{Email: "bad", Name: "Bob", Password: "secret"},
		Errors: map[string]string{"email": "Invalid email address."},
	}

	require.NoError(t, r.Render(rec, http.StatusBadRequest, PageRegister, page))

	body := rec.Body.String()
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body, `value="bad"`)
	assert.Contains(t, body, `value="Bob"`)
	assert.Contains(t, body, "Invalid email address.")
	assert.NotContains(t, body, "secret")
}

func TestHTMLRenderer_EditForm(t *testing.T) {
	r := newTestRenderer(t)
	rec := httptest.NewRecorder()
	fields := models.PostFields{Title: "Hello", Subtitle: "World", Body: "Body", ImgURL: "https://example.com/a.png"}

	require.NoError(t, r.Render(rec, http.StatusOK, PageMakePost, Page{
		Post:   models.Post{PostID: 4, PostFields: fields},
		Form:   fields,
		IsEdit: true,
	}))

	body := rec.Body.String()
	assert.Contains(t, body, "Edit Post")
	assert.Contains(t, body, `action="/edit-post/4"`)
	assert.Contains(t, body, `value="Hello"`)
}

func TestHTMLRenderer_UnknownTemplate(t *testing.T) {
	r := newTestRenderer(t)
	rec := httptest.NewRecorder()

	err := r.Render(rec, http.StatusOK, "missing", Page{})

	assert.ErrorIs(t, err, ErrUnknownTemplate)
	assert.Empty(t, rec.Body.String())
}

func TestGravatarURL_NormalizesEmail(t *testing.T) {
	assert.Equal(t, gravatarURL("bob@x.com"), gravatarURL("  Bob@X.com "))
}
