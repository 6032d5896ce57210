// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/view"
	"github.com/MKhiriev/go-blog/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn     func(ctx context.Context, email, rawPassword, name string) (models.User, error)
	authenticateFn func(ctx context.Context, email, rawPassword string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, email, rawPassword, name string) (models.User, error) {
	return m.registerFn(ctx, email, rawPassword, name)
}

func (m *mockAuthService) Authenticate(ctx context.Context, email, rawPassword string) (models.User, error) {
	return m.authenticateFn(ctx, email, rawPassword)
}

type mockSessionService struct {
	loginFn   func(ctx context.Context, user models.User) (models.Token, error)
	resolveFn func(ctx context.Context, token string) (models.Principal, error)
}

func (m *mockSessionService) Login(ctx context.Context, user models.User) (models.Token, error) {
	return m.loginFn(ctx, user)
}

func (m *mockSessionService) Resolve(ctx context.Context, token string) (models.Principal, error) {
	return m.resolveFn(ctx, token)
}

// mockContentService fails the test on any call without a configured func.
type mockContentService struct {
	t *testing.T

	listPostsFn    func(ctx context.Context) ([]models.Post, error)
	getPostFn      func(ctx context.Context, postID int64) (models.Post, error)
	createPostFn   func(ctx context.Context, fields models.PostFields, author models.Principal) (models.Post, error)
	updatePostFn   func(ctx context.Context, postID int64, fields models.PostFields) (models.Post, error)
	deletePostFn   func(ctx context.Context, postID int64) error
	listCommentsFn func(ctx context.Context, postID int64) ([]models.CommentView, error)
	addCommentFn   func(ctx context.Context, text string, author models.Principal, postID int64) (models.Comment, error)
}

func (m *mockContentService) unexpected(method string) {
	m.t.Helper()
	m.t.Fatalf("unexpected call to ContentService.%s", method)
}

func (m *mockContentService) ListPosts(ctx context.Context) ([]models.Post, error) {
	if m.listPostsFn == nil {
		m.unexpected("ListPosts")
	}
	return m.listPostsFn(ctx)
}

func (m *mockContentService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	if m.getPostFn == nil {
		m.unexpected("GetPost")
	}
	return m.getPostFn(ctx, postID)
}

func (m *mockContentService) CreatePost(ctx context.Context, fields models.PostFields, author models.Principal) (models.Post, error) {
	if m.createPostFn == nil {
		m.unexpected("CreatePost")
	}
	return m.createPostFn(ctx, fields, author)
}

func (m *mockContentService) UpdatePost(ctx context.Context, postID int64, fields models.PostFields) (models.Post, error) {
	if m.updatePostFn == nil {
		m.unexpected("UpdatePost")
	}
	return m.updatePostFn(ctx, postID, fields)
}

func (m *mockContentService) DeletePost(ctx context.Context, postID int64) error {
	if m.deletePostFn == nil {
		m.unexpected("DeletePost")
	}
	return m.deletePostFn(ctx, postID)
}

func (m *mockContentService) ListComments(ctx context.Context, postID int64) ([]models.CommentView, error) {
	if m.listCommentsFn == nil {
		m.unexpected("ListComments")
	}
	return m.listCommentsFn(ctx, postID)
}

func (m *mockContentService) AddComment(ctx context.Context, text string, author models.Principal, postID int64) (models.Comment, error) {
	if m.addCommentFn == nil {
		m.unexpected("AddComment")
	}
	return m.addCommentFn(ctx, text, author, postID)
}

type mockAppInfoService struct {
	info models.AppBuildInfo
}

func (m *mockAppInfoService) GetAppInfo(_ context.Context) models.AppBuildInfo {
	return m.info
}

// ─────────────────────────────────────────────
// Fixtures and helpers
// ─────────────────────────────────────────────

const testFlashKey = "test-sign-key"

var (
	adminPrincipal  = models.Principal{UserID: 1, Email: "alice@x.com", Name: "Alice", Role: models.RoleAdministrator}
	memberPrincipal = models.Principal{UserID: 2, Email: "bob@x.com", Name: "Bob", Role: models.RoleMember}

	helloFields = models.PostFields{
		Title:    "Hello",
		Subtitle: "First post",
		Body:     "<p>Body</p>",
		ImgURL:   "https://example.com/a.png",
	}
	helloPost = models.Post{PostID: 1, AuthorID: 1, Author: "Alice", Date: "March 07, 2026", PostFields: helloFields}
)

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			SessionSignKey: testFlashKey,
			AdminEmail:     "owner@x.com",
		},
		Server: config.Server{RequestTimeout: 5 * time.Second},
	}
}

// newTestHandler builds a Handler with the real HTML renderer. Services left
// nil in svcs are replaced by mocks that fail on use.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()

	if svcs.ContentService == nil {
		svcs.ContentService = &mockContentService{t: t}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{info: models.AppBuildInfo{Version: "test"}}
	}

	renderer, err := view.NewHTMLRenderer()
	require.NoError(t, err)

	return NewHandler(svcs, renderer, testConfig(), logger.Nop())
}

// formRequest builds a urlencoded POST request.
func formRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func withPrincipal(r *http.Request, principal models.Principal) *http.Request {
	return r.WithContext(utils.WithPrincipal(r.Context(), principal))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// flashOf decodes the flash message set on rec.
func flashOf(t *testing.T, h *Handler, rec *httptest.ResponseRecorder) string {
	t.Helper()

	cookie := findCookie(rec, flashCookieName)
	require.NotNil(t, cookie, "expected a flash cookie")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	return h.popFlash(httptest.NewRecorder(), req)
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, location, rec.Header().Get("Location"))
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()
	cfg := testConfig()

	h := NewHandler(svcs, nil, cfg, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, log, h.logger)
	assert.NotNil(t, h.validator)
	assert.Equal(t, "owner@x.com", h.adminEmail)
	assert.Equal(t, testFlashKey, h.flashKey)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
}
