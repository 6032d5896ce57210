// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/internal/view"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.ContentService.ListPosts(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	page := h.page(w, r)
	page.Posts = posts

	h.render(w, r, http.StatusOK, view.PageIndex, page)
}

func (h *Handler) showPost(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDFromURL(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.renderPost(w, r, http.StatusOK, postID, models.CommentForm{}, nil)
}

// addComment posts a comment as the current user. Anonymous visitors are
// sent to the login page.
func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	postID, err := postIDFromURL(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	if err = r.ParseForm(); err != nil {
		h.renderError(w, r, errors.Join(ErrInvalidForm, err))
		return
	}
	form := models.CommentForm{Text: r.PostForm.Get("comment_text")}

	_, err = h.services.ContentService.AddComment(ctx, form.Text, utils.GetPrincipalFromContext(ctx), postID)
	if err != nil {
		var fieldErrors validators.FieldErrors
		switch {
		case errors.Is(err, service.ErrUnauthenticated):
			h.redirect(w, r, "/login", flashLoginToComment)
		case errors.As(err, &fieldErrors):
			h.renderPost(w, r, http.StatusBadRequest, postID, form, fieldErrors)
		default:
			h.renderError(w, r, err)
		}
		return
	}

	http.Redirect(w, r, postURL(postID), http.StatusFound)
}

func (h *Handler) renderPost(w http.ResponseWriter, r *http.Request, status int, postID int64, form models.CommentForm, fieldErrors validators.FieldErrors) {
	ctx := r.Context()

	post, err := h.services.ContentService.GetPost(ctx, postID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	comments, err := h.services.ContentService.ListComments(ctx, postID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	page := h.page(w, r)
	page.Title = post.Title
	page.Post = post
	page.Comments = comments
	page.Form = form
	page.Errors = fieldErrors

	h.render(w, r, status, view.PagePost, page)
}

func (h *Handler) newPostPage(w http.ResponseWriter, r *http.Request) {
	h.renderPostForm(w, r, http.StatusOK, models.Post{}, models.PostFields{}, nil)
}

func (h *Handler) newPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fields, err := postFieldsFromForm(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	post, err := h.services.ContentService.CreatePost(ctx, fields, utils.GetPrincipalFromContext(ctx))
	if err != nil {
		var fieldErrors validators.FieldErrors
		switch {
		case errors.As(err, &fieldErrors):
			h.renderPostForm(w, r, http.StatusBadRequest, models.Post{}, fields, fieldErrors)
		case errors.Is(err, store.ErrTitleAlreadyExists):
			h.redirect(w, r, "/new-post", flashTitleTaken)
		default:
			h.renderError(w, r, err)
		}
		return
	}

	logger.FromRequest(r).Info().Int64("post_id", post.PostID).Msg("post published")
	http.Redirect(w, r, "/", http.StatusFound)
}

// editPostPage shows the post form pre-filled with the current values.
func (h *Handler) editPostPage(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDFromURL(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	post, err := h.services.ContentService.GetPost(r.Context(), postID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.renderPostForm(w, r, http.StatusOK, post, post.PostFields, nil)
}

func (h *Handler) editPost(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDFromURL(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	fields, err := postFieldsFromForm(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	_, err = h.services.ContentService.UpdatePost(r.Context(), postID, fields)
	if err != nil {
		var fieldErrors validators.FieldErrors
		switch {
		case errors.As(err, &fieldErrors):
			h.renderPostForm(w, r, http.StatusBadRequest, models.Post{PostID: postID}, fields, fieldErrors)
		case errors.Is(err, store.ErrTitleAlreadyExists):
			h.redirect(w, r, editPostURL(postID), flashTitleTaken)
		default:
			h.renderError(w, r, err)
		}
		return
	}

	http.Redirect(w, r, postURL(postID), http.StatusFound)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDFromURL(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	if err = h.services.ContentService.DeletePost(r.Context(), postID); err != nil {
		h.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// renderPostForm renders the create form, or the edit form when post has an id.
func (h *Handler) renderPostForm(w http.ResponseWriter, r *http.Request, status int, post models.Post, fields models.PostFields, fieldErrors validators.FieldErrors) {
	page := h.page(w, r)
	page.Post = post
	page.Form = fields
	page.Errors = fieldErrors
	page.IsEdit = post.PostID > 0
	page.Title = "New Post"
	if page.IsEdit {
		page.Title = "Edit Post"
	}

	h.render(w, r, status, view.PageMakePost, page)
}

func postFieldsFromForm(r *http.Request) (models.PostFields, error) {
	if err := r.ParseForm(); err != nil {
		return models.PostFields{}, errors.Join(ErrInvalidForm, err)
	}

	return models.PostFields{
		Title:    r.PostForm.Get("title"),
		Subtitle: r.PostForm.Get("subtitle"),
		Body:     r.PostForm.Get("body"),
		ImgURL:   r.PostForm.Get("img_url"),
	}, nil
}

func postIDFromURL(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	postID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || postID <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPostID, raw)
	}

	return postID, nil
}

func postURL(postID int64) string {
	return "/post/" + strconv.FormatInt(postID, 10)
}

func editPostURL(postID int64) string {
	return "/edit-post/" + strconv.FormatInt(postID, 10)
}
