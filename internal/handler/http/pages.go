// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/view"
)

func (h *Handler) about(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r)
	page.Title = "About"

	h.render(w, r, http.StatusOK, view.PageAbout, page)
}

func (h *Handler) contact(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r)
	page.Title = "Contact"

	h.render(w, r, http.StatusOK, view.PageContact, page)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, ErrPageNotFound)
}
