// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/view"
)

// page returns the data shared by every page. It consumes the pending flash,
// so it must be called before anything is written to w.
func (h *Handler) page(w http.ResponseWriter, r *http.Request) view.Page {
	return view.Page{
		Principal:  utils.GetPrincipalFromContext(r.Context()),
		Flash:      h.popFlash(w, r),
		AdminEmail: h.adminEmail,
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, page view.Page) {
	if err := h.renderer.Render(w, status, name, page); err != nil {
		logger.FromRequest(r).Err(err).Str("template", name).Msg("rendering page failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// renderError shows the error page with the status mapped from err.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	page := h.page(w, r)
	page.Status = status
	page.Title = http.StatusText(status)
	page.Message = errorMessage(status)

	h.render(w, r, status, view.PageError, page)
}

// redirect sends the client to url with an optional one-time message.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, url, flash string) {
	if flash != "" {
		h.setFlash(w, flash)
	}
	http.Redirect(w, r, url, http.StatusFound)
}

func errorMessage(status int) string {
	switch status {
	case http.StatusNotFound:
		return "The page you are looking for does not exist."
	case http.StatusForbidden:
		return "You are not allowed to do that."
	case http.StatusBadRequest:
		return "The request could not be understood."
	case http.StatusUnauthorized:
		return "Please log in first."
	}

	return "Something went wrong. Please try again later."
}
