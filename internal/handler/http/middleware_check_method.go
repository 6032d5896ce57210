// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
)

// methodNotAllowed is the router's [chi.Mux.MethodNotAllowed] handler. A path
// requested with a method it does not register gets the same 404 page as an
// unknown path, so a path does not reveal which methods it supports.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().Str("method", r.Method).Msg("method is not registered for path")
	h.notFound(w, r)
}
