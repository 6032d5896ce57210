// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/view"
	"github.com/MKhiriev/go-blog/models"
)

// withPrincipal resolves the session cookie into a [models.Principal] and
// stores it in the request context under [utils.PrincipalCtxKey].
//
// Requests without a cookie, with an invalid or expired token, or whose user
// no longer exists continue as [models.Anonymous], and such a cookie is
// cleared. When the session cannot be checked (e.g. the store is down) the
// request is also anonymous but the cookie is kept.
func (h *Handler) withPrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		principal := models.Anonymous

		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			principal, err = h.services.SessionService.Resolve(ctx, cookie.Value)
			if err != nil {
				principal = models.Anonymous
				if sessionRevoked(err) {
					logger.FromRequest(r).Debug().Err(err).Msg("session rejected, continuing anonymously")
					h.clearSessionCookie(w)
				} else {
					logger.FromRequest(r).Err(err).Msg("session lookup failed, keeping cookie")
				}
			}
		}

		if !principal.IsAnonymous() {
			l := logger.FromRequest(r).GetChildLogger()
			l.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Int64("user_id", principal.UserID)
			})
			ctx = l.WithContext(ctx)
		}

		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(ctx, principal)))
	})
}

// sessionRevoked reports whether err means the session cookie is useless for
// good, as opposed to a failure to check it.
func sessionRevoked(err error) bool {
	return errors.Is(err, service.ErrInvalidSession) || errors.Is(err, store.ErrUserNotFound)
}

// adminOnly lets the request through only for the administrator. Everyone
// else gets 403 Forbidden and next is never called. A panic while resolving
// the principal is treated as forbidden.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.isAdministrator(r) {
			h.forbidden(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) isAdministrator(r *http.Request) (ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error().Any("panic", rec).Str("uri", r.RequestURI).Msg("resolving principal panicked")
			ok = false
		}
	}()

	return utils.GetPrincipalFromContext(r.Context()).IsAdministrator()
}

// forbidden renders the 403 page without touching the request context,
// which may be the reason the guard failed.
func (h *Handler) forbidden(w http.ResponseWriter, r *http.Request) {
	h.logger.Warn().Err(service.ErrForbidden).Str("uri", r.RequestURI).Send()

	page := view.Page{
		AdminEmail: h.adminEmail,
		Status:     http.StatusForbidden,
		Title:      http.StatusText(http.StatusForbidden),
		Message:    errorMessage(http.StatusForbidden),
	}
	if err := h.renderer.Render(w, http.StatusForbidden, view.PageError, page); err != nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
	}
}
