// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-blog/models"
)

const sessionCookieName = "session"

// setSessionCookie stores the signed session token. The cookie expires
// together with the token.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.Token) {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	if token.ExpiresAt != nil {
		cookie.Expires = token.ExpiresAt.Time
		cookie.MaxAge = int(token.ExpiresIn(time.Now()).Seconds())
	}

	http.SetCookie(w, cookie)
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
