// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
)

const flashCookieName = "flash"

// Messages shown after a redirect.
const (
	flashEmailTaken     = "The email entered is already registered with us, login instead!"
	flashUnknownEmail   = "The email entered is not registered with us!"
	flashWrongPassword  = "The password you entered is incorrect!"
	flashLoginToComment = "Login to post a comment!"
	flashTitleTaken     = "A post with this title already exists."
)

// setFlash stores a one-time message for the next page. The cookie value is
// "<base64 message>.<hex HMAC-SHA256>".
func (h *Handler) setFlash(w http.ResponseWriter, message string) {
	encoded := base64.RawURLEncoding.EncodeToString([]byte(message))

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    encoded + "." + utils.HashString(encoded, h.flashKey),
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash returns the pending message and removes it. A missing or forged
// cookie yields an empty message.
func (h *Handler) popFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	encoded, signature, ok := strings.Cut(cookie.Value, ".")
	if !ok || !utils.VerifyHashString(encoded, signature, h.flashKey) {
		logger.FromRequest(r).Warn().Msg("dropping flash cookie with invalid signature")
		return ""
	}

	message, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return ""
	}

	return string(message)
}
