// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/internal/view"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r)
	page.Title = "Register"
	page.Form = models.RegisterForm{}

	h.render(w, r, http.StatusOK, view.PageRegister, page)
}

// register creates the account, logs it in and redirects home. A taken email
// sends the visitor to the login page instead.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, errors.Join(ErrInvalidForm, err))
		return
	}

	form := models.RegisterForm{
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
		Name:     r.PostForm.Get("name"),
	}
	if err := h.validator.Validate(ctx, form); err != nil {
		h.renderFormErrors(w, r, view.PageRegister, "Register", form, err)
		return
	}

	user, err := h.services.AuthService.Register(ctx, form.Email, form.Password, form.Name)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Info().Str("email", form.Email).Msg("registration with existing email")
			h.redirect(w, r, "/login", flashEmailTaken)
		default:
			h.renderError(w, r, err)
		}
		return
	}

	h.startSession(w, r, user)
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r)
	page.Title = "Log In"
	page.Form = models.LoginForm{}

	h.render(w, r, http.StatusOK, view.PageLogin, page)
}

// login checks the credentials and redirects home. An unknown email and a
// wrong password produce different messages.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, errors.Join(ErrInvalidForm, err))
		return
	}

	form := models.LoginForm{
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
	}
	if err := h.validator.Validate(ctx, form); err != nil {
		h.renderFormErrors(w, r, view.PageLogin, "Log In", form, err)
		return
	}

	user, err := h.services.AuthService.Authenticate(ctx, form.Email, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			h.redirect(w, r, "/login", flashUnknownEmail)
		case errors.Is(err, service.ErrWrongPassword):
			h.redirect(w, r, "/login", flashWrongPassword)
		default:
			h.renderError(w, r, err)
		}
		return
	}

	h.startSession(w, r, user)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.SessionService.Login(r.Context(), user)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.UserID).Msg("user logged in")
	h.setSessionCookie(w, token)
	http.Redirect(w, r, "/", http.StatusFound)
}

// renderFormErrors re-renders a form with 400 and the per-field messages
// carried by err. Errors without field details fall back to the error page.
func (h *Handler) renderFormErrors(w http.ResponseWriter, r *http.Request, name, title string, form any, err error) {
	var fieldErrors validators.FieldErrors
	if !errors.As(err, &fieldErrors) {
		h.renderError(w, r, err)
		return
	}

	page := h.page(w, r)
	page.Title = title
	page.Form = form
	page.Errors = fieldErrors

	h.render(w, r, http.StatusBadRequest, name, page)
}
