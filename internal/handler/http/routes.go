// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.GetHead)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(withGZip)
	router.Use(h.withPrincipal)

	// public pages
	router.Group(func(r chi.Router) {
		r.Get("/", h.home)
		r.Get("/about", h.about)
		r.Get("/contact", h.contact)
		r.Get("/version", h.getServerVersion)

		r.Get("/register", h.registerPage)
		r.Post("/register", h.register)
		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)

		r.Get("/post/{id}", h.showPost)
		r.Post("/post/{id}", h.addComment)
	})

	// content management, administrator only
	router.Group(func(r chi.Router) {
		r.Use(h.adminOnly)

		r.Get("/new-post", h.newPostPage)
		r.Post("/new-post", h.newPost)
		r.Get("/edit-post/{id}", h.editPostPage)
		r.Post("/edit-post/{id}", h.editPost)
		r.Get("/delete/{id}", h.deletePost)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
