// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package view renders the blog's HTML pages.
//
// Handlers describe what to show with a [Page] and pick a template by name;
// a [Renderer] turns that into markup. [HTMLRenderer] is the html/template
// implementation embedded into the binary.
package view

import (
	"bytes"
	"crypto/md5"
	"embed"
	"encoding/hex"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-blog/models"
)

// Template names accepted by [Renderer.Render].
const (
	PageIndex    = "index"
	PagePost     = "post"
	PageRegister = "register"
	PageLogin    = "login"
	PageMakePost = "make-post"
	PageAbout    = "about"
	PageContact  = "contact"
	PageError    = "error"
)

var pageNames = []string{
	PageIndex, PagePost, PageRegister, PageLogin, PageMakePost, PageAbout, PageContact, PageError,
}

//go:embed templates/*.html
var templatesFS embed.FS

// Page is everything a template may show.
type Page struct {
	// Principal is the logged-in user, or [models.Anonymous].
	Principal models.Principal

	// Flash is a one-time message carried over from the previous request.
	Flash string

	// AdminEmail is the public contact address of the blog owner.
	AdminEmail string

	Title string

	Posts    []models.Post
	Post     models.Post
	Comments []models.CommentView

	// Form holds the submitted values used to re-fill a form.
	Form any
	// Errors maps a form field name to its validation message.
	Errors map[string]string
	// IsEdit switches the post form between creating and editing.
	IsEdit bool

	// Status and Message describe the failure on the error page.
	Status  int
	Message string
}

// Renderer writes a named page with the given HTTP status.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, page Page) error
}

// HTMLRenderer renders the embedded html/template pages. It is safe for
// concurrent use.
type HTMLRenderer struct {
	templates map[string]*template.Template
}

// NewHTMLRenderer parses every page together with the shared layout.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	funcs := template.FuncMap{
		"safe":     func(s string) template.HTML { return template.HTML(s) },
		"gravatar": gravatarURL,
	}

	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrParsingTemplate, name, err)
		}
		templates[name] = tmpl
	}

	return &HTMLRenderer{templates: templates}, nil
}

// Render executes the page into a buffer first, so a template failure never
// leaves a half-written response behind.
func (h *HTMLRenderer) Render(w http.ResponseWriter, status int, name string, page Page) error {
	tmpl, ok := h.templates[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("%w %q: %w", ErrExecutingTemplate, name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func gravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?s=100&d=retro&r=g"
}
