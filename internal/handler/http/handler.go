// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/internal/view"
)

type Handler struct {
	services  *service.Services
	renderer  view.Renderer
	validator validators.Validator

	// adminEmail is shown on every page.
	adminEmail string
	// flashKey signs the flash cookie.
	flashKey      string
	secureCookies bool

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, renderer view.Renderer, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		renderer:       renderer,
		validator:      validators.NewFormValidator(),
		adminEmail:     cfg.App.AdminEmail,
		flashKey:       cfg.App.SessionSignKey,
		secureCookies:  cfg.App.SecureCookies,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
