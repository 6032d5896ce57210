// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/handler/http"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/view"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	renderer, err := view.NewHTMLRenderer()
	if err != nil {
		return nil, fmt.Errorf("error loading page templates: %w", err)
	}

	return &Handlers{HTTP: http.NewHandler(services, renderer, cfg, logger)}, nil
}
