// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
	ContentService ContentService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	contentService := NewContentValidationService().Wrap(
		NewContentService(storages.PostRepository, storages.CommentRepository, logger),
	)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg, logger),
		SessionService: NewSessionService(storages.UserRepository, cfg, logger),
		ContentService: contentService,
		AppInfoService: appInfoService,
	}, nil
}
