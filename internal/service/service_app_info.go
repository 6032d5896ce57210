// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if buildInfo.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}
