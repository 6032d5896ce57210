// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(models.AppBuildInfo{Version: "1.0.0"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(models.AppBuildInfo{Commit: "abc"}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestGetAppInfo_ReturnsBuildInfo(t *testing.T) {
	info := models.AppBuildInfo{Version: "v1.2.3-beta+build.42", Date: "2026-03-07", Commit: "deadbeef"}
	svc, err := NewAppInfoService(info, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, info, svc.GetAppInfo(context.Background()))
}

func TestGetAppInfo_CancelledContext_StillReturnsInfo(t *testing.T) {
	svc, err := NewAppInfoService(models.AppBuildInfo{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppInfo(ctx).Version)
}
