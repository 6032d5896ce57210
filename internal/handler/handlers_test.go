// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
)

// newTestServices returns empty services. http.NewHandler only stores the
// pointer, so nothing is dereferenced at construction time.
func newTestServices() *service.Services {
	return &service.Services{}
}

func TestNewHandlers_HTTP(t *testing.T) {
	cfg := &config.StructuredConfig{Server: config.Server{HTTPAddress: ":8080"}}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
	assert.NotNil(t, h.HTTP.Init())
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), &config.StructuredConfig{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := &config.StructuredConfig{Server: config.Server{HTTPAddress: ":8080"}}

	h1, err1 := NewHandlers(newTestServices(), cfg, logger.Nop())
	h2, err2 := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
