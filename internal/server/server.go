// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/handler"
	"github.com/MKhiriev/go-blog/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" || handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

// RunServer serves until the process receives SIGTERM, SIGINT or SIGQUIT.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) run(ctx context.Context) {
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received, shutting down")
		s.Shutdown()
		<-stopped
	case <-stopped:
	}

	s.logger.Info().Msg("server Shutdown gracefully")
}
