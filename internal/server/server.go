// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/handler"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger

	shutdownOnce sync.Once
}

func NewServer(handlers *handler.Handlers, cfg *config.ClientConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.MetricsAddress == "" {
		return nil, errNoServersAreCreated
	}

	httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg.MetricsAddress, logger)
	if err != nil {
		return nil, err
	}

	return &server{httpServer: httpSrv, logger: logger}, nil
}

func (s *server) Addr() string {
	return s.httpServer.listener.Addr().String()
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(s.httpServer.Shutdown)
}

func (s *server) Run(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.logger.Info().Str("address", s.Addr()).Msg("Launching HTTP server")
		s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		// finish started server
		s.Shutdown()
		<-done
	case <-done:
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
