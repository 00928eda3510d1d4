// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/handler/http"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/metrics"
	"github.com/MKhiriev/go-note-keeper/models"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the diagnostics handlers. It fails when no metrics
// address is configured since nothing would serve them.
func NewHandlers(status http.StatusSource, m *metrics.Collector, build models.AppBuildInfo, cfg *config.ClientConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.MetricsAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(status, m, build, logger)}, nil
}
