// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/metrics"
	"github.com/MKhiriev/go-note-keeper/models"
)

// StatusSource reports the current sync state.
type StatusSource interface {
	Status() models.SyncStatus
}

type Handler struct {
	status  StatusSource
	metrics *metrics.Collector
	build   models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(status StatusSource, m *metrics.Collector, build models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		status:  status,
		metrics: m,
		build:   build,
		logger:  logger,
	}
}
