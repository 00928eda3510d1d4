// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/metrics"
	"github.com/MKhiriev/go-note-keeper/models"
)

type idleStatus struct{}

func (idleStatus) Status() models.SyncStatus {
	return models.SyncStatus{State: models.SyncIdleOffline}
}

func TestNewHandlers(t *testing.T) {
	build := models.NewAppBuildInfo("dev", "", "")

	t.Run("metrics address set", func(t *testing.T) {
		h, err := NewHandlers(idleStatus{}, metrics.NewCollector(), build, &config.ClientConfig{MetricsAddress: ":9090"}, logger.Nop())
		require.NoError(t, err)
		assert.NotNil(t, h.HTTP)
	})

	t.Run("no metrics address", func(t *testing.T) {
		h, err := NewHandlers(idleStatus{}, nil, build, &config.ClientConfig{}, logger.Nop())
		assert.ErrorIs(t, err, errNoHandlersAreCreated)
		assert.Nil(t, h)
	})
}
