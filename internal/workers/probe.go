// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

const defaultProbeInterval = 15 * time.Second

type probeWorker struct {
	prober   Prober
	interval time.Duration
	logger   *logger.Logger
}

// NewProbeWorker samples reachability every interval until the context is
// canceled. The first sample is taken one interval after Run.
func NewProbeWorker(prober Prober, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	return &probeWorker{prober: prober, interval: interval, logger: logger}
}

func (w *probeWorker) Run(ctx context.Context) {
	t := time.NewTicker(w.interval)
	defer t.Stop()

	w.logger.Debug().Str("func", "probeWorker.Run").Dur("interval", w.interval).Msg("probe worker started")
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			w.prober.Probe(ctx)
		}
	}
}
