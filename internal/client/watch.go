// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/handler"
	"github.com/MKhiriev/go-note-keeper/internal/server"
	"github.com/MKhiriev/go-note-keeper/internal/workers"
	"github.com/MKhiriev/go-note-keeper/models"
)

// Watch keeps the client online-aware: it probes reachability, retries the
// queue periodically and serves the diagnostics endpoint when a metrics
// address is configured. Every notes event is written to out as one line.
func (a *App) Watch(ctx context.Context, out io.Writer) error {
	unsubscribe := a.notes.Subscribe(func(ev models.Event) {
		line := fmt.Sprintf("%s %s", time.Now().Format(time.TimeOnly), ev.Kind)
		if ev.NoteID != "" {
			line += " " + ev.NoteID
		}
		if ev.Message != "" {
			line += " (" + ev.Message + ")"
		}
		_, _ = fmt.Fprintln(out, line)
	})
	defer unsubscribe()

	var srv server.Server
	if a.cfg.MetricsAddress != "" {
		handlers, err := handler.NewHandlers(a.notes, a.metrics, a.build, a.cfg, a.logger)
		if err != nil {
			return err
		}
		if srv, err = server.NewServer(handlers, a.cfg, a.logger); err != nil {
			return fmt.Errorf("start diagnostics server: %w", err)
		}
		_, _ = fmt.Fprintf(out, "serving metrics on http://%s/metrics\n", srv.Addr())
	}

	bg := workers.NewWorkers(
		workers.NewProbeWorker(a.prober, a.cfg.Workers.ProbeInterval, a.logger),
		workers.NewSyncWorker(a.syncJob, a.cfg.Workers.SyncInterval),
	)
	bg.Run(ctx)
	defer bg.Wait()

	// drain whatever a previous session left behind
	if _, err := a.notes.Sync(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "App.Watch").Msg("initial sync failed")
	}

	if srv == nil {
		<-ctx.Done()
		return nil
	}
	return srv.Run(ctx)
}
