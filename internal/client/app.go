// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/metrics"
	"github.com/MKhiriev/go-note-keeper/internal/network"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/migrations"
	"github.com/MKhiriev/go-note-keeper/models"
)

type App struct {
	cfg   *config.ClientConfig
	build models.AppBuildInfo

	storages *store.ClientStorages
	remote   *adapter.Remote
	monitor  *network.Monitor
	prober   *network.Prober
	identity *service.CachedIdentity
	metrics  *metrics.Collector
	notes    service.NotesService
	syncJob  service.ClientSyncJob

	logger *logger.Logger
}

// NewApp opens local storage, samples reachability once, builds the remote
// store and opens the notes service. Close must be called.
func NewApp(ctx context.Context, cfg *config.ClientConfig, build models.AppBuildInfo, log *logger.Logger) (*App, error) {
	app := &App{cfg: cfg, build: build, logger: log}

	var err error
	app.storages, err = store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	app.monitor = network.NewMonitor(false, log)
	app.prober = network.NewTCPProber(cfg.Adapter.ProbeAddress, 0, app.monitor, log)
	app.prober.Probe(ctx)

	// the owner is read per request; Open and every reconcile resolve the
	// identity first, the table backends refuse to read while it is empty
	owner := func() string { return app.identity.Current() }
	observe := network.NewTransportObserver(app.monitor, adapter.IsUnreachable)

	app.remote, err = adapter.NewRemoteStore(cfg.Adapter, cfg.Identity.Token, owner, observe, log)
	if err != nil {
		_ = app.storages.Close()
		return nil, fmt.Errorf("create remote store: %w", err)
	}

	provider, err := app.identityProvider()
	if err != nil {
		_ = app.closeResources()
		return nil, err
	}
	app.identity = service.NewCachedIdentity(provider, log)

	app.metrics = metrics.NewCollector()
	app.notes = service.NewNotesService(app.storages.Local, app.monitor, app.remote.Store, app.identity, log,
		service.WithMetrics(app.metrics))
	if err = app.notes.Open(ctx); err != nil {
		_ = app.closeResources()
		return nil, fmt.Errorf("open notes: %w", err)
	}
	app.syncJob = service.NewClientSyncJob(app.notes, log)

	log.Debug().
		Str("func", "NewApp").
		Str("adapter", cfg.Adapter.Kind).
		Bool("online", app.monitor.Online()).
		Msg("client app ready")
	return app, nil
}

// identityProvider asks Supabase auth for the user when the Supabase backend
// is used with a token and no explicit user id; otherwise the configured
// identity is used as is.
func (a *App) identityProvider() (service.IdentityProvider, error) {
	if a.remote.Supabase != nil && a.cfg.Identity.UserID == "" && a.cfg.Identity.Token != "" {
		return service.NewSupabaseIdentity(a.remote.Supabase, a.cfg.Identity.Token), nil
	}
	provider, err := service.NewStaticIdentity(a.cfg.Identity)
	if err != nil {
		return nil, fmt.Errorf("create identity: %w", err)
	}
	return provider, nil
}

func (a *App) Notes() service.NotesService {
	return a.notes
}

// Migrate applies the Postgres schema. The other backends own their schema
// and need nothing.
func (a *App) Migrate(ctx context.Context) error {
	if a.remote.Postgres == nil {
		a.logger.Info().Str("func", "App.Migrate").Str("adapter", a.cfg.Adapter.Kind).Msg("backend has no client-managed schema")
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := migrations.Migrate(a.remote.Postgres, migrations.Postgres); err != nil {
		return fmt.Errorf("migrate remote: %w", err)
	}
	return nil
}

func (a *App) Close() error {
	var errs []error
	if a.notes != nil {
		errs = append(errs, a.notes.Close())
	}
	errs = append(errs, a.closeResources())
	return errors.Join(errs...)
}

func (a *App) closeResources() error {
	var errs []error
	if a.remote != nil {
		errs = append(errs, a.remote.Close())
	}
	if a.storages != nil {
		errs = append(errs, a.storages.Close())
	}
	return errors.Join(errs...)
}
