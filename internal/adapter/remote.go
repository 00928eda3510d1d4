// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"database/sql"
	"fmt"

	"github.com/supabase-community/supabase-go"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Remote bundles the configured backend with the handles that other
// components reuse: the Supabase client for authentication and the Postgres
// pool for migrations.
type Remote struct {
	Store RemoteStore

	Supabase *supabase.Client
	Postgres *sql.DB
}

// OwnerFunc returns the id of the user whose notes the table backends read.
// It is evaluated per call because the identity may resolve after startup.
type OwnerFunc func() string

func (f OwnerFunc) get() string {
	if f == nil {
		return ""
	}
	return f()
}

// NewRemoteStore builds the backend selected by cfg.Kind and wraps it in a
// circuit breaker. token authenticates REST requests; owner scopes SelectAll
// for the table backends.
func NewRemoteStore(cfg config.ClientAdapter, token string, owner OwnerFunc, observe TransportObserver, log *logger.Logger) (*Remote, error) {
	var (
		remote Remote
		store  RemoteStore
		err    error
	)

	switch cfg.Kind {
	case config.AdapterHTTP:
		store, err = NewHTTPRemoteStore(cfg, token, log)
		if err != nil {
			return nil, err
		}
	case config.AdapterSupabase:
		remote.Supabase, err = NewSupabaseClient(cfg)
		if err != nil {
			return nil, err
		}
		store = NewSupabaseRemoteStore(remote.Supabase, cfg.Table, owner, log)
	case config.AdapterPostgres:
		remote.Postgres, err = NewConnectPostgres(cfg, log)
		if err != nil {
			return nil, err
		}
		store = NewPostgresRemoteStore(remote.Postgres, cfg.Table, owner, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAdapter, cfg.Kind)
	}

	remote.Store = NewBreakerRemoteStore(store, BreakerConfig{
		Name:     "remote-" + cfg.Kind,
		Failures: cfg.BreakerFailures,
		Timeout:  cfg.BreakerTimeout,
	}, observe, log)

	return &remote, nil
}

// Close releases the Postgres pool if one was opened.
func (r *Remote) Close() error {
	if r.Postgres != nil {
		return r.Postgres.Close()
	}
	return nil
}
