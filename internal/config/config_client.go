// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// ClientAdapter holds the remote store settings used by the client.
type ClientAdapter struct {
	// Kind is one of AdapterHTTP, AdapterSupabase, AdapterPostgres.
	Kind string
	// HTTPAddress is the REST endpoint used by the "http" backend.
	HTTPAddress string
	// SupabaseURL and SupabaseKey configure the "supabase" backend.
	SupabaseURL string
	SupabaseKey string
	// PostgresDSN configures the "postgres" backend.
	PostgresDSN string
	// Table is the remote notes table.
	Table string
	// ProbeAddress is the host:port dialled by the reachability prober.
	ProbeAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// BreakerFailures and BreakerTimeout tune the circuit breaker.
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// ClientIdentity holds the identity provider settings.
type ClientIdentity struct {
	Token  string
	UserID string
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the retry job drains the queue.
	SyncInterval time.Duration
	// ProbeInterval defines how often reachability is sampled.
	ProbeInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// LogFile is the rotating log file path; empty means next to the binary.
	LogFile string
	// MetricsAddress is where the watch command serves metrics; empty
	// disables the endpoint.
	MetricsAddress string
	// Adapter contains remote store settings.
	Adapter ClientAdapter
	// Identity contains identity provider settings.
	Identity ClientIdentity
	// Storage contains local storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration. fv may be nil when no flags are bound.
func GetClientConfig(fv *FlagValues) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fv)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		LogFile:        cfg.App.LogFile,
		MetricsAddress: cfg.App.MetricsAddress,
		Adapter: ClientAdapter{
			Kind:            strings.ToLower(strings.TrimSpace(cfg.Adapter.Kind)),
			HTTPAddress:     cfg.Adapter.HTTPAddress,
			SupabaseURL:     cfg.Adapter.SupabaseURL,
			SupabaseKey:     cfg.Adapter.SupabaseKey,
			PostgresDSN:     cfg.Adapter.PostgresDSN,
			Table:           cfg.Adapter.Table,
			ProbeAddress:    cfg.Adapter.ProbeAddress,
			RequestTimeout:  cfg.Adapter.RequestTimeout,
			BreakerFailures: cfg.Adapter.BreakerFailures,
			BreakerTimeout:  cfg.Adapter.BreakerTimeout,
		},
		Identity: ClientIdentity{
			Token:  bareToken(cfg.Identity.Token),
			UserID: strings.TrimSpace(cfg.Identity.UserID),
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			SyncInterval:  cfg.Workers.SyncInterval,
			ProbeInterval: cfg.Workers.ProbeInterval,
		},
	}

	if clientCfg.Adapter.ProbeAddress == "" {
		clientCfg.Adapter.ProbeAddress = clientCfg.Adapter.remoteHostPort()
	}

	return clientCfg, clientCfg.validate()
}

// remoteHostPort derives a dialable host:port from the configured backend
// address, or returns an empty string if none can be derived.
func (a ClientAdapter) remoteHostPort() string {
	var raw string
	switch a.Kind {
	case AdapterHTTP:
		raw = a.HTTPAddress
	case AdapterSupabase:
		raw = a.SupabaseURL
	case AdapterPostgres:
		raw = a.PostgresDSN
	}
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return ""
	}

	port := u.Port()
	if port == "" {
		switch u.Scheme {
		case "https":
			port = "443"
		case "postgres", "postgresql":
			port = "5432"
		default:
			port = "80"
		}
	}
	return net.JoinHostPort(u.Hostname(), port)
}

// bareToken accepts the token either as is or as a full "Bearer <token>"
// header value.
func bareToken(raw string) string {
	raw = strings.TrimSpace(raw)
	if token, err := utils.ParseBearerToken(raw); err == nil {
		return token
	}
	return raw
}
