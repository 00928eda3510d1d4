// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the note
// client. It aggregates all sub-configurations and is populated by merging
// values from defaults, environment variables, a config file and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log file location.
	App App `envPrefix:"APP_"`

	// Storage holds the local durable store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter selects and configures the remote store.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Identity configures how the current user is resolved.
	Identity Identity `envPrefix:"IDENTITY_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. Populated via the CONFIG environment variable or the -c/--config
	// flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// LogFile is the rotating log file path.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
	// MetricsAddress is the listen address of the metrics endpoint served by
	// the watch command. Empty disables it.
	// Env: APP_METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`
}

// Storage groups the configuration for the local durable store.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite settings of the local store.
type DB struct {
	// DSN is the SQLite database file (e.g. "notes.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds remote store settings.
type Adapter struct {
	// Kind selects the remote backend: "http", "supabase" or "postgres".
	// Env: ADAPTER_KIND
	Kind string `env:"KIND"`

	// HTTPAddress is the REST API base address used by the "http" backend.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// SupabaseURL and SupabaseKey configure the "supabase" backend.
	// Env: ADAPTER_SUPABASE_URL, ADAPTER_SUPABASE_KEY
	SupabaseURL string `env:"SUPABASE_URL"`
	SupabaseKey string `env:"SUPABASE_KEY"`

	// PostgresDSN is the connection string of the "postgres" backend.
	// Env: ADAPTER_POSTGRES_DSN
	PostgresDSN string `env:"POSTGRES_DSN"`

	// Table is the remote notes table name.
	// Env: ADAPTER_TABLE
	Table string `env:"TABLE"`

	// ProbeAddress is the host:port dialled by the reachability prober. When
	// empty it is derived from the backend address.
	// Env: ADAPTER_PROBE_ADDRESS
	ProbeAddress string `env:"PROBE_ADDRESS"`

	// RequestTimeout bounds a single remote call (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// BreakerFailures is the number of consecutive failures that opens the
	// circuit breaker.
	// Env: ADAPTER_BREAKER_FAILURES
	BreakerFailures uint32 `env:"BREAKER_FAILURES"`

	// BreakerTimeout is how long the breaker stays open before probing.
	// Env: ADAPTER_BREAKER_TIMEOUT
	BreakerTimeout time.Duration `env:"BREAKER_TIMEOUT"`
}

// Identity configures the identity provider.
type Identity struct {
	// Token is a bearer access token. Its subject is the user id. An empty
	// token means guest mode.
	// Env: IDENTITY_TOKEN
	Token string `env:"TOKEN"`

	// UserID overrides the token subject.
	// Env: IDENTITY_USER_ID
	UserID string `env:"USER_ID"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// SyncInterval is the period of the retry job that re-drains the queue.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// ProbeInterval is the period of the reachability prober.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// Adapter kinds.
const (
	AdapterHTTP     = "http"
	AdapterSupabase = "supabase"
	AdapterPostgres = "postgres"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "notes.db"}},
		Adapter: Adapter{
			Kind:            AdapterHTTP,
			Table:           "notes",
			RequestTimeout:  10 * time.Second,
			BreakerFailures: 5,
			BreakerTimeout:  30 * time.Second,
		},
		Workers: Workers{
			SyncInterval:  time.Minute,
			ProbeInterval: 15 * time.Second,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources.
// fv holds the parsed command-line flags and may be nil.
func GetStructuredConfig(fv *FlagValues) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fv).
		withFile().
		build()
}
