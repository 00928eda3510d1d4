// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.Table == "" {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.Adapter.Kind {
	case AdapterHTTP:
		if cfg.Adapter.HTTPAddress == "" {
			return fmt.Errorf("%w: http backend needs an address", ErrInvalidAdapterConfigs)
		}
	case AdapterSupabase:
		if cfg.Adapter.SupabaseURL == "" || cfg.Adapter.SupabaseKey == "" {
			return fmt.Errorf("%w: supabase backend needs url and key", ErrInvalidAdapterConfigs)
		}
	case AdapterPostgres:
		if cfg.Adapter.PostgresDSN == "" {
			return fmt.Errorf("%w: postgres backend needs a dsn", ErrInvalidAdapterConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidAdapterConfigs, cfg.Adapter.Kind)
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.ProbeInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
