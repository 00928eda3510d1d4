// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk shape of the config file. The same
// struct is decoded from JSON and from YAML.
type StructuredFileConfig struct {
	App struct {
		LogFile        string `json:"log_file" yaml:"log_file"`
		MetricsAddress string `json:"metrics_address" yaml:"metrics_address"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Adapter struct {
		Kind            string   `json:"kind" yaml:"kind"`
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		SupabaseURL     string   `json:"supabase_url" yaml:"supabase_url"`
		SupabaseKey     string   `json:"supabase_key" yaml:"supabase_key"`
		PostgresDSN     string   `json:"postgres_dsn" yaml:"postgres_dsn"`
		Table           string   `json:"table" yaml:"table"`
		ProbeAddress    string   `json:"probe_address" yaml:"probe_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		BreakerFailures uint32   `json:"breaker_failures" yaml:"breaker_failures"`
		BreakerTimeout  Duration `json:"breaker_timeout" yaml:"breaker_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Identity struct {
		Token  string `json:"token" yaml:"token"`
		UserID string `json:"user_id" yaml:"user_id"`
	} `json:"identity,omitempty" yaml:"identity,omitempty"`

	Workers struct {
		SyncInterval  Duration `json:"sync_interval" yaml:"sync_interval"`
		ProbeInterval Duration `json:"probe_interval" yaml:"probe_interval"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// parseFile reads a JSON or YAML config file, picking the decoder by file
// extension (.yaml/.yml for YAML, anything else for JSON).
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	case ".json", "":
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}

	return fileCfg.toConfig(), nil
}

func (f *StructuredFileConfig) toConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogFile: f.App.LogFile, MetricsAddress: f.App.MetricsAddress},
		Storage: Storage{
			DB: DB{DSN: f.Storage.DB.DSN},
		},
		Adapter: Adapter{
			Kind:            f.Adapter.Kind,
			HTTPAddress:     f.Adapter.HTTPAddress,
			SupabaseURL:     f.Adapter.SupabaseURL,
			SupabaseKey:     f.Adapter.SupabaseKey,
			PostgresDSN:     f.Adapter.PostgresDSN,
			Table:           f.Adapter.Table,
			ProbeAddress:    f.Adapter.ProbeAddress,
			RequestTimeout:  time.Duration(f.Adapter.RequestTimeout),
			BreakerFailures: f.Adapter.BreakerFailures,
			BreakerTimeout:  time.Duration(f.Adapter.BreakerTimeout),
		},
		Identity: Identity{
			Token:  f.Identity.Token,
			UserID: f.Identity.UserID,
		},
		Workers: Workers{
			SyncInterval:  time.Duration(f.Workers.SyncInterval),
			ProbeInterval: time.Duration(f.Workers.ProbeInterval),
		},
	}
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
