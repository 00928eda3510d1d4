// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// FlagValues receives the values of the command-line flags registered by
// [BindFlags]. It is read after the flag set has been parsed.
type FlagValues struct {
	configPath     string
	dsn            string
	adapterKind    string
	address        string
	supabaseURL    string
	supabaseKey    string
	postgresDSN    string
	probeAddress   NetAddress
	requestTimeout time.Duration
	token          string
	userID         string
	syncInterval   time.Duration
	logFile        string
	metricsAddress string
}

// BindFlags registers all configuration flags on fs.
//
// Flags:
//
//	-c/--config       json or yaml file path with configs
//	-d/--db           local database DSN
//	--adapter         remote backend kind (http, supabase, postgres)
//	-a/--address      REST API base address
//	--supabase-url    supabase project url
//	--supabase-key    supabase api key
//	--postgres-dsn    remote postgres DSN
//	--probe-address   reachability probe address in format [host]:[port]
//	--request-timeout remote request timeout (e.g., "10s")
//	--token           bearer token identifying the user
//	--user-id         explicit user id
//	--sync-interval   periodic retry interval (e.g., "1m")
//	--log-file        log file path
//	--metrics-address metrics listen address for the watch command
func BindFlags(fs *pflag.FlagSet) *FlagValues {
	v := &FlagValues{}

	fs.StringVarP(&v.configPath, "config", "c", "", "JSON or YAML config file path")
	fs.StringVarP(&v.dsn, "db", "d", "", "Local database DSN")
	fs.StringVar(&v.adapterKind, "adapter", "", "Remote backend kind: http, supabase or postgres")
	fs.StringVarP(&v.address, "address", "a", "", "REST API base address")
	fs.StringVar(&v.supabaseURL, "supabase-url", "", "Supabase project URL")
	fs.StringVar(&v.supabaseKey, "supabase-key", "", "Supabase API key")
	fs.StringVar(&v.postgresDSN, "postgres-dsn", "", "Remote Postgres DSN")
	fs.Var(&v.probeAddress, "probe-address", "Reachability probe address host:port")
	fs.DurationVar(&v.requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 10s)")
	fs.StringVar(&v.token, "token", "", "Bearer token identifying the user")
	fs.StringVar(&v.userID, "user-id", "", "Explicit user id")
	fs.DurationVar(&v.syncInterval, "sync-interval", 0, "Periodic sync retry interval (e.g., 1m)")
	fs.StringVar(&v.logFile, "log-file", "", "Log file path")
	fs.StringVar(&v.metricsAddress, "metrics-address", "", "Metrics listen address for the watch command (e.g., :9090)")

	return v
}

func (v *FlagValues) toConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogFile: v.logFile, MetricsAddress: v.metricsAddress},
		Storage: Storage{
			DB: DB{DSN: v.dsn},
		},
		Adapter: Adapter{
			Kind:           v.adapterKind,
			HTTPAddress:    v.address,
			SupabaseURL:    v.supabaseURL,
			SupabaseKey:    v.supabaseKey,
			PostgresDSN:    v.postgresDSN,
			ProbeAddress:   v.probeAddress.String(),
			RequestTimeout: v.requestTimeout,
		},
		Identity: Identity{
			Token:  v.token,
			UserID: v.userID,
		},
		Workers:        Workers{SyncInterval: v.syncInterval},
		ConfigFilePath: v.configPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is a
// hostname, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host == "" {
		return errors.New("host is required")
	}
	if looksNumeric(host) && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

// looksNumeric reports whether host consists only of digits and dots, i.e.
// it is meant to be an IPv4 address rather than a hostname.
func looksNumeric(host string) bool {
	return strings.Trim(host, "0123456789.") == ""
}
