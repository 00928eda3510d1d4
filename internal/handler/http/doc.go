// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the local diagnostics endpoint of the client.
//
// It serves Prometheus metrics, a liveness probe, the sync status snapshot
// and the build version. Access logging and request tracing are handled by
// middleware before requests reach the handlers.
package http
