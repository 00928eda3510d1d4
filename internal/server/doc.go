// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the client's diagnostics HTTP server.
//
// It owns the listener lifecycle: startup, shutdown when the run context is
// canceled, and graceful draining of open connections.
package server
