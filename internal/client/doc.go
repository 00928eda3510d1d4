// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line note client.
//
// It wires configuration, local storage, the remote store, reachability and
// the notes service into one [App], and exposes it through cobra commands.
// One-shot commands open the App, run a single operation (which syncs
// immediately when the remote is reachable) and close it; the watch command
// keeps the App running with background workers.
package client
