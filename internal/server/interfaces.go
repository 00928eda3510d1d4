// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract for servers managed by this
// package.
type Server interface {
	// Run serves requests until ctx is canceled, then shuts down.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()

	// Addr is the address the server listens on.
	Addr() string
}
