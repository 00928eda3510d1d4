// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the client.
// It defines the Worker interface and a Workers aggregate that runs several
// workers under one context and waits for all of them to return.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block until ctx is canceled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// Prober samples remote reachability once.
type Prober interface {
	Probe(ctx context.Context) bool
}

// SyncJob is a periodic sync that runs in its own goroutine.
type SyncJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
