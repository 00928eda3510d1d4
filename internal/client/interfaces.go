// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"

	"github.com/MKhiriev/go-note-keeper/internal/service"
)

// Client defines the runtime contract the commands operate on.
type Client interface {
	// Notes returns the opened notes service.
	Notes() service.NotesService

	// Watch runs the background workers and prints events to out until ctx
	// is canceled.
	Watch(ctx context.Context, out io.Writer) error

	// Migrate applies the remote schema migrations, if the backend has a
	// schema the client owns.
	Migrate(ctx context.Context) error

	// Close releases every resource opened by the client.
	Close() error
}
