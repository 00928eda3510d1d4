// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the remote store abstraction the sync engine
// replicates notes to.
//
// The primary abstraction is [RemoteStore]. Three backends are shipped: a
// REST API ([NewHTTPRemoteStore]), a Supabase PostgREST table
// ([NewSupabaseRemoteStore]) and a direct Postgres connection
// ([NewPostgresRemoteStore]). [NewRemoteStore] builds the configured backend
// and wraps it in a circuit breaker.
//
// Every backend maps its failures onto two sentinel errors so that callers
// never look at transport details: [ErrTerminal] means the remote rejected the
// request and retrying cannot help, anything else is transient. Failures to
// reach the remote at all additionally wrap [ErrUnreachable].
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore is the replication target of the client. All writes are keyed
// by note id and must be idempotent: the sync engine delivers at least once.
type RemoteStore interface {
	// Upsert inserts note or replaces the stored note with the same id.
	Upsert(ctx context.Context, note models.Note) error

	// UpdateFields writes the fields set in patch plus updated_at to the note
	// with the given id. Every backend fails with a terminal [ErrNotFound]
	// when no such note exists.
	UpdateFields(ctx context.Context, id string, patch models.NotePatch, updatedAt time.Time) error

	// DeleteByID removes the note with the given id. Deleting a note that does
	// not exist is not an error.
	DeleteByID(ctx context.Context, id string) error

	// SelectAll returns every note visible to the current identity. The
	// table backends scope the read to the owner and fail with
	// [ErrOwnerUnknown] while it is not resolved.
	SelectAll(ctx context.Context) ([]models.Note, error)
}
