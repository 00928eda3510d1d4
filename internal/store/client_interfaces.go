// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// KVRepository is the low-level durable key-value table. Values are stored
// as JSON.
type KVRepository interface {
	// Save writes value under key, replacing any previous value.
	Save(ctx context.Context, key string, value any) error
	// Load decodes the value stored under key into dst. found is false when
	// the key has never been written.
	Load(ctx context.Context, key string, dst any) (found bool, err error)
	// Delete removes key. It returns ErrKeyNotFound if nothing was removed.
	Delete(ctx context.Context, key string) error
}

// LocalStorage persists the two durable collections of the client: the
// note cache and the pending operation queue. They are written
// independently so that a queue write never rewrites the cache.
type LocalStorage interface {
	LoadNotes(ctx context.Context) ([]models.Note, error)
	SaveNotes(ctx context.Context, notes []models.Note) error
	LoadQueue(ctx context.Context) ([]models.Operation, error)
	SaveQueue(ctx context.Context, ops []models.Operation) error
}
