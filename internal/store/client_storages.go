// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// ClientStorages groups the client-side storage layer into a single value
// that can be passed to the service layer.
type ClientStorages struct {
	// KV is the raw key-value repository.
	KV KVRepository
	// Local persists the note cache and the operation queue.
	Local LocalStorage

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the database file if
//     it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a [KVRepository] and a [LocalStorage] on top of it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	kv := NewKVRepository(db, logger)

	return &ClientStorages{
		KV:    kv,
		Local: NewLocalStorage(kv),
		db:    db,
	}, nil
}

// Close releases the underlying database.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
