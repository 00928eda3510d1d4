// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/migrations"
)

// DB wraps the local SQLite connection pool.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded SQLite migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, migrations.SQLite)
}
