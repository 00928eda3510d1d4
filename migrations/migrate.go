// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose schema migrations for both databases the
// client talks to: the local SQLite key-value store and the optional remote
// Postgres notes table.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// Dialect selects the migration set and the goose dialect.
type Dialect string

const (
	// SQLite migrates the local key-value store.
	SQLite Dialect = "sqlite3"
	// Postgres migrates the remote notes table.
	Postgres Dialect = "postgres"
)

var ErrNilDB = errors.New("db is nil")

func (d Dialect) dir() (string, error) {
	switch d {
	case SQLite:
		return "sqlite", nil
	case Postgres:
		return "postgres", nil
	}
	return "", fmt.Errorf("migration error: unknown dialect %q", d)
}

// Migrate applies every pending migration of the given dialect to db.
func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	dir, err := dialect.dir()
	if err != nil {
		return err
	}

	goose.SetBaseFS(embedMigrations)

	if err = goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err = goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
