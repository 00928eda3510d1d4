// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

var noteColumns = []string{
	"id", "user_id", "title", "content", "tags", "folder",
	"is_pinned", "is_archived", "reminder_at", "created_at", "updated_at",
}

const upsertSuffix = `ON CONFLICT (id) DO UPDATE SET
	user_id     = EXCLUDED.user_id,
	title       = EXCLUDED.title,
	content     = EXCLUDED.content,
	tags        = EXCLUDED.tags,
	folder      = EXCLUDED.folder,
	is_pinned   = EXCLUDED.is_pinned,
	is_archived = EXCLUDED.is_archived,
	reminder_at = EXCLUDED.reminder_at,
	updated_at  = EXCLUDED.updated_at`

type postgresRemoteStore struct {
	db     *sql.DB
	table  string
	owner  OwnerFunc
	psql   sq.StatementBuilderType
	logger *logger.Logger
}

// NewConnectPostgres opens a lazy pgx connection pool for cfg.PostgresDSN.
// It does not ping: the client must start while the database is unreachable.
func NewConnectPostgres(cfg config.ClientAdapter, log *logger.Logger) (*sql.DB, error) {
	conn, err := sql.Open("pgx", cfg.PostgresDSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(4)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	return conn, nil
}

// NewPostgresRemoteStore constructs the direct Postgres implementation of
// [RemoteStore]. Statements are built with squirrel using $n placeholders.
func NewPostgresRemoteStore(db *sql.DB, table string, owner OwnerFunc, logger *logger.Logger) RemoteStore {
	return &postgresRemoteStore{
		db:     db,
		table:  table,
		owner:  owner,
		psql:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		logger: logger,
	}
}

func (p *postgresRemoteStore) Upsert(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	tags, err := encodeTags(note.Tags)
	if err != nil {
		return terminal(err, "encode tags")
	}

	query, args, err := p.psql.Insert(p.table).
		Columns(noteColumns...).
		Values(note.ID, note.UserID, note.Title, note.Content, tags, note.Folder,
			note.IsPinned, note.IsArchived, nullableTime(note.ReminderAt), note.CreatedAt, note.UpdatedAt).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return terminal(err, "build upsert query")
	}

	if _, err = p.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "postgresRemoteStore.Upsert").Str("id", note.ID).Msg("failed to upsert note")
		return mapPgError(err)
	}
	return nil
}

func (p *postgresRemoteStore) UpdateFields(ctx context.Context, id string, patch models.NotePatch, updatedAt time.Time) error {
	log := logger.FromContext(ctx)

	fields := patch.Fields(updatedAt)
	if tags, ok := fields["tags"].([]string); ok {
		encoded, err := encodeTags(tags)
		if err != nil {
			return terminal(err, "encode tags")
		}
		fields["tags"] = encoded
	}

	query, args, err := p.psql.Update(p.table).
		SetMap(fields).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return terminal(err, "build update query")
	}

	res, err := p.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "postgresRemoteStore.UpdateFields").Str("id", id).Msg("failed to update note")
		return mapPgError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return mapPgError(err)
	}
	if n == 0 {
		return terminal(ErrNotFound, id)
	}
	return nil
}

func (p *postgresRemoteStore) DeleteByID(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := p.psql.Delete(p.table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return terminal(err, "build delete query")
	}

	if _, err = p.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "postgresRemoteStore.DeleteByID").Str("id", id).Msg("failed to delete note")
		return mapPgError(err)
	}
	return nil
}

func (p *postgresRemoteStore) SelectAll(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	owner := p.owner.get()
	if owner == "" {
		log.Warn().Str("func", "postgresRemoteStore.SelectAll").Msg("owner is not resolved, refusing to read notes")
		return nil, unavailable(ErrOwnerUnknown, "select notes")
	}

	query, args, err := p.psql.Select(noteColumns...).
		From(p.table).
		Where(sq.Eq{"user_id": owner}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, terminal(err, "build select query")
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "postgresRemoteStore.SelectAll").Msg("failed to query notes")
		return nil, mapPgError(err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var (
			n        models.Note
			tags     []byte
			reminder sql.NullTime
		)
		if err = rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &tags, &n.Folder,
			&n.IsPinned, &n.IsArchived, &reminder, &n.CreatedAt, &n.UpdatedAt); err != nil {
			log.Err(err).Str("func", "postgresRemoteStore.SelectAll").Msg("failed to scan note row")
			return nil, mapPgError(err)
		}
		if len(tags) > 0 {
			if err = json.Unmarshal(tags, &n.Tags); err != nil {
				return nil, unavailable(err, "decode tags of "+n.ID)
			}
		}
		if reminder.Valid {
			r := reminder.Time
			n.ReminderAt = &r
		}
		notes = append(notes, n)
	}
	if err = rows.Err(); err != nil {
		return nil, mapPgError(err)
	}

	return notes, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	return string(b), err
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
