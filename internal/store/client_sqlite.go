// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

type kvRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewKVRepository returns a [KVRepository] backed by the kv table of db.
func NewKVRepository(db *DB, logger *logger.Logger) KVRepository {
	return &kvRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *kvRepository) Save(ctx context.Context, key string, value any) error {
	log := logger.FromContext(ctx)

	if key == "" {
		return ErrEmptyKey
	}

	payload, err := json.Marshal(value)
	if err != nil {
		log.Err(err).Str("func", "kvRepository.Save").Str("key", key).Msg("failed to encode value")
		return fmt.Errorf("%w (key=%s): %w", ErrEncodingValue, key, err)
	}

	if _, err = r.DB.ExecContext(ctx, saveValue, key, payload, r.now().UTC()); err != nil {
		log.Err(err).Str("func", "kvRepository.Save").Str("key", key).Msg("failed to execute upsert for kv")
		return fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, key, err)
	}

	return nil
}

func (r *kvRepository) Load(ctx context.Context, key string, dst any) (bool, error) {
	log := logger.FromContext(ctx)

	if key == "" {
		return false, ErrEmptyKey
	}

	var payload []byte
	err := r.DB.QueryRowContext(ctx, loadValue, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "kvRepository.Load").Str("key", key).Msg("failed to query kv")
		return false, fmt.Errorf("%w (key=%s): %w", ErrExecutingQuery, key, err)
	}

	if err = json.Unmarshal(payload, dst); err != nil {
		log.Err(err).Str("func", "kvRepository.Load").Str("key", key).Msg("failed to decode stored value")
		return true, fmt.Errorf("%w (key=%s): %w", ErrDecodingValue, key, err)
	}

	return true, nil
}

func (r *kvRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	if key == "" {
		return ErrEmptyKey
	}

	res, err := r.DB.ExecContext(ctx, deleteValue, key)
	if err != nil {
		log.Err(err).Str("func", "kvRepository.Delete").Str("key", key).Msg("failed to delete kv")
		return fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, key, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, key, err)
	}
	if n == 0 {
		return ErrKeyNotFound
	}

	return nil
}
