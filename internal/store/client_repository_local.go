// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Keys of the durable collections in the kv table.
const (
	NotesKey = "notes"
	QueueKey = "queue"
)

type localStorage struct {
	kv KVRepository
}

// NewLocalStorage returns a [LocalStorage] that keeps notes and the pending
// queue under separate keys of kv.
func NewLocalStorage(kv KVRepository) LocalStorage {
	return &localStorage{kv: kv}
}

func (s *localStorage) LoadNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	if _, err := s.kv.Load(ctx, NotesKey, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *localStorage) SaveNotes(ctx context.Context, notes []models.Note) error {
	if notes == nil {
		notes = []models.Note{}
	}
	return s.kv.Save(ctx, NotesKey, notes)
}

func (s *localStorage) LoadQueue(ctx context.Context) ([]models.Operation, error) {
	var ops []models.Operation
	if _, err := s.kv.Load(ctx, QueueKey, &ops); err != nil {
		return nil, err
	}
	return ops, nil
}

// SaveQueue drops the queue key once nothing is pending; LoadQueue reads a
// missing key as an empty queue.
func (s *localStorage) SaveQueue(ctx context.Context, ops []models.Operation) error {
	if len(ops) == 0 {
		if err := s.kv.Delete(ctx, QueueKey); err != nil && !errors.Is(err, ErrKeyNotFound) {
			return err
		}
		return nil
	}
	return s.kv.Save(ctx, QueueKey, ops)
}
