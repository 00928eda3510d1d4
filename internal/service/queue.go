// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/metrics"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// Sender delivers one operation to the remote store.
type Sender func(ctx context.Context, op models.Operation) error

// DrainResult is the outcome of one pass over the queue.
type DrainResult struct {
	Sent      int
	Dropped   int
	Failed    int
	Remaining int
}

// OperationQueue is the durable FIFO of operations not yet confirmed by the
// remote store. Every change is written through to local storage.
type OperationQueue struct {
	// drainMu keeps drains sequential
	drainMu sync.Mutex

	mu  sync.Mutex
	ops []models.Operation

	storage store.LocalStorage
	metrics *metrics.Collector
	logger  *logger.Logger
}

func NewOperationQueue(storage store.LocalStorage, m *metrics.Collector, logger *logger.Logger) *OperationQueue {
	return &OperationQueue{
		storage: storage,
		metrics: m,
		logger:  logger,
	}
}

// Load replaces the in-memory queue with the persisted one.
func (q *OperationQueue) Load(ctx context.Context) error {
	ops, err := q.storage.LoadQueue(ctx)
	if err != nil {
		return fmt.Errorf("load operation queue: %w", err)
	}

	q.mu.Lock()
	q.ops = ops
	q.metrics.SetQueueLength(len(ops))
	q.mu.Unlock()
	return nil
}

// Enqueue appends ops to the tail and persists the queue. The in-memory
// queue keeps the ops even if persisting fails.
func (q *OperationQueue) Enqueue(ctx context.Context, ops ...models.Operation) error {
	if len(ops) == 0 {
		return nil
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.ops = append(q.ops, ops...)
	q.metrics.SetQueueLength(len(q.ops))
	return q.persistLocked(ctx)
}

// Len returns the number of pending operations.
func (q *OperationQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.ops)
}

// Snapshot returns a copy of the pending operations in queue order.
func (q *OperationQueue) Snapshot() []models.Operation {
	q.mu.Lock()
	defer q.mu.Unlock()
	return slices.Clone(q.ops)
}

// Drain sends the queued operations in FIFO order with send. Operations that
// succeed are removed, operations rejected with a terminal error are dropped
// and logged, and operations that fail transiently stay queued in their
// relative order. Once an operation of a note fails, later operations of the
// same note are kept without being sent so that a note never sees its
// changes out of order. The pass stops early when online reports false or
// ctx is done. Operations enqueued while the pass runs are kept behind the
// survivors.
func (q *OperationQueue) Drain(ctx context.Context, send Sender, online func() bool) DrainResult {
	q.drainMu.Lock()
	defer q.drainMu.Unlock()

	q.mu.Lock()
	batch := slices.Clone(q.ops)
	q.mu.Unlock()

	var (
		result  DrainResult
		kept    = make([]models.Operation, 0, len(batch))
		blocked = make(map[string]struct{})
	)

	for i, op := range batch {
		if ctx.Err() != nil || !online() {
			kept = append(kept, batch[i:]...)
			break
		}
		if _, ok := blocked[op.NoteID]; ok {
			kept = append(kept, op)
			continue
		}

		err := send(ctx, op)
		switch {
		case err == nil:
			result.Sent++
			q.metrics.OperationSent(op.Kind)
		case adapter.IsTerminal(err):
			result.Dropped++
			q.metrics.OperationDropped(op.Kind)
			q.logger.Error().Err(err).
				Str("func", "OperationQueue.Drain").
				Str("kind", string(op.Kind)).
				Str("note_id", op.NoteID).
				Msg("remote rejected operation, dropping it")
		default:
			result.Failed++
			q.metrics.OperationFailed(op.Kind)
			blocked[op.NoteID] = struct{}{}
			kept = append(kept, op)
			q.logger.Warn().Err(err).
				Str("func", "OperationQueue.Drain").
				Str("kind", string(op.Kind)).
				Str("note_id", op.NoteID).
				Msg("operation failed, keeping it queued")
		}
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	// only drains remove operations, so the head of q.ops is still batch
	q.ops = append(kept, q.ops[len(batch):]...)
	result.Remaining = len(q.ops)
	q.metrics.SetQueueLength(len(q.ops))

	if err := q.persistLocked(ctx); err != nil {
		q.logger.Err(err).Str("func", "OperationQueue.Drain").Msg("failed to persist queue after drain")
	}
	return result
}

func (q *OperationQueue) persistLocked(ctx context.Context) error {
	// a canceled caller must not leave the persisted queue behind memory
	if err := q.storage.SaveQueue(context.WithoutCancel(ctx), slices.Clone(q.ops)); err != nil {
		return fmt.Errorf("persist operation queue: %w", err)
	}
	return nil
}
