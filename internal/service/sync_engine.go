// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/metrics"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// cacheReplacer swaps the whole local cache for the remote collection. It
// must refuse when operations are pending.
type cacheReplacer interface {
	replaceIfIdle(ctx context.Context, notes []models.Note) bool
}

// syncEngine drains the operation queue against the remote store and
// refreshes the cache once nothing is pending. At most one pass runs at a
// time; triggers that arrive during a pass are folded into one follow-up
// pass.
type syncEngine struct {
	queue     *OperationQueue
	remote    adapter.RemoteStore
	reach     Reachability
	cache     cacheReplacer
	owner     func(ctx context.Context) (string, error)
	validator validators.Validator
	notify    func(models.Event)
	metrics   *metrics.Collector
	logger    *logger.Logger
	now       func() time.Time

	mu       sync.Mutex
	running  bool
	pending  bool
	phase    models.SyncState
	lastSync *time.Time
	lastErr  string
	closed   bool

	ctx         context.Context
	cancel      context.CancelFunc
	unsubscribe func()
	wg          sync.WaitGroup
}

func newSyncEngine(
	queue *OperationQueue,
	remote adapter.RemoteStore,
	reach Reachability,
	cache cacheReplacer,
	owner func(ctx context.Context) (string, error),
	validator validators.Validator,
	notify func(models.Event),
	m *metrics.Collector,
	logger *logger.Logger,
	now func() time.Time,
) *syncEngine {
	return &syncEngine{
		queue:     queue,
		remote:    remote,
		reach:     reach,
		cache:     cache,
		owner:     owner,
		validator: validator,
		notify:    notify,
		metrics:   m,
		logger:    logger,
		now:       now,
	}
}

// start subscribes to reachability edges. An offline to online edge starts
// a pass in the background; it cannot run inside the callback because the
// transport observer reports into the same monitor.
func (e *syncEngine) start(ctx context.Context) {
	e.mu.Lock()
	e.ctx, e.cancel = context.WithCancel(context.WithoutCancel(ctx))
	e.mu.Unlock()

	e.metrics.SetOnline(e.reach.Online())

	e.unsubscribe = e.reach.Subscribe(func(online bool) {
		e.metrics.SetOnline(online)
		if !online {
			e.notify(models.Event{Kind: models.EventOffline})
			return
		}
		e.notify(models.Event{Kind: models.EventOnline})

		e.mu.Lock()
		defer e.mu.Unlock()
		if e.closed {
			return
		}
		e.wg.Add(1)
		go func() {
			defer e.wg.Done()
			if _, err := e.Sync(e.ctx); err != nil {
				e.logger.Warn().Err(err).Str("func", "syncEngine.onOnline").Msg("sync after reconnect failed")
			}
		}()
	})
}

// close stops reacting to edges and waits for background passes.
func (e *syncEngine) close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	cancel := e.cancel
	e.mu.Unlock()

	if e.unsubscribe != nil {
		e.unsubscribe()
	}
	if cancel != nil {
		cancel()
	}
	e.wg.Wait()
}

// trigger runs a pass if the remote is reachable. It is called after every
// enqueue.
func (e *syncEngine) trigger(ctx context.Context) {
	if !e.reach.Online() {
		return
	}
	if _, err := e.Sync(ctx); err != nil {
		e.logger.Warn().Err(err).Str("func", "syncEngine.trigger").Msg("sync after enqueue failed")
	}
}

// Sync drains the queue and, when the queue ends up empty while online,
// reconciles the cache with the remote collection. When a pass is already
// running the call only schedules a follow-up pass and reports Coalesced.
func (e *syncEngine) Sync(ctx context.Context) (models.DrainReport, error) {
	e.mu.Lock()
	if e.running {
		e.pending = true
		e.mu.Unlock()
		return models.DrainReport{Remaining: e.queue.Len(), Coalesced: true}, nil
	}
	e.running = true
	e.mu.Unlock()

	var (
		report  models.DrainReport
		errs    []error
		drained bool
	)

	for {
		pass, ran, err := e.pass(ctx)
		drained = drained || ran
		report.Sent += pass.Sent
		report.Dropped += pass.Dropped
		report.Remaining = pass.Remaining
		report.Reconciled = report.Reconciled || pass.Reconciled
		if err != nil {
			errs = append(errs, err)
		}

		e.mu.Lock()
		if !e.pending || ctx.Err() != nil {
			e.running = false
			e.pending = false
			e.phase = ""
			if drained {
				now := e.now()
				e.lastSync = &now
				e.lastErr = ""
				if err = errors.Join(errs...); err != nil {
					e.lastErr = err.Error()
				}
			}
			e.mu.Unlock()
			break
		}
		e.pending = false
		e.mu.Unlock()
	}

	e.notify(models.Event{Kind: models.EventSyncCompleted, Message: fmt.Sprintf("sent %d, dropped %d, remaining %d", report.Sent, report.Dropped, report.Remaining)})

	if err := errors.Join(errs...); err != nil {
		return report, err
	}
	return report, ctx.Err()
}

// pass runs one drain and the reconciliation that may follow it. ran is
// false when the remote was unreachable and nothing was attempted.
func (e *syncEngine) pass(ctx context.Context) (report models.DrainReport, ran bool, err error) {
	if !e.reach.Online() {
		return models.DrainReport{Remaining: e.queue.Len()}, false, nil
	}

	e.setPhase(models.SyncDraining)
	start := e.now()
	res := e.queue.Drain(ctx, e.send, e.reach.Online)
	e.metrics.DrainFinished(start)

	report = models.DrainReport{
		Sent:      res.Sent,
		Dropped:   res.Dropped,
		Remaining: res.Remaining,
	}

	if res.Remaining > 0 || !e.reach.Online() || ctx.Err() != nil {
		return report, true, nil
	}

	e.setPhase(models.SyncReconciling)
	ok, err := e.reconcile(ctx)
	report.Reconciled = ok
	report.Remaining = e.queue.Len()
	return report, true, err
}

func (e *syncEngine) send(ctx context.Context, op models.Operation) error {
	switch op.Kind {
	case models.OperationCreate:
		if op.Note == nil {
			break
		}
		return e.remote.Upsert(ctx, *op.Note)
	case models.OperationUpdate:
		if op.Patch == nil {
			break
		}
		return e.remote.UpdateFields(ctx, op.NoteID, *op.Patch, op.UpdatedAt)
	case models.OperationDelete:
		return e.remote.DeleteByID(ctx, op.NoteID)
	}
	// a malformed operation can never succeed
	return fmt.Errorf("%w: %w: %s", adapter.ErrTerminal, models.ErrInvalidOperation, op.Kind)
}

// reconcile never reads the remote before the owner is known: an unscoped
// read would pull other users' notes into the cache.
func (e *syncEngine) reconcile(ctx context.Context) (bool, error) {
	owner, err := e.owner(ctx)
	if err != nil {
		e.metrics.Reconciled(false)
		return false, fmt.Errorf("reconcile: resolve owner: %w", err)
	}
	e.logger.Debug().Str("func", "syncEngine.reconcile").Str("owner", owner).Msg("reading remote notes")

	notes, err := e.remote.SelectAll(ctx)
	if err != nil {
		e.metrics.Reconciled(false)
		return false, fmt.Errorf("reconcile: %w", err)
	}

	valid := notes[:0]
	for _, note := range notes {
		if err = e.validator.Validate(ctx, note); err != nil {
			e.logger.Warn().Err(err).
				Str("func", "syncEngine.reconcile").
				Str("note_id", note.ID).
				Msg("skipping invalid remote note")
			continue
		}
		valid = append(valid, note)
	}

	ok := e.cache.replaceIfIdle(ctx, valid)
	e.metrics.Reconciled(ok)
	if ok {
		e.notify(models.Event{Kind: models.EventReconciled, Message: fmt.Sprintf("%d notes", len(valid))})
	}
	return ok, nil
}

func (e *syncEngine) setPhase(phase models.SyncState) {
	e.mu.Lock()
	e.phase = phase
	e.mu.Unlock()
}

// Status derives the idle states from reachability and queue length.
func (e *syncEngine) Status() models.SyncStatus {
	e.mu.Lock()
	phase := e.phase
	var lastSync *time.Time
	if e.lastSync != nil {
		t := *e.lastSync
		lastSync = &t
	}
	lastErr := e.lastErr
	e.mu.Unlock()

	online := e.reach.Online()
	length := e.queue.Len()

	state := phase
	if state == "" {
		switch {
		case !online:
			state = models.SyncIdleOffline
		case length == 0:
			state = models.SyncIdleOnlineEmpty
		default:
			state = models.SyncIdleOnlineNonEmpty
		}
	}

	return models.SyncStatus{
		State:       state,
		Online:      online,
		QueueLength: length,
		LastSyncAt:  lastSync,
		LastError:   lastErr,
	}
}
