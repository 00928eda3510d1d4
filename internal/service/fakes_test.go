// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/network"
	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	errTransient = fmt.Errorf("%w: %w: connection refused", adapter.ErrUnavailable, adapter.ErrUnreachable)
	errRejected  = fmt.Errorf("%w: %w: bad payload", adapter.ErrTerminal, adapter.ErrBadRequest)
)

// memStorage is a LocalStorage kept in memory. It copies on every call like
// the JSON backed store does.
type memStorage struct {
	mu        sync.Mutex
	notes     []models.Note
	queue     []models.Operation
	saveErr   error
	noteSaves int
}

func (s *memStorage) LoadNotes(context.Context) ([]models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.notes), nil
}

func (s *memStorage) SaveNotes(_ context.Context, notes []models.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.noteSaves++
	s.notes = slices.Clone(notes)
	return nil
}

func (s *memStorage) LoadQueue(context.Context) ([]models.Operation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.queue), nil
}

func (s *memStorage) SaveQueue(_ context.Context, ops []models.Operation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.queue = slices.Clone(ops)
	return nil
}

func (s *memStorage) persistedQueue() []models.Operation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.queue)
}

func (s *memStorage) persistedNotes() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.notes)
}

// memRemote is a RemoteStore with upsert-by-id semantics. failNext makes
// the next calls fail in order.
type memRemote struct {
	mu       sync.Mutex
	rows     map[string]models.Note
	calls    []string
	failNext []error
	failFor  map[string]error
	onCall   func(call string)
}

func newMemRemote() *memRemote {
	return &memRemote{
		rows:    make(map[string]models.Note),
		failFor: make(map[string]error),
	}
}

func (r *memRemote) record(call, id string) error {
	r.mu.Lock()
	r.calls = append(r.calls, call+":"+id)
	var err error
	if len(r.failNext) > 0 {
		err, r.failNext = r.failNext[0], r.failNext[1:]
	} else if e, ok := r.failFor[id]; ok {
		err = e
	}
	onCall := r.onCall
	r.mu.Unlock()

	if onCall != nil {
		onCall(call + ":" + id)
	}
	return err
}

func (r *memRemote) Upsert(_ context.Context, note models.Note) error {
	if err := r.record("upsert", note.ID); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[note.ID] = note.Clone()
	return nil
}

func (r *memRemote) UpdateFields(_ context.Context, id string, patch models.NotePatch, updatedAt time.Time) error {
	if err := r.record("update", id); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	note, ok := r.rows[id]
	if !ok {
		return fmt.Errorf("%w: %w", adapter.ErrTerminal, adapter.ErrNotFound)
	}
	patch.Apply(&note)
	note.UpdatedAt = updatedAt
	r.rows[id] = note
	return nil
}

func (r *memRemote) DeleteByID(_ context.Context, id string) error {
	if err := r.record("delete", id); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *memRemote) SelectAll(context.Context) ([]models.Note, error) {
	if err := r.record("select", "*"); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	notes := slices.Collect(maps.Values(r.rows))
	sortByCreation(notes)
	return notes, nil
}

func (r *memRemote) callLog() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}

func (r *memRemote) row(id string) (models.Note, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.rows[id]
	return n, ok
}

func (r *memRemote) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

// testClock hands out strictly increasing times.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

// sequentialIDs hands out valid, ordered UUIDs.
func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("00000000-0000-7000-8000-%012d", n)
	}
}

// quietReach is a Reachability that never fires edges, so tests drive
// syncs by hand.
type quietReach struct {
	online atomic.Bool
}

func (r *quietReach) Online() bool {
	return r.online.Load()
}

func (r *quietReach) Subscribe(func(bool)) func() {
	return func() {}
}

type harness struct {
	svc     *notesService
	storage *memStorage
	remote  *memRemote
	monitor *network.Monitor
	quiet   *quietReach
	events  *eventLog
}

type eventLog struct {
	mu     sync.Mutex
	events []models.Event
}

func (l *eventLog) add(ev models.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

func (l *eventLog) kinds() []models.EventKind {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.EventKind, 0, len(l.events))
	for _, ev := range l.events {
		out = append(out, ev.Kind)
	}
	return out
}

// newHarness opens a notes service over in-memory storage and remote,
// driven by a real reachability monitor.
func newHarness(t *testing.T, online bool) *harness {
	t.Helper()
	monitor := network.NewMonitor(online, logger.Nop())
	h := openHarness(t, monitor, &memStorage{}, newMemRemote(), nil)
	h.monitor = monitor
	return h
}

// newQuietHarness is like newHarness but reachability changes never start
// a sync on their own.
func newQuietHarness(t *testing.T, online bool) *harness {
	t.Helper()
	reach := &quietReach{}
	reach.online.Store(online)
	h := openHarness(t, reach, &memStorage{}, newMemRemote(), nil)
	h.quiet = reach
	return h
}

func openHarness(t *testing.T, reach Reachability, storage *memStorage, remote *memRemote, identity IdentityProvider, opts ...Option) *harness {
	t.Helper()

	clock := newTestClock()
	opts = append([]Option{WithClock(clock.Now), WithIDGenerator(sequentialIDs())}, opts...)

	svc := NewNotesService(storage, reach, remote, identity, logger.Nop(), opts...).(*notesService)

	events := &eventLog{}
	svc.Subscribe(events.add)

	if err := svc.Open(context.Background()); err != nil {
		t.Fatalf("open notes service: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })

	return &harness{svc: svc, storage: storage, remote: remote, events: events}
}
