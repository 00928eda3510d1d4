// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/metrics"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

const copySuffix = " (copy)"

type notesService struct {
	storage   store.LocalStorage
	identity  IdentityProvider
	validator validators.Validator
	queue     *OperationQueue
	engine    *syncEngine
	metrics   *metrics.Collector
	newID     func() string
	now       func() time.Time

	mu    sync.RWMutex
	notes map[string]models.Note

	obsMu     sync.RWMutex
	observers map[uint64]func(models.Event)
	nextObs   uint64

	logger *logger.Logger
}

// Option customises a notes service.
type Option func(*notesService)

// WithMetrics records queue and sync metrics into m.
func WithMetrics(m *metrics.Collector) Option {
	return func(s *notesService) { s.metrics = m }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *notesService) { s.now = now }
}

// WithIDGenerator replaces the UUIDv7 generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *notesService) { s.newID = newID }
}

// NewNotesService wires the notes repository, its operation queue and the
// sync engine. Open must be called before use.
func NewNotesService(
	storage store.LocalStorage,
	reach Reachability,
	remote adapter.RemoteStore,
	identity IdentityProvider,
	logger *logger.Logger,
	opts ...Option,
) NotesService {
	s := &notesService{
		storage:   storage,
		identity:  identity,
		validator: validators.NewNoteValidator(),
		newID:     utils.NewUUIDGenerator().Generate,
		now:       time.Now,
		notes:     make(map[string]models.Note),
		observers: make(map[uint64]func(models.Event)),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.queue = NewOperationQueue(storage, s.metrics, logger)
	s.engine = newSyncEngine(s.queue, remote, reach, s, s.resolveOwner, s.validator, s.emit, s.metrics, logger, s.now)
	return s
}

func (s *notesService) Open(ctx context.Context) error {
	notes, err := s.storage.LoadNotes(ctx)
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}
	if err = s.queue.Load(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.notes = make(map[string]models.Note, len(notes))
	for _, n := range notes {
		s.notes[n.ID] = n
	}
	s.mu.Unlock()

	// the table backends scope reads by owner, resolve it before any sync
	if _, err = s.resolveOwner(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "notesService.Open").Msg("identity unavailable, sync retries it")
	}

	s.engine.start(ctx)

	s.logger.Debug().
		Str("func", "notesService.Open").
		Int("notes", len(notes)).
		Int("queued", s.queue.Len()).
		Msg("local state restored")
	return nil
}

func (s *notesService) Close() error {
	s.engine.close()
	return nil
}

func (s *notesService) Create(ctx context.Context, draft models.NoteDraft) models.Note {
	owner := s.owner(ctx)
	now := s.clock()

	note := models.Note{
		ID:         s.newID(),
		UserID:     owner,
		Title:      deriveTitle(draft.Title, draft.Content),
		Content:    draft.Content,
		Tags:       normalizeTags(draft.Tags),
		Folder:     strings.TrimSpace(draft.Folder),
		IsPinned:   draft.IsPinned,
		IsArchived: draft.IsArchived,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if note.Folder == "" {
		note.Folder = models.FolderMain
	}
	if draft.ReminderAt != nil {
		note.ReminderAt = models.Ptr(draft.ReminderAt.UTC())
	}
	if err := s.validator.Validate(ctx, note); err != nil {
		s.logger.Warn().Err(err).Str("func", "notesService.Create").Str("note_id", note.ID).Msg("created note does not validate")
	}

	s.mu.Lock()
	s.notes[note.ID] = note
	s.commitLocked(ctx, "notesService.Create", models.NewCreateOperation(note, now))
	s.mu.Unlock()

	s.afterCommit(ctx, models.Event{Kind: models.EventNoteCreated, NoteID: note.ID})
	return note.Clone()
}

func (s *notesService) Update(ctx context.Context, id string, patch models.NotePatch) models.Result {
	patch = patch.Clone()
	if patch.Tags != nil {
		patch.Tags = models.Ptr(normalizeTags(*patch.Tags))
	}
	if patch.Folder != nil {
		patch.Folder = models.Ptr(strings.TrimSpace(*patch.Folder))
	}
	if err := s.validator.Validate(ctx, patch); err != nil {
		return models.Failure(fmt.Errorf("%w: %w", ErrInvalidPatch, err))
	}

	return s.patchNote(ctx, "notesService.Update", id, func(models.Note) models.NotePatch {
		return patch
	})
}

func (s *notesService) TogglePin(ctx context.Context, id string) models.Result {
	return s.patchNote(ctx, "notesService.TogglePin", id, func(n models.Note) models.NotePatch {
		return models.NotePatch{IsPinned: models.Ptr(!n.IsPinned)}
	})
}

func (s *notesService) ToggleArchive(ctx context.Context, id string) models.Result {
	return s.patchNote(ctx, "notesService.ToggleArchive", id, func(n models.Note) models.NotePatch {
		return models.NotePatch{IsArchived: models.Ptr(!n.IsArchived)}
	})
}

func (s *notesService) Delete(ctx context.Context, id string) models.Result {
	s.mu.Lock()
	note, ok := s.notes[id]
	if !ok {
		s.mu.Unlock()
		return models.Failure(fmt.Errorf("%w: %s", ErrNoteNotFound, id))
	}

	var (
		op   models.Operation
		kind models.EventKind
	)
	if note.InTrash() {
		delete(s.notes, id)
		op = models.NewDeleteOperation(id, s.clock())
		kind = models.EventNoteDeleted
	} else {
		op = s.applyPatchLocked(note, trashPatch())
		kind = models.EventNoteTrashed
	}
	s.commitLocked(ctx, "notesService.Delete", op)
	s.mu.Unlock()

	s.afterCommit(ctx, models.Event{Kind: kind, NoteID: id})
	return models.Success()
}

func (s *notesService) Duplicate(ctx context.Context, id string) (models.Note, models.Result) {
	src, err := s.Get(id)
	if err != nil {
		return models.Note{}, models.Failure(err)
	}

	folder := src.Folder
	if src.InTrash() {
		folder = models.FolderMain
	}

	note := s.Create(ctx, models.NoteDraft{
		Title:      deriveTitle(src.Title, src.Content) + copySuffix,
		Content:    src.Content,
		Tags:       src.Tags,
		Folder:     folder,
		IsArchived: src.IsArchived,
		ReminderAt: src.ReminderAt,
	})
	return note, models.Success()
}

func (s *notesService) RenameFolder(ctx context.Context, from, to string) models.Result {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" {
		return models.Failure(ErrEmptyFolderName)
	}
	for _, name := range []string{from, to} {
		if models.IsProtectedFolder(name) {
			return models.Failure(fmt.Errorf("%w: %s", ErrProtectedFolder, name))
		}
	}
	if from == to {
		return models.Success()
	}

	return s.moveFolder(ctx, "notesService.RenameFolder", from, models.EventNoteUpdated, models.NotePatch{Folder: models.Ptr(to)})
}

func (s *notesService) DeleteFolder(ctx context.Context, name string) models.Result {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Failure(ErrEmptyFolderName)
	}
	if models.IsProtectedFolder(name) {
		return models.Failure(fmt.Errorf("%w: %s", ErrProtectedFolder, name))
	}

	return s.moveFolder(ctx, "notesService.DeleteFolder", name, models.EventNoteTrashed, trashPatch())
}

// moveFolder applies patch to every note in folder, one update per note.
func (s *notesService) moveFolder(ctx context.Context, fn, folder string, kind models.EventKind, patch models.NotePatch) models.Result {
	s.mu.Lock()
	var targets []models.Note
	for _, n := range s.notes {
		if n.Folder == folder {
			targets = append(targets, n)
		}
	}
	if len(targets) == 0 {
		s.mu.Unlock()
		return models.Failure(fmt.Errorf("%w: %s", ErrFolderNotFound, folder))
	}
	sortByCreation(targets)

	ops := make([]models.Operation, 0, len(targets))
	events := make([]models.Event, 0, len(targets))
	for _, n := range targets {
		ops = append(ops, s.applyPatchLocked(n, patch))
		events = append(events, models.Event{Kind: kind, NoteID: n.ID})
	}
	s.commitLocked(ctx, fn, ops...)
	s.mu.Unlock()

	s.afterCommit(ctx, events...)
	return models.Success()
}

func (s *notesService) patchNote(ctx context.Context, fn, id string, build func(models.Note) models.NotePatch) models.Result {
	s.mu.Lock()
	note, ok := s.notes[id]
	if !ok {
		s.mu.Unlock()
		return models.Failure(fmt.Errorf("%w: %s", ErrNoteNotFound, id))
	}
	op := s.applyPatchLocked(note, build(note))
	s.commitLocked(ctx, fn, op)
	s.mu.Unlock()

	s.afterCommit(ctx, models.Event{Kind: models.EventNoteUpdated, NoteID: id})
	return models.Success()
}

// applyPatchLocked merges patch into note, stores it and returns the
// matching update operation.
func (s *notesService) applyPatchLocked(note models.Note, patch models.NotePatch) models.Operation {
	now := s.clock()
	patch.Apply(&note)
	note.Touch(now)
	s.notes[note.ID] = note
	return models.NewUpdateOperation(note.ID, patch.Clone(), note.UpdatedAt, now)
}

// commitLocked persists the cache and queues ops. Local persistence errors
// are logged and the in-memory state is kept.
func (s *notesService) commitLocked(ctx context.Context, fn string, ops ...models.Operation) {
	if err := s.persistLocked(ctx); err != nil {
		s.logger.Err(err).Str("func", fn).Msg("failed to persist notes")
	}
	if err := s.queue.Enqueue(ctx, ops...); err != nil {
		s.logger.Err(err).Str("func", fn).Msg("failed to persist operation queue")
	}
}

func (s *notesService) persistLocked(ctx context.Context) error {
	notes := make([]models.Note, 0, len(s.notes))
	for _, n := range s.notes {
		notes = append(notes, n)
	}
	sortByCreation(notes)

	if err := s.storage.SaveNotes(context.WithoutCancel(ctx), notes); err != nil {
		return fmt.Errorf("save notes: %w", err)
	}
	return nil
}

func (s *notesService) afterCommit(ctx context.Context, events ...models.Event) {
	for _, ev := range events {
		s.emit(ev)
	}
	s.emit(models.Event{Kind: models.EventOpQueued, Message: fmt.Sprintf("%d pending", s.queue.Len())})
	s.engine.trigger(ctx)
}

// replaceIfIdle swaps the cache for notes unless an operation is pending.
// The check runs under the cache lock so no mutation can slip in between.
func (s *notesService) replaceIfIdle(ctx context.Context, notes []models.Note) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.queue.Len() > 0 {
		return false
	}

	replaced := make(map[string]models.Note, len(notes))
	for _, n := range notes {
		replaced[n.ID] = n.Clone()
	}
	s.notes = replaced

	if err := s.persistLocked(ctx); err != nil {
		s.logger.Err(err).Str("func", "notesService.replaceIfIdle").Msg("failed to persist reconciled notes")
	}
	return true
}

func (s *notesService) Sync(ctx context.Context) (models.DrainReport, error) {
	return s.engine.Sync(ctx)
}

func (s *notesService) Status() models.SyncStatus {
	return s.engine.Status()
}

func (s *notesService) Subscribe(fn func(models.Event)) (unsubscribe func()) {
	s.obsMu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	s.obsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.obsMu.Lock()
			delete(s.observers, id)
			s.obsMu.Unlock()
		})
	}
}

func (s *notesService) emit(ev models.Event) {
	s.obsMu.RLock()
	ids := make([]uint64, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	observers := make([]func(models.Event), 0, len(ids))
	for _, id := range ids {
		observers = append(observers, s.observers[id])
	}
	s.obsMu.RUnlock()

	for _, fn := range observers {
		fn(ev)
	}
}

// resolveOwner asks the identity provider whose notes this client holds.
// Without a provider, or with an anonymous answer, that is the guest.
func (s *notesService) resolveOwner(ctx context.Context) (string, error) {
	if s.identity == nil {
		return models.GuestOwner, nil
	}
	userID, err := s.identity.UserID(ctx)
	if err != nil {
		return "", err
	}
	if userID == "" {
		return models.GuestOwner, nil
	}
	return userID, nil
}

// owner resolves the note owner, falling back to guest.
func (s *notesService) owner(ctx context.Context) string {
	userID, err := s.resolveOwner(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "notesService.owner").Msg("identity unavailable, creating note as guest")
		return models.GuestOwner
	}
	return userID
}

// clock returns the current time at the precision the remote stores keep.
func (s *notesService) clock() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func trashPatch() models.NotePatch {
	return models.NotePatch{
		Folder:   models.Ptr(models.FolderTrash),
		IsPinned: models.Ptr(false),
	}
}

// normalizeTags trims tags and drops blanks and duplicates, keeping the
// first occurrence order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || slices.Contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}
