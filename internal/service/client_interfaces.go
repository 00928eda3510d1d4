// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// Reachability is the read side of the network monitor.
type Reachability interface {
	// Online reports the last known reachability of the remote store.
	Online() bool

	// Subscribe registers fn for online/offline transitions and returns a
	// function that removes the registration.
	Subscribe(fn func(online bool)) (unsubscribe func())
}

// IdentityProvider resolves the user the client acts for.
type IdentityProvider interface {
	// UserID returns the authenticated user id. An empty id with a nil
	// error means the client runs as guest.
	UserID(ctx context.Context) (string, error)
}

// NotesService is the front door of the client. Mutations are applied to the
// local cache immediately and replicated to the remote store in the
// background; callers never see remote failures.
type NotesService interface {
	// Open restores the cache and the operation queue from local storage and
	// starts reacting to reachability changes. It must be called once before
	// any other method.
	Open(ctx context.Context) error

	// Close stops reacting to reachability changes and waits for background
	// syncs to finish.
	Close() error

	// Create fills in id, owner, timestamps and the default folder, inserts
	// the note into the cache and queues it for the remote store.
	Create(ctx context.Context, draft models.NoteDraft) models.Note

	// Update merges patch into the cached note and queues the change.
	// A missing note yields a Result wrapping ErrNoteNotFound.
	Update(ctx context.Context, id string, patch models.NotePatch) models.Result

	// Delete moves a note to Trash. A note already in Trash is removed
	// permanently.
	Delete(ctx context.Context, id string) models.Result

	// TogglePin flips the pinned flag of the note.
	TogglePin(ctx context.Context, id string) models.Result

	// ToggleArchive flips the archived flag of the note.
	ToggleArchive(ctx context.Context, id string) models.Result

	// Duplicate creates a copy of the note with a new id.
	Duplicate(ctx context.Context, id string) (models.Note, models.Result)

	// RenameFolder moves every note in folder from to folder to. Protected
	// folders can be neither source nor target.
	RenameFolder(ctx context.Context, from, to string) models.Result

	// DeleteFolder moves every note in folder name to Trash. Protected
	// folders are refused.
	DeleteFolder(ctx context.Context, name string) models.Result

	// Get returns a copy of the cached note.
	Get(id string) (models.Note, error)

	// List returns the cached notes matching query, sorted as requested.
	List(query models.NoteQuery) []models.Note

	// Views splits the notes matching query into pinned, active and
	// archived views.
	Views(query models.NoteQuery) models.NoteViews

	// SearchFuzzy returns notes ranked by a fuzzy match of pattern against
	// title and tags, best match first.
	SearchFuzzy(pattern string) []models.Note

	// Folders lists all folder names, reserved folders first.
	Folders() []string

	// Tags lists all distinct tags in alphabetical order.
	Tags() []string

	// Reminders returns notes with a reminder at or after now, soonest
	// first. Notes in Trash are skipped.
	Reminders(now time.Time) []models.Note

	// Preview returns a plain text excerpt of the note content of at most
	// limit runes.
	Preview(id string, limit int) (string, error)

	// Subscribe registers fn for mutation and sync events. Observers are
	// called synchronously and must not block.
	Subscribe(fn func(models.Event)) (unsubscribe func())

	// Sync drains the operation queue and reconciles the cache when the
	// queue ends up empty.
	Sync(ctx context.Context) (models.DrainReport, error)

	// Status returns a snapshot of the sync engine.
	Status() models.SyncStatus
}

// Syncer is what the periodic sync job drives.
type Syncer interface {
	Sync(ctx context.Context) (models.DrainReport, error)
}

// ClientSyncJob defines the contract for a background worker that
// periodically retries pending operations.
type ClientSyncJob interface {
	// Start launches the background goroutine. It syncs every interval,
	// defaulting to one minute if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
