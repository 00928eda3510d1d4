// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EventKind names what happened to the local state.
type EventKind string

const (
	EventNoteCreated   EventKind = "note.created"
	EventNoteUpdated   EventKind = "note.updated"
	EventNoteDeleted   EventKind = "note.deleted"
	EventNoteTrashed   EventKind = "note.trashed"
	EventOpQueued      EventKind = "operation.queued"
	EventSyncCompleted EventKind = "sync.completed"
	EventReconciled    EventKind = "sync.reconciled"
	EventOnline        EventKind = "network.online"
	EventOffline       EventKind = "network.offline"
)

// Event is delivered to observers registered on the notes service.
type Event struct {
	Kind    EventKind `json:"kind" yaml:"kind"`
	NoteID  string    `json:"note_id,omitempty" yaml:"note_id,omitempty"`
	Message string    `json:"message,omitempty" yaml:"message,omitempty"`
}
