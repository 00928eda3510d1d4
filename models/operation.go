// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"time"
)

// OperationKind tags the variant held by an [Operation].
type OperationKind string

const (
	OperationCreate OperationKind = "create"
	OperationUpdate OperationKind = "update"
	OperationDelete OperationKind = "delete"
)

var ErrInvalidOperation = errors.New("invalid operation")

// Operation is a pending mutation that has not been confirmed by the remote
// store yet. Exactly one payload matches Kind:
//   - create: Note holds the full note;
//   - update: Patch holds the changed fields and UpdatedAt the new timestamp;
//   - delete: only NoteID is set.
type Operation struct {
	Kind       OperationKind `json:"kind"`
	NoteID     string        `json:"note_id"`
	Note       *Note         `json:"note,omitempty"`
	Patch      *NotePatch    `json:"patch,omitempty"`
	UpdatedAt  time.Time     `json:"updated_at,omitzero"`
	EnqueuedAt time.Time     `json:"enqueued_at"`
}

// NewCreateOperation builds a create operation carrying a copy of note.
func NewCreateOperation(note Note, now time.Time) Operation {
	n := note.Clone()
	return Operation{Kind: OperationCreate, NoteID: note.ID, Note: &n, EnqueuedAt: now}
}

// NewUpdateOperation builds an update operation for id.
func NewUpdateOperation(id string, patch NotePatch, updatedAt, now time.Time) Operation {
	p := patch
	return Operation{Kind: OperationUpdate, NoteID: id, Patch: &p, UpdatedAt: updatedAt, EnqueuedAt: now}
}

// NewDeleteOperation builds a delete operation for id.
func NewDeleteOperation(id string, now time.Time) Operation {
	return Operation{Kind: OperationDelete, NoteID: id, EnqueuedAt: now}
}

// Validate checks that the payload matches the kind.
func (o Operation) Validate() error {
	if o.NoteID == "" {
		return ErrInvalidOperation
	}
	switch o.Kind {
	case OperationCreate:
		if o.Note == nil || o.Note.ID != o.NoteID {
			return ErrInvalidOperation
		}
	case OperationUpdate:
		if o.Patch == nil {
			return ErrInvalidOperation
		}
	case OperationDelete:
	default:
		return ErrInvalidOperation
	}
	return nil
}
