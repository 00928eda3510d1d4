// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// Reserved folder names. FolderMain is the default placement of new notes,
// FolderTrash holds soft-deleted notes until they are removed permanently.
const (
	FolderMain  = "Main"
	FolderTrash = "Trash"
)

// GuestOwner is the owner value used for notes created without an
// authenticated identity.
const GuestOwner = "guest"

// Note is a single user note. It is the unit of optimistic mutation on the
// client and the unit of replication to the remote store.
//
// JSON field names are part of the remote contract: every remote backend
// stores notes in a table whose columns match these names exactly.
type Note struct {
	// ID is a client-assigned UUID. It never changes after creation so that
	// notes created offline can be replayed idempotently.
	ID string `json:"id" yaml:"id" validate:"required,uuid"`

	// UserID is the owner of the note, or GuestOwner.
	UserID string `json:"user_id" yaml:"user_id" validate:"required"`

	// Title is the display name of the note.
	Title string `json:"title" yaml:"title"`

	// Content is the markdown body of the note.
	Content string `json:"content" yaml:"content"`

	// Tags is the classification tag set.
	Tags []string `json:"tags" yaml:"tags"`

	// Folder is the containing folder label.
	Folder string `json:"folder" yaml:"folder" validate:"required"`

	// IsPinned marks the note as pinned to the top of the active view.
	IsPinned bool `json:"is_pinned" yaml:"is_pinned"`

	// IsArchived hides the note from the pinned and active views.
	IsArchived bool `json:"is_archived" yaml:"is_archived"`

	// ReminderAt is an optional scheduled reminder.
	ReminderAt *time.Time `json:"reminder_at" yaml:"reminder_at"`

	// CreatedAt is set once at creation.
	CreatedAt time.Time `json:"created_at" yaml:"created_at" validate:"required"`

	// UpdatedAt is bumped on every mutation and never moves backwards.
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at" validate:"required,gtefield=CreatedAt"`
}

// Clone returns a deep copy of n so that callers can mutate the copy without
// touching slices or pointers shared with the cache.
func (n Note) Clone() Note {
	c := n
	if n.Tags != nil {
		c.Tags = slices.Clone(n.Tags)
	}
	if n.ReminderAt != nil {
		r := *n.ReminderAt
		c.ReminderAt = &r
	}
	return c
}

// InTrash reports whether the note has been soft-deleted.
func (n Note) InTrash() bool {
	return n.Folder == FolderTrash
}

// HasTag reports whether the note carries tag.
func (n Note) HasTag(tag string) bool {
	return slices.Contains(n.Tags, tag)
}

// Touch bumps UpdatedAt to now, keeping it monotonic and never earlier than
// CreatedAt.
func (n *Note) Touch(now time.Time) {
	if now.Before(n.UpdatedAt) {
		now = n.UpdatedAt
	}
	if now.Before(n.CreatedAt) {
		now = n.CreatedAt
	}
	n.UpdatedAt = now
}

// IsProtectedFolder reports whether name is one of the reserved folders that
// cannot be renamed or deleted.
func IsProtectedFolder(name string) bool {
	return name == FolderMain || name == FolderTrash
}
