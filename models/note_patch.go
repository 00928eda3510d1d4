// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

// NotePatch is a partial update of a [Note]. A nil field means "leave as is".
//
// ClearReminder is needed because a nil ReminderAt cannot distinguish
// "unchanged" from "remove the reminder".
type NotePatch struct {
	Title         *string    `json:"title,omitempty"`
	Content       *string    `json:"content,omitempty"`
	Tags          *[]string  `json:"tags,omitempty"`
	Folder        *string    `json:"folder,omitempty" validate:"omitnil,min=1"`
	IsPinned      *bool      `json:"is_pinned,omitempty"`
	IsArchived    *bool      `json:"is_archived,omitempty"`
	ReminderAt    *time.Time `json:"reminder_at,omitempty"`
	ClearReminder bool       `json:"clear_reminder,omitempty"`
}

// DecodeNotePatch decodes a JSON patch and rejects keys that do not name a
// patchable field.
func DecodeNotePatch(data []byte) (NotePatch, error) {
	var p NotePatch
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return NotePatch{}, fmt.Errorf("decode note patch: %w", err)
	}
	return p, nil
}

// IsEmpty reports whether the patch changes nothing.
func (p NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Tags == nil && p.Folder == nil &&
		p.IsPinned == nil && p.IsArchived == nil && p.ReminderAt == nil && !p.ClearReminder
}

// Apply merges the patch into n. UpdatedAt is left to the caller.
func (p NotePatch) Apply(n *Note) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Tags != nil {
		n.Tags = slices.Clone(*p.Tags)
	}
	if p.Folder != nil {
		n.Folder = *p.Folder
	}
	if p.IsPinned != nil {
		n.IsPinned = *p.IsPinned
	}
	if p.IsArchived != nil {
		n.IsArchived = *p.IsArchived
	}
	if p.ClearReminder {
		n.ReminderAt = nil
	}
	if p.ReminderAt != nil {
		r := *p.ReminderAt
		n.ReminderAt = &r
	}
}

// Clone returns a copy of p that shares no pointers with it.
func (p NotePatch) Clone() NotePatch {
	c := p
	if p.Title != nil {
		c.Title = Ptr(*p.Title)
	}
	if p.Content != nil {
		c.Content = Ptr(*p.Content)
	}
	if p.Tags != nil {
		c.Tags = Ptr(slices.Clone(*p.Tags))
	}
	if p.Folder != nil {
		c.Folder = Ptr(*p.Folder)
	}
	if p.IsPinned != nil {
		c.IsPinned = Ptr(*p.IsPinned)
	}
	if p.IsArchived != nil {
		c.IsArchived = Ptr(*p.IsArchived)
	}
	if p.ReminderAt != nil {
		c.ReminderAt = Ptr(*p.ReminderAt)
	}
	return c
}

// Fields returns the column/value map the patch writes remotely, including
// updated_at. Column names match the [Note] JSON tags.
func (p NotePatch) Fields(updatedAt time.Time) map[string]any {
	fields := make(map[string]any, 8)
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Content != nil {
		fields["content"] = *p.Content
	}
	if p.Tags != nil {
		fields["tags"] = *p.Tags
	}
	if p.Folder != nil {
		fields["folder"] = *p.Folder
	}
	if p.IsPinned != nil {
		fields["is_pinned"] = *p.IsPinned
	}
	if p.IsArchived != nil {
		fields["is_archived"] = *p.IsArchived
	}
	if p.ClearReminder {
		fields["reminder_at"] = nil
	}
	if p.ReminderAt != nil {
		fields["reminder_at"] = *p.ReminderAt
	}
	fields["updated_at"] = updatedAt
	return fields
}

// Ptr returns a pointer to v. It keeps patch literals short.
func Ptr[T any](v T) *T {
	return &v
}
