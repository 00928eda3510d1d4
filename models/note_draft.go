// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NoteDraft is the caller-supplied part of a new note. Identity, ownership
// and timestamps are filled in by the notes service.
type NoteDraft struct {
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Tags       []string   `json:"tags"`
	Folder     string     `json:"folder"`
	IsPinned   bool       `json:"is_pinned"`
	IsArchived bool       `json:"is_archived"`
	ReminderAt *time.Time `json:"reminder_at"`
}
