// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/models"
)

type seeded struct {
	h                                *harness
	groceries, plan, ideas, old, vet models.Note
}

var reminderAt = time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)

func seed(t *testing.T) seeded {
	t.Helper()
	h := newHarness(t, false)
	ctx := context.Background()

	s := seeded{h: h}
	s.groceries = h.svc.Create(ctx, models.NoteDraft{Title: "Groceries", Content: "milk and eggs", Tags: []string{"home"}})
	s.plan = h.svc.Create(ctx, models.NoteDraft{Title: "work plan", Content: "Quarterly goals", Tags: []string{"work", "q3"}, Folder: "Work", IsPinned: true})
	s.ideas = h.svc.Create(ctx, models.NoteDraft{Title: "Ideas", Content: "write about GROCERIES", IsArchived: true})
	s.old = h.svc.Create(ctx, models.NoteDraft{Title: "Old", Tags: []string{"home"}, ReminderAt: &reminderAt})
	s.vet = h.svc.Create(ctx, models.NoteDraft{Title: "Vet", Tags: []string{"pets"}, ReminderAt: &reminderAt})
	require.True(t, h.svc.Delete(ctx, s.old.ID).OK)
	return s
}

func ids(notes []models.Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.ID)
	}
	return out
}

func TestNotesService_Get(t *testing.T) {
	s := seed(t)

	got, err := s.h.svc.Get(s.groceries.ID)
	require.NoError(t, err)
	assert.Equal(t, s.groceries, got)

	// callers get a copy
	got.Tags[0] = "changed"
	again, _ := s.h.svc.Get(s.groceries.ID)
	assert.Equal(t, []string{"home"}, again.Tags)

	_, err = s.h.svc.Get("missing")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNotesService_List(t *testing.T) {
	s := seed(t)

	tests := []struct {
		name  string
		query models.NoteQuery
		want  []string
	}{
		{
			name:  "default excludes trash, newest update first",
			query: models.NoteQuery{},
			want:  []string{s.vet.ID, s.ideas.ID, s.plan.ID, s.groceries.ID},
		},
		{
			name:  "trash folder",
			query: models.NoteQuery{Folder: models.FolderTrash},
			want:  []string{s.old.ID},
		},
		{
			name:  "folder",
			query: models.NoteQuery{Folder: "Work"},
			want:  []string{s.plan.ID},
		},
		{
			name:  "any of tags",
			query: models.NoteQuery{Tags: []string{"home", "pets"}, Sort: models.SortCreatedDesc},
			want:  []string{s.vet.ID, s.groceries.ID},
		},
		{
			name:  "search is case insensitive over title and content",
			query: models.NoteQuery{Search: " groceries ", Sort: models.SortCreatedDesc},
			want:  []string{s.ideas.ID, s.groceries.ID},
		},
		{
			name:  "search matches tags",
			query: models.NoteQuery{Search: "Q3"},
			want:  []string{s.plan.ID},
		},
		{
			name:  "title order",
			query: models.NoteQuery{Sort: models.SortTitleAsc},
			want:  []string{s.groceries.ID, s.ideas.ID, s.vet.ID, s.plan.ID},
		},
		{
			name:  "no match",
			query: models.NoteQuery{Search: "nothing"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(s.h.svc.List(tt.query)))
		})
	}
}

func TestNotesService_Views(t *testing.T) {
	s := seed(t)

	views := s.h.svc.Views(models.NoteQuery{})
	assert.Equal(t, []string{s.plan.ID}, ids(views.Pinned))
	assert.Equal(t, []string{s.vet.ID, s.groceries.ID}, ids(views.Active))
	assert.Equal(t, []string{s.ideas.ID}, ids(views.Archived))

	empty := s.h.svc.Views(models.NoteQuery{Folder: "Nope"})
	assert.NotNil(t, empty.Pinned)
	assert.NotNil(t, empty.Active)
	assert.NotNil(t, empty.Archived)
}

func TestNotesService_SearchFuzzy(t *testing.T) {
	s := seed(t)

	got := s.h.svc.SearchFuzzy("grcr")
	require.NotEmpty(t, got)
	assert.Equal(t, s.groceries.ID, got[0].ID)

	got = s.h.svc.SearchFuzzy("pets")
	require.Len(t, got, 1)
	assert.Equal(t, s.vet.ID, got[0].ID)

	assert.Empty(t, s.h.svc.SearchFuzzy("zzzz"))
	assert.Len(t, s.h.svc.SearchFuzzy("  "), 4)

	// trashed notes are not searched
	assert.Empty(t, s.h.svc.SearchFuzzy("Old"))
}

func TestNotesService_FoldersAndTags(t *testing.T) {
	s := seed(t)

	assert.Equal(t, []string{models.FolderMain, models.FolderTrash, "Work"}, s.h.svc.Folders())
	assert.Equal(t, []string{"home", "pets", "q3", "work"}, s.h.svc.Tags())
}

func TestNotesService_Reminders(t *testing.T) {
	s := seed(t)

	got := s.h.svc.Reminders(reminderAt.Add(-time.Hour))
	assert.Equal(t, []string{s.vet.ID}, ids(got), "trashed reminders are hidden")

	assert.Len(t, s.h.svc.Reminders(reminderAt), 1)
	assert.Empty(t, s.h.svc.Reminders(reminderAt.Add(time.Minute)))
}

func TestNotesService_Preview(t *testing.T) {
	s := seed(t)

	got, err := s.h.svc.Preview(s.groceries.ID, 8)
	require.NoError(t, err)
	assert.Equal(t, "milk...", got)

	_, err = s.h.svc.Preview("missing", 8)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}
