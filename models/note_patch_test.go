// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNotePatch(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NotePatch
		wantErr bool
	}{
		{
			name:  "known fields",
			input: `{"title":"T","tags":["a"],"is_pinned":true}`,
			want:  NotePatch{Title: Ptr("T"), Tags: &[]string{"a"}, IsPinned: Ptr(true)},
		},
		{
			name:  "clear reminder",
			input: `{"clear_reminder":true}`,
			want:  NotePatch{ClearReminder: true},
		},
		{name: "unknown field", input: `{"owner":"x"}`, wantErr: true},
		{name: "not json", input: `title=T`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeNotePatch([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNotePatch_Apply(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	later := at.Add(24 * time.Hour)

	n := Note{Title: "old", Content: "keep", Folder: FolderMain, ReminderAt: &at}
	NotePatch{Title: Ptr("new"), Folder: Ptr("Work"), IsArchived: Ptr(true)}.Apply(&n)

	assert.Equal(t, "new", n.Title)
	assert.Equal(t, "keep", n.Content)
	assert.Equal(t, "Work", n.Folder)
	assert.True(t, n.IsArchived)
	assert.Equal(t, &at, n.ReminderAt)

	NotePatch{ClearReminder: true}.Apply(&n)
	assert.Nil(t, n.ReminderAt)

	NotePatch{ReminderAt: &later}.Apply(&n)
	require.NotNil(t, n.ReminderAt)
	assert.Equal(t, later, *n.ReminderAt)
}

func TestNotePatch_IsEmpty(t *testing.T) {
	assert.True(t, NotePatch{}.IsEmpty())
	assert.False(t, NotePatch{ClearReminder: true}.IsEmpty())
	assert.False(t, NotePatch{Tags: &[]string{}}.IsEmpty())
}

func TestNotePatch_Clone(t *testing.T) {
	p := NotePatch{Title: Ptr("a"), Tags: &[]string{"x"}}
	c := p.Clone()

	*c.Title = "b"
	(*c.Tags)[0] = "y"

	assert.Equal(t, "a", *p.Title)
	assert.Equal(t, []string{"x"}, *p.Tags)
}

func TestNotePatch_Fields(t *testing.T) {
	updated := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	got := NotePatch{Title: Ptr("T"), IsPinned: Ptr(false), ClearReminder: true}.Fields(updated)
	assert.Equal(t, map[string]any{
		"title":       "T",
		"is_pinned":   false,
		"reminder_at": nil,
		"updated_at":  updated,
	}, got)
}
