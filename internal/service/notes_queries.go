// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/MKhiriev/go-note-keeper/models"
)

func (s *notesService) Get(id string) (models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	note, ok := s.notes[id]
	if !ok {
		return models.Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	return note.Clone(), nil
}

// List filters the cache by query. Without a folder filter notes in Trash
// are left out.
func (s *notesService) List(query models.NoteQuery) []models.Note {
	needle := strings.ToLower(strings.TrimSpace(query.Search))

	s.mu.RLock()
	out := make([]models.Note, 0, len(s.notes))
	for _, n := range s.notes {
		if matches(n, query, needle) {
			out = append(out, n.Clone())
		}
	}
	s.mu.RUnlock()

	sortNotes(out, query.Sort)
	return out
}

func (s *notesService) Views(query models.NoteQuery) models.NoteViews {
	views := models.NoteViews{
		Pinned:   []models.Note{},
		Active:   []models.Note{},
		Archived: []models.Note{},
	}
	for _, n := range s.List(query) {
		switch {
		case n.IsArchived:
			views.Archived = append(views.Archived, n)
		case n.IsPinned:
			views.Pinned = append(views.Pinned, n)
		default:
			views.Active = append(views.Active, n)
		}
	}
	return views
}

// noteSource adapts notes to fuzzy.Source.
type noteSource []models.Note

func (ns noteSource) String(i int) string {
	n := ns[i]
	if len(n.Tags) == 0 {
		return n.Title
	}
	return n.Title + " " + strings.Join(n.Tags, " ")
}

func (ns noteSource) Len() int {
	return len(ns)
}

func (s *notesService) SearchFuzzy(pattern string) []models.Note {
	candidates := s.List(models.NoteQuery{})
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return candidates
	}

	matches := fuzzy.FindFrom(pattern, noteSource(candidates))
	out := make([]models.Note, 0, len(matches))
	for _, m := range matches {
		out = append(out, candidates[m.Index])
	}
	return out
}

func (s *notesService) Folders() []string {
	s.mu.RLock()
	seen := make(map[string]struct{})
	for _, n := range s.notes {
		seen[n.Folder] = struct{}{}
	}
	s.mu.RUnlock()

	others := make([]string, 0, len(seen))
	for f := range seen {
		if !models.IsProtectedFolder(f) {
			others = append(others, f)
		}
	}
	slices.Sort(others)

	return append([]string{models.FolderMain, models.FolderTrash}, others...)
}

func (s *notesService) Tags() []string {
	s.mu.RLock()
	seen := make(map[string]struct{})
	for _, n := range s.notes {
		for _, t := range n.Tags {
			seen[t] = struct{}{}
		}
	}
	s.mu.RUnlock()

	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	slices.Sort(tags)
	return tags
}

func (s *notesService) Reminders(now time.Time) []models.Note {
	s.mu.RLock()
	var out []models.Note
	for _, n := range s.notes {
		if n.ReminderAt == nil || n.InTrash() || n.ReminderAt.Before(now) {
			continue
		}
		out = append(out, n.Clone())
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b models.Note) int {
		return cmp.Or(a.ReminderAt.Compare(*b.ReminderAt), cmp.Compare(a.ID, b.ID))
	})
	return out
}

func (s *notesService) Preview(id string, limit int) (string, error) {
	note, err := s.Get(id)
	if err != nil {
		return "", err
	}
	return extractPreview(note.Content, limit), nil
}

func matches(n models.Note, query models.NoteQuery, needle string) bool {
	if query.Folder != "" {
		if n.Folder != query.Folder {
			return false
		}
	} else if n.InTrash() {
		return false
	}

	if len(query.Tags) > 0 && !slices.ContainsFunc(query.Tags, n.HasTag) {
		return false
	}

	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(n.Title), needle) || strings.Contains(strings.ToLower(n.Content), needle) {
		return true
	}
	return slices.ContainsFunc(n.Tags, func(t string) bool {
		return strings.Contains(strings.ToLower(t), needle)
	})
}

func sortNotes(notes []models.Note, order models.SortOrder) {
	slices.SortFunc(notes, func(a, b models.Note) int {
		var c int
		switch order {
		case models.SortCreatedDesc:
			c = b.CreatedAt.Compare(a.CreatedAt)
		case models.SortTitleAsc:
			c = strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		default:
			c = b.UpdatedAt.Compare(a.UpdatedAt)
		}
		return cmp.Or(c, cmp.Compare(a.ID, b.ID))
	})
}

func sortByCreation(notes []models.Note) {
	slices.SortFunc(notes, func(a, b models.Note) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
}
