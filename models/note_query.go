// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SortOrder selects how derived note views are ordered.
type SortOrder string

const (
	// SortUpdatedDesc orders by last update, newest first. It is the default.
	SortUpdatedDesc SortOrder = "updated"
	// SortCreatedDesc orders by creation time, newest first.
	SortCreatedDesc SortOrder = "created"
	// SortTitleAsc orders lexicographically by title.
	SortTitleAsc SortOrder = "title"
)

// NoteQuery describes a filtered, sorted view over the local cache.
// Zero values disable the corresponding filter.
type NoteQuery struct {
	// Folder restricts the view to one folder.
	Folder string
	// Search is a case-insensitive substring matched against title, content
	// and tags.
	Search string
	// Tags keeps notes carrying at least one of the tags.
	Tags []string
	// Sort defaults to SortUpdatedDesc.
	Sort SortOrder
}

// NoteViews groups the three derived views shown to the user.
type NoteViews struct {
	Pinned   []Note `json:"pinned" yaml:"pinned"`
	Active   []Note `json:"active" yaml:"active"`
	Archived []Note `json:"archived" yaml:"archived"`
}
