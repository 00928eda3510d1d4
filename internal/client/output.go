// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var ErrUnknownOutput = errors.New("unknown output format")

const timeLayout = "2006-01-02 15:04"

type printer struct {
	out    io.Writer
	format string
}

func newPrinter(out io.Writer, format string) (printer, error) {
	switch format {
	case outputText, outputJSON, outputYAML:
		return printer{out: out, format: format}, nil
	}
	return printer{}, fmt.Errorf("%w: %q (want text, json or yaml)", ErrUnknownOutput, format)
}

// print writes v in the structured formats and calls text otherwise.
func (p printer) print(v any, text func(w io.Writer) error) error {
	switch p.format {
	case outputJSON:
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(p.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return text(p.out)
}

func (p printer) notes(notes []models.Note) error {
	return p.print(notes, func(w io.Writer) error {
		return writeNoteTable(w, notes)
	})
}

func (p printer) note(note models.Note) error {
	return p.print(note, func(w io.Writer) error {
		return writeNote(w, note)
	})
}

func (p printer) views(views models.NoteViews) error {
	return p.print(views, func(w io.Writer) error {
		sections := []struct {
			name  string
			notes []models.Note
		}{
			{"Pinned", views.Pinned},
			{"Notes", views.Active},
			{"Archived", views.Archived},
		}
		for i, s := range sections {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s (%d)\n", s.name, len(s.notes))
			if err := writeNoteTable(w, s.notes); err != nil {
				return err
			}
		}
		return nil
	})
}

func (p printer) strings(values []string) error {
	return p.print(values, func(w io.Writer) error {
		for _, v := range values {
			fmt.Fprintln(w, v)
		}
		return nil
	})
}

func (p printer) message(v any, format string, args ...any) error {
	return p.print(v, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, format+"\n", args...)
		return err
	})
}

func writeNoteTable(w io.Writer, notes []models.Note) error {
	if len(notes) == 0 {
		_, err := fmt.Fprintln(w, "no notes")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tFOLDER\tTAGS\tUPDATED")
	for _, n := range notes {
		title := n.Title
		if n.IsPinned {
			title = "* " + title
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			n.ID, title, n.Folder, strings.Join(n.Tags, ","), n.UpdatedAt.Local().Format(timeLayout))
	}
	return tw.Flush()
}

func writeNote(w io.Writer, n models.Note) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "id:\t%s\n", n.ID)
	fmt.Fprintf(tw, "title:\t%s\n", n.Title)
	fmt.Fprintf(tw, "folder:\t%s\n", n.Folder)
	if len(n.Tags) > 0 {
		fmt.Fprintf(tw, "tags:\t%s\n", strings.Join(n.Tags, ", "))
	}
	var flags []string
	if n.IsPinned {
		flags = append(flags, "pinned")
	}
	if n.IsArchived {
		flags = append(flags, "archived")
	}
	if len(flags) > 0 {
		fmt.Fprintf(tw, "flags:\t%s\n", strings.Join(flags, ", "))
	}
	if n.ReminderAt != nil {
		fmt.Fprintf(tw, "reminder:\t%s\n", n.ReminderAt.Local().Format(timeLayout))
	}
	fmt.Fprintf(tw, "created:\t%s\n", n.CreatedAt.Local().Format(timeLayout))
	fmt.Fprintf(tw, "updated:\t%s\n", n.UpdatedAt.Local().Format(timeLayout))
	if err := tw.Flush(); err != nil {
		return err
	}
	if n.Content != "" {
		_, err := fmt.Fprintf(w, "\n%s\n", n.Content)
		return err
	}
	return nil
}

// parseTime accepts RFC 3339 or "2006-01-02 15:04" in local time.
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(timeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: use RFC 3339 or %q", s, timeLayout)
	}
	return t, nil
}
