// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-keeper/models"
)

func (c *cli) addCommand() *cobra.Command {
	var (
		draft  models.NoteDraft
		remind string
	)

	cmd := &cobra.Command{
		Use:   "add [content...]",
		Short: "Create a note",
		Long: `Create a note. The content is taken from the arguments, or from stdin
when the only argument is "-". Without --title the first markdown heading of
the content becomes the title.`,
		RunE: c.run(func(cmd *cobra.Command, args []string, client Client, p printer) error {
			content, err := readContent(cmd, args)
			if err != nil {
				return err
			}
			draft.Content = content

			if remind != "" {
				at, err := parseTime(remind)
				if err != nil {
					return err
				}
				draft.ReminderAt = &at
			}

			note := client.Notes().Create(cmd.Context(), draft)
			return p.message(note, "created %s %q", note.ID, note.Title)
		}),
	}

	cmd.Flags().StringVarP(&draft.Title, "title", "t", "", "Note title")
	cmd.Flags().StringSliceVar(&draft.Tags, "tag", nil, "Tag, repeatable or comma separated")
	cmd.Flags().StringVarP(&draft.Folder, "folder", "f", "", "Folder (default Main)")
	cmd.Flags().BoolVar(&draft.IsPinned, "pin", false, "Pin the note")
	cmd.Flags().BoolVar(&draft.IsArchived, "archive", false, "Archive the note")
	cmd.Flags().StringVar(&remind, "remind", "", "Reminder time (RFC 3339 or \"2006-01-02 15:04\")")
	return cmd
}

func readContent(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimRight(string(b), "\n"), nil
	}
	return strings.Join(args, " "), nil
}

func (c *cli) listCommand() *cobra.Command {
	var (
		query   models.NoteQuery
		sort    string
		grouped bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		Long: `List notes, newest update first. Notes in Trash are only shown with
--folder Trash. --group splits the result into pinned, regular and archived
notes.`,
		Args: cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, args []string, client Client, p printer) error {
			switch models.SortOrder(sort) {
			case models.SortUpdatedDesc, models.SortCreatedDesc, models.SortTitleAsc:
				query.Sort = models.SortOrder(sort)
			default:
				return fmt.Errorf("unknown sort %q (want updated, created or title)", sort)
			}

			if grouped {
				return p.views(client.Notes().Views(query))
			}
			return p.notes(client.Notes().List(query))
		}),
	}

	cmd.Flags().StringVarP(&query.Folder, "folder", "f", "", "Only notes in this folder")
	cmd.Flags().StringSliceVar(&query.Tags, "tag", nil, "Only notes with any of these tags")
	cmd.Flags().StringVarP(&query.Search, "search", "s", "", "Case-insensitive text filter")
	cmd.Flags().StringVar(&sort, "sort", string(models.SortUpdatedDesc), "Sort order: updated, created or title")
	cmd.Flags().BoolVarP(&grouped, "group", "g", false, "Group into pinned, notes and archived")
	return cmd
}

func (c *cli) showCommand() *cobra.Command {
	var preview int

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a note",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string, client Client, p printer) error {
			if preview > 0 {
				text, err := client.Notes().Preview(args[0], preview)
				if err != nil {
					return err
				}
				return p.message(map[string]string{"id": args[0], "preview": text}, "%s", text)
			}

			note, err := client.Notes().Get(args[0])
			if err != nil {
				return err
			}
			return p.note(note)
		}),
	}

	cmd.Flags().IntVar(&preview, "preview", 0, "Print a plain-text preview of at most N characters")
	return cmd
}

func (c *cli) editCommand() *cobra.Command {
	var (
		title, content, folder, remind, rawPatch string
		tags                                     []string
		clearReminder                            bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a note",
		Long: `Change fields of a note. Only the flags that are given are changed.
--patch takes a JSON object with note fields, for example
'{"title":"New","is_pinned":true}'; flags override its values.`,
		Args: cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string, client Client, p printer) error {
			var patch models.NotePatch
			if rawPatch != "" {
				var err error
				if patch, err = models.DecodeNotePatch([]byte(rawPatch)); err != nil {
					return err
				}
			}

			flags := cmd.Flags()
			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("content") {
				patch.Content = &content
			}
			if flags.Changed("tag") {
				patch.Tags = &tags
			}
			if flags.Changed("folder") {
				patch.Folder = &folder
			}
			if flags.Changed("remind") {
				at, err := parseTime(remind)
				if err != nil {
					return err
				}
				patch.ReminderAt = &at
			}
			if clearReminder {
				patch.ClearReminder = true
			}

			if err := resultErr(client.Notes().Update(cmd.Context(), args[0], patch)); err != nil {
				return err
			}
			note, err := client.Notes().Get(args[0])
			if err != nil {
				return err
			}
			return p.note(note)
		}),
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&content, "content", "m", "", "New content")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Replace the tag set")
	cmd.Flags().StringVarP(&folder, "folder", "f", "", "Move to folder")
	cmd.Flags().StringVar(&remind, "remind", "", "Set the reminder")
	cmd.Flags().BoolVar(&clearReminder, "clear-reminder", false, "Remove the reminder")
	cmd.Flags().StringVar(&rawPatch, "patch", "", "JSON patch object")
	return cmd
}

func (c *cli) toggleCommand(use, short, flag string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string, client Client, p printer) error {
			notes := client.Notes()
			toggle := notes.TogglePin
			if use == "archive" {
				toggle = notes.ToggleArchive
			}
			if err := resultErr(toggle(cmd.Context(), args[0])); err != nil {
				return err
			}

			note, err := notes.Get(args[0])
			if err != nil {
				return err
			}
			state := note.IsPinned
			if use == "archive" {
				state = note.IsArchived
			}
			word := flag
			if !state {
				word = "un" + flag
			}
			return p.message(note, "%s %s", word, note.ID)
		}),
	}
}

func (c *cli) rmCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Move a note to Trash, or delete it for good when it is in Trash",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string, client Client, p printer) error {
			notes := client.Notes()
			before, err := notes.Get(args[0])
			if err != nil {
				return err
			}
			if err = resultErr(notes.Delete(cmd.Context(), args[0])); err != nil {
				return err
			}

			verb := "trashed"
			if before.InTrash() {
				verb = "deleted"
			}
			return p.message(map[string]string{"id": args[0], "result": verb}, "%s %s", verb, args[0])
		}),
	}
}

func (c *cli) dupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dup <id>",
		Short: "Duplicate a note",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string, client Client, p printer) error {
			note, res := client.Notes().Duplicate(cmd.Context(), args[0])
			if err := resultErr(res); err != nil {
				return err
			}
			return p.message(note, "created %s %q", note.ID, note.Title)
		}),
	}
}

func (c *cli) searchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <pattern>",
		Short: "Fuzzy search titles and tags, best match first",
		Args:  cobra.MinimumNArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string, client Client, p printer) error {
			return p.notes(client.Notes().SearchFuzzy(strings.Join(args, " ")))
		}),
	}
}

func (c *cli) tagsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List tags in use",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, args []string, client Client, p printer) error {
			return p.strings(client.Notes().Tags())
		}),
	}
}

func (c *cli) remindersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reminders",
		Short: "List upcoming reminders",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, args []string, client Client, p printer) error {
			return p.notes(client.Notes().Reminders(nowFunc()))
		}),
	}
}
