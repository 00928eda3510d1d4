// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-keeper/models"
)

var nowFunc = time.Now

func (c *cli) folderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder",
		Short: "List, rename or delete folders",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, args []string, client Client, p printer) error {
			return p.strings(client.Notes().Folders())
		}),
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "rename <from> <to>",
			Short: "Move every note of a folder to another folder",
			Args:  cobra.ExactArgs(2),
			RunE: c.run(func(cmd *cobra.Command, args []string, client Client, p printer) error {
				if err := resultErr(client.Notes().RenameFolder(cmd.Context(), args[0], args[1])); err != nil {
					return err
				}
				return p.message(map[string]string{"from": args[0], "to": args[1]}, "renamed %s to %s", args[0], args[1])
			}),
		},
		&cobra.Command{
			Use:   "rm <name>",
			Short: "Move every note of a folder to Trash",
			Args:  cobra.ExactArgs(1),
			RunE: c.run(func(cmd *cobra.Command, args []string, client Client, p printer) error {
				if err := resultErr(client.Notes().DeleteFolder(cmd.Context(), args[0])); err != nil {
					return err
				}
				return p.message(map[string]string{"folder": args[0], "result": "trashed"}, "moved %s to %s", args[0], models.FolderTrash)
			}),
		},
	)
	return cmd
}

func (c *cli) syncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Send queued changes and refresh from the remote",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, args []string, client Client, p printer) error {
			report, err := client.Notes().Sync(cmd.Context())
			if perr := p.print(report, func(w io.Writer) error {
				_, werr := fmt.Fprintf(w, "sent %d, dropped %d, remaining %d, reconciled %t\n",
					report.Sent, report.Dropped, report.Remaining, report.Reconciled)
				return werr
			}); perr != nil {
				return perr
			}
			return err
		}),
	}
}

func (c *cli) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show reachability and the pending queue",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, args []string, client Client, p printer) error {
			st := client.Notes().Status()
			return p.print(st, func(w io.Writer) error {
				fmt.Fprintf(w, "state:   %s\n", st.State)
				fmt.Fprintf(w, "online:  %t\n", st.Online)
				fmt.Fprintf(w, "pending: %d\n", st.QueueLength)
				if st.LastSyncAt != nil {
					fmt.Fprintf(w, "synced:  %s\n", st.LastSyncAt.Local().Format(timeLayout))
				}
				if st.LastError != "" {
					fmt.Fprintf(w, "error:   %s\n", st.LastError)
				}
				return nil
			})
		}),
	}
}

func (c *cli) watchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Stay running, sync on reconnect and serve metrics",
		Long: `Stay running until interrupted. Reachability is probed periodically,
queued changes are sent as soon as the remote comes back and retried on the
sync interval. With --metrics-address the Prometheus metrics, /healthz and
/api/status are served on that address.`,
		Args: cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, args []string, client Client, p printer) error {
			return client.Watch(cmd.Context(), cmd.OutOrStdout())
		}),
	}
}

func (c *cli) migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the remote notes table (postgres backend)",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, args []string, client Client, p printer) error {
			if err := client.Migrate(cmd.Context()); err != nil {
				return err
			}
			return p.message(map[string]string{"result": "migrated"}, "remote schema is up to date")
		}),
	}
}
