// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

const logRole = "notes-client"

// Factory opens a Client for cfg. Tests swap it to control the backend.
type Factory func(ctx context.Context, cfg *config.ClientConfig, build models.AppBuildInfo, log *logger.Logger) (Client, error)

func defaultFactory(ctx context.Context, cfg *config.ClientConfig, build models.AppBuildInfo, log *logger.Logger) (Client, error) {
	return NewApp(ctx, cfg, build, log)
}

type cli struct {
	flags   *config.FlagValues
	output  string
	build   models.AppBuildInfo
	factory Factory
}

// NewRootCommand builds the notes command tree.
func NewRootCommand(build models.AppBuildInfo) *cobra.Command {
	return newRootCommand(build, defaultFactory)
}

func newRootCommand(build models.AppBuildInfo, factory Factory) *cobra.Command {
	c := &cli{build: build, factory: factory}

	root := &cobra.Command{
		Use:   "notes",
		Short: "Offline-first notes that sync when the remote is reachable",
		Long: `notes keeps every note in a local database and replays changes to the
configured remote store (REST API, Supabase or Postgres). Changes made
offline are queued and sent in order once the remote is reachable again.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c.flags = config.BindFlags(root.PersistentFlags())
	root.PersistentFlags().StringVarP(&c.output, "output", "o", outputText, "Output format: text, json or yaml")

	root.AddCommand(
		c.addCommand(),
		c.listCommand(),
		c.showCommand(),
		c.editCommand(),
		c.toggleCommand("pin", "Pin or unpin a note", "pinned"),
		c.toggleCommand("archive", "Archive or unarchive a note", "archived"),
		c.rmCommand(),
		c.dupCommand(),
		c.folderCommand(),
		c.tagsCommand(),
		c.remindersCommand(),
		c.searchCommand(),
		c.syncCommand(),
		c.statusCommand(),
		c.watchCommand(),
		c.migrateCommand(),
		c.versionCommand(),
	)

	return root
}

// run opens the client around fn and closes it afterwards.
func (c *cli) run(fn func(cmd *cobra.Command, args []string, client Client, p printer) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		p, err := newPrinter(cmd.OutOrStdout(), c.output)
		if err != nil {
			return err
		}

		cfg, err := config.GetClientConfig(c.flags)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log := logger.NewClientLogger(logRole, logger.FileOptions{Path: cfg.LogFile})

		client, err := c.factory(cmd.Context(), cfg, c.build, log)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := client.Close(); cerr != nil {
				log.Err(cerr).Str("func", "cli.run").Msg("failed to close client")
			}
		}()

		return fn(cmd, args, client, p)
	}
}

func (c *cli) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd.OutOrStdout(), c.output)
			if err != nil {
				return err
			}
			info := map[string]string{
				"version": orNA(c.build.BuildVersion()),
				"date":    orNA(c.build.BuildDate()),
				"commit":  orNA(c.build.BuildCommit()),
			}
			return p.print(info, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
					info["version"], info["date"], info["commit"])
				return err
			})
		},
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func resultErr(res models.Result) error {
	if res.OK {
		return nil
	}
	if res.Err != nil {
		return res.Err
	}
	return fmt.Errorf("%s", res.Error)
}
