// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/supabase-community/supabase-go"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// postgrest-go reports non-2xx responses as "(<code>) <message>".
var postgrestCode = regexp.MustCompile(`\(([0-9A-Z]{5}|PGRST[0-9]+)\)`)

type supabaseRemoteStore struct {
	client *supabase.Client
	table  string
	owner  OwnerFunc
	logger *logger.Logger
}

// NewSupabaseClient creates a Supabase client for cfg. No request is made.
func NewSupabaseClient(cfg config.ClientAdapter) (*supabase.Client, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating supabase client: %w", err)
	}
	return client, nil
}

// NewSupabaseRemoteStore constructs the PostgREST implementation of
// [RemoteStore] on top of client. SelectAll only returns the notes of the
// user owner yields and fails with [ErrOwnerUnknown] while it yields nothing;
// row level security on the table is expected to enforce the same.
func NewSupabaseRemoteStore(client *supabase.Client, table string, owner OwnerFunc, logger *logger.Logger) RemoteStore {
	return &supabaseRemoteStore{
		client: client,
		table:  table,
		owner:  owner,
		logger: logger,
	}
}

// postgrest-go does not take a context; the request timeout bounds the call.
func (s *supabaseRemoteStore) Upsert(ctx context.Context, note models.Note) error {
	if err := ctx.Err(); err != nil {
		return mapTransportError(err)
	}
	_, _, err := s.client.From(s.table).
		Upsert(note, "id", "minimal", "").
		Execute()
	return mapPostgrestError(err)
}

func (s *supabaseRemoteStore) UpdateFields(ctx context.Context, id string, patch models.NotePatch, updatedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return mapTransportError(err)
	}
	// PATCH matching no row still succeeds; the returned rows tell whether one existed
	body, _, err := s.client.From(s.table).
		Update(patch.Fields(updatedAt), "representation", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return mapPostgrestError(err)
	}

	var updated []struct {
		ID string `json:"id"`
	}
	if err = json.Unmarshal(body, &updated); err != nil {
		s.logger.Err(err).Str("func", "supabaseRemoteStore.UpdateFields").Str("id", id).Msg("failed to decode update response")
		return unavailable(err, "decode update response")
	}
	if len(updated) == 0 {
		return terminal(ErrNotFound, id)
	}
	return nil
}

func (s *supabaseRemoteStore) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return mapTransportError(err)
	}
	// PostgREST deletes by filter, a missing row is not an error
	_, _, err := s.client.From(s.table).
		Delete("minimal", "").
		Eq("id", id).
		Execute()
	return mapPostgrestError(err)
}

func (s *supabaseRemoteStore) SelectAll(ctx context.Context) ([]models.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, mapTransportError(err)
	}

	owner := s.owner.get()
	if owner == "" {
		s.logger.Warn().Str("func", "supabaseRemoteStore.SelectAll").Msg("owner is not resolved, refusing to read notes")
		return nil, unavailable(ErrOwnerUnknown, "select notes")
	}

	body, _, err := s.client.From(s.table).
		Select("*", "", false).
		Eq("user_id", owner).
		Execute()
	if err != nil {
		return nil, mapPostgrestError(err)
	}

	var notes []models.Note
	if err = json.Unmarshal(body, &notes); err != nil {
		s.logger.Err(err).Str("func", "supabaseRemoteStore.SelectAll").Msg("failed to decode notes response")
		return nil, unavailable(err, "decode notes response")
	}
	return notes, nil
}

// mapPostgrestError classifies errors produced by postgrest-go. Errors that
// carry a Postgres SQLSTATE are classified like the direct Postgres backend;
// PGRST0xx codes are connection problems between PostgREST and the
// database, other PGRST codes reject the request itself.
func mapPostgrestError(err error) error {
	if err == nil {
		return nil
	}

	m := postgrestCode.FindStringSubmatch(err.Error())
	if m == nil {
		return mapTransportError(err)
	}

	code := m[1]
	switch {
	case strings.HasPrefix(code, "PGRST0"):
		return fmt.Errorf("%w: %w: %w", ErrUnavailable, ErrUnreachable, err)
	case strings.HasPrefix(code, "PGRST"):
		return terminal(errors.New(code), err.Error())
	case len(code) == 5 && classifyPgCode(code) == NonRetryable:
		return terminal(errors.New(code), err.Error())
	default:
		return unavailable(errors.New(code), err.Error())
	}
}
