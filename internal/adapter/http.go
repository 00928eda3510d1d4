// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

const notesPath = "/api/notes"

type httpRemoteStore struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPRemoteStore constructs the REST implementation of [RemoteStore].
// It normalises and validates the base URL from cfg.HTTPAddress and sends
// token as a bearer token when it is not empty.
//
// Endpoints:
//
//	PUT    /api/notes/{id}   upsert
//	PATCH  /api/notes/{id}   update fields
//	DELETE /api/notes/{id}   delete
//	GET    /api/notes        select all
func NewHTTPRemoteStore(cfg config.ClientAdapter, token string, logger *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout).WithBearer(token)

	return &httpRemoteStore{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRemoteStore) Upsert(ctx context.Context, note models.Note) error {
	resp, err := h.request(ctx).
		SetPathParam("id", note.ID).
		SetBody(note).
		Put(notesPath + "/{id}")
	if err != nil {
		return fmt.Errorf("upsert request: %w", mapTransportError(err))
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) UpdateFields(ctx context.Context, id string, patch models.NotePatch, updatedAt time.Time) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetBody(patch.Fields(updatedAt)).
		Patch(notesPath + "/{id}")
	if err != nil {
		return fmt.Errorf("update request: %w", mapTransportError(err))
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) DeleteByID(ctx context.Context, id string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Delete(notesPath + "/{id}")
	if err != nil {
		return fmt.Errorf("delete request: %w", mapTransportError(err))
	}

	err = mapHTTPError(resp)
	if errors.Is(err, ErrNotFound) {
		// already gone
		return nil
	}
	return err
}

func (h *httpRemoteStore) SelectAll(ctx context.Context) ([]models.Note, error) {
	resp, err := h.request(ctx).Get(notesPath)
	if err != nil {
		return nil, fmt.Errorf("select request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var notes []models.Note
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		h.logger.Err(err).Str("func", "httpRemoteStore.SelectAll").Msg("failed to decode notes response")
		return nil, unavailable(err, "decode notes response")
	}

	return notes, nil
}

func (h *httpRemoteStore) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}
