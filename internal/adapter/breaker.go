// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// BreakerConfig holds the circuit breaker settings.
type BreakerConfig struct {
	Name string
	// Failures is the number of consecutive transient failures that opens
	// the circuit.
	Failures uint32
	// Timeout is how long the circuit stays open before a probe request is
	// let through.
	Timeout time.Duration
}

// TransportObserver receives the outcome of every call that actually reached
// for the network.
type TransportObserver func(err error)

type breakerRemoteStore struct {
	next    RemoteStore
	cb      *gobreaker.CircuitBreaker
	observe TransportObserver
	logger  *logger.Logger
}

// NewBreakerRemoteStore wraps next in a circuit breaker. Terminal errors do
// not count as failures: the remote answered, it just refused. observe may be
// nil.
func NewBreakerRemoteStore(next RemoteStore, cfg BreakerConfig, observe TransportObserver, log *logger.Logger) RemoteStore {
	if cfg.Failures == 0 {
		cfg.Failures = 5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	b := &breakerRemoteStore{next: next, observe: observe, logger: log}
	b.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.Failures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn().
				Str("func", "breakerRemoteStore").
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
		IsSuccessful: func(err error) bool {
			return err == nil || IsTerminal(err) || errors.Is(err, context.Canceled)
		},
	})
	return b
}

func (b *breakerRemoteStore) do(fn func() error) error {
	_, err := b.cb.Execute(func() (any, error) {
		return nil, fn()
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w: %w", ErrUnavailable, ErrCircuitOpen, err)
	}

	if b.observe != nil {
		b.observe(err)
	}
	return err
}

func (b *breakerRemoteStore) Upsert(ctx context.Context, note models.Note) error {
	return b.do(func() error { return b.next.Upsert(ctx, note) })
}

func (b *breakerRemoteStore) UpdateFields(ctx context.Context, id string, patch models.NotePatch, updatedAt time.Time) error {
	return b.do(func() error { return b.next.UpdateFields(ctx, id, patch, updatedAt) })
}

func (b *breakerRemoteStore) DeleteByID(ctx context.Context, id string) error {
	return b.do(func() error { return b.next.DeleteByID(ctx, id) })
}

func (b *breakerRemoteStore) SelectAll(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	err := b.do(func() error {
		var err error
		notes, err = b.next.SelectAll(ctx)
		return err
	})
	return notes, err
}
