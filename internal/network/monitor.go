// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package network tracks whether the remote store is reachable.
//
// [Monitor] holds a single boolean and notifies subscribers on transitions
// only. It never polls: platform sources such as [Prober] and the transport
// observer built by [NewTransportObserver] push what they see through
// [Monitor.Set].
package network

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Setter is the write side of the monitor used by signal sources.
type Setter interface {
	Set(online bool)
}

// Monitor is an edge-triggered reachability flag.
type Monitor struct {
	// notifyMu serialises Set so that subscribers see edges in the order
	// they happened
	notifyMu sync.Mutex

	mu     sync.RWMutex
	online bool
	subs   map[uint64]func(online bool)
	nextID uint64

	logger *logger.Logger
}

// NewMonitor returns a monitor with the given initial value.
func NewMonitor(initial bool, log *logger.Logger) *Monitor {
	return &Monitor{
		online: initial,
		subs:   make(map[uint64]func(bool)),
		logger: log,
	}
}

// Online reports the last known reachability.
func (m *Monitor) Online() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// Set records the current reachability. Subscribers are called
// synchronously, in registration order, only when the value changes. They
// must not call Set themselves.
func (m *Monitor) Set(online bool) {
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	subs := m.snapshot()
	m.mu.Unlock()

	m.logger.Info().Str("func", "Monitor.Set").Bool("online", online).Msg("reachability changed")

	for _, fn := range subs {
		fn(online)
	}
}

// Subscribe registers fn for transitions. The returned function removes the
// subscription; it is safe to call more than once.
func (m *Monitor) Subscribe(fn func(online bool)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
		})
	}
}

func (m *Monitor) snapshot() []func(bool) {
	ids := make([]uint64, 0, len(m.subs))
	for id := range m.subs {
		ids = append(ids, id)
	}
	// ids are issued in increasing order
	slices.Sort(ids)

	out := make([]func(bool), 0, len(ids))
	for _, id := range ids {
		out = append(out, m.subs[id])
	}
	return out
}
