// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

var errNoRoute = errors.New("no route")

func TestTransportObserver(t *testing.T) {
	isUnreachable := func(err error) bool { return errors.Is(err, errNoRoute) }

	tests := []struct {
		name     string
		initial  bool
		err      error
		expected bool
	}{
		{name: "success marks online", initial: false, err: nil, expected: true},
		{name: "unreachable marks offline", initial: true, err: errNoRoute, expected: false},
		{name: "other failure keeps online", initial: true, err: errors.New("bad request"), expected: true},
		{name: "other failure keeps offline", initial: false, err: errors.New("server error"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMonitor(tt.initial, logger.Nop())
			observe := NewTransportObserver(m, isUnreachable)

			observe(tt.err)

			assert.Equal(t, tt.expected, m.Online())
		})
	}
}
