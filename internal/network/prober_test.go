// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

type recordingSetter struct {
	values []bool
}

func (r *recordingSetter) Set(online bool) {
	r.values = append(r.values, online)
}

func TestProber_RealListener(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			_ = conn.Close()
		}
	}()

	target := &recordingSetter{}
	p := NewTCPProber(ln.Addr().String(), time.Second, target, logger.Nop())

	assert.True(t, p.Probe(context.Background()))
	assert.Equal(t, []bool{true}, target.values)
}

func TestProber_ClosedPort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	target := &recordingSetter{}
	p := NewTCPProber(addr, time.Second, target, logger.Nop())

	assert.False(t, p.Probe(context.Background()))
	assert.Equal(t, []bool{false}, target.values)
}

func TestProber_FakeDialer(t *testing.T) {
	tests := []struct {
		name     string
		dial     DialFunc
		expected bool
	}{
		{
			name: "dial ok",
			dial: func(ctx context.Context, network, address string) (net.Conn, error) {
				client, server := net.Pipe()
				_ = server.Close()
				return client, nil
			},
			expected: true,
		},
		{
			name: "dial refused",
			dial: func(ctx context.Context, network, address string) (net.Conn, error) {
				return nil, &net.OpError{Op: "dial", Net: network, Err: errors.New("connection refused")}
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := &recordingSetter{}
			p := NewTCPProber("notes.example.com:443", time.Second, target, logger.Nop()).WithDialer(tt.dial)

			assert.Equal(t, tt.expected, p.Probe(context.Background()))
			assert.Equal(t, []bool{tt.expected}, target.values)
		})
	}
}

func TestProber_DialTimeoutReportsOffline(t *testing.T) {
	target := &recordingSetter{}
	p := NewTCPProber("notes.example.com:443", 10*time.Millisecond, target, logger.Nop()).
		WithDialer(func(ctx context.Context, network, address string) (net.Conn, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	assert.False(t, p.Probe(context.Background()))
	assert.Equal(t, []bool{false}, target.values)
}

func TestProber_CanceledContextIsNotReported(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	target := &recordingSetter{}
	p := NewTCPProber("notes.example.com:443", time.Second, target, logger.Nop()).
		WithDialer(func(ctx context.Context, network, address string) (net.Conn, error) {
			return nil, ctx.Err()
		})

	assert.False(t, p.Probe(ctx))
	assert.Empty(t, target.values)
}

func TestProber_EmptyAddressIsOnline(t *testing.T) {
	target := &recordingSetter{}
	p := NewTCPProber("", 0, target, logger.Nop())

	assert.True(t, p.Probe(context.Background()))
	assert.Equal(t, []bool{true}, target.values)
}
