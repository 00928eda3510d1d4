// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// DialFunc opens a connection. It matches net.Dialer.DialContext.
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// Prober samples reachability by opening a TCP connection to the remote
// endpoint. It is the desktop stand-in for a platform connectivity signal.
type Prober struct {
	address string
	timeout time.Duration
	dial    DialFunc
	target  Setter
	logger  *logger.Logger
}

// NewTCPProber returns a prober for address ("host:port") that reports into
// target. A zero timeout defaults to three seconds.
func NewTCPProber(address string, timeout time.Duration, target Setter, log *logger.Logger) *Prober {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	d := &net.Dialer{}
	return &Prober{
		address: address,
		timeout: timeout,
		dial:    d.DialContext,
		target:  target,
		logger:  log,
	}
}

// WithDialer replaces the dial function. Used by tests.
func (p *Prober) WithDialer(dial DialFunc) *Prober {
	p.dial = dial
	return p
}

// Probe dials the endpoint once, reports the outcome to the target and
// returns it. Without an address there is nothing to dial and the remote is
// assumed reachable.
func (p *Prober) Probe(ctx context.Context) bool {
	if p.address == "" {
		p.target.Set(true)
		return true
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	conn, err := p.dial(ctx, "tcp", p.address)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			// caller is shutting down, that says nothing about the network
			return false
		}
		p.logger.Debug().Err(err).Str("func", "Prober.Probe").Str("address", p.address).Msg("probe failed")
		p.target.Set(false)
		return false
	}
	_ = conn.Close()

	p.target.Set(true)
	return true
}
