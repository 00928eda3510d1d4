// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Classification sentinels. Every error returned by a [RemoteStore] wraps
// either ErrTerminal or ErrUnavailable.
var (
	// ErrTerminal marks a permanent rejection. The operation will never
	// succeed as sent.
	ErrTerminal = errors.New("remote store rejected request")

	// ErrUnavailable marks a transient failure. The operation may succeed
	// later.
	ErrUnavailable = errors.New("remote store unavailable")

	// ErrUnreachable marks a transport failure: the remote could not be
	// contacted at all. It always comes together with ErrUnavailable.
	ErrUnreachable = errors.New("remote store unreachable")

	// ErrCircuitOpen is returned while the circuit breaker rejects calls.
	ErrCircuitOpen = errors.New("circuit breaker is open")
)

// Status specific errors, wrapped together with a classification sentinel.
var (
	ErrBadRequest      = errors.New("bad request")
	ErrUnauthorized    = errors.New("client unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("note not found")
	ErrConflict        = errors.New("conflict")
	ErrTooManyRequests = errors.New("too many requests")
	ErrServerError     = errors.New("remote server error")

	ErrUnknownAdapter = errors.New("unknown adapter kind")

	// ErrOwnerUnknown is returned by SelectAll of the table backends while no
	// owner is known. They never read the table unscoped.
	ErrOwnerUnknown = errors.New("note owner is not resolved")
)

// IsTerminal reports whether err is a permanent remote rejection.
func IsTerminal(err error) bool {
	return errors.Is(err, ErrTerminal)
}

// IsUnreachable reports whether err means the remote could not be contacted.
func IsUnreachable(err error) bool {
	return errors.Is(err, ErrUnreachable)
}
