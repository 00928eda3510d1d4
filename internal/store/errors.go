// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the local store. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned when a key that must exist is absent from
	// the key-value table.
	ErrKeyNotFound = errors.New("key not found")

	// ErrEmptyKey is returned when Save, Load or Delete is called with an
	// empty key.
	ErrEmptyKey = errors.New("key is empty")

	// ErrEncodingValue is returned when a value cannot be marshalled to JSON
	// before it is written.
	ErrEncodingValue = errors.New("failed to encode value")

	// ErrDecodingValue is returned when a stored value cannot be unmarshalled
	// into the destination.
	ErrDecodingValue = errors.New("failed to decode value")
)

// Low-level database operation errors.
var (
	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement fails.
	ErrExecutingStatement = errors.New("failed to execute statement")
)
