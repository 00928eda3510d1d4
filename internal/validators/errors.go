// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidNoteID     = errors.New("invalid note id")
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrEmptyFolder       = errors.New("folder is required")
	ErrInvalidTimestamps = errors.New("invalid timestamps")
	ErrInvalidTag        = errors.New("invalid tag")
	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")
	ErrInvalidOperation  = errors.New("invalid operation")
)
