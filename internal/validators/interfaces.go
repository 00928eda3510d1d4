// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks notes, patches and queued operations before they
// enter the local cache or the operation queue.
//
// Validate takes an optional list of field names. When fields are given only
// those fields are checked, which lets callers validate a partially built
// value.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
