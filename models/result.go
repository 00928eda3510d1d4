// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Result is the outcome descriptor returned by note operations. UI layers
// render Error inline instead of handling Go errors.
type Result struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`

	// Err keeps the typed error for callers that want errors.Is.
	Err error `json:"-"`
}

// Success returns a successful Result.
func Success() Result {
	return Result{OK: true}
}

// Failure wraps err into a failed Result.
func Failure(err error) Result {
	if err == nil {
		return Success()
	}
	return Result{OK: false, Error: err.Error(), Err: err}
}
