// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

// NewTransportObserver returns a callback for remote call outcomes. A
// successful call marks the remote online, a call that could not reach the
// remote marks it offline. Other failures carry no reachability signal.
func NewTransportObserver(target Setter, isUnreachable func(error) bool) func(err error) {
	return func(err error) {
		switch {
		case err == nil:
			target.Set(true)
		case isUnreachable(err):
			target.Set(false)
		}
	}
}
