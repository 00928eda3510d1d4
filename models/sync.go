// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncState is the sync engine state.
type SyncState string

const (
	SyncIdleOffline        SyncState = "idle-offline"
	SyncIdleOnlineEmpty    SyncState = "idle-online-empty"
	SyncIdleOnlineNonEmpty SyncState = "idle-online-non-empty"
	SyncDraining           SyncState = "draining"
	SyncReconciling        SyncState = "reconciling"
)

// SyncStatus is a point-in-time snapshot of the sync engine.
type SyncStatus struct {
	State       SyncState  `json:"state" yaml:"state"`
	Online      bool       `json:"online" yaml:"online"`
	QueueLength int        `json:"queue_length" yaml:"queue_length"`
	LastSyncAt  *time.Time `json:"last_sync_at,omitempty" yaml:"last_sync_at,omitempty"`
	LastError   string     `json:"last_error,omitempty" yaml:"last_error,omitempty"`
}

// DrainReport summarises one pass over the operation queue.
type DrainReport struct {
	Sent       int  `json:"sent" yaml:"sent"`
	Dropped    int  `json:"dropped" yaml:"dropped"`
	Remaining  int  `json:"remaining" yaml:"remaining"`
	Reconciled bool `json:"reconciled" yaml:"reconciled"`
	// Coalesced is set when another sync was already running and this call
	// only scheduled a follow-up pass.
	Coalesced bool `json:"coalesced,omitempty" yaml:"coalesced,omitempty"`
}
