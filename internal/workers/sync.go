// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"
)

type syncWorker struct {
	job      SyncJob
	interval time.Duration
}

// NewSyncWorker runs job for as long as the worker context lives.
func NewSyncWorker(job SyncJob, interval time.Duration) Worker {
	return &syncWorker{job: job, interval: interval}
}

func (w *syncWorker) Run(ctx context.Context) {
	w.job.Start(ctx, w.interval)
	<-ctx.Done()
	w.job.Stop()
}
