// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

const defaultSyncInterval = time.Minute

type clientSyncJob struct {
	syncer Syncer
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a job that calls syncer.Sync on a ticker so that
// operations left behind by transient failures are retried. The job is idle
// until Start is called.
func NewClientSyncJob(syncer Syncer, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{syncer: syncer, logger: logger}
}

func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				report, err := j.syncer.Sync(jobCtx)
				if err != nil {
					j.logger.Warn().Err(err).Str("func", "clientSyncJob.Start").Msg("periodic sync failed")
					continue
				}
				j.logger.Debug().
					Str("func", "clientSyncJob.Start").
					Int("sent", report.Sent).
					Int("dropped", report.Dropped).
					Int("remaining", report.Remaining).
					Msg("periodic sync done")
			}
		}
	}()
}

// Stop is safe to call when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
