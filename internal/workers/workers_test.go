// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(context.Context) {
	m.runCount.Add(1)
}

// blockingWorker returns only when its context is canceled.
type blockingWorker struct {
	started chan struct{}
}

func (b *blockingWorker) Run(ctx context.Context) {
	close(b.started)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run(context.Background())
	ws.Wait()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if got := w.runCount.Load(); got != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, got)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run(context.Background())
	ws.Wait()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
	ws.Wait()
}

func TestWorkers_Run_Concurrently(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	b1 := &blockingWorker{started: make(chan struct{})}
	b2 := &blockingWorker{started: make(chan struct{})}

	ws := NewWorkers(b1, b2)
	ws.Run(ctx)

	// both workers start although neither returns
	<-b1.started
	<-b2.started

	cancel()
	ws.Wait()
}

// countingProber counts probes and signals the first one.
type countingProber struct {
	once  sync.Once
	first chan struct{}
	count atomic.Int32
}

func (p *countingProber) Probe(context.Context) bool {
	p.count.Add(1)
	p.once.Do(func() { close(p.first) })
	return true
}

func TestProbeWorker_ProbesUntilCanceled(t *testing.T) {
	prober := &countingProber{first: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())

	ws := NewWorkers(NewProbeWorker(prober, 5*time.Millisecond, logger.Nop()))
	ws.Run(ctx)

	select {
	case <-prober.first:
	case <-time.After(time.Second):
		t.Fatal("prober was never called")
	}

	cancel()
	ws.Wait()

	after := prober.count.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, prober.count.Load(), "no probes after stop")
}

func TestProbeWorker_DefaultInterval(t *testing.T) {
	w := NewProbeWorker(&countingProber{}, 0, logger.Nop()).(*probeWorker)
	assert.Equal(t, defaultProbeInterval, w.interval)
}

func TestSyncWorker_StartsAndStopsJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockClientSyncJob(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})

	gomock.InOrder(
		job.EXPECT().Start(gomock.Any(), time.Minute).Do(func(context.Context, time.Duration) { close(started) }),
		job.EXPECT().Stop(),
	)

	ws := NewWorkers(NewSyncWorker(job, time.Minute))
	ws.Run(ctx)

	select {
	case <-started:
	case <-time.After(time.Second):
		require.FailNow(t, "sync job was never started")
	}

	cancel()
	ws.Wait()
}
