// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes the sync engine counters in Prometheus format.
//
// Every [Collector] owns its registry, so collectors created in tests never
// clash. All record methods accept a nil receiver, which lets components run
// without metrics wired.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-note-keeper/models"
)

const namespace = "notekeeper"

// Collector holds all sync metrics of the client.
type Collector struct {
	registry *prometheus.Registry

	QueueLength       prometheus.Gauge
	Online            prometheus.Gauge
	OperationsSent    *prometheus.CounterVec
	OperationsFailed  *prometheus.CounterVec
	OperationsDropped *prometheus.CounterVec
	Drains            prometheus.Counter
	DrainDuration     prometheus.Histogram
	Reconciliations   *prometheus.CounterVec
}

// NewCollector creates a collector registered on a fresh registry together
// with the Go runtime and process collectors.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	queueLength := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "queue_length",
		Help:      "Number of pending operations not yet confirmed by the remote store",
	})

	online := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "online",
		Help:      "1 when the remote store is reachable, 0 otherwise",
	})

	sent := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_sent_total",
			Help:      "Operations confirmed by the remote store",
		},
		[]string{"kind"},
	)

	failed := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_failed_total",
			Help:      "Operations that failed transiently and stayed queued",
		},
		[]string{"kind"},
	)

	dropped := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_dropped_total",
			Help:      "Operations rejected permanently by the remote store",
		},
		[]string{"kind"},
	)

	drains := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "drains_total",
		Help:      "Completed passes over the operation queue",
	})

	drainDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "drain_duration_seconds",
		Help:      "Duration of a pass over the operation queue",
		Buckets:   prometheus.DefBuckets,
	})

	reconciliations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconciliations_total",
			Help:      "Full refetches of the remote collection by outcome",
		},
		[]string{"status"},
	)

	registry.MustRegister(
		queueLength,
		online,
		sent,
		failed,
		dropped,
		drains,
		drainDuration,
		reconciliations,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	return &Collector{
		registry:          registry,
		QueueLength:       queueLength,
		Online:            online,
		OperationsSent:    sent,
		OperationsFailed:  failed,
		OperationsDropped: dropped,
		Drains:            drains,
		DrainDuration:     drainDuration,
		Reconciliations:   reconciliations,
	}
}

// Registry returns the registry the collector is registered on.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func (c *Collector) SetQueueLength(n int) {
	if c == nil {
		return
	}
	c.QueueLength.Set(float64(n))
}

func (c *Collector) SetOnline(online bool) {
	if c == nil {
		return
	}
	if online {
		c.Online.Set(1)
		return
	}
	c.Online.Set(0)
}

func (c *Collector) OperationSent(kind models.OperationKind) {
	if c == nil {
		return
	}
	c.OperationsSent.WithLabelValues(string(kind)).Inc()
}

func (c *Collector) OperationFailed(kind models.OperationKind) {
	if c == nil {
		return
	}
	c.OperationsFailed.WithLabelValues(string(kind)).Inc()
}

func (c *Collector) OperationDropped(kind models.OperationKind) {
	if c == nil {
		return
	}
	c.OperationsDropped.WithLabelValues(string(kind)).Inc()
}

// DrainFinished counts a pass over the queue that started at start.
func (c *Collector) DrainFinished(start time.Time) {
	if c == nil {
		return
	}
	c.Drains.Inc()
	c.DrainDuration.Observe(time.Since(start).Seconds())
}

// Reconciled counts a refetch; ok is false when SelectAll failed or the
// result was discarded.
func (c *Collector) Reconciled(ok bool) {
	if c == nil {
		return
	}
	status := "ok"
	if !ok {
		status = "skipped"
	}
	c.Reconciliations.WithLabelValues(status).Inc()
}
