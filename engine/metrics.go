// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package engine

import "github.com/prometheus/client_golang/prometheus"

// Metrics groups the counters and histograms emitted by Program. A nil
// *Metrics, or the empty one NopMetrics returns, is valid and makes every
// call a no-op, so tests
// that do not care about observability do not need a registry.
type Metrics struct {
	operationsTotal   *prometheus.CounterVec
	operationFailures *prometheus.CounterVec
	locksCreatedTotal prometheus.Counter
	lockedAmount      prometheus.Histogram
}

// NewMetrics registers the protocol's metrics on reg and returns a Metrics
// ready to pass to Context.WithMetrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "timelock_operations_total",
			Help: "Count of time-lock operations attempted, by operation name.",
		}, []string{"operation"}),
		operationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "timelock_operation_failures_total",
			Help: "Count of time-lock operations that returned an error, by operation and error code.",
		}, []string{"operation", "code"}),
		locksCreatedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "timelock_locks_created_total",
			Help: "Count of locks successfully created.",
		}),
		lockedAmount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "timelock_locked_amount",
			Help:    "Distribution of token amounts locked at creation time.",
			Buckets: prometheus.ExponentialBuckets(1, 10, 10),
		}),
	}
	reg.MustRegister(m.operationsTotal, m.operationFailures, m.locksCreatedTotal, m.lockedAmount)
	return m
}

// NopMetrics returns a Metrics whose methods are safe to call but observe
// nothing, for callers (mainly tests) that don't want a Prometheus registry.
func NopMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) observeOperation(op string) {
	if m == nil || m.operationsTotal == nil {
		return
	}
	m.operationsTotal.WithLabelValues(op).Inc()
}

func (m *Metrics) observeFailure(op, code string) {
	if m == nil || m.operationFailures == nil {
		return
	}
	m.operationFailures.WithLabelValues(op, code).Inc()
}

func (m *Metrics) observeLockCreated(amount uint64) {
	if m == nil || m.locksCreatedTotal == nil {
		return
	}
	m.locksCreatedTotal.Inc()
	m.lockedAmount.Observe(float64(amount))
}

// ObserveOperation records an attempted call to op. Exported so package
// timelock, which owns the operation dispatch loop, can drive metrics
// without engine needing to know the operation names in advance.
func (m *Metrics) ObserveOperation(op string) { m.observeOperation(op) }

// ObserveFailure records that op failed with the named error code.
func (m *Metrics) ObserveFailure(op, code string) { m.observeFailure(op, code) }

// ObserveLockCreated records a successful lock creation of amount units.
func (m *Metrics) ObserveLockCreated(amount uint64) { m.observeLockCreated(amount) }
