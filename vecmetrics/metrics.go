// SPDX-License-Identifier: MIT

// Package vecmetrics exports vector growth events as Prometheus metrics.
//
// A *Metrics implements vector.Observer; attach it with
// vector.WithObserver. One Metrics may be shared by any number of
// Vectors: the collectors are safe for concurrent use even though each
// Vector is not.
//
//	m := vecmetrics.New(prometheus.DefaultRegisterer)
//	v := vector.New[int](vector.WithObserver(m))
package vecmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/simplevector/vector"
)

// Namespace prefixes every metric name.
const Namespace = "simplevector"

// Metrics counts reallocations, migrated elements, allocated slots and
// allocation failures.
type Metrics struct {
	reallocations      prometheus.Counter
	elementsMoved      prometheus.Counter
	slotsAllocated     prometheus.Counter
	allocationFailures prometheus.Counter
	capacityAfterGrow  prometheus.Histogram
}

var _ vector.Observer = (*Metrics)(nil)

// New creates the collectors and registers them with reg.
// A nil reg leaves them unregistered (useful in tests).
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		reallocations: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "reallocations_total",
			Help:      "Number of backing store replacements.",
		}),
		elementsMoved: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "elements_moved_total",
			Help:      "Elements migrated from an old backing store into a new one.",
		}),
		slotsAllocated: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "slots_allocated_total",
			Help:      "Slots allocated by reallocations.",
		}),
		allocationFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "allocation_failures_total",
			Help:      "Backing store allocations that could not be satisfied.",
		}),
		capacityAfterGrow: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "capacity_after_growth",
			Help:      "Capacity reached by each reallocation.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}),
	}
}

// Reallocated implements vector.Observer.
func (m *Metrics) Reallocated(_, newCapacity, moved int) {
	m.reallocations.Inc()
	m.elementsMoved.Add(float64(moved))
	m.slotsAllocated.Add(float64(newCapacity))
	m.capacityAfterGrow.Observe(float64(newCapacity))
}

// AllocationFailed implements vector.Observer.
func (m *Metrics) AllocationFailed(int, error) {
	m.allocationFailures.Inc()
}
