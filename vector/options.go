// SPDX-License-Identifier: MIT

// Package vector: functional configuration for Vector instances.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Options are resolved once per constructor and shared by pointer; they
//     are never mutated afterwards, so Clone can reuse them.
//   - A zero-value Vector (var v Vector[T]) uses the package defaults.
//   - Settings belong to the Vector, not to its store: Swap and MoveAssign
//     exchange storage only.
package vector

import (
	"github.com/go-kit/log"

	"github.com/katalvlaran/simplevector/arrayptr"
)

// ---------- Defaults (single source of truth) ----------

// DefaultMaxCapacity is the allocation ceiling applied when WithMaxCapacity
// is not given.
const DefaultMaxCapacity = arrayptr.DefaultMaxSlots

// ---------- Internal panic messages ----------

const (
	panicMaxCapacityInvalid = "vector: WithMaxCapacity: limit must be non-negative"
	panicLoggerNil          = "vector: WithLogger: logger must not be nil"
	panicObserverNil        = "vector: WithObserver: observer must not be nil"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public constructors accept ...Option.
type Options struct {
	logger      log.Logger // DefaultLogger: log.NewNopLogger()
	observer    Observer   // nopObserver
	maxCapacity int        // DefaultMaxCapacity
}

// WithLogger routes reallocation (debug) and allocation-failure (warn)
// events to l.
//
// Errors:
//   - Panics when l is nil.
func WithLogger(l log.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithObserver reports growth events to obs synchronously.
//
// Errors:
//   - Panics when obs is nil.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic(panicObserverNil)
	}

	return func(o *Options) { o.observer = obs }
}

// WithMaxCapacity caps every allocation made for the Vector at limit slots.
// Requests above the ceiling fail with ErrAllocationFailure; the growth
// policy clamps its doubled target to the ceiling when the operation itself
// still fits.
//
// Errors:
//   - Panics when limit < 0.
func WithMaxCapacity(limit int) Option {
	if limit < 0 {
		panic(panicMaxCapacityInvalid)
	}

	return func(o *Options) { o.maxCapacity = limit }
}

// defaultOptions is shared by every Vector built without options.
var defaultOptions = &Options{
	logger:      log.NewNopLogger(),
	observer:    nopObserver{},
	maxCapacity: DefaultMaxCapacity,
}

// gatherOptions applies opts left-to-right over the defaults.
// Without options the shared defaults are returned as-is.
func gatherOptions(opts ...Option) *Options {
	if len(opts) == 0 {
		return defaultOptions
	}
	o := *defaultOptions
	for _, opt := range opts {
		opt(&o)
	}

	return &o
}
