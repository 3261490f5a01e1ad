// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/simplevector/arrayptr"

// Vector is a growable array of T backed by one exclusively owned store.
//
//   - store holds capacity slots; [0,size) are live, [size,capacity) are
//     zero-valued and never readable through the API.
//   - gen is bumped by every operation that reallocates, shifts elements
//     or changes size; iterators compare against it.
//   - opts is immutable once set and may be shared between Vectors.
//
// The zero value is an empty Vector ready to use.
type Vector[T any] struct {
	store    arrayptr.ArrayPtr[T]
	size     int
	capacity int
	gen      uint64
	opts     *Options
}

// ReserveProxy is a capacity-reservation hint consumed by NewReserved.
type ReserveProxy struct {
	Capacity int // slots to reserve
}

// Reserve builds a ReserveProxy asking for n slots.
//
//	v, err := vector.NewReserved[int](vector.Reserve(64))
func Reserve(n int) ReserveProxy {
	return ReserveProxy{Capacity: n}
}

// options returns the effective settings, falling back to the defaults for
// zero-value Vectors.
func (v *Vector[T]) options() *Options {
	if v.opts == nil {
		return defaultOptions
	}

	return v.opts
}

// live is the [0,size) window of the store.
func (v *Vector[T]) live() []T {
	return v.store.Slots()[:v.size]
}
