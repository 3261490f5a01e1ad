// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: constructors and read-only getters.
// Policy:
//   - Allocating constructors return (*Vector, error); the only error is
//     ErrAllocationFailure from the backing store.
//   - Every constructor resolves options once via gatherOptions.

package vector

import "github.com/katalvlaran/simplevector/arrayptr"

// New returns an empty Vector. No allocation happens until the first
// element or reservation.
// Complexity: O(len(opts)).
func New[T any](opts ...Option) *Vector[T] {
	return &Vector[T]{opts: gatherOptions(opts...)}
}

// NewSized returns a Vector of n zero-valued elements; size == capacity == n.
//
// Errors:
//   - ErrAllocationFailure when n < 0 or n exceeds the capacity ceiling.
//
// Complexity: Time O(n), Space O(n).
func NewSized[T any](n int, opts ...Option) (*Vector[T], error) {
	v, err := newWithCapacity[T](n, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}
	v.size = n

	return v, nil
}

// NewFilled returns a Vector of n copies of value; size == capacity == n.
//
// Errors:
//   - ErrAllocationFailure when n < 0 or n exceeds the capacity ceiling.
//
// Complexity: Time O(n), Space O(n).
func NewFilled[T any](n int, value T, opts ...Option) (*Vector[T], error) {
	v, err := newWithCapacity[T](n, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}
	slots := v.store.Slots()
	for i := range slots {
		slots[i] = value
	}
	v.size = n

	return v, nil
}

// FromSlice returns a Vector holding a copy of values, in order;
// size == capacity == len(values). The caller keeps ownership of values.
//
// Errors:
//   - ErrAllocationFailure when len(values) exceeds the capacity ceiling.
//
// Complexity: Time O(n), Space O(n).
func FromSlice[T any](values []T, opts ...Option) (*Vector[T], error) {
	v, err := newWithCapacity[T](len(values), gatherOptions(opts...))
	if err != nil {
		return nil, err
	}
	copy(v.store.Slots(), values)
	v.size = len(values)

	return v, nil
}

// Of builds a Vector from a literal list of values with default options.
//
//	v := vector.Of(1, 2, 3)
//
// The values already exist in memory, so allocation can only fail on a
// runtime refusal; Of panics in that case.
func Of[T any](values ...T) *Vector[T] {
	v, err := FromSlice(values)
	if err != nil {
		panic(err)
	}

	return v
}

// NewReserved returns an empty Vector with hint.Capacity slots reserved;
// size == 0, capacity == hint.Capacity.
//
// Errors:
//   - ErrAllocationFailure when the hint is negative or above the ceiling.
//
// Complexity: Time O(hint), Space O(hint).
func NewReserved[T any](hint ReserveProxy, opts ...Option) (*Vector[T], error) {
	return newWithCapacity[T](hint.Capacity, gatherOptions(opts...))
}

// newWithCapacity allocates n slots under o's ceiling; size stays 0.
func newWithCapacity[T any](n int, o *Options) (*Vector[T], error) {
	store, err := arrayptr.NewBounded[T](n, o.maxCapacity)
	if err != nil {
		o.observer.AllocationFailed(n, err)
		return nil, err
	}

	return &Vector[T]{store: store, capacity: n, opts: o}, nil
}

// Size returns the number of live elements. Complexity: O(1).
func (v *Vector[T]) Size() int { return v.size }

// Capacity returns the number of allocated slots. Complexity: O(1).
func (v *Vector[T]) Capacity() int { return v.capacity }

// IsEmpty reports whether Size() == 0. Complexity: O(1).
func (v *Vector[T]) IsEmpty() bool { return v.size == 0 }
