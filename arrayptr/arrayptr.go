// SPDX-License-Identifier: MIT

// Package arrayptr - owned block handle.
//
// Purpose:
//   - Own exactly one block of N zero-valued slots.
//   - Provide O(1) slot access and O(1) ownership transfer/exchange.
//   - Report allocation failures as errors, never as panics.
//
// Complexity quicksheet:
//   - New/NewBounded: O(n) zero-init; At/Len/Owns/Swap/MoveFrom/Release: O(1).

package arrayptr

import (
	"math"
	"runtime"
)

// DefaultMaxSlots is the slot ceiling used by New.
const DefaultMaxSlots = math.MaxInt32

// ArrayPtr owns one contiguous block of slots.
// The zero value owns nothing and is ready to use.
type ArrayPtr[T any] struct {
	raw []T // owned block; nil when nothing is owned
}

// New allocates n zero-valued slots under DefaultMaxSlots.
// n == 0 yields an empty handle that owns nothing.
//
// Errors:
//   - ErrAllocationFailure when n < 0 or n > DefaultMaxSlots.
//
// Complexity: Time O(n), Space O(n).
func New[T any](n int) (ArrayPtr[T], error) {
	return NewBounded[T](n, DefaultMaxSlots)
}

// NewBounded allocates n zero-valued slots, refusing anything above limit.
//
// Implementation:
//   - Stage 1: validate 0 ≤ n ≤ limit.
//   - Stage 2: allocate; a runtime makeslice refusal is converted into
//     ErrAllocationFailure instead of escaping as a panic.
//
// Errors:
//   - ErrAllocationFailure (wrapped with n and limit).
//
// Complexity: Time O(n), Space O(n).
func NewBounded[T any](n, limit int) (p ArrayPtr[T], err error) {
	if n < 0 || n > limit {
		return ArrayPtr[T]{}, allocErrorf(n, limit)
	}
	if n == 0 {
		return ArrayPtr[T]{}, nil
	}
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			p, err = ArrayPtr[T]{}, allocErrorf(n, limit)
		}
	}()

	return ArrayPtr[T]{raw: make([]T, n)}, nil
}

// Len reports the number of owned slots.
func (p *ArrayPtr[T]) Len() int { return len(p.raw) }

// Owns reports whether the handle currently owns any slots.
func (p *ArrayPtr[T]) Owns() bool { return len(p.raw) > 0 }

// At returns a pointer to slot i. Precondition: 0 ≤ i < Len();
// a breach panics with the runtime bounds error.
func (p *ArrayPtr[T]) At(i int) *T { return &p.raw[i] }

// Slots exposes the whole block, including slots the owner treats as unused.
// The returned slice aliases the block and is valid until the next
// MoveFrom/Swap/Release on this handle.
func (p *ArrayPtr[T]) Slots() []T { return p.raw }

// Swap exchanges blocks with other. No slot is copied.
func (p *ArrayPtr[T]) Swap(other *ArrayPtr[T]) {
	p.raw, other.raw = other.raw, p.raw
}

// MoveFrom takes ownership of other's block and leaves other empty.
// The block previously owned by p is dropped. Moving from itself is a no-op.
func (p *ArrayPtr[T]) MoveFrom(other *ArrayPtr[T]) {
	if p == other {
		return
	}
	p.raw = other.raw
	other.raw = nil
}

// Release hands the block to the caller and leaves the handle empty.
func (p *ArrayPtr[T]) Release() []T {
	raw := p.raw
	p.raw = nil

	return raw
}
