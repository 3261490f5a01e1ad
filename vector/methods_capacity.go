// SPDX-License-Identifier: MIT
//
// File: methods_capacity.go
// Role: growth policy, reallocation, Reserve and Resize.
// Invariants:
//   - A new store is fully populated before it replaces the current one;
//     a failed allocation leaves store, size, capacity and gen untouched.
//   - Slots in [size,capacity) are always zero-valued.

package vector

import (
	"math"

	"github.com/go-kit/log/level"

	"github.com/katalvlaran/simplevector/arrayptr"
)

// noGap tells reallocate to migrate elements without opening a hole.
const noGap = -1

// growTarget returns the capacity to grow to when at least required slots
// are needed: max(required, 2*capacity), or max(required, 1) from zero.
// The doubled part is clamped to ceiling; required itself never is, so
// an oversized request still reaches the store and fails there.
func growTarget(capacity, required, ceiling int) int {
	doubled := 1
	if capacity > 0 {
		doubled = math.MaxInt
		if capacity <= math.MaxInt/2 {
			doubled = capacity * 2
		}
	}
	doubled = min(doubled, ceiling)

	return max(required, doubled)
}

// grow reallocates to growTarget(capacity, required) with an optional gap.
func (v *Vector[T]) grow(required, gap int) error {
	return v.reallocate(growTarget(v.capacity, required, v.options().maxCapacity), gap)
}

// reallocate migrates [0,size) into a fresh store of newCap slots.
//
// Implementation:
//   - Stage 1: allocate the new store under the ceiling; on failure notify
//     the observer, log at warn and return the store's error unchanged.
//   - Stage 2: copy the live elements; when gap >= 0 elements from gap
//     onward land one slot to the right, leaving slot gap zero-valued.
//   - Stage 3: swap stores, update capacity and generation, notify.
//
// Complexity: Time O(size + newCap), Space O(newCap).
func (v *Vector[T]) reallocate(newCap, gap int) error {
	o := v.options()
	next, err := arrayptr.NewBounded[T](newCap, o.maxCapacity)
	if err != nil {
		o.observer.AllocationFailed(newCap, err)
		level.Warn(o.logger).Log("msg", "vector allocation failed", "requested", newCap, "capacity", v.capacity, "err", err)
		return err
	}

	src, dst := v.live(), next.Slots()
	if gap < 0 {
		copy(dst, src)
	} else {
		copy(dst, src[:gap])
		copy(dst[gap+1:], src[gap:])
	}

	v.store.Swap(&next) // next now holds the old block and is dropped
	oldCap := v.capacity
	v.capacity = newCap
	v.gen++

	o.observer.Reallocated(oldCap, newCap, v.size)
	level.Debug(o.logger).Log("msg", "vector reallocated", "from", oldCap, "to", newCap, "moved", v.size)

	return nil
}

// Reserve ensures capacity >= n. When n > capacity a store of exactly n
// slots replaces the current one; size is unchanged. No-op otherwise.
//
// Errors:
//   - ErrAllocationFailure; the Vector is unchanged.
//
// Complexity: Time O(size + n) when growing, O(1) otherwise.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.capacity {
		return nil
	}

	return v.reallocate(n, noGap)
}

// Resize sets the size to n.
//
// Behavior:
//   - n <= size: trailing elements are dropped (their slots zeroed).
//   - size < n <= capacity: slots [size,n) are zero-valued in place.
//   - n > capacity: grow to max(n, 2*capacity), new slots zero-valued.
//
// After shrinking, regrowing does not bring dropped values back.
//
// Errors:
//   - ErrOutOfRange when n < 0.
//   - ErrAllocationFailure when growing fails; the Vector is unchanged.
//
// Complexity: Time O(|n-size|) in place, O(size + newCap) when growing.
func (v *Vector[T]) Resize(n int) error {
	switch {
	case n < 0:
		return vectorErrorf(ctxResize, n, ErrOutOfRange)
	case n == v.size:
		return nil
	case n < v.size:
		clear(v.store.Slots()[n:v.size])
	case n <= v.capacity:
		clear(v.store.Slots()[v.size:n])
	default:
		if err := v.grow(n, noGap); err != nil {
			return err
		}
	}
	v.size = n
	v.gen++

	return nil
}
