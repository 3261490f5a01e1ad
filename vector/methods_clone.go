// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: copy, move, assignment, swap and release.
// Ownership:
//   - Copy (Clone/Assign) allocates a store of the source's capacity and
//     copies [0,size); the two Vectors never share slots afterwards.
//   - Move (Move/MoveAssign) transfers the store in O(1) and leaves the
//     source empty (size == capacity == 0) but usable.
//   - Settings stay with the Vector they were built for.

package vector

import "github.com/katalvlaran/simplevector/arrayptr"

// Clone returns a deep copy: its own store of Capacity() slots, the same
// size, and copied element values. Elements themselves are copied by
// assignment, so pointer-like T share their referents.
//
// Errors:
//   - ErrAllocationFailure; the source is never modified.
//
// Complexity: Time O(capacity), Space O(capacity).
func (v *Vector[T]) Clone() (*Vector[T], error) {
	clone, err := newWithCapacity[T](v.capacity, v.options())
	if err != nil {
		return nil, err
	}
	copy(clone.store.Slots(), v.live())
	clone.size = v.size

	return clone, nil
}

// Move returns a new Vector that owns v's store and counters, leaving v
// empty. No element is copied.
// Complexity: O(1).
func (v *Vector[T]) Move() *Vector[T] {
	dst := &Vector[T]{opts: v.opts}
	dst.takeFrom(v)

	return dst
}

// Assign replaces v's contents with a copy of src (copy assignment).
// Self-assignment is a no-op.
//
// Implementation:
//   - Stage 1: allocate a store of src.Capacity() under v's ceiling and
//     copy src's live elements into it.
//   - Stage 2: swap it in and adopt src's counters.
//
// Errors:
//   - ErrNilVector when src is nil.
//   - ErrAllocationFailure; v is unchanged.
//
// Complexity: Time O(src.capacity), Space O(src.capacity).
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if src == nil {
		return vectorErrorf(ctxAssign, 0, ErrNilVector)
	}
	if src == v {
		return nil
	}
	o := v.options()
	next, err := arrayptr.NewBounded[T](src.capacity, o.maxCapacity)
	if err != nil {
		o.observer.AllocationFailed(src.capacity, err)
		return err
	}
	copy(next.Slots(), src.live())

	v.store.Swap(&next)
	v.size = src.size
	v.capacity = src.capacity
	v.gen++

	return nil
}

// MoveAssign replaces v's contents by taking src's store and counters
// (move assignment). src is left empty. Self-assignment is a no-op.
//
// Errors:
//   - ErrNilVector when src is nil.
//
// Complexity: O(1).
func (v *Vector[T]) MoveAssign(src *Vector[T]) error {
	if src == nil {
		return vectorErrorf(ctxMoveAssign, 0, ErrNilVector)
	}
	if src == v {
		return nil
	}
	v.takeFrom(src)

	return nil
}

// takeFrom moves src's store and counters into v and empties src.
func (v *Vector[T]) takeFrom(src *Vector[T]) {
	v.store.MoveFrom(&src.store)
	v.size, v.capacity = src.size, src.capacity
	src.size, src.capacity = 0, 0
	v.gen++
	src.gen++
}

// Swap exchanges store, size and capacity with other in O(1).
// No element is copied or moved; settings are not exchanged.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if other == v {
		return
	}
	v.store.Swap(&other.store)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
	v.gen++
	other.gen++
}

// Release drops the store eagerly, leaving an empty Vector
// (size == capacity == 0) with its settings intact.
func (v *Vector[T]) Release() {
	v.store.Release()
	v.size, v.capacity = 0, 0
	v.gen++
}
