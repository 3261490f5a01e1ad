// SPDX-License-Identifier: MIT
//
// File: methods_mutation.go
// Role: PushBack, PopBack, Insert, Erase, Clear.
// Invariants:
//   - A vacated slot is reset to the zero value so the store never pins
//     garbage the caller already dropped.
//   - Each successful mutation bumps gen exactly once from the caller's
//     point of view (reallocation may add its own bump).

package vector

// Clear drops every element; capacity and store are retained.
// Complexity: O(size) to zero the slots.
func (v *Vector[T]) Clear() {
	clear(v.live())
	v.size = 0
	v.gen++
}

// PushBack appends value, growing first when size == capacity.
//
// Errors:
//   - ErrAllocationFailure; the Vector is unchanged.
//
// Complexity: amortized O(1).
func (v *Vector[T]) PushBack(value T) error {
	if v.size == v.capacity {
		if err := v.grow(v.size+1, noGap); err != nil {
			return err
		}
	}
	*v.store.At(v.size) = value
	v.size++
	v.gen++

	return nil
}

// PopBack drops the last element.
//
// Errors:
//   - ErrEmpty when the Vector has no elements.
//
// Complexity: O(1).
func (v *Vector[T]) PopBack() error {
	if v.size == 0 {
		return vectorErrorf(ctxPopBack, 0, ErrEmpty)
	}
	v.size--
	var zero T
	*v.store.At(v.size) = zero
	v.gen++

	return nil
}

// Insert places value at pos, shifting [pos,size) one slot right, and
// returns the index of the inserted element (always pos).
// pos == Size() appends.
//
// Implementation:
//   - Spare capacity: shift the suffix in place, write value into the gap.
//   - Full: grow into a new store that already has the gap at pos
//     (prefix, gap, suffix), then write value.
//
// Errors:
//   - ErrOutOfRange when pos is outside [0,size].
//   - ErrAllocationFailure when growth fails; the Vector is unchanged.
//
// Complexity: O(size-pos) amortized.
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	if pos < 0 || pos > v.size {
		return 0, vectorErrorf(ctxInsert, pos, ErrOutOfRange)
	}
	if v.size < v.capacity {
		slots := v.store.Slots()
		copy(slots[pos+1:v.size+1], slots[pos:v.size])
	} else if err := v.grow(v.size+1, pos); err != nil {
		return 0, err
	}
	*v.store.At(pos) = value
	v.size++
	v.gen++

	return pos, nil
}

// Erase removes the element at pos, shifting [pos+1,size) one slot left,
// and returns the index where the next element now lives (always pos).
//
// Errors:
//   - ErrOutOfRange when pos is outside [0,size).
//
// Complexity: O(size-pos).
func (v *Vector[T]) Erase(pos int) (int, error) {
	if !v.inRange(pos) {
		return 0, vectorErrorf(ctxErase, pos, ErrOutOfRange)
	}
	live := v.live()
	copy(live[pos:], live[pos+1:])
	var zero T
	live[v.size-1] = zero
	v.size--
	v.gen++

	return pos, nil
}
