// SPDX-License-Identifier: MIT
//
// File: iterator.go
// Role: index cursors over [0,size) and range-over-func sequences.
// Invalidation:
//   - An Iterator remembers the generation of its Vector at creation time.
//   - Reallocation, shifting and size changes bump the generation; Set
//     through an iterator or accessor does not.
//   - Value/Ptr/Set on a stale iterator still index the live window and
//     panic on a breach; they do not check the generation.

package vector

import "iter"

// Iterator is a position in a Vector, in the half-open range [0,size].
// It is a small value type; copy it freely.
type Iterator[T any] struct {
	v   *Vector[T]
	pos int
	gen uint64
}

// Begin returns an iterator to the first element (equal to End when empty).
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{v: v, pos: 0, gen: v.gen}
}

// End returns the past-the-end iterator.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{v: v, pos: v.size, gen: v.gen}
}

// IterAt returns an iterator to position pos without validating it.
func (v *Vector[T]) IterAt(pos int) Iterator[T] {
	return Iterator[T]{v: v, pos: pos, gen: v.gen}
}

// Index returns the position the iterator refers to.
func (it Iterator[T]) Index() int { return it.pos }

// Valid reports whether the iterator was taken at the Vector's current
// generation and still lies in [0,size].
func (it Iterator[T]) Valid() bool {
	return it.v != nil && it.gen == it.v.gen && it.pos >= 0 && it.pos <= it.v.size
}

// Next returns the iterator one position forward.
func (it Iterator[T]) Next() Iterator[T] { it.pos++; return it }

// Prev returns the iterator one position back.
func (it Iterator[T]) Prev() Iterator[T] { it.pos--; return it }

// Add returns the iterator moved by n positions (n may be negative).
func (it Iterator[T]) Add(n int) Iterator[T] { it.pos += n; return it }

// Distance returns to.Index() - it.Index().
func (it Iterator[T]) Distance(to Iterator[T]) int { return to.pos - it.pos }

// Equal reports whether both iterators address the same position of the
// same Vector.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.v == other.v && it.pos == other.pos
}

// Less reports whether it precedes other in the same Vector.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.v == other.v && it.pos < other.pos
}

// Value returns the element under the iterator. Precondition: it is
// dereferenceable (Index() < Size()).
func (it Iterator[T]) Value() T { return it.v.Get(it.pos) }

// Ptr returns a pointer to the element under the iterator.
func (it Iterator[T]) Ptr() *T { return it.v.Ptr(it.pos) }

// Set overwrites the element under the iterator.
func (it Iterator[T]) Set(value T) { it.v.Set(it.pos, value) }

// checkIter validates ownership and generation of it for method op.
func (v *Vector[T]) checkIter(op string, it Iterator[T]) error {
	if it.v != v {
		return vectorErrorf(op, it.pos, ErrForeignIterator)
	}
	if it.gen != v.gen {
		return vectorErrorf(op, it.pos, ErrStaleIterator)
	}

	return nil
}

// InsertIter inserts value before it and returns a fresh iterator to the
// inserted element. Every other iterator of v becomes stale.
//
// Errors:
//   - ErrForeignIterator, ErrStaleIterator, plus those of Insert.
func (v *Vector[T]) InsertIter(it Iterator[T], value T) (Iterator[T], error) {
	if err := v.checkIter(ctxInsertIter, it); err != nil {
		return it, err
	}
	pos, err := v.Insert(it.pos, value)
	if err != nil {
		return it, err
	}

	return v.IterAt(pos), nil
}

// EraseIter removes the element under it and returns a fresh iterator to
// the element that followed it (End when it was the last).
//
// Errors:
//   - ErrForeignIterator, ErrStaleIterator, plus those of Erase.
func (v *Vector[T]) EraseIter(it Iterator[T]) (Iterator[T], error) {
	if err := v.checkIter(ctxEraseIter, it); err != nil {
		return it, err
	}
	pos, err := v.Erase(it.pos)
	if err != nil {
		return it, err
	}

	return v.IterAt(pos), nil
}

// All yields (index, element) pairs in order.
//
//	for i, x := range v.All() { ... }
//
// Mutating v during the loop is not supported.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.live() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values yields the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.live() {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward yields (index, element) pairs from last to first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		live := v.live()
		for i := len(live) - 1; i >= 0; i-- {
			if !yield(i, live[i]) {
				return
			}
		}
	}
}
