// SPDX-License-Identifier: MIT
//
// File: methods_access.go
// Role: element access, views and formatting.
// Policy:
//   - Unchecked accessors (Get/Set/Ptr/Front/Back) index the live window
//     [0,size), so a breach panics with Go's bounds error instead of
//     reading a stale slot.
//   - Checked accessors (At/SetAt/PtrAt) return ErrOutOfRange and never panic.

package vector

import (
	"fmt"
	"strings"
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector[int])(nil)

// Get returns element i. Precondition: 0 <= i < Size().
func (v *Vector[T]) Get(i int) T { return v.live()[i] }

// Set overwrites element i. Precondition: 0 <= i < Size().
func (v *Vector[T]) Set(i int, value T) { v.live()[i] = value }

// Ptr returns a pointer to element i. Precondition: 0 <= i < Size().
// The pointer is invalidated by any reallocation.
func (v *Vector[T]) Ptr(i int) *T { return &v.live()[i] }

// Front returns the first element. Precondition: !IsEmpty().
func (v *Vector[T]) Front() T { return v.live()[0] }

// Back returns the last element. Precondition: !IsEmpty().
func (v *Vector[T]) Back() T { return v.live()[v.size-1] }

// inRange reports whether i addresses a live element.
func (v *Vector[T]) inRange(i int) bool { return i >= 0 && i < v.size }

// At returns element i after validating 0 <= i < Size().
//
// Errors:
//   - ErrOutOfRange (wrapped with the index); the Vector is unchanged.
//
// Complexity: O(1).
func (v *Vector[T]) At(i int) (T, error) {
	if !v.inRange(i) {
		var zero T
		return zero, vectorErrorf(ctxAt, i, ErrOutOfRange)
	}

	return v.live()[i], nil
}

// SetAt overwrites element i after validating 0 <= i < Size().
//
// Errors:
//   - ErrOutOfRange (wrapped with the index).
func (v *Vector[T]) SetAt(i int, value T) error {
	if !v.inRange(i) {
		return vectorErrorf(ctxSetAt, i, ErrOutOfRange)
	}
	v.live()[i] = value

	return nil
}

// PtrAt returns a pointer to element i after validating the index.
//
// Errors:
//   - ErrOutOfRange (wrapped with the index).
func (v *Vector[T]) PtrAt(i int) (*T, error) {
	if !v.inRange(i) {
		return nil, vectorErrorf(ctxPtrAt, i, ErrOutOfRange)
	}

	return &v.live()[i], nil
}

// Data returns the live elements as a slice that aliases the store.
// Writes through it are visible in the Vector. The slice has
// cap == len, so appending to it never touches spare slots; it is
// invalidated like an iterator.
func (v *Vector[T]) Data() []T {
	s := v.live()

	return s[:len(s):len(s)]
}

// ToSlice returns an independent copy of the live elements.
// Complexity: O(size).
func (v *Vector[T]) ToSlice() []T {
	out := make([]T, v.size)
	copy(out, v.live())

	return out
}

// String formats the live elements as "[a, b, c]".
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.live() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte(']')

	return sb.String()
}
