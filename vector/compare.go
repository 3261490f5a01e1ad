// SPDX-License-Identifier: MIT
//
// File: compare.go
// Role: equality and lexicographic ordering between Vectors.
// Semantics:
//   - Equal: same size and pairwise equal elements, in order.
//   - Less: the first mismatching pair decides; a strict prefix is less.
//   - Greater(a,b) == Less(b,a); LessOrEqual == !Greater; GreaterOrEqual == !Less.
//   - Only the live window [0,size) takes part; capacity is ignored.
//   - A nil *Vector compares like an empty one.

package vector

import "golang.org/x/exp/constraints"

// elems returns the live window, treating nil as empty.
func elems[T any](v *Vector[T]) []T {
	if v == nil {
		return nil
	}

	return v.live()
}

// EqualFunc reports whether a and b have the same size and eq holds for
// every pair of elements at the same position.
// Complexity: O(min(len)) worst case, O(1) when sizes differ.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	xs, ys := elems(a), elems(b)
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !eq(xs[i], ys[i]) {
			return false
		}
	}

	return true
}

// Equal reports element-wise equality using ==.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// NotEqual is !Equal(a, b).
func NotEqual[T comparable](a, b *Vector[T]) bool { return !Equal(a, b) }

// LessFunc reports whether a precedes b lexicographically under less.
// Only less is consulted: for each position, less(x,y) decides true,
// less(y,x) decides false, otherwise the next pair is examined.
func LessFunc[T any](a, b *Vector[T], less func(x, y T) bool) bool {
	xs, ys := elems(a), elems(b)
	n := min(len(xs), len(ys))
	for i := 0; i < n; i++ {
		if less(xs[i], ys[i]) {
			return true
		}
		if less(ys[i], xs[i]) {
			return false
		}
	}

	return len(xs) < len(ys)
}

// CompareFunc returns -1, 0 or +1 comparing a and b lexicographically under
// cmp, which must return a negative, zero or positive number.
func CompareFunc[T any](a, b *Vector[T], cmp func(x, y T) int) int {
	xs, ys := elems(a), elems(b)
	n := min(len(xs), len(ys))
	for i := 0; i < n; i++ {
		if c := cmp(xs[i], ys[i]); c != 0 {
			if c < 0 {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(xs) < len(ys):
		return -1
	case len(xs) > len(ys):
		return 1
	}

	return 0
}

// lessOrdered is the built-in < for ordered element types.
func lessOrdered[T constraints.Ordered](x, y T) bool { return x < y }

// Less reports whether a < b lexicographically.
func Less[T constraints.Ordered](a, b *Vector[T]) bool { return LessFunc(a, b, lessOrdered[T]) }

// Greater reports whether a > b, i.e. b < a.
func Greater[T constraints.Ordered](a, b *Vector[T]) bool { return Less(b, a) }

// LessOrEqual reports whether a <= b, i.e. !(a > b).
func LessOrEqual[T constraints.Ordered](a, b *Vector[T]) bool { return !Greater(a, b) }

// GreaterOrEqual reports whether a >= b, i.e. !(a < b).
func GreaterOrEqual[T constraints.Ordered](a, b *Vector[T]) bool { return !Less(a, b) }

// Compare returns -1, 0 or +1 comparing a and b lexicographically with <.
// Elements that are neither < nor > each other (including NaN pairs)
// count as equal.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, func(x, y T) int {
		switch {
		case x < y:
			return -1
		case y < x:
			return 1
		}
		return 0
	})
}
