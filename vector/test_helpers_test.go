// Package vector_test contains shared fixtures for the Vector tests.
package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplevector/vector"
)

// growthEvent is one Reallocated callback.
type growthEvent struct {
	from, to, moved int
}

// recorder is an Observer that keeps every event it sees, in order.
type recorder struct {
	grows    []growthEvent
	failures []int
}

func (r *recorder) Reallocated(from, to, moved int) {
	r.grows = append(r.grows, growthEvent{from: from, to: to, moved: moved})
}

func (r *recorder) AllocationFailed(requested int, _ error) {
	r.failures = append(r.failures, requested)
}

// mustFrom builds a Vector from values or fails the test.
func mustFrom[T any](t *testing.T, values []T, opts ...vector.Option) *vector.Vector[T] {
	t.Helper()
	v, err := vector.FromSlice(values, opts...)
	require.NoError(t, err)

	return v
}

// pushAll appends values one by one or fails the test.
func pushAll[T any](t *testing.T, v *vector.Vector[T], values ...T) {
	t.Helper()
	for _, x := range values {
		require.NoError(t, v.PushBack(x))
	}
}

// seq returns [0, 1, ..., n-1].
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
