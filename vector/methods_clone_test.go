package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplevector/vector"
)

// TestCloneIndependence: the copy equals the source and never shares slots.
func TestCloneIndependence(t *testing.T) {
	v := mustFrom(t, []int{1, 2, 3})
	require.NoError(t, v.Reserve(7))

	c, err := v.Clone()
	require.NoError(t, err)
	require.True(t, vector.Equal(v, c))
	require.Equal(t, v.Capacity(), c.Capacity())
	require.Equal(t, v.Size(), c.Size())

	c.Set(0, 100)
	pushAll(t, c, 4)
	require.Equal(t, []int{1, 2, 3}, v.ToSlice())
	require.Equal(t, []int{100, 2, 3, 4}, c.ToSlice())
}

// TestCloneEmpty copies an empty Vector.
func TestCloneEmpty(t *testing.T) {
	c, err := vector.New[int]().Clone()
	require.NoError(t, err)
	require.Zero(t, c.Capacity())
	require.True(t, c.IsEmpty())
}

// TestMoveLeavesSourceEmpty transfers ownership in O(1).
func TestMoveLeavesSourceEmpty(t *testing.T) {
	v := mustFrom(t, []int{1, 2, 3})
	p := v.Ptr(0)

	m := v.Move()
	require.Zero(t, v.Size())
	require.Zero(t, v.Capacity())
	require.Equal(t, []int{1, 2, 3}, m.ToSlice())
	require.Same(t, p, m.Ptr(0)) // same block, no copy

	pushAll(t, v, 9) // the moved-from Vector stays usable
	require.Equal(t, []int{9}, v.ToSlice())
}

// TestAssign copies src over the target, replacing capacity too.
func TestAssign(t *testing.T) {
	src := mustFrom(t, []int{4, 5})
	require.NoError(t, src.Reserve(6))
	dst := mustFrom(t, []int{1, 2, 3, 4, 5, 6, 7})

	require.NoError(t, dst.Assign(src))
	require.Equal(t, []int{4, 5}, dst.ToSlice())
	require.Equal(t, 6, dst.Capacity())

	dst.Set(0, 0)
	require.Equal(t, 4, src.Get(0))
}

// TestAssignSelfAndNil covers the degenerate sources.
func TestAssignSelfAndNil(t *testing.T) {
	v := mustFrom(t, []int{1, 2})
	it := v.Begin()

	require.NoError(t, v.Assign(v))
	require.True(t, it.Valid(), "self-assignment is a no-op")
	require.Equal(t, []int{1, 2}, v.ToSlice())

	require.ErrorIs(t, v.Assign(nil), vector.ErrNilVector)
	require.ErrorIs(t, v.MoveAssign(nil), vector.ErrNilVector)
	require.NoError(t, v.MoveAssign(v))
	require.Equal(t, []int{1, 2}, v.ToSlice())
}

// TestAssignFailureLeavesTarget: the new store is built before anything
// in the target changes.
func TestAssignFailureLeavesTarget(t *testing.T) {
	src := mustFrom(t, []int{1, 2, 3, 4})
	dst := mustFrom(t, []int{9}, vector.WithMaxCapacity(2))

	require.ErrorIs(t, dst.Assign(src), vector.ErrAllocationFailure)
	require.Equal(t, []int{9}, dst.ToSlice())
	require.Equal(t, 1, dst.Capacity())
}

// TestMoveAssign takes the store and empties the source.
func TestMoveAssign(t *testing.T) {
	src := mustFrom(t, []int{1, 2})
	dst := mustFrom(t, []int{7, 8, 9})

	require.NoError(t, dst.MoveAssign(src))
	require.Equal(t, []int{1, 2}, dst.ToSlice())
	require.Equal(t, 2, dst.Capacity())
	require.Zero(t, src.Size())
	require.Zero(t, src.Capacity())
}

// TestSwap exchanges contents and counters without copying.
func TestSwap(t *testing.T) {
	a := mustFrom(t, []int{1})
	b := mustFrom(t, []int{2, 3, 4})
	require.NoError(t, b.Reserve(5))
	pb := b.Ptr(0)

	a.Swap(b)
	require.Equal(t, []int{2, 3, 4}, a.ToSlice())
	require.Equal(t, 5, a.Capacity())
	require.Equal(t, []int{1}, b.ToSlice())
	require.Equal(t, 1, b.Capacity())
	require.Same(t, pb, a.Ptr(0))

	a.Swap(a)
	require.Equal(t, []int{2, 3, 4}, a.ToSlice())
}

// TestRelease drops the store.
func TestRelease(t *testing.T) {
	v := mustFrom(t, []int{1, 2})
	v.Release()
	require.Zero(t, v.Size())
	require.Zero(t, v.Capacity())
	pushAll(t, v, 3)
	require.Equal(t, []int{3}, v.ToSlice())
}
