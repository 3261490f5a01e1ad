package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplevector/vector"
)

// TestIteratorWalk walks Begin→End and writes through the iterator.
func TestIteratorWalk(t *testing.T) {
	v := mustFrom(t, []int{1, 2, 3})

	var got []int
	for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
		got = append(got, it.Value())
		it.Set(it.Value() * 10)
	}
	require.Equal(t, []int{1, 2, 3}, got)
	require.Equal(t, []int{10, 20, 30}, v.ToSlice())
	require.Equal(t, 3, v.Begin().Distance(v.End()))
	require.True(t, v.Begin().Less(v.End()))
	require.Equal(t, 30, v.End().Prev().Value())
	*v.Begin().Add(1).Ptr() = 7
	require.Equal(t, 7, v.Get(1))
}

// TestIteratorEmptyRange: Begin and End coincide on empty Vectors.
func TestIteratorEmptyRange(t *testing.T) {
	v := vector.New[int]()
	require.True(t, v.Begin().Equal(v.End()))

	r, err := vector.NewReserved[int](vector.Reserve(4))
	require.NoError(t, err)
	require.True(t, r.Begin().Equal(r.End()))
	require.False(t, r.Begin().Equal(v.Begin()), "iterators of different vectors never compare equal")
}

// TestIteratorInvalidation: size changes and reallocation make iterators stale.
func TestIteratorInvalidation(t *testing.T) {
	v := mustFrom(t, []int{1, 2})
	it := v.Begin()
	require.True(t, it.Valid())

	it.Set(5) // writes do not invalidate
	require.True(t, it.Valid())

	pushAll(t, v, 3)
	require.False(t, it.Valid())

	_, err := v.InsertIter(it, 0)
	require.ErrorIs(t, err, vector.ErrStaleIterator)
	_, err = v.EraseIter(it)
	require.ErrorIs(t, err, vector.ErrStaleIterator)

	it = v.Begin()
	v.Clear()
	require.False(t, it.Valid())
}

// TestIteratorForeign rejects iterators of another Vector.
func TestIteratorForeign(t *testing.T) {
	a := mustFrom(t, []int{1})
	b := mustFrom(t, []int{2})

	_, err := a.InsertIter(b.Begin(), 0)
	require.ErrorIs(t, err, vector.ErrForeignIterator)
	_, err = a.EraseIter(b.Begin())
	require.ErrorIs(t, err, vector.ErrForeignIterator)
}

// TestInsertEraseIterScenario runs the push/insert/erase scenario through
// iterators.
func TestInsertEraseIterScenario(t *testing.T) {
	v := vector.New[int]()
	pushAll(t, v, 10, 20)

	it, err := v.InsertIter(v.Begin().Add(1), 15)
	require.NoError(t, err)
	require.True(t, it.Valid())
	require.Equal(t, 15, it.Value())
	require.Equal(t, []int{10, 15, 20}, v.ToSlice())

	it, err = v.EraseIter(v.Begin().Add(1))
	require.NoError(t, err)
	require.Equal(t, 20, it.Value())
	require.Equal(t, []int{10, 20}, v.ToSlice())

	it, err = v.EraseIter(v.End().Prev())
	require.NoError(t, err)
	require.True(t, it.Equal(v.End()))

	_, err = v.EraseIter(v.End())
	require.ErrorIs(t, err, vector.ErrOutOfRange)
}

// TestRangeSequences covers All, Values, Backward and early exit.
func TestRangeSequences(t *testing.T) {
	v := mustFrom(t, []string{"a", "b", "c"})

	var idx []int
	var vals []string
	for i, x := range v.All() {
		idx = append(idx, i)
		vals = append(vals, x)
	}
	require.Equal(t, []int{0, 1, 2}, idx)
	require.Equal(t, []string{"a", "b", "c"}, vals)

	var back []string
	for _, x := range v.Backward() {
		back = append(back, x)
	}
	require.Equal(t, []string{"c", "b", "a"}, back)

	var first []string
	for x := range v.Values() {
		first = append(first, x)
		break
	}
	require.Equal(t, []string{"a"}, first)
}
