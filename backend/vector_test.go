package backend_test

import (
	"slices"
	"testing"

	"github.com/npillmayer/denseidx/backend"
	"github.com/stretchr/testify/require"
)

func TestVectorConstructors(t *testing.T) {
	require.EqualValues(t, 0, backend.NewVector[int]().Len())
	require.Equal(t, []int{1, 2, 3}, backend.VectorOf(1, 2, 3).Data())
	require.Equal(t, []int{0, 0}, backend.VectorN[int](2).Data())
	require.Equal(t, []string{"x", "x"}, backend.VectorNOf(2, "x").Data())
	seq := slices.Values([]int{4, 5})
	require.Equal(t, []int{4, 5}, backend.VectorFromSeq(seq).Data())
}

func TestVectorAccess(t *testing.T) {
	v := backend.VectorOf("a", "b", "c")
	require.Equal(t, "b", v.At(1))
	v.Set(1, "B")
	require.Equal(t, "B", v.At(1))
	require.Equal(t, "a", v.Front())
	require.Equal(t, "c", v.Back())

	_, err := v.TryAt(3)
	require.ErrorIs(t, err, backend.ErrOutOfRange)
	require.ErrorIs(t, v.TrySet(9, "x"), backend.ErrOutOfRange)
	got, err := v.TryAt(0)
	require.NoError(t, err)
	require.Equal(t, "a", got)

	require.Panics(t, func() { v.At(3) })
}

func TestVectorGrowthAndCapacity(t *testing.T) {
	v := backend.NewVector[int]()
	require.True(t, v.IsEmpty())
	v.Reserve(10)
	require.GreaterOrEqual(t, v.Cap(), uint(10))
	v.Append(1)
	v.Append(2)
	require.False(t, v.IsEmpty())
	require.EqualValues(t, 2, v.Len())

	slot := v.EmplaceBack()
	*slot = 3
	require.Equal(t, []int{1, 2, 3}, v.Data())

	last, ok := v.PopBack()
	require.True(t, ok)
	require.Equal(t, 3, last)

	v.ShrinkToFit()
	require.EqualValues(t, 2, v.Cap())

	v.Clear()
	require.EqualValues(t, 0, v.Len())
	_, ok = v.PopBack()
	require.False(t, ok)
}

func TestVectorInsertErase(t *testing.T) {
	v := backend.VectorOf(1, 2, 5)
	pos := v.Insert(2, 3, 4)
	require.EqualValues(t, 2, pos)
	require.Equal(t, []int{1, 2, 3, 4, 5}, v.Data())

	pos = v.Erase(0)
	require.EqualValues(t, 0, pos)
	require.Equal(t, []int{2, 3, 4, 5}, v.Data())

	pos = v.EraseRange(1, 3)
	require.EqualValues(t, 1, pos)
	require.Equal(t, []int{2, 5}, v.Data())
}

func TestVectorResize(t *testing.T) {
	v := backend.VectorOf(1, 2)
	v.ResizeWith(4, 7)
	require.Equal(t, []int{1, 2, 7, 7}, v.Data())
	v.Resize(1)
	require.Equal(t, []int{1}, v.Data())
	v.Resize(3)
	require.Equal(t, []int{1, 0, 0}, v.Data())
}

func TestVectorCloneIsIndependent(t *testing.T) {
	v := backend.VectorOf(1, 2)
	c := v.Clone()
	c.Append(3)
	c.Set(0, 9)
	require.Equal(t, []int{1, 2}, v.Data())
	require.Equal(t, []int{9, 2, 3}, c.Data())
}

func TestVectorIteration(t *testing.T) {
	v := backend.VectorOf("a", "b")
	var positions []uint
	var items []string
	for pos, item := range v.All() {
		positions = append(positions, pos)
		items = append(items, item)
	}
	require.Equal(t, []uint{0, 1}, positions)
	require.Equal(t, []string{"a", "b"}, items)
}
