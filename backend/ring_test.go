package backend_test

import (
	"testing"

	"github.com/npillmayer/denseidx/backend"
	"github.com/stretchr/testify/require"
)

func collect[V any](r *backend.Ring[V]) []V {
	out := make([]V, 0, r.Len())
	for _, v := range r.All() {
		out = append(out, v)
	}
	return out
}

func TestRingPushPopBothEnds(t *testing.T) {
	r := backend.NewRing[int]()
	require.True(t, r.IsEmpty())

	r.Append(2)
	r.Append(3)
	r.Prepend(1)
	require.Equal(t, []int{1, 2, 3}, collect(r))
	require.Equal(t, 1, r.Front())
	require.Equal(t, 3, r.Back())

	front, ok := r.PopFront()
	require.True(t, ok)
	require.Equal(t, 1, front)
	back, ok := r.PopBack()
	require.True(t, ok)
	require.Equal(t, 3, back)
	require.Equal(t, []int{2}, collect(r))

	r.PopBack()
	_, ok = r.PopBack()
	require.False(t, ok)
	_, ok = r.PopFront()
	require.False(t, ok)
}

func TestRingWrapAroundAddressing(t *testing.T) {
	r := backend.RingOf(0, 1, 2, 3, 4, 5, 6, 7)
	// Rotate so the head sits mid-buffer, then refill over the seam.
	for i := 0; i < 5; i++ {
		r.PopFront()
		r.Append(100 + i)
	}
	want := []int{5, 6, 7, 100, 101, 102, 103, 104}
	require.Equal(t, want, collect(r))
	for i, expect := range want {
		require.Equal(t, expect, r.At(uint(i)))
	}
	r.Set(7, 999)
	require.Equal(t, 999, r.Back())
}

func TestRingCheckedAccess(t *testing.T) {
	r := backend.RingOf("a")
	_, err := r.TryAt(1)
	require.ErrorIs(t, err, backend.ErrOutOfRange)
	require.ErrorIs(t, r.TrySet(5, "x"), backend.ErrOutOfRange)
	got, err := r.TryAt(0)
	require.NoError(t, err)
	require.Equal(t, "a", got)
	require.Panics(t, func() { r.At(1) })
	require.Panics(t, func() { backend.NewRing[string]().At(0) })
}

func TestRingInsertErase(t *testing.T) {
	r := backend.RingOf(1, 2, 5)
	r.Prepend(0) // move head off slot 0 first
	pos := r.Insert(3, 3, 4)
	require.EqualValues(t, 3, pos)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, collect(r))

	pos = r.Erase(0)
	require.EqualValues(t, 0, pos)
	require.Equal(t, []int{1, 2, 3, 4, 5}, collect(r))

	pos = r.EraseRange(1, 4)
	require.EqualValues(t, 1, pos)
	require.Equal(t, []int{1, 5}, collect(r))
}

func TestRingResizeReserveShrink(t *testing.T) {
	r := backend.NewRing[int]()
	r.Reserve(16)
	require.EqualValues(t, 16, r.Cap())
	r.ResizeWith(3, 7)
	require.Equal(t, []int{7, 7, 7}, collect(r))
	r.Resize(1)
	require.Equal(t, []int{7}, collect(r))
	r.ShrinkToFit()
	require.EqualValues(t, 1, r.Cap())
	r.Clear()
	require.True(t, r.IsEmpty())
	require.EqualValues(t, 1, r.Cap())
}

func TestRingEmplaceBack(t *testing.T) {
	r := backend.RingOf(1)
	slot := r.EmplaceBack()
	*slot = 2
	require.Equal(t, []int{1, 2}, collect(r))
}

func TestRingCloneLinearizes(t *testing.T) {
	r := backend.RingOf(1, 2, 3, 4)
	r.PopFront()
	r.Append(5)
	c := r.Clone()
	require.Equal(t, collect(r), collect(c))
	c.Set(0, 99)
	require.Equal(t, 2, r.At(0))
}
