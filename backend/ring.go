package backend

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"

	"github.com/npillmayer/denseidx"
)

// Ring is a double-ended positional collection over a ring buffer.
// Elements are addressed by their logical position, with position 0 at
// the front; pushing or popping at the front renumbers every element.
//
// Ring storage is not contiguous, so Ring has no raw-view capability —
// a wrapper over a Ring cannot be passed to denseidx.Data.
type Ring[V any] struct {
	buf  []V
	head uint
	n    uint
}

// Capability surface: everything except the raw view.
var (
	_ denseidx.Container[int]   = (*Ring[int])(nil)
	_ denseidx.Checked[int]     = (*Ring[int])(nil)
	_ denseidx.Emptier          = (*Ring[int])(nil)
	_ denseidx.Capacitor        = (*Ring[int])(nil)
	_ denseidx.Reserver         = (*Ring[int])(nil)
	_ denseidx.Clearer          = (*Ring[int])(nil)
	_ denseidx.Appender[int]    = (*Ring[int])(nil)
	_ denseidx.Emplacer[int]    = (*Ring[int])(nil)
	_ denseidx.Popper[int]      = (*Ring[int])(nil)
	_ denseidx.FrontAccess[int] = (*Ring[int])(nil)
	_ denseidx.BackAccess[int]  = (*Ring[int])(nil)
	_ denseidx.FrontEnder[int]  = (*Ring[int])(nil)
	_ denseidx.Resizer[int]     = (*Ring[int])(nil)
	_ denseidx.Inserter[int]    = (*Ring[int])(nil)
	_ denseidx.Eraser           = (*Ring[int])(nil)
	_ denseidx.Trimmer          = (*Ring[int])(nil)
)

var _ denseidx.Cloner[*Ring[int]] = (*Ring[int])(nil)

// NewRing creates an empty ring.
func NewRing[V any]() *Ring[V] {
	return &Ring[V]{}
}

// RingOf creates a ring holding vs, in order, front to back.
func RingOf[V any](vs ...V) *Ring[V] {
	r := &Ring[V]{}
	for _, v := range vs {
		r.Append(v)
	}
	return r
}

// slot maps a logical position to a buffer offset. Callers check bounds;
// the modulus requires a non-empty buffer.
func (r *Ring[V]) slot(pos uint) uint {
	return (r.head + pos) % uint(len(r.buf))
}

// grow relocates into a linearized buffer with capacity at least min.
func (r *Ring[V]) grow(min uint) {
	newCap := uint(len(r.buf)) * 2
	if newCap < 4 {
		newCap = 4
	}
	for newCap < min {
		newCap *= 2
	}
	r.relocate(newCap)
}

func (r *Ring[V]) relocate(capacity uint) {
	buf := make([]V, capacity)
	for i := uint(0); i < r.n; i++ {
		buf[i] = r.buf[r.slot(i)]
	}
	r.buf = buf
	r.head = 0
}

// At returns the element at pos, panicking on a bad position.
func (r *Ring[V]) At(pos uint) V {
	assert(pos < r.n, "ring: position out of range")
	return r.buf[r.slot(pos)]
}

// Set replaces the element at pos, panicking on a bad position.
func (r *Ring[V]) Set(pos uint, val V) {
	assert(pos < r.n, "ring: position out of range")
	r.buf[r.slot(pos)] = val
}

// Len returns the number of elements.
func (r *Ring[V]) Len() uint {
	return r.n
}

// All iterates elements front to back.
func (r *Ring[V]) All() iter.Seq2[uint, V] {
	return func(yield func(uint, V) bool) {
		for i := uint(0); i < r.n; i++ {
			if !yield(i, r.buf[r.slot(i)]) {
				return
			}
		}
	}
}

// TryAt returns the element at pos, or ErrOutOfRange.
func (r *Ring[V]) TryAt(pos uint) (V, error) {
	if pos >= r.n {
		var zero V
		return zero, fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, pos, r.n)
	}
	return r.buf[r.slot(pos)], nil
}

// TrySet replaces the element at pos, or returns ErrOutOfRange.
func (r *Ring[V]) TrySet(pos uint, val V) error {
	if pos >= r.n {
		return fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, pos, r.n)
	}
	r.buf[r.slot(pos)] = val
	return nil
}

// IsEmpty reports whether the ring has no elements.
func (r *Ring[V]) IsEmpty() bool {
	return r.n == 0
}

// Cap returns the current buffer capacity.
func (r *Ring[V]) Cap() uint {
	return uint(len(r.buf))
}

// Reserve grows capacity to at least n elements without changing length.
func (r *Ring[V]) Reserve(n uint) {
	if uint(len(r.buf)) >= n {
		return
	}
	r.relocate(n)
}

// Clear removes all elements, keeping capacity.
func (r *Ring[V]) Clear() {
	clear(r.buf)
	r.head = 0
	r.n = 0
}

// Append adds val at the back.
func (r *Ring[V]) Append(val V) {
	if r.n == uint(len(r.buf)) {
		r.grow(r.n + 1)
	}
	r.buf[r.slot(r.n)] = val
	r.n++
}

// EmplaceBack appends a zero element and returns a pointer into the
// buffer, valid until the next mutation.
func (r *Ring[V]) EmplaceBack() *V {
	if r.n == uint(len(r.buf)) {
		r.grow(r.n + 1)
	}
	s := r.slot(r.n)
	var zero V
	r.buf[s] = zero
	r.n++
	return &r.buf[s]
}

// PopBack removes and returns the last element; ok is false when empty.
func (r *Ring[V]) PopBack() (V, bool) {
	if r.n == 0 {
		var zero V
		return zero, false
	}
	s := r.slot(r.n - 1)
	val := r.buf[s]
	var zero V
	r.buf[s] = zero
	r.n--
	return val, true
}

// Prepend adds val at the front, renumbering all elements.
func (r *Ring[V]) Prepend(val V) {
	if r.n == uint(len(r.buf)) {
		r.grow(r.n + 1)
	}
	capacity := uint(len(r.buf))
	r.head = (r.head + capacity - 1) % capacity
	r.buf[r.head] = val
	r.n++
}

// PopFront removes and returns the first element; ok is false when empty.
func (r *Ring[V]) PopFront() (V, bool) {
	if r.n == 0 {
		var zero V
		return zero, false
	}
	val := r.buf[r.head]
	var zero V
	r.buf[r.head] = zero
	r.head = (r.head + 1) % uint(len(r.buf))
	r.n--
	if r.n == 0 {
		r.head = 0
	}
	return val, true
}

// Front returns the first element, panicking when empty.
func (r *Ring[V]) Front() V {
	return r.At(0)
}

// Back returns the last element, panicking when empty.
func (r *Ring[V]) Back() V {
	return r.At(r.n - 1)
}

// Resize changes length to n, filling new slots with the zero value.
func (r *Ring[V]) Resize(n uint) {
	var zero V
	r.ResizeWith(n, zero)
}

// ResizeWith changes length to n, filling new slots with fill.
func (r *Ring[V]) ResizeWith(n uint, fill V) {
	for r.n > n {
		r.PopBack()
	}
	for r.n < n {
		r.Append(fill)
	}
}

// Insert places vs at pos, shifting successors. Returns the position of
// the first inserted element. Relocates into a linearized buffer.
func (r *Ring[V]) Insert(pos uint, vs ...V) uint {
	assert(pos <= r.n, "ring: insert position out of range")
	if len(vs) == 0 {
		return pos
	}
	need := r.n + uint(len(vs))
	capacity := uint(len(r.buf))
	if capacity < need {
		capacity = need
	}
	buf := make([]V, capacity)
	for i := uint(0); i < pos; i++ {
		buf[i] = r.buf[r.slot(i)]
	}
	copy(buf[pos:], vs)
	for i := pos; i < r.n; i++ {
		buf[i+uint(len(vs))] = r.buf[r.slot(i)]
	}
	r.buf = buf
	r.head = 0
	r.n = need
	return pos
}

// Erase removes the element at pos and returns the position of its
// successor, which now occupies the erased slot.
func (r *Ring[V]) Erase(pos uint) uint {
	return r.EraseRange(pos, pos+1)
}

// EraseRange removes the elements in [first, last) and returns the
// position of the element now occupying the first erased slot.
func (r *Ring[V]) EraseRange(first, last uint) uint {
	assert(first <= last && last <= r.n, "ring: erase range out of range")
	k := last - first
	if k == 0 {
		return first
	}
	for i := first; i+k < r.n; i++ {
		r.buf[r.slot(i)] = r.buf[r.slot(i+k)]
	}
	var zero V
	for i := r.n - k; i < r.n; i++ {
		r.buf[r.slot(i)] = zero
	}
	r.n -= k
	return first
}

// ShrinkToFit relocates into an exact-length buffer.
func (r *Ring[V]) ShrinkToFit() {
	if uint(len(r.buf)) == r.n {
		return
	}
	r.relocate(r.n)
}

// Clone returns a deep, linearized copy sharing no storage.
func (r *Ring[V]) Clone() *Ring[V] {
	buf := make([]V, r.n)
	for i := uint(0); i < r.n; i++ {
		buf[i] = r.buf[r.slot(i)]
	}
	return &Ring[V]{buf: buf, n: r.n}
}
