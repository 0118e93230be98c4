package backend

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"slices"

	"github.com/npillmayer/denseidx"
)

// Vector is a growable positional collection backed by a slice. It
// implements the complete optional capability surface of denseidx.
//
// The zero value is an empty vector ready for use, but Vector is handed
// around as *Vector: the mutating capabilities need pointer receivers.
type Vector[V any] struct {
	items []V
}

// Capability surface.
var (
	_ denseidx.Container[int]   = (*Vector[int])(nil)
	_ denseidx.Checked[int]     = (*Vector[int])(nil)
	_ denseidx.Emptier          = (*Vector[int])(nil)
	_ denseidx.Capacitor        = (*Vector[int])(nil)
	_ denseidx.Reserver         = (*Vector[int])(nil)
	_ denseidx.Clearer          = (*Vector[int])(nil)
	_ denseidx.Appender[int]    = (*Vector[int])(nil)
	_ denseidx.Emplacer[int]    = (*Vector[int])(nil)
	_ denseidx.Popper[int]      = (*Vector[int])(nil)
	_ denseidx.FrontAccess[int] = (*Vector[int])(nil)
	_ denseidx.BackAccess[int]  = (*Vector[int])(nil)
	_ denseidx.Resizer[int]     = (*Vector[int])(nil)
	_ denseidx.Inserter[int]    = (*Vector[int])(nil)
	_ denseidx.Eraser           = (*Vector[int])(nil)
	_ denseidx.Viewer[int]      = (*Vector[int])(nil)
	_ denseidx.Trimmer          = (*Vector[int])(nil)
)

var _ denseidx.Cloner[*Vector[int]] = (*Vector[int])(nil)

// NewVector creates an empty vector.
func NewVector[V any]() *Vector[V] {
	return &Vector[V]{}
}

// VectorOf creates a vector holding vs, in order.
func VectorOf[V any](vs ...V) *Vector[V] {
	return &Vector[V]{items: append([]V(nil), vs...)}
}

// VectorN creates a vector of n zero elements.
func VectorN[V any](n uint) *Vector[V] {
	return &Vector[V]{items: make([]V, n)}
}

// VectorNOf creates a vector of n copies of fill.
func VectorNOf[V any](n uint, fill V) *Vector[V] {
	items := make([]V, n)
	for i := range items {
		items[i] = fill
	}
	return &Vector[V]{items: items}
}

// VectorFromSeq creates a vector from an iterator, in iteration order.
func VectorFromSeq[V any](seq iter.Seq[V]) *Vector[V] {
	v := &Vector[V]{}
	for item := range seq {
		v.items = append(v.items, item)
	}
	return v
}

// At returns the element at pos; a bad position panics like a slice
// subscript.
func (v *Vector[V]) At(pos uint) V {
	return v.items[pos]
}

// Set replaces the element at pos.
func (v *Vector[V]) Set(pos uint, val V) {
	v.items[pos] = val
}

// Len returns the number of elements.
func (v *Vector[V]) Len() uint {
	return uint(len(v.items))
}

// All iterates elements in position order.
func (v *Vector[V]) All() iter.Seq2[uint, V] {
	return func(yield func(uint, V) bool) {
		for i, item := range v.items {
			if !yield(uint(i), item) {
				return
			}
		}
	}
}

// TryAt returns the element at pos, or ErrOutOfRange.
func (v *Vector[V]) TryAt(pos uint) (V, error) {
	if pos >= uint(len(v.items)) {
		var zero V
		return zero, fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, pos, len(v.items))
	}
	return v.items[pos], nil
}

// TrySet replaces the element at pos, or returns ErrOutOfRange.
func (v *Vector[V]) TrySet(pos uint, val V) error {
	if pos >= uint(len(v.items)) {
		return fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, pos, len(v.items))
	}
	v.items[pos] = val
	return nil
}

// IsEmpty reports whether the vector has no elements.
func (v *Vector[V]) IsEmpty() bool {
	return len(v.items) == 0
}

// Cap returns the current capacity.
func (v *Vector[V]) Cap() uint {
	return uint(cap(v.items))
}

// Reserve grows capacity to at least n elements without changing length.
func (v *Vector[V]) Reserve(n uint) {
	if uint(cap(v.items)) >= n {
		return
	}
	items := make([]V, len(v.items), n)
	copy(items, v.items)
	v.items = items
}

// Clear removes all elements, keeping capacity.
func (v *Vector[V]) Clear() {
	clear(v.items)
	v.items = v.items[:0]
}

// Append adds val at the end.
func (v *Vector[V]) Append(val V) {
	v.items = append(v.items, val)
}

// EmplaceBack appends a zero element and returns a pointer to it, valid
// until the next mutation.
func (v *Vector[V]) EmplaceBack() *V {
	var zero V
	v.items = append(v.items, zero)
	return &v.items[len(v.items)-1]
}

// PopBack removes and returns the last element; ok is false when empty.
func (v *Vector[V]) PopBack() (V, bool) {
	if len(v.items) == 0 {
		var zero V
		return zero, false
	}
	last := len(v.items) - 1
	val := v.items[last]
	clear(v.items[last:])
	v.items = v.items[:last]
	return val, true
}

// Front returns the first element, panicking when empty.
func (v *Vector[V]) Front() V {
	return v.items[0]
}

// Back returns the last element, panicking when empty.
func (v *Vector[V]) Back() V {
	return v.items[len(v.items)-1]
}

// Resize changes length to n, filling new slots with the zero value.
func (v *Vector[V]) Resize(n uint) {
	var zero V
	v.ResizeWith(n, zero)
}

// ResizeWith changes length to n, filling new slots with fill.
func (v *Vector[V]) ResizeWith(n uint, fill V) {
	if n <= uint(len(v.items)) {
		clear(v.items[n:])
		v.items = v.items[:n]
		return
	}
	for uint(len(v.items)) < n {
		v.items = append(v.items, fill)
	}
}

// Insert places vs at pos, shifting successors. Returns the position of
// the first inserted element. A pos past the length panics like
// slices.Insert.
func (v *Vector[V]) Insert(pos uint, vs ...V) uint {
	v.items = slices.Insert(v.items, int(pos), vs...)
	return pos
}

// Erase removes the element at pos and returns the position of its
// successor, which now occupies the erased slot.
func (v *Vector[V]) Erase(pos uint) uint {
	v.items = slices.Delete(v.items, int(pos), int(pos)+1)
	return pos
}

// EraseRange removes the elements in [first, last) and returns the
// position of the element now occupying the first erased slot.
func (v *Vector[V]) EraseRange(first, last uint) uint {
	v.items = slices.Delete(v.items, int(first), int(last))
	return first
}

// Data exposes the backing slice. Element mutations through it are
// visible; appends to it are not.
func (v *Vector[V]) Data() []V {
	return v.items
}

// ShrinkToFit reallocates to exact length, releasing spare capacity.
func (v *Vector[V]) ShrinkToFit() {
	if cap(v.items) == len(v.items) {
		return
	}
	items := make([]V, len(v.items))
	copy(items, v.items)
	v.items = items
}

// Clone returns a deep copy sharing no storage with the receiver.
func (v *Vector[V]) Clone() *Vector[V] {
	return &Vector[V]{items: slices.Clone(v.items)}
}
