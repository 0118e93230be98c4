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

// Fixed is a fixed-capacity positional collection: its length is chosen
// at construction and never changes. It deliberately opts out of every
// growth, capacity and structural-mutation capability, so a wrapper over
// a Fixed exposes element access only — the gated operations of denseidx
// reject it at compile time.
type Fixed[V any] struct {
	items []V
}

// Capability surface: baseline plus checked access, front/back and a raw
// view. Nothing structural.
var (
	_ denseidx.Container[int]   = (*Fixed[int])(nil)
	_ denseidx.Checked[int]     = (*Fixed[int])(nil)
	_ denseidx.Emptier          = (*Fixed[int])(nil)
	_ denseidx.FrontAccess[int] = (*Fixed[int])(nil)
	_ denseidx.BackAccess[int]  = (*Fixed[int])(nil)
	_ denseidx.Viewer[int]      = (*Fixed[int])(nil)
)

var _ denseidx.Cloner[*Fixed[int]] = (*Fixed[int])(nil)

// NewFixed creates a collection of n zero elements.
func NewFixed[V any](n uint) *Fixed[V] {
	return &Fixed[V]{items: make([]V, n)}
}

// FixedOf creates a collection holding exactly vs.
func FixedOf[V any](vs ...V) *Fixed[V] {
	return &Fixed[V]{items: append([]V(nil), vs...)}
}

// At returns the element at pos; a bad position panics like a slice
// subscript.
func (f *Fixed[V]) At(pos uint) V {
	return f.items[pos]
}

// Set replaces the element at pos.
func (f *Fixed[V]) Set(pos uint, val V) {
	f.items[pos] = val
}

// Len returns the fixed element count.
func (f *Fixed[V]) Len() uint {
	return uint(len(f.items))
}

// All iterates elements in position order.
func (f *Fixed[V]) All() iter.Seq2[uint, V] {
	return func(yield func(uint, V) bool) {
		for i, item := range f.items {
			if !yield(uint(i), item) {
				return
			}
		}
	}
}

// TryAt returns the element at pos, or ErrOutOfRange.
func (f *Fixed[V]) TryAt(pos uint) (V, error) {
	if pos >= uint(len(f.items)) {
		var zero V
		return zero, fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, pos, len(f.items))
	}
	return f.items[pos], nil
}

// TrySet replaces the element at pos, or returns ErrOutOfRange.
func (f *Fixed[V]) TrySet(pos uint, val V) error {
	if pos >= uint(len(f.items)) {
		return fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, pos, len(f.items))
	}
	f.items[pos] = val
	return nil
}

// IsEmpty reports whether the collection was created with zero slots.
func (f *Fixed[V]) IsEmpty() bool {
	return len(f.items) == 0
}

// Front returns the first element, panicking when empty.
func (f *Fixed[V]) Front() V {
	return f.items[0]
}

// Back returns the last element, panicking when empty.
func (f *Fixed[V]) Back() V {
	return f.items[len(f.items)-1]
}

// Fill sets every slot to val.
func (f *Fixed[V]) Fill(val V) {
	for i := range f.items {
		f.items[i] = val
	}
}

// Data exposes the backing slice. Element mutations through it are
// visible to the collection.
func (f *Fixed[V]) Data() []V {
	return f.items
}

// Clone returns a deep copy sharing no storage with the receiver.
func (f *Fixed[V]) Clone() *Fixed[V] {
	return &Fixed[V]{items: slices.Clone(f.items)}
}
