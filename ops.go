package denseidx

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"iter"
)

// The functions in this file are the capability-gated half of the wrapper
// surface. Each one requires, in its constraints, the backend capability
// it forwards to; a wrapper over a backend without that capability cannot
// be passed to the function. Go methods cannot carry extra constraints,
// which is why these are package-level, in the manner of the std slices
// package.

// TryAt returns the element idx refers to, or the backend's out-of-range
// error.
func TryAt[I Strong, V any, C interface {
	Container[V]
	Checked[V]
}](d *Dense[I, V, C], idx I) (V, error) {
	return d.backend.TryAt(d.pos(idx))
}

// TrySet replaces the element idx refers to, or returns the backend's
// out-of-range error.
func TrySet[I Strong, V any, C interface {
	Container[V]
	Checked[V]
}](d *Dense[I, V, C], idx I, v V) error {
	return d.backend.TrySet(d.pos(idx), v)
}

// IsEmpty reports whether the wrapped collection has no elements.
func IsEmpty[I Strong, V any, C interface {
	Container[V]
	Emptier
}](d *Dense[I, V, C]) bool {
	return d.backend.IsEmpty()
}

// Capacity returns the backend's current capacity.
func Capacity[I Strong, V any, C interface {
	Container[V]
	Capacitor
}](d *Dense[I, V, C]) uint {
	return d.backend.Cap()
}

// Reserve pre-allocates backend capacity for at least n elements.
func Reserve[I Strong, V any, C interface {
	Container[V]
	Reserver
}](d *Dense[I, V, C], n uint) {
	d.backend.Reserve(n)
}

// ShrinkToFit releases excess backend capacity.
func ShrinkToFit[I Strong, V any, C interface {
	Container[V]
	Trimmer
}](d *Dense[I, V, C]) {
	d.backend.ShrinkToFit()
}

// Clear removes all elements. Previously minted indices of this domain
// become dangling, exactly as raw positions would.
func Clear[I Strong, V any, C interface {
	Container[V]
	Clearer
}](d *Dense[I, V, C]) {
	T().Debugf("denseidx: clearing %T, dropping %d elements", d.backend, d.backend.Len())
	d.backend.Clear()
}

// Push appends v and returns the minted index of its position, always the
// final one at the moment of the call.
func Push[I Strong, V any, C interface {
	Container[V]
	Appender[V]
}](d *Dense[I, V, C], v V) I {
	d.backend.Append(v)
	return I(d.backend.Len() - 1)
}

// Emplace appends a zero element and returns its minted index together
// with a pointer for in-place initialization. The pointer is valid only
// until the next mutation of the collection.
func Emplace[I Strong, V any, C interface {
	Container[V]
	Emplacer[V]
}](d *Dense[I, V, C]) (I, *V) {
	slot := d.backend.EmplaceBack()
	return I(d.backend.Len() - 1), slot
}

// PopBack removes and returns the last element; ok is false on an empty
// collection.
func PopBack[I Strong, V any, C interface {
	Container[V]
	Popper[V]
}](d *Dense[I, V, C]) (V, bool) {
	return d.backend.PopBack()
}

// Front returns the first element, failing as the backend fails when
// empty.
func Front[I Strong, V any, C interface {
	Container[V]
	FrontAccess[V]
}](d *Dense[I, V, C]) V {
	return d.backend.Front()
}

// Back returns the last element, failing as the backend fails when empty.
func Back[I Strong, V any, C interface {
	Container[V]
	BackAccess[V]
}](d *Dense[I, V, C]) V {
	return d.backend.Back()
}

// PushFront prepends v on a double-ended backend and returns its minted
// index — always position 0; all previously minted indices of this domain
// now refer to their successor elements.
func PushFront[I Strong, V any, C interface {
	Container[V]
	FrontEnder[V]
}](d *Dense[I, V, C], v V) I {
	d.backend.Prepend(v)
	return I(0)
}

// PopFront removes and returns the first element of a double-ended
// backend; ok is false on an empty collection.
func PopFront[I Strong, V any, C interface {
	Container[V]
	FrontEnder[V]
}](d *Dense[I, V, C]) (V, bool) {
	return d.backend.PopFront()
}

// Resize changes the collection length, filling new slots with the zero
// value.
func Resize[I Strong, V any, C interface {
	Container[V]
	Resizer[V]
}](d *Dense[I, V, C], n uint) {
	T().Debugf("denseidx: resizing %T from %d to %d", d.backend, d.backend.Len(), n)
	d.backend.Resize(n)
}

// ResizeWith changes the collection length, filling new slots with fill.
func ResizeWith[I Strong, V any, C interface {
	Container[V]
	Resizer[V]
}](d *Dense[I, V, C], n uint, fill V) {
	T().Debugf("denseidx: resizing %T from %d to %d", d.backend, d.backend.Len(), n)
	d.backend.ResizeWith(n, fill)
}

// Insert places v at the position at refers to, shifting that element and
// its successors. The returned index is minted from the position the
// backend reports for the inserted element.
func Insert[I Strong, V any, C interface {
	Container[V]
	Inserter[V]
}](d *Dense[I, V, C], at I, v V) I {
	pos := d.backend.Insert(d.pos(at), v)
	T().Debugf("denseidx: inserted into %T at position %d", d.backend, pos)
	return I(pos)
}

// InsertMany places vs in order at the position at refers to and returns
// the minted index of the first inserted element.
func InsertMany[I Strong, V any, C interface {
	Container[V]
	Inserter[V]
}](d *Dense[I, V, C], at I, vs ...V) I {
	pos := d.backend.Insert(d.pos(at), vs...)
	T().Debugf("denseidx: inserted %d elements into %T at position %d", len(vs), d.backend, pos)
	return I(pos)
}

// Erase removes the element at refers to. The returned index refers to
// the element that now occupies the erased slot, following the backend's
// repositioning semantics; it equals the new length when the tail was
// erased.
func Erase[I Strong, V any, C interface {
	Container[V]
	Eraser
}](d *Dense[I, V, C], at I) I {
	pos := d.backend.Erase(d.pos(at))
	T().Debugf("denseidx: erased from %T, next position %d", d.backend, pos)
	return I(pos)
}

// EraseRange removes the elements in [first, last). The returned index
// refers to the element that now occupies the first erased slot.
func EraseRange[I Strong, V any, C interface {
	Container[V]
	Eraser
}](d *Dense[I, V, C], first, last I) I {
	pos := d.backend.EraseRange(d.pos(first), d.pos(last))
	T().Debugf("denseidx: erased range from %T, next position %d", d.backend, pos)
	return I(pos)
}

// Data exposes the backend's contiguous element block. Mutations through
// the slice are visible to the wrapper; growing the slice is not.
func Data[I Strong, V any, C interface {
	Container[V]
	Viewer[V]
}](d *Dense[I, V, C]) []V {
	return d.backend.Data()
}

// Equal reports element-wise equality of two wrappers over the same
// backend type. The index domain is irrelevant to value equality; it is a
// type-level property. Defined only for comparable elements, the analog
// of gating wrapper equality on the backend's own equality.
func Equal[I Strong, V comparable, C Container[V]](a, b *Dense[I, V, C]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc reports element-wise equality of two wrappers under eq.
func EqualFunc[I Strong, V any, C Container[V]](a, b *Dense[I, V, C], eq func(V, V) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	next, stop := iter.Pull(b.Values())
	defer stop()
	for x := range a.Values() {
		y, ok := next()
		if !ok || !eq(x, y) {
			return false
		}
	}
	return true
}

// Compare orders two wrappers lexicographically, element-wise, in the
// manner of slices.Compare. Defined only for ordered elements.
func Compare[I Strong, V cmp.Ordered, C Container[V]](a, b *Dense[I, V, C]) int {
	next, stop := iter.Pull(b.Values())
	defer stop()
	for x := range a.Values() {
		y, ok := next()
		if !ok {
			return +1
		}
		if c := cmp.Compare(x, y); c != 0 {
			return c
		}
	}
	if _, ok := next(); ok {
		return -1
	}
	return 0
}
