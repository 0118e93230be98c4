package denseidx

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "iter"

// Container is the baseline contract every wrappable backend must satisfy:
// random positional read and write, a length query, and forward iteration.
// A collection without positional access cannot be wrapped at all.
//
// Positions are raw unsigned offsets from the start of the collection.
// At and Set fail however the backend fails on a bad position (typically a
// panic); bounds-diagnosing access is the separate Checked capability.
type Container[V any] interface {
	At(pos uint) V
	Set(pos uint, v V)
	Len() uint
	All() iter.Seq2[uint, V]
}

// The optional capabilities below each gate one group of wrapper
// operations. A backend opts in by implementing the methods; the gated
// package-level functions of this package name the capability in their
// constraints, so calling an operation the backend lacks is a compile
// error, not a run-time one.

// Checked marks backends with bounds-diagnosing access: a bad position
// yields an error instead of a panic.
type Checked[V any] interface {
	TryAt(pos uint) (V, error)
	TrySet(pos uint, v V) error
}

// Emptier marks backends with an emptiness query.
type Emptier interface {
	IsEmpty() bool
}

// Capacitor marks backends with a capacity notion.
type Capacitor interface {
	Cap() uint
}

// Reserver marks backends that can pre-allocate capacity.
type Reserver interface {
	Reserve(n uint)
}

// Clearer marks backends with bulk removal of all elements.
type Clearer interface {
	Clear()
}

// Appender marks backends growable at the end.
type Appender[V any] interface {
	Append(v V)
}

// Emplacer marks backends that can grow by a zero element and hand out a
// pointer to it for in-place initialization. The pointer is valid only
// until the next mutation of the backend.
type Emplacer[V any] interface {
	EmplaceBack() *V
}

// Popper marks backends shrinkable at the end.
type Popper[V any] interface {
	PopBack() (V, bool)
}

// FrontAccess marks backends with first-element access.
type FrontAccess[V any] interface {
	Front() V
}

// BackAccess marks backends with last-element access.
type BackAccess[V any] interface {
	Back() V
}

// FrontEnder marks double-ended backends: growth and shrinkage at the
// front, renumbering all existing positions by one.
type FrontEnder[V any] interface {
	Prepend(v V)
	PopFront() (V, bool)
}

// Resizer marks backends that can change length, filling new slots with
// the zero value or an explicit fill element.
type Resizer[V any] interface {
	Resize(n uint)
	ResizeWith(n uint, fill V)
}

// Inserter marks backends with arbitrary-position insertion. Insert
// returns the position of the first inserted element, following the
// backend's own repositioning semantics.
type Inserter[V any] interface {
	Insert(pos uint, vs ...V) uint
}

// Eraser marks backends with arbitrary-position erasure. Both forms return
// the position of the element that now occupies the erased slot (the
// length of the collection when the tail was erased).
type Eraser interface {
	Erase(pos uint) uint
	EraseRange(first, last uint) uint
}

// Viewer marks backends whose elements live in one contiguous block and
// can be exposed as a slice. Mutations through the view are visible to the
// backend; growing the view is not.
type Viewer[V any] interface {
	Data() []V
}

// Trimmer marks backends that can release excess capacity.
type Trimmer interface {
	ShrinkToFit()
}

// Cloner marks backends that support copy construction.
type Cloner[C any] interface {
	Clone() C
}
