package denseidx

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
	"reflect"
)

// Dense decorates a backend collection with domain-index access. It owns
// its backend exclusively: every positional operation flows through an
// index of type I, translated to a raw position at the boundary, and
// every operation that introduces an element mints a fresh I for it.
//
// Dense stores nothing beyond the backend and the resolved extraction
// shape; wrapping changes no element layout. The domain is a type-level
// property only — it never participates in value equality.
//
// Methods on Dense are the operations every wrappable backend has. The
// capability-gated operations (Push, Insert, Erase, Resize, ...) are
// package-level functions constrained on the backend's capabilities.
//
// A Dense is created through Wrap, WrapCopy, or MustWrap.
type Dense[I Strong, V any, C Container[V]] struct {
	backend C
	extract func(I) uint
}

// Wrap decorates backend with domain-index access, taking ownership: the
// caller must not retain direct references to the backend (Underlying is
// the sanctioned escape hatch). The index type's extraction shape is
// resolved here, once.
//
// Wrap fails with ErrRawIndexType when I is a predeclared unsigned type;
// see the Strong contract.
func Wrap[I Strong, V any, C Container[V]](backend C) (*Dense[I, V, C], error) {
	if err := checkIndexType[I](); err != nil {
		return nil, err
	}
	T().Debugf("denseidx: wrapping %T, index domain %s", backend, reflect.TypeFor[I]())
	return &Dense[I, V, C]{
		backend: backend,
		extract: resolveExtract[I](),
	}, nil
}

// WrapCopy decorates a copy of backend, leaving the original to the
// caller. Gated on the backend's copy-construction capability.
func WrapCopy[I Strong, V any, C interface {
	Container[V]
	Cloner[C]
}](backend C) (*Dense[I, V, C], error) {
	return Wrap[I, V](backend.Clone())
}

// MustWrap is Wrap for call sites where the index type is statically known
// to be a proper domain type; it panics on a contract violation.
func MustWrap[I Strong, V any, C Container[V]](backend C) *Dense[I, V, C] {
	d, err := Wrap[I, V](backend)
	if err != nil {
		panic(err)
	}
	return d
}

// pos translates a domain index to the backend's raw position.
func (d *Dense[I, V, C]) pos(idx I) uint {
	if d.extract == nil { // zero-value Dense, e.g. from new()
		d.extract = resolveExtract[I]()
	}
	return d.extract(idx)
}

// At returns the element idx refers to, failing exactly as the backend's
// positional access fails on an out-of-range position.
func (d *Dense[I, V, C]) At(idx I) V {
	return d.backend.At(d.pos(idx))
}

// Set replaces the element idx refers to.
func (d *Dense[I, V, C]) Set(idx I, v V) {
	d.backend.Set(d.pos(idx), v)
}

// Len returns the number of elements.
func (d *Dense[I, V, C]) Len() uint {
	return d.backend.Len()
}

// All iterates the collection in position order, minting the domain index
// of each element.
func (d *Dense[I, V, C]) All() iter.Seq2[I, V] {
	return func(yield func(I, V) bool) {
		for pos, v := range d.backend.All() {
			if !yield(I(pos), v) {
				return
			}
		}
	}
}

// Values iterates the elements in position order.
func (d *Dense[I, V, C]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range d.backend.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// From iterates the collection starting at idx, minting domain indices.
// An idx at or past the end yields nothing.
func (d *Dense[I, V, C]) From(idx I) iter.Seq2[I, V] {
	start := d.pos(idx)
	return func(yield func(I, V) bool) {
		for pos, v := range d.backend.All() {
			if pos < start {
				continue
			}
			if !yield(I(pos), v) {
				return
			}
		}
	}
}

// Underlying grants direct, unchecked access to the backend, bypassing all
// index-domain checks. Code mutating the collection through this hatch is
// solely responsible for keeping previously minted indices consistent.
func (d *Dense[I, V, C]) Underlying() C {
	return d.backend
}

// Swap exchanges the backends of two wrappers of the same domain.
func (d *Dense[I, V, C]) Swap(other *Dense[I, V, C]) {
	d.backend, other.backend = other.backend, d.backend
}
