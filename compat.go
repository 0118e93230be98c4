package denseidx

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"reflect"
)

// Strong is the compatibility contract for domain-index types: any defined
// type whose underlying type is an unsigned integer qualifies, without
// implementing a named interface of this package. Index[D] satisfies it,
// and so does a pre-existing newtype like
//
//	type NodeID uint
//
// from a package that has never heard of denseidx.
//
// Minting a fresh index from a computed position is the conversion I(pos).
// Extraction of the raw position recognizes three accessor shapes, tried
// in this order:
//
//  1. a Get() uint method,
//  2. a Value() uint method,
//  3. the unsigned conversion uint(idx).
//
// The first shape present wins; a type offering several shapes resolves
// deterministically. Resolution happens once per wrapper, at Wrap time.
//
// The predeclared unsigned types themselves (uint, uint64, ...) are not
// index types: a raw position must never subscript a wrapper directly.
// Go constraints cannot separate a predeclared type from its defined
// newtypes, so Wrap rejects them with ErrRawIndexType at construction.
type Strong interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// The recognized extraction shapes, in resolution priority order.
type getAccessor interface {
	Get() uint
}

type valueAccessor interface {
	Value() uint
}

// Position extracts the raw position of idx, applying the contract's shape
// priority. Wrappers resolve the shape once and cache it; Position is the
// one-shot form for code that handles indices outside a wrapper.
func Position[I Strong](idx I) uint {
	switch v := any(idx).(type) {
	case getAccessor:
		return v.Get()
	case valueAccessor:
		return v.Value()
	default:
		return uint(idx)
	}
}

// resolveExtract picks the extraction shape for I. The conversion shape is
// the guaranteed floor: every Strong type converts to uint.
func resolveExtract[I Strong]() func(I) uint {
	var probe any = *new(I)
	switch probe.(type) {
	case getAccessor:
		return func(idx I) uint { return any(idx).(getAccessor).Get() }
	case valueAccessor:
		return func(idx I) uint { return any(idx).(valueAccessor).Value() }
	default:
		return func(idx I) uint { return uint(idx) }
	}
}

// checkIndexType rejects the predeclared unsigned types. Defined types,
// including those from other packages, pass.
func checkIndexType[I Strong]() error {
	t := reflect.TypeFor[I]()
	if t.PkgPath() == "" {
		return fmt.Errorf("%w: %s", ErrRawIndexType, t.String())
	}
	return nil
}
