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

// Index is the built-in domain index identity: an unsigned position tagged
// with a phantom domain D. The domain parameter carries no storage and is
// erased at compile time; two instantiations with different domains are
// unrelated types for comparison, assignment, and arithmetic.
//
// Construction from a raw position is an explicit conversion,
//
//	idx := denseidx.NewIndex[employee](3)   // or Index[employee](3)
//
// and extraction back to a raw position is an explicit call (Value or Get)
// or conversion. Untyped constants convert to an Index the same way they
// convert to time.Duration; raw integer variables never do.
//
// The zero value is position 0. Index values are comparable and ordered
// within one domain and may be used as map keys.
type Index[D any] uint

// NewIndex mints an index for a raw position. Equivalent to the conversion
// Index[D](pos); provided for call sites that read better with a name.
func NewIndex[D any](pos uint) Index[D] {
	return Index[D](pos)
}

// Value returns the raw position.
func (i Index[D]) Value() uint {
	return uint(i)
}

// Get returns the raw position. Index supports both recognized accessor
// shapes of the Strong contract; Get takes priority during shape resolution.
func (i Index[D]) Get() uint {
	return uint(i)
}

// Next returns the index one position further. Pure; the receiver is
// unchanged. For the mutating forms use native arithmetic: idx++.
func (i Index[D]) Next() Index[D] {
	return i + 1
}

// Prev returns the index one position back. No underflow check, matching
// raw unsigned arithmetic.
func (i Index[D]) Prev() Index[D] {
	return i - 1
}

// Add returns the index advanced by n positions.
func (i Index[D]) Add(n uint) Index[D] {
	return i + Index[D](n)
}

// Sub returns the index moved back by n positions, without underflow check.
func (i Index[D]) Sub(n uint) Index[D] {
	return i - Index[D](n)
}

// Diff returns the signed distance between two indices of the same domain.
func (i Index[D]) Diff(other Index[D]) int {
	return int(i) - int(other)
}

// String renders the index as "Domain(position)" for tracing and test
// output.
func (i Index[D]) String() string {
	return fmt.Sprintf("%s(%d)", domainName[D](), uint(i))
}

func domainName[D any]() string {
	t := reflect.TypeFor[D]()
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
