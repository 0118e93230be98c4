/*
Package denseidx attaches domain-distinct index identities to positional
collections.

# Dense indices

A dense index is a plain unsigned position into an ordered collection,
promoted to a type of its own. Two collections that happen to share an
element layout — say, a slice of employees and a slice of departments —
are addressed by positions of the same shape, and nothing in ordinary Go
code keeps an employee position from being used to subscript the
department slice. This package makes such cross-indexing a compile error
by giving every logical collection its own index domain.

The built-in identity is Index[D], a defined unsigned type with a phantom
domain parameter:

	type employee struct{ Name string }
	type department struct{ Name string }

	type EmployeeIndex = denseidx.Index[employee]
	type DepartmentIndex = denseidx.Index[department]

Index[employee] and Index[department] are wholly unrelated types. They
cannot be compared, assigned, or mixed in arithmetic, and neither accepts
a raw integer without an explicit conversion. The phantom parameter is
erased at compile time: an Index[D] occupies exactly one machine word,
the same as the raw position it replaces.

# Wrapped collections

Dense decorates a backend collection so that all positional access flows
through a domain index:

	vec := backend.NewVector[employee]()
	employees := denseidx.MustWrap[EmployeeIndex, employee](vec)

	alice := denseidx.Push(employees, employee{Name: "Alice"})
	_ = employees.At(alice)

	var raw uint = 0
	_ = employees.At(raw)     // compile error: raw position
	_ = departments.At(alice) // compile error: wrong index domain

The wrapper exposes only the operations its backend actually supports.
Operations every positional collection has (element access, length,
iteration) are methods on Dense; everything optional — growth, capacity,
insertion, erasure, resizing, raw views — exists as a package-level
function whose constraints name the backend capability it needs. Passing
a wrapper over a fixed-capacity backend to Push does not compile.

Any defined unsigned type can serve as an index; see the Strong contract.
Reference backends live in package backend.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package denseidx

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
