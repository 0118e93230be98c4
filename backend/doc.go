/*
Package backend provides reference collections for denseidx wrappers.

The package is intentionally not a general container library. Each type
here exists to exercise one corner of the capability model:

  - Vector is a growable, contiguous collection with the full optional
    surface: growth, capacity, reservation, insertion, erasure, resizing,
    and a raw memory view.
  - Fixed is a fixed-capacity collection: positional access, front/back
    access and a raw view, but no growth, no capacity notion, no
    structural mutation. Wrapping it showcases compile-time gating — the
    growth operations of denseidx simply do not accept it.
  - Ring is a double-ended ring buffer: growth and shrinkage at both
    ends, insertion, erasure and resizing, but deliberately no raw view,
    since its storage is not contiguous.

Any collection from any package can be wrapped instead, provided it
satisfies denseidx.Container; the capability interfaces are structural
and require no registration. Compile-time assertions in each file here
document the surface a backend opts into.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package backend

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
