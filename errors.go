package denseidx

import "errors"

var (
	// ErrRawIndexType signals an attempt to wrap a collection with a
	// predeclared unsigned type as its index domain.
	ErrRawIndexType = errors.New("denseidx: predeclared unsigned type cannot serve as a domain index")
)
