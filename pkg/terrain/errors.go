package terrain

import "errors"

// ErrInvalidParameter indicates an out-of-range or degenerate parameter
// value. It is reported before any generation work begins.
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrGeometryConfig indicates a level-of-detail / grid combination that
// cannot produce a valid triangulation.
var ErrGeometryConfig = errors.New("geometry configuration")
