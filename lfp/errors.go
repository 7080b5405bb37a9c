package lfp

import "errors"

// ErrAlgorithmUnknown is returned by New when the requested algorithm
// index falls outside 1..7.
var ErrAlgorithmUnknown = errors.New("lfp: unknown algorithm index (must be 1..7)")
