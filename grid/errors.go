package grid

import "errors"

// ErrGridMalformed is returned when a traversal detects a revisited
// cell, which can only happen if the D8 grid contains a cycle. A
// well-formed grid is acyclic by construction; this error signals that
// invariant has been violated.
var ErrGridMalformed = errors.New("grid: malformed flow direction grid (cycle detected)")

// ErrOutletOutOfBounds is returned when an outlet location falls
// outside a grid's extent.
var ErrOutletOutOfBounds = errors.New("grid: outlet location out of bounds")
