package raster

import "errors"

// ErrUnknownFormat is returned by Load when fp's extension is neither a
// recognized binary nor text format.
var ErrUnknownFormat = errors.New("raster: unrecognized file extension (want .d8, .bin or .asc)")
