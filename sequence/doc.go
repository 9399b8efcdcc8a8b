/*
Package sequence wraps different implementations of ordered sequences behind a
common interface, so that they may be compared with each other.

All sequences distinguish between inserting a value at a position, shifting
every value behind it, and setting the value at a position, replacing what was
there before.

Sequences in this package are not safe for concurrent use.

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package sequence

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'treearray'
func tracer() tracing.Trace {
	return tracing.Select("treearray")
}
