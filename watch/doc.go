/*
Package watch re-runs a command whenever files in a directory tree change.

This supports a development loop of editing sequence implementations while
their tests (or benchmarks) run on every save. Paths may be excluded from
watching by glob patterns; by default the version-control metadata
directory ".git" is ignored.

A Go toolchain may be selected for the command, which will be handed to the
child process as GOTOOLCHAIN (e.g., "go1.23.0" or "local").

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package watch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'watch'
func tracer() tracing.Trace {
	return tracing.Select("watch")
}
