/*
Package history persists benchmark results in a sqlite database.

Every benchmark run is stored with its run ID, so results of different runs
(e.g., before and after a change to a sequence implementation) may be
compared later.

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package history

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'history'
func tracer() tracing.Trace {
	return tracing.Select("history")
}
