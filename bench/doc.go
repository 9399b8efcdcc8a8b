/*
Package bench measures insertion performance of sequence implementations.

A benchmark run combines workloads with implementations. A workload fills a
sequence with an initial number of values and then times a number of
insertions, where each insertion position is drawn from a position
distribution (front, middle, back, uniform). Every combination is timed for a
number of trials, on a fresh sequence each time, and the trial timings are
condensed into statistics.

Runs may be observed: the runner broadcasts progress events to all
subscribers.

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package bench

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bench'
func tracer() tracing.Trace {
	return tracing.Select("bench")
}
