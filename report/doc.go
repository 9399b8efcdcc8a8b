/*
Package report renders benchmark results.

Results may be output as a console table, as an HTML document or as YAML.
Tables have one row per workload and one column per sequence implementation.
Console tables mark the fastest and the slowest implementation of each
workload with colors.

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package report

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'report'
func tracer() tracing.Trace {
	return tracing.Select("report")
}
