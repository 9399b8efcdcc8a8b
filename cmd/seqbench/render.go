package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/treearray/bench"
	"github.com/npillmayer/treearray/report"
)

// render outputs results in one of the formats "console", "html" or "yaml".
func render(w io.Writer, results []bench.Result, format, metric string) error {
	m, err := report.MetricByName(metric)
	if err != nil {
		return err
	}
	switch format {
	case "console":
		opts := &report.ConsoleOptions{}
		if w == io.Writer(os.Stdout) {
			opts = report.OptionsFromTerminal()
		}
		opts.Metric = m
		return report.Console(w, results, opts)
	case "html":
		return report.HTML(w, results, m)
	case "yaml":
		return report.YAML(w, results)
	}
	return fmt.Errorf("unknown output format %q", format)
}
