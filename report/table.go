package report

import (
	"fmt"
	"slices"
	"time"

	"github.com/npillmayer/treearray/bench"
)

// Metric selects the statistic shown in table cells.
type Metric int

const (
	PerOp  Metric = iota // median duration per insertion
	Median               // median duration per trial
	Mean                 // mean duration per trial
)

func (m Metric) String() string {
	switch m {
	case PerOp:
		return "per-op"
	case Median:
		return "median"
	case Mean:
		return "mean"
	}
	return "unknown"
}

// MetricByName returns the metric for "per-op", "median" or "mean".
func MetricByName(name string) (Metric, error) {
	for _, m := range []Metric{PerOp, Median, Mean} {
		if m.String() == name {
			return m, nil
		}
	}
	return PerOp, fmt.Errorf("report: unknown metric %q", name)
}

func (m Metric) of(st bench.Stats) time.Duration {
	switch m {
	case Median:
		return st.Median
	case Mean:
		return st.Mean
	}
	return st.PerOp
}

// table arranges results as rows of workloads and columns of implementations.
// Cells without a result are nil.
type table struct {
	workloads []string
	impls     []string
	cells     [][]*bench.Result
}

func makeTable(results []bench.Result) table {
	var t table
	for _, r := range results {
		if !slices.Contains(t.workloads, r.Workload) {
			t.workloads = append(t.workloads, r.Workload)
		}
		if !slices.Contains(t.impls, r.Impl) {
			t.impls = append(t.impls, r.Impl)
		}
	}
	t.cells = make([][]*bench.Result, len(t.workloads))
	for i := range t.cells {
		t.cells[i] = make([]*bench.Result, len(t.impls))
	}
	for k := range results {
		r := &results[k]
		row := slices.Index(t.workloads, r.Workload)
		col := slices.Index(t.impls, r.Impl)
		t.cells[row][col] = r
	}
	return t
}

// extremes returns the columns of the fastest and the slowest result in a
// row, or -1 if the row has fewer than two results.
func (t table) extremes(row int, m Metric) (fastest, slowest int) {
	fastest, slowest = -1, -1
	n := 0
	for col, r := range t.cells[row] {
		if r == nil {
			continue
		}
		n++
		d := m.of(r.Stats)
		if fastest < 0 || d < m.of(t.cells[row][fastest].Stats) {
			fastest = col
		}
		if slowest < 0 || d > m.of(t.cells[row][slowest].Stats) {
			slowest = col
		}
	}
	if n < 2 {
		return -1, -1
	}
	return fastest, slowest
}

// cellText formats a single cell.
func cellText(r *bench.Result, m Metric) string {
	if r == nil {
		return "–"
	}
	return m.of(r.Stats).String()
}
