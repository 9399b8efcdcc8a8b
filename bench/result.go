package bench

import "time"

// Result holds the outcome of benchmarking one implementation with one
// workload.
type Result struct {
	RunID    string    `yaml:"run_id"`
	Impl     string    `yaml:"impl"`
	Workload string    `yaml:"workload"`
	Position string    `yaml:"position"`
	Initial  int       `yaml:"initial"`
	Inserts  int       `yaml:"inserts"`
	Started  time.Time `yaml:"started"`
	Stats    Stats     `yaml:"stats"`
}

// EventKind classifies progress events of a benchmark run.
type EventKind int

const (
	RunStarted EventKind = iota
	TrialDone
	ResultReady
	RunFinished
)

func (k EventKind) String() string {
	switch k {
	case RunStarted:
		return "run-started"
	case TrialDone:
		return "trial-done"
	case ResultReady:
		return "result-ready"
	case RunFinished:
		return "run-finished"
	}
	return "unknown"
}

// Event reports progress of a benchmark run to subscribers.
type Event struct {
	Kind     EventKind
	RunID    string
	Impl     string
	Workload string
	Trial    int           // trial number, starting at 1; 0 for warmup-free events
	Elapsed  time.Duration // trial timing, for TrialDone
	Result   *Result       // for ResultReady
	Err      error         // for RunFinished, if the run failed
}
