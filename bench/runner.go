package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/guiguan/caster"
	"github.com/npillmayer/treearray/sequence"
	"golang.org/x/sync/errgroup"
)

// Config configures a benchmark runner.
type Config struct {
	Trials   int // timed trials per implementation and workload
	Warmup   int // untimed trials before timing starts
	Parallel int // number of fixtures built concurrently; < 1 means 1
}

// DefaultConfig is a sensible configuration for interactive use.
var DefaultConfig = Config{Trials: 5, Warmup: 1, Parallel: 4}

// Runner runs benchmarks and broadcasts progress events.
//
// A runner may be used for more than one run, but not for concurrent runs.
// Clients must call Close when done with a runner.
type Runner struct {
	cfg  Config
	cast *caster.Caster
}

// NewRunner creates a runner for a configuration.
func NewRunner(cfg Config) (*Runner, error) {
	if cfg.Trials < 1 || cfg.Warmup < 0 {
		return nil, fmt.Errorf("%w: need trials ≥ 1 and warmup ≥ 0", ErrIllegalConfig)
	}
	if cfg.Parallel < 1 {
		cfg.Parallel = 1
	}
	return &Runner{
		cfg:  cfg,
		cast: caster.New(nil),
	}, nil
}

// EventBuffer is the number of events buffered per subscriber.
const EventBuffer = 64

// Subscribe returns a channel of progress events. The channel is closed when
// ctx is done or when the runner is closed.
//
// Events are published between trials, never while a trial is timed. A
// subscriber which falls more than EventBuffer events behind loses events;
// a run never waits for its subscribers.
func (r *Runner) Subscribe(ctx context.Context) <-chan Event {
	events := make(chan Event, EventBuffer)
	sub, ok := r.cast.Sub(ctx, 16)
	if !ok {
		close(events)
		return events
	}
	go func() {
		defer close(events)
		for msg := range sub {
			ev, ok := msg.(Event)
			if !ok {
				continue
			}
			select {
			case events <- ev:
			default:
				tracer().Debugf("subscriber is lagging, dropped %s event", ev.Kind)
			}
		}
	}()
	return events
}

// Close stops broadcasting and closes all subscriber channels.
func (r *Runner) Close() {
	r.cast.Close()
}

func (r *Runner) publish(ev Event) {
	r.cast.Pub(ev)
}

// Run benchmarks every named implementation with every workload. Results are
// returned in the order workload × implementation. All results of a run share
// a fresh run ID.
//
// Run stops between trials if ctx is cancelled, returning the context's
// error.
func (r *Runner) Run(ctx context.Context, impls []string, workloads []Workload) (results []Result, err error) {
	if len(impls) == 0 || len(workloads) == 0 {
		return nil, fmt.Errorf("%w: nothing to run", ErrIllegalConfig)
	}
	for _, name := range impls {
		if _, err := sequence.Lookup(name); err != nil {
			return nil, err
		}
	}
	for _, w := range workloads {
		if err := w.validate(); err != nil {
			return nil, err
		}
	}
	runID := uuid.New().String()
	r.publish(Event{Kind: RunStarted, RunID: runID})
	defer func() {
		r.publish(Event{Kind: RunFinished, RunID: runID, Err: err})
	}()
	tracer().Infof("bench run %s: %d implementations × %d workloads", runID, len(impls), len(workloads))
	for _, w := range workloads {
		for _, impl := range impls {
			result, err := r.runOne(ctx, runID, impl, w)
			if err != nil {
				return results, err
			}
			results = append(results, result)
			r.publish(Event{Kind: ResultReady, RunID: runID, Impl: impl, Workload: w.Name, Result: &result})
		}
	}
	return results, nil
}

func (r *Runner) runOne(ctx context.Context, runID, impl string, w Workload) (Result, error) {
	result := Result{
		RunID:    runID,
		Impl:     impl,
		Workload: w.Name,
		Position: w.Position.Name(),
		Initial:  w.Initial,
		Inserts:  w.Inserts,
		Started:  time.Now(),
	}
	fixtures, err := r.buildFixtures(ctx, impl, w.Initial, r.cfg.Warmup+r.cfg.Trials)
	if err != nil {
		return result, err
	}
	samples := make([]time.Duration, 0, r.cfg.Trials)
	for k, seq := range fixtures {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		elapsed, err := trial(seq, w)
		fixtures[k] = nil // let the garbage collector have it
		if err != nil {
			return result, fmt.Errorf("%s/%s: %w", impl, w.Name, err)
		}
		if k < r.cfg.Warmup {
			continue
		}
		samples = append(samples, elapsed)
		r.publish(Event{
			Kind:     TrialDone,
			RunID:    runID,
			Impl:     impl,
			Workload: w.Name,
			Trial:    k - r.cfg.Warmup + 1,
			Elapsed:  elapsed,
		})
	}
	result.Stats = ComputeStats(samples, w.Inserts)
	tracer().Debugf("%s/%s: median %v, %v/op", impl, w.Name, result.Stats.Median, result.Stats.PerOp)
	return result, nil
}

// buildFixtures creates count freshly filled sequences, concurrently.
func (r *Runner) buildFixtures(ctx context.Context, impl string, initial, count int) ([]sequence.Sequence[int], error) {
	fixtures := make([]sequence.Sequence[int], count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Parallel)
	for k := range fixtures {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			seq, err := sequence.Filled(impl, initial)
			if err != nil {
				return err
			}
			fixtures[k] = seq
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return fixtures, nil
}

// trial times the insertions of one workload on seq.
func trial(seq sequence.Sequence[int], w Workload) (time.Duration, error) {
	pick := w.Position.Picker()
	start := time.Now()
	for k := range w.Inserts {
		if err := seq.InsertAt(pick(seq.Len()), k); err != nil {
			return 0, err
		}
	}
	elapsed := time.Since(start)
	if seq.Len() != w.Initial+w.Inserts {
		return elapsed, fmt.Errorf("%w: %s holds %d values, expected %d",
			ErrVerification, seq.Name(), seq.Len(), w.Initial+w.Inserts)
	}
	return elapsed, nil
}
