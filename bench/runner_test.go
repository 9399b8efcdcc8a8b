package bench

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treearray/sequence"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewRunnerRejectsIllegalConfig(t *testing.T) {
	for _, cfg := range []Config{{Trials: 0}, {Trials: 1, Warmup: -1}} {
		if _, err := NewRunner(cfg); !errors.Is(err, ErrIllegalConfig) {
			t.Errorf("NewRunner(%+v): expected ErrIllegalConfig, got %v", cfg, err)
		}
	}
}

func TestRunAllImplementations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bench")
	defer teardown()
	//
	r, err := NewRunner(Config{Trials: 3, Warmup: 1, Parallel: 2})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	impls := sequence.Names()
	workloads := DefaultWorkloads(200, 50)
	results, err := r.Run(context.Background(), impls, workloads)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(impls)*len(workloads) {
		t.Fatalf("expected %d results, got %d", len(impls)*len(workloads), len(results))
	}
	runID := results[0].RunID
	for _, res := range results {
		if res.RunID != runID || runID == "" {
			t.Errorf("all results of a run must share a run ID, got %q and %q", runID, res.RunID)
		}
		if res.Stats.N != 3 {
			t.Errorf("%s/%s: expected 3 timed trials, got %d", res.Impl, res.Workload, res.Stats.N)
		}
		if res.Initial != 200 || res.Inserts != 50 {
			t.Errorf("%s/%s: workload parameters not recorded", res.Impl, res.Workload)
		}
	}
	if results[0].Workload != "front" || results[len(impls)].Workload != "middle" {
		t.Errorf("results must be ordered by workload, then implementation")
	}
}

func TestRunPublishesEvents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bench")
	defer teardown()
	//
	r, err := NewRunner(Config{Trials: 2})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := r.Subscribe(ctx)
	done := make(chan map[EventKind]int)
	go func() {
		counts := map[EventKind]int{}
		for ev := range events {
			counts[ev.Kind]++
		}
		done <- counts
	}()
	w := []Workload{{Name: "front", Initial: 10, Inserts: 10, Position: Front}}
	if _, err := r.Run(context.Background(), []string{sequence.VectorName, sequence.TreeName}, w); err != nil {
		t.Fatal(err)
	}
	r.Close()
	counts := <-done
	if counts[RunStarted] != 1 || counts[RunFinished] != 1 {
		t.Errorf("expected one start and one finish event, got %v", counts)
	}
	if counts[TrialDone] != 4 {
		t.Errorf("expected 4 trial events, got %d", counts[TrialDone])
	}
	if counts[ResultReady] != 2 {
		t.Errorf("expected 2 result events, got %d", counts[ResultReady])
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	r, err := NewRunner(Config{Trials: 5})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Run(ctx, []string{sequence.VectorName}, DefaultWorkloads(10, 10))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRunRejectsUnknownImplementation(t *testing.T) {
	r, err := NewRunner(DefaultConfig)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	_, err = r.Run(context.Background(), []string{"skiplist"}, DefaultWorkloads(10, 10))
	if !errors.Is(err, sequence.ErrUnknownImplementation) {
		t.Errorf("expected ErrUnknownImplementation, got %v", err)
	}
}

type shrinking struct {
	sequence.Sequence[int]
}

// InsertAt drops every value.
func (s shrinking) InsertAt(int, int) error { return nil }

func TestTrialVerifiesLength(t *testing.T) {
	seq, err := sequence.Filled(sequence.VectorName, 5)
	if err != nil {
		t.Fatal(err)
	}
	_, err = trial(shrinking{seq}, Workload{Name: "x", Initial: 5, Inserts: 3, Position: Back})
	if !errors.Is(err, ErrVerification) {
		t.Errorf("expected ErrVerification, got %v", err)
	}
}

func TestRunDoesNotWaitForLaggingSubscriber(t *testing.T) {
	r, err := NewRunner(Config{Trials: 40})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := r.Subscribe(ctx) // never read while running
	w := []Workload{{Name: "back", Initial: 10, Inserts: 5, Position: Back}}
	done := make(chan error, 1)
	go func() {
		_, err := r.Run(context.Background(), []string{sequence.VectorName, sequence.ListName}, w)
		done <- err
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("run blocked on a subscriber that does not read")
	}
	r.Close()
	n := 0
	for range events {
		n++
	}
	if n == 0 || n > EventBuffer {
		t.Errorf("expected between 1 and %d buffered events, got %d", EventBuffer, n)
	}
}
