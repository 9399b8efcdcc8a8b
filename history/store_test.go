package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treearray/bench"
)

func result(runID, impl string, started time.Time, median time.Duration) bench.Result {
	return bench.Result{
		RunID:    runID,
		Impl:     impl,
		Workload: "middle",
		Position: "middle",
		Initial:  500,
		Inserts:  50,
		Started:  started,
		Stats: bench.Stats{
			N: 5, Min: median / 2, Max: median * 2, Mean: median, Median: median,
			P95: median * 3 / 2, StdDev: median / 10, PerOp: median / 50,
		},
	}
}

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndReadRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "history")
	defer teardown()
	//
	s := openTemp(t)
	ctx := context.Background()
	t0 := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	results := []bench.Result{
		result("a", "vector", t0, 3*time.Millisecond),
		result("a", "treearray", t0.Add(time.Second), time.Millisecond),
	}
	if err := s.Save(ctx, results); err != nil {
		t.Fatal(err)
	}
	back, err := s.Results(ctx, "a")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(results, back); diff != "" {
		t.Errorf("stored results differ (-want +got):\n%s", diff)
	}
}

func TestRunsNewestFirst(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	t0 := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	for i, id := range []string{"first", "second", "third"} {
		started := t0.Add(time.Duration(i) * time.Hour)
		err := s.Save(ctx, []bench.Result{
			result(id, "vector", started, time.Millisecond),
			result(id, "list", started, time.Millisecond),
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	runs, err := s.Runs(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []Run{
		{ID: "third", Started: t0.Add(2 * time.Hour), Results: 2},
		{ID: "second", Started: t0.Add(time.Hour), Results: 2},
	}
	if diff := cmp.Diff(want, runs); diff != "" {
		t.Errorf("runs (-want +got):\n%s", diff)
	}
	all, err := s.Runs(ctx, 0)
	if err != nil || len(all) != 3 {
		t.Errorf("expected 3 runs without limit, got %d, %v", len(all), err)
	}
	latest, err := s.Latest(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(latest) != 2 || latest[0].RunID != "third" {
		t.Errorf("expected results of run 'third', got %v", latest)
	}
}

func TestUnknownRun(t *testing.T) {
	s := openTemp(t)
	if _, err := s.Results(context.Background(), "nope"); !errors.Is(err, ErrNoResults) {
		t.Errorf("expected ErrNoResults, got %v", err)
	}
	if _, err := s.Latest(context.Background()); !errors.Is(err, ErrNoResults) {
		t.Errorf("expected ErrNoResults for empty database, got %v", err)
	}
}

func TestSaveIsAtomic(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	t0 := time.Now()
	bad := []bench.Result{
		result("x", "vector", t0, time.Millisecond),
		result("", "list", t0, time.Millisecond),
	}
	if err := s.Save(ctx, bad); err == nil {
		t.Fatal("expected error for result without run ID")
	}
	runs, err := s.Runs(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("failed save must not store anything, found %v", runs)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h.db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	r := result("r", "btree", time.Now(), time.Millisecond)
	if err := s.Save(context.Background(), []bench.Result{r}); err != nil {
		t.Fatal(err)
	}
	s.Close()
	s, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	back, err := s.Results(context.Background(), "r")
	if err != nil || len(back) != 1 || back[0].Impl != "btree" {
		t.Errorf("expected stored result after reopen, got %v, %v", back, err)
	}
}

func TestSaveWithCancelledContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "history")
	defer teardown()
	//
	s := openTemp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Save(ctx, []bench.Result{result("c", "list", time.Now(), time.Millisecond)})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	runs, err := s.Runs(context.Background(), 0)
	if err != nil || len(runs) != 0 {
		t.Errorf("cancelled save must not store anything, found %v, %v", runs, err)
	}
}
