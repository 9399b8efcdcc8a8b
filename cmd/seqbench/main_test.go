package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/treearray/report"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	root := newRootCmd()
	var out, errs bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errs)
	root.SetArgs(args)
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("seqbench %s: %v\n%s", strings.Join(args, " "), err, errs.String())
	}
	return out.String()
}

func TestRunYAML(t *testing.T) {
	out := execute(t, "run", "--size", "50", "--inserts", "10", "--trials", "2", "--warmup", "0",
		"--impl", "vector,treearray", "--workload", "front,back", "-f", "yaml")
	results, err := report.ReadYAML(strings.NewReader(out))
	if err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, out)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Initial != 50 || r.Inserts != 10 || r.Stats.N != 2 {
			t.Errorf("flags not applied to result %+v", r)
		}
	}
}

func TestRunSaveAndHistory(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	execute(t, "run", "--size", "20", "--inserts", "5", "--trials", "1",
		"--impl", "list", "--workload", "middle", "--save", "--db", db)
	list := execute(t, "history", "list", "--db", db)
	lines := strings.Split(strings.TrimSpace(list), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "RUN") {
		t.Fatalf("expected header and one run, got\n%s", list)
	}
	runID := strings.Fields(lines[1])[0]
	out := execute(t, "history", "show", runID, "--db", db, "-f", "yaml")
	results, err := report.ReadYAML(strings.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Impl != "list" || results[0].RunID != runID {
		t.Errorf("unexpected stored results %+v", results)
	}
	latest := execute(t, "history", "show", "--db", db, "-f", "html")
	if !strings.Contains(latest, "<th>list</th>") {
		t.Errorf("expected HTML table for latest run, got\n%s", latest)
	}
}

func TestDot(t *testing.T) {
	out := execute(t, "dot", "--size", "8", "--lookups", "3")
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Errorf("expected DOT output, got\n%s", out)
	}
	if n := strings.Count(out, "shape=box") + strings.Count(out, "shape=circle"); n < 8 {
		t.Errorf("expected 8 value nodes, found %d", n)
	}
}

func TestUnknownWorkload(t *testing.T) {
	root := newRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"run", "--workload", "sideways"})
	if err := root.Execute(); err == nil {
		t.Error("expected error for unknown workload")
	}
}
