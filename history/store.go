package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/npillmayer/treearray/bench"
	_ "modernc.org/sqlite"
)

// ErrNoResults is returned when asking for a run which is not stored.
var ErrNoResults = errors.New("history: no results")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id   TEXT PRIMARY KEY,
	started  INTEGER NOT NULL,
	results  INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS results (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id    TEXT NOT NULL REFERENCES runs(run_id),
	impl      TEXT NOT NULL,
	workload  TEXT NOT NULL,
	position  TEXT NOT NULL,
	initial   INTEGER NOT NULL,
	inserts   INTEGER NOT NULL,
	started   INTEGER NOT NULL,
	n         INTEGER NOT NULL,
	min_ns    INTEGER NOT NULL,
	max_ns    INTEGER NOT NULL,
	mean_ns   INTEGER NOT NULL,
	median_ns INTEGER NOT NULL,
	p95_ns    INTEGER NOT NULL,
	stddev_ns INTEGER NOT NULL,
	per_op_ns INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS results_run ON results(run_id);
`

// Store is a database of benchmark runs.
type Store struct {
	db *sqlx.DB
}

// Open opens or creates the database file at path and makes sure the schema
// exists.
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: opening %s: %w", path, err)
	}
	db.SetMaxOpenConns(1) // sqlite serializes writers anyway
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: creating schema: %w", err)
	}
	tracer().Debugf("history database at %s", path)
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Run summarizes a stored benchmark run.
type Run struct {
	ID      string
	Started time.Time // earliest start of any of the run's results
	Results int
}

type runRow struct {
	ID      string `db:"run_id"`
	Started int64  `db:"started"`
	Results int    `db:"results"`
}

type resultRow struct {
	RunID    string `db:"run_id"`
	Impl     string `db:"impl"`
	Workload string `db:"workload"`
	Position string `db:"position"`
	Initial  int    `db:"initial"`
	Inserts  int    `db:"inserts"`
	Started  int64  `db:"started"`
	N        int    `db:"n"`
	Min      int64  `db:"min_ns"`
	Max      int64  `db:"max_ns"`
	Mean     int64  `db:"mean_ns"`
	Median   int64  `db:"median_ns"`
	P95      int64  `db:"p95_ns"`
	StdDev   int64  `db:"stddev_ns"`
	PerOp    int64  `db:"per_op_ns"`
}

func toRow(r bench.Result) resultRow {
	return resultRow{
		RunID:    r.RunID,
		Impl:     r.Impl,
		Workload: r.Workload,
		Position: r.Position,
		Initial:  r.Initial,
		Inserts:  r.Inserts,
		Started:  r.Started.UnixNano(),
		N:        r.Stats.N,
		Min:      int64(r.Stats.Min),
		Max:      int64(r.Stats.Max),
		Mean:     int64(r.Stats.Mean),
		Median:   int64(r.Stats.Median),
		P95:      int64(r.Stats.P95),
		StdDev:   int64(r.Stats.StdDev),
		PerOp:    int64(r.Stats.PerOp),
	}
}

func (row resultRow) result() bench.Result {
	return bench.Result{
		RunID:    row.RunID,
		Impl:     row.Impl,
		Workload: row.Workload,
		Position: row.Position,
		Initial:  row.Initial,
		Inserts:  row.Inserts,
		Started:  time.Unix(0, row.Started).UTC(),
		Stats: bench.Stats{
			N:      row.N,
			Min:    time.Duration(row.Min),
			Max:    time.Duration(row.Max),
			Mean:   time.Duration(row.Mean),
			Median: time.Duration(row.Median),
			P95:    time.Duration(row.P95),
			StdDev: time.Duration(row.StdDev),
			PerOp:  time.Duration(row.PerOp),
		},
	}
}

const insertResult = `INSERT INTO results
	(run_id, impl, workload, position, initial, inserts, started,
	 n, min_ns, max_ns, mean_ns, median_ns, p95_ns, stddev_ns, per_op_ns)
	VALUES
	(:run_id, :impl, :workload, :position, :initial, :inserts, :started,
	 :n, :min_ns, :max_ns, :mean_ns, :median_ns, :p95_ns, :stddev_ns, :per_op_ns)`

// Save stores results in a single transaction. Results may belong to more
// than one run; results for an already stored run are added to it.
func (s *Store) Save(ctx context.Context, results []bench.Result) (err error) {
	if len(results) == 0 {
		return nil
	}
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rerr := tx.Rollback(); rerr != nil && !errors.Is(rerr, sql.ErrTxDone) {
			tracer().Errorf("history: rollback failed: %v", rerr)
		}
	}()
	for _, r := range results {
		if r.RunID == "" {
			return fmt.Errorf("history: result %s/%s has no run ID", r.Impl, r.Workload)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO runs (run_id, started) VALUES (?, ?) ON CONFLICT(run_id) DO NOTHING`,
			r.RunID, r.Started.UnixNano())
		if err != nil {
			return fmt.Errorf("history: saving run %s: %w", r.RunID, err)
		}
		if _, err = tx.NamedExecContext(ctx, insertResult, toRow(r)); err != nil {
			return fmt.Errorf("history: saving result: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE runs SET results = results + 1, started = MIN(started, ?) WHERE run_id = ?`,
			r.Started.UnixNano(), r.RunID)
		if err != nil {
			return fmt.Errorf("history: saving run %s: %w", r.RunID, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	tracer().Infof("saved %d results", len(results))
	return nil
}

// Runs lists stored runs, newest first. If limit > 0, at most limit runs are
// returned.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1 // no limit in sqlite
	}
	var rows []runRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT run_id, started, results FROM runs ORDER BY started DESC, run_id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: listing runs: %w", err)
	}
	runs := make([]Run, len(rows))
	for i, row := range rows {
		runs[i] = Run{ID: row.ID, Started: time.Unix(0, row.Started).UTC(), Results: row.Results}
	}
	return runs, nil
}

// Results returns the results of a run in the order they were saved.
func (s *Store) Results(ctx context.Context, runID string) ([]bench.Result, error) {
	var rows []resultRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT run_id, impl, workload, position, initial, inserts, started,
		        n, min_ns, max_ns, mean_ns, median_ns, p95_ns, stddev_ns, per_op_ns
		 FROM results WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("history: reading run %s: %w", runID, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w for run %q", ErrNoResults, runID)
	}
	results := make([]bench.Result, len(rows))
	for i, row := range rows {
		results[i] = row.result()
	}
	return results, nil
}

// Latest returns the results of the most recent run.
func (s *Store) Latest(ctx context.Context) ([]bench.Result, error) {
	runs, err := s.Runs(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("%w: database holds no runs", ErrNoResults)
	}
	return s.Results(ctx, runs[0].ID)
}
