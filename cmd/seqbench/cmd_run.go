package main

import (
	"fmt"

	"github.com/npillmayer/treearray/bench"
	"github.com/npillmayer/treearray/history"
	"github.com/npillmayer/treearray/sequence"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run insertion benchmarks",
		Long: `Fills every selected sequence implementation with --size values and
times --inserts insertions per trial, for every selected insertion position
(front, middle, back, uniform).`,
		Args: cobra.NoArgs,
		RunE: runBenchmarks,
	}
	cmd.Flags().Int("trials", 5, "timed trials per implementation and workload")
	cmd.Flags().Int("warmup", 1, "untimed trials before timing")
	cmd.Flags().Int("parallel", 4, "fixtures to build concurrently")
	cmd.Flags().Int("size", 100_000, "initial length of sequences")
	cmd.Flags().Int("inserts", 1000, "insertions per trial")
	cmd.Flags().StringSlice("impl", nil, "implementations to run (default all)")
	cmd.Flags().StringSlice("workload", []string{"front", "middle", "back", "uniform"}, "insertion positions")
	cmd.Flags().StringP("format", "f", "console", "output format: console, html, yaml")
	cmd.Flags().String("metric", "per-op", "statistic to show: per-op, median, mean")
	cmd.Flags().Bool("save", false, "store results in the history database")
	cmd.Flags().String("db", "", "history database file")
	cmd.Flags().BoolP("verbose", "v", false, "report progress of trials")
	return cmd
}

func runBenchmarks(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	parallel, _ := flags.GetInt("parallel")
	impls, _ := flags.GetStringSlice("impl")
	positions, _ := flags.GetStringSlice("workload")
	format, _ := flags.GetString("format")
	metric, _ := flags.GetString("metric")
	save, _ := flags.GetBool("save")
	verbose, _ := flags.GetBool("verbose")
	if len(impls) == 0 {
		impls = sequence.Names()
	}
	workloads := make([]bench.Workload, 0, len(positions))
	for _, name := range positions {
		p, err := bench.PositionByName(name)
		if err != nil {
			return err
		}
		workloads = append(workloads, bench.Workload{
			Name:     p.Name(),
			Initial:  s.int(keySize),
			Inserts:  s.int(keyInserts),
			Position: p,
		})
	}
	runner, err := bench.NewRunner(bench.Config{
		Trials:   s.int(keyTrials),
		Warmup:   s.int(keyWarmup),
		Parallel: parallel,
	})
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	progress := make(chan struct{})
	if verbose {
		events := runner.Subscribe(ctx)
		go func() {
			defer close(progress)
			for ev := range events {
				if ev.Kind == bench.TrialDone {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s/%s trial %d: %v\n", ev.Impl, ev.Workload, ev.Trial, ev.Elapsed)
				}
			}
		}()
	} else {
		close(progress)
	}
	results, err := runner.Run(ctx, impls, workloads)
	runner.Close() // ends the progress subscription
	<-progress
	if err != nil {
		return err
	}
	if save {
		store, err := history.Open(s.string(keyDB))
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Save(ctx, results); err != nil {
			return err
		}
		tracer().Infof("saved run %s to %s", results[0].RunID, s.string(keyDB))
	}
	return render(cmd.OutOrStdout(), results, format, metric)
}
