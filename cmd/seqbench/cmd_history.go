package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/npillmayer/treearray/bench"
	"github.com/npillmayer/treearray/history"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect stored benchmark runs",
	}
	cmd.PersistentFlags().String("db", "", "history database file")
	list := &cobra.Command{
		Use:   "list",
		Short: "List stored runs, newest first",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}
	list.Flags().Int("limit", 10, "maximum number of runs to list (0 for all)")
	show := &cobra.Command{
		Use:   "show [run-id]",
		Short: "Show the results of a run (default the latest)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showRun,
	}
	show.Flags().StringP("format", "f", "console", "output format: console, html, yaml")
	show.Flags().String("metric", "per-op", "statistic to show: per-op, median, mean")
	cmd.AddCommand(list, show)
	return cmd
}

func openHistory(cmd *cobra.Command) (*history.Store, error) {
	s, err := setup(cmd)
	if err != nil {
		return nil, err
	}
	return history.Open(s.string(keyDB))
}

func listRuns(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()
	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.Runs(cmd.Context(), limit)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tSTARTED\tRESULTS")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", r.ID, r.Started.Local().Format(time.DateTime), r.Results)
	}
	return tw.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()
	var results []bench.Result
	if len(args) == 1 {
		results, err = store.Results(cmd.Context(), args[0])
	} else {
		results, err = store.Latest(cmd.Context())
	}
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	metric, _ := cmd.Flags().GetString("metric")
	return render(cmd.OutOrStdout(), results, format, metric)
}
