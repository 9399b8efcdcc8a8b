package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "seqbench",
		Short: "Benchmark insertion into sequences",
		Long: `seqbench measures the cost of inserting values at a position of an
ordered sequence, moving all values right of it, for a set of sequence
implementations: a Go slice, a linked list, a splay-balanced tree array and a
persistent counted B+ tree.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("trace", "", "trace level (Error, Info, Debug)")
	root.PersistentFlags().String("tracer", "", "tracing adapter (zap, go)")
	root.AddCommand(
		newRunCmd(),
		newHistoryCmd(),
		newWatchCmd(),
		newDotCmd(),
	)
	return root
}
