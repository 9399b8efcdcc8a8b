package main

import (
	"math/rand/v2"

	"github.com/npillmayer/treearray"
	"github.com/spf13/cobra"
)

func newDotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Output the shape of a tree array in Graphviz DOT format",
		Long: `Inserts --size values at random positions into an empty tree array,
then looks up --lookups random positions, and prints the resulting tree.
This shows how splaying shapes the tree.`,
		Args: cobra.NoArgs,
		RunE: dotTree,
	}
	cmd.Flags().Int("size", 16, "number of values to insert")
	cmd.Flags().Int("lookups", 0, "number of random lookups after inserting")
	cmd.Flags().Uint64("seed", 1, "seed for random positions")
	return cmd
}

func dotTree(cmd *cobra.Command, args []string) error {
	if _, err := setup(cmd); err != nil {
		return err
	}
	size, _ := cmd.Flags().GetInt("size")
	lookups, _ := cmd.Flags().GetInt("lookups")
	seed, _ := cmd.Flags().GetUint64("seed")
	rnd := rand.New(rand.NewPCG(seed, seed+1))
	ta := treearray.New[int]()
	for v := range size {
		if err := ta.InsertAt(rnd.IntN(ta.Len()+1), v); err != nil {
			return err
		}
	}
	for range lookups {
		if ta.IsEmpty() {
			break
		}
		if _, err := ta.At(rnd.IntN(ta.Len())); err != nil {
			return err
		}
	}
	return treearray.TreeArray2Dot(ta, cmd.OutOrStdout())
}
