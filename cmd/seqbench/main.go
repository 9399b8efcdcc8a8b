/*
Command seqbench compares sequence implementations by inserting values at
positions of a pre-filled sequence.

	seqbench run --size 1000000 --inserts 1000 --impl vector,treearray
	seqbench history show
	seqbench watch --toolchain go1.24.0
	seqbench dot --size 20 | dot -Tsvg > tree.svg

Settings are read from a NestedText configuration file for app tag
"seqbench", if present, and may be overridden by flags.

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "seqbench:", err)
		stop()
		os.Exit(1)
	}
}
