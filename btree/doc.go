/*
Package btree provides a persistent, positional B+ tree for sequences.

The package is intentionally not a generic map/set container. It is specialized
for sequence storage with positional editing and persistent (copy-on-write)
updates. Every edit returns a new tree; nodes not on the edited path are shared
between the old and the new tree.

Layout:
  - items live in leaves, all leaves are at the same depth,
  - leaves and internal nodes use fixed-array storage with dynamic views
    (`items`/`children`) over inline buffers,
  - internal nodes cache the number of items below them, so positional
    routing does not have to descend into every child,
  - non-root nodes hold between Base and 2·Base entries.

Operations:
  - positional access (`At`) and replacement (`Set`),
  - recursive path-copy insert with split propagation (`InsertAt`),
  - recursive path-copy delete with sibling borrow/merge (`DeleteAt`),
  - bulk loading from a slice (`FromSlice`),
  - in-order iteration and a strict invariant checker.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
