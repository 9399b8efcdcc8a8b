/*
Package treearray offers an ordered sequence with cheap positional insertion.

# Tree Arrays

A tree array is a binary tree representing a map from indices to values, just
like an array, where inserting a value increments the indices of all values to
its right. Every node maintains the number of nodes in its subtree, which lets
us address a value by its position instead of by a key. The tree is
self-adjusting: each access splays the addressed node to the root, so runs of
edits near the same position are cheap and the amortized cost of every
operation is O(log n).

# Insert versus Set

Go's slices, and the map types of many other languages, blur the line between
"put a value at this position" and "put a value here, moving everything
behind it". We keep the two apart:

	InsertAt(i, v)   v ends up at index i, values at i… move to i+1…
	Set(i, v)        the value at index i is replaced, nothing moves

# Comparing Sequences

Inserting at the front of a slice with a million entries has to move a million
entries. Inserting into the middle of a linked list has to walk half a million
links. A tree array pays a logarithmic number of rotations instead. Package
sequence wraps all of these behind a common interface, and package bench
measures them against each other.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package treearray

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the tracer with key 'treearray'.
func T() tracing.Trace {
	return tracing.Select("treearray")
}

// TreeError is an error type for the treearray module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a position is
// outside the range of valid indices of a tree array.
const ErrIndexOutOfBounds = TreeError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrCorruptTree is flagged by Check if a structural invariant does not hold.
const ErrCorruptTree = TreeError("tree array is corrupt")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
