package sequence

import (
	"errors"
	"fmt"

	"github.com/npillmayer/treearray"
)

// TreeName is the registry name of Tree.
const TreeName = "treearray"

// Tree is a sequence backed by a splaying tree array.
type Tree[V any] struct {
	t *treearray.TreeArray[V]
}

// NewTree creates a tree array sequence holding values.
func NewTree[V any](values []V) *Tree[V] {
	return &Tree[V]{t: treearray.FromSlice(values)}
}

// Name returns "treearray".
func (s *Tree[V]) Name() string { return TreeName }
func (s *Tree[V]) Len() int     { return s.t.Len() }

// At splays the node at position i to the root of the tree.
func (s *Tree[V]) At(i int) (V, error) {
	v, err := s.t.At(i)
	return v, wrapTreeError(err, i, s.t.Len())
}

// InsertAt makes v the new root, with the values before i to its left.
func (s *Tree[V]) InsertAt(i int, v V) error {
	return wrapTreeError(s.t.InsertAt(i, v), i, s.t.Len())
}

// Set splays the node at position i and replaces its value.
func (s *Tree[V]) Set(i int, v V) error {
	_, err := s.t.Set(i, v)
	return wrapTreeError(err, i, s.t.Len())
}

func wrapTreeError(err error, i, n int) error {
	if errors.Is(err, treearray.ErrIndexOutOfBounds) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfBounds, i, n)
	}
	return err
}
