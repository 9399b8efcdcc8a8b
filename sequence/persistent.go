package sequence

import (
	"errors"
	"fmt"

	"github.com/npillmayer/treearray/btree"
)

// PersistentName is the registry name of Persistent.
const PersistentName = "btree"

// Persistent is a sequence backed by a persistent B+ tree. Every edit creates
// a new tree version; the sequence always refers to the latest one.
type Persistent[V any] struct {
	t *btree.Tree[V]
}

// NewPersistent creates a B+ tree sequence holding values.
func NewPersistent[V any](values []V) *Persistent[V] {
	return &Persistent[V]{t: btree.FromSlice(values)}
}

// Name returns "btree".
func (s *Persistent[V]) Name() string { return PersistentName }
func (s *Persistent[V]) Len() int     { return s.t.Len() }

// Snapshot returns the current tree version. Later edits of s will not
// affect it.
func (s *Persistent[V]) Snapshot() *btree.Tree[V] {
	return s.t
}

// At descends the current tree version to position i.
func (s *Persistent[V]) At(i int) (V, error) {
	v, err := s.t.At(i)
	return v, wrapBTreeError(err, i, s.t.Len())
}

// InsertAt creates a new tree version holding v at i and makes it current.
func (s *Persistent[V]) InsertAt(i int, v V) error {
	t, err := s.t.InsertAt(i, v)
	if err != nil {
		return wrapBTreeError(err, i, s.t.Len())
	}
	s.t = t
	return nil
}

// Set creates a new tree version with v at i and makes it current.
func (s *Persistent[V]) Set(i int, v V) error {
	t, err := s.t.Set(i, v)
	if err != nil {
		return wrapBTreeError(err, i, s.t.Len())
	}
	s.t = t
	return nil
}

func wrapBTreeError(err error, i, n int) error {
	if errors.Is(err, btree.ErrIndexOutOfBounds) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfBounds, i, n)
	}
	return err
}
