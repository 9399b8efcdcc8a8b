package sequence

import (
	"fmt"
	"slices"
)

// VectorName is the registry name of Vector.
const VectorName = "vector"

// Vector is a sequence backed by a Go slice. Inserting moves every value
// behind the insertion point; inserting at the front of a large vector is its
// worst case.
type Vector[V any] struct {
	values []V
}

// NewVector creates a vector holding a copy of values.
func NewVector[V any](values []V) *Vector[V] {
	return &Vector[V]{values: slices.Clone(values)}
}

// Name returns "vector".
func (v *Vector[V]) Name() string { return VectorName }
func (v *Vector[V]) Len() int     { return len(v.values) }

// At returns the value at position i in constant time.
func (v *Vector[V]) At(i int) (V, error) {
	var zero V
	if err := checkIndex(i, len(v.values)); err != nil {
		return zero, err
	}
	return v.values[i], nil
}

// InsertAt shifts all values at positions ≥ i up by one, then stores x at i.
// The backing array grows as needed.
func (v *Vector[V]) InsertAt(i int, x V) error {
	if i < 0 || i > len(v.values) {
		return fmt.Errorf("%w: %d not in [0,%d]", ErrIndexOutOfBounds, i, len(v.values))
	}
	v.values = slices.Insert(v.values, i, x)
	return nil
}

// Set replaces the value at position i; nothing moves.
func (v *Vector[V]) Set(i int, x V) error {
	if err := checkIndex(i, len(v.values)); err != nil {
		return err
	}
	v.values[i] = x
	return nil
}
