package sequence

import (
	"container/list"
	"fmt"
)

// ListName is the registry name of List.
const ListName = "list"

// List is a sequence backed by a doubly-linked list. Its start and end are
// easily accessible; the worst case for positional access is the middle.
type List[V any] struct {
	l *list.List
}

// NewList creates a list holding values.
func NewList[V any](values []V) *List[V] {
	l := list.New()
	for _, v := range values {
		l.PushBack(v)
	}
	return &List[V]{l: l}
}

// Name returns "list".
func (s *List[V]) Name() string { return ListName }
func (s *List[V]) Len() int     { return s.l.Len() }

// element walks to position i from the nearer end of the list.
func (s *List[V]) element(i int) *list.Element {
	n := s.l.Len()
	if i < n/2 {
		e := s.l.Front()
		for range i {
			e = e.Next()
		}
		return e
	}
	e := s.l.Back()
	for range n - 1 - i {
		e = e.Prev()
	}
	return e
}

// At walks to position i from the nearer end of the list.
func (s *List[V]) At(i int) (V, error) {
	var zero V
	if err := checkIndex(i, s.l.Len()); err != nil {
		return zero, err
	}
	return s.element(i).Value.(V), nil
}

// InsertAt splits the list at i, pushes v to the front of the tail and
// appends the tail again. With container/list this amounts to inserting
// before the element currently at i.
func (s *List[V]) InsertAt(i int, v V) error {
	n := s.l.Len()
	if i < 0 || i > n {
		return fmt.Errorf("%w: %d not in [0,%d]", ErrIndexOutOfBounds, i, n)
	}
	if i == n {
		s.l.PushBack(v)
		return nil
	}
	s.l.InsertBefore(v, s.element(i))
	return nil
}

// Set walks to position i and replaces its value.
func (s *List[V]) Set(i int, v V) error {
	if err := checkIndex(i, s.l.Len()); err != nil {
		return err
	}
	s.element(i).Value = v
	return nil
}
