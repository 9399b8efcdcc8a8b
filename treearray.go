package treearray

import (
	"iter"
)

// TreeArray is an ordered sequence of values of type V, addressed by
// position. The zero value is an empty tree array ready to use.
//
// TreeArrays are not safe for concurrent use. Even read access (At) modifies
// the tree, as it splays the accessed node to the root.
type TreeArray[V any] struct {
	root *node[V]
}

// New creates an empty tree array.
func New[V any]() *TreeArray[V] {
	return &TreeArray[V]{}
}

// FromSlice creates a tree array holding the values of a slice, in order.
// The tree is built perfectly balanced.
func FromSlice[V any](values []V) *TreeArray[V] {
	return &TreeArray[V]{root: build(values)}
}

func build[V any](values []V) *node[V] {
	if len(values) == 0 {
		return nil
	}
	mid := len(values) / 2
	return newNode(values[mid], build(values[:mid]), build(values[mid+1:]))
}

// Len returns the number of values in the tree array.
func (t *TreeArray[V]) Len() int {
	if t == nil {
		return 0
	}
	return sizeOf(t.root)
}

// IsEmpty reports whether the tree array holds no values.
func (t *TreeArray[V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// At returns the value at position index.
// If index is not a valid position, ErrIndexOutOfBounds is returned.
func (t *TreeArray[V]) At(index int) (V, error) {
	var zero V
	if index < 0 || index >= t.Len() {
		return zero, ErrIndexOutOfBounds
	}
	t.root = splay(t.root, index)
	assert(t.root.relIndex() == index, "splay did not bring index to root")
	return t.root.value, nil
}

// InsertAt inserts a value at position index. After insertion, v is found at
// index and every value previously at a position ≥ index has moved up by one.
// Valid positions are 0…Len(); inserting at Len() appends v.
func (t *TreeArray[V]) InsertAt(index int, v V) error {
	if t == nil {
		return ErrIllegalArguments
	}
	if index < 0 || index > t.Len() {
		return ErrIndexOutOfBounds
	}
	if t.root == nil {
		t.root = newNode(v, nil, nil)
		return nil
	}
	if index == t.root.size {
		// the current last node will be left of v
		root := splay(t.root, index-1)
		t.root = newNode(v, root, nil)
		return nil
	}
	// the current node at index moves to the right, and will therefore
	// be found at index+1
	root := splay(t.root, index)
	left := root.removeLeft()
	t.root = newNode(v, left, root)
	return nil
}

// Append adds values at the end of the tree array.
func (t *TreeArray[V]) Append(values ...V) {
	for _, v := range values {
		if err := t.InsertAt(t.Len(), v); err != nil {
			panic(err) // cannot happen for a non-nil tree array
		}
	}
}

// Set replaces the value at position index, returning the previous value.
// No other value changes its position.
func (t *TreeArray[V]) Set(index int, v V) (V, error) {
	var zero V
	if index < 0 || index >= t.Len() {
		return zero, ErrIndexOutOfBounds
	}
	t.root = splay(t.root, index)
	old := t.root.value
	t.root.value = v
	return old, nil
}

// DeleteAt removes the value at position index and returns it. Every value at
// a position > index moves down by one.
func (t *TreeArray[V]) DeleteAt(index int) (V, error) {
	var zero V
	if index < 0 || index >= t.Len() {
		return zero, ErrIndexOutOfBounds
	}
	root := splay(t.root, index)
	left, right := root.removeLeft(), root.removeRight()
	if left == nil {
		t.root = right
	} else {
		// the last node of left has no right child after splaying
		left = splay(left, left.size-1)
		assert(left.right == nil, "splay to last position left a right child")
		left.right = right
		left.resize()
		t.root = left
	}
	T().Debugf("tree array: deleted value at %d, len=%d", index, t.Len())
	return root.value, nil
}

// Each calls fn for every value in order, together with its position.
// Iteration stops early if fn returns false.
//
// Each does not re-balance the tree.
func (t *TreeArray[V]) Each(fn func(index int, v V) bool) {
	if t == nil || fn == nil {
		return
	}
	var stack []*node[V]
	n, i := t.root, 0
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(i, n.value) {
			return
		}
		i++
		n = n.right
	}
}

// All returns an iterator over positions and values, in order.
func (t *TreeArray[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		t.Each(yield)
	}
}

// Values returns the values of the tree array as a slice.
func (t *TreeArray[V]) Values() []V {
	values := make([]V, 0, t.Len())
	t.Each(func(_ int, v V) bool {
		values = append(values, v)
		return true
	})
	return values
}

// String returns a debug representation of the tree structure.
func (t *TreeArray[V]) String() string {
	if t == nil || t.root == nil {
		return "nil"
	}
	return t.root.String()
}
