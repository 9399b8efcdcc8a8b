package btree

// At returns the leaf item at item index.
func (t *Tree[T]) At(index int) (T, error) {
	var zero T
	if index < 0 || index >= t.Len() {
		return zero, ErrIndexOutOfBounds
	}
	n := t.root
	for h := t.height; h > 1; h-- {
		var slot int
		slot, index = locateChildForDelete(n.(*innerNode[T]), index)
		n = n.(*innerNode[T]).children[slot]
	}
	return n.(*leafNode[T]).items[index], nil
}

// ForEach walks leaf items in-order.
//
// Iteration stops early if callback returns false.
func (t *Tree[T]) ForEach(fn func(item T) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	forEachItemNode[T](t.root, fn)
}

func forEachItemNode[T any](n treeNode[T], fn func(item T) bool) bool {
	if leaf, ok := n.(*leafNode[T]); ok {
		for _, item := range leaf.items {
			if !fn(item) {
				return false
			}
		}
		return true
	}
	for _, child := range n.(*innerNode[T]).children {
		if !forEachItemNode[T](child, fn) {
			return false
		}
	}
	return true
}

// Items returns all items of the tree as a fresh slice.
func (t *Tree[T]) Items() []T {
	items := make([]T, 0, t.Len())
	t.ForEach(func(item T) bool {
		items = append(items, item)
		return true
	})
	return items
}
