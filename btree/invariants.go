package btree

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and should be used in tests.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}
	if t.root == nil {
		if t.height != 0 {
			return fmt.Errorf("%w: empty tree must have height=0", ErrInvalidTree)
		}
		return nil
	}
	if t.height <= 0 {
		return fmt.Errorf("%w: non-empty tree must have height > 0", ErrInvalidTree)
	}
	if inner, ok := t.root.(*innerNode[T]); ok && len(inner.children) < 2 {
		return fmt.Errorf("%w: internal root must have at least 2 children", ErrInvalidTree)
	}
	_, height, err := checkNode[T](t.root, true)
	if err != nil {
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvalidTree, height, t.height)
	}
	return nil
}

func checkNode[T any](n treeNode[T], isRoot bool) (items int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvalidTree)
	}
	if leaf, ok := n.(*leafNode[T]); ok {
		if err := checkLeafStorage(leaf); err != nil {
			return 0, 0, err
		}
		if len(leaf.items) == 0 {
			return 0, 0, fmt.Errorf("%w: empty leaf", ErrInvalidTree)
		}
		if !isRoot && len(leaf.items) < Base {
			return 0, 0, fmt.Errorf("%w: leaf underflow (%d < %d)", ErrInvalidTree, len(leaf.items), Base)
		}
		return len(leaf.items), 1, nil
	}
	inner := n.(*innerNode[T])
	if err := checkInnerStorage(inner); err != nil {
		return 0, 0, err
	}
	if len(inner.children) == 0 {
		return 0, 0, fmt.Errorf("%w: internal node has no children", ErrInvalidTree)
	}
	if !isRoot && len(inner.children) < Base {
		return 0, 0, fmt.Errorf("%w: internal node underflow (%d < %d)", ErrInvalidTree, len(inner.children), Base)
	}
	var totalItems int
	var childHeight int
	for i, child := range inner.children {
		if child == nil {
			return 0, 0, fmt.Errorf("%w: nil child at index %d", ErrInvalidTree, i)
		}
		cItems, cHeight, cErr := checkNode[T](child, false)
		if cErr != nil {
			return 0, 0, cErr
		}
		totalItems += cItems
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvalidTree)
		}
	}
	if totalItems != inner.total {
		return 0, 0, fmt.Errorf("%w: cached item count mismatch (%d != %d)", ErrInvalidTree, inner.total, totalItems)
	}
	return totalItems, childHeight + 1, nil
}

func checkLeafStorage[T any](leaf *leafNode[T]) error {
	if int(leaf.n) != len(leaf.items) {
		return fmt.Errorf("%w: leaf occupancy mismatch (%d != %d)", ErrInvalidTree, leaf.n, len(leaf.items))
	}
	if cap(leaf.items) != len(leaf.itemStore) {
		return fmt.Errorf("%w: leaf view cap mismatch (%d != %d)", ErrInvalidTree, cap(leaf.items), len(leaf.itemStore))
	}
	if len(leaf.items) > 0 && &leaf.items[0] != &leaf.itemStore[0] {
		return fmt.Errorf("%w: leaf view is not backed by fixed storage", ErrInvalidTree)
	}
	return nil
}

func checkInnerStorage[T any](inner *innerNode[T]) error {
	if int(inner.n) != len(inner.children) {
		return fmt.Errorf("%w: child occupancy mismatch (%d != %d)", ErrInvalidTree, inner.n, len(inner.children))
	}
	if cap(inner.children) != len(inner.childStore) {
		return fmt.Errorf("%w: child view cap mismatch (%d != %d)", ErrInvalidTree, cap(inner.children), len(inner.childStore))
	}
	if len(inner.children) > 0 && &inner.children[0] != &inner.childStore[0] {
		return fmt.Errorf("%w: child view is not backed by fixed storage", ErrInvalidTree)
	}
	return nil
}
