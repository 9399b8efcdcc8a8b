package btree

import (
	"fmt"
)

// Tree is a persistent, positional B+ tree holding items of type T.
//
// Trees are immutable values: every edit returns a new tree, sharing all
// untouched nodes with the receiver. Trees may therefore be read concurrently,
// and an edited tree never disturbs readers of its predecessor.
type Tree[T any] struct {
	root   treeNode[T]
	height int // 0 means empty tree
}

// New creates an empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// FromSlice creates a tree holding a copy of items, in order.
//
// Leaves and internal nodes are filled evenly, which is considerably cheaper
// than inserting items one by one.
func FromSlice[T any](items []T) *Tree[T] {
	t := &Tree[T]{}
	if len(items) == 0 {
		return t
	}
	var level []treeNode[T]
	start := 0
	for _, size := range groups(len(items), MaxItems) {
		level = append(level, makeLeaf(items[start:start+size]))
		start += size
	}
	t.height = 1
	for len(level) > 1 {
		var parents []treeNode[T]
		start = 0
		for _, size := range groups(len(level), MaxChildren) {
			parents = append(parents, makeInternal[T](level[start:start+size]...))
			start += size
		}
		level = parents
		t.height++
	}
	t.root = level[0]
	return t
}

// Clone returns a shallow clone of the tree root container.
//
// Node contents are shared intentionally; mutating operations use path-copy
// semantics.
func (t *Tree[T]) Clone() *Tree[T] {
	if t == nil {
		return nil
	}
	cloned := *t
	return &cloned
}

// IsEmpty reports whether the tree has no items.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of items in the tree.
func (t *Tree[T]) Len() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.root.count()
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// InsertAt inserts items at an item index and returns a new tree.
// Items previously at positions ≥ index move up by len(items).
func (t *Tree[T]) InsertAt(index int, items ...T) (*Tree[T], error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}
	if index < 0 || index > t.Len() {
		return nil, ErrIndexOutOfBounds
	}
	if len(items) == 0 {
		return t, nil
	}
	cloned := t.Clone()
	for i, item := range items {
		cloned.insertOneAt(index+i, item)
	}
	return cloned, nil
}

// Set replaces the item at index and returns a new tree.
func (t *Tree[T]) Set(index int, item T) (*Tree[T], error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}
	if index < 0 || index >= t.Len() {
		return nil, ErrIndexOutOfBounds
	}
	cloned := t.Clone()
	cloned.root = setRecursive[T](t.root, t.height, index, item)
	return cloned, nil
}

// DeleteAt removes one item at index and returns a new tree.
//
// Delete uses recursive path-copy with sibling borrow/merge rebalancing.
func (t *Tree[T]) DeleteAt(index int) (*Tree[T], error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}
	if index < 0 || index >= t.Len() {
		return nil, ErrIndexOutOfBounds
	}
	cloned := t.Clone()
	cloned.root = deleteRecursive[T](t.root, t.height, index)
	cloned.normalizeRoot()
	return cloned, nil
}

// insertOneAt inserts one item into this tree in place.
//
// Callers must use a private clone to preserve persistence.
func (t *Tree[T]) insertOneAt(index int, item T) {
	if t.root == nil {
		t.root = makeLeaf([]T{item})
		t.height = 1
		return
	}
	updated, promoted := insertRecursive[T](t.root, t.height, index, item)
	if promoted != nil {
		t.root = makeInternal[T](updated, promoted)
		t.height++
		return
	}
	t.root = updated
}

// insertRecursive inserts one item into subtree n and propagates split results.
//
// The returned promoted sibling is non-nil only when the updated subtree split.
func insertRecursive[T any](n treeNode[T], height, index int, item T) (treeNode[T], treeNode[T]) {
	assert(n != nil, "insertRecursive called with nil node")
	assert(height > 0, "insertRecursive called with invalid height")
	if height == 1 {
		leaf, ok := n.(*leafNode[T])
		assert(ok, "insertRecursive expected leaf at height 1")
		left, right := splitLeafItems(insertAt(leaf.items, index, item))
		if right == nil {
			return left, nil
		}
		return left, right
	}
	inner, ok := n.(*innerNode[T])
	assert(ok, "insertRecursive expected internal node")
	slot, local := locateChildForInsert(inner, index)
	updated, promoted := insertRecursive[T](inner.children[slot], height-1, local, item)
	children := append([]treeNode[T](nil), inner.children...)
	children[slot] = updated
	if promoted != nil {
		children = insertAt(children, slot+1, promoted)
	}
	left, right := splitChildren[T](children)
	if right == nil {
		return left, nil
	}
	return left, right
}

// setRecursive path-copies the route to index and replaces the item there.
func setRecursive[T any](n treeNode[T], height, index int, item T) treeNode[T] {
	if height == 1 {
		leaf := n.(*leafNode[T])
		updated := makeLeaf(leaf.items)
		updated.items[index] = item
		return updated
	}
	inner := n.(*innerNode[T])
	slot, local := locateChildForDelete(inner, index)
	children := append([]treeNode[T](nil), inner.children...)
	children[slot] = setRecursive[T](children[slot], height-1, local, item)
	return makeInternal[T](children...)
}

// deleteRecursive removes one item at index from subtree n and returns the
// updated subtree, or nil if the subtree became empty. The result may
// underflow; repairing it is up to the caller.
func deleteRecursive[T any](n treeNode[T], height, index int) treeNode[T] {
	assert(n != nil, "deleteRecursive called with nil node")
	assert(height > 0, "deleteRecursive called with invalid height")
	if height == 1 {
		leaf, ok := n.(*leafNode[T])
		assert(ok, "deleteRecursive expected leaf at height 1")
		assert(index >= 0 && index < len(leaf.items), "deleteRecursive index out of leaf range")
		if len(leaf.items) == 1 {
			return nil
		}
		return makeLeaf(removeRange(leaf.items, index, index+1))
	}
	inner, ok := n.(*innerNode[T])
	assert(ok, "deleteRecursive expected internal node")
	slot, local := locateChildForDelete(inner, index)
	updated := deleteRecursive[T](inner.children[slot], height-1, local)
	children := append([]treeNode[T](nil), inner.children...)
	if updated == nil {
		children = removeRange(children, slot, slot+1)
	} else {
		children[slot] = updated
		if underflow[T](updated) {
			children = rebalance[T](children, slot)
		}
	}
	if len(children) == 0 {
		return nil
	}
	return makeInternal[T](children...)
}

// locateChildForInsert maps a subtree item index to child slot + local index.
//
// It uses `remaining <= childItems` so boundary indices land in the left child,
// matching insertion semantics at child seams.
func locateChildForInsert[T any](inner *innerNode[T], index int) (childSlot int, localIndex int) {
	assert(len(inner.children) > 0, "locateChildForInsert called with empty children")
	remaining := index
	for i, child := range inner.children {
		childItems := child.count()
		if remaining <= childItems {
			return i, remaining
		}
		remaining -= childItems
	}
	panic("locateChildForInsert index exceeded subtree item count")
}

// locateChildForDelete maps a subtree item index to child slot + local index.
//
// It uses `remaining < childItems` so each absolute index is owned by exactly
// one child.
func locateChildForDelete[T any](inner *innerNode[T], index int) (childSlot int, localIndex int) {
	assert(len(inner.children) > 0, "locateChildForDelete called with empty children")
	remaining := index
	for i, child := range inner.children {
		childItems := child.count()
		if remaining < childItems {
			return i, remaining
		}
		remaining -= childItems
	}
	panic("locateChildForDelete index exceeded subtree item count")
}

// normalizeRoot canonicalizes root representation after structural edits.
//
// It applies the standard B-tree root rules:
//   - nil root => empty tree (height 0)
//   - internal root with single child => collapse repeatedly.
func (t *Tree[T]) normalizeRoot() {
	if t.root == nil {
		t.height = 0
		return
	}
	for {
		inner, ok := t.root.(*innerNode[T])
		if !ok || len(inner.children) != 1 {
			return
		}
		t.root = inner.children[0]
		t.height--
	}
}
