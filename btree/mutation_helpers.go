package btree

// insertAt inserts values into a slice at idx and returns a new slice.
func insertAt[T any](src []T, idx int, values ...T) []T {
	assert(idx >= 0 && idx <= len(src), "insertAt index out of range")
	out := make([]T, 0, len(src)+len(values))
	out = append(out, src[:idx]...)
	out = append(out, values...)
	out = append(out, src[idx:]...)
	return out
}

// removeRange removes the half-open interval [from,to) from a slice and
// returns a new slice.
func removeRange[T any](src []T, from, to int) []T {
	assert(from >= 0 && from <= to && to <= len(src), "removeRange bounds invalid")
	out := make([]T, 0, len(src)-(to-from))
	out = append(out, src[:from]...)
	out = append(out, src[to:]...)
	return out
}

// concat returns a new slice holding a followed by b.
func concat[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// splitLeafItems builds one leaf from items, or two if items overflow a leaf.
func splitLeafItems[T any](items []T) (*leafNode[T], *leafNode[T]) {
	if len(items) <= MaxItems {
		return makeLeaf(items), nil
	}
	assert(len(items) <= 2*MaxItems, "leaf split requires more than one sibling")
	mid := len(items) / 2
	return makeLeaf(items[:mid]), makeLeaf(items[mid:])
}

// splitChildren builds one internal node from children, or two if children
// overflow a node.
func splitChildren[T any](children []treeNode[T]) (*innerNode[T], *innerNode[T]) {
	if len(children) <= MaxChildren {
		return makeInternal[T](children...), nil
	}
	assert(len(children) <= 2*MaxChildren, "inner split requires more than one sibling")
	mid := len(children) / 2
	return makeInternal[T](children[:mid]...), makeInternal[T](children[mid:]...)
}

// underflow reports whether a non-root node holds fewer than Base entries.
func underflow[T any](n treeNode[T]) bool {
	switch n := n.(type) {
	case *leafNode[T]:
		return len(n.items) < Base
	case *innerNode[T]:
		return len(n.children) < Base
	}
	panic("unknown tree node type")
}

// rebalance repairs the occupancy of the underfull child at slot, working on
// a private copy of the children of its parent. Siblings are never modified
// in place; replacements are freshly made nodes.
//
// The order of sibling operations is: borrow-left, borrow-right, merge-left,
// merge-right.
func rebalance[T any](children []treeNode[T], slot int) []treeNode[T] {
	assert(slot >= 0 && slot < len(children), "rebalance slot out of range")
	hasLeft, hasRight := slot > 0, slot+1 < len(children)
	if !hasLeft && !hasRight {
		return children // single child of the root, collapsed by the caller
	}
	if leaf, ok := children[slot].(*leafNode[T]); ok {
		return rebalanceLeaf[T](children, slot, leaf, hasLeft, hasRight)
	}
	inner := children[slot].(*innerNode[T])
	return rebalanceInner[T](children, slot, inner, hasLeft, hasRight)
}

func rebalanceLeaf[T any](children []treeNode[T], slot int, child *leafNode[T], hasLeft, hasRight bool) []treeNode[T] {
	var left, right *leafNode[T]
	if hasLeft {
		left = children[slot-1].(*leafNode[T])
	}
	if hasRight {
		right = children[slot+1].(*leafNode[T])
	}
	switch {
	case hasLeft && len(left.items) > Base:
		last := len(left.items) - 1
		children[slot] = makeLeaf(insertAt(child.items, 0, left.items[last]))
		children[slot-1] = makeLeaf(left.items[:last])
	case hasRight && len(right.items) > Base:
		children[slot] = makeLeaf(insertAt(child.items, len(child.items), right.items[0]))
		children[slot+1] = makeLeaf(right.items[1:])
	case hasLeft:
		children[slot-1] = makeLeaf(concat(left.items, child.items))
		children = removeRange(children, slot, slot+1)
	default:
		children[slot] = makeLeaf(concat(child.items, right.items))
		children = removeRange(children, slot+1, slot+2)
	}
	return children
}

func rebalanceInner[T any](children []treeNode[T], slot int, child *innerNode[T], hasLeft, hasRight bool) []treeNode[T] {
	var left, right *innerNode[T]
	if hasLeft {
		left = children[slot-1].(*innerNode[T])
	}
	if hasRight {
		right = children[slot+1].(*innerNode[T])
	}
	switch {
	case hasLeft && len(left.children) > Base:
		last := len(left.children) - 1
		children[slot] = makeInternal[T](insertAt(child.children, 0, left.children[last])...)
		children[slot-1] = makeInternal[T](left.children[:last]...)
	case hasRight && len(right.children) > Base:
		children[slot] = makeInternal[T](insertAt(child.children, len(child.children), right.children[0])...)
		children[slot+1] = makeInternal[T](right.children[1:]...)
	case hasLeft:
		children[slot-1] = makeInternal[T](concat(left.children, child.children)...)
		children = removeRange(children, slot, slot+1)
	default:
		children[slot] = makeInternal[T](concat(child.children, right.children)...)
		children = removeRange(children, slot+1, slot+2)
	}
	return children
}
