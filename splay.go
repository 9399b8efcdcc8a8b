package treearray

// splay performs a top-down splay operation on the tree rooted at t, searching
// for the node at position index (relative to t). It returns the new root of
// the tree. When finished, if index is a valid position, the node at index will
// be the root. Otherwise the node closest to index (the first or the last node
// of the tree) will be at the root.
//
// Splaying never changes the in-order sequence of values.
//
// Modified from the top-down splay with subtree sizes by D. Sleator.
func splay[V any](t *node[V], index int) *node[V] {
	if t == nil {
		return nil
	}
	var header node[V]
	// l collects the nodes left of the target on its right spine,
	// r collects the nodes right of the target on its left spine.
	l, r := &header, &header
	var lsize, rsize int
	for {
		k := t.relIndex()
		if index < k {
			if t.left == nil {
				break
			}
			if index < t.left.relIndex() { // rotate right
				y := t.left
				t.left = y.right
				y.right = t
				t.resize()
				t = y
				if t.left == nil {
					break
				}
			}
			// link right
			r.left = t
			r = t
			t = t.left
			rsize += 1 + sizeOf(r.right)
		} else if index > k {
			if t.right == nil {
				break
			}
			if index-k-1 > t.right.relIndex() { // rotate left
				y := t.right
				t.right = y.left
				y.left = t
				t.resize()
				t = y
				if t.right == nil {
					break
				}
			}
			// link left; index is now relative to the right subtree
			index -= t.relIndex() + 1
			l.right = t
			l = t
			t = t.right
			lsize += 1 + sizeOf(l.left)
		} else {
			break
		}
	}
	lsize += sizeOf(t.left)
	rsize += sizeOf(t.right)
	t.size = lsize + rsize + 1
	l.right, r.left = nil, nil
	// correct the sizes along the right spine of the left tree and
	// along the left spine of the right tree
	for y := header.right; y != nil; y = y.right {
		y.size = lsize
		lsize -= 1 + sizeOf(y.left)
	}
	for y := header.left; y != nil; y = y.left {
		y.size = rsize
		rsize -= 1 + sizeOf(y.right)
	}
	l.right = t.left
	r.left = t.right
	t.left = header.right
	t.right = header.left
	return t
}
