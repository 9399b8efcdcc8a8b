package btree

// makeLeaf materializes a new leaf backed by fixed inline storage.
// Items are copied.
func makeLeaf[T any](items []T) *leafNode[T] {
	leaf := &leafNode[T]{}
	assert(len(items) <= len(leaf.itemStore), "makeLeaf exceeds fixed leaf capacity")
	copy(leaf.itemStore[:], items)
	leaf.n = uint8(len(items))
	leaf.items = leaf.itemStore[:len(items):len(leaf.itemStore)]
	return leaf
}

// makeInternal materializes a new internal node backed by fixed inline storage
// and computes its item count from its children.
func makeInternal[T any](children ...treeNode[T]) *innerNode[T] {
	inner := &innerNode[T]{}
	assert(len(children) <= len(inner.childStore), "makeInternal exceeds fixed node capacity")
	copy(inner.childStore[:], children)
	inner.n = uint8(len(children))
	inner.children = inner.childStore[:len(children):len(inner.childStore)]
	for _, child := range inner.children {
		inner.total += child.count()
	}
	return inner
}

// groups splits total entries into runs of balanced occupancy, none larger than
// max. With more than max entries, every run holds at least Base of them.
func groups(total, max int) []int {
	if total <= max {
		return []int{total}
	}
	k := (total + max - 1) / max
	sizes := make([]int, k)
	for i := range sizes {
		sizes[i] = total / k
		if i < total%k {
			sizes[i]++
		}
	}
	return sizes
}
