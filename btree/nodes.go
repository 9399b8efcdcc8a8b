package btree

const (
	// Base is the minimum occupancy of non-root nodes.
	Base = 6
	// MaxItems is the leaf capacity.
	MaxItems = 2 * Base
	// MaxChildren is the fanout of internal nodes.
	MaxChildren = 2 * Base
)

type treeNode[T any] interface {
	isLeaf() bool
	count() int // number of items in this subtree
}

type leafNode[T any] struct {
	// n is the logical item count; valid items are itemStore[:n].
	n uint8
	// itemStore is the fixed backing storage for leaf items.
	itemStore [MaxItems]T
	// items is a dynamic-length view over itemStore and must satisfy:
	// len(items) == int(n), cap(items) == len(itemStore), items backed by itemStore.
	items []T
}

func (l *leafNode[T]) isLeaf() bool { return true }
func (l *leafNode[T]) count() int   { return len(l.items) }

type innerNode[T any] struct {
	// total caches the number of items below this node.
	total int
	// n is the logical child count; valid children are childStore[:n].
	n uint8
	// childStore is the fixed backing storage for child pointers.
	childStore [MaxChildren]treeNode[T]
	// children is a dynamic-length view over childStore and must satisfy:
	// len(children) == int(n), cap(children) == len(childStore), children backed by childStore.
	children []treeNode[T]
}

func (n *innerNode[T]) isLeaf() bool { return false }
func (n *innerNode[T]) count() int   { return n.total }
