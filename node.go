package treearray

import (
	"fmt"
	"strings"
)

// node is a node of a tree array. size is the number of nodes in the subtree
// rooted at this node, including the node itself.
type node[V any] struct {
	value V
	size  int
	left  *node[V]
	right *node[V]
}

func newNode[V any](v V, l, r *node[V]) *node[V] {
	n := &node[V]{value: v, left: l, right: r}
	n.resize()
	return n
}

func sizeOf[V any](n *node[V]) int {
	if n == nil {
		return 0
	}
	return n.size
}

// resize recomputes the size of n from its children.
func (n *node[V]) resize() {
	n.size = 1 + sizeOf(n.left) + sizeOf(n.right)
}

// relIndex is the index of n within the slice of the sequence spanned by the
// subtree rooted at n. For instance, in a tree like this:
//
//	  b
//	 / \
//	a   x
//	   / \
//	  c   d
//
// node x has relative index 1 (in the slice cxd, which is a part of abcxd).
func (n *node[V]) relIndex() int {
	return sizeOf(n.left)
}

// removeLeft detaches the left subtree of n and returns it.
func (n *node[V]) removeLeft() *node[V] {
	l := n.left
	n.size -= sizeOf(l)
	n.left = nil
	return l
}

// removeRight detaches the right subtree of n and returns it.
func (n *node[V]) removeRight() *node[V] {
	r := n.right
	n.size -= sizeOf(r)
	n.right = nil
	return r
}

func (n *node[V]) String() string {
	var b strings.Builder
	n.dump(&b)
	return b.String()
}

func (n *node[V]) dump(b *strings.Builder) {
	if n == nil {
		b.WriteString("nil")
		return
	}
	fmt.Fprintf(b, "[%v size=%d] left=(", n.value, n.size)
	n.left.dump(b)
	b.WriteString(") right=(")
	n.right.dump(b)
	b.WriteString(")")
}
