package treearray

import "fmt"

// Check validates the structural invariants of a tree array: the size of every
// node has to be the number of nodes in its subtree.
//
// Check is intended for tests and debugging.
func (t *TreeArray[V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree array", ErrCorruptTree)
	}
	_, err := checkNode(t.root, 0)
	return err
}

// checkNode returns the number of nodes of subtree n, where pos is the position
// of the leftmost node of n.
func checkNode[V any](n *node[V], pos int) (int, error) {
	if n == nil {
		return 0, nil
	}
	l, err := checkNode(n.left, pos)
	if err != nil {
		return 0, err
	}
	r, err := checkNode(n.right, pos+l+1)
	if err != nil {
		return 0, err
	}
	if n.size != l+r+1 {
		return 0, fmt.Errorf("%w: node at position %d has size %d, subtree holds %d",
			ErrCorruptTree, pos+l, n.size, l+r+1)
	}
	return n.size, nil
}
