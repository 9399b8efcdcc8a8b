package btree

import "errors"

var (
	// ErrInvalidTree signals a nil tree or a violated structural invariant.
	ErrInvalidTree = errors.New("btree: invalid tree")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("btree: index out of bounds")
)
