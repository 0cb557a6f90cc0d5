package tree

import (
	"github.com/cockroachdb/errors"
)

// --------------------------------------------------------------------------
// Errors
// --------------------------------------------------------------------------

var (
	// ErrNoItemAtPath is returned by the throwing accessors (GetAt, GetRootItem) when the
	// path does not resolve to a node or the node at the path holds no item.
	ErrNoItemAtPath = errors.New("tree: no item at path")

	// ErrEmptyPath is returned when the first or last node (or the parent) of the root path is requested.
	ErrEmptyPath = errors.New("tree: path is empty")

	// ErrInvalidArgument is returned by path transforms called with a negative or out of range count.
	ErrInvalidArgument = errors.New("tree: invalid argument")
)

// NoItemAtPath wraps ErrNoItemAtPath with the path that was looked up.
func NoItemAtPath[N comparable](p Path[N]) error {
	return errors.Wrapf(ErrNoItemAtPath, "path %s", p)
}
