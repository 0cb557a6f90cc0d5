package tree

import (
	"fmt"
	"iter"
	"strings"

	"github.com/cockroachdb/errors"
)

// --------------------------------------------------------------------------
// Path Type
// --------------------------------------------------------------------------

// Path is an immutable sequence of node labels addressing a location in a tree.
// The zero value (and every path of length 0) is the root path.
//
// Every transform returns a new Path; the underlying slice is never shared with
// the caller or mutated after construction.
type Path[N comparable] struct {
	nodes []N
}

// RootPath returns the empty path that addresses the root of a tree.
func RootPath[N comparable]() Path[N] {
	return Path[N]{}
}

// NewPath creates a path from the given labels.
func NewPath[N comparable](nodes ...N) Path[N] {
	return PathFromSlice(nodes)
}

// PathFromSlice creates a path from a slice of labels. The slice is copied.
func PathFromSlice[N comparable](nodes []N) Path[N] {
	if len(nodes) == 0 {
		return Path[N]{}
	}
	cp := make([]N, len(nodes))
	copy(cp, nodes)
	return Path[N]{nodes: cp}
}

// PathFromSeq creates a path by draining a (possibly lazy) sequence of labels.
func PathFromSeq[N comparable](seq iter.Seq[N]) Path[N] {
	var nodes []N
	for n := range seq {
		nodes = append(nodes, n)
	}
	return Path[N]{nodes: nodes}
}

// --------------------------------------------------------------------------
// Accessors
// --------------------------------------------------------------------------

// Len returns the number of labels in the path.
func (p Path[N]) Len() int {
	return len(p.nodes)
}

// IsRoot reports whether the path is the root path.
func (p Path[N]) IsRoot() bool {
	return len(p.nodes) == 0
}

// At returns the label at index i. It panics if i is out of range, like a slice index.
func (p Path[N]) At(i int) N {
	return p.nodes[i]
}

// Nodes returns a copy of the labels of the path.
func (p Path[N]) Nodes() []N {
	cp := make([]N, len(p.nodes))
	copy(cp, p.nodes)
	return cp
}

// All iterates over the index and label of every node in the path.
func (p Path[N]) All() iter.Seq2[int, N] {
	return func(yield func(int, N) bool) {
		for i, n := range p.nodes {
			if !yield(i, n) {
				return
			}
		}
	}
}

// First returns the first label of the path.
func (p Path[N]) First() (N, error) {
	if len(p.nodes) == 0 {
		var zero N
		return zero, errors.Wrap(ErrEmptyPath, "first node")
	}
	return p.nodes[0], nil
}

// Last returns the last label of the path.
func (p Path[N]) Last() (N, error) {
	if len(p.nodes) == 0 {
		var zero N
		return zero, errors.Wrap(ErrEmptyPath, "last node")
	}
	return p.nodes[len(p.nodes)-1], nil
}

// Parent returns the path one node shorter.
func (p Path[N]) Parent() (Path[N], error) {
	if len(p.nodes) == 0 {
		return Path[N]{}, errors.Wrap(ErrEmptyPath, "parent")
	}
	return Path[N]{nodes: p.nodes[:len(p.nodes)-1:len(p.nodes)-1]}, nil
}

// --------------------------------------------------------------------------
// Transforms
// --------------------------------------------------------------------------

// TruncateTo returns the first length labels of the path.
func (p Path[N]) TruncateTo(length int) (Path[N], error) {
	if err := p.checkCount("truncate length", length); err != nil {
		return Path[N]{}, err
	}
	return PathFromSlice(p.nodes[:length]), nil
}

// WithoutFirstNodes returns the path with the leading count labels dropped.
func (p Path[N]) WithoutFirstNodes(count int) (Path[N], error) {
	if err := p.checkCount("drop count", count); err != nil {
		return Path[N]{}, err
	}
	return PathFromSlice(p.nodes[count:]), nil
}

// WithoutLastNodes returns the path with the trailing count labels dropped.
func (p Path[N]) WithoutLastNodes(count int) (Path[N], error) {
	if err := p.checkCount("drop count", count); err != nil {
		return Path[N]{}, err
	}
	return PathFromSlice(p.nodes[:len(p.nodes)-count]), nil
}

// AppendedWith returns a new path with the given labels added to the end.
func (p Path[N]) AppendedWith(nodes ...N) Path[N] {
	if len(nodes) == 0 {
		return p
	}
	out := make([]N, 0, len(p.nodes)+len(nodes))
	out = append(out, p.nodes...)
	out = append(out, nodes...)
	return Path[N]{nodes: out}
}

// AppendedWithPath returns the concatenation of p and other.
func (p Path[N]) AppendedWithPath(other Path[N]) Path[N] {
	return p.AppendedWith(other.nodes...)
}

// PrependedWith returns a new path with the given labels added to the front.
func (p Path[N]) PrependedWith(nodes ...N) Path[N] {
	if len(nodes) == 0 {
		return p
	}
	out := make([]N, 0, len(p.nodes)+len(nodes))
	out = append(out, nodes...)
	out = append(out, p.nodes...)
	return Path[N]{nodes: out}
}

// Reversed returns the labels of the path in reverse order.
func (p Path[N]) Reversed() Path[N] {
	out := make([]N, len(p.nodes))
	for i, n := range p.nodes {
		out[len(p.nodes)-1-i] = n
	}
	return Path[N]{nodes: out}
}

// checkCount validates a count argument against the length of the path.
func (p Path[N]) checkCount(what string, count int) error {
	if count < 0 {
		return errors.Wrapf(ErrInvalidArgument, "%s must not be negative, got %d", what, count)
	}
	if count > len(p.nodes) {
		return errors.Wrapf(ErrInvalidArgument, "%s %d exceeds path length %d", what, count, len(p.nodes))
	}
	return nil
}

// --------------------------------------------------------------------------
// Predicates
// --------------------------------------------------------------------------

// Equals reports whether both paths hold the same labels in the same order.
func (p Path[N]) Equals(other Path[N]) bool {
	return len(p.nodes) == len(other.nodes) && p.hasPrefix(other.nodes)
}

// IsAncestorOf reports whether p is a strict prefix of other.
func (p Path[N]) IsAncestorOf(other Path[N]) bool {
	return len(p.nodes) < len(other.nodes) && other.hasPrefix(p.nodes)
}

// IsEqualOrAncestorOf reports whether p is a prefix of other.
func (p Path[N]) IsEqualOrAncestorOf(other Path[N]) bool {
	return len(p.nodes) <= len(other.nodes) && other.hasPrefix(p.nodes)
}

// IsDescendantOf reports whether other is a strict prefix of p.
func (p Path[N]) IsDescendantOf(other Path[N]) bool {
	return other.IsAncestorOf(p)
}

// IsEqualOrDescendantOf reports whether other is a prefix of p.
func (p Path[N]) IsEqualOrDescendantOf(other Path[N]) bool {
	return other.IsEqualOrAncestorOf(p)
}

// IsParentOf reports whether other is exactly one level below p.
func (p Path[N]) IsParentOf(other Path[N]) bool {
	return len(p.nodes)+1 == len(other.nodes) && other.hasPrefix(p.nodes)
}

// IsChildOf reports whether p is exactly one level below other.
func (p Path[N]) IsChildOf(other Path[N]) bool {
	return other.IsParentOf(p)
}

// hasPrefix compares the leading labels of p with prefix. The caller checks the lengths.
func (p Path[N]) hasPrefix(prefix []N) bool {
	if len(prefix) > len(p.nodes) {
		return false
	}
	for i, n := range prefix {
		if p.nodes[i] != n {
			return false
		}
	}
	return true
}

// --------------------------------------------------------------------------
// Formatting
// --------------------------------------------------------------------------

// String renders the path as [a b c].
func (p Path[N]) String() string {
	return "[" + p.Join(" ") + "]"
}

// Join renders the labels of the path separated by sep.
func (p Path[N]) Join(sep string) string {
	parts := make([]string, len(p.nodes))
	for i, n := range p.nodes {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, sep)
}
