package tree

import (
	"cmp"
	"reflect"

	"golang.org/x/exp/constraints"
)

// --------------------------------------------------------------------------
// Comparators
// --------------------------------------------------------------------------

// Comparator is a total order over node labels. It returns a negative number if a sorts
// before b, a positive number if a sorts after b and zero if both are equal.
type Comparator[N any] func(a, b N) int

// NaturalOrder returns the comparator of the natural order of an ordered label type.
func NaturalOrder[N constraints.Ordered]() Comparator[N] {
	return func(a, b N) int {
		return cmp.Compare(a, b)
	}
}

// NullsFirst wraps a comparator so that nil labels sort before every non-nil label.
// Two nil labels are equal. The wrapped comparator only ever sees non-nil labels.
func NullsFirst[N any](c Comparator[N]) Comparator[N] {
	return func(a, b N) int {
		aNil, bNil := IsNil(a), IsNil(b)
		switch {
		case aNil && bNil:
			return 0
		case aNil:
			return -1
		case bNil:
			return 1
		default:
			return c(a, b)
		}
	}
}

// PathComparator returns the canonical hierarchical order over paths for the given label comparator:
//   - labels are compared index by index, the first non-zero comparison decides
//   - a nil label sorts before every non-nil label
//   - if one path is a prefix of the other, the shorter path sorts first
//
// In this order a path immediately precedes the sub-tree of its descendants.
func PathComparator[N comparable](c Comparator[N]) func(a, b Path[N]) int {
	nodeCmp := NullsFirst(c)
	return func(a, b Path[N]) int {
		n := min(len(a.nodes), len(b.nodes))
		for i := 0; i < n; i++ {
			if r := nodeCmp(a.nodes[i], b.nodes[i]); r != 0 {
				return r
			}
		}
		return cmp.Compare(len(a.nodes), len(b.nodes))
	}
}

// ComparePaths compares two paths in the canonical hierarchical order.
func ComparePaths[N comparable](a, b Path[N], c Comparator[N]) int {
	return PathComparator(c)(a, b)
}

// IsNil reports whether v is a nil value of a nilable kind (pointer, interface, map, slice, channel, func).
// Non-nilable values (numbers, strings, structs) are never nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
