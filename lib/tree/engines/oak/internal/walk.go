package internal

import (
	"github.com/ValentinKolb/dTree/lib/tree"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// --------------------------------------------------------------------------
// Traversal
// --------------------------------------------------------------------------

// Visitor is called once per node selected by a walk. The path slice is a shared buffer that
// is only valid during the call; copy it (tree.PathFromSlice does) before keeping it.
// Returning false stops the walk.
type Visitor[N comparable, L any] func(path []N, n *Node[N, L]) bool

// Walk visits every node standing in relation rel to target, starting at root.
// This is the only traversal of the engine; every query is a projection of it.
//
// A nil comparator visits children in map order. A non-nil comparator visits the children of
// every node sorted by it (nil labels first), which yields a pre-order walk in hierarchical
// path order: a node is visited before its descendants and siblings are visited in label order.
//
// Walk visits nodes, not items; visitors filter on Node.Item themselves.
func Walk[N comparable, L any](root *Node[N, L], rel tree.Relation, target []N, c tree.Comparator[N], visit Visitor[N, L]) {
	if rel == tree.RelAlong {
		walkAlong(root, target, visit)
		return
	}

	n := Resolve(root, target)
	if n == nil {
		return
	}

	includeTarget, depth := rel.Span()
	buf := make([]N, len(target), len(target)+8)
	copy(buf, target)

	var order tree.Comparator[N]
	if c != nil {
		order = tree.NullsFirst(c)
	}
	walkSubtree(n, buf, 0, includeTarget, depth, order, visit)
}

// walkAlong visits root and every node on the way down to target, in that order.
func walkAlong[N comparable, L any](root *Node[N, L], target []N, visit Visitor[N, L]) {
	n := root
	if !visit(target[:0], n) {
		return
	}
	for i, label := range target {
		if n = n.children[label]; n == nil {
			return
		}
		if !visit(target[:i+1], n) {
			return
		}
	}
}

func walkSubtree[N comparable, L any](n *Node[N, L], path []N, level int, includeTarget bool, depth int, order tree.Comparator[N], visit Visitor[N, L]) bool {
	if level > 0 || includeTarget {
		if !visit(path, n) {
			return false
		}
	}
	if depth >= 0 && level >= depth {
		return true
	}

	if order == nil {
		for label, child := range n.children {
			if !walkSubtree(child, append(path, label), level+1, includeTarget, depth, order, visit) {
				return false
			}
		}
		return true
	}

	labels := maps.Keys(n.children)
	slices.SortFunc(labels, order)
	for _, label := range labels {
		if !walkSubtree(n.children[label], append(path, label), level+1, includeTarget, depth, order, visit) {
			return false
		}
	}
	return true
}

// --------------------------------------------------------------------------
// Statistics
// --------------------------------------------------------------------------

// Stats summarizes the shape of a (sub-)tree.
type Stats struct {
	Items      int       // nodes holding an item
	Nodes      int       // all nodes, the starting node included
	EmptyNodes int       // nodes without item and children (never the starting node)
	Depth      int       // length of the longest path holding an item
	Fanout     []float64 // child count of every inner node
}

// Collect computes the statistics of the sub-tree rooted at n.
func Collect[N comparable, L any](n *Node[N, L]) Stats {
	var s Stats
	collect(n, 0, &s)
	return s
}

func collect[N comparable, L any](n *Node[N, L], level int, s *Stats) {
	s.Nodes++
	if n.item.Found() {
		s.Items++
		s.Depth = max(s.Depth, level)
	}
	if level > 0 && n.IsEmpty() {
		s.EmptyNodes++
	}
	if len(n.children) > 0 {
		s.Fanout = append(s.Fanout, float64(len(n.children)))
	}
	for _, child := range n.children {
		collect(child, level+1, s)
	}
}

// MaxItemDepth returns the length of the longest path below n that holds an item.
func MaxItemDepth[N comparable, L any](n *Node[N, L]) int {
	depth := 0
	var rec func(n *Node[N, L], level int)
	rec = func(n *Node[N, L], level int) {
		if n.item.Found() {
			depth = max(depth, level)
		}
		for _, child := range n.children {
			rec(child, level+1)
		}
	}
	rec(n, 0)
	return depth
}
