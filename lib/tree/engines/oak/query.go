package oak

import (
	"github.com/ValentinKolb/dTree/lib/tree"
	"github.com/ValentinKolb/dTree/lib/tree/engines/oak/internal"
	"github.com/ValentinKolb/dTree/lib/tree/util"
)

// --------------------------------------------------------------------------
// Node based query helpers (shared by the engine and its views)
// --------------------------------------------------------------------------
//
// Every helper takes the node the caller's coordinate system is rooted at. A nil node is a
// missing sub-tree and answers every query with "nothing". The engine passes its root, a view
// passes the node its path resolves to right now.

// orderOf returns the comparator used by ordered queries. A nil comparator falls back to the
// natural display order of the labels.
func orderOf[N comparable](c tree.Comparator[N]) tree.Comparator[N] {
	if c != nil {
		return c
	}
	return func(a, b N) int { return util.CompareLabels(a, b) }
}

func has[N comparable, L any](root *internal.Node[N, L], rel tree.Relation, p tree.Path[N]) bool {
	if root == nil {
		return false
	}
	found := false
	internal.Walk(root, rel, p.Nodes(), nil, func(_ []N, n *internal.Node[N, L]) bool {
		found = n.Item().Found()
		return !found
	})
	return found
}

func countAt[N comparable, L any](root *internal.Node[N, L], rel tree.Relation, p tree.Path[N]) int {
	if root == nil {
		return 0
	}
	count := 0
	internal.Walk(root, rel, p.Nodes(), nil, func(_ []N, n *internal.Node[N, L]) bool {
		if n.Item().Found() {
			count++
		}
		return true
	})
	return count
}

func getAt[N comparable, L any](root *internal.Node[N, L], p tree.Path[N]) tree.Presence[L] {
	if root == nil {
		return tree.Absent[L]()
	}
	if n := internal.Resolve(root, p.Nodes()); n != nil {
		return n.Item()
	}
	return tree.Absent[L]()
}

// collect projects every item in relation rel to p through fn. Passing a nil comparator
// visits in arbitrary order.
func collect[N comparable, L any, T any](root *internal.Node[N, L], rel tree.Relation, p tree.Path[N], c tree.Comparator[N], fn func(path []N, v L) T) []T {
	if root == nil {
		return nil
	}
	var out []T
	internal.Walk(root, rel, p.Nodes(), c, func(path []N, n *internal.Node[N, L]) bool {
		if v, ok := n.Item().Get(); ok {
			out = append(out, fn(path, v))
		}
		return true
	})
	return out
}

func items[N comparable, L any](root *internal.Node[N, L], rel tree.Relation, p tree.Path[N], c tree.Comparator[N]) []L {
	return collect(root, rel, p, c, func(_ []N, v L) L { return v })
}

func entries[N comparable, L any](source tree.ITree[N, L], root *internal.Node[N, L], rel tree.Relation, p tree.Path[N], c tree.Comparator[N]) []tree.Entry[N, L] {
	return collect(root, rel, p, c, func(path []N, v L) tree.Entry[N, L] {
		return tree.NewEntry(source, tree.PathFromSlice(path), v)
	})
}

func paths[N comparable, L any](root *internal.Node[N, L], rel tree.Relation, p tree.Path[N], c tree.Comparator[N]) []tree.Path[N] {
	return collect(root, rel, p, c, func(path []N, _ L) tree.Path[N] {
		return tree.PathFromSlice(path)
	})
}

// childLabels returns the labels of the children of the node at p (nil if p does not resolve).
func childLabels[N comparable, L any](root *internal.Node[N, L], p tree.Path[N]) []N {
	if root == nil {
		return nil
	}
	n := internal.Resolve(root, p.Nodes())
	if n == nil {
		return nil
	}
	labels := make([]N, 0, n.NumChildren())
	n.Children(func(label N, _ *internal.Node[N, L]) bool {
		labels = append(labels, label)
		return true
	})
	return labels
}

// info builds the TreeInfo of the sub-tree rooted at root.
func info[N comparable, L any](root *internal.Node[N, L], impl tree.Implementation, metadata interface{}) tree.TreeInfo {
	if root == nil {
		root = internal.NewNode[N, L]()
	}
	s := internal.Collect(root)
	return tree.TreeInfo{
		Implementation: impl,
		Items:          s.Items,
		Nodes:          s.Nodes,
		EmptyNodes:     s.EmptyNodes,
		Depth:          s.Depth,
		Fanout:         util.NewDistributionStats(s.Fanout),
		Metadata:       metadata,
	}
}
