package oak

import (
	"github.com/ValentinKolb/dTree/lib/tree"
	"github.com/ValentinKolb/dTree/lib/tree/engines/oak/internal"
	"github.com/lni/dragonboat/v4/logger"
)

var log = logger.GetLogger("tree")

// --------------------------------------------------------------------------
// Interface
// --------------------------------------------------------------------------

// IOakTree is an ITree that also exposes explicit trimming of empty nodes.
type IOakTree[N comparable, L any] interface {
	tree.ITree[N, L]

	// Trim removes the empty nodes along p, bottom-up, and returns how many were removed.
	// It never removes a node that holds an item or has children, and never the root.
	Trim(p tree.Path[N]) int
}

// --------------------------------------------------------------------------
// Core oak tree structure
// --------------------------------------------------------------------------

// oakTree is the recursive tree engine. It owns its root node; a tree never shares
// nodes with another tree, only with the views created from it.
type oakTree[N comparable, L any] struct {
	tree.Queries[N, L]
	root *internal.Node[N, L]
}

// New creates an empty oak tree.
//
// Thread-safety: The returned tree is not safe for concurrent use.
func New[N comparable, L any]() IOakTree[N, L] {
	return newTree[N, L](internal.NewNode[N, L]())
}

// FromEntries creates an oak tree holding a copy of every entry.
func FromEntries[N comparable, L any](entries []tree.Entry[N, L]) IOakTree[N, L] {
	t := newTree[N, L](internal.NewNode[N, L]())
	for _, e := range entries {
		t.SetAt(e.Path(), e.Value())
	}
	return t
}

func newTree[N comparable, L any](root *internal.Node[N, L]) *oakTree[N, L] {
	t := &oakTree[N, L]{root: root}
	t.Queries = tree.NewQueries[N, L](t)
	return t
}

// --------------------------------------------------------------------------
// Query Operations
// --------------------------------------------------------------------------

func (t *oakTree[N, L]) Has(rel tree.Relation, p tree.Path[N]) bool {
	return has(t.root, rel, p)
}

func (t *oakTree[N, L]) Items(rel tree.Relation, p tree.Path[N]) []L {
	return items(t.root, rel, p, nil)
}

func (t *oakTree[N, L]) ItemsInOrder(rel tree.Relation, p tree.Path[N], c tree.Comparator[N]) []L {
	return items(t.root, rel, p, orderOf(c))
}

func (t *oakTree[N, L]) Entries(rel tree.Relation, p tree.Path[N]) []tree.Entry[N, L] {
	return entries[N, L](t, t.root, rel, p, nil)
}

func (t *oakTree[N, L]) EntriesInOrder(rel tree.Relation, p tree.Path[N], c tree.Comparator[N]) []tree.Entry[N, L] {
	return entries[N, L](t, t.root, rel, p, orderOf(c))
}

func (t *oakTree[N, L]) Paths(rel tree.Relation, p tree.Path[N]) []tree.Path[N] {
	return paths(t.root, rel, p, nil)
}

func (t *oakTree[N, L]) PathsInOrder(rel tree.Relation, p tree.Path[N], c tree.Comparator[N]) []tree.Path[N] {
	return paths(t.root, rel, p, orderOf(c))
}

func (t *oakTree[N, L]) CountAt(rel tree.Relation, p tree.Path[N]) int {
	return countAt(t.root, rel, p)
}

func (t *oakTree[N, L]) GetAtSafely(p tree.Path[N]) tree.Presence[L] {
	return getAt(t.root, p)
}

// --------------------------------------------------------------------------
// Write Operations
// --------------------------------------------------------------------------

func (t *oakTree[N, L]) SetAt(p tree.Path[N], v L) tree.Presence[L] {
	return internal.Vivify(t.root, p.Nodes()).SetItem(v)
}

func (t *oakTree[N, L]) SetAtIfAbsent(p tree.Path[N], v L) tree.Presence[L] {
	if prev := getAt(t.root, p); prev.Found() {
		return prev
	}
	return internal.Vivify(t.root, p.Nodes()).SetItem(v)
}

// ClearAt removes the item at p. The node itself stays in place, even if it is empty now;
// use Trim (or a branch view, which trims on its own) to remove it.
func (t *oakTree[N, L]) ClearAt(p tree.Path[N]) tree.Presence[L] {
	n := internal.Resolve(t.root, p.Nodes())
	if n == nil {
		return tree.Absent[L]()
	}
	return n.ClearItem()
}

func (t *oakTree[N, L]) ClearAtAndUnder(p tree.Path[N]) {
	internal.Detach(t.root, p.Nodes())
}

// ClearUnder removes all children of the node at p. If that node does not hold an item
// afterward it is removed as well (the root is emptied instead).
func (t *oakTree[N, L]) ClearUnder(p tree.Path[N]) {
	n := internal.Resolve(t.root, p.Nodes())
	if n == nil {
		return
	}
	n.ClearChildren()
	if !n.Item().Found() && !p.IsRoot() {
		internal.Detach(t.root, p.Nodes())
	}
}

// SetBranchAt replaces the sub-tree at p with a copy of src. The copy is taken before
// anything is changed, so src may be a view into this very tree.
func (t *oakTree[N, L]) SetBranchAt(p tree.Path[N], src tree.ITree[N, L]) {
	branch := cloneOf(src)
	nodes := p.Nodes()

	if len(nodes) == 0 {
		t.root.Reset()
		if v, ok := branch.Item().Get(); ok {
			t.root.SetItem(v)
		}
		branch.Children(func(label N, child *internal.Node[N, L]) bool {
			t.root.SetChild(label, child)
			return true
		})
		return
	}

	parent := internal.Vivify(t.root, nodes[:len(nodes)-1])
	parent.SetChild(nodes[len(nodes)-1], branch)
	if branch.IsEmpty() {
		t.Trim(p)
	}
}

// cloneOf returns a private deep copy of the nodes of src without its empty nodes. Trees of
// this package are copied structurally, anything else is rebuilt from its entries.
func cloneOf[N comparable, L any](src tree.ITree[N, L]) *internal.Node[N, L] {
	var root *internal.Node[N, L]
	switch s := src.(type) {
	case nil:
		return internal.NewNode[N, L]()
	case *oakTree[N, L]:
		root = internal.Clone(s.root)
	case *viewImpl[N, L]:
		root = internal.Clone(s.node())
	}
	if root != nil {
		internal.Prune(root)
		return root
	}
	root = internal.NewNode[N, L]()
	for _, e := range src.GetEntries() {
		internal.Vivify(root, e.Path().Nodes()).SetItem(e.Value())
	}
	return root
}

// --------------------------------------------------------------------------
// Branch Operations
// --------------------------------------------------------------------------

// GetBranch returns a detached copy of the sub-tree at p. Changes to the copy and to t
// never affect each other.
func (t *oakTree[N, L]) GetBranch(p tree.Path[N]) tree.ITree[N, L] {
	return newTree[N, L](internal.Clone(internal.Resolve(t.root, p.Nodes())))
}

func (t *oakTree[N, L]) GetBranchesUnder(p tree.Path[N]) map[N]tree.ITree[N, L] {
	branches := make(map[N]tree.ITree[N, L])
	for _, label := range childLabels(t.root, p) {
		branches[label] = t.GetBranch(p.AppendedWith(label))
	}
	return branches
}

// GetBranchView returns a live view of the sub-tree at p. The view does not need p to
// exist; it behaves like an empty tree until something is stored through it or through t.
func (t *oakTree[N, L]) GetBranchView(p tree.Path[N]) tree.ITree[N, L] {
	return newView(t, p)
}

func (t *oakTree[N, L]) GetBranchViewsUnder(p tree.Path[N]) map[N]tree.ITree[N, L] {
	views := make(map[N]tree.ITree[N, L])
	for _, label := range childLabels(t.root, p) {
		views[label] = newView(t, p.AppendedWith(label))
	}
	return views
}

// Trim removes the empty nodes along p. See IOakTree.Trim.
func (t *oakTree[N, L]) Trim(p tree.Path[N]) int {
	removed := internal.Trim(t.root, p.Nodes())
	if removed > 0 {
		log.Debugf("trimmed %d empty node(s) along %s", removed, p)
	}
	return removed
}

// --------------------------------------------------------------------------
// Aggregate Operations
// --------------------------------------------------------------------------

func (t *oakTree[N, L]) CountDepth() int {
	return internal.MaxItemDepth(t.root)
}

func (t *oakTree[N, L]) ToTreeString() string {
	return render(t.root)
}

func (t *oakTree[N, L]) GetInfo() tree.TreeInfo {
	return info(t.root, tree.ImplOak, nil)
}

func (t *oakTree[N, L]) String() string {
	return t.ToTreeString()
}
