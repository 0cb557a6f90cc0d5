package oak

import (
	"github.com/ValentinKolb/dTree/lib/tree"
	"github.com/ValentinKolb/dTree/lib/tree/engines/oak/internal"
)

// --------------------------------------------------------------------------
// Branch View
// --------------------------------------------------------------------------

// viewImpl is a live window onto the sub-tree of source at path. It stores the coordinate,
// never a node: every call resolves path again, so the view follows the sub-tree when it is
// removed, replaced or recreated through the source or through another view.
//
// All paths passed to a view are relative to its path. Writes go to the source at the
// absolute path (path ++ p). Every clear through a view is followed by a trim along the
// absolute path, so a view never leaves empty nodes behind in the source.
type viewImpl[N comparable, L any] struct {
	tree.Queries[N, L]
	source *oakTree[N, L]
	path   tree.Path[N]
}

// newView creates a view of source at path. Views of views are flattened by their callers
// into a single coordinate of the backing tree.
func newView[N comparable, L any](source *oakTree[N, L], path tree.Path[N]) *viewImpl[N, L] {
	v := &viewImpl[N, L]{source: source, path: path}
	v.Queries = tree.NewQueries[N, L](v)
	return v
}

// node resolves the root of the view (nil while the sub-tree does not exist).
func (v *viewImpl[N, L]) node() *internal.Node[N, L] {
	return internal.Resolve(v.source.root, v.path.Nodes())
}

func (v *viewImpl[N, L]) abs(p tree.Path[N]) tree.Path[N] {
	return v.path.AppendedWithPath(p)
}

// Path returns the path of the view inside its backing tree.
func (v *viewImpl[N, L]) Path() tree.Path[N] {
	return v.path
}

// --------------------------------------------------------------------------
// Query Operations
// --------------------------------------------------------------------------

func (v *viewImpl[N, L]) Has(rel tree.Relation, p tree.Path[N]) bool {
	return has(v.node(), rel, p)
}

func (v *viewImpl[N, L]) Items(rel tree.Relation, p tree.Path[N]) []L {
	return items(v.node(), rel, p, nil)
}

func (v *viewImpl[N, L]) ItemsInOrder(rel tree.Relation, p tree.Path[N], c tree.Comparator[N]) []L {
	return items(v.node(), rel, p, orderOf(c))
}

func (v *viewImpl[N, L]) Entries(rel tree.Relation, p tree.Path[N]) []tree.Entry[N, L] {
	return entries[N, L](v, v.node(), rel, p, nil)
}

func (v *viewImpl[N, L]) EntriesInOrder(rel tree.Relation, p tree.Path[N], c tree.Comparator[N]) []tree.Entry[N, L] {
	return entries[N, L](v, v.node(), rel, p, orderOf(c))
}

func (v *viewImpl[N, L]) Paths(rel tree.Relation, p tree.Path[N]) []tree.Path[N] {
	return paths(v.node(), rel, p, nil)
}

func (v *viewImpl[N, L]) PathsInOrder(rel tree.Relation, p tree.Path[N], c tree.Comparator[N]) []tree.Path[N] {
	return paths(v.node(), rel, p, orderOf(c))
}

func (v *viewImpl[N, L]) CountAt(rel tree.Relation, p tree.Path[N]) int {
	return countAt(v.node(), rel, p)
}

func (v *viewImpl[N, L]) GetAtSafely(p tree.Path[N]) tree.Presence[L] {
	return getAt(v.node(), p)
}

// --------------------------------------------------------------------------
// Write Operations
// --------------------------------------------------------------------------

func (v *viewImpl[N, L]) SetAt(p tree.Path[N], value L) tree.Presence[L] {
	return v.source.SetAt(v.abs(p), value)
}

func (v *viewImpl[N, L]) SetAtIfAbsent(p tree.Path[N], value L) tree.Presence[L] {
	return v.source.SetAtIfAbsent(v.abs(p), value)
}

func (v *viewImpl[N, L]) ClearAt(p tree.Path[N]) tree.Presence[L] {
	abs := v.abs(p)
	prev := v.source.ClearAt(abs)
	v.source.Trim(abs)
	return prev
}

func (v *viewImpl[N, L]) ClearAtAndUnder(p tree.Path[N]) {
	abs := v.abs(p)
	v.source.ClearAtAndUnder(abs)
	v.source.Trim(abs)
}

func (v *viewImpl[N, L]) ClearUnder(p tree.Path[N]) {
	abs := v.abs(p)
	v.source.ClearUnder(abs)
	v.source.Trim(abs)
}

func (v *viewImpl[N, L]) SetBranchAt(p tree.Path[N], src tree.ITree[N, L]) {
	abs := v.abs(p)
	v.source.SetBranchAt(abs, src)
	v.source.Trim(abs)
}

// --------------------------------------------------------------------------
// Branch Operations
// --------------------------------------------------------------------------

func (v *viewImpl[N, L]) GetBranch(p tree.Path[N]) tree.ITree[N, L] {
	return v.source.GetBranch(v.abs(p))
}

func (v *viewImpl[N, L]) GetBranchesUnder(p tree.Path[N]) map[N]tree.ITree[N, L] {
	return v.source.GetBranchesUnder(v.abs(p))
}

// GetBranchView returns a view of the backing tree at the combined path, so nested views
// never stack on top of each other.
func (v *viewImpl[N, L]) GetBranchView(p tree.Path[N]) tree.ITree[N, L] {
	return newView(v.source, v.abs(p))
}

func (v *viewImpl[N, L]) GetBranchViewsUnder(p tree.Path[N]) map[N]tree.ITree[N, L] {
	return v.source.GetBranchViewsUnder(v.abs(p))
}

// --------------------------------------------------------------------------
// Aggregate Operations
// --------------------------------------------------------------------------

func (v *viewImpl[N, L]) CountDepth() int {
	n := v.node()
	if n == nil {
		return 0
	}
	return internal.MaxItemDepth(n)
}

func (v *viewImpl[N, L]) ToTreeString() string {
	return render(v.node())
}

func (v *viewImpl[N, L]) GetInfo() tree.TreeInfo {
	return info(v.node(), tree.ImplOakView, map[string]string{"path": v.path.String()})
}

func (v *viewImpl[N, L]) String() string {
	return v.ToTreeString()
}
