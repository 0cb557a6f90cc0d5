package tree

// Queries derives the named accessors of ITree from a Core implementation.
// Tree implementations embed it and point it at themselves:
//
//	t := &myTree{}
//	t.Queries = tree.NewQueries[N, L](t)
type Queries[N comparable, L any] struct {
	core Core[N, L]
}

// NewQueries creates the accessor layer for core.
func NewQueries[N comparable, L any](core Core[N, L]) Queries[N, L] {
	return Queries[N, L]{core: core}
}

// --------------------------------------------------------------------------
// Existence
// --------------------------------------------------------------------------

// IsEmptyIn is the negation of Has.
func (q Queries[N, L]) IsEmptyIn(rel Relation, p Path[N]) bool {
	return !q.core.Has(rel, p)
}

func (q Queries[N, L]) HasItems() bool { return q.core.Has(RelAtOrUnder, RootPath[N]()) }
func (q Queries[N, L]) IsEmpty() bool  { return !q.HasItems() }

func (q Queries[N, L]) HasRootItem() bool { return q.core.Has(RelAt, RootPath[N]()) }

func (q Queries[N, L]) HasItemAt(p Path[N]) bool   { return q.core.Has(RelAt, p) }
func (q Queries[N, L]) HasNoItemAt(p Path[N]) bool { return !q.core.Has(RelAt, p) }

func (q Queries[N, L]) HasItemsUnder(p Path[N]) bool   { return q.core.Has(RelUnder, p) }
func (q Queries[N, L]) HasNoItemsUnder(p Path[N]) bool { return !q.core.Has(RelUnder, p) }

func (q Queries[N, L]) HasItemsAtOrUnder(p Path[N]) bool   { return q.core.Has(RelAtOrUnder, p) }
func (q Queries[N, L]) HasNoItemsAtOrUnder(p Path[N]) bool { return !q.core.Has(RelAtOrUnder, p) }

func (q Queries[N, L]) HasItemsAlong(p Path[N]) bool   { return q.core.Has(RelAlong, p) }
func (q Queries[N, L]) HasNoItemsAlong(p Path[N]) bool { return !q.core.Has(RelAlong, p) }

func (q Queries[N, L]) HasItemsImmediatelyUnder(p Path[N]) bool {
	return q.core.Has(RelImmediatelyUnder, p)
}

func (q Queries[N, L]) HasNoItemsImmediatelyUnder(p Path[N]) bool {
	return !q.core.Has(RelImmediatelyUnder, p)
}

func (q Queries[N, L]) HasItemsAtOrImmediatelyUnder(p Path[N]) bool {
	return q.core.Has(RelAtOrImmediatelyUnder, p)
}

func (q Queries[N, L]) HasNoItemsAtOrImmediatelyUnder(p Path[N]) bool {
	return !q.core.Has(RelAtOrImmediatelyUnder, p)
}

// --------------------------------------------------------------------------
// Point Access
// --------------------------------------------------------------------------

// GetAt returns the item at p or an error wrapping ErrNoItemAtPath.
func (q Queries[N, L]) GetAt(p Path[N]) (L, error) {
	if v, ok := q.core.GetAtSafely(p).Get(); ok {
		return v, nil
	}
	var zero L
	return zero, NoItemAtPath(p)
}

// GetRootItem returns the root item or an error wrapping ErrNoItemAtPath.
func (q Queries[N, L]) GetRootItem() (L, error) {
	return q.GetAt(RootPath[N]())
}

func (q Queries[N, L]) GetRootItemSafely() Presence[L] {
	return q.core.GetAtSafely(RootPath[N]())
}

// GetAtOrDefault returns the item at p, or def if there is none.
// A present item that is nil or zero is returned as is.
func (q Queries[N, L]) GetAtOrDefault(p Path[N], def L) L {
	return q.core.GetAtSafely(p).OrDefault(def)
}

func (q Queries[N, L]) GetRootItemOrDefault(def L) L {
	return q.GetAtOrDefault(RootPath[N](), def)
}

// GetAtOrDefaultAnyType is GetAtOrDefault with a fallback of an arbitrary type.
func (q Queries[N, L]) GetAtOrDefaultAnyType(p Path[N], def any) any {
	if v, ok := q.core.GetAtSafely(p).Get(); ok {
		return v
	}
	return def
}

// GetAtOrZero returns the item at p or the zero value of L (nil for nilable types).
func (q Queries[N, L]) GetAtOrZero(p Path[N]) L {
	return q.core.GetAtSafely(p).Value()
}

func (q Queries[N, L]) GetRootItemOrZero() L {
	return q.GetAtOrZero(RootPath[N]())
}

// --------------------------------------------------------------------------
// Point Mutation
// --------------------------------------------------------------------------

func (q Queries[N, L]) SetRootItem(v L) Presence[L] {
	return q.core.SetAt(RootPath[N](), v)
}

func (q Queries[N, L]) SetRootItemIfAbsent(v L) Presence[L] {
	return q.core.SetAtIfAbsent(RootPath[N](), v)
}

func (q Queries[N, L]) ClearRootItem() Presence[L] {
	return q.core.ClearAt(RootPath[N]())
}

// Clear removes every item and node.
func (q Queries[N, L]) Clear() {
	q.core.ClearAtAndUnder(RootPath[N]())
}

// --------------------------------------------------------------------------
// Retrieval
// --------------------------------------------------------------------------

func (q Queries[N, L]) GetItems() []L {
	return q.core.Items(RelAtOrUnder, RootPath[N]())
}

func (q Queries[N, L]) GetItemsInOrder(c Comparator[N]) []L {
	return q.core.ItemsInOrder(RelAtOrUnder, RootPath[N](), c)
}

func (q Queries[N, L]) GetItemsUnder(p Path[N]) []L {
	return q.core.Items(RelUnder, p)
}

func (q Queries[N, L]) GetItemsUnderInOrder(p Path[N], c Comparator[N]) []L {
	return q.core.ItemsInOrder(RelUnder, p, c)
}

func (q Queries[N, L]) GetItemsAtOrUnder(p Path[N]) []L {
	return q.core.Items(RelAtOrUnder, p)
}

func (q Queries[N, L]) GetItemsAtOrUnderInOrder(p Path[N], c Comparator[N]) []L {
	return q.core.ItemsInOrder(RelAtOrUnder, p, c)
}

func (q Queries[N, L]) GetItemsAlong(p Path[N]) []L {
	return q.core.Items(RelAlong, p)
}

func (q Queries[N, L]) GetItemsAlongInOrder(p Path[N], c Comparator[N]) []L {
	return q.core.ItemsInOrder(RelAlong, p, c)
}

func (q Queries[N, L]) GetItemsImmediatelyUnder(p Path[N]) []L {
	return q.core.Items(RelImmediatelyUnder, p)
}

func (q Queries[N, L]) GetItemsImmediatelyUnderInOrder(p Path[N], c Comparator[N]) []L {
	return q.core.ItemsInOrder(RelImmediatelyUnder, p, c)
}

func (q Queries[N, L]) GetEntries() []Entry[N, L] {
	return q.core.Entries(RelAtOrUnder, RootPath[N]())
}

func (q Queries[N, L]) GetEntriesInOrder(c Comparator[N]) []Entry[N, L] {
	return q.core.EntriesInOrder(RelAtOrUnder, RootPath[N](), c)
}

func (q Queries[N, L]) GetEntriesUnder(p Path[N]) []Entry[N, L] {
	return q.core.Entries(RelUnder, p)
}

func (q Queries[N, L]) GetEntriesUnderInOrder(p Path[N], c Comparator[N]) []Entry[N, L] {
	return q.core.EntriesInOrder(RelUnder, p, c)
}

func (q Queries[N, L]) GetEntriesAtOrUnder(p Path[N]) []Entry[N, L] {
	return q.core.Entries(RelAtOrUnder, p)
}

func (q Queries[N, L]) GetEntriesAtOrUnderInOrder(p Path[N], c Comparator[N]) []Entry[N, L] {
	return q.core.EntriesInOrder(RelAtOrUnder, p, c)
}

func (q Queries[N, L]) GetEntriesAlong(p Path[N]) []Entry[N, L] {
	return q.core.Entries(RelAlong, p)
}

func (q Queries[N, L]) GetEntriesAlongInOrder(p Path[N], c Comparator[N]) []Entry[N, L] {
	return q.core.EntriesInOrder(RelAlong, p, c)
}

func (q Queries[N, L]) GetEntriesImmediatelyUnder(p Path[N]) []Entry[N, L] {
	return q.core.Entries(RelImmediatelyUnder, p)
}

func (q Queries[N, L]) GetEntriesImmediatelyUnderInOrder(p Path[N], c Comparator[N]) []Entry[N, L] {
	return q.core.EntriesInOrder(RelImmediatelyUnder, p, c)
}

func (q Queries[N, L]) GetPaths() []Path[N] {
	return q.core.Paths(RelAtOrUnder, RootPath[N]())
}

func (q Queries[N, L]) GetPathsInOrder(c Comparator[N]) []Path[N] {
	return q.core.PathsInOrder(RelAtOrUnder, RootPath[N](), c)
}

// --------------------------------------------------------------------------
// Aggregates and Branches
// --------------------------------------------------------------------------

// Count returns the number of items in the tree, the root item included.
func (q Queries[N, L]) Count() int {
	return q.core.CountAt(RelAtOrUnder, RootPath[N]())
}

// Copy returns a detached deep copy of the whole tree.
func (q Queries[N, L]) Copy() ITree[N, L] {
	return q.core.GetBranch(RootPath[N]())
}

// GetBranches returns a detached copy of every child of the root, keyed by label.
func (q Queries[N, L]) GetBranches() map[N]ITree[N, L] {
	return q.core.GetBranchesUnder(RootPath[N]())
}

// GetBranchViews returns a live view of every child of the root, keyed by label.
func (q Queries[N, L]) GetBranchViews() map[N]ITree[N, L] {
	return q.core.GetBranchViewsUnder(RootPath[N]())
}
