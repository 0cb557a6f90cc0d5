package tree

// --------------------------------------------------------------------------
// Core Interface
// --------------------------------------------------------------------------

// Core is the minimal set of operations a tree implementation provides.
// Every other operation of ITree is derived from it by Queries.
//
// All paths passed to a tree are relative to its root. For a branch view this is the
// path of the view, so a view behaves exactly like a tree of its own.
type Core[N comparable, L any] interface {

	// --------------------------------------------------------------------------
	// Query Operations
	// --------------------------------------------------------------------------

	// Has reports whether at least one item exists at a path standing in relation rel to p.
	Has(rel Relation, p Path[N]) bool

	// Items returns the items at all paths standing in relation rel to p, in arbitrary order.
	Items(rel Relation, p Path[N]) []L

	// ItemsInOrder returns the same items as Items, sorted by the hierarchical order of their paths.
	ItemsInOrder(rel Relation, p Path[N], c Comparator[N]) []L

	// Entries returns the (path, item) pairs standing in relation rel to p, in arbitrary order.
	Entries(rel Relation, p Path[N]) []Entry[N, L]

	// EntriesInOrder returns the same entries as Entries, sorted by the hierarchical order of their paths.
	EntriesInOrder(rel Relation, p Path[N], c Comparator[N]) []Entry[N, L]

	// Paths returns the paths holding an item that stand in relation rel to p, in arbitrary order.
	Paths(rel Relation, p Path[N]) []Path[N]

	// PathsInOrder returns the same paths as Paths, sorted in hierarchical order.
	PathsInOrder(rel Relation, p Path[N], c Comparator[N]) []Path[N]

	// CountAt returns the number of items standing in relation rel to p.
	CountAt(rel Relation, p Path[N]) int

	// GetAtSafely returns the item at p. It never fails: a missing node and a node without
	// an item both report an absent Presence.
	GetAtSafely(p Path[N]) Presence[L]

	// --------------------------------------------------------------------------
	// Write Operations
	// --------------------------------------------------------------------------

	// SetAt stores v at p, creating missing intermediate nodes. It returns the previous item.
	SetAt(p Path[N], v L) Presence[L]

	// SetAtIfAbsent stores v at p only if p holds no item yet. It returns the previous item;
	// if that is present, nothing was changed.
	SetAtIfAbsent(p Path[N], v L) Presence[L]

	// ClearAt removes the item at p and returns it. Nodes below p are kept.
	ClearAt(p Path[N]) Presence[L]

	// ClearAtAndUnder removes the whole sub-tree rooted at p.
	ClearAtAndUnder(p Path[N])

	// ClearUnder removes everything strictly below p. The item at p survives; if there is
	// none, the node at p is removed as well.
	ClearUnder(p Path[N])

	// SetBranchAt replaces the sub-tree at p with a deep copy of src.
	SetBranchAt(p Path[N], src ITree[N, L])

	// --------------------------------------------------------------------------
	// Branch Operations
	// --------------------------------------------------------------------------

	// GetBranch returns a detached deep copy of the sub-tree at p (an empty tree if p does not resolve).
	GetBranch(p Path[N]) ITree[N, L]

	// GetBranchesUnder returns one detached copy per child of p, keyed by the child's label.
	GetBranchesUnder(p Path[N]) map[N]ITree[N, L]

	// GetBranchView returns a live view of the sub-tree at p.
	GetBranchView(p Path[N]) ITree[N, L]

	// GetBranchViewsUnder returns one live view per child of p, keyed by the child's label.
	GetBranchViewsUnder(p Path[N]) map[N]ITree[N, L]

	// --------------------------------------------------------------------------
	// Aggregate Operations
	// --------------------------------------------------------------------------

	// CountDepth returns the length of the longest path holding an item
	// (0 for an empty tree or a tree holding only a root item).
	CountDepth() int

	// ToTreeString renders the tree as an indented multi-line string.
	ToTreeString() string

	// GetInfo returns statistics about the tree.
	GetInfo() TreeInfo
}

// --------------------------------------------------------------------------
// Full Interface
// --------------------------------------------------------------------------

// ITree is the full tree contract: Core plus the named accessors for every relation.
// Implementations embed Queries to get the named accessors for free.
type ITree[N comparable, L any] interface {
	Core[N, L]

	// existence
	IsEmptyIn(rel Relation, p Path[N]) bool
	HasItems() bool
	IsEmpty() bool
	HasRootItem() bool
	HasItemAt(p Path[N]) bool
	HasNoItemAt(p Path[N]) bool
	HasItemsUnder(p Path[N]) bool
	HasNoItemsUnder(p Path[N]) bool
	HasItemsAtOrUnder(p Path[N]) bool
	HasNoItemsAtOrUnder(p Path[N]) bool
	HasItemsAlong(p Path[N]) bool
	HasNoItemsAlong(p Path[N]) bool
	HasItemsImmediatelyUnder(p Path[N]) bool
	HasNoItemsImmediatelyUnder(p Path[N]) bool
	HasItemsAtOrImmediatelyUnder(p Path[N]) bool
	HasNoItemsAtOrImmediatelyUnder(p Path[N]) bool

	// point access
	GetAt(p Path[N]) (L, error)
	GetRootItem() (L, error)
	GetRootItemSafely() Presence[L]
	GetAtOrDefault(p Path[N], def L) L
	GetRootItemOrDefault(def L) L
	GetAtOrDefaultAnyType(p Path[N], def any) any
	GetAtOrZero(p Path[N]) L
	GetRootItemOrZero() L

	// point mutation
	SetRootItem(v L) Presence[L]
	SetRootItemIfAbsent(v L) Presence[L]
	ClearRootItem() Presence[L]
	Clear()

	// retrieval
	GetItems() []L
	GetItemsInOrder(c Comparator[N]) []L
	GetItemsUnder(p Path[N]) []L
	GetItemsUnderInOrder(p Path[N], c Comparator[N]) []L
	GetItemsAtOrUnder(p Path[N]) []L
	GetItemsAtOrUnderInOrder(p Path[N], c Comparator[N]) []L
	GetItemsAlong(p Path[N]) []L
	GetItemsAlongInOrder(p Path[N], c Comparator[N]) []L
	GetItemsImmediatelyUnder(p Path[N]) []L
	GetItemsImmediatelyUnderInOrder(p Path[N], c Comparator[N]) []L
	GetEntries() []Entry[N, L]
	GetEntriesInOrder(c Comparator[N]) []Entry[N, L]
	GetEntriesUnder(p Path[N]) []Entry[N, L]
	GetEntriesUnderInOrder(p Path[N], c Comparator[N]) []Entry[N, L]
	GetEntriesAtOrUnder(p Path[N]) []Entry[N, L]
	GetEntriesAtOrUnderInOrder(p Path[N], c Comparator[N]) []Entry[N, L]
	GetEntriesAlong(p Path[N]) []Entry[N, L]
	GetEntriesAlongInOrder(p Path[N], c Comparator[N]) []Entry[N, L]
	GetEntriesImmediatelyUnder(p Path[N]) []Entry[N, L]
	GetEntriesImmediatelyUnderInOrder(p Path[N], c Comparator[N]) []Entry[N, L]
	GetPaths() []Path[N]
	GetPathsInOrder(c Comparator[N]) []Path[N]

	// aggregates and branches
	Count() int
	Copy() ITree[N, L]
	GetBranches() map[N]ITree[N, L]
	GetBranchViews() map[N]ITree[N, L]
}
