// Package tree provides a generic, in-memory, ordered tree keyed by paths (sequences of
// node labels). An item may exist at any path, the empty root path included, independent
// of whether any longer path exists below it.
//
// The package focuses on:
//   - A unified interface for path addressed queries and mutations
//   - Consistent semantics across every path relation (at, under, at-or-under, along,
//     immediately-under, at-or-immediately-under)
//   - Ordered and unordered retrieval of items, entries and paths
//   - Two ways of accessing a sub-tree: a detached copy and a live view
//
// Key Components:
//
//   - Path: An immutable sequence of labels. It provides the ancestor and descendant
//     predicates used by every query, and the canonical hierarchical comparator
//     (PathComparator) used by every ordered query: labels are compared one by one, a nil
//     label sorts first and a path sorts immediately before its descendants.
//
//   - Relation: The path relationship a query is parameterized by. Every query of the
//     interface exists once per relation, either through the relation-parameterized Core
//     methods (Has, Items, Entries, Paths and their InOrder variants) or through the named
//     accessors provided by Queries (HasItemsUnder, GetEntriesAlongInOrder, ...).
//
//   - Presence: A (found, value) pair that distinguishes "no item" from "an item that is
//     nil or zero". Every accessor that must not fail reports through it.
//
//   - Entry: A (path, item) pair reported by the entry queries, with a reference to the
//     tree it was read from.
//
//   - ITree Interface: The contract every implementation satisfies. Implementations only
//     provide Core and embed Queries for the rest.
//
// Note on Items and Nodes:
//   - A node exists in the tree to give its descendants a place to live. Whether a node
//     holds an item is independent of that. A node without item and without children is
//     empty. Empty nodes may linger after ClearAt until they are trimmed; queries never
//     report them and never depend on them.
//
// Note on Errors:
//   - Only the throwing accessors (GetAt, GetRootItem) fail, with an error wrapping
//     ErrNoItemAtPath. The Safely, OrDefault and OrZero variants never fail.
//   - Path transforms fail with ErrInvalidArgument on negative or out of range counts
//     and with ErrEmptyPath when a label of the root path is requested.
//
// Thread-safety:
//
//	No implementation is safe for concurrent use. Callers that share a tree between
//	goroutines must serialize every call, including calls through branch views, since a
//	view resolves, mutates and trims in several steps.
//
// Related Packages:
//
// The engines/oak package (github.com/ValentinKolb/dTree/lib/tree/engines/oak) provides the
// recursive implementation of ITree, including live branch views with automatic trimming.
//
// The testing package (github.com/ValentinKolb/dTree/lib/tree/testing) provides a
// standardized conformance suite and benchmarks for ITree implementations.
package tree
