// Package oak implements the recursive tree engine behind the tree.ITree interface,
// together with live branch views that keep the engine free of empty branches.
//
// The package focuses on:
//   - A plain recursive node structure: every node owns an optional item and a map of
//     child nodes keyed by label
//   - A single traversal routine that every query is a projection of, so all path
//     relations behave the same way for items, entries, paths and counts
//   - Two strategies for accessing a sub-tree: detached copies and live views
//
// Key Components:
//
//   - oakTree: The engine. It owns the root node and implements tree.Core on top of the
//     internal node primitives; the named accessors come from the embedded tree.Queries.
//     Mutations through the engine are literal: ClearAt removes the item but leaves the
//     node in place, so a cleared leaf lingers as an empty node until Trim is called on
//     its path. ClearAtAndUnder and ClearUnder detach whole sub-trees and leave nothing
//     behind.
//
//   - viewImpl: A branch view. It stores a (tree, path) coordinate and resolves the node at
//     that path on every call. While the node does not exist the view answers like an empty
//     tree; the first write through the view (or the tree) creates it. Every clear through
//     a view trims along the complete path inside the backing tree afterward. Views of views
//     are flattened into one coordinate of the backing tree.
//
//   - internal.Node: The tree cell. Its item slot is a tree.Presence, which keeps a stored
//     nil apart from a missing item.
//
// Internal Mechanisms:
//
//   - Traversal: internal.Walk selects nodes by relation. RelAlong walks from the root
//     down to the target; every other relation resolves the target first and descends
//     from there, bounded by tree.Relation.Span. With a comparator, children are visited
//     in sorted order (nil labels first), which makes the pre-order walk emit paths in
//     hierarchical order without a separate sort.
//
//   - Trim: Walks down along a path recording the visited nodes, then walks that chain
//     backwards removing every empty node from its parent, stopping at the first node
//     that still holds an item or has children. The root is never removed.
//
//   - Copies: GetBranch, Copy and SetBranchAt clone node structures. Items are copied by
//     assignment, so pointer items are shared between a tree and its copies.
//
// Ordered Queries:
//
//	The InOrder variants take a tree.Comparator over labels. A nil comparator falls back
//	to util.CompareLabels, which orders labels of the built-in ordered kinds by value.
//
// Thread-safety:
//
//	Neither the engine nor its views are safe for concurrent use. All calls, including
//	calls through any view of a tree, must be serialized by the caller.
//
// Usage Example:
//
//	t := oak.New[string, int]()
//	t.SetAt(tree.NewPath("users", "alice"), 1)
//	t.SetAt(tree.NewPath("users", "bob"), 2)
//
//	users := t.GetBranchView(tree.NewPath("users"))
//	users.ClearAt(tree.NewPath("alice"))
//	users.ClearAt(tree.NewPath("bob")) // "users" is trimmed away
//
//	fmt.Println(t.IsEmpty()) // true
package oak
