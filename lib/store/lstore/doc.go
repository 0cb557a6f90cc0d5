// Package lstore implements a local, in-memory hierarchical key-value store based on the
// store.IStore interface. It provides a thin wrapper around any tree.ITree[string, string]
// implementation that turns string keys into tree paths. Data is stored entirely in memory
// and is not persisted between process restarts.
//
// Key Features:
//   - Pure in-memory storage without persistence
//   - Direct integration with tree.ITree implementations
//   - Sub-stores backed by live branch views of the same tree
//   - Operation and error counters exported through a VictoriaMetrics set
//   - Thread-safe operations for concurrent access
//
// Implementation Details:
//
//   - Keys: A key is split at the separator (Options.Separator, "/" by default). Leading
//     and trailing separators are ignored, so "/a/b/" and "a/b" address the same value and
//     "" addresses the root. Keys with empty segments return RetCInvalidKey.
//
//   - Branch Views: Every store, the top level one included, works through a branch view
//     of the tree. Deleting through a view removes the branches it leaves without values,
//     so the tree never collects empty nodes no matter how long the store is used.
//
//   - Composition Architecture: The store.TreeFactory injects the underlying tree. This
//     allows the store to work with any tree.ITree engine without modification.
//
// Thread Safety:
//
//	The tree engines are not safe for concurrent use. The store serializes all calls
//	with a mutex that a store shares with every sub-store created from it.
//
// Usage Example:
//
//	// Create a store with an oak tree backend
//	factory := func() tree.ITree[string, string] { return oak.New[string, string]() }
//	s := lstore.NewLocalStore(factory, lstore.DefaultOptions())
//
//	// Store values
//	err := s.Set("users/alice/age", "42")
//
//	// Hand out the users sub-tree
//	users, err := s.Sub("users")
//	value, exists, err := users.Get("alice/age")
package lstore
