// Package store provides a high-level interface for hierarchical key-value storage
// on top of the tree.ITree implementations. It translates string keys ("a/b/c") into
// tree paths, reports failures through a unified error type and exposes sub-trees as
// stores of their own.
//
// The package focuses on:
//   - A unified interface (IStore) for hierarchical key-value operations
//   - Pluggable tree backends through the TreeFactory pattern
//
// Key Components:
//
//   - IStore Interface: The core abstraction defining operations on a hierarchical store:
//     point reads and writes, the three kinds of deletes (value only, whole sub-tree,
//     children only), listing and sub-stores. The interface methods return custom Error
//     types that describe why an operation failed.
//
//   - Error System: A structured error reporting mechanism using typed return codes
//     (RetCInvalidKey, RetCNotFound, ...) and descriptive messages. This lets callers
//     such as the shell tell a malformed key apart from a missing one.
//
//   - TreeFactory: A function type that abstracts the creation of the underlying
//     tree.ITree instance, providing dependency injection of the tree engine.
//
// Implementations:
//
//	- Local Store (lstore): An in-memory implementation backed by a single tree.
//	  Sub-stores are live branch views of that tree, so a sub-store never copies data
//	  and removing its last key also removes its now-empty branch from the tree.
//	  Available in the "github.com/ValentinKolb/dTree/lib/store/lstore" package.
//
// This interface-driven approach allows applications to:
//   - Address nested data with plain string keys
//   - Handle errors in a consistent and type-safe manner
//   - Hand out a sub-tree to a component without exposing the rest of the store
package store
