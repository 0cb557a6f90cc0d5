// Package testing provides standardised tests and benchmarks for
// tree implementations that satisfy the tree.ITree interface.
//
// The package contains:
//   - testing: A conformance suite covering every path relation, ordered retrieval,
//     presence handling, copies, live views and the documented edge cases
//   - benchmark: Performance tests for the common point and sub-tree operations
//
// The suite only uses the public interface. A factory may therefore return a plain tree,
// a copy of a tree or a branch view: all of them must behave the same way.
//
// Example usage:
//
//	factory := func() tree.ITree[string, any] {
//		return oak.New[string, any]()
//	}
//
//	// Running the standard test suite
//	treetesting.RunTreeTests(t, "Oak", factory)
//
//	// Running performance benchmarks
//	treetesting.RunTreeBenchmarks(b, "Oak", factory)
package testing
