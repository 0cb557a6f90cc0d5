package testing

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/ValentinKolb/dTree/lib/tree"
)

// RunTreeBenchmarks runs all benchmarks for an ITree implementation.
// Trees are not safe for concurrent use, so every benchmark runs on a single goroutine.
func RunTreeBenchmarks(b *testing.B, name string, factory TreeFactory) {
	b.Run(name, func(b *testing.B) {
		b.Run("SetAt", func(b *testing.B) {
			benchmarkSetAt(b, factory())
		})

		b.Run("SetAtExisting", func(b *testing.B) {
			benchmarkSetAtExisting(b, factory())
		})

		b.Run("GetAt", func(b *testing.B) {
			benchmarkGetAt(b, factory())
		})

		b.Run("HasItemAt(not)", func(b *testing.B) {
			benchmarkHasNot(b, factory())
		})

		b.Run("ClearAt", func(b *testing.B) {
			benchmarkClearAt(b, factory())
		})

		b.Run("ItemsUnder", func(b *testing.B) {
			benchmarkItemsUnder(b, factory())
		})

		b.Run("EntriesInOrder", func(b *testing.B) {
			benchmarkEntriesInOrder(b, factory())
		})

		b.Run("GetBranch", func(b *testing.B) {
			benchmarkGetBranch(b, factory())
		})

		b.Run("ViewSetClear", func(b *testing.B) {
			benchmarkViewSetClear(b, factory())
		})

		b.Run("MixedUsage", func(b *testing.B) {
			benchmarkMixedUsage(b, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// benchPath spreads i over a three level tree with a fan-out of 16 per level.
func benchPath(i int) tree.Path[string] {
	return tree.NewPath(
		fmt.Sprintf("l1-%d", i%16),
		fmt.Sprintf("l2-%d", (i/16)%16),
		fmt.Sprintf("leaf-%d", i),
	)
}

func prefill(tr tree.ITree[string, any], n int) []tree.Path[string] {
	paths := make([]tree.Path[string], n)
	for i := range paths {
		paths[i] = benchPath(i)
		tr.SetAt(paths[i], i)
	}
	return paths
}

// --------------------------------------------------------------------------
// Benchmark functions
// --------------------------------------------------------------------------

// Benchmark for SetAt with new paths
func benchmarkSetAt(b *testing.B, tr tree.ITree[string, any]) {
	paths := make([]tree.Path[string], b.N)
	for i := range paths {
		paths[i] = benchPath(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.SetAt(paths[i], i)
	}
}

// Benchmark for SetAt with existing paths
func benchmarkSetAtExisting(b *testing.B, tr tree.ITree[string, any]) {
	paths := prefill(tr, 10_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.SetAt(paths[i%len(paths)], i)
	}
}

func benchmarkGetAt(b *testing.B, tr tree.ITree[string, any]) {
	paths := prefill(tr, 10_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tr.GetAt(paths[i%len(paths)]); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkHasNot(b *testing.B, tr tree.ITree[string, any]) {
	prefill(tr, 10_000)
	missing := tree.NewPath("l1-0", "l2-0", "missing")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if tr.HasItemAt(missing) {
			b.Fatal("unexpected item")
		}
	}
}

func benchmarkClearAt(b *testing.B, tr tree.ITree[string, any]) {
	paths := make([]tree.Path[string], b.N)
	for i := range paths {
		paths[i] = benchPath(i)
		tr.SetAt(paths[i], i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.ClearAt(paths[i])
	}
}

func benchmarkItemsUnder(b *testing.B, tr tree.ITree[string, any]) {
	prefill(tr, 10_000)
	target := tree.NewPath("l1-3")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.GetItemsUnder(target)
	}
}

func benchmarkEntriesInOrder(b *testing.B, tr tree.ITree[string, any]) {
	prefill(tr, 10_000)
	target := tree.NewPath("l1-3")
	order := tree.NaturalOrder[string]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.GetEntriesUnderInOrder(target, order)
	}
}

func benchmarkGetBranch(b *testing.B, tr tree.ITree[string, any]) {
	prefill(tr, 10_000)
	target := tree.NewPath("l1-3")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.GetBranch(target)
	}
}

// Benchmark for writes through a view, each followed by a clear that trims the branch again
func benchmarkViewSetClear(b *testing.B, tr tree.ITree[string, any]) {
	prefill(tr, 1_000)
	view := tr.GetBranchView(tree.NewPath("scratch", "area"))
	leaf := tree.NewPath("a", "b", "c")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		view.SetAt(leaf, i)
		view.ClearAt(leaf)
	}
}

// Benchmark for a realistic mix of reads (80%), writes (15%) and subtree queries (5%)
func benchmarkMixedUsage(b *testing.B, tr tree.ITree[string, any]) {
	paths := prefill(tr, 10_000)
	rnd := rand.New(rand.NewSource(42))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		path := paths[rnd.Intn(len(paths))]
		switch op := rnd.Intn(100); {
		case op < 80:
			tr.GetAtSafely(path)
		case op < 95:
			tr.SetAt(path, i)
		default:
			parent, _ := path.Parent()
			tr.CountAt(tree.RelImmediatelyUnder, parent)
		}
	}
}
