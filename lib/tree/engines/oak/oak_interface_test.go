package oak

import (
	"testing"

	"github.com/ValentinKolb/dTree/lib/tree"
	treetesting "github.com/ValentinKolb/dTree/lib/tree/testing"
)

func newEngine() tree.ITree[string, any] {
	return New[string, any]()
}

// newMountedView returns an empty view two levels deep inside a tree that holds unrelated items.
func newMountedView() tree.ITree[string, any] {
	backing := New[string, any]()
	backing.SetRootItem("outside")
	backing.SetAt(tree.NewPath("noise"), 1)
	backing.SetAt(tree.NewPath("mount", "sibling"), 2)
	return backing.GetBranchView(tree.NewPath("mount", "point"))
}

// newNestedView returns a view created through another view.
func newNestedView() tree.ITree[string, any] {
	backing := New[string, any]()
	backing.SetAt(tree.NewPath("noise"), 1)
	return backing.GetBranchView(tree.NewPath("outer")).GetBranchView(tree.NewPath("inner"))
}

func newCopy() tree.ITree[string, any] {
	backing := New[string, any]()
	backing.SetAt(tree.NewPath("noise"), 1)
	return backing.GetBranch(tree.NewPath("empty"))
}

func Test(t *testing.T) {
	treetesting.RunTreeTests(t, "Oak", newEngine)
	treetesting.RunTreeTests(t, "OakView", newMountedView)
	treetesting.RunTreeTests(t, "OakNestedView", newNestedView)
	treetesting.RunTreeTests(t, "OakCopy", newCopy)
}

func Benchmark(b *testing.B) {
	treetesting.RunTreeBenchmarks(b, "Oak", newEngine)
	treetesting.RunTreeBenchmarks(b, "OakView", newMountedView)
}
