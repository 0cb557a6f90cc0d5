package oak

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/ValentinKolb/dTree/lib/tree"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
)

// snapshot renders all entries of a tree in hierarchical order.
func snapshot(t tree.ITree[string, int]) []string {
	var out []string
	for _, e := range t.GetEntriesInOrder(tree.NaturalOrder[string]()) {
		out = append(out, e.String())
	}
	return out
}

func randomPath(rnd *rand.Rand) tree.Path[string] {
	labels := []string{"a", "b", "c"}
	n := rnd.Intn(4)
	nodes := make([]string, n)
	for i := range nodes {
		nodes[i] = labels[rnd.Intn(len(labels))]
	}
	return tree.NewPath(nodes...)
}

// untrimmedBranch returns an engine tree that still holds an emptied node next to an item.
func untrimmedBranch(rnd *rand.Rand, v int) IOakTree[string, int] {
	src := New[string, int]()
	q := randomPath(rnd)
	src.SetAt(q, v)
	src.SetAt(q.AppendedWith("z", "z"), v)
	src.ClearAt(q.AppendedWith("z", "z"))
	return src
}

// TestViewTrimInvariant applies random writes and clears through views and checks that
// the backing tree never keeps an empty node around.
func TestViewTrimInvariant(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			rnd := rand.New(rand.NewSource(seed))
			backing := New[string, int]()

			for i := 0; i < 500; i++ {
				view := backing.GetBranchView(randomPath(rnd))
				p := randomPath(rnd)

				switch rnd.Intn(6) {
				case 0, 1:
					view.SetAt(p, i)
				case 2:
					view.ClearAt(p)
				case 3:
					view.ClearUnder(p)
				case 4:
					view.ClearAtAndUnder(p)
				case 5:
					view.SetBranchAt(p, untrimmedBranch(rnd, i))
				}

				info := backing.GetInfo()
				require.Zero(t, info.EmptyNodes, "step %d left empty nodes:\n%s", i, backing.ToTreeString())
			}
		})
	}
}

// TestSetBranchAtDropsEmptyNodes copies a branch with an emptied node into a view.
func TestSetBranchAtDropsEmptyNodes(t *testing.T) {
	src := New[string, int]()
	src.SetAt(tree.NewPath("a", "b"), 1)
	src.ClearAt(tree.NewPath("a", "b"))
	src.SetAt(tree.NewPath("c"), 2)
	require.Equal(t, 1, src.GetInfo().EmptyNodes)

	backing := New[string, int]()
	backing.GetBranchView(tree.NewPath("m")).SetBranchAt(tree.NewPath("x"), src)

	require.Zero(t, backing.GetInfo().EmptyNodes, backing.ToTreeString())
	require.False(t, backing.HasItemsAtOrUnder(tree.NewPath("m", "x", "a")))
	require.Equal(t, 2, backing.GetAtOrZero(tree.NewPath("m", "x", "c")))

	// a branch holding nothing but empty nodes leaves no trace
	backing.GetBranchView(tree.NewPath("n")).SetBranchAt(tree.RootPath[string](), src.GetBranch(tree.NewPath("a")))
	require.Zero(t, backing.GetInfo().EmptyNodes, backing.ToTreeString())
	require.Nil(t, backing.GetBranchViewsUnder(tree.RootPath[string]())["n"])
}

// TestEngineClearKeepsNodes documents the difference between the engine and a view:
// the engine leaves an emptied node in place, a view trims it.
func TestEngineClearKeepsNodes(t *testing.T) {
	backing := New[string, int]()
	path := tree.NewPath("a", "b", "c")

	backing.SetAt(path, 1)
	backing.ClearAt(path)
	require.Equal(t, 1, backing.GetInfo().EmptyNodes)
	require.Equal(t, 4, backing.GetInfo().Nodes)
	require.True(t, backing.IsEmpty())

	require.Equal(t, 3, backing.Trim(path))
	require.Equal(t, 1, backing.GetInfo().Nodes)

	view := backing.GetBranchView(tree.NewPath("a"))
	view.SetAt(tree.NewPath("b", "c"), 1)
	view.ClearAt(tree.NewPath("b", "c"))
	require.Equal(t, 1, backing.GetInfo().Nodes)
}

// TestViewMatchesCopy checks that a view and a copy taken at the same moment report the
// same content, and that only the view follows later changes.
func TestViewMatchesCopy(t *testing.T) {
	backing := New[string, int]()
	for i, key := range []string{"x", "y", "z"} {
		backing.SetAt(tree.NewPath("root", key), i)
		backing.SetAt(tree.NewPath("root", key, "child"), 10+i)
	}

	path := tree.NewPath("root")
	view := backing.GetBranchView(path)
	copied := backing.GetBranch(path)

	if diff := pretty.Diff(snapshot(copied), snapshot(view)); len(diff) > 0 {
		t.Fatalf("view and copy differ:\n%s", diff)
	}
	require.Equal(t, copied.ToTreeString(), view.ToTreeString())
	require.Equal(t, copied.CountDepth(), view.CountDepth())

	backing.SetAt(tree.NewPath("root", "w"), 99)
	backing.ClearAtAndUnder(tree.NewPath("root", "x"))

	want := []string{"[w]=99", "[y]=1", "[y child]=11", "[z]=2", "[z child]=12"}
	if diff := pretty.Diff(want, snapshot(view)); len(diff) > 0 {
		t.Errorf("view does not follow the backing tree:\n%s", diff)
	}
	want = []string{"[x]=0", "[x child]=10", "[y]=1", "[y child]=11", "[z]=2", "[z child]=12"}
	if diff := pretty.Diff(want, snapshot(copied)); len(diff) > 0 {
		t.Errorf("copy changed with the backing tree:\n%s", diff)
	}
}

func TestViewInfo(t *testing.T) {
	backing := New[string, int]()
	backing.SetAt(tree.NewPath("a", "b"), 1)

	info := backing.GetBranchView(tree.NewPath("a")).GetInfo()
	require.Equal(t, tree.ImplOakView, info.Implementation)
	require.Equal(t, 1, info.Items)
	require.Equal(t, 1, info.Depth)
	require.Equal(t, map[string]string{"path": "[a]"}, info.Metadata)

	missing := backing.GetBranchView(tree.NewPath("missing")).GetInfo()
	require.Equal(t, 0, missing.Items)
	require.Equal(t, 1, missing.Nodes)
}

func TestFromEntries(t *testing.T) {
	src := New[string, int]()
	src.SetAt(tree.NewPath("a"), 1)
	src.SetAt(tree.NewPath("a", "b"), 2)

	rebuilt := FromEntries(src.GetEntries())
	if diff := pretty.Diff(snapshot(src), snapshot(rebuilt)); len(diff) > 0 {
		t.Errorf("rebuilt tree differs:\n%s", diff)
	}
}

func TestNilLabelsSortFirst(t *testing.T) {
	one, two := "one", "two"
	tr := New[*string, int]()
	tr.SetAt(tree.NewPath(&two), 2)
	tr.SetAt(tree.NewPath[*string](nil), 0)
	tr.SetAt(tree.NewPath(&one), 1)

	byValue := func(a, b *string) int {
		switch {
		case *a < *b:
			return -1
		case *a > *b:
			return 1
		}
		return 0
	}
	require.Equal(t, []int{0, 1, 2}, tr.GetItemsInOrder(byValue))
}
