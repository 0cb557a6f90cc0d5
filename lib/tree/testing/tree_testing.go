package testing

import (
	"strings"
	"testing"

	"github.com/ValentinKolb/dTree/lib/tree"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TreeFactory is a function that creates a new, empty ITree instance.
type TreeFactory func() tree.ITree[string, any]

// RunTreeTests runs a comprehensive test suite for an ITree implementation.
func RunTreeTests(t *testing.T, name string, factory TreeFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Empty", func(t *testing.T) {
			testEmpty(t, factory())
		})

		t.Run("Set&Get", func(t *testing.T) {
			testSetGet(t, factory())
		})

		t.Run("NullIsPresent", func(t *testing.T) {
			testNullIsPresent(t, factory())
		})

		t.Run("Defaults", func(t *testing.T) {
			testDefaults(t, factory())
		})

		t.Run("RootItem", func(t *testing.T) {
			testRootItem(t, factory())
		})

		t.Run("SetAtIfAbsent", func(t *testing.T) {
			testSetAtIfAbsent(t, factory())
		})

		t.Run("ClearAt", func(t *testing.T) {
			testClearAt(t, factory())
		})

		t.Run("ClearAtAndUnder", func(t *testing.T) {
			testClearAtAndUnder(t, factory())
		})

		t.Run("ClearUnder", func(t *testing.T) {
			testClearUnder(t, factory())
		})

		t.Run("Relations", func(t *testing.T) {
			testRelations(t, factory)
		})

		t.Run("HierarchicalOrder", func(t *testing.T) {
			testHierarchicalOrder(t, factory())
		})

		t.Run("NullLabelsFirst", func(t *testing.T) {
			testNullLabelsFirst(t)
		})

		t.Run("Entries", func(t *testing.T) {
			testEntries(t, factory())
		})

		t.Run("Count", func(t *testing.T) {
			testCount(t, factory())
		})

		t.Run("Branches", func(t *testing.T) {
			testBranches(t, factory())
		})

		t.Run("CopyIndependence", func(t *testing.T) {
			testCopyIndependence(t, factory())
		})

		t.Run("Views", func(t *testing.T) {
			testViews(t, factory())
		})

		t.Run("SetBranchAt", func(t *testing.T) {
			testSetBranchAt(t, factory())
		})

		t.Run("TreeString", func(t *testing.T) {
			testTreeString(t, factory())
		})

		t.Run("Info", func(t *testing.T) {
			testInfo(t, factory())
		})

		t.Run("Scenarios", func(t *testing.T) {
			testScenarios(t, factory)
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// p builds a path from a slash separated string; "" is the root path.
func p(s string) tree.Path[string] {
	if s == "" {
		return tree.RootPath[string]()
	}
	return tree.NewPath(strings.Split(s, "/")...)
}

// fill stores value i+1 at the i-th path.
func fill(tr tree.ITree[string, any], paths ...string) {
	for i, s := range paths {
		tr.SetAt(p(s), i+1)
	}
}

// joined renders paths as "/a/b" strings, keeping their order.
func joined(paths []tree.Path[string]) []string {
	out := make([]string, len(paths))
	for i, path := range paths {
		out[i] = "/" + path.Join("/")
	}
	return out
}

func natural() tree.Comparator[string] {
	return tree.NaturalOrder[string]()
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testEmpty(t *testing.T, tr tree.ITree[string, any]) {
	assert.True(t, tr.IsEmpty())
	assert.False(t, tr.HasItems())
	assert.False(t, tr.HasRootItem())
	assert.Equal(t, 0, tr.Count())
	assert.Equal(t, 0, tr.CountDepth())
	assert.Empty(t, tr.GetItems())
	assert.Empty(t, tr.GetEntries())
	assert.Empty(t, tr.GetPaths())
	assert.Empty(t, tr.GetBranches())
	assert.Empty(t, tr.GetBranchViews())

	_, err := tr.GetAt(p("missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, tree.ErrNoItemAtPath))

	_, err = tr.GetRootItem()
	assert.True(t, errors.Is(err, tree.ErrNoItemAtPath))
}

func testSetGet(t *testing.T, tr tree.ITree[string, any]) {
	prev := tr.SetAt(p("a/b/c"), "v1")
	assert.False(t, prev.Found(), "first set must report an absent previous item")

	v, err := tr.GetAt(p("a/b/c"))
	require.NoError(t, err)
	assert.Equal(t, "v1", v)

	prev = tr.SetAt(p("a/b/c"), "v2")
	assert.True(t, prev.Equals(tree.Present[any]("v1")))

	v, err = tr.GetAt(p("a/b/c"))
	require.NoError(t, err)
	assert.Equal(t, "v2", v)

	// intermediate nodes exist but hold no item
	_, err = tr.GetAt(p("a/b"))
	assert.True(t, errors.Is(err, tree.ErrNoItemAtPath))
	assert.False(t, tr.GetAtSafely(p("a")).Found())
	assert.True(t, tr.HasItemsUnder(p("a")))
	assert.False(t, tr.HasItemAt(p("a")))
	assert.True(t, tr.HasNoItemAt(p("a")))
}

func testNullIsPresent(t *testing.T, tr tree.ITree[string, any]) {
	tr.SetAt(p("x"), nil)

	value, found := tr.GetAtSafely(p("x")).Get()
	assert.True(t, value == nil)
	assert.True(t, found, "a stored nil must be present")
	assert.True(t, tr.HasItemAt(p("x")))

	v, err := tr.GetAt(p("x"))
	require.NoError(t, err)
	assert.Nil(t, v)

	assert.False(t, tr.GetAtSafely(p("y")).Found())
	assert.Equal(t, 1, tr.Count())
	assert.Equal(t, []any{nil}, tr.GetItems())
}

func testDefaults(t *testing.T, tr tree.ITree[string, any]) {
	tr.SetAt(p("x"), nil)
	tr.SetAt(p("y"), 7)

	assert.Nil(t, tr.GetAtOrDefault(p("x"), 99), "present nil wins over the default")
	assert.Equal(t, 7, tr.GetAtOrDefault(p("y"), 99))
	assert.Equal(t, 99, tr.GetAtOrDefault(p("z"), 99))
	assert.Equal(t, 99, tr.GetAtOrDefault(p("y/deeper"), 99))

	assert.Equal(t, "fallback", tr.GetAtOrDefaultAnyType(p("z"), "fallback"))
	assert.Equal(t, 7, tr.GetAtOrDefaultAnyType(p("y"), "fallback"))

	assert.Nil(t, tr.GetAtOrZero(p("z")))
	assert.Equal(t, 7, tr.GetAtOrZero(p("y")))
	assert.Nil(t, tr.GetRootItemOrZero())
	assert.Equal(t, "d", tr.GetRootItemOrDefault("d"))
}

func testRootItem(t *testing.T, tr tree.ITree[string, any]) {
	assert.False(t, tr.SetRootItem("root").Found())
	assert.True(t, tr.HasRootItem())
	assert.True(t, tr.HasItemAt(tree.RootPath[string]()))

	v, err := tr.GetRootItem()
	require.NoError(t, err)
	assert.Equal(t, "root", v)
	assert.Equal(t, "root", tr.GetRootItemSafely().Value())

	prev := tr.SetRootItemIfAbsent("other")
	assert.True(t, prev.Found())
	assert.Equal(t, "root", tr.GetRootItemOrDefault("d"))

	assert.Equal(t, 0, tr.CountDepth(), "a root item has depth 0")
	assert.Equal(t, 1, tr.Count())

	prev = tr.ClearRootItem()
	assert.Equal(t, "root", prev.Value())
	assert.False(t, tr.HasRootItem())
	assert.True(t, tr.IsEmpty())
}

func testSetAtIfAbsent(t *testing.T, tr tree.ITree[string, any]) {
	prev := tr.SetAtIfAbsent(p("k"), "first")
	assert.False(t, prev.Found())

	prev = tr.SetAtIfAbsent(p("k"), "second")
	assert.True(t, prev.Found())
	assert.Equal(t, "first", prev.Value())
	assert.Equal(t, "first", tr.GetAtOrZero(p("k")))

	// a present nil blocks as well
	tr.SetAt(p("n"), nil)
	prev = tr.SetAtIfAbsent(p("n"), "value")
	assert.True(t, prev.Found())
	assert.Nil(t, tr.GetAtOrZero(p("n")))
}

func testClearAt(t *testing.T, tr tree.ITree[string, any]) {
	fill(tr, "a", "a/b")

	prev := tr.ClearAt(p("a"))
	assert.True(t, prev.Found())
	assert.Equal(t, 1, prev.Value())
	assert.False(t, tr.GetAtSafely(p("a")).Found())
	assert.True(t, tr.HasItemAt(p("a/b")), "children survive ClearAt")

	// idempotent
	prev = tr.ClearAt(p("a"))
	assert.False(t, prev.Found())

	// clearing missing paths is a no-op
	prev = tr.ClearAt(p("no/such/path"))
	assert.False(t, prev.Found())
	assert.Equal(t, 1, tr.Count())
	assert.False(t, tr.HasItemsAtOrUnder(p("no")))
}

func testClearAtAndUnder(t *testing.T, tr tree.ITree[string, any]) {
	fill(tr, "", "a", "a/b", "a/b/c", "ab", "z")

	tr.ClearAtAndUnder(p("a"))
	assert.False(t, tr.HasItemsAtOrUnder(p("a")))
	assert.True(t, tr.HasItemAt(p("ab")))
	assert.True(t, tr.HasItemAt(p("z")))
	assert.True(t, tr.HasRootItem())
	assert.Equal(t, 3, tr.Count())
	assert.Empty(t, tr.GetBranchesUnder(p("a")))

	tr.ClearAtAndUnder(p("missing"))
	assert.Equal(t, 3, tr.Count())

	tr.Clear()
	assert.True(t, tr.IsEmpty())
	assert.Empty(t, tr.GetBranches())
}

func testClearUnder(t *testing.T, tr tree.ITree[string, any]) {
	fill(tr, "a", "a/b", "a/b/c", "x/y", "x/y/z")

	tr.ClearUnder(p("a"))
	assert.True(t, tr.HasItemAt(p("a")), "the item at the target survives")
	assert.False(t, tr.HasItemsUnder(p("a")))

	tr.ClearUnder(p("x"))
	assert.False(t, tr.HasItemsAtOrUnder(p("x")))
	_, hasX := tr.GetBranches()["x"]
	assert.False(t, hasX, "a target without item is removed")

	tr.ClearUnder(tree.RootPath[string]())
	assert.True(t, tr.IsEmpty())
}

func testRelations(t *testing.T, factory TreeFactory) {
	tr := factory()
	fill(tr, "", "a", "a/b", "a/b/c", "a/d", "a/e/f", "b")

	tests := []struct {
		rel    tree.Relation
		target string
		want   []string
	}{
		{tree.RelAt, "a", []string{"/a"}},
		{tree.RelAt, "a/e", nil},
		{tree.RelAt, "", []string{"/"}},
		{tree.RelUnder, "a", []string{"/a/b", "/a/b/c", "/a/d", "/a/e/f"}},
		{tree.RelUnder, "a/b/c", nil},
		{tree.RelAtOrUnder, "a", []string{"/a", "/a/b", "/a/b/c", "/a/d", "/a/e/f"}},
		{tree.RelAtOrUnder, "", []string{"/", "/a", "/a/b", "/a/b/c", "/a/d", "/a/e/f", "/b"}},
		{tree.RelAlong, "a/b/c", []string{"/", "/a", "/a/b", "/a/b/c"}},
		{tree.RelAlong, "a/e/f", []string{"/", "/a", "/a/e/f"}},
		{tree.RelAlong, "a/x/y", []string{"/", "/a"}},
		{tree.RelImmediatelyUnder, "a", []string{"/a/b", "/a/d"}},
		{tree.RelImmediatelyUnder, "", []string{"/a", "/b"}},
		{tree.RelAtOrImmediatelyUnder, "a", []string{"/a", "/a/b", "/a/d"}},
		{tree.RelAtOrImmediatelyUnder, "a/e", []string{"/a/e/f"}},
		{tree.RelImmediatelyUnder, "a/b/c", nil},
		{tree.RelUnder, "missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.rel.String()+"("+tt.target+")", func(t *testing.T) {
			got := joined(tr.PathsInOrder(tt.rel, p(tt.target), natural()))
			if len(tt.want) == 0 {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}

			assert.ElementsMatch(t, got, joined(tr.Paths(tt.rel, p(tt.target))))
			assert.Equal(t, len(tt.want), tr.CountAt(tt.rel, p(tt.target)))
			assert.Equal(t, len(tt.want) > 0, tr.Has(tt.rel, p(tt.target)))
			assert.Equal(t, len(tt.want) == 0, tr.IsEmptyIn(tt.rel, p(tt.target)))
			assert.Len(t, tr.Items(tt.rel, p(tt.target)), len(tt.want))
			assert.Len(t, tr.ItemsInOrder(tt.rel, p(tt.target), natural()), len(tt.want))
			assert.Len(t, tr.Entries(tt.rel, p(tt.target)), len(tt.want))
		})
	}

	t.Run("NamedAccessors", func(t *testing.T) {
		assert.True(t, tr.HasItemsUnder(p("a")))
		assert.True(t, tr.HasNoItemsUnder(p("b")))
		assert.True(t, tr.HasItemsAtOrUnder(p("a/e")))
		assert.True(t, tr.HasNoItemsAtOrUnder(p("a/x")))
		assert.True(t, tr.HasItemsAlong(p("q/r")), "root item is along every path")
		assert.False(t, tr.HasNoItemsAlong(p("q/r")))
		assert.True(t, tr.HasItemsImmediatelyUnder(p("a")))
		assert.True(t, tr.HasNoItemsImmediatelyUnder(p("a/b/c")))
		assert.True(t, tr.HasItemsAtOrImmediatelyUnder(p("b")))
		assert.True(t, tr.HasNoItemsAtOrImmediatelyUnder(p("a/x")))

		assert.Equal(t, []any{3, 4, 5, 6}, tr.GetItemsUnderInOrder(p("a"), natural()))
		assert.Equal(t, []any{2, 3, 4, 5, 6}, tr.GetItemsAtOrUnderInOrder(p("a"), natural()))
		assert.Equal(t, []any{1, 2, 3, 4}, tr.GetItemsAlongInOrder(p("a/b/c"), natural()))
		assert.Equal(t, []any{3, 5}, tr.GetItemsImmediatelyUnderInOrder(p("a"), natural()))
		assert.ElementsMatch(t, []any{3, 5}, tr.GetItemsImmediatelyUnder(p("a")))
		assert.ElementsMatch(t, []any{3, 4, 5, 6}, tr.GetItemsUnder(p("a")))
		assert.ElementsMatch(t, []any{2, 3, 4, 5, 6}, tr.GetItemsAtOrUnder(p("a")))
		assert.ElementsMatch(t, []any{1, 2}, tr.GetItemsAlong(p("a")))
		assert.Len(t, tr.GetItems(), 7)
		assert.Equal(t, []any{1, 2, 3, 4, 5, 6, 7}, tr.GetItemsInOrder(natural()))
	})
}

func testHierarchicalOrder(t *testing.T, tr tree.ITree[string, any]) {
	// inserted out of order on purpose
	tr.SetAt(p("b"), "b")
	tr.SetAt(p("a/c"), "a.c")
	tr.SetAt(tree.RootPath[string](), "root")
	tr.SetAt(p("a/b"), "a.b")
	tr.SetAt(p("a"), "a")

	var got []string
	for _, e := range tr.GetEntriesInOrder(natural()) {
		got = append(got, e.Path().String())
	}
	assert.Equal(t, []string{"[]", "[a]", "[a b]", "[a c]", "[b]"}, got)

	assert.Equal(t, []any{"root", "a", "a.b", "a.c", "b"}, tr.GetItemsInOrder(natural()))
	assert.Equal(t, []string{"/", "/a", "/a/b", "/a/c", "/b"}, joined(tr.GetPathsInOrder(natural())))

	// a reversed comparator reverses sibling order, parents still come first
	reversed := func(a, b string) int { return natural()(b, a) }
	assert.Equal(t, []any{"root", "b", "a", "a.c", "a.b"}, tr.GetItemsInOrder(reversed))

	// nil falls back to the natural label order
	assert.Equal(t, []any{"root", "a", "a.b", "a.c", "b"}, tr.GetItemsInOrder(nil))

	// ordered output is sorted by the canonical path comparator
	paths := tr.GetPathsInOrder(natural())
	cmp := tree.PathComparator(natural())
	for i := 1; i < len(paths); i++ {
		assert.Negative(t, cmp(paths[i-1], paths[i]))
	}
}

// testNullLabelsFirst checks the nil label tie-break of the canonical comparator. It uses pointer
// labels, so it does not depend on the factory.
func testNullLabelsFirst(t *testing.T) {
	one, two := "one", "two"
	a := tree.NewPath[*string](nil)
	b := tree.NewPath(&one)
	c := tree.NewPath(&two)

	byValue := func(x, y *string) int { return strings.Compare(*x, *y) }
	cmp := tree.PathComparator(byValue)

	assert.Negative(t, cmp(a, b))
	assert.Negative(t, cmp(b, c))
	assert.Positive(t, cmp(c, a))
	assert.Zero(t, cmp(a, a))
}

func testEntries(t *testing.T, tr tree.ITree[string, any]) {
	fill(tr, "a", "a/b", "c")

	entries := tr.GetEntriesUnderInOrder(p("a"), natural())
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "[a b]", e.Path().String())
	assert.True(t, e.Key().Equals(e.Path()))
	assert.Equal(t, 2, e.Value())
	assert.Equal(t, e.Value(), e.Item())
	assert.True(t, e.Source() == tr, "entries reference the tree they were read from")
	assert.Equal(t, "[a b]=2", e.String())

	// entries are snapshots
	tr.SetAt(p("a/b"), 99)
	assert.Equal(t, 2, e.Value())

	assert.Len(t, tr.GetEntries(), 3)
	assert.Len(t, tr.GetEntriesAtOrUnder(p("a")), 2)
	assert.Len(t, tr.GetEntriesAtOrUnderInOrder(p("a"), natural()), 2)
	assert.Len(t, tr.GetEntriesUnder(p("a")), 1)
	assert.Len(t, tr.GetEntriesAlong(p("a/b")), 2)
	assert.Len(t, tr.GetEntriesAlongInOrder(p("a/b"), natural()), 2)
	assert.Len(t, tr.GetEntriesImmediatelyUnder(tree.RootPath[string]()), 2)
	assert.Len(t, tr.GetEntriesImmediatelyUnderInOrder(tree.RootPath[string](), natural()), 2)
	assert.Len(t, tr.EntriesInOrder(tree.RelAtOrImmediatelyUnder, p("a"), natural()), 2)
}

func testCount(t *testing.T, tr tree.ITree[string, any]) {
	fill(tr, "", "a", "a/b/c/d", "x/y")

	assert.Equal(t, 4, tr.Count())
	assert.Equal(t, 4, tr.CountDepth())
	assert.Equal(t, 1, tr.CountAt(tree.RelUnder, p("a")))

	tr.ClearAt(p("a/b/c/d"))
	assert.Equal(t, 3, tr.Count())
	assert.Equal(t, 2, tr.CountDepth(), "depth follows items, not lingering nodes")
}

func testBranches(t *testing.T, tr tree.ITree[string, any]) {
	fill(tr, "", "a", "a/b", "c/d")

	branches := tr.GetBranches()
	require.Len(t, branches, 2)
	assert.Equal(t, 2, branches["a"].GetRootItemOrZero())
	assert.Equal(t, 3, branches["a"].GetAtOrZero(p("b")))
	assert.False(t, branches["c"].HasRootItem())
	assert.Equal(t, 4, branches["c"].GetAtOrZero(p("d")))

	views := tr.GetBranchViews()
	require.Len(t, views, 2)
	assert.Equal(t, 3, views["a"].GetAtOrZero(p("b")))

	under := tr.GetBranchesUnder(p("a"))
	require.Len(t, under, 1)
	assert.Equal(t, 3, under["b"].GetRootItemOrZero())

	viewsUnder := tr.GetBranchViewsUnder(p("c"))
	require.Len(t, viewsUnder, 1)
	assert.Equal(t, 4, viewsUnder["d"].GetRootItemOrZero())

	missing := tr.GetBranch(p("missing"))
	assert.True(t, missing.IsEmpty())
	assert.Empty(t, tr.GetBranchesUnder(p("missing")))
	assert.Empty(t, tr.GetBranchViewsUnder(p("missing")))
}

func testCopyIndependence(t *testing.T, tr tree.ITree[string, any]) {
	fill(tr, "a", "a/b", "a/c")

	branch := tr.GetBranch(p("a"))
	whole := tr.Copy()

	tr.SetAt(p("a/b"), "changed")
	tr.ClearAt(p("a/c"))
	tr.SetAt(p("a/new"), "new")

	assert.Equal(t, 2, branch.GetAtOrZero(p("b")))
	assert.Equal(t, 3, branch.GetAtOrZero(p("c")))
	assert.False(t, branch.HasItemAt(p("new")))
	assert.Equal(t, 3, whole.Count())

	branch.SetAt(p("b"), "branch")
	branch.ClearAtAndUnder(tree.RootPath[string]())
	assert.Equal(t, "changed", tr.GetAtOrZero(p("a/b")))
	assert.Equal(t, 1, tr.GetAtOrZero(p("a")))
}

func testViews(t *testing.T, tr tree.ITree[string, any]) {
	view := tr.GetBranchView(p("users"))
	assert.True(t, view.IsEmpty(), "a view of a missing path is empty")
	assert.Empty(t, view.GetItems())
	assert.False(t, view.GetRootItemSafely().Found())

	// writes through the view land in the tree
	view.SetAt(p("alice"), 1)
	view.SetRootItem("users")
	assert.Equal(t, 1, tr.GetAtOrZero(p("users/alice")))
	assert.Equal(t, "users", tr.GetAtOrZero(p("users")))

	// writes to the tree are visible through the view
	tr.SetAt(p("users/bob"), 2)
	assert.Equal(t, 2, view.GetAtOrZero(p("bob")))
	assert.Equal(t, []string{"/", "/alice", "/bob"}, joined(view.GetPathsInOrder(natural())))

	// along stops at the root of the view
	tr.SetRootItem("outer")
	assert.Equal(t, []any{"users", 1}, view.GetItemsAlongInOrder(p("alice"), natural()))

	// nested views compose
	nested := view.GetBranchView(p("alice"))
	assert.Equal(t, 1, nested.GetRootItemOrZero())
	nested.SetAt(p("settings"), "dark")
	assert.Equal(t, "dark", tr.GetAtOrZero(p("users/alice/settings")))
	assert.Equal(t, 2, view.CountDepth())

	// the view survives removal and recreation of its sub-tree
	tr.ClearAtAndUnder(p("users"))
	assert.True(t, view.IsEmpty())
	assert.True(t, nested.IsEmpty())
	tr.SetAt(p("users/carol"), 3)
	assert.Equal(t, 3, view.GetAtOrZero(p("carol")))

	// clearing through a view removes what it emptied
	view.ClearAt(p("carol"))
	assert.False(t, tr.HasItemsAtOrUnder(p("users")))
	_, exists := tr.GetBranches()["users"]
	assert.False(t, exists, "emptied branch is trimmed")

	// views of views report entries relative to themselves
	tr.SetAt(p("users/dave/age"), 40)
	entries := view.GetEntriesInOrder(natural())
	require.Len(t, entries, 1)
	assert.Equal(t, "[dave age]", entries[0].Path().String())
	assert.True(t, entries[0].Source() == view)
}

func testSetBranchAt(t *testing.T, tr tree.ITree[string, any]) {
	fill(tr, "src", "src/x", "src/y/z", "dst/old")

	tr.SetBranchAt(p("dst"), tr.GetBranchView(p("src")))
	assert.Equal(t, 1, tr.GetAtOrZero(p("dst")))
	assert.Equal(t, 2, tr.GetAtOrZero(p("dst/x")))
	assert.Equal(t, 3, tr.GetAtOrZero(p("dst/y/z")))
	assert.False(t, tr.HasItemAt(p("dst/old")), "the old branch is replaced")

	// the installed branch is a copy
	tr.SetAt(p("src/x"), "changed")
	assert.Equal(t, 2, tr.GetAtOrZero(p("dst/x")))

	// installing into itself
	tr.SetBranchAt(p("src/inner"), tr.GetBranchView(p("src")))
	assert.Equal(t, "changed", tr.GetAtOrZero(p("src/inner/x")))
	assert.False(t, tr.HasItemsAtOrUnder(p("src/inner/inner")))

	// installing an empty branch removes the target
	tr.SetBranchAt(p("dst"), tr.GetBranch(p("missing")))
	assert.False(t, tr.HasItemsAtOrUnder(p("dst")))

	// replacing the whole tree
	other := tr.GetBranch(p("src/y"))
	tr.SetBranchAt(tree.RootPath[string](), other)
	assert.Equal(t, 1, tr.Count())
	assert.Equal(t, 3, tr.GetAtOrZero(p("z")))
}

func testTreeString(t *testing.T, tr tree.ITree[string, any]) {
	tr.SetRootItem("top")
	tr.SetAt(p("b"), 2)
	tr.SetAt(p("a/x"), nil)

	s := tr.ToTreeString()
	assert.Contains(t, s, "top")
	assert.Contains(t, s, "b = 2")
	assert.Contains(t, s, "x = (null)")
	assert.Less(t, strings.Index(s, "a"), strings.Index(s, "b = 2"), "children are rendered in label order")
}

func testInfo(t *testing.T, tr tree.ITree[string, any]) {
	fill(tr, "", "a/b", "a/c", "d")

	info := tr.GetInfo()
	assert.Equal(t, 4, info.Items)
	assert.Equal(t, 2, info.Depth)
	assert.GreaterOrEqual(t, info.Nodes, 5)
	assert.NotEmpty(t, info.Implementation)
	assert.Contains(t, info.String(), "TREE INFO")
}

func testScenarios(t *testing.T, factory TreeFactory) {
	t.Run("SingleChild", func(t *testing.T) {
		tr := factory()
		tr.SetAt(p("doot"), 5)
		assert.True(t, tr.HasItemsAtOrUnder(p("doot")))
		assert.False(t, tr.HasRootItem())
		assert.Equal(t, []any{5}, tr.GetItemsImmediatelyUnder(tree.RootPath[string]()))
	})

	t.Run("ClearUnderKeepsTarget", func(t *testing.T) {
		tr := factory()
		tr.SetAt(p("a/b"), 5)
		tr.SetAt(p("a"), 6)
		tr.ClearUnder(p("a"))
		v, err := tr.GetAt(p("a"))
		require.NoError(t, err)
		assert.Equal(t, 6, v)
		assert.False(t, tr.GetAtSafely(p("a/b")).Found())
	})

	t.Run("NullBeatsDefault", func(t *testing.T) {
		tr := factory()
		tr.SetAt(p("x"), nil)
		assert.Nil(t, tr.GetAtOrDefault(p("x"), 99))
	})

	t.Run("RoundTrip", func(t *testing.T) {
		tr := factory()
		for _, s := range []string{"", "a", "a/b", "long/path/with/many/labels"} {
			tr.SetAt(p(s), s)
			v, err := tr.GetAt(p(s))
			require.NoError(t, err)
			assert.Equal(t, s, v)
			tr.ClearAt(p(s))
			assert.False(t, tr.GetAtSafely(p(s)).Found())
		}
		assert.True(t, tr.IsEmpty())
	})
}
