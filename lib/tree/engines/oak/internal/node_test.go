package internal

import (
	"strings"
	"testing"

	"github.com/ValentinKolb/dTree/lib/tree"
)

// build creates a node tree from "a/b=v" style lines; a line without "=" only creates nodes.
func build(lines ...string) *Node[string, string] {
	root := NewNode[string, string]()
	for _, line := range lines {
		key, value, hasValue := strings.Cut(line, "=")
		var path []string
		if key != "" {
			path = strings.Split(key, "/")
		}
		n := Vivify(root, path)
		if hasValue {
			n.SetItem(value)
		}
	}
	return root
}

// visited collects the joined paths a walk visits.
func visited(root *Node[string, string], rel tree.Relation, target []string, ordered bool) []string {
	var c tree.Comparator[string]
	if ordered {
		c = tree.NaturalOrder[string]()
	}
	var out []string
	Walk(root, rel, target, c, func(path []string, n *Node[string, string]) bool {
		if n.Item().Found() {
			out = append(out, "/"+strings.Join(path, "/"))
		}
		return true
	})
	return out
}

func TestResolveAndVivify(t *testing.T) {
	root := NewNode[string, int]()

	if Resolve(root, []string{"a", "b"}) != nil {
		t.Fatal("Resolve on empty tree should return nil")
	}
	if Resolve(root, nil) != root {
		t.Fatal("Resolve of the root path should return the root")
	}

	n := Vivify(root, []string{"a", "b"})
	n.SetItem(1)

	if got := Resolve(root, []string{"a", "b"}); got != n {
		t.Fatal("Resolve should find the vivified node")
	}
	if Resolve(root, []string{"a"}).Item().Found() {
		t.Error("intermediate node should not hold an item")
	}
	if again := Vivify(root, []string{"a", "b"}); again != n {
		t.Error("Vivify should reuse existing nodes")
	}
}

func TestSetAndClearItem(t *testing.T) {
	n := NewNode[string, *int]()

	if prev := n.SetItem(nil); prev.Found() {
		t.Error("first SetItem should report an absent previous item")
	}
	if !n.Item().Found() || n.Item().Value() != nil {
		t.Error("a nil item should be present")
	}
	if n.IsEmpty() {
		t.Error("a node holding a nil item is not empty")
	}

	prev := n.ClearItem()
	if !prev.Found() {
		t.Error("ClearItem should report the nil item as present")
	}
	if !n.IsEmpty() {
		t.Error("node should be empty after ClearItem")
	}
}

func TestClone(t *testing.T) {
	root := build("=r", "a=1", "a/b=2", "c/d")
	cp := Clone(root)

	Resolve(cp, []string{"a"}).SetItem("changed")
	Vivify(cp, []string{"x"}).SetItem("new")

	if v := Resolve(root, []string{"a"}).Item().Value(); v != "1" {
		t.Errorf("original changed through clone: got %q", v)
	}
	if Resolve(root, []string{"x"}) != nil {
		t.Error("node added to the clone appeared in the original")
	}
	if Resolve(cp, []string{"c", "d"}) == nil {
		t.Error("clone should keep empty nodes")
	}
	if Clone[string, string](nil).NumChildren() != 0 {
		t.Error("Clone(nil) should return an empty node")
	}
}

func TestTrim(t *testing.T) {
	t.Run("RemovesEmptyChain", func(t *testing.T) {
		root := build("a/b/c")
		if removed := Trim(root, []string{"a", "b", "c"}); removed != 3 {
			t.Errorf("expected 3 removed nodes, got %d", removed)
		}
		if root.NumChildren() != 0 {
			t.Error("root should have no children left")
		}
	})

	t.Run("StopsAtItem", func(t *testing.T) {
		root := build("a=1", "a/b/c")
		if removed := Trim(root, []string{"a", "b", "c"}); removed != 2 {
			t.Errorf("expected 2 removed nodes, got %d", removed)
		}
		if Resolve(root, []string{"a"}) == nil {
			t.Error("node holding an item must survive")
		}
	})

	t.Run("StopsAtSibling", func(t *testing.T) {
		root := build("a/b/c", "a/x=1")
		if removed := Trim(root, []string{"a", "b", "c"}); removed != 2 {
			t.Errorf("expected 2 removed nodes, got %d", removed)
		}
		if Resolve(root, []string{"a", "x"}) == nil {
			t.Error("sibling must survive")
		}
	})

	t.Run("StopsAtNonEmptyLeaf", func(t *testing.T) {
		root := build("a/b=1")
		if removed := Trim(root, []string{"a", "b"}); removed != 0 {
			t.Errorf("expected nothing removed, got %d", removed)
		}
	})

	t.Run("MissingTail", func(t *testing.T) {
		root := build("a/b")
		if removed := Trim(root, []string{"a", "b", "c", "d"}); removed != 2 {
			t.Errorf("expected 2 removed nodes, got %d", removed)
		}
	})

	t.Run("NeverRemovesRoot", func(t *testing.T) {
		root := NewNode[string, string]()
		if removed := Trim(root, nil); removed != 0 {
			t.Errorf("expected nothing removed, got %d", removed)
		}
	})
}

func TestPrune(t *testing.T) {
	root := build("a/b/c", "a/x=1", "d/e", "f=2")
	if removed := Prune(root); removed != 4 {
		t.Errorf("expected 4 removed nodes, got %d", removed)
	}
	if Resolve(root, []string{"a", "b"}) != nil || Resolve(root, []string{"d"}) != nil {
		t.Error("empty sub-trees must be removed")
	}
	if Resolve(root, []string{"a", "x"}) == nil || Resolve(root, []string{"f"}) == nil {
		t.Error("nodes holding items must survive")
	}

	empty := build("a/b")
	if removed := Prune(empty); removed != 2 {
		t.Errorf("expected 2 removed nodes, got %d", removed)
	}
	if empty.NumChildren() != 0 {
		t.Error("start node should have no children left")
	}
}

func TestDetach(t *testing.T) {
	root := build("=r", "a=1", "a/b=2")

	sub := Detach(root, []string{"a"})
	if sub == nil || sub.Item().Value() != "1" {
		t.Fatal("Detach should return the sub-tree")
	}
	if Resolve(root, []string{"a"}) != nil {
		t.Error("detached sub-tree still reachable")
	}
	if Detach(root, []string{"missing"}) != nil {
		t.Error("detaching a missing path should return nil")
	}

	whole := Detach(root, nil)
	if whole.Item().Value() != "r" {
		t.Error("detaching the root should return its content")
	}
	if !root.IsEmpty() {
		t.Error("root should be empty after detaching it")
	}
}

func TestWalkRelations(t *testing.T) {
	root := build("=r", "a=1", "a/b=2", "a/b/c=3", "a/x=4", "z=5", "a/e/f=6")

	tests := []struct {
		rel    tree.Relation
		target []string
		want   []string
	}{
		{tree.RelAt, []string{"a"}, []string{"/a"}},
		{tree.RelAt, []string{"a", "e"}, nil},
		{tree.RelUnder, []string{"a"}, []string{"/a/b", "/a/b/c", "/a/e/f", "/a/x"}},
		{tree.RelAtOrUnder, []string{"a"}, []string{"/a", "/a/b", "/a/b/c", "/a/e/f", "/a/x"}},
		{tree.RelAlong, []string{"a", "b", "c"}, []string{"/", "/a", "/a/b", "/a/b/c"}},
		{tree.RelAlong, []string{"a", "q", "c"}, []string{"/", "/a"}},
		{tree.RelImmediatelyUnder, []string{"a"}, []string{"/a/b", "/a/x"}},
		{tree.RelAtOrImmediatelyUnder, []string{"a"}, []string{"/a", "/a/b", "/a/x"}},
		{tree.RelAtOrUnder, nil, []string{"/", "/a", "/a/b", "/a/b/c", "/a/e/f", "/a/x", "/z"}},
		{tree.RelUnder, []string{"missing"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.rel.String()+"/"+strings.Join(tt.target, "/"), func(t *testing.T) {
			got := visited(root, tt.rel, tt.target, true)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWalkStops(t *testing.T) {
	root := build("a=1", "b=2", "c=3")
	calls := 0
	Walk(root, tree.RelUnder, nil, nil, func(path []string, n *Node[string, string]) bool {
		calls++
		return false
	})
	if calls != 1 {
		t.Errorf("walk should stop after the first visit, got %d calls", calls)
	}
}

func TestCollect(t *testing.T) {
	root := build("=r", "a/b=1", "a/c=2", "d/e")
	s := Collect(root)

	if s.Items != 3 {
		t.Errorf("Items: got %d, want 3", s.Items)
	}
	if s.Nodes != 6 {
		t.Errorf("Nodes: got %d, want 6", s.Nodes)
	}
	if s.EmptyNodes != 1 {
		t.Errorf("EmptyNodes: got %d, want 1", s.EmptyNodes)
	}
	if s.Depth != 2 {
		t.Errorf("Depth: got %d, want 2", s.Depth)
	}
	if len(s.Fanout) != 3 {
		t.Errorf("Fanout samples: got %d, want 3", len(s.Fanout))
	}
	if d := MaxItemDepth(root); d != 2 {
		t.Errorf("MaxItemDepth: got %d, want 2", d)
	}
}
