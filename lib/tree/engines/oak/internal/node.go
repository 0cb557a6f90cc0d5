package internal

import (
	"github.com/ValentinKolb/dTree/lib/tree"
)

// --------------------------------------------------------------------------
// Node Type (a single cell of the tree)
// --------------------------------------------------------------------------

// Node is one cell of the recursive tree: an optional item plus the child nodes keyed by label.
// A node owns its children exclusively; there are no parent pointers.
//
// The item slot is a Presence so that "absent" and "present but nil" stay distinct.
type Node[N comparable, L any] struct {
	item     tree.Presence[L]
	children map[N]*Node[N, L]
}

// NewNode creates an empty node.
func NewNode[N comparable, L any]() *Node[N, L] {
	return &Node[N, L]{}
}

// Item returns the item slot of the node.
func (n *Node[N, L]) Item() tree.Presence[L] {
	return n.item
}

// SetItem stores v and returns the previous item slot.
func (n *Node[N, L]) SetItem(v L) tree.Presence[L] {
	prev := n.item
	n.item = tree.Present(v)
	return prev
}

// ClearItem empties the item slot and returns its previous content.
func (n *Node[N, L]) ClearItem() tree.Presence[L] {
	prev := n.item
	n.item = tree.Absent[L]()
	return prev
}

// IsEmpty reports whether the node has neither an item nor children.
func (n *Node[N, L]) IsEmpty() bool {
	return !n.item.Found() && len(n.children) == 0
}

// NumChildren returns the number of direct children.
func (n *Node[N, L]) NumChildren() int {
	return len(n.children)
}

// Child returns the child with the given label, or nil.
func (n *Node[N, L]) Child(label N) *Node[N, L] {
	return n.children[label]
}

// ChildOrCreate returns the child with the given label, creating an empty one if needed.
func (n *Node[N, L]) ChildOrCreate(label N) *Node[N, L] {
	if child, ok := n.children[label]; ok {
		return child
	}
	if n.children == nil {
		n.children = make(map[N]*Node[N, L])
	}
	child := NewNode[N, L]()
	n.children[label] = child
	return child
}

// SetChild attaches child under label, replacing any existing child.
func (n *Node[N, L]) SetChild(label N, child *Node[N, L]) {
	if n.children == nil {
		n.children = make(map[N]*Node[N, L])
	}
	n.children[label] = child
}

// RemoveChild detaches the child with the given label and returns it (nil if there was none).
func (n *Node[N, L]) RemoveChild(label N) *Node[N, L] {
	child, ok := n.children[label]
	if !ok {
		return nil
	}
	delete(n.children, label)
	return child
}

// ClearChildren detaches all children.
func (n *Node[N, L]) ClearChildren() {
	n.children = nil
}

// Reset empties the node completely.
func (n *Node[N, L]) Reset() {
	n.item = tree.Absent[L]()
	n.children = nil
}

// Children iterates over the direct children in arbitrary order.
// The callback must not add or remove children of n.
func (n *Node[N, L]) Children(fn func(label N, child *Node[N, L]) bool) {
	for label, child := range n.children {
		if !fn(label, child) {
			return
		}
	}
}

// --------------------------------------------------------------------------
// Path Resolution
// --------------------------------------------------------------------------

// Resolve follows path from root and returns the node it ends at, or nil if a node is missing.
func Resolve[N comparable, L any](root *Node[N, L], path []N) *Node[N, L] {
	n := root
	for _, label := range path {
		if n = n.children[label]; n == nil {
			return nil
		}
	}
	return n
}

// Vivify follows path from root, creating every missing node on the way, and returns the last node.
func Vivify[N comparable, L any](root *Node[N, L], path []N) *Node[N, L] {
	n := root
	for _, label := range path {
		n = n.ChildOrCreate(label)
	}
	return n
}

// Chain returns the nodes along path, starting with root and ending at the deepest existing node.
func Chain[N comparable, L any](root *Node[N, L], path []N) []*Node[N, L] {
	chain := make([]*Node[N, L], 1, len(path)+1)
	chain[0] = root
	n := root
	for _, label := range path {
		if n = n.children[label]; n == nil {
			break
		}
		chain = append(chain, n)
	}
	return chain
}

// Detach removes the sub-tree at path from its parent and returns it (nil if it did not exist).
// Detaching the root path resets root instead, since the root has no parent.
func Detach[N comparable, L any](root *Node[N, L], path []N) *Node[N, L] {
	if len(path) == 0 {
		detached := &Node[N, L]{item: root.item, children: root.children}
		root.Reset()
		return detached
	}
	parent := Resolve(root, path[:len(path)-1])
	if parent == nil {
		return nil
	}
	return parent.RemoveChild(path[len(path)-1])
}

// --------------------------------------------------------------------------
// Copy and Trim
// --------------------------------------------------------------------------

// Clone returns a deep structural copy of n. Items are copied by assignment.
func Clone[N comparable, L any](n *Node[N, L]) *Node[N, L] {
	if n == nil {
		return NewNode[N, L]()
	}
	cp := &Node[N, L]{item: n.item}
	if len(n.children) > 0 {
		cp.children = make(map[N]*Node[N, L], len(n.children))
		for label, child := range n.children {
			cp.children[label] = Clone(child)
		}
	}
	return cp
}

// Prune removes every empty node below n, bottom-up, so that each remaining descendant holds
// an item or has a descendant that does. n itself is kept even if it ends up empty.
// Prune returns the number of removed nodes.
func Prune[N comparable, L any](n *Node[N, L]) int {
	removed := 0
	for label, child := range n.children {
		removed += Prune(child)
		if child.IsEmpty() {
			delete(n.children, label)
			removed++
		}
	}
	return removed
}

// Trim removes empty nodes along path, bottom-up.
//
// It walks from root down to the deepest existing node along path, then walks that chain
// backwards and detaches every empty node from its parent. It stops at the first node that is
// not empty, since that node and all of its ancestors are still needed. The root itself is never
// removed. Trim returns the number of detached nodes.
func Trim[N comparable, L any](root *Node[N, L], path []N) int {
	chain := Chain(root, path)
	removed := 0
	for i := len(chain) - 1; i > 0; i-- {
		if !chain[i].IsEmpty() {
			break
		}
		chain[i-1].RemoveChild(path[i-1])
		removed++
	}
	return removed
}
