package oak

import (
	"github.com/ValentinKolb/dTree/lib/tree"
	"github.com/ValentinKolb/dTree/lib/tree/engines/oak/internal"
	"github.com/ValentinKolb/dTree/lib/tree/util"
	"github.com/xlab/treeprint"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const rootLabel = "(root)"

// render draws the sub-tree rooted at n. Children are drawn in the natural display order of
// their labels, so the output is stable for equal trees.
//
//	(root) = 1
//	├── a = 2
//	│   └── b
//	│       └── c = 3
//	└── d = (null)
func render[N comparable, L any](n *internal.Node[N, L]) string {
	if n == nil {
		n = internal.NewNode[N, L]()
	}
	out := treeprint.NewWithRoot(display(rootLabel, n))
	renderChildren(out, n)
	return out.String()
}

func renderChildren[N comparable, L any](branch treeprint.Tree, n *internal.Node[N, L]) {
	children := make(map[N]*internal.Node[N, L], n.NumChildren())
	n.Children(func(label N, child *internal.Node[N, L]) bool {
		children[label] = child
		return true
	})

	labels := maps.Keys(children)
	slices.SortFunc(labels, func(a, b N) int { return util.CompareLabels(a, b) })

	for _, label := range labels {
		child := children[label]
		text := display(tree.FormatValue(label), child)
		if child.NumChildren() == 0 {
			branch.AddNode(text)
			continue
		}
		renderChildren(branch.AddBranch(text), child)
	}
}

func display[N comparable, L any](label string, n *internal.Node[N, L]) string {
	if v, ok := n.Item().Get(); ok {
		return label + " = " + tree.FormatValue(v)
	}
	return label
}
